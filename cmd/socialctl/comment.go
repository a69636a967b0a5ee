package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"masterboxer.com/social-network/actions"
	"masterboxer.com/social-network/client"
	"masterboxer.com/social-network/events"
	"masterboxer.com/social-network/models"
	"masterboxer.com/social-network/store"
)

var commentCmd = &cobra.Command{
	Use:     "comment",
	Short:   "Add, list, edit and delete comments",
	GroupID: "social",
}

var commentAddCmd = &cobra.Command{
	Use:   "add <post-id> <text>",
	Short: "Comment on a post",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		owner, _ := cmd.Flags().GetString("owner")
		ctx := context.Background()

		act.DBGetUserInfo(ctx, cfg.UserID)
		if err := storeError(st); err != nil {
			return err
		}

		var added *models.Comment
		unsubscribe := st.Subscribe(func(a store.Action, _ store.State) {
			if a.Type == store.ActionAddComment {
				added, _ = a.Payload.(*models.Comment)
			}
		})
		defer unsubscribe()

		act.DBAddComment(ctx, owner, models.Comment{
			PostID: args[0],
			Text:   strings.Join(args[1:], " "),
		}, nil)
		if err := storeError(st); err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(added)
		}
		if added != nil {
			fmt.Printf("Added comment %s\n", added.ID)
		}
		return nil
	},
}

var commentListCmd = &cobra.Command{
	Use:   "list <post-id>",
	Short: "List the comments of a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		owner, _ := cmd.Flags().GetString("owner")

		act.DBGetComments(context.Background(), owner, args[0])
		if err := storeError(st); err != nil {
			return err
		}

		comments := st.GetState().Comment.PostComments[args[0]]
		if jsonOutput {
			return printJSON(comments)
		}
		printComments(comments)
		return nil
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <post-id> <comment-id> <text>",
	Short: "Change the text of one of your comments",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		ctx := context.Background()
		postID, commentID := args[0], args[1]

		act.DBGetComments(ctx, "", postID)
		if err := storeError(st); err != nil {
			return err
		}
		existing, ok := st.GetState().FindComment(postID, commentID)
		if !ok {
			return fmt.Errorf("comment %s not found on post %s", commentID, postID)
		}

		updated := *existing
		updated.Text = strings.Join(args[2:], " ")
		st.Dispatch(actions.OpenCommentEditor(existing))
		act.DBUpdateComment(ctx, updated)
		if err := storeError(st); err != nil {
			return err
		}
		fmt.Printf("Updated comment %s\n", commentID)
		return nil
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <post-id> <comment-id>",
	Short: "Delete one of your comments",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		act.DBDeleteComment(context.Background(), args[1], args[0])
		if err := storeError(st); err != nil {
			return err
		}
		fmt.Printf("Deleted comment %s\n", args[1])
		return nil
	},
}

var commentWatchCmd = &cobra.Command{
	Use:   "watch <post-id>",
	Short: "Follow the comments of a post as they change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		if cfg.NATSURL == "" {
			return fmt.Errorf("nats_url is not configured")
		}
		owner, _ := cmd.Flags().GetString("owner")
		postID := args[0]

		sub, err := events.NewNATSSubscriber(cfg.NATSURL)
		if err != nil {
			return err
		}
		defer sub.Close()

		live := client.New(cfg.ServerURL, client.WithToken(cfg.Token), client.WithSubscriber(sub))
		liveStore, liveActions := newSession(live, cfg.UserID)
		liveStore.Subscribe(func(a store.Action, s store.State) {
			switch a.Type {
			case store.ActionAddCommentList:
				fmt.Println(dimStyle.Render("--- " + time.Now().Format("15:04:05") + " ---"))
				printComments(s.Comment.PostComments[postID])
			case store.ActionShowErrorMessage:
				fmt.Fprintln(os.Stderr, "Error:", s.Global.Message)
			}
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		liveActions.DBGetComments(ctx, owner, postID)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{commentAddCmd, commentListCmd, commentWatchCmd} {
		c.Flags().String("owner", "", "user id of the post owner")
	}

	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentDeleteCmd)
	commentCmd.AddCommand(commentWatchCmd)
}
