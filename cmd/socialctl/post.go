package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"masterboxer.com/social-network/models"
)

var postCmd = &cobra.Command{
	Use:     "post",
	Short:   "Create and list posts",
	GroupID: "social",
}

var postCreateCmd = &cobra.Command{
	Use:   "create <text>",
	Short: "Publish a post",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		post, err := api.CreatePost(context.Background(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
		if jsonOutput {
			return printJSON(post)
		}
		fmt.Printf("Created post %s\n", post.ID)
		return nil
	},
}

var postListCmd = &cobra.Command{
	Use:   "list [user-id]",
	Short: "List a user's posts with their latest comments",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		owner := cfg.UserID
		if len(args) == 1 {
			owner = args[0]
		}

		ctx := context.Background()
		act.DBGetPostsByUser(ctx, owner)
		if err := storeError(st); err != nil {
			return err
		}
		posts := st.GetState().Post.UserPosts[owner]
		for id := range posts {
			act.DBGetComments(ctx, owner, id)
		}
		if err := storeError(st); err != nil {
			return err
		}

		posts = st.GetState().Post.UserPosts[owner]
		if jsonOutput {
			return printJSON(posts)
		}
		printPosts(posts)
		return nil
	},
}

func printPosts(posts map[string]*models.Post) {
	if len(posts) == 0 {
		fmt.Println(dimStyle.Render("No posts yet."))
		return
	}
	list := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreationDate > list[j].CreationDate })

	for _, p := range list {
		fmt.Printf("%s %s\n%s\n", authorStyle.Render(p.ID), dimStyle.Render(formatUnix(p.CreationDate)), p.Body)
		fmt.Println(dimStyle.Render(fmt.Sprintf("%d comments", p.CommentCounter)))
		for _, c := range p.Comments {
			fmt.Print("  ")
			printComment(c)
		}
		fmt.Println()
	}
}

func init() {
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postListCmd)
}
