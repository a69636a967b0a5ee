package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"masterboxer.com/social-network/components"
)

var followingCmd = &cobra.Command{
	Use:     "following",
	Short:   "Show the users you follow",
	GroupID: "social",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		ctx := context.Background()

		act.DBGetFollowing(ctx)
		if err := storeError(st); err != nil {
			return err
		}

		props := components.FollowingFromState(st.GetState())
		switch {
		case jsonOutput:
			return printJSON(props.FollowingUsers)
		case mustBool(cmd, "html"):
			if err := components.Following(props.FollowingUsers).Render(ctx, os.Stdout); err != nil {
				return err
			}
			fmt.Println()
		default:
			fmt.Print(components.FollowingText(props.FollowingUsers))
		}
		return nil
	},
}

var followCmd = &cobra.Command{
	Use:     "follow <user-id>",
	Short:   "Follow a user",
	GroupID: "social",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		if err := api.Follow(context.Background(), cfg.UserID, args[0]); err != nil {
			return fmt.Errorf("following %s: %w", args[0], err)
		}
		fmt.Printf("Now following %s\n", args[0])
		return nil
	},
}

var unfollowCmd = &cobra.Command{
	Use:     "unfollow <user-id>",
	Short:   "Stop following a user",
	GroupID: "social",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		if err := api.Unfollow(context.Background(), cfg.UserID, args[0]); err != nil {
			return fmt.Errorf("unfollowing %s: %w", args[0], err)
		}
		fmt.Printf("Unfollowed %s\n", args[0])
		return nil
	},
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func init() {
	followingCmd.Flags().Bool("html", false, "render the HTML component instead of text")
}
