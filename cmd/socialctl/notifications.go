package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"masterboxer.com/social-network/models"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Short:   "List your notifications",
	GroupID: "social",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		act.DBGetNotifications(context.Background())
		if err := storeError(st); err != nil {
			return err
		}

		list := st.GetState().Notify.UserNotifies
		if jsonOutput {
			return printJSON(list)
		}
		printNotifications(list)
		return nil
	},
}

var notificationsSeenCmd = &cobra.Command{
	Use:   "seen <notification-id>",
	Short: "Mark a notification as seen",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLogin(); err != nil {
			return err
		}
		if err := api.MarkNotificationSeen(context.Background(), args[0]); err != nil {
			return fmt.Errorf("marking %s seen: %w", args[0], err)
		}
		return nil
	},
}

func printNotifications(list map[string]models.Notification) {
	if len(list) == 0 {
		fmt.Println(dimStyle.Render("No notifications."))
		return
	}
	sorted := make([]models.Notification, 0, len(list))
	for _, n := range list {
		sorted = append(sorted, n)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreationDate > sorted[j].CreationDate })

	for _, n := range sorted {
		marker := "  "
		if !n.IsSeen {
			marker = unseenStyle.Render("* ")
		}
		fmt.Printf("%s%s %s %s\n", marker, n.Description, dimStyle.Render(n.URL),
			dimStyle.Render(formatUnix(n.CreationDate)+" ["+n.ID+"]"))
	}
}

func init() {
	notificationsCmd.AddCommand(notificationsSeenCmd)
}
