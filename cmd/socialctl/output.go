package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"

	"masterboxer.com/social-network/models"
)

var (
	authorStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	unseenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
)

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func formatUnix(sec int64) string {
	return time.Unix(sec, 0).Format("2006-01-02 15:04")
}

// sortedComments orders comments oldest first.
func sortedComments(comments map[string]*models.Comment) []*models.Comment {
	list := make([]*models.Comment, 0, len(comments))
	for _, c := range comments {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreationDate != list[j].CreationDate {
			return list[i].CreationDate < list[j].CreationDate
		}
		return list[i].ID < list[j].ID
	})
	return list
}

func printComment(c *models.Comment) {
	name := c.UserDisplayName
	if name == "" {
		name = c.UserID
	}
	fmt.Printf("%s %s %s\n  %s\n", authorStyle.Render(name), dimStyle.Render(formatUnix(c.CreationDate)),
		dimStyle.Render("["+c.ID+"]"), c.Text)
}

func printComments(comments map[string]*models.Comment) {
	if len(comments) == 0 {
		fmt.Println(dimStyle.Render("No comments yet."))
		return
	}
	for _, c := range sortedComments(comments) {
		printComment(c)
	}
}
