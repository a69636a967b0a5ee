package models

import (
	"sort"
	"strings"
)

// RecentCommentsLimit is how many comments a post keeps in its cached preview.
const RecentCommentsLimit = 3

type Comment struct {
	ID              string `json:"id,omitempty"`
	PostID          string `json:"post_id"`
	UserID          string `json:"user_id"`
	UserDisplayName string `json:"user_display_name"`
	UserAvatar      string `json:"user_avatar"`
	Text            string `json:"text"`
	Score           int    `json:"score"`
	CreationDate    int64  `json:"creation_date"`

	// EditorStatus is UI state and never leaves the client.
	EditorStatus bool `json:"-"`
}

// CommentsByPost maps a post id to that post's comments keyed by comment id.
type CommentsByPost map[string]map[string]*Comment

// RecentComments returns the number of comments and the most recent
// RecentCommentsLimit of them, newest first. Comments created in the same
// second are ordered by id so the preview is stable between refreshes.
func RecentComments(comments map[string]*Comment) (int, []*Comment) {
	count := len(comments)
	recent := make([]*Comment, 0, count)
	for _, c := range comments {
		recent = append(recent, c)
	}
	if count <= 1 {
		return count, recent
	}

	sort.Slice(recent, func(i, j int) bool {
		if recent[i].CreationDate != recent[j].CreationDate {
			return recent[i].CreationDate > recent[j].CreationDate
		}
		return strings.Compare(recent[i].ID, recent[j].ID) < 0
	})
	if len(recent) > RecentCommentsLimit {
		recent = recent[:RecentCommentsLimit]
	}
	return count, recent
}
