// Package events publishes comment and notification changes so live clients
// can refresh without polling.
package events

import (
	"context"

	"masterboxer.com/social-network/models"
)

const (
	TopicCommentAdded   = "social.comment.added"
	TopicCommentUpdated = "social.comment.updated"
	TopicCommentDeleted = "social.comment.deleted"

	TopicNotificationAdded = "social.notification.added"

	// TopicAllComments matches every comment topic.
	TopicAllComments = "social.comment.>"
)

type CommentAdded struct {
	Comment *models.Comment `json:"comment"`
}

type CommentUpdated struct {
	Comment *models.Comment `json:"comment"`
}

type CommentDeleted struct {
	CommentID string `json:"comment_id"`
	PostID    string `json:"post_id"`
}

type NotificationAdded struct {
	Notification *models.Notification `json:"notification"`
}

// CommentChange is the subset every comment event carries; subscribers
// decode into it to find the affected post.
type CommentChange struct {
	Comment *models.Comment `json:"comment,omitempty"`
	PostID  string          `json:"post_id,omitempty"`
}

func (c CommentChange) AffectedPost() string {
	if c.PostID != "" {
		return c.PostID
	}
	if c.Comment != nil {
		return c.Comment.PostID
	}
	return ""
}

type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}

type Subscriber interface {
	Subscribe(topic string) (<-chan []byte, func(), error)
	Close() error
}
