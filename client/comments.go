package client

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"masterboxer.com/social-network/events"
	"masterboxer.com/social-network/models"
)

func (c *Client) AddComment(ctx context.Context, comment models.Comment) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/posts/"+seg(comment.PostID)+"/comments", comment, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) fetchComments(ctx context.Context, postID string) (models.CommentsByPost, error) {
	var out models.CommentsByPost
	if err := c.do(ctx, http.MethodGet, "/posts/"+seg(postID)+"/comments", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = models.CommentsByPost{}
	}
	return out, nil
}

// GetComments delivers the current comments of postID. With a subscriber
// configured it keeps delivering a fresh copy after every change to that
// post until ctx is done, and then returns ctx.Err().
func (c *Client) GetComments(ctx context.Context, postID string, onUpdate func(models.CommentsByPost)) error {
	if c.subscriber == nil {
		comments, err := c.fetchComments(ctx, postID)
		if err != nil {
			return err
		}
		onUpdate(comments)
		return nil
	}

	// Subscribe first so a change racing the initial fetch is not lost.
	ch, cancel, err := c.subscriber.Subscribe(events.TopicAllComments)
	if err != nil {
		return err
	}
	defer cancel()

	comments, err := c.fetchComments(ctx, postID)
	if err != nil {
		return err
	}
	onUpdate(comments)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case data, ok := <-ch:
			if !ok {
				return nil
			}
			var change events.CommentChange
			if err := json.Unmarshal(data, &change); err != nil {
				zap.S().Debugf("[NATS] ignoring malformed comment event: %v", err)
				continue
			}
			if change.AffectedPost() != postID {
				continue
			}
			comments, err := c.fetchComments(ctx, postID)
			if err != nil {
				return err
			}
			onUpdate(comments)
		}
	}
}

func (c *Client) UpdateComment(ctx context.Context, comment models.Comment) error {
	return c.do(ctx, http.MethodPut, "/comments/"+seg(comment.ID), comment, nil)
}

func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+seg(id), nil, nil)
}
