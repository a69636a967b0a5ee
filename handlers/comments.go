package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"masterboxer.com/social-network/events"
	"masterboxer.com/social-network/idgen"
	"masterboxer.com/social-network/middleware"
	"masterboxer.com/social-network/models"
)

const maxCommentLength = 500

func validateCommentText(text string) string {
	if text == "" {
		return "Comment text is required"
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return fmt.Sprintf("Comment must be at most %d characters", maxCommentLength)
	}
	return ""
}

func CreateComment(db *sql.DB, pub events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := pathVar(r, "postId")

		var comment models.Comment
		if !decodeBody(w, r, &comment) {
			return
		}
		if msg := validateCommentText(comment.Text); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		ctx := r.Context()
		var exists bool
		if err := db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`, postID).Scan(&exists); err != nil {
			writeStoreError(w, "CreateComment", err)
			return
		}
		if !exists {
			writeStoreError(w, "CreateComment", ErrPostNotFound)
			return
		}

		id, err := idgen.New(idgen.PrefixComment)
		if err != nil {
			writeStoreError(w, "CreateComment", err)
			return
		}
		comment.ID = id
		comment.PostID = postID
		comment.UserID = middleware.UserID(ctx)
		if comment.CreationDate == 0 {
			comment.CreationDate = time.Now().Unix()
		}

		_, err = db.ExecContext(ctx, `
			INSERT INTO comments (id, post_id, user_id, user_display_name, user_avatar, text, score, creation_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			comment.ID, comment.PostID, comment.UserID, comment.UserDisplayName,
			comment.UserAvatar, comment.Text, comment.Score, comment.CreationDate)
		if err != nil {
			writeStoreError(w, "CreateComment", err)
			return
		}

		publish(ctx, pub, events.TopicCommentAdded, events.CommentAdded{Comment: &comment})
		writeJSON(w, http.StatusCreated, map[string]string{"id": comment.ID})
	}
}

// GetPostComments answers with comments keyed by post then comment id. A
// post without comments yields an empty object.
func GetPostComments(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := pathVar(r, "postId")

		rows, err := db.QueryContext(r.Context(), `
			SELECT id, post_id, user_id, user_display_name, user_avatar, text, score, creation_date
			FROM comments
			WHERE post_id = $1
			ORDER BY creation_date ASC, id ASC`,
			postID)
		if err != nil {
			writeStoreError(w, "GetPostComments", err)
			return
		}
		defer rows.Close()

		result := models.CommentsByPost{}
		for rows.Next() {
			var c models.Comment
			if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.UserDisplayName,
				&c.UserAvatar, &c.Text, &c.Score, &c.CreationDate); err != nil {
				writeStoreError(w, "GetPostComments scan", err)
				return
			}
			if result[c.PostID] == nil {
				result[c.PostID] = map[string]*models.Comment{}
			}
			result[c.PostID][c.ID] = &c
		}
		if err := rows.Err(); err != nil {
			writeStoreError(w, "GetPostComments rows", err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func UpdateComment(db *sql.DB, pub events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID := pathVar(r, "commentId")

		var req models.Comment
		if !decodeBody(w, r, &req) {
			return
		}
		if msg := validateCommentText(req.Text); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		ctx := r.Context()
		existing, err := authorComment(ctx, db, commentID, middleware.UserID(ctx))
		if err != nil {
			writeStoreError(w, "UpdateComment", err)
			return
		}

		_, err = db.ExecContext(ctx, `UPDATE comments SET text = $1, score = $2 WHERE id = $3`,
			req.Text, req.Score, commentID)
		if err != nil {
			writeStoreError(w, "UpdateComment", err)
			return
		}

		existing.Text = req.Text
		existing.Score = req.Score
		publish(ctx, pub, events.TopicCommentUpdated, events.CommentUpdated{Comment: existing})
		writeJSON(w, http.StatusOK, existing)
	}
}

func DeleteComment(db *sql.DB, pub events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID := pathVar(r, "commentId")
		ctx := r.Context()

		existing, err := authorComment(ctx, db, commentID, middleware.UserID(ctx))
		if err != nil {
			writeStoreError(w, "DeleteComment", err)
			return
		}

		if _, err := db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID); err != nil {
			writeStoreError(w, "DeleteComment", err)
			return
		}

		publish(ctx, pub, events.TopicCommentDeleted, events.CommentDeleted{CommentID: commentID, PostID: existing.PostID})
		writeJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
	}
}

// authorComment loads a comment and checks it belongs to userID.
func authorComment(ctx context.Context, db *sql.DB, commentID, userID string) (*models.Comment, error) {
	var c models.Comment
	err := db.QueryRowContext(ctx, `
		SELECT id, post_id, user_id, user_display_name, user_avatar, text, score, creation_date
		FROM comments
		WHERE id = $1`, commentID).Scan(&c.ID, &c.PostID, &c.UserID, &c.UserDisplayName,
		&c.UserAvatar, &c.Text, &c.Score, &c.CreationDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load comment %s: %w", commentID, err)
	}
	if c.UserID != userID {
		return nil, ErrNotCommentAuthor
	}
	return &c, nil
}

// publish never fails the request; events only speed up other clients.
func publish(ctx context.Context, pub events.Publisher, topic string, event any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, topic, event); err != nil {
		zap.S().Warnf("[NATS] publish %s failed: %v", topic, err)
	}
}
