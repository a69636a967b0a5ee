package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"masterboxer.com/social-network/idgen"
	"masterboxer.com/social-network/middleware"
	"masterboxer.com/social-network/models"
)

const maxPostLength = 2000

func CreatePost(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p models.Post
		if !decodeBody(w, r, &p) {
			return
		}
		if p.Body == "" {
			writeError(w, http.StatusBadRequest, "body is required")
			return
		}
		if utf8.RuneCountInString(p.Body) > maxPostLength {
			writeError(w, http.StatusBadRequest, "body must be at most 2000 characters")
			return
		}

		id, err := idgen.New(idgen.PrefixPost)
		if err != nil {
			writeStoreError(w, "CreatePost", err)
			return
		}
		p.ID = id
		p.OwnerUserID = middleware.UserID(r.Context())
		p.CreationDate = time.Now().Unix()
		p.Comments = nil
		p.CommentCounter = 0

		_, err = db.ExecContext(r.Context(), `
			INSERT INTO posts (id, owner_user_id, body, creation_date)
			VALUES ($1, $2, $3, $4)`,
			p.ID, p.OwnerUserID, p.Body, p.CreationDate)
		if err != nil {
			writeStoreError(w, "CreatePost", err)
			return
		}

		writeJSON(w, http.StatusCreated, p)
	}
}

// GetPostsByUser returns the user's posts keyed by post id, each with its
// total comment count.
func GetPostsByUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := pathVar(r, "userId")

		rows, err := db.QueryContext(r.Context(), `
			SELECT p.id, p.owner_user_id, p.body, p.creation_date,
			       (SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count
			FROM posts p
			WHERE p.owner_user_id = $1
			ORDER BY p.creation_date DESC`,
			userID)
		if err != nil {
			writeStoreError(w, "GetPostsByUser", err)
			return
		}
		defer rows.Close()

		posts := map[string]*models.Post{}
		for rows.Next() {
			var p models.Post
			if err := rows.Scan(&p.ID, &p.OwnerUserID, &p.Body, &p.CreationDate, &p.CommentCounter); err != nil {
				writeStoreError(w, "GetPostsByUser scan", err)
				return
			}
			posts[p.ID] = &p
		}
		if err := rows.Err(); err != nil {
			writeStoreError(w, "GetPostsByUser rows", err)
			return
		}

		writeJSON(w, http.StatusOK, posts)
	}
}

func DeletePost(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")
		ctx := r.Context()

		var owner string
		err := db.QueryRowContext(ctx, `SELECT owner_user_id FROM posts WHERE id = $1`, id).Scan(&owner)
		if errors.Is(err, sql.ErrNoRows) {
			writeStoreError(w, "DeletePost", ErrPostNotFound)
			return
		}
		if err != nil {
			writeStoreError(w, "DeletePost", err)
			return
		}
		if owner != middleware.UserID(ctx) {
			writeError(w, http.StatusForbidden, "Unauthorized")
			return
		}

		if _, err := db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
			writeStoreError(w, "DeletePost", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
	}
}
