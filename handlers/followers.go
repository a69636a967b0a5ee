package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"masterboxer.com/social-network/components"
	"masterboxer.com/social-network/models"
)

func FollowUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followerID := pathVar(r, "user_id")
		if !requireSelf(w, r, followerID) {
			return
		}

		var req struct {
			FollowingID string `json:"following_id"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if req.FollowingID == "" {
			writeError(w, http.StatusBadRequest, "following_id is required")
			return
		}
		if req.FollowingID == followerID {
			writeError(w, http.StatusBadRequest, "Cannot follow yourself")
			return
		}

		res, err := db.ExecContext(r.Context(), `
			INSERT INTO followers (follower_id, following_id, created_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT DO NOTHING`,
			followerID, req.FollowingID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23503" {
				writeStoreError(w, "FollowUser", ErrUserNotFound)
				return
			}
			writeStoreError(w, "FollowUser", err)
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			writeError(w, http.StatusConflict, "Already following this user")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]string{"message": "Successfully followed user"})
	}
}

func UnfollowUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		followerID := pathVar(r, "user_id")
		followingID := pathVar(r, "following_id")
		if !requireSelf(w, r, followerID) {
			return
		}

		res, err := db.ExecContext(r.Context(),
			`DELETE FROM followers WHERE follower_id = $1 AND following_id = $2`,
			followerID, followingID)
		if err != nil {
			writeStoreError(w, "UnfollowUser", err)
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			writeError(w, http.StatusNotFound, "Not following this user")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully unfollowed user"})
	}
}

// GetUserFollowing returns the following set as user ties keyed by user id,
// or the rendered Following component when the caller asks for HTML.
func GetUserFollowing(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ties, ok := queryTies(w, r, db, "GetUserFollowing", `
			SELECT u.id, u.full_name, u.avatar, EXTRACT(EPOCH FROM f.created_at)::BIGINT
			FROM followers f
			JOIN users u ON f.following_id = u.id
			WHERE f.follower_id = $1
			ORDER BY f.created_at DESC`)
		if !ok {
			return
		}

		if strings.Contains(r.Header.Get("Accept"), "text/html") {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			if err := components.Following(ties).Render(r.Context(), w); err != nil {
				zap.S().Errorf("render following: %v", err)
			}
			return
		}
		writeJSON(w, http.StatusOK, ties)
	}
}

func GetUserFollowers(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ties, ok := queryTies(w, r, db, "GetUserFollowers", `
			SELECT u.id, u.full_name, u.avatar, EXTRACT(EPOCH FROM f.created_at)::BIGINT
			FROM followers f
			JOIN users u ON f.follower_id = u.id
			WHERE f.following_id = $1
			ORDER BY f.created_at DESC`)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, ties)
	}
}

func queryTies(w http.ResponseWriter, r *http.Request, db *sql.DB, op, query string) (map[string]models.UserTie, bool) {
	rows, err := db.QueryContext(r.Context(), query, pathVar(r, "user_id"))
	if err != nil {
		writeStoreError(w, op, err)
		return nil, false
	}
	defer rows.Close()

	ties := map[string]models.UserTie{}
	for rows.Next() {
		var tie models.UserTie
		if err := rows.Scan(&tie.UserID, &tie.FullName, &tie.Avatar, &tie.CreationDate); err != nil {
			writeStoreError(w, op+" scan", err)
			return nil, false
		}
		tie.CircleIDList = []string{"following"}
		ties[tie.UserID] = tie
	}
	if err := rows.Err(); err != nil {
		writeStoreError(w, op+" rows", err)
		return nil, false
	}
	return ties, true
}
