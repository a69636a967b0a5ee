package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"masterboxer.com/social-network/idgen"
	"masterboxer.com/social-network/middleware"
	"masterboxer.com/social-network/models"
)

func CreateUser(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var u models.User
		if !decodeBody(w, r, &u) {
			return
		}

		u.Username = strings.TrimSpace(u.Username)
		u.Email = strings.TrimSpace(u.Email)
		if u.Username == "" || u.FullName == "" || u.Email == "" || u.Password == "" {
			writeError(w, http.StatusBadRequest, "username, full_name, email, and password are required")
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}

		u.ID, err = idgen.New(idgen.PrefixUser)
		if err != nil {
			writeStoreError(w, "CreateUser", err)
			return
		}

		err = db.QueryRowContext(r.Context(), `
			INSERT INTO users (id, username, full_name, avatar, email, password, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
			RETURNING created_at`,
			u.ID, u.Username, u.FullName, u.Avatar, u.Email, string(hashedPassword),
		).Scan(&u.CreatedAt)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == "23505" {
				writeError(w, http.StatusConflict, "Username or email already taken")
				return
			}
			writeStoreError(w, "CreateUser", err)
			return
		}

		u.Password = ""
		writeJSON(w, http.StatusCreated, u)
	}
}

func Login(db *sql.DB, auth *middleware.Auth) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if !decodeBody(w, r, &req) {
			return
		}

		var userID, hash string
		err := db.QueryRowContext(r.Context(),
			`SELECT id, password FROM users WHERE username = $1`, req.Username).Scan(&userID, &hash)
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		if err != nil {
			writeStoreError(w, "Login", err)
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
			writeError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		token, err := auth.IssueToken(userID)
		if err != nil {
			writeStoreError(w, "Login", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"token": token, "user_id": userID})
	}
}

func GetUserById(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")

		var info models.UserInfo
		err := db.QueryRowContext(r.Context(),
			`SELECT id, username, full_name, avatar FROM users WHERE id = $1`, id,
		).Scan(&info.ID, &info.Username, &info.FullName, &info.Avatar)
		if errors.Is(err, sql.ErrNoRows) {
			writeStoreError(w, "GetUserById", ErrUserNotFound)
			return
		}
		if err != nil {
			writeStoreError(w, "GetUserById", err)
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

func RegisterFCMToken(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := pathVar(r, "user_id")
		if !requireSelf(w, r, userID) {
			return
		}

		var req struct {
			Token string `json:"token"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Token == "" {
			writeError(w, http.StatusBadRequest, "token is required")
			return
		}

		_, err := db.ExecContext(r.Context(), `
			INSERT INTO fcm_tokens (user_id, token, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id, updated_at = NOW()`,
			userID, req.Token)
		if err != nil {
			writeStoreError(w, "RegisterFCMToken", err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Token registered"})
	}
}

// requireSelf rejects requests acting on behalf of another user.
func requireSelf(w http.ResponseWriter, r *http.Request, userID string) bool {
	if middleware.UserID(r.Context()) != userID {
		writeError(w, http.StatusForbidden, "Unauthorized")
		return false
	}
	return true
}
