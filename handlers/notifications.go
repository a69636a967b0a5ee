package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"go.uber.org/zap"

	"masterboxer.com/social-network/events"
	"masterboxer.com/social-network/idgen"
	"masterboxer.com/social-network/middleware"
	"masterboxer.com/social-network/models"
)

// UserNotifier pushes a message to every device of a user.
type UserNotifier interface {
	NotifyUser(ctx context.Context, userID, title, body string, data map[string]string) (int, error)
}

func CreateNotification(db *sql.DB, pub events.Publisher, notifier UserNotifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var n models.Notification
		if !decodeBody(w, r, &n) {
			return
		}
		if n.NotifyRecieverUserID == "" || n.Description == "" {
			writeError(w, http.StatusBadRequest, "notify_reciever_user_id and description are required")
			return
		}

		ctx := r.Context()
		id, err := idgen.New(idgen.PrefixNotification)
		if err != nil {
			writeStoreError(w, "CreateNotification", err)
			return
		}
		n.ID = id
		n.NotifierUserID = middleware.UserID(ctx)
		n.IsSeen = false
		n.CreationDate = time.Now().Unix()

		_, err = db.ExecContext(ctx, `
			INSERT INTO notifications (id, description, url, notify_reciever_user_id, notifier_user_id, is_seen, creation_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			n.ID, n.Description, n.URL, n.NotifyRecieverUserID, n.NotifierUserID, n.IsSeen, n.CreationDate)
		if err != nil {
			writeStoreError(w, "CreateNotification", err)
			return
		}

		publish(ctx, pub, events.TopicNotificationAdded, events.NotificationAdded{Notification: &n})
		go pushNotification(notifier, n)

		writeJSON(w, http.StatusCreated, n)
	}
}

func pushNotification(notifier UserNotifier, n models.Notification) {
	if notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data := map[string]string{
		"type":            "notification",
		"notification_id": n.ID,
		"url":             n.URL,
		"notifier_id":     n.NotifierUserID,
	}
	sent, err := notifier.NotifyUser(ctx, n.NotifyRecieverUserID, "New notification", n.Description, data)
	if err != nil {
		zap.S().Errorf("[FCM] push for notification %s failed: %v", n.ID, err)
		return
	}
	zap.S().Infof("[FCM] notification %s delivered to %d devices of %s", n.ID, sent, n.NotifyRecieverUserID)
}

func GetUserNotifications(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := pathVar(r, "user_id")
		if !requireSelf(w, r, userID) {
			return
		}

		rows, err := db.QueryContext(r.Context(), `
			SELECT id, description, url, notify_reciever_user_id, notifier_user_id, is_seen, creation_date
			FROM notifications
			WHERE notify_reciever_user_id = $1
			ORDER BY creation_date DESC`,
			userID)
		if err != nil {
			writeStoreError(w, "GetUserNotifications", err)
			return
		}
		defer rows.Close()

		result := map[string]models.Notification{}
		for rows.Next() {
			var n models.Notification
			if err := rows.Scan(&n.ID, &n.Description, &n.URL, &n.NotifyRecieverUserID,
				&n.NotifierUserID, &n.IsSeen, &n.CreationDate); err != nil {
				writeStoreError(w, "GetUserNotifications scan", err)
				return
			}
			result[n.ID] = n
		}
		if err := rows.Err(); err != nil {
			writeStoreError(w, "GetUserNotifications rows", err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func MarkNotificationSeen(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathVar(r, "id")

		res, err := db.ExecContext(r.Context(), `
			UPDATE notifications SET is_seen = TRUE
			WHERE id = $1 AND notify_reciever_user_id = $2`,
			id, middleware.UserID(r.Context()))
		if err != nil {
			writeStoreError(w, "MarkNotificationSeen", err)
			return
		}
		if n, _ := res.RowsAffected(); n == 0 {
			writeStoreError(w, "MarkNotificationSeen", ErrNotificationNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as seen"})
	}
}
