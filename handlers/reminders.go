package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ReminderStats reports what one reminder run did.
type ReminderStats struct {
	Users int
	Sent  int
}

// SendUnseenReminderNotifications pushes one summary to every user holding
// unseen notifications older than minAge.
func SendUnseenReminderNotifications(ctx context.Context, db *sql.DB, notifier UserNotifier, minAge time.Duration) (ReminderStats, error) {
	log := zap.S()
	now := time.Now().UTC()
	log.Infof("[UnseenReminder] Job started at %v UTC", now)

	rows, err := db.QueryContext(ctx, `
		SELECT notify_reciever_user_id, COUNT(*)
		FROM notifications
		WHERE is_seen = FALSE
		  AND creation_date <= $1
		GROUP BY notify_reciever_user_id`,
		now.Add(-minAge).Unix())
	if err != nil {
		return ReminderStats{}, fmt.Errorf("fetch unseen counts: %w", err)
	}

	type pending struct {
		userID string
		count  int
	}
	var users []pending
	for rows.Next() {
		var p pending
		if err := rows.Scan(&p.userID, &p.count); err != nil {
			log.Warnf("[UnseenReminder] Scan error: %v", err)
			continue
		}
		users = append(users, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return ReminderStats{}, fmt.Errorf("iterate unseen counts: %w", err)
	}

	var stats ReminderStats
	for _, p := range users {
		stats.Users++
		body := "You have 1 unseen notification"
		if p.count > 1 {
			body = fmt.Sprintf("You have %d unseen notifications", p.count)
		}
		data := map[string]string{"type": "unseen_reminder", "count": fmt.Sprint(p.count)}

		sent, err := notifier.NotifyUser(ctx, p.userID, "Catch up on your circle", body, data)
		if err != nil {
			log.Errorf("[UnseenReminder] Failed to notify user %s: %v", p.userID, err)
			continue
		}
		stats.Sent += sent
	}

	log.Infof("[UnseenReminder] Job finished | users=%d sent=%d", stats.Users, stats.Sent)
	return stats, nil
}
