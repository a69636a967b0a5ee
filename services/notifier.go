// Package services delivers push notifications to user devices.
package services

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

// Notifier resolves a user's device tokens and pushes to all of them.
type Notifier struct {
	db     *sql.DB
	pusher Pusher
}

func NewNotifier(db *sql.DB, pusher Pusher) *Notifier {
	if pusher == nil {
		pusher = NoopPusher{}
	}
	return &Notifier{db: db, pusher: pusher}
}

// NotifyUser returns the number of devices reached. A user without any
// registered device is not an error.
func (n *Notifier) NotifyUser(ctx context.Context, userID, title, body string, data map[string]string) (int, error) {
	tokens, err := n.userTokens(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		zap.S().Debugf("[FCM] No FCM tokens found for user %s", userID)
		return 0, nil
	}

	result, err := n.pusher.SendMulticast(ctx, tokens, title, Preview(body), data)
	if err != nil {
		return 0, err
	}

	for _, token := range result.DeadTokens {
		zap.S().Infof("[FCM] Deleting dead token: %s", truncateToken(token))
		if _, err := n.db.ExecContext(ctx, `DELETE FROM fcm_tokens WHERE token = $1`, token); err != nil {
			zap.S().Errorf("[FCM][ERROR] Failed to delete token %s: %v", truncateToken(token), err)
		}
	}
	return result.SuccessCount, nil
}

func (n *Notifier) userTokens(ctx context.Context, userID string) ([]string, error) {
	rows, err := n.db.QueryContext(ctx, `
		SELECT token
		FROM fcm_tokens
		WHERE user_id = $1
		  AND token != ''`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query fcm tokens: %w", err)
	}
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, fmt.Errorf("scan fcm token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}

// Preview shortens text to fit a notification body.
func Preview(text string) string {
	r := []rune(text)
	if len(r) > 100 {
		return string(r[:97]) + "..."
	}
	return text
}
