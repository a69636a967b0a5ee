package services

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// BatchResult summarises one multicast send.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	// DeadTokens were rejected as unregistered and should be forgotten.
	DeadTokens []string
}

type Pusher interface {
	SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (BatchResult, error)
}

type FCMPusher struct {
	client *messaging.Client
}

func NewFCMPusher(ctx context.Context, credentialsPath string) (*FCMPusher, error) {
	zap.S().Infof("[FCM] Initializing Firebase with credentials: %s", credentialsPath)

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("get messaging client: %w", err)
	}

	zap.S().Info("[FCM] Firebase Messaging client initialized successfully")
	return &FCMPusher{client: client}, nil
}

func (p *FCMPusher) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (BatchResult, error) {
	log := zap.S()
	log.Infof("[FCM] Sending multicast | tokens=%d title=%q", len(tokens), title)

	message := &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:   data,
		Tokens: tokens,
	}

	response, err := p.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return BatchResult{}, fmt.Errorf("multicast send: %w", err)
	}

	result := BatchResult{SuccessCount: response.SuccessCount, FailureCount: response.FailureCount}
	for i, resp := range response.Responses {
		if resp.Success {
			continue
		}
		log.Warnf("[FCM][TOKEN ERROR] token=%s error=%v", truncateToken(tokens[i]), resp.Error)
		if messaging.IsUnregistered(resp.Error) {
			result.DeadTokens = append(result.DeadTokens, tokens[i])
		}
	}

	log.Infof("[FCM] Multicast result | success=%d failure=%d", result.SuccessCount, result.FailureCount)
	return result, nil
}

// NoopPusher stands in when no Firebase credentials are configured.
type NoopPusher struct{}

func (NoopPusher) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (BatchResult, error) {
	zap.S().Debugf("[FCM] push disabled, dropping %q for %d tokens", title, len(tokens))
	return BatchResult{}, nil
}

func truncateToken(token string) string {
	return token[:min(10, len(token))] + "..."
}
