package service

import "context"

// PushService defines the interface for sending mobile push notifications.
type PushService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error

	// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
