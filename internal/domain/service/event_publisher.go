package service

import (
	"context"
)

// OrderEvent is the exported form of an order lifecycle event, published to
// an external message queue for downstream consumers (kitchen displays,
// analytics pipelines). It is a flat, serialization-friendly snapshot.
type OrderEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventType  string `json:"event_type"`           // newOrder, orderStatusUpdated, orderCancelled
	OrderID    string `json:"order_id"`
	UserID     string `json:"user_id"`
	LocationID string `json:"location_id"`
	Status     string `json:"status"`
	Total      string `json:"total"` // Decimal string, e.g. "24.00"
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
