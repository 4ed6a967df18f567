package service

import "mesa/internal/domain/entity"

// Server-to-client event names pushed over the real-time boundary.
const (
	EventNewOrder           = "newOrder"
	EventOrderStatusUpdated = "orderStatusUpdated"
	EventOrderCancelled     = "orderCancelled"
)

// OrderNotifier delivers order lifecycle events to the live subscribers of
// the order's location channel and the owning user's personal channel.
// Delivery is best-effort to currently connected subscribers only: no
// persistence, no replay, and implementations must never block the caller.
type OrderNotifier interface {
	// NotifyOrderCreated publishes a newOrder event with the hydrated order.
	NotifyOrderCreated(order *entity.Order)

	// NotifyOrderStatusUpdated publishes an orderStatusUpdated event.
	NotifyOrderStatusUpdated(order *entity.Order)

	// NotifyOrderCancelled publishes an orderCancelled event.
	NotifyOrderCancelled(order *entity.Order)
}
