package realtime

import (
	"mesa/internal/domain/entity"
	"mesa/internal/domain/service"
)

// hubNotifier implements service.OrderNotifier on top of the hub. Every
// lifecycle event reaches the owning user's personal channel and the
// location channel the staff watch.
type hubNotifier struct {
	hub *Hub
}

// NewOrderNotifier is the constructor for hubNotifier.
func NewOrderNotifier(hub *Hub) service.OrderNotifier {
	return &hubNotifier{hub: hub}
}

// NotifyOrderCreated publishes a newOrder event with the hydrated order.
func (n *hubNotifier) NotifyOrderCreated(order *entity.Order) {
	n.publish(service.EventNewOrder, order)
}

// NotifyOrderStatusUpdated publishes an orderStatusUpdated event.
func (n *hubNotifier) NotifyOrderStatusUpdated(order *entity.Order) {
	n.publish(service.EventOrderStatusUpdated, order)
}

// NotifyOrderCancelled publishes an orderCancelled event.
func (n *hubNotifier) NotifyOrderCancelled(order *entity.Order) {
	n.publish(service.EventOrderCancelled, order)
}

func (n *hubNotifier) publish(event string, order *entity.Order) {
	n.hub.Publish(UserChannel(order.UserID), event, order)
	n.hub.Publish(LocationChannel(order.LocationID), event, order)
}
