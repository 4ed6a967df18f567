// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mesa/internal/domain/entity"
	"mesa/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found or not visible
// to the caller.
var ErrOrderNotFound = errors.New("order not found")

// OrderVisibility scopes order reads to what the caller may see.
// A zero value means unrestricted (staff/admin).
type OrderVisibility struct {
	// UserID, when set, restricts reads to orders owned by that user.
	UserID *uuid.UUID
}

// OrderFilter selects orders for listing. Nil fields are ignored.
type OrderFilter struct {
	LocationID *uuid.UUID
	UserID     *uuid.UUID
	Status     *entity.OrderStatus
}

// OrderRepository defines the durable order/order-line/customization-line
// operations. The three insert methods are meant to run inside a single
// TransactionManager unit so the order graph is all-or-nothing.
type OrderRepository interface {
	// CreateOrder inserts the order row (status and computed total included).
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderLine inserts one snapshot line for an order.
	CreateOrderLine(ctx context.Context, line *entity.OrderLine) error

	// CreateOrderLineCustomization inserts one customization snapshot for a line.
	CreateOrderLineCustomization(ctx context.Context, customization *entity.OrderLineCustomization) error

	// UpdateOrderStatus persists a new status for an order.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// FindOrder retrieves a fully hydrated order (lines and customization
	// snapshots, with display names resolved) subject to the visibility scope.
	FindOrder(ctx context.Context, id uuid.UUID, visibility OrderVisibility) (*entity.Order, error)

	// ListOrders retrieves hydrated orders matching the filter, newest first.
	ListOrders(ctx context.Context, filter OrderFilter, page, pageSize int) ([]*entity.Order, error)
}
