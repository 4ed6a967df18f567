// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
)

// Caller identifies the authenticated principal performing an operation.
// It is extracted from the verified access token by the delivery layer.
type Caller struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// --- Input DTOs ---

// CreateOrderInput defines the data required to place a new order.
// Prices are never accepted from the client; only identifiers and quantities.
type CreateOrderInput struct {
	LocationID uuid.UUID
	Cart       entity.Cart
}

// SetOrderStatusInput defines the data required to move an order to a new status.
type SetOrderStatusInput struct {
	OrderID uuid.UUID
	Status  entity.OrderStatus
}

// ListOrdersQuery defines the optional filters for listing orders.
type ListOrdersQuery struct {
	LocationID *uuid.UUID
	Status     *entity.OrderStatus
	Page       int
	PageSize   int
}

// OrderUsecase defines the interface for order lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type OrderUsecase interface {
	// CreateOrder prices the cart server-side, persists the full order graph
	// atomically, and fans the new order out to live subscribers.
	CreateOrder(ctx context.Context, caller Caller, input CreateOrderInput) (*entity.Order, error)

	// SetStatus moves an order to the given status. Restricted to kitchen
	// staff and admins.
	SetStatus(ctx context.Context, caller Caller, input SetOrderStatusInput) (*entity.Order, error)

	// Cancel cancels a PENDING order. Customers may only cancel their own.
	Cancel(ctx context.Context, caller Caller, orderID uuid.UUID) (*entity.Order, error)

	// GetOrder retrieves a single hydrated order, scoped to the caller's
	// visibility (customers see only their own orders).
	GetOrder(ctx context.Context, caller Caller, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves hydrated orders matching the query, newest first,
	// scoped to the caller's visibility.
	ListOrders(ctx context.Context, caller Caller, query ListOrdersQuery) ([]*entity.Order, error)
}
