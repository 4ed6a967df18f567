// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of lifecycle states for an order.
type OrderStatus string

const (
	// OrderStatusPending is the initial state of every order.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusInProgress means the kitchen has started preparation.
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	// OrderStatusCompleted is terminal; the order was fulfilled.
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusCancelled is terminal; the order was cancelled.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition leaves this status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// IsCancellable reports whether the guarded cancel operation may run.
// Only PENDING orders can be cancelled; everything else is an illegal
// transition for that path.
func (s OrderStatus) IsCancellable() bool {
	return s == OrderStatusPending
}

// Order belongs to exactly one User and one Location. The total is computed
// once at creation from snapshot prices and never recomputed from the live
// catalog. Orders are never deleted, only terminated.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	LocationID uuid.UUID       `json:"location_id"`
	Status     OrderStatus     `json:"status"`
	Total      decimal.Decimal `json:"total"`
	Lines      []*OrderLine    `json:"lines"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// OrderLine is the snapshot of one cart entry. PriceAtTime is a historical
// fact, not a live reference.
type OrderLine struct {
	ID             uuid.UUID                 `json:"id"`
	OrderID        uuid.UUID                 `json:"order_id"`
	MenuItemID     uuid.UUID                 `json:"menu_item_id"`
	MenuItemName   string                    `json:"menu_item_name"` // Hydrated for display; not part of the snapshot invariant.
	Quantity       int                       `json:"quantity"`
	PriceAtTime    decimal.Decimal           `json:"price_at_time"`
	Customizations []*OrderLineCustomization `json:"customizations"`
}

// OrderLineCustomization is the snapshot of one customization reference
// within an order line.
type OrderLineCustomization struct {
	ID              uuid.UUID       `json:"id"`
	OrderLineID     uuid.UUID       `json:"order_line_id"`
	CustomizationID uuid.UUID       `json:"customization_id"`
	Name            string          `json:"name"` // Hydrated for display.
	Quantity        int             `json:"quantity"`
	PriceAtTime     decimal.Decimal `json:"price_at_time"`
}

// LineTotal computes priceAtTime*qty + (sum of customization priceAtTime*qty)*qty
// from the stored snapshots.
func (l *OrderLine) LineTotal() decimal.Decimal {
	qty := decimal.NewFromInt(int64(l.Quantity))
	total := l.PriceAtTime.Mul(qty)

	custSum := decimal.Zero
	for _, c := range l.Customizations {
		custSum = custSum.Add(c.PriceAtTime.Mul(decimal.NewFromInt(int64(c.Quantity))))
	}

	return total.Add(custSum.Mul(qty))
}
