package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, s.IsValid(), s.String())
	}

	assert.False(t, OrderStatus("DELIVERED").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusInProgress.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
}

func TestOrderStatus_IsCancellable(t *testing.T) {
	assert.True(t, OrderStatusPending.IsCancellable())
	assert.False(t, OrderStatusInProgress.IsCancellable())
	assert.False(t, OrderStatusCompleted.IsCancellable())
	assert.False(t, OrderStatusCancelled.IsCancellable())
}

func TestRole_CanSetOrderStatus(t *testing.T) {
	assert.False(t, RoleCustomer.CanSetOrderStatus())
	assert.False(t, RoleWaiter.CanSetOrderStatus())
	assert.True(t, RoleKitchen.CanSetOrderStatus())
	assert.True(t, RoleAdmin.CanSetOrderStatus())
}

func TestOrderLine_LineTotal(t *testing.T) {
	line := &OrderLine{
		Quantity:    2,
		PriceAtTime: decimal.RequireFromString("10.00"),
		Customizations: []*OrderLineCustomization{
			{Quantity: 1, PriceAtTime: decimal.RequireFromString("2.00")},
		},
	}

	// 2*10.00 + (1*2.00)*2 = 24.00
	assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("24.00")))
}

func TestOrderLine_LineTotal_NoCustomizations(t *testing.T) {
	line := &OrderLine{
		Quantity:    3,
		PriceAtTime: decimal.RequireFromString("4.50"),
	}

	assert.True(t, line.LineTotal().Equal(decimal.RequireFromString("13.50")))
}
