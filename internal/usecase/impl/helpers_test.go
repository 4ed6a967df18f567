package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mesa/internal/domain/entity"
	"mesa/internal/domain/repository"
	mockRepo "mesa/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// mockAnythingTxFn matches the transactional closure passed to Execute.
var mockAnythingTxFn = mock.AnythingOfType("func(repository.RepositoryFactory) error")

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPassthroughTxManager wires a transaction manager mock that simply runs
// the transactional function against the given factory.
func newPassthroughTxManager(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().
		Execute(context.Background(), mockAnythingTxFn).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txManager
}

func newActiveLocation() *entity.Location {
	now := time.Now()

	return &entity.Location{
		ID:        uuid.New(),
		Name:      "Downtown",
		Address:   "1 Main St",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newAvailableMenuItem(locationID uuid.UUID, price string) *entity.MenuItem {
	now := time.Now()

	return &entity.MenuItem{
		ID:          uuid.New(),
		LocationID:  locationID,
		Name:        "Cheeseburger",
		Description: "House burger",
		Category:    "mains",
		Price:       decimal.RequireFromString(price),
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func newCustomization(menuItemID uuid.UUID, price string) *entity.Customization {
	now := time.Now()

	return &entity.Customization{
		ID:         uuid.New(),
		MenuItemID: menuItemID,
		Name:       "Extra cheese",
		Price:      decimal.RequireFromString(price),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func newHydratedOrder(userID, locationID uuid.UUID, status entity.OrderStatus, total string) *entity.Order {
	now := time.Now()

	return &entity.Order{
		ID:         uuid.New(),
		UserID:     userID,
		LocationID: locationID,
		Status:     status,
		Total:      decimal.RequireFromString(total),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
