// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mesa/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// CreateLocationInput defines the data required to create a location.
type CreateLocationInput struct {
	Name    string
	Address string
}

// UpdateLocationInput defines the mutable fields of a location.
type UpdateLocationInput struct {
	LocationID uuid.UUID
	Name       string
	Address    string
	IsActive   bool
}

// CreateMenuItemInput defines the data required to create a menu item.
type CreateMenuItemInput struct {
	LocationID  uuid.UUID
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
}

// UpdateMenuItemInput defines the mutable fields of a menu item.
type UpdateMenuItemInput struct {
	MenuItemID  uuid.UUID
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	IsAvailable bool
}

// CreateCustomizationInput defines the data required to create a customization.
type CreateCustomizationInput struct {
	MenuItemID uuid.UUID
	Name       string
	Price      decimal.Decimal
}

// MenuItemWithCustomizations bundles a menu item with its customization options
// for the customer-facing menu view.
type MenuItemWithCustomizations struct {
	*entity.MenuItem
	Customizations []*entity.Customization `json:"customizations"`
}

// CatalogUsecase defines the interface for location and menu management.
// Write operations are restricted to admins; reads are public.
type CatalogUsecase interface {
	CreateLocation(ctx context.Context, caller Caller, input CreateLocationInput) (*entity.Location, error)
	UpdateLocation(ctx context.Context, caller Caller, input UpdateLocationInput) (*entity.Location, error)
	ListLocations(ctx context.Context, activeOnly bool) ([]*entity.Location, error)

	CreateMenuItem(ctx context.Context, caller Caller, input CreateMenuItemInput) (*entity.MenuItem, error)
	UpdateMenuItem(ctx context.Context, caller Caller, input UpdateMenuItemInput) (*entity.MenuItem, error)

	CreateCustomization(ctx context.Context, caller Caller, input CreateCustomizationInput) (*entity.Customization, error)

	// GetMenu retrieves the full menu for an active location.
	GetMenu(ctx context.Context, locationID uuid.UUID) ([]*MenuItemWithCustomizations, error)

	// GenerateMenuQR renders a PNG QR code that opens a location's menu.
	GenerateMenuQR(ctx context.Context, locationID uuid.UUID) ([]byte, error)
}
