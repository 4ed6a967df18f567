// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"mesa/internal/domain/entity"
	"mesa/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrMenuItemNotFound is returned when a menu item is not found.
	ErrMenuItemNotFound = errors.New("menu item not found")
	// ErrCustomizationNotFound is returned when a customization is not found.
	ErrCustomizationNotFound = errors.New("customization not found")
)

// CatalogReader provides read-only access to location and menu records.
// The order lifecycle depends on this narrow interface only; pricing never
// needs write access to the catalog.
type CatalogReader interface {
	// GetLocation retrieves a single location by its unique ID.
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// GetMenuItem retrieves a single menu item by its unique ID.
	GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// GetCustomization retrieves a single customization by its unique ID.
	GetCustomization(ctx context.Context, id uuid.UUID) (*entity.Customization, error)
}

// CatalogRepository extends CatalogReader with the management operations
// used by the admin-facing catalog service.
type CatalogRepository interface {
	CatalogReader

	// CreateLocation persists a new location.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// UpdateLocation modifies an existing location.
	UpdateLocation(ctx context.Context, location *entity.Location) error

	// ListLocations retrieves locations, optionally restricted to active ones.
	ListLocations(ctx context.Context, activeOnly bool) ([]*entity.Location, error)

	// CreateMenuItem persists a new menu item.
	CreateMenuItem(ctx context.Context, item *entity.MenuItem) error

	// UpdateMenuItem modifies an existing menu item.
	UpdateMenuItem(ctx context.Context, item *entity.MenuItem) error

	// ListMenuItems retrieves all menu items for a location.
	ListMenuItems(ctx context.Context, locationID uuid.UUID) ([]*entity.MenuItem, error)

	// CreateCustomization persists a new customization.
	CreateCustomization(ctx context.Context, customization *entity.Customization) error

	// ListCustomizations retrieves all customizations for a menu item.
	ListCustomizations(ctx context.Context, menuItemID uuid.UUID) ([]*entity.Customization, error)
}
