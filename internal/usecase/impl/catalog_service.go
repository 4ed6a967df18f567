// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/domain/service"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo   repository.CatalogRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo   repository.CatalogRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo:   params.CatalogRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func requireAdmin(caller usecase.Caller) error {
	if caller.Role != entity.RoleAdmin {
		return domainerrors.ErrForbidden
	}

	return nil
}

// CreateLocation creates a new active location. Restricted to admins.
func (srv *catalogService) CreateLocation(ctx context.Context, caller usecase.Caller, input usecase.CreateLocationInput) (*entity.Location, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	now := time.Now()
	location := &entity.Location{
		ID:        uuid.New(),
		Name:      input.Name,
		Address:   input.Address,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.catalogRepo.CreateLocation(ctx, location); err != nil {
		srv.log(ctx).Error("Failed to create location", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	srv.log(ctx).Info("Location created", slog.String("location_id", location.ID.String()))

	return location, nil
}

// UpdateLocation modifies a location's mutable fields. Restricted to admins.
func (srv *catalogService) UpdateLocation(ctx context.Context, caller usecase.Caller, input usecase.UpdateLocationInput) (*entity.Location, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	location, err := srv.catalogRepo.GetLocation(ctx, input.LocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		srv.log(ctx).Error("Failed to load location", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	location.Name = input.Name
	location.Address = input.Address
	location.IsActive = input.IsActive
	location.UpdatedAt = time.Now()

	if err := srv.catalogRepo.UpdateLocation(ctx, location); err != nil {
		srv.log(ctx).Error("Failed to update location", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return location, nil
}

// ListLocations retrieves locations; customers typically ask for active only.
func (srv *catalogService) ListLocations(ctx context.Context, activeOnly bool) ([]*entity.Location, error) {
	locations, err := srv.catalogRepo.ListLocations(ctx, activeOnly)
	if err != nil {
		srv.log(ctx).Error("Failed to list locations", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return locations, nil
}

// CreateMenuItem adds a menu item to a location. Restricted to admins.
func (srv *catalogService) CreateMenuItem(ctx context.Context, caller usecase.Caller, input usecase.CreateMenuItemInput) (*entity.MenuItem, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	if _, err := srv.catalogRepo.GetLocation(ctx, input.LocationID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		srv.log(ctx).Error("Failed to load location", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	now := time.Now()
	item := &entity.MenuItem{
		ID:          uuid.New(),
		LocationID:  input.LocationID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.catalogRepo.CreateMenuItem(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to create menu item", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	srv.log(ctx).Info("Menu item created",
		slog.String("menu_item_id", item.ID.String()),
		slog.String("location_id", item.LocationID.String()))

	return item, nil
}

// UpdateMenuItem modifies a menu item's mutable fields. Restricted to admins.
func (srv *catalogService) UpdateMenuItem(ctx context.Context, caller usecase.Caller, input usecase.UpdateMenuItemInput) (*entity.MenuItem, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	item, err := srv.catalogRepo.GetMenuItem(ctx, input.MenuItemID)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		srv.log(ctx).Error("Failed to load menu item", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Category = input.Category
	item.Price = input.Price
	item.IsAvailable = input.IsAvailable
	item.UpdatedAt = time.Now()

	if err := srv.catalogRepo.UpdateMenuItem(ctx, item); err != nil {
		srv.log(ctx).Error("Failed to update menu item", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return item, nil
}

// CreateCustomization adds a customization option to a menu item. Restricted to admins.
func (srv *catalogService) CreateCustomization(ctx context.Context, caller usecase.Caller, input usecase.CreateCustomizationInput) (*entity.Customization, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	if _, err := srv.catalogRepo.GetMenuItem(ctx, input.MenuItemID); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return nil, domainerrors.ErrMenuItemNotFound
		}

		srv.log(ctx).Error("Failed to load menu item", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	now := time.Now()
	customization := &entity.Customization{
		ID:         uuid.New(),
		MenuItemID: input.MenuItemID,
		Name:       input.Name,
		Price:      input.Price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := srv.catalogRepo.CreateCustomization(ctx, customization); err != nil {
		srv.log(ctx).Error("Failed to create customization", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return customization, nil
}

// GetMenu retrieves the full menu for an active location, each item bundled
// with its customization options.
func (srv *catalogService) GetMenu(ctx context.Context, locationID uuid.UUID) ([]*usecase.MenuItemWithCustomizations, error) {
	location, err := srv.catalogRepo.GetLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		srv.log(ctx).Error("Failed to load location", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}
	if !location.IsActive {
		return nil, domainerrors.ErrLocationNotFound
	}

	items, err := srv.catalogRepo.ListMenuItems(ctx, locationID)
	if err != nil {
		srv.log(ctx).Error("Failed to list menu items", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	menu := make([]*usecase.MenuItemWithCustomizations, 0, len(items))
	for _, item := range items {
		customizations, err := srv.catalogRepo.ListCustomizations(ctx, item.ID)
		if err != nil {
			srv.log(ctx).Error("Failed to list customizations", slog.Any("error", err))

			return nil, domainerrors.ErrPersistenceFailed
		}

		menu = append(menu, &usecase.MenuItemWithCustomizations{
			MenuItem:       item,
			Customizations: customizations,
		})
	}

	return menu, nil
}

// GenerateMenuQR renders a PNG QR code that opens a location's menu.
func (srv *catalogService) GenerateMenuQR(ctx context.Context, locationID uuid.UUID) ([]byte, error) {
	location, err := srv.catalogRepo.GetLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		srv.log(ctx).Error("Failed to load location", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	png, err := srv.qrcodeService.GenerateMenuQR(location.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate menu QR", slog.Any("error", err))

		return nil, domainerrors.ErrInternalError
	}

	return png, nil
}
