// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	"mesa/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// GetLocation retrieves a single location by its unique ID.
func (repo *catalogRepository) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return toLocationDomain(&locationM), nil
}

// GetMenuItem retrieves a single menu item by its unique ID.
func (repo *catalogRepository) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var itemM model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find menu item")
	}

	return toMenuItemDomain(&itemM), nil
}

// GetCustomization retrieves a single customization by its unique ID.
func (repo *catalogRepository) GetCustomization(ctx context.Context, id uuid.UUID) (*entity.Customization, error) {
	var customizationM model.CustomizationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customizationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find customization")
	}

	return toCustomizationDomain(&customizationM), nil
}

// CreateLocation persists a new location.
func (repo *catalogRepository) CreateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required location information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// UpdateLocation modifies an existing location.
func (repo *catalogRepository) UpdateLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// ListLocations retrieves locations, optionally restricted to active ones.
func (repo *catalogRepository) ListLocations(ctx context.Context, activeOnly bool) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// CreateMenuItem persists a new menu item.
func (repo *catalogRepository) CreateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required menu item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create menu item")
	}

	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateMenuItem modifies an existing menu item.
func (repo *catalogRepository) UpdateMenuItem(ctx context.Context, item *entity.MenuItem) error {
	itemM := fromMenuItemDomain(item)

	if err := repo.db.WithContext(ctx).Save(itemM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update menu item")
	}

	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// ListMenuItems retrieves all menu items for a location, grouped by category.
func (repo *catalogRepository) ListMenuItems(ctx context.Context, locationID uuid.UUID) ([]*entity.MenuItem, error) {
	var itemModels []*model.MenuItemModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("category ASC, name ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list menu items")
	}

	items := make([]*entity.MenuItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toMenuItemDomain(itemM))
	}

	return items, nil
}

// CreateCustomization persists a new customization.
func (repo *catalogRepository) CreateCustomization(ctx context.Context, customization *entity.Customization) error {
	customizationM := fromCustomizationDomain(customization)

	if err := repo.db.WithContext(ctx).Create(customizationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMenuItemNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customization information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customization")
	}

	customization.CreatedAt = customizationM.CreatedAt
	customization.UpdatedAt = customizationM.UpdatedAt

	return nil
}

// ListCustomizations retrieves all customizations for a menu item.
func (repo *catalogRepository) ListCustomizations(ctx context.Context, menuItemID uuid.UUID) ([]*entity.Customization, error) {
	var customizationModels []*model.CustomizationModel

	if err := repo.db.WithContext(ctx).
		Where("menu_item_id = ?", menuItemID).
		Order("name ASC").
		Find(&customizationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customizations")
	}

	customizations := make([]*entity.Customization, 0, len(customizationModels))
	for _, customizationM := range customizationModels {
		customizations = append(customizations, toCustomizationDomain(customizationM))
	}

	return customizations, nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toMenuItemDomain(data *model.MenuItemModel) *entity.MenuItem {
	if data == nil {
		return nil
	}

	return &entity.MenuItem{
		ID:          data.ID,
		LocationID:  data.LocationID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromMenuItemDomain(data *entity.MenuItem) *model.MenuItemModel {
	if data == nil {
		return nil
	}

	return &model.MenuItemModel{
		ID:          data.ID,
		LocationID:  data.LocationID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		IsAvailable: data.IsAvailable,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCustomizationDomain(data *model.CustomizationModel) *entity.Customization {
	if data == nil {
		return nil
	}

	return &entity.Customization{
		ID:         data.ID,
		MenuItemID: data.MenuItemID,
		Name:       data.Name,
		Price:      data.Price,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCustomizationDomain(data *entity.Customization) *model.CustomizationModel {
	if data == nil {
		return nil
	}

	return &model.CustomizationModel{
		ID:         data.ID,
		MenuItemID: data.MenuItemID,
		Name:       data.Name,
		Price:      data.Price,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
