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

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// CreateOrder inserts the order row. Lines are inserted separately so the
// whole graph runs inside one transaction via the TransactionManager.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or location reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateOrderLine inserts one snapshot line for an order.
func (repo *orderRepository) CreateOrderLine(ctx context.Context, line *entity.OrderLine) error {
	lineM := &model.OrderLineModel{
		ID:          line.ID,
		OrderID:     line.OrderID,
		MenuItemID:  line.MenuItemID,
		Quantity:    line.Quantity,
		PriceAtTime: line.PriceAtTime,
	}

	if err := repo.db.WithContext(ctx).Create(lineM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order or menu item reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order line")
	}

	return nil
}

// CreateOrderLineCustomization inserts one customization snapshot for a line.
func (repo *orderRepository) CreateOrderLineCustomization(ctx context.Context, customization *entity.OrderLineCustomization) error {
	customizationM := &model.OrderLineCustomizationModel{
		ID:              customization.ID,
		OrderLineID:     customization.OrderLineID,
		CustomizationID: customization.CustomizationID,
		Quantity:        customization.Quantity,
		PriceAtTime:     customization.PriceAtTime,
	}

	if err := repo.db.WithContext(ctx).Create(customizationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order line or customization reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order line customization")
	}

	return nil
}

// UpdateOrderStatus persists a new status for an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// FindOrder retrieves a fully hydrated order subject to the visibility scope.
// Lines and customization snapshots are preloaded along with their catalog
// rows so display names can be resolved.
func (repo *orderRepository) FindOrder(ctx context.Context, id uuid.UUID, visibility repository.OrderVisibility) (*entity.Order, error) {
	var orderM model.OrderModel

	query := repo.db.WithContext(ctx).
		Preload("Lines.MenuItem").
		Preload("Lines.Customizations.Customization").
		Where("id = ?", id)
	if visibility.UserID != nil {
		query = query.Where("user_id = ?", *visibility.UserID)
	}

	if err := query.First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// ListOrders retrieves hydrated orders matching the filter, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter, page, pageSize int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.db.WithContext(ctx).
		Preload("Lines.MenuItem").
		Preload("Lines.Customizations.Customization").
		Order("created_at DESC")
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	offset := (page - 1) * pageSize
	if err := query.Offset(offset).Limit(pageSize).Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// --- Mapper Functions ---

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:         data.ID,
		UserID:     data.UserID,
		LocationID: data.LocationID,
		Status:     data.Status.String(),
		Total:      data.Total,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	lines := make([]*entity.OrderLine, 0, len(data.Lines))
	for i := range data.Lines {
		lines = append(lines, toOrderLineDomain(&data.Lines[i]))
	}

	return &entity.Order{
		ID:         data.ID,
		UserID:     data.UserID,
		LocationID: data.LocationID,
		Status:     entity.OrderStatus(data.Status),
		Total:      data.Total,
		Lines:      lines,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toOrderLineDomain(data *model.OrderLineModel) *entity.OrderLine {
	line := &entity.OrderLine{
		ID:          data.ID,
		OrderID:     data.OrderID,
		MenuItemID:  data.MenuItemID,
		Quantity:    data.Quantity,
		PriceAtTime: data.PriceAtTime,
	}
	if data.MenuItem != nil {
		line.MenuItemName = data.MenuItem.Name
	}

	line.Customizations = make([]*entity.OrderLineCustomization, 0, len(data.Customizations))
	for i := range data.Customizations {
		customizationM := &data.Customizations[i]
		customization := &entity.OrderLineCustomization{
			ID:              customizationM.ID,
			OrderLineID:     customizationM.OrderLineID,
			CustomizationID: customizationM.CustomizationID,
			Quantity:        customizationM.Quantity,
			PriceAtTime:     customizationM.PriceAtTime,
		}
		if customizationM.Customization != nil {
			customization.Name = customizationM.Customization.Name
		}
		line.Customizations = append(line.Customizations, customization)
	}

	return line
}
