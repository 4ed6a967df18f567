// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mesa/config"
	deliverycontext "mesa/internal/delivery/context"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/lifecycle"
	"mesa/internal/domain/pricing"
	"mesa/internal/domain/repository"
	"mesa/internal/domain/service"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	defaultLoyaltyEarnRate = 1.0
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager       repository.TransactionManager
	catalogRepo     repository.CatalogRepository
	orderRepo       repository.OrderRepository
	deviceRepo      repository.DeviceRepository
	notifier        service.OrderNotifier
	publisher       service.EventPublisher
	pushService     service.PushService
	loyaltyEarnRate float64
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CatalogRepo repository.CatalogRepository
	OrderRepo   repository.OrderRepository
	DeviceRepo  repository.DeviceRepository `optional:"true"`
	Notifier    service.OrderNotifier
	Publisher   service.EventPublisher
	PushService service.PushService `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService. It receives all dependencies as interfaces.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	loyaltyEarnRate := defaultLoyaltyEarnRate
	if params.Config != nil && params.Config.Order != nil && params.Config.Order.LoyaltyEarnRate > 0 {
		loyaltyEarnRate = params.Config.Order.LoyaltyEarnRate
	}

	return &orderService{
		txManager:       params.TxManager,
		catalogRepo:     params.CatalogRepo,
		orderRepo:       params.OrderRepo,
		deviceRepo:      params.DeviceRepo,
		notifier:        params.Notifier,
		publisher:       params.Publisher,
		pushService:     params.PushService,
		loyaltyEarnRate: loyaltyEarnRate,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder prices the cart against the live catalog, persists the whole
// order graph in one transaction, and fans the result out to subscribers.
func (srv *orderService) CreateOrder(ctx context.Context, caller usecase.Caller, input usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Creating order",
		slog.String("user_id", caller.UserID.String()),
		slog.String("location_id", input.LocationID.String()),
		slog.Int("cart_size", len(input.Cart)))

	location, err := srv.catalogRepo.GetLocation(ctx, input.LocationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		srv.log(ctx).Error("Failed to load location", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}
	// An inactive location is indistinguishable from a missing one to callers.
	if !location.IsActive {
		return nil, domainerrors.ErrLocationNotFound
	}

	priced, err := pricing.PriceCart(ctx, srv.catalogRepo, location, input.Cart)
	if err != nil {
		return nil, srv.mapPricingError(ctx, err)
	}

	order := buildOrderGraph(caller.UserID, priced)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		for _, line := range order.Lines {
			if err := orderRepo.CreateOrderLine(ctx, line); err != nil {
				return errors.Wrap(err, "failed to create order line")
			}

			for _, customization := range line.Customizations {
				if err := orderRepo.CreateOrderLineCustomization(ctx, customization); err != nil {
					return errors.Wrap(err, "failed to create order line customization")
				}
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Order transaction failed", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("total", order.Total.String()))

	srv.notifier.NotifyOrderCreated(order)
	srv.exportEvent(ctx, service.EventNewOrder, order)

	return order, nil
}

// SetStatus moves an order to the given status. Only kitchen staff and
// admins may call this; completing an order also accrues loyalty points.
func (srv *orderService) SetStatus(ctx context.Context, caller usecase.Caller, input usecase.SetOrderStatusInput) (*entity.Order, error) {
	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", input.Status))
	}

	if !caller.Role.CanSetOrderStatus() {
		return nil, domainerrors.ErrForbidden
	}

	order, err := srv.orderRepo.FindOrder(ctx, input.OrderID, repository.OrderVisibility{})
	if err != nil {
		return nil, srv.mapOrderLookupError(ctx, err)
	}

	previousStatus := order.Status
	newlyCompleted := input.Status == entity.OrderStatusCompleted && previousStatus != entity.OrderStatusCompleted

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.OrderRepo().UpdateOrderStatus(ctx, order.ID, input.Status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		if newlyCompleted {
			points := srv.loyaltyPoints(order.Total)
			if points > 0 {
				if err := repoFactory.UserRepo().AddLoyaltyPoints(ctx, order.UserID, points); err != nil {
					return errors.Wrap(err, "failed to accrue loyalty points")
				}
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Status transaction failed", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	order.Status = input.Status
	order.UpdatedAt = time.Now()

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", order.ID.String()),
		slog.String("from", previousStatus.String()),
		slog.String("to", order.Status.String()))

	srv.notifier.NotifyOrderStatusUpdated(order)
	srv.exportEvent(ctx, service.EventOrderStatusUpdated, order)

	if newlyCompleted {
		srv.sendCompletionPush(ctx, order)
	}

	return order, nil
}

// Cancel cancels a PENDING order. Customers can only cancel their own
// orders; staff can cancel any.
func (srv *orderService) Cancel(ctx context.Context, caller usecase.Caller, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrder(ctx, orderID, repository.OrderVisibility{})
	if err != nil {
		return nil, srv.mapOrderLookupError(ctx, err)
	}

	if caller.Role == entity.RoleCustomer && order.UserID != caller.UserID {
		return nil, domainerrors.ErrForbidden
	}

	if !order.Status.IsCancellable() {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			fmt.Sprintf("cannot cancel order in status %s", order.Status))
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.OrderRepo().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCancelled)
	})
	if err != nil {
		srv.log(ctx).Error("Cancel transaction failed", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	order.Status = entity.OrderStatusCancelled
	order.UpdatedAt = time.Now()

	srv.log(ctx).Info("Order cancelled", slog.String("order_id", order.ID.String()))

	srv.notifier.NotifyOrderCancelled(order)
	srv.exportEvent(ctx, service.EventOrderCancelled, order)

	return order, nil
}

// GetOrder retrieves one hydrated order within the caller's visibility.
func (srv *orderService) GetOrder(ctx context.Context, caller usecase.Caller, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrder(ctx, orderID, srv.visibilityFor(caller))
	if err != nil {
		return nil, srv.mapOrderLookupError(ctx, err)
	}

	return order, nil
}

// ListOrders retrieves hydrated orders matching the query, newest first.
func (srv *orderService) ListOrders(ctx context.Context, caller usecase.Caller, query usecase.ListOrdersQuery) ([]*entity.Order, error) {
	if query.Status != nil && !query.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown status %q", *query.Status))
	}

	filter := repository.OrderFilter{
		LocationID: query.LocationID,
		Status:     query.Status,
	}
	// Customers only ever see their own orders, whatever they ask for.
	if caller.Role == entity.RoleCustomer {
		userID := caller.UserID
		filter.UserID = &userID
	}

	page := query.Page
	if page < 1 {
		page = 1
	}

	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	orders, err := srv.orderRepo.ListOrders(ctx, filter, page, pageSize)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, domainerrors.ErrPersistenceFailed
	}

	return orders, nil
}

// visibilityFor scopes reads to the caller's own orders for customers and
// leaves staff unrestricted.
func (srv *orderService) visibilityFor(caller usecase.Caller) repository.OrderVisibility {
	if caller.Role == entity.RoleCustomer {
		userID := caller.UserID

		return repository.OrderVisibility{UserID: &userID}
	}

	return repository.OrderVisibility{}
}

// loyaltyPoints computes the points earned for a completed order:
// floor(total) multiplied by the configured earn rate.
func (srv *orderService) loyaltyPoints(total decimal.Decimal) int {
	return int(total.Floor().Mul(decimal.NewFromFloat(srv.loyaltyEarnRate)).IntPart())
}

func (srv *orderService) mapPricingError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, pricing.ErrEmptyCart), errors.Is(err, pricing.ErrInvalidQuantity):
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	case errors.Is(err, pricing.ErrItemNotFound):
		return domainerrors.ErrMenuItemNotFound
	case errors.Is(err, pricing.ErrItemUnavailable):
		return domainerrors.ErrMenuItemUnavailable
	case errors.Is(err, pricing.ErrLocationMismatch):
		return domainerrors.ErrLocationMismatch
	case errors.Is(err, pricing.ErrCustomizationNotFound):
		return domainerrors.ErrCustomizationNotFound
	default:
		srv.log(ctx).Error("Pricing failed on catalog read", slog.Any("error", err))

		return domainerrors.ErrPersistenceFailed
	}
}

func (srv *orderService) mapOrderLookupError(ctx context.Context, err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domainerrors.ErrOrderNotFound
	}

	srv.log(ctx).Error("Failed to load order", slog.Any("error", err))

	return domainerrors.ErrPersistenceFailed
}

// exportEvent publishes the order event to the external queue without
// blocking the request path.
func (srv *orderService) exportEvent(ctx context.Context, eventType string, order *entity.Order) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		OrderID:    order.ID.String(),
		UserID:     order.UserID.String(),
		LocationID: order.LocationID.String(),
		Status:     order.Status.String(),
		Total:      order.Total.String(),
	}
	logger := srv.log(ctx)

	go func() {
		publishCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.publisher.PublishOrderEvent(publishCtx, event); err != nil {
			logger.Warn("Failed to export order event",
				slog.String("event_type", eventType),
				slog.String("order_id", event.OrderID),
				slog.Any("error", err))
		}
	}()
}

// sendCompletionPush notifies the order owner's devices that the meal is
// ready. Best-effort: push is optional infrastructure.
func (srv *orderService) sendCompletionPush(ctx context.Context, order *entity.Order) {
	if srv.pushService == nil || srv.deviceRepo == nil {
		return
	}

	orderID := order.ID
	userID := order.UserID
	logger := srv.log(ctx)

	go func() {
		pushCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		devices, err := srv.deviceRepo.FindDevicesByUser(pushCtx, userID)
		if err != nil {
			logger.Warn("Failed to load devices for push", slog.Any("error", err))

			return
		}
		if len(devices) == 0 {
			return
		}

		tokens := make([]string, 0, len(devices))
		for _, device := range devices {
			tokens = append(tokens, device.FCMToken)
		}

		data := map[string]string{
			"order_id": orderID.String(),
			"status":   entity.OrderStatusCompleted.String(),
		}

		_, _, invalidTokens, err := srv.pushService.SendBatchNotification(
			pushCtx, tokens, "餐點已完成", "您的訂單已準備完成，請前往取餐", data)
		if err != nil {
			logger.Warn("Failed to send completion push", slog.Any("error", err))

			return
		}

		if len(invalidTokens) > 0 {
			if err := srv.deviceRepo.DeactivateByTokens(pushCtx, invalidTokens); err != nil {
				logger.Warn("Failed to deactivate invalid tokens", slog.Any("error", err))
			}
		}
	}()
}

// buildOrderGraph materializes a priced draft into a persistable order with
// fresh identifiers and hydrated display names.
func buildOrderGraph(userID uuid.UUID, priced *pricing.PricedOrder) *entity.Order {
	now := time.Now()
	order := &entity.Order{
		ID:         uuid.New(),
		UserID:     userID,
		LocationID: priced.LocationID,
		Status:     entity.OrderStatusPending,
		Total:      priced.Total,
		Lines:      make([]*entity.OrderLine, 0, len(priced.Lines)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	for _, pricedLine := range priced.Lines {
		line := &entity.OrderLine{
			ID:             uuid.New(),
			OrderID:        order.ID,
			MenuItemID:     pricedLine.MenuItem.ID,
			MenuItemName:   pricedLine.MenuItem.Name,
			Quantity:       pricedLine.Quantity,
			PriceAtTime:    pricedLine.UnitPrice,
			Customizations: make([]*entity.OrderLineCustomization, 0, len(pricedLine.Customizations)),
		}

		for _, pricedCust := range pricedLine.Customizations {
			line.Customizations = append(line.Customizations, &entity.OrderLineCustomization{
				ID:              uuid.New(),
				OrderLineID:     line.ID,
				CustomizationID: pricedCust.Customization.ID,
				Name:            pricedCust.Customization.Name,
				Quantity:        pricedCust.Quantity,
				PriceAtTime:     pricedCust.UnitPrice,
			})
		}

		order.Lines = append(order.Lines, line)
	}

	return order
}
