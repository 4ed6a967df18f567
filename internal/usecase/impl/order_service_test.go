package impl

import (
	"context"
	"testing"

	"mesa/config"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/repository"
	mockRepo "mesa/internal/mocks/repository"
	mockSvc "mesa/internal/mocks/service"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	catalogRepo *mockRepo.MockCatalogRepository
	orderRepo   *mockRepo.MockOrderRepository
	userRepo    *mockRepo.MockUserRepository
	factory     *mockRepo.MockRepositoryFactory
	txManager   *mockRepo.MockTransactionManager
	notifier    *mockSvc.MockOrderNotifier
	publisher   *mockSvc.MockEventPublisher
}

func newOrderService(t *testing.T) (usecase.OrderUsecase, *orderServiceMocks) {
	t.Helper()

	m := &orderServiceMocks{
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
		orderRepo:   mockRepo.NewMockOrderRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		notifier:    mockSvc.NewMockOrderNotifier(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	m.factory.EXPECT().OrderRepo().Return(m.orderRepo).Maybe()
	m.factory.EXPECT().UserRepo().Return(m.userRepo).Maybe()
	m.txManager = newPassthroughTxManager(t, m.factory)

	// The event export runs off the request goroutine; it may or may not land
	// before the test finishes.
	m.publisher.EXPECT().
		PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil).
		Maybe()

	service := NewOrderService(OrderServiceParams{
		TxManager:   m.txManager,
		CatalogRepo: m.catalogRepo,
		OrderRepo:   m.orderRepo,
		Notifier:    m.notifier,
		Publisher:   m.publisher,
		Config:      &config.Config{Order: &config.OrderConfig{LoyaltyEarnRate: 1.0}},
		Logger:      newDiscardLogger(),
	})

	return service, m
}

func customerCaller() usecase.Caller {
	return usecase.Caller{UserID: uuid.New(), Email: "customer@example.com", Role: entity.RoleCustomer}
}

func kitchenCaller() usecase.Caller {
	return usecase.Caller{UserID: uuid.New(), Email: "kitchen@example.com", Role: entity.RoleKitchen}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	caller := customerCaller()
	location := newActiveLocation()
	item := newAvailableMenuItem(location.ID, "10.00")
	cheese := newCustomization(item.ID, "1.00")

	m.catalogRepo.EXPECT().GetLocation(ctx, location.ID).Return(location, nil)
	m.catalogRepo.EXPECT().GetMenuItem(ctx, item.ID).Return(item, nil)
	m.catalogRepo.EXPECT().GetCustomization(ctx, cheese.ID).Return(cheese, nil)

	m.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	m.orderRepo.EXPECT().CreateOrderLine(ctx, mock.AnythingOfType("*entity.OrderLine")).Return(nil)
	m.orderRepo.EXPECT().CreateOrderLineCustomization(ctx, mock.AnythingOfType("*entity.OrderLineCustomization")).Return(nil)

	m.notifier.EXPECT().NotifyOrderCreated(mock.AnythingOfType("*entity.Order")).Return()

	order, err := service.CreateOrder(ctx, caller, usecase.CreateOrderInput{
		LocationID: location.ID,
		Cart: entity.Cart{
			{
				MenuItemID: item.ID,
				Quantity:   2,
				Customizations: []entity.CartCustomization{
					{CustomizationID: cheese.ID, Quantity: 2},
				},
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	// (10.00 + 1.00*2) * 2
	assert.Equal(t, "24", order.Total.String())
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, caller.UserID, order.UserID)
	assert.Equal(t, location.ID, order.LocationID)

	require.Len(t, order.Lines, 1)
	line := order.Lines[0]
	assert.Equal(t, item.Name, line.MenuItemName)
	assert.Equal(t, "10", line.PriceAtTime.String())
	require.Len(t, line.Customizations, 1)
	assert.Equal(t, cheese.Name, line.Customizations[0].Name)
	assert.Equal(t, "1", line.Customizations[0].PriceAtTime.String())
}

func TestOrderService_CreateOrder_LocationNotFound(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	locationID := uuid.New()

	m.catalogRepo.EXPECT().GetLocation(ctx, locationID).Return(nil, repository.ErrLocationNotFound)

	order, err := service.CreateOrder(ctx, customerCaller(), usecase.CreateOrderInput{
		LocationID: locationID,
		Cart:       entity.Cart{{MenuItemID: uuid.New(), Quantity: 1}},
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestOrderService_CreateOrder_InactiveLocation(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	location := newActiveLocation()
	location.IsActive = false

	m.catalogRepo.EXPECT().GetLocation(ctx, location.ID).Return(location, nil)

	order, err := service.CreateOrder(ctx, customerCaller(), usecase.CreateOrderInput{
		LocationID: location.ID,
		Cart:       entity.Cart{{MenuItemID: uuid.New(), Quantity: 1}},
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	location := newActiveLocation()

	m.catalogRepo.EXPECT().GetLocation(ctx, location.ID).Return(location, nil)

	order, err := service.CreateOrder(ctx, customerCaller(), usecase.CreateOrderInput{
		LocationID: location.ID,
		Cart:       entity.Cart{},
	})
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_CreateOrder_UnavailableItem(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	location := newActiveLocation()
	item := newAvailableMenuItem(location.ID, "10.00")
	item.IsAvailable = false

	m.catalogRepo.EXPECT().GetLocation(ctx, location.ID).Return(location, nil)
	m.catalogRepo.EXPECT().GetMenuItem(ctx, item.ID).Return(item, nil)

	order, err := service.CreateOrder(ctx, customerCaller(), usecase.CreateOrderInput{
		LocationID: location.ID,
		Cart:       entity.Cart{{MenuItemID: item.ID, Quantity: 1}},
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrMenuItemUnavailable)
}

func TestOrderService_CreateOrder_TransactionRollsUpAsPersistenceError(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	caller := customerCaller()
	location := newActiveLocation()
	item := newAvailableMenuItem(location.ID, "5.00")

	m.catalogRepo.EXPECT().GetLocation(ctx, location.ID).Return(location, nil)
	m.catalogRepo.EXPECT().GetMenuItem(ctx, item.ID).Return(item, nil)

	m.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("connection reset"))

	order, err := service.CreateOrder(ctx, caller, usecase.CreateOrderInput{
		LocationID: location.ID,
		Cart:       entity.Cart{{MenuItemID: item.ID, Quantity: 1}},
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPersistenceFailed)
}

func TestOrderService_SetStatus_ForbiddenForCustomerAndWaiter(t *testing.T) {
	service, _ := newOrderService(t)

	ctx := context.Background()
	input := usecase.SetOrderStatusInput{OrderID: uuid.New(), Status: entity.OrderStatusInProgress}

	for _, caller := range []usecase.Caller{
		{UserID: uuid.New(), Role: entity.RoleCustomer},
		{UserID: uuid.New(), Role: entity.RoleWaiter},
	} {
		order, err := service.SetStatus(ctx, caller, input)
		assert.Nil(t, order)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	}
}

func TestOrderService_SetStatus_InvalidStatus(t *testing.T) {
	service, _ := newOrderService(t)

	order, err := service.SetStatus(context.Background(), kitchenCaller(), usecase.SetOrderStatusInput{
		OrderID: uuid.New(),
		Status:  entity.OrderStatus("BURNT"),
	})
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_SetStatus_OrderNotFound(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	m.orderRepo.EXPECT().
		FindOrder(ctx, orderID, repository.OrderVisibility{}).
		Return(nil, repository.ErrOrderNotFound)

	order, err := service.SetStatus(ctx, kitchenCaller(), usecase.SetOrderStatusInput{
		OrderID: orderID,
		Status:  entity.OrderStatusInProgress,
	})
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_SetStatus_InProgress(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	existing := newHydratedOrder(uuid.New(), uuid.New(), entity.OrderStatusPending, "15.50")

	m.orderRepo.EXPECT().
		FindOrder(ctx, existing.ID, repository.OrderVisibility{}).
		Return(existing, nil)
	m.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, existing.ID, entity.OrderStatusInProgress).
		Return(nil)
	m.notifier.EXPECT().NotifyOrderStatusUpdated(mock.AnythingOfType("*entity.Order")).Return()

	order, err := service.SetStatus(ctx, kitchenCaller(), usecase.SetOrderStatusInput{
		OrderID: existing.ID,
		Status:  entity.OrderStatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusInProgress, order.Status)
}

func TestOrderService_SetStatus_CompletedAccruesLoyalty(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	existing := newHydratedOrder(uuid.New(), uuid.New(), entity.OrderStatusInProgress, "24.99")

	m.orderRepo.EXPECT().
		FindOrder(ctx, existing.ID, repository.OrderVisibility{}).
		Return(existing, nil)
	m.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, existing.ID, entity.OrderStatusCompleted).
		Return(nil)
	// floor(24.99) * 1.0
	m.userRepo.EXPECT().
		AddLoyaltyPoints(ctx, existing.UserID, 24).
		Return(nil)
	m.notifier.EXPECT().NotifyOrderStatusUpdated(mock.AnythingOfType("*entity.Order")).Return()

	order, err := service.SetStatus(ctx, kitchenCaller(), usecase.SetOrderStatusInput{
		OrderID: existing.ID,
		Status:  entity.OrderStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)
}

func TestOrderService_SetStatus_AlreadyCompletedSkipsLoyalty(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	existing := newHydratedOrder(uuid.New(), uuid.New(), entity.OrderStatusCompleted, "24.99")

	m.orderRepo.EXPECT().
		FindOrder(ctx, existing.ID, repository.OrderVisibility{}).
		Return(existing, nil)
	m.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, existing.ID, entity.OrderStatusCompleted).
		Return(nil)
	m.notifier.EXPECT().NotifyOrderStatusUpdated(mock.AnythingOfType("*entity.Order")).Return()

	_, err := service.SetStatus(ctx, kitchenCaller(), usecase.SetOrderStatusInput{
		OrderID: existing.ID,
		Status:  entity.OrderStatusCompleted,
	})
	require.NoError(t, err)
	m.userRepo.AssertNotCalled(t, "AddLoyaltyPoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_Cancel_OwnPendingOrder(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	caller := customerCaller()
	existing := newHydratedOrder(caller.UserID, uuid.New(), entity.OrderStatusPending, "12.00")

	m.orderRepo.EXPECT().
		FindOrder(ctx, existing.ID, repository.OrderVisibility{}).
		Return(existing, nil)
	m.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, existing.ID, entity.OrderStatusCancelled).
		Return(nil)
	m.notifier.EXPECT().NotifyOrderCancelled(mock.AnythingOfType("*entity.Order")).Return()

	order, err := service.Cancel(ctx, caller, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, order.Status)
}

func TestOrderService_Cancel_CustomerCannotCancelOthersOrder(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	existing := newHydratedOrder(uuid.New(), uuid.New(), entity.OrderStatusPending, "12.00")

	m.orderRepo.EXPECT().
		FindOrder(ctx, existing.ID, repository.OrderVisibility{}).
		Return(existing, nil)

	order, err := service.Cancel(ctx, customerCaller(), existing.ID)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_Cancel_NonPendingIsInvalidTransition(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()

	for _, status := range []entity.OrderStatus{
		entity.OrderStatusInProgress,
		entity.OrderStatusCompleted,
		entity.OrderStatusCancelled,
	} {
		existing := newHydratedOrder(uuid.New(), uuid.New(), status, "12.00")

		m.orderRepo.EXPECT().
			FindOrder(ctx, existing.ID, repository.OrderVisibility{}).
			Return(existing, nil)

		order, err := service.Cancel(ctx, kitchenCaller(), existing.ID)
		assert.Nil(t, order)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrInvalidTransition.ErrorCode(), appErr.ErrorCode())
	}
}

func TestOrderService_GetOrder_CustomerIsScopedToOwnOrders(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	caller := customerCaller()
	existing := newHydratedOrder(caller.UserID, uuid.New(), entity.OrderStatusPending, "9.00")

	m.orderRepo.EXPECT().
		FindOrder(ctx, existing.ID, mock.MatchedBy(func(v repository.OrderVisibility) bool {
			return v.UserID != nil && *v.UserID == caller.UserID
		})).
		Return(existing, nil)

	order, err := service.GetOrder(ctx, caller, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, order.ID)
}

func TestOrderService_GetOrder_StaffIsUnscoped(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	existing := newHydratedOrder(uuid.New(), uuid.New(), entity.OrderStatusPending, "9.00")

	m.orderRepo.EXPECT().
		FindOrder(ctx, existing.ID, repository.OrderVisibility{}).
		Return(existing, nil)

	order, err := service.GetOrder(ctx, kitchenCaller(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, order.ID)
}

func TestOrderService_ListOrders_CustomerFilterIsForced(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	caller := customerCaller()

	m.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(f repository.OrderFilter) bool {
			return f.UserID != nil && *f.UserID == caller.UserID
		}), 1, 20).
		Return([]*entity.Order{}, nil)

	_, err := service.ListOrders(ctx, caller, usecase.ListOrdersQuery{})
	require.NoError(t, err)
}

func TestOrderService_ListOrders_PageSizeIsCapped(t *testing.T) {
	service, m := newOrderService(t)

	ctx := context.Background()
	status := entity.OrderStatusPending
	locationID := uuid.New()

	m.orderRepo.EXPECT().
		ListOrders(ctx, mock.MatchedBy(func(f repository.OrderFilter) bool {
			return f.UserID == nil && f.LocationID != nil && *f.LocationID == locationID && f.Status != nil && *f.Status == status
		}), 3, 100).
		Return([]*entity.Order{}, nil)

	_, err := service.ListOrders(ctx, kitchenCaller(), usecase.ListOrdersQuery{
		LocationID: &locationID,
		Status:     &status,
		Page:       3,
		PageSize:   500,
	})
	require.NoError(t, err)
}
