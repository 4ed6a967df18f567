package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/validator"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/service"
	mockSvc "mesa/internal/mocks/service"
	mockUc "mesa/internal/mocks/usecase"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testAccessToken = "test-access-token"

// newOrderTestServer wires the order handler behind the real auth middleware
// so tests exercise the same request path as production.
func newOrderTestServer(t *testing.T) (*echo.Echo, *mockUc.MockOrderUsecase, usecase.Caller) {
	t.Helper()

	caller := usecase.Caller{
		UserID: uuid.New(),
		Email:  "customer@example.com",
		Role:   entity.RoleCustomer,
	}

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken(testAccessToken).Return(&service.Claims{
		UserID: caller.UserID,
		Email:  caller.Email,
		Role:   caller.Role,
		Type:   "access",
	}, nil).Maybe()

	uc := mockUc.NewMockOrderUsecase(t)
	h := NewOrderHandler(uc, slog.Default())
	authMw := middleware.NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.Validator = validator.New()
	orderGroup := e.Group("/orders")
	orderGroup.Use(authMw.Authenticate)
	orderGroup.POST("", h.CreateOrder)
	orderGroup.GET("", h.ListOrders)
	orderGroup.GET("/:id", h.GetOrder)
	orderGroup.PATCH("/:id/status", h.SetStatus)
	orderGroup.POST("/:id/cancel", h.Cancel)

	return e, uc, caller
}

func doRequest(e *echo.Echo, method, target, body string, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testAccessToken)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestOrderHandler_CreateOrder_Success(t *testing.T) {
	e, uc, caller := newOrderTestServer(t)

	locationID := uuid.New()
	menuItemID := uuid.New()
	orderID := uuid.New()

	uc.EXPECT().CreateOrder(mock.Anything, caller, mock.MatchedBy(func(input usecase.CreateOrderInput) bool {
		return input.LocationID == locationID &&
			len(input.Cart) == 1 &&
			input.Cart[0].MenuItemID == menuItemID &&
			input.Cart[0].Quantity == 2
	})).Return(&entity.Order{
		ID:         orderID,
		UserID:     caller.UserID,
		LocationID: locationID,
		Status:     entity.OrderStatusPending,
	}, nil)

	body := `{"location_id":"` + locationID.String() + `","items":[{"menu_item_id":"` + menuItemID.String() + `","quantity":2}]}`
	rec := doRequest(e, http.MethodPost, "/orders", body, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), orderID.String())
	assert.Contains(t, rec.Body.String(), "PENDING")
}

func TestOrderHandler_CreateOrder_RejectsEmptyCart(t *testing.T) {
	e, uc, _ := newOrderTestServer(t)

	body := `{"location_id":"` + uuid.NewString() + `","items":[]}`
	rec := doRequest(e, http.MethodPost, "/orders", body, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "CreateOrder")
}

func TestOrderHandler_CreateOrder_RequiresAuthentication(t *testing.T) {
	e, uc, _ := newOrderTestServer(t)

	body := `{"location_id":"` + uuid.NewString() + `","items":[{"menu_item_id":"` + uuid.NewString() + `","quantity":1}]}`
	rec := doRequest(e, http.MethodPost, "/orders", body, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "CreateOrder")
}

func TestOrderHandler_SetStatus_PropagatesForbidden(t *testing.T) {
	e, uc, caller := newOrderTestServer(t)

	orderID := uuid.New()
	uc.EXPECT().SetStatus(mock.Anything, caller, usecase.SetOrderStatusInput{
		OrderID: orderID,
		Status:  entity.OrderStatusInProgress,
	}).Return(nil, domainerrors.ErrForbidden)

	rec := doRequest(e, http.MethodPatch, "/orders/"+orderID.String()+"/status", `{"status":"IN_PROGRESS"}`, true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestOrderHandler_SetStatus_RejectsMalformedOrderID(t *testing.T) {
	e, uc, _ := newOrderTestServer(t)

	rec := doRequest(e, http.MethodPatch, "/orders/not-a-uuid/status", `{"status":"IN_PROGRESS"}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "SetStatus")
}

func TestOrderHandler_Cancel_Success(t *testing.T) {
	e, uc, caller := newOrderTestServer(t)

	orderID := uuid.New()
	uc.EXPECT().Cancel(mock.Anything, caller, orderID).Return(&entity.Order{
		ID:     orderID,
		UserID: caller.UserID,
		Status: entity.OrderStatusCancelled,
	}, nil)

	rec := doRequest(e, http.MethodPost, "/orders/"+orderID.String()+"/cancel", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CANCELLED")
}

func TestOrderHandler_GetOrder_NotFound(t *testing.T) {
	e, uc, caller := newOrderTestServer(t)

	orderID := uuid.New()
	uc.EXPECT().GetOrder(mock.Anything, caller, orderID).Return(nil, domainerrors.ErrOrderNotFound)

	rec := doRequest(e, http.MethodGet, "/orders/"+orderID.String(), "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_ListOrders_ParsesQueryFilters(t *testing.T) {
	e, uc, caller := newOrderTestServer(t)

	locationID := uuid.New()
	uc.EXPECT().ListOrders(mock.Anything, caller, mock.MatchedBy(func(query usecase.ListOrdersQuery) bool {
		return query.LocationID != nil && *query.LocationID == locationID &&
			query.Status != nil && *query.Status == entity.OrderStatusPending &&
			query.Page == 2 && query.PageSize == 10
	})).Return([]*entity.Order{}, nil)

	target := "/orders?location_id=" + locationID.String() + "&status=PENDING&page=2&page_size=10"
	rec := doRequest(e, http.MethodGet, target, "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOrderHandler_ListOrders_RejectsUnknownStatus(t *testing.T) {
	e, uc, _ := newOrderTestServer(t)

	rec := doRequest(e, http.MethodGet, "/orders?status=BURNT", "", true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "ListOrders")
}
