package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/response"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order lifecycle handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type cartCustomizationRequest struct {
	CustomizationID uuid.UUID `json:"customization_id" validate:"required"`
	Quantity        int       `json:"quantity" validate:"required,min=1"`
}

type cartItemRequest struct {
	MenuItemID     uuid.UUID                  `json:"menu_item_id" validate:"required"`
	Quantity       int                        `json:"quantity" validate:"required,min=1"`
	Customizations []cartCustomizationRequest `json:"customizations" validate:"dive"`
}

type createOrderRequest struct {
	LocationID uuid.UUID         `json:"location_id" validate:"required"`
	Items      []cartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r createOrderRequest) toCart() entity.Cart {
	cart := make(entity.Cart, 0, len(r.Items))
	for _, item := range r.Items {
		customizations := make([]entity.CartCustomization, 0, len(item.Customizations))
		for _, customization := range item.Customizations {
			customizations = append(customizations, entity.CartCustomization{
				CustomizationID: customization.CustomizationID,
				Quantity:        customization.Quantity,
			})
		}

		cart = append(cart, entity.CartItem{
			MenuItemID:     item.MenuItemID,
			Quantity:       item.Quantity,
			Customizations: customizations,
		})
	}

	return cart
}

// CreateOrder handles order placement.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), caller, usecase.CreateOrderInput{
		LocationID: req.LocationID,
		Cart:       req.toCart(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// SetStatus handles the unguarded status-set operation. Kitchen/admin only.
func (h *OrderHandler) SetStatus(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid order ID")
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	order, err := h.uc.SetStatus(c.Request().Context(), caller, usecase.SetOrderStatusInput{
		OrderID: orderID,
		Status:  entity.OrderStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Cancel handles the guarded cancel operation.
func (h *OrderHandler) Cancel(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid order ID")
	}

	order, err := h.uc.Cancel(c.Request().Context(), caller, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetOrder retrieves a single order, scoped to the caller's visibility.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid order ID")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), caller, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListOrders retrieves orders matching the query filters, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	query := usecase.ListOrdersQuery{}

	if raw := c.QueryParam("location_id"); raw != "" {
		locationID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid location ID")
		}
		query.LocationID = &locationID
	}

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		if !status.IsValid() {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid order status")
		}
		query.Status = &status
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid page")
		}
		query.Page = page
	}

	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid page size")
		}
		query.PageSize = pageSize
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), caller, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}
