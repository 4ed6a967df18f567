package handler

import (
	"log/slog"
	"net/http"

	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/response"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CatalogHandler holds dependencies for location and menu handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type createLocationRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=255"`
}

type updateLocationRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Address  string `json:"address" validate:"required,max=255"`
	IsActive bool   `json:"is_active"`
}

type createMenuItemRequest struct {
	LocationID  uuid.UUID `json:"location_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=100"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required,max=50"`
	Price       string    `json:"price" validate:"required"`
}

type updateMenuItemRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,max=50"`
	Price       string `json:"price" validate:"required"`
	IsAvailable bool   `json:"is_available"`
}

type createCustomizationRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" validate:"required"`
	Name       string    `json:"name" validate:"required,max=100"`
	Price      string    `json:"price" validate:"required"`
}

// parsePrice validates a client-supplied decimal string. Negative prices are
// rejected here; everything downstream trusts the decimal.
func parsePrice(raw string) (decimal.Decimal, bool) {
	price, err := decimal.NewFromString(raw)
	if err != nil || price.IsNegative() {
		return decimal.Zero, false
	}

	return price, true
}

// CreateLocation handles location creation. Admin only.
func (h *CatalogHandler) CreateLocation(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	var req createLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	location, err := h.uc.CreateLocation(c.Request().Context(), caller, usecase.CreateLocationInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location)
}

// UpdateLocation handles location updates. Admin only.
func (h *CatalogHandler) UpdateLocation(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid location ID")
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	location, err := h.uc.UpdateLocation(c.Request().Context(), caller, usecase.UpdateLocationInput{
		LocationID: locationID,
		Name:       req.Name,
		Address:    req.Address,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// ListLocations lists locations. Public; defaults to active only.
func (h *CatalogHandler) ListLocations(c echo.Context) error {
	activeOnly := c.QueryParam("all") != "true"

	locations, err := h.uc.ListLocations(c.Request().Context(), activeOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// CreateMenuItem handles menu item creation. Admin only.
func (h *CatalogHandler) CreateMenuItem(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid menu item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	price, ok := parsePrice(req.Price)
	if !ok {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid price")
	}

	item, err := h.uc.CreateMenuItem(c.Request().Context(), caller, usecase.CreateMenuItemInput{
		LocationID:  req.LocationID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// UpdateMenuItem handles menu item updates. Admin only.
func (h *CatalogHandler) UpdateMenuItem(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	menuItemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid menu item ID")
	}

	var req updateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid menu item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	price, ok := parsePrice(req.Price)
	if !ok {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid price")
	}

	item, err := h.uc.UpdateMenuItem(c.Request().Context(), caller, usecase.UpdateMenuItemInput{
		MenuItemID:  menuItemID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       price,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// CreateCustomization handles customization creation. Admin only.
func (h *CatalogHandler) CreateCustomization(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	var req createCustomizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid customization input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	price, ok := parsePrice(req.Price)
	if !ok {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid price")
	}

	customization, err := h.uc.CreateCustomization(c.Request().Context(), caller, usecase.CreateCustomizationInput{
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Price:      price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customization)
}

// GetMenu returns the full menu of an active location. Public.
func (h *CatalogHandler) GetMenu(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid location ID")
	}

	menu, err := h.uc.GetMenu(c.Request().Context(), locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu)
}

// GetMenuQR renders the menu QR code PNG for a location. Admin only.
func (h *CatalogHandler) GetMenuQR(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid location ID")
	}

	png, err := h.uc.GenerateMenuQR(c.Request().Context(), locationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
