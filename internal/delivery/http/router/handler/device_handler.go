package handler

import (
	"log/slog"
	"net/http"

	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/response"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DeviceHandler holds dependencies for push-notification device handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice records or refreshes an FCM device token for the caller.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), caller, usecase.RegisterDeviceInput{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// ListDevices returns the caller's active devices.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	devices, err := h.uc.ListDevices(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}
