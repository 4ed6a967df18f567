// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/response"
	"mesa/internal/domain/entity"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type createStaffRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// authResponse is the wire shape of a successful authentication.
type authResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

func toAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
	}
}

// Register handles the customer registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output))
}

// CreateStaff handles staff account provisioning. Admin only.
func (h *UserHandler) CreateStaff(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	var req createStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid staff input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	user, err := h.uc.CreateStaff(c.Request().Context(), caller, usecase.CreateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, user)
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// Refresh handles the token refresh request.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	output, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}

// Logout handles the user logout request.
func (h *UserHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), "Invalid logout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "logged out"})
}

// GetProfile returns the caller's own account.
func (h *UserHandler) GetProfile(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	user, err := h.uc.GetProfile(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
