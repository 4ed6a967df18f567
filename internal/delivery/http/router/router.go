// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/router/handler"
	"mesa/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	CatalogHandler  *handler.CatalogHandler
	OrderHandler    *handler.OrderHandler
	DeviceHandler   *handler.DeviceHandler
	RealtimeHandler *handler.RealtimeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	catalogHandler  *handler.CatalogHandler
	orderHandler    *handler.OrderHandler
	deviceHandler   *handler.DeviceHandler
	realtimeHandler *handler.RealtimeHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		catalogHandler:  params.CatalogHandler,
		orderHandler:    params.OrderHandler,
		deviceHandler:   params.DeviceHandler,
		realtimeHandler: params.RealtimeHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Public catalog routes: menus are browsable without an account.
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.catalogHandler.ListLocations)
		locationGroup.GET("/:id/menu", r.catalogHandler.GetMenu)
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
	}

	// Order routes. Role checks beyond authentication live in the usecase
	// layer, which knows which transitions each role may perform.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.PATCH("/:id/status", r.orderHandler.SetStatus)
		orderGroup.POST("/:id/cancel", r.orderHandler.Cancel)
	}

	// Device routes for push notification tokens
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.ListDevices)
	}

	// Admin routes that require the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRoles(entity.RoleAdmin))
	{
		adminGroup.POST("/staff", r.userHandler.CreateStaff)
		adminGroup.POST("/locations", r.catalogHandler.CreateLocation)
		adminGroup.PUT("/locations/:id", r.catalogHandler.UpdateLocation)
		adminGroup.GET("/locations/:id/qrcode", r.catalogHandler.GetMenuQR)
		adminGroup.POST("/menu-items", r.catalogHandler.CreateMenuItem)
		adminGroup.PUT("/menu-items/:id", r.catalogHandler.UpdateMenuItem)
		adminGroup.POST("/customizations", r.catalogHandler.CreateCustomization)
	}

	// WebSocket endpoint; authenticates inside the handler so browser
	// clients can pass the token as a query parameter.
	e.GET("/ws", r.realtimeHandler.Serve)
}
