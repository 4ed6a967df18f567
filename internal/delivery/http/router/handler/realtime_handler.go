package handler

import (
	"log/slog"
	"net/http"

	"mesa/config"
	"mesa/internal/delivery/http/middleware"
	"mesa/internal/delivery/http/response"
	domainerrors "mesa/internal/domain/errors"
	"mesa/internal/domain/service"
	"mesa/internal/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// RealtimeHandler upgrades HTTP connections to WebSocket sessions on the hub.
type RealtimeHandler struct {
	hub      *realtime.Hub
	tokenSvc service.TokenService
	cfg      *config.Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewRealtimeHandler is the constructor for RealtimeHandler, injected by Fx.
func NewRealtimeHandler(hub *realtime.Hub, tokenSvc service.TokenService, cfg *config.Config, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub:      hub,
		tokenSvc: tokenSvc,
		cfg:      cfg,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Token auth makes the connection safe cross-origin.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Serve authenticates the upgrade request and runs the WebSocket session
// until the client disconnects.
func (h *RealtimeHandler) Serve(c echo.Context) error {
	claims, err := middleware.ClaimsFromRequest(c, h.tokenSvc)
	if err != nil {
		return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message())
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote an HTTP error response.
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	session := h.hub.Connect(claims.UserID)
	h.logger.Info("websocket session opened", slog.String("userID", claims.UserID.String()))

	realtime.NewClient(conn, session, h.hub, h.cfg, h.logger).Run()

	h.logger.Info("websocket session closed", slog.String("userID", claims.UserID.String()))

	return nil
}
