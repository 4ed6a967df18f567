package realtime

import (
	"encoding/json"
	"log/slog"
	"time"

	"mesa/config"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client actions accepted over the WebSocket.
const (
	ActionJoinLocation     = "joinLocation"
	ActionLeaveLocation    = "leaveLocation"
	ActionTyping           = "typing"
	ActionNotificationRead = "notificationRead"
)

const (
	defaultWriteWait      = 10 * time.Second
	defaultPongWait       = 60 * time.Second
	defaultMaxMessageSize = 1024
)

// Command is the single client-to-server message shape. Every connection
// state change goes through dispatch of one of these.
type Command struct {
	Action     string          `json:"action"`
	LocationID uuid.UUID       `json:"location_id"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

// Client pumps one WebSocket connection: commands in, hub events out.
type Client struct {
	conn    *websocket.Conn
	session *Session
	hub     *Hub
	logger  *slog.Logger

	writeWait      time.Duration
	pongWait       time.Duration
	maxMessageSize int64
}

// NewClient wires an upgraded connection to a hub session.
func NewClient(conn *websocket.Conn, session *Session, hub *Hub, cfg *config.Config, logger *slog.Logger) *Client {
	client := &Client{
		conn:           conn,
		session:        session,
		hub:            hub,
		logger:         logger,
		writeWait:      defaultWriteWait,
		pongWait:       defaultPongWait,
		maxMessageSize: defaultMaxMessageSize,
	}

	if cfg != nil && cfg.Realtime != nil {
		if cfg.Realtime.WriteWait > 0 {
			client.writeWait = cfg.Realtime.WriteWait
		}
		if cfg.Realtime.PongWait > 0 {
			client.pongWait = cfg.Realtime.PongWait
		}
		if cfg.Realtime.MaxMessageSize > 0 {
			client.maxMessageSize = cfg.Realtime.MaxMessageSize
		}
	}

	return client
}

// Run starts the write pump and blocks on the read pump until the
// connection drops.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Disconnect(c.session)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(c.maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.pongWait))

		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("WebSocket closed unexpectedly", slog.Any("error", err))
			}

			return
		}

		var cmd Command
		if err := json.Unmarshal(raw, &cmd); err != nil {
			c.logger.Warn("Ignoring malformed command", slog.Any("error", err))

			continue
		}

		c.dispatch(cmd)
	}
}

// dispatch applies one client command to the session's subscription state.
func (c *Client) dispatch(cmd Command) {
	switch cmd.Action {
	case ActionJoinLocation:
		if cmd.LocationID == uuid.Nil {
			return
		}
		c.hub.Join(c.session, LocationChannel(cmd.LocationID))

	case ActionLeaveLocation:
		if cmd.LocationID == uuid.Nil {
			return
		}
		c.hub.Leave(c.session, LocationChannel(cmd.LocationID))

	case ActionTyping, ActionNotificationRead:
		if cmd.LocationID == uuid.Nil {
			return
		}
		// Ephemeral relay: everyone on the location channel except the sender.
		c.hub.BroadcastExcept(LocationChannel(cmd.LocationID), cmd.Action, relayPayload{
			UserID:  c.session.UserID().String(),
			Payload: cmd.Payload,
		}, c.session)

	default:
		c.logger.Warn("Unknown command action", slog.String("action", cmd.Action))
	}
}

// relayPayload wraps a relayed ephemeral event with its sender.
type relayPayload struct {
	UserID  string          `json:"user_id"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (c *Client) writePump() {
	pingPeriod := c.pongWait * 9 / 10

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.session.Outbox():
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
