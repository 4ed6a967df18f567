// Package realtime implements the in-process WebSocket fan-out hub.
// Delivery is best-effort to currently connected subscribers only; there is
// no backlog and no replay.
package realtime

import (
	"log/slog"
	"sync"
	"time"

	"mesa/config"

	"github.com/google/uuid"
)

const defaultSendBufferSize = 32

// UserChannel returns the personal channel name for a user.
func UserChannel(userID uuid.UUID) string {
	return "user:" + userID.String()
}

// LocationChannel returns the shared channel name for a location.
func LocationChannel(locationID uuid.UUID) string {
	return "location:" + locationID.String()
}

// Event is the envelope pushed to subscribers.
type Event struct {
	Event     string `json:"event"`
	Channel   string `json:"channel"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

// Hub tracks live sessions and their channel subscriptions.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]map[*Session]struct{}

	sendBufferSize int
	logger         *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(cfg *config.Config, logger *slog.Logger) *Hub {
	bufferSize := defaultSendBufferSize
	if cfg != nil && cfg.Realtime != nil && cfg.Realtime.SendBufferSize > 0 {
		bufferSize = cfg.Realtime.SendBufferSize
	}

	return &Hub{
		channels:       make(map[string]map[*Session]struct{}),
		sendBufferSize: bufferSize,
		logger:         logger,
	}
}

// Connect registers a new session for an authenticated user and auto-joins
// their personal channel.
func (h *Hub) Connect(userID uuid.UUID) *Session {
	session := &Session{
		hub:    h,
		userID: userID,
		send:   make(chan Event, h.sendBufferSize),
		joined: make(map[string]struct{}),
	}

	h.Join(session, UserChannel(userID))

	h.logger.Info("Realtime session connected", slog.String("user_id", userID.String()))

	return session
}

// Disconnect removes the session from every channel and closes its outbox.
func (h *Hub) Disconnect(session *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if session.closed {
		return
	}
	session.closed = true

	for channel := range session.joined {
		h.removeLocked(session, channel)
	}
	close(session.send)

	h.logger.Info("Realtime session disconnected", slog.String("user_id", session.userID.String()))
}

// Join subscribes the session to a channel. Joining twice is a no-op.
func (h *Hub) Join(session *Session, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if session.closed {
		return
	}

	subscribers, ok := h.channels[channel]
	if !ok {
		subscribers = make(map[*Session]struct{})
		h.channels[channel] = subscribers
	}
	subscribers[session] = struct{}{}
	session.joined[channel] = struct{}{}
}

// Leave unsubscribes the session from a channel. Leaving a channel the
// session never joined is a no-op.
func (h *Hub) Leave(session *Session, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(session, channel)
}

// Publish delivers an event to every subscriber of a channel. Subscribers
// whose outbox is full are skipped; the hub never blocks the caller.
func (h *Hub) Publish(channel, event string, payload any) {
	h.publish(channel, event, payload, nil)
}

// BroadcastExcept delivers an event to every subscriber of a channel except
// the sender. Used for relayed ephemeral events like typing indicators.
func (h *Hub) BroadcastExcept(channel, event string, payload any, sender *Session) {
	h.publish(channel, event, payload, sender)
}

func (h *Hub) publish(channel, event string, payload any, except *Session) {
	msg := Event{
		Event:     event,
		Channel:   channel,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for session := range h.channels[channel] {
		if session == except {
			continue
		}

		select {
		case session.send <- msg:
		default:
			h.logger.Warn("Realtime outbox full, dropping event",
				slog.String("channel", channel),
				slog.String("event", event),
				slog.String("user_id", session.userID.String()))
		}
	}
}

// SubscriberCount returns the number of sessions subscribed to a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.channels[channel])
}

// removeLocked drops the session from one channel. Caller holds h.mu.
func (h *Hub) removeLocked(session *Session, channel string) {
	delete(session.joined, channel)

	subscribers, ok := h.channels[channel]
	if !ok {
		return
	}

	delete(subscribers, session)
	if len(subscribers) == 0 {
		delete(h.channels, channel)
	}
}

// Session is one live connection's subscription state. All channel
// membership changes go through the hub.
type Session struct {
	hub    *Hub
	userID uuid.UUID
	send   chan Event
	joined map[string]struct{}
	closed bool
}

// UserID returns the authenticated owner of this session.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// Outbox returns the channel the write loop drains. It is closed on
// disconnect.
func (s *Session) Outbox() <-chan Event {
	return s.send
}
