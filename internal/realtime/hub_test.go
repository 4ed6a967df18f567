package realtime

import (
	"io"
	"log/slog"
	"testing"

	"mesa/config"
	"mesa/internal/domain/entity"
	"mesa/internal/domain/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	cfg := &config.Config{
		Realtime: &config.RealtimeConfig{SendBufferSize: 4},
	}

	return NewHub(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func drain(t *testing.T, session *Session) Event {
	t.Helper()

	select {
	case event := <-session.Outbox():
		return event
	default:
		t.Fatal("expected an event in the outbox")

		return Event{}
	}
}

func TestHub_ConnectAutoJoinsPersonalChannel(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()

	session := hub.Connect(userID)
	defer hub.Disconnect(session)

	assert.Equal(t, 1, hub.SubscriberCount(UserChannel(userID)))

	hub.Publish(UserChannel(userID), "orderStatusUpdated", "payload")
	event := drain(t, session)
	assert.Equal(t, "orderStatusUpdated", event.Event)
	assert.Equal(t, UserChannel(userID), event.Channel)
}

func TestHub_JoinAndLeaveAreIdempotent(t *testing.T) {
	hub := newTestHub()
	session := hub.Connect(uuid.New())
	defer hub.Disconnect(session)

	locationID := uuid.New()
	channel := LocationChannel(locationID)

	hub.Join(session, channel)
	hub.Join(session, channel)
	assert.Equal(t, 1, hub.SubscriberCount(channel))

	hub.Publish(channel, "newOrder", nil)
	drain(t, session)
	// A double join must not duplicate delivery.
	select {
	case <-session.Outbox():
		t.Fatal("received duplicate event after double join")
	default:
	}

	hub.Leave(session, channel)
	hub.Leave(session, channel)
	assert.Equal(t, 0, hub.SubscriberCount(channel))

	hub.Publish(channel, "newOrder", nil)
	select {
	case <-session.Outbox():
		t.Fatal("received event after leaving channel")
	default:
	}
}

func TestHub_PublishSkipsFullOutbox(t *testing.T) {
	hub := newTestHub()
	session := hub.Connect(uuid.New())
	defer hub.Disconnect(session)

	channel := LocationChannel(uuid.New())
	hub.Join(session, channel)

	// Buffer size is 4; publishing more must not block.
	for i := 0; i < 10; i++ {
		hub.Publish(channel, "newOrder", i)
	}

	count := 0
	for {
		select {
		case <-session.Outbox():
			count++

			continue
		default:
		}

		break
	}
	assert.Equal(t, 4, count)
}

func TestHub_BroadcastExceptSkipsSender(t *testing.T) {
	hub := newTestHub()
	sender := hub.Connect(uuid.New())
	receiver := hub.Connect(uuid.New())
	defer hub.Disconnect(sender)
	defer hub.Disconnect(receiver)

	channel := LocationChannel(uuid.New())
	hub.Join(sender, channel)
	hub.Join(receiver, channel)

	hub.BroadcastExcept(channel, "typing", nil, sender)

	event := drain(t, receiver)
	assert.Equal(t, "typing", event.Event)

	select {
	case <-sender.Outbox():
		t.Fatal("sender received its own broadcast")
	default:
	}
}

func TestHub_DisconnectRemovesAllSubscriptions(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	session := hub.Connect(userID)

	channel := LocationChannel(uuid.New())
	hub.Join(session, channel)

	hub.Disconnect(session)
	hub.Disconnect(session) // second disconnect is a no-op

	assert.Equal(t, 0, hub.SubscriberCount(UserChannel(userID)))
	assert.Equal(t, 0, hub.SubscriberCount(channel))

	// Outbox is closed after disconnect.
	_, ok := <-session.Outbox()
	assert.False(t, ok)
}

func TestOrderNotifier_PublishesToUserAndLocationChannels(t *testing.T) {
	hub := newTestHub()
	userID := uuid.New()
	locationID := uuid.New()

	owner := hub.Connect(userID)
	staff := hub.Connect(uuid.New())
	defer hub.Disconnect(owner)
	defer hub.Disconnect(staff)

	hub.Join(staff, LocationChannel(locationID))

	notifier := NewOrderNotifier(hub)
	order := &entity.Order{
		ID:         uuid.New(),
		UserID:     userID,
		LocationID: locationID,
		Status:     entity.OrderStatusPending,
		Total:      decimal.RequireFromString("24.00"),
	}

	notifier.NotifyOrderCreated(order)

	ownerEvent := drain(t, owner)
	require.Equal(t, service.EventNewOrder, ownerEvent.Event)
	assert.Equal(t, UserChannel(userID), ownerEvent.Channel)

	staffEvent := drain(t, staff)
	require.Equal(t, service.EventNewOrder, staffEvent.Event)
	assert.Equal(t, LocationChannel(locationID), staffEvent.Channel)
}
