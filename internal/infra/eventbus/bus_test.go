package eventbus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/service"
	mockSvc "rescue/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

var (
	taipeiStation = entity.GeoPoint{Lat: 25.0478, Lng: 121.5170}
	taichung      = entity.GeoPoint{Lat: 24.1500, Lng: 120.6800}
)

func newTestBus(t *testing.T, throttle time.Duration, push service.PushTransport) *Bus {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
	bus := New(Options{
		QueueSize:        64,
		SessionBuffer:    16,
		ThrottleInterval: throttle,
	}, logger, push)
	bus.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
		defer cancel()
		_ = bus.Stop(ctx)
	})

	return bus
}

func offerEvent(eventType entity.EventType, location entity.GeoPoint, title string) *entity.DomainEvent {
	return &entity.DomainEvent{
		ID:       uuid.New(),
		Type:     eventType,
		Location: &location,
		Payload:  entity.OfferEventPayload{Offer: &entity.Offer{ID: uuid.New(), Title: title}},
	}
}

func receive(t *testing.T, ch <-chan *entity.DomainEvent) *entity.DomainEvent {
	t.Helper()

	select {
	case event, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")

		return event
	case <-time.After(waitTimeout):
		require.FailNow(t, "timed out waiting for event")
	}

	return nil
}

func assertNoEvent(t *testing.T, ch <-chan *entity.DomainEvent, wait time.Duration) {
	t.Helper()

	select {
	case event, ok := <-ch:
		if ok {
			assert.Failf(t, "unexpected event", "got %s", event.Type)
		}
	case <-time.After(wait):
	}
}

func assertClosed(t *testing.T, ch <-chan *entity.DomainEvent) {
	t.Helper()

	select {
	case _, ok := <-ch:
		assert.False(t, ok, "channel should be closed")
	case <-time.After(waitTimeout):
		assert.Fail(t, "channel was not closed")
	}
}

func subscribe(t *testing.T, bus *Bus, userID uuid.UUID, center entity.GeoPoint, radius float64) (string, <-chan *entity.DomainEvent) {
	t.Helper()

	sessionID := uuid.NewString()
	ch, err := bus.Subscribe(service.SubscribeRequest{
		SessionID:    sessionID,
		UserID:       userID,
		Center:       center,
		RadiusMeters: radius,
	})
	require.NoError(t, err)

	return sessionID, ch
}

func TestBus_ProximityEventsReachOnlyCoveringSessions(t *testing.T) {
	bus := newTestBus(t, 50*time.Millisecond, nil)

	_, near := subscribe(t, bus, uuid.New(), taipeiStation, 5_000)
	_, far := subscribe(t, bus, uuid.New(), taichung, 5_000)

	event := offerEvent(entity.EventTypeOfferExpired, entity.GeoPoint{Lat: 25.05, Lng: 121.52}, "bread")
	require.NoError(t, bus.Publish(context.Background(), event))

	got := receive(t, near)
	assert.Equal(t, event.ID, got.ID)
	assertNoEvent(t, far, 100*time.Millisecond)
}

func TestBus_ThrottleDeliversMostRecentEvent(t *testing.T) {
	bus := newTestBus(t, 150*time.Millisecond, nil)
	_, ch := subscribe(t, bus, uuid.New(), taipeiStation, 5_000)

	var last *entity.DomainEvent
	for idx := range 5 {
		last = offerEvent(entity.EventTypeOfferCreated, taipeiStation, string(rune('a'+idx)))
		require.NoError(t, bus.Publish(context.Background(), last))
	}

	got := receive(t, ch)
	assert.Equal(t, last.ID, got.ID)
	assertNoEvent(t, ch, 300*time.Millisecond)

	next := offerEvent(entity.EventTypeOfferCreated, taipeiStation, "later")
	require.NoError(t, bus.Publish(context.Background(), next))
	assert.Equal(t, next.ID, receive(t, ch).ID)
}

func TestBus_ThrottleIsPerEventClass(t *testing.T) {
	bus := newTestBus(t, 100*time.Millisecond, nil)
	_, ch := subscribe(t, bus, uuid.New(), taipeiStation, 5_000)

	created := offerEvent(entity.EventTypeOfferCreated, taipeiStation, "created")
	updated := offerEvent(entity.EventTypeOfferUpdated, taipeiStation, "updated")
	require.NoError(t, bus.Publish(context.Background(), created))
	require.NoError(t, bus.Publish(context.Background(), updated))

	got := []uuid.UUID{receive(t, ch).ID, receive(t, ch).ID}
	assert.ElementsMatch(t, []uuid.UUID{created.ID, updated.ID}, got)
}

func TestBus_RecipientEventsReachOwnSessionsOnly(t *testing.T) {
	bus := newTestBus(t, 50*time.Millisecond, nil)
	merchantID := uuid.New()

	_, merchantA := subscribe(t, bus, merchantID, taipeiStation, 1_000)
	_, merchantB := subscribe(t, bus, merchantID, taichung, 1_000)
	_, other := subscribe(t, bus, uuid.New(), taipeiStation, 1_000)

	event := &entity.DomainEvent{
		ID:          uuid.New(),
		Type:        entity.EventTypeReservationCreated,
		RecipientID: merchantID,
	}
	require.NoError(t, bus.Publish(context.Background(), event))

	assert.Equal(t, event.ID, receive(t, merchantA).ID)
	assert.Equal(t, event.ID, receive(t, merchantB).ID)
	assertNoEvent(t, other, 100*time.Millisecond)
}

func TestBus_ResubscribeReplacesSession(t *testing.T) {
	bus := newTestBus(t, 50*time.Millisecond, nil)
	userID := uuid.New()

	first, err := bus.Subscribe(service.SubscribeRequest{SessionID: "s-1", UserID: userID, Center: taipeiStation, RadiusMeters: 1_000})
	require.NoError(t, err)
	second, err := bus.Subscribe(service.SubscribeRequest{SessionID: "s-1", UserID: userID, Center: taichung, RadiusMeters: 1_000})
	require.NoError(t, err)

	assertClosed(t, first)
	assert.Equal(t, 1, bus.SessionCount())

	// Releasing the stale channel must not tear down the replacement.
	bus.Release("s-1", first)
	assert.Equal(t, 1, bus.SessionCount())

	event := offerEvent(entity.EventTypeOfferExpired, taichung, "moved")
	require.NoError(t, bus.Publish(context.Background(), event))
	assert.Equal(t, event.ID, receive(t, second).ID)

	bus.Release("s-1", second)
	assert.Equal(t, 0, bus.SessionCount())
	assertClosed(t, second)
}

func TestBus_SubscribeRejectsSessionOfAnotherUser(t *testing.T) {
	bus := newTestBus(t, 50*time.Millisecond, nil)
	owner := uuid.New()

	ownerCh, err := bus.Subscribe(service.SubscribeRequest{SessionID: "tab-1", UserID: owner, Center: taipeiStation, RadiusMeters: 1_000})
	require.NoError(t, err)

	otherCh, err := bus.Subscribe(service.SubscribeRequest{SessionID: "tab-1", UserID: uuid.New(), Center: taichung, RadiusMeters: 1_000})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, otherCh)
	assert.Equal(t, 1, bus.SessionCount())

	event := offerEvent(entity.EventTypeOfferExpired, taipeiStation, "still mine")
	require.NoError(t, bus.Publish(context.Background(), event))
	assert.Equal(t, event.ID, receive(t, ownerCh).ID)
}

func TestBus_UnsubscribeChecksOwner(t *testing.T) {
	bus := newTestBus(t, 50*time.Millisecond, nil)
	owner := uuid.New()
	sessionID, ch := subscribe(t, bus, owner, taipeiStation, 1_000)

	assert.False(t, bus.Unsubscribe(uuid.New(), sessionID))
	assert.False(t, bus.Unsubscribe(owner, "unknown"))
	assert.True(t, bus.Unsubscribe(owner, sessionID))
	assertClosed(t, ch)
	assert.False(t, bus.Unsubscribe(owner, sessionID))
}

func TestBus_SubscribeValidation(t *testing.T) {
	bus := newTestBus(t, 50*time.Millisecond, nil)

	_, err := bus.Subscribe(service.SubscribeRequest{UserID: uuid.New(), Center: taipeiStation, RadiusMeters: 100})
	assert.Error(t, err)

	_, err = bus.Subscribe(service.SubscribeRequest{SessionID: "x", Center: entity.GeoPoint{Lat: 100}, RadiusMeters: 100})
	assert.Error(t, err)

	_, err = bus.Subscribe(service.SubscribeRequest{SessionID: "x", Center: taipeiStation})
	assert.Error(t, err)
}

func TestBus_SinkRunsBeforeFanOutAndFailureIsIgnored(t *testing.T) {
	bus := newTestBus(t, 50*time.Millisecond, nil)
	sink := mockSvc.NewMockEventSink(t)
	bus.AddSink(sink)

	recipientID := uuid.New()
	_, ch := subscribe(t, bus, recipientID, taipeiStation, 1_000)

	event := &entity.DomainEvent{ID: uuid.New(), Type: entity.EventTypeNotification, RecipientID: recipientID}
	sinkCalled := make(chan struct{})
	sink.EXPECT().HandleEvent(mock.Anything, event).
		Run(func(_ context.Context, _ *entity.DomainEvent) { close(sinkCalled) }).
		Return(errors.New("inbox unavailable"))

	require.NoError(t, bus.Publish(context.Background(), event))

	got := receive(t, ch)
	select {
	case <-sinkCalled:
	default:
		assert.Fail(t, "sink should run before the session receives the event")
	}
	assert.Equal(t, event.ID, got.ID)
}

func TestBus_PushHandOffForRecipientEvents(t *testing.T) {
	push := mockSvc.NewMockPushTransport(t)
	bus := newTestBus(t, 50*time.Millisecond, push)

	event := &entity.DomainEvent{ID: uuid.New(), Type: entity.EventTypeReservationCreated, RecipientID: uuid.New()}
	pushed := make(chan struct{})
	push.EXPECT().Push(mock.Anything, event).
		Run(func(_ context.Context, _ *entity.DomainEvent) { close(pushed) }).
		Return(errors.New("broker down"))

	require.NoError(t, bus.Publish(context.Background(), event))

	select {
	case <-pushed:
	case <-time.After(waitTimeout):
		require.FailNow(t, "push transport was not called")
	}

	// Proximity events never go to the push transport.
	require.NoError(t, bus.Publish(context.Background(), offerEvent(entity.EventTypeOfferCreated, taipeiStation, "x")))
	time.Sleep(50 * time.Millisecond)
}

func TestBus_SlowSessionDoesNotBlockOthers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := New(Options{QueueSize: 256, SessionBuffer: 1}, logger, nil)
	bus.Start()
	defer func() { _ = bus.Stop(context.Background()) }()

	slowUser, otherUser := uuid.New(), uuid.New()
	_, slow := subscribe(t, bus, slowUser, taipeiStation, 1_000)
	_, other := subscribe(t, bus, otherUser, taipeiStation, 1_000)

	for range 50 {
		require.NoError(t, bus.Publish(context.Background(), &entity.DomainEvent{ID: uuid.New(), Type: entity.EventTypeNotification, RecipientID: slowUser}))
	}

	final := &entity.DomainEvent{ID: uuid.New(), Type: entity.EventTypeNotification, RecipientID: otherUser}
	require.NoError(t, bus.Publish(context.Background(), final))

	assert.Equal(t, final.ID, receive(t, other).ID)
	assert.NotNil(t, receive(t, slow))
}

func TestBus_PublishWhenQueueFull(t *testing.T) {
	bus := New(Options{QueueSize: 1}, nil, nil)

	require.NoError(t, bus.Publish(context.Background(), &entity.DomainEvent{ID: uuid.New()}))
	assert.ErrorIs(t, bus.Publish(context.Background(), &entity.DomainEvent{ID: uuid.New()}), ErrQueueFull)
}

func TestBus_StopClosesSessionsAndRejectsPublish(t *testing.T) {
	bus := New(Options{}, nil, nil)
	bus.Start()
	_, ch := subscribe(t, bus, uuid.New(), taipeiStation, 1_000)

	require.NoError(t, bus.Stop(context.Background()))

	assertClosed(t, ch)
	assert.ErrorIs(t, bus.Publish(context.Background(), &entity.DomainEvent{ID: uuid.New()}), ErrBusStopped)
	_, err := bus.Subscribe(service.SubscribeRequest{SessionID: "late", Center: taipeiStation, RadiusMeters: 10})
	assert.ErrorIs(t, err, ErrBusStopped)
}
