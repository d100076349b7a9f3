// Package eventbus fans domain events out to live subscriber sessions.
package eventbus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rescue/config"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/service"
	"rescue/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var (
	// ErrQueueFull is returned by Publish when the dispatch queue has no room.
	ErrQueueFull = errors.New("event queue is full")
	// ErrBusStopped is returned by Publish after Stop.
	ErrBusStopped = errors.New("event bus is stopped")
)

// Options tunes the dispatcher.
type Options struct {
	QueueSize        int
	SessionBuffer    int
	ThrottleInterval time.Duration
	SinkTimeout      time.Duration
	PushTimeout      time.Duration
}

// Bus is the in-process EventBus implementation.
type Bus struct {
	opts   Options
	logger *slog.Logger
	push   service.PushTransport

	queue chan *entity.DomainEvent
	done  chan struct{}
	wg    sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once

	sinksMu sync.RWMutex
	sinks   []service.EventSink

	mu       sync.RWMutex
	sessions map[string]*session
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Push   service.PushTransport `optional:"true"`
}

// NewBus creates the bus from configuration and ties its dispatcher to the Fx lifecycle.
func NewBus(params Params) *Bus {
	marketplace := params.Config.Marketplace.WithDefaults()
	bus := New(Options{
		QueueSize:        marketplace.EventQueueSize,
		SessionBuffer:    marketplace.SessionBufferSize,
		ThrottleInterval: marketplace.ThrottleInterval,
		SinkTimeout:      marketplace.SinkTimeout,
		PushTimeout:      marketplace.PushTimeout,
	}, params.Logger, params.Push)

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			bus.Start()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return bus.Stop(ctx)
		},
	})

	return bus
}

// New creates a bus. push may be nil when no out-of-session delivery is configured.
func New(opts Options, logger *slog.Logger, push service.PushTransport) *Bus {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1024
	}
	if opts.SessionBuffer <= 0 {
		opts.SessionBuffer = 32
	}
	if opts.SinkTimeout <= 0 {
		opts.SinkTimeout = 5 * time.Second
	}
	if opts.PushTimeout <= 0 {
		opts.PushTimeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Bus{
		opts:     opts,
		logger:   logger,
		push:     push,
		queue:    make(chan *entity.DomainEvent, opts.QueueSize),
		done:     make(chan struct{}),
		sessions: make(map[string]*session),
	}
}

// AddSink registers an observer that sees every event before fan-out.
func (b *Bus) AddSink(sink service.EventSink) {
	b.sinksMu.Lock()
	defer b.sinksMu.Unlock()

	b.sinks = append(b.sinks, sink)
}

// Start launches the dispatcher goroutine.
func (b *Bus) Start() {
	b.startOnce.Do(func() {
		b.wg.Add(1)
		go b.run()
	})
}

// Stop drains queued events, stops the dispatcher and closes every session.
func (b *Bus) Stop(ctx context.Context) error {
	b.stopOnce.Do(func() {
		close(b.done)
	})

	finished := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(finished)
	}()

	var err error
	select {
	case <-finished:
	case <-ctx.Done():
		err = errors.Wrap(ctx.Err(), "event bus did not drain before shutdown deadline")
	}

	b.mu.Lock()
	for id, sess := range b.sessions {
		sess.close()
		delete(b.sessions, id)
	}
	b.mu.Unlock()

	return err
}

// Publish enqueues an event without waiting for delivery.
func (b *Bus) Publish(ctx context.Context, event *entity.DomainEvent) error {
	if event == nil {
		return nil
	}

	select {
	case <-b.done:
		return ErrBusStopped
	default:
	}

	select {
	case b.queue <- event:
		return nil
	default:
		b.logger.WarnContext(ctx, "Event queue full, dropping event",
			slog.String("eventType", string(event.Type)),
			slog.String("eventId", event.ID.String()),
		)

		return ErrQueueFull
	}
}

// Subscribe registers a session. A session ID already held by the same user is replaced;
// one held by another user is rejected with ErrForbidden.
func (b *Bus) Subscribe(req service.SubscribeRequest) (<-chan *entity.DomainEvent, error) {
	if req.SessionID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("session_id is required")
	}
	if !req.Center.IsValid() {
		return nil, domainerrors.ErrInvalidPoint
	}
	if req.RadiusMeters <= 0 {
		return nil, domainerrors.ErrInvalidRadius
	}

	select {
	case <-b.done:
		return nil, ErrBusStopped
	default:
	}

	sess := newSession(req.SessionID, req.UserID, req.Center, req.RadiusMeters, b.opts.ThrottleInterval, b.opts.SessionBuffer)

	b.mu.Lock()
	prev := b.sessions[req.SessionID]
	if prev != nil && prev.userID != req.UserID {
		b.mu.Unlock()

		return nil, domainerrors.ErrForbidden.WithDetails("session_id is held by another user")
	}
	b.sessions[req.SessionID] = sess
	b.mu.Unlock()

	if prev != nil {
		prev.close()
	}

	return sess.ch, nil
}

// Unsubscribe removes a session owned by userID.
func (b *Bus) Unsubscribe(userID uuid.UUID, sessionID string) bool {
	b.mu.Lock()
	sess, ok := b.sessions[sessionID]
	if !ok || sess.userID != userID {
		b.mu.Unlock()

		return false
	}
	delete(b.sessions, sessionID)
	b.mu.Unlock()

	sess.close()

	return true
}

// release drops a session only if it is still the registered one for its ID.
// Stream handlers call it on disconnect so a replaced session is not removed twice.
func (b *Bus) release(sess *session) {
	b.mu.Lock()
	if current, ok := b.sessions[sess.id]; ok && current == sess {
		delete(b.sessions, sess.id)
	}
	b.mu.Unlock()

	sess.close()
}

// Release ends the subscription behind ch if it is still live. It is safe to call
// after Unsubscribe or replacement.
func (b *Bus) Release(sessionID string, ch <-chan *entity.DomainEvent) {
	b.mu.RLock()
	sess, ok := b.sessions[sessionID]
	b.mu.RUnlock()

	if ok && (<-chan *entity.DomainEvent)(sess.ch) == ch {
		b.release(sess)
	}
}

// SessionCount returns the number of live sessions.
func (b *Bus) SessionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.sessions)
}

func (b *Bus) run() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.queue:
			b.dispatch(event)
		case <-b.done:
			for {
				select {
				case event := <-b.queue:
					b.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) dispatch(event *entity.DomainEvent) {
	logger := b.logger.With(
		slog.String("eventType", string(event.Type)),
		slog.String("eventId", event.ID.String()),
	)
	if event.RequestID != "" {
		logger = logger.With(slog.String("request_id", event.RequestID))
	}

	// A panicking sink or session must not take the dispatcher down.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered from panic while dispatching event", slog.Any("panic", r))
		}
	}()

	b.runSinks(logger, event)
	b.handOffPush(logger, event)

	targets := b.targets(event)
	throttled := isThrottled(event.Type)
	dropped := 0
	for _, sess := range targets {
		if !sess.deliver(event, throttled) {
			dropped++
		}
	}

	if dropped > 0 {
		logger.Debug("Dropped event for slow or closed sessions",
			slog.Int("dropped", dropped),
			slog.Int("targets", len(targets)),
		)
	}
}

func (b *Bus) runSinks(logger *slog.Logger, event *entity.DomainEvent) {
	b.sinksMu.RLock()
	sinks := append([]service.EventSink(nil), b.sinks...)
	b.sinksMu.RUnlock()

	for _, sink := range sinks {
		ctx, cancel := context.WithTimeout(context.Background(), b.opts.SinkTimeout)
		if err := sink.HandleEvent(ctx, event); err != nil {
			logger.Warn("Event sink failed", slog.Any("error", err))
		}
		cancel()
	}
}

func (b *Bus) handOffPush(logger *slog.Logger, event *entity.DomainEvent) {
	if b.push == nil || event.RecipientID == uuid.Nil {
		return
	}
	if event.Type != entity.EventTypeReservationCreated && event.Type != entity.EventTypeNotification {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), b.opts.PushTimeout)
		defer cancel()

		if err := b.push.Push(ctx, event); err != nil {
			logger.Warn("Push hand-off failed", slog.Any("error", err))
		}
	}()
}

// targets selects the sessions an event is addressed to.
func (b *Bus) targets(event *entity.DomainEvent) []*session {
	b.mu.RLock()
	defer b.mu.RUnlock()

	targets := make([]*session, 0)
	for _, sess := range b.sessions {
		if event.Type.IsProximity() {
			if sess.covers(event.Location) {
				targets = append(targets, sess)
			}

			continue
		}

		if event.RecipientID != uuid.Nil && sess.userID == event.RecipientID {
			targets = append(targets, sess)
		}
	}

	return targets
}

// isThrottled reports whether an event class is rate limited per session.
func isThrottled(eventType entity.EventType) bool {
	return eventType == entity.EventTypeOfferCreated || eventType == entity.EventTypeOfferUpdated
}
