package eventbus

import (
	"sync"
	"time"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
)

// session is one live subscription. All sends happen under mu so a send can
// never race with close.
type session struct {
	id       string
	userID   uuid.UUID
	center   entity.GeoPoint
	radius   float64
	interval time.Duration

	mu     sync.Mutex
	ch     chan *entity.DomainEvent
	gates  map[entity.EventType]*throttleGate
	closed bool
}

// throttleGate holds the latest event of one class while its window is open.
type throttleGate struct {
	pending *entity.DomainEvent
	timer   *time.Timer
}

func newSession(id string, userID uuid.UUID, center entity.GeoPoint, radius float64, interval time.Duration, buffer int) *session {
	return &session{
		id:       id,
		userID:   userID,
		center:   center,
		radius:   radius,
		interval: interval,
		ch:       make(chan *entity.DomainEvent, buffer),
		gates:    make(map[entity.EventType]*throttleGate),
	}
}

// covers reports whether a location lies inside the session's discovery circle.
func (s *session) covers(location *entity.GeoPoint) bool {
	if location == nil {
		return false
	}

	return geo.DistanceHaversine(s.center.Point(), location.Point()) <= s.radius
}

// deliver sends immediately, or through the class gate when the class is throttled.
// It returns false when the event was dropped.
func (s *session) deliver(event *entity.DomainEvent, throttled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	if !throttled || s.interval <= 0 {
		return s.sendLocked(event)
	}

	gate, ok := s.gates[event.Type]
	if !ok {
		gate = &throttleGate{}
		s.gates[event.Type] = gate
	}

	// A later event replaces the pending one; the timer already running delivers it.
	gate.pending = event
	if gate.timer == nil {
		eventType := event.Type
		gate.timer = time.AfterFunc(s.interval, func() {
			s.flush(eventType)
		})
	}

	return true
}

// flush delivers the latest pending event of a class when its window closes.
func (s *session) flush(eventType entity.EventType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gate, ok := s.gates[eventType]
	if !ok || s.closed {
		return
	}

	event := gate.pending
	gate.pending = nil
	gate.timer = nil

	if event != nil {
		s.sendLocked(event)
	}
}

func (s *session) sendLocked(event *entity.DomainEvent) bool {
	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	for _, gate := range s.gates {
		if gate.timer != nil {
			gate.timer.Stop()
		}
		gate.pending = nil
	}
	close(s.ch)
}
