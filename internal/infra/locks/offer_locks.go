// Package locks provides in-process keyed locks for offer stock mutations.
package locks

import (
	"context"
	"sync"
	"time"

	"rescue/config"
	"rescue/internal/domain/service"
	"rescue/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// ErrLockTimeout is returned when an offer lock is not acquired in time. Callers treat it as transient.
var ErrLockTimeout = errors.New("timed out waiting for offer lock")

type lockEntry struct {
	sem  *semaphore.Weighted
	refs int
}

// OfferLocks hands out one weighted semaphore per offer. Entries are dropped once nobody holds or waits on them.
type OfferLocks struct {
	timeout time.Duration

	mu      sync.Mutex
	entries map[uuid.UUID]*lockEntry
}

// NewOfferLocker creates the locker from the marketplace configuration.
func NewOfferLocker(cfg *config.Config) service.OfferLocker {
	return New(cfg.Marketplace.WithDefaults().LockTimeout)
}

// New creates an OfferLocks with the given acquisition timeout.
func New(timeout time.Duration) *OfferLocks {
	return &OfferLocks{
		timeout: timeout,
		entries: make(map[uuid.UUID]*lockEntry),
	}
}

// Lock implements service.OfferLocker.
func (l *OfferLocks) Lock(ctx context.Context, offerID uuid.UUID) (func(), error) {
	entry := l.acquireEntry(offerID)

	waitCtx := ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	if err := entry.sem.Acquire(waitCtx, 1); err != nil {
		l.releaseEntry(offerID)

		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "waiting for offer lock")
		}

		return nil, errors.WithStack(ErrLockTimeout)
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			entry.sem.Release(1)
			l.releaseEntry(offerID)
		})
	}, nil
}

// Len returns the number of offers currently held or waited on.
func (l *OfferLocks) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

func (l *OfferLocks) acquireEntry(offerID uuid.UUID) *lockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[offerID]
	if !ok {
		entry = &lockEntry{sem: semaphore.NewWeighted(1)}
		l.entries[offerID] = entry
	}
	entry.refs++

	return entry
}

func (l *OfferLocks) releaseEntry(offerID uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.entries[offerID]
	if !ok {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(l.entries, offerID)
	}
}
