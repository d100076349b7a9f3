package locks

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rescue/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferLocks_SerializesSameOffer(t *testing.T) {
	locks := New(time.Second)
	offerID := uuid.New()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			unlock, err := locks.Lock(context.Background(), offerID)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			current := atomic.AddInt32(&inside, 1)
			for {
				seen := atomic.LoadInt32(&maxInside)
				if current <= seen || atomic.CompareAndSwapInt32(&maxInside, seen, current) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Zero(t, locks.Len())
}

func TestOfferLocks_DifferentOffersDoNotContend(t *testing.T) {
	locks := New(50 * time.Millisecond)

	unlockA, err := locks.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	defer unlockA()

	unlockB, err := locks.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	defer unlockB()

	assert.Equal(t, 2, locks.Len())
}

func TestOfferLocks_Timeout(t *testing.T) {
	locks := New(20 * time.Millisecond)
	offerID := uuid.New()

	unlock, err := locks.Lock(context.Background(), offerID)
	require.NoError(t, err)

	_, err = locks.Lock(context.Background(), offerID)
	assert.True(t, errors.Is(err, ErrLockTimeout))

	unlock()
	unlock()
	assert.Zero(t, locks.Len())

	unlock, err = locks.Lock(context.Background(), offerID)
	require.NoError(t, err)
	unlock()
}

func TestOfferLocks_CallerCancellation(t *testing.T) {
	locks := New(time.Second)
	offerID := uuid.New()

	unlock, err := locks.Lock(context.Background(), offerID)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = locks.Lock(ctx, offerID)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrLockTimeout))
	assert.True(t, errors.Is(err, context.Canceled))
}
