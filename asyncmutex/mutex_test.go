package asyncmutex

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTryLockUncontended(t *testing.T) {
	m := New()
	require.True(t, m.TryLock())
	require.False(t, m.TryLock())
	m.Unlock()
	require.True(t, m.TryLock())
}

func TestLockAsyncInlineWhenFree(t *testing.T) {
	m := New()
	var resumed bool
	m.LockAsync(continuationFunc(func() { resumed = true }))
	require.True(t, resumed, "LockAsync must resume inline when the lock is free")
	m.Unlock()
}

func TestLockAsyncQueuesWaiterWhenHeld(t *testing.T) {
	m := New()
	require.True(t, m.TryLock())

	var resumed bool
	m.LockAsync(continuationFunc(func() { resumed = true }))
	require.False(t, resumed, "a waiter must not be resumed before Unlock")

	m.Unlock()
	require.True(t, resumed, "Unlock must resume the queued waiter")
}

func TestUnlockWithoutHoldingPanics(t *testing.T) {
	m := New()
	require.Panics(t, func() { m.Unlock() })
}

func TestInvariantHoldsOnFreshAndIdleMutex(t *testing.T) {
	m := New()
	require.NotPanics(t, func() { m.Invariant() })

	require.True(t, m.TryLock())
	require.NotPanics(t, func() { m.Invariant() }, "locked with no waiters is still a destructible state")
	m.Unlock()
	require.NotPanics(t, func() { m.Invariant() })
}

func TestInvariantDetectsStrandedStackWaiter(t *testing.T) {
	m := New()
	require.True(t, m.TryLock())
	m.LockAsync(continuationFunc(func() {}))
	require.Panics(t, func() { m.Invariant() }, "a waiter queued but never resumed must fail the destructor check")
}

func TestInvariantDetectsStrandedQueueWaiter(t *testing.T) {
	m := New()
	require.True(t, m.TryLock())
	m.LockAsync(continuationFunc(func() {}))
	m.LockAsync(continuationFunc(func() {}))

	// Unlock resumes exactly one waiter and leaves the rest parked in the
	// drained FIFO queue, not the LIFO stack; the invariant must catch that
	// case too.
	m.Unlock()
	require.Panics(t, func() { m.Invariant() })
}

func TestUnlockReversesLIFOStackToFIFOOrder(t *testing.T) {
	m := New()
	require.True(t, m.TryLock())

	var order []int
	for i := 0; i < 4; i++ {
		i := i
		m.LockAsync(continuationFunc(func() {
			order = append(order, i)
			m.Unlock()
		}))
	}

	// Unlock resumes waiter 0, whose continuation itself calls Unlock,
	// cascading through the rest; all four must fire, in push order.
	m.Unlock()
	require.Equal(t, []int{0, 1, 2, 3}, order)
}

func TestLockContextBlocksUntilAcquired(t *testing.T) {
	m := New()
	unlock, err := m.Lock(context.Background())
	require.NoError(t, err)
	require.NotNil(t, unlock)

	acquiredCh := make(chan struct{})
	go func() {
		u, err := m.Lock(context.Background())
		require.NoError(t, err)
		close(acquiredCh)
		u()
	}()

	select {
	case <-acquiredCh:
		t.Fatal("second Lock must not complete while the first holder still holds the mutex")
	case <-time.After(20 * time.Millisecond):
	}

	unlock()
	select {
	case <-acquiredCh:
	case <-time.After(time.Second):
		t.Fatal("second Lock should complete once the first holder unlocks")
	}
}

func TestLockContextCancellationUnblocksCaller(t *testing.T) {
	m := New()
	unlock, err := m.Lock(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := m.Lock(ctx)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Lock must return once its context is canceled")
	}

	// the canceled acquisition is still queued and will eventually be
	// granted; Lock's internal goroutine releases it again so the mutex
	// does not end up permanently held by nobody.
	unlock()
}

func TestMutualExclusionUnderContention(t *testing.T) {
	const (
		tasks      = 8
		iterations = 10000
	)

	m := New()
	var counter int
	var inCriticalSection int32
	var overlapDetected int32

	var wg sync.WaitGroup
	wg.Add(tasks)
	for i := 0; i < tasks; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				unlock, err := m.Lock(context.Background())
				require.NoError(t, err)

				if !atomic.CompareAndSwapInt32(&inCriticalSection, 0, 1) {
					atomic.StoreInt32(&overlapDetected, 1)
				}
				counter++
				atomic.StoreInt32(&inCriticalSection, 0)

				unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(0), atomic.LoadInt32(&overlapDetected), "no two critical sections may overlap")
	require.Equal(t, tasks*iterations, counter)
	require.NotPanics(t, func() { m.Invariant() }, "every acquisition must have been matched by exactly one resumption")
}
