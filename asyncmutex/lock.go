package asyncmutex

import "context"

// continuationFunc adapts a plain func() to a Continuation.
type continuationFunc func()

func (f continuationFunc) Resume() { f() }

// Lock is an ergonomic wrapper over TryLock/LockAsync/Unlock for ordinary
// (non-coroutine) Go code: it blocks the calling goroutine until the lock
// is acquired or ctx is done. Go has no RAII scope guard, so the caller
// gets an unlock closure back instead.
//
// The core mutex has no cancellation: if ctx is done before the lock is
// granted, Lock returns ctx.Err() immediately, but the waiter stays queued
// and will eventually be resumed by some future Unlock. To avoid leaving
// that acquisition stranded (the next Unlock would otherwise hand the lock
// to nobody), Lock starts a goroutine that waits for that eventual
// resumption and immediately unlocks again on the caller's behalf.
func (m *Mutex) Lock(ctx context.Context) (unlock func(), err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	acquired := make(chan struct{})
	m.LockAsync(continuationFunc(func() { close(acquired) }))

	select {
	case <-acquired:
		return m.Unlock, nil
	case <-ctx.Done():
		go func() {
			<-acquired
			m.Unlock()
		}()
		return nil, ctx.Err()
	}
}
