// Package asyncmutex implements a cooperative, non-blocking mutex: a lock
// that suspends a continuation rather than parking an OS thread. Acquiring
// an already-held lock never blocks the caller's goroutine: it registers a
// Continuation to be resumed by whichever holder unlocks next.
//
// There is no cancellation: once LockAsync has queued a waiter, it is
// resumed exactly once by some future Unlock. Callers that need timeout or
// cancellation semantics build them on top (the queued waiter itself is
// immovable until popped).
package asyncmutex

import (
	"sync/atomic"

	"github.com/joeycumines/go-eco/ecolog"
	"github.com/joeycumines/go-eco/internal/linkident"
	"github.com/joeycumines/go-eco/internal/xreverse"
	"golang.org/x/sys/cpu"
)

// Continuation is a single suspended resumption point. Resume is called
// exactly once: inline by LockAsync when the lock is free, otherwise by the
// goroutine whose Unlock hands the lock over. It must not block for long
// (in the second case it runs inline inside Unlock unless the
// implementation hops to another goroutine itself, e.g. via an Executor).
type Continuation interface {
	Resume()
}

// Executor schedules a function for later, possibly concurrent, execution.
// The core mutex never requires or imports a concrete Executor: a
// Continuation implementation may use one internally to hop goroutines
// before resuming a caller's own continuation.
type Executor interface {
	Schedule(func())
}

type waiter struct {
	cont Continuation
	next *waiter
}

// Mutex is a cooperative, non-blocking mutual exclusion lock. The zero
// value is not usable; construct one with New.
//
// state holds one of three things: the address of m.sentinel (unlocked),
// nil (locked, no waiters), or the head of a LIFO stack of *waiter (locked,
// at least one waiter pushed since the last drain). Go has no
// reinterpret_cast from "this mutex" to "a waiter pointer" the way the
// source uses the mutex's own address as the unlocked sentinel, so a
// dedicated zero-size field plays that role instead, keeping the atomic
// homogeneously typed as *waiter.
type Mutex struct {
	state    atomic.Pointer[waiter]
	_        cpu.CacheLinePad
	queue    *waiter
	sentinel waiter
	logger   ecolog.Logger
}

// Option configures a Mutex at construction time.
type Option func(*Mutex)

// WithLogger installs l as the logger this Mutex reports waiter
// enqueue/drain events to. Without this option the mutex logs nothing.
func WithLogger(l ecolog.Logger) Option {
	return func(m *Mutex) {
		m.logger = l
	}
}

// New returns an unlocked Mutex.
func New(options ...Option) *Mutex {
	m := &Mutex{}
	m.state.Store(&m.sentinel)
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *Mutex) log(msg string, fields ...ecolog.Field) {
	if m.logger == nil {
		return
	}
	m.logger.Log(ecolog.LevelDebug, msg, fields...)
}

// TryLock attempts to acquire the lock without suspending, reporting
// whether it succeeded.
func (m *Mutex) TryLock() bool {
	return m.state.CompareAndSwap(&m.sentinel, nil)
}

// LockAsync acquires the lock, resuming cont either inline (if the lock was
// free) or later, from inside some other goroutine's call to Unlock. Safe
// to call concurrently from any number of goroutines.
func (m *Mutex) LockAsync(cont Continuation) {
	if m.TryLock() {
		cont.Resume()
		return
	}
	m.lockInternal(&waiter{cont: cont})
}

func (m *Mutex) lockInternal(w *waiter) {
	old := m.state.Load()
	for {
		if old == &m.sentinel {
			if m.state.CompareAndSwap(old, nil) {
				w.cont.Resume()
				return
			}
			old = m.state.Load()
			continue
		}
		w.next = old
		if m.state.CompareAndSwap(old, w) {
			m.log("asyncmutex: waiter enqueued")
			return
		}
		old = m.state.Load()
	}
}

// Unlock releases the lock, resuming the next waiter (if any) or marking
// the mutex unlocked. Must be called exactly once by the current holder;
// calling it while unlocked is a precondition violation.
func (m *Mutex) Unlock() {
	if m.state.Load() == &m.sentinel {
		linkident.Fail("asyncmutex: Unlock called on an unlocked mutex")
	}

	queue := m.queue

	if queue == nil {
		if m.state.CompareAndSwap(nil, &m.sentinel) {
			return
		}

		drained := m.state.Swap(nil)
		if drained == nil || drained == &m.sentinel {
			linkident.Fail("asyncmutex: state corrupted during Unlock drain")
		}

		m.log("asyncmutex: waiter stack drained")

		queue = xreverse.Reverse(drained,
			func(w *waiter) *waiter { return w.next },
			func(w, next *waiter) { w.next = next },
		)
	}

	m.queue = queue.next
	queue.next = nil
	queue.cont.Resume()
}
