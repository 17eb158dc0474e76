package asyncmutex

import "github.com/joeycumines/go-eco/internal/linkident"

// Invariant verifies the destructor-time structural invariant: nothing may
// be left waiting on a Mutex that is about to go out of scope. A Mutex is
// safe to discard only when state holds the sentinel (unlocked) or nil
// (locked, but with no waiters), and the drained queue is empty; a waiter
// parked in either place has been handed a lock acquisition that will now
// never be resumed.
func (m *Mutex) Invariant() {
	if state := m.state.Load(); state != &m.sentinel && state != nil {
		linkident.Fail("asyncmutex: a waiter is still parked on the LIFO stack")
	}
	if m.queue != nil {
		linkident.Fail("asyncmutex: a waiter is still parked in the drained queue")
	}
}
