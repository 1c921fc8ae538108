// Package timer provides a one-shot scheduling seam so timer-driven
// behavior can be fired by hand in tests
package timer

import (
	"sync"
	"time"
)

// Scheduler schedules a function to run once after a delay.
// Firing is never cancelled; callers guard the fired function with
// their own state checks so stale timers are harmless.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// Real implements Scheduler using the runtime timer heap
type Real struct{}

// AfterFunc schedules fn on its own goroutine after d
func (r *Real) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// New returns a new real scheduler
func New() Scheduler {
	return &Real{}
}

// Manual implements Scheduler for tests. Scheduled functions run only
// when the test fires them explicitly.
type Manual struct {
	mu      sync.Mutex
	pending []func()
}

// NewManual creates a manual scheduler
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc records fn without running it
func (m *Manual) AfterFunc(_ time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, fn)
}

// Pending returns the number of scheduled functions not yet fired
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Fire runs the oldest scheduled function synchronously and returns
// true, or returns false when nothing is pending.
func (m *Manual) Fire() bool {
	m.mu.Lock()
	if len(m.pending) == 0 {
		m.mu.Unlock()
		return false
	}
	fn := m.pending[0]
	m.pending = m.pending[1:]
	m.mu.Unlock()

	fn()
	return true
}

// FireAll runs every scheduled function in order
func (m *Manual) FireAll() {
	for m.Fire() {
	}
}
