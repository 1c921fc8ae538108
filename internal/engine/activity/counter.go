// Package activity counts qualifying chat events and decides when a
// spawn should be triggered
package activity

import (
	"sync"

	"github.com/collectabot/collect-api/internal/errors"
)

// Threshold bounds. Counters live only in memory; a restart just delays
// the next spawn, it can never duplicate one.
const (
	DefaultThreshold = 75
	MinThreshold     = 5
	MaxThreshold     = 500
)

type chatCounter struct {
	mu        sync.Mutex
	count     int
	threshold int
}

// Counter tracks per-chat message counts against a spawn threshold
type Counter struct {
	mu    sync.Mutex
	chats map[string]*chatCounter
}

// NewCounter creates an activity counter with the default threshold
func NewCounter() *Counter {
	return &Counter{
		chats: make(map[string]*chatCounter),
	}
}

func (c *Counter) entry(chatID string) *chatCounter {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.chats[chatID]
	if !ok {
		e = &chatCounter{threshold: DefaultThreshold}
		c.chats[chatID] = e
	}
	return e
}

// Record increments the chat's counter and returns true exactly when the
// threshold is reached, resetting the counter on that same call. Under
// concurrent calls exactly one caller observes the trigger per cycle.
func (c *Counter) Record(chatID string) bool {
	e := c.entry(chatID)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.count++
	if e.count >= e.threshold {
		e.count = 0
		return true
	}
	return false
}

// Threshold returns the chat's configured threshold
func (c *Counter) Threshold(chatID string) int {
	e := c.entry(chatID)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.threshold
}

// SetThreshold changes the chat's threshold, bounds-checked. A count
// already past the new threshold triggers on the next Record.
func (c *Counter) SetThreshold(chatID string, n int) error {
	if n < MinThreshold || n > MaxThreshold {
		return errors.OutOfRangef("threshold must be between %d and %d", MinThreshold, MaxThreshold)
	}

	e := c.entry(chatID)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.threshold = n
	return nil
}
