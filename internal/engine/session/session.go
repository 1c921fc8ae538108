// Package session holds the per-chat spawn session state machine and
// the keyed registry that serializes access to it
package session

import (
	"time"

	"github.com/collectabot/collect-api/internal/entities/catalog"
)

// State is the lifecycle state of a spawn session
type State string

// A session is created Active and transitions exactly once, to either
// Claimed or Expired. No other transitions are valid.
const (
	StateActive  State = "active"
	StateClaimed State = "claimed"
	StateExpired State = "expired"
)

// Session is one chat's live spawn. The character is a snapshot;
// concurrent catalog edits never mutate an in-flight spawn.
type Session struct {
	ID           string
	ChatID       string
	Character    *catalog.Character
	PlacementRef string
	CreatedAt    time.Time
	Deadline     time.Time
	State        State
	WinnerID     string
}

// Claim transitions Active → Claimed and records the winner. Returns
// false without mutating anything when the session is not Active.
func (s *Session) Claim(userID string) bool {
	if s.State != StateActive {
		return false
	}
	s.State = StateClaimed
	s.WinnerID = userID
	return true
}

// Expire transitions Active → Expired. Returns false when the session
// is not Active, which makes stale despawn timers harmless.
func (s *Session) Expire() bool {
	if s.State != StateActive {
		return false
	}
	s.State = StateExpired
	return true
}
