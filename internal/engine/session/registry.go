package session

import (
	"sync"
)

// Slot is one chat's live spawn state, only ever touched inside the
// chat's exclusive section.
type Slot struct {
	// Session is the live session, nil when nothing is spawned
	Session *Session

	// Spawning marks a spawn in flight before its session exists, the
	// single-flight guard for coordinators
	Spawning bool
}

func (s *Slot) empty() bool {
	return s.Session == nil && !s.Spawning
}

type entry struct {
	mu      sync.Mutex
	slot    Slot
	removed bool
}

// Registry partitions spawn state by chat ID. WithChat is the single
// serialization point for session creation, claims, and expiry on a
// chat; different chats never contend.
type Registry struct {
	mu    sync.Mutex
	chats map[string]*entry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		chats: make(map[string]*entry),
	}
}

// WithChat runs fn inside the chat's exclusive section. Slots left
// empty are pruned so idle chats cost nothing.
func (r *Registry) WithChat(chatID string, fn func(slot *Slot)) {
	for {
		r.mu.Lock()
		e, ok := r.chats[chatID]
		if !ok {
			e = &entry{}
			r.chats[chatID] = e
		}
		r.mu.Unlock()

		e.mu.Lock()
		if e.removed {
			// Lost a race with pruning; the map no longer holds this
			// entry, start over
			e.mu.Unlock()
			continue
		}

		fn(&e.slot)

		if e.slot.empty() {
			r.mu.Lock()
			if r.chats[chatID] == e {
				delete(r.chats, chatID)
				e.removed = true
			}
			r.mu.Unlock()
		}
		e.mu.Unlock()
		return
	}
}

// ActiveSession returns a copy of the chat's session while it is still
// Active, nil otherwise.
func (r *Registry) ActiveSession(chatID string) *Session {
	var copied *Session
	r.WithChat(chatID, func(slot *Slot) {
		if slot.Session != nil && slot.Session.State == StateActive {
			s := *slot.Session
			copied = &s
		}
	})
	return copied
}

// Len returns how many chats currently hold a non-empty slot
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.chats)
}
