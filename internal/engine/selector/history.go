package selector

import "sync"

// history is a bounded rotating set of recently spawned character IDs
// for one chat, used to damp immediate repeats. Callers hold mu across
// a filter-and-remember cycle.
type history struct {
	mu       sync.Mutex
	capacity int
	seen     map[string]struct{}
	order    []string
}

func newHistory(capacity int) *history {
	return &history{
		capacity: capacity,
		seen:     make(map[string]struct{}),
	}
}

// remember records a spawn, evicting the oldest entry past capacity
func (h *history) remember(characterID string) {
	if _, ok := h.seen[characterID]; ok {
		return
	}

	h.seen[characterID] = struct{}{}
	h.order = append(h.order, characterID)

	if len(h.order) > h.capacity {
		oldest := h.order[0]
		h.order = h.order[1:]
		delete(h.seen, oldest)
	}
}

// contains reports whether the character spawned recently
func (h *history) contains(characterID string) bool {
	_, ok := h.seen[characterID]
	return ok
}

// reset clears the set; called once it covers the whole eligible pool
func (h *history) reset() {
	h.seen = make(map[string]struct{})
	h.order = h.order[:0]
}

func (h *history) size() int {
	return len(h.order)
}
