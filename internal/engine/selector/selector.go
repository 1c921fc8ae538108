// Package selector implements the tiered weighted-random character
// selection used when a spawn triggers
package selector

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/collectabot/collect-api/internal/entities/catalog"
	"github.com/collectabot/collect-api/internal/errors"
)

const defaultHistorySize = 15

// TierSetting is one tier's global toggle as seen by the selector
type TierSetting struct {
	Enabled bool
	Weight  float64
}

// ExclusiveTier is a chat's reserved tier and its draw weight
type ExclusiveTier struct {
	Tier   catalog.Tier
	Weight float64
}

// Policy is everything the selector needs to know about rarity rules
// for one draw. Precedence, strongest first: video-venue restriction,
// group exclusivity, global toggles.
type Policy struct {
	// Global toggles per tier
	Global map[catalog.Tier]TierSetting

	// The chat's own exclusive tier, nil if none
	Exclusive *ExclusiveTier

	// Reserved maps tiers exclusive to some chat to that chat's ID.
	// A tier reserved to a different chat never spawns here.
	Reserved map[catalog.Tier]string

	// VideoVenueChatID is the one chat where the video tier may spawn
	VideoVenueChatID string
}

// Config holds the selector's tunables
type Config struct {
	// HistorySize bounds the per-chat recent-spawn set; 0 means default
	HistorySize int

	// Rand overrides the draw source, for deterministic tests
	Rand *rand.Rand
}

// Selector picks spawn candidates by weighted rarity pools. History is
// partitioned per chat, each entry with its own lock; only the shared
// draw source is guarded globally.
type Selector struct {
	historySize int

	rngMu sync.Mutex
	rng   *rand.Rand

	mu      sync.RWMutex
	history map[string]*history
}

// New creates a selector
func New(cfg *Config) *Selector {
	if cfg == nil {
		cfg = &Config{}
	}

	size := cfg.HistorySize
	if size <= 0 {
		size = defaultHistorySize
	}

	rng := cfg.Rand
	if rng == nil {
		// nolint:gosec // game randomness, not security sensitive
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}

	return &Selector{
		historySize: size,
		rng:         rng,
		history:     make(map[string]*history),
	}
}

type pool struct {
	weight  float64
	members []*catalog.Character
}

// Select picks one character for the chat, or errors.NotFound when
// nothing is available this cycle.
func (s *Selector) Select(chatID string, policy Policy, candidates []*catalog.Character) (*catalog.Character, error) {
	eligible := s.eligible(chatID, policy, candidates)
	if len(eligible) == 0 {
		return nil, errors.NotFound("no character available")
	}

	h := s.chatHistory(chatID)
	h.mu.Lock()
	defer h.mu.Unlock()

	filtered := excludeRecent(h, eligible)

	picked := s.draw(policy, filtered)
	if picked == nil {
		// No tier produced a pool; fall back to a uniform pick over the
		// eligible set, still honoring eligibility filters
		picked = filtered[s.intN(len(filtered))]
	}

	h.remember(picked.ID)
	return picked, nil
}

// eligible applies the hard filters: soft-deleted characters, the video
// tier's venue lock, and tiers reserved to other chats.
func (s *Selector) eligible(chatID string, policy Policy, candidates []*catalog.Character) []*catalog.Character {
	out := make([]*catalog.Character, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.Removed {
			continue
		}
		if c.Tier.IsVideo() && chatID != policy.VideoVenueChatID {
			continue
		}
		if owner, reserved := policy.Reserved[c.Tier]; reserved && owner != chatID {
			continue
		}
		out = append(out, c)
	}
	return out
}

// excludeRecent drops recently spawned characters, falling back to the
// full eligible set when exclusion would empty it. The caller holds the
// history's lock.
func excludeRecent(h *history, eligible []*catalog.Character) []*catalog.Character {
	// Once the history covers the whole pool, start over
	if h.size() >= len(eligible) {
		h.reset()
	}

	out := make([]*catalog.Character, 0, len(eligible))
	for _, c := range eligible {
		if h.contains(c.ID) {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return eligible
	}
	return out
}

// draw runs the weighted pass: the chat's exclusive pool first, then
// every other globally enabled tier, cumulative-weight selection over
// the pools. Returns nil when no pool qualifies.
func (s *Selector) draw(policy Policy, candidates []*catalog.Character) *catalog.Character {
	byTier := make(map[catalog.Tier][]*catalog.Character)
	for _, c := range candidates {
		byTier[c.Tier] = append(byTier[c.Tier], c)
	}

	var pools []pool
	var exclusiveTier catalog.Tier

	if policy.Exclusive != nil {
		exclusiveTier = policy.Exclusive.Tier
		if members := byTier[exclusiveTier]; len(members) > 0 && policy.Exclusive.Weight > 0 {
			pools = append(pools, pool{weight: policy.Exclusive.Weight, members: members})
		}
	}

	// Stable tier order keeps cumulative selection deterministic for a
	// given policy and draw value
	for _, tier := range catalog.Tiers() {
		if tier == exclusiveTier {
			continue
		}
		setting, ok := policy.Global[tier]
		if !ok || !setting.Enabled || setting.Weight <= 0 {
			continue
		}
		members := byTier[tier]
		if len(members) == 0 {
			continue
		}
		pools = append(pools, pool{weight: setting.Weight, members: members})
	}

	if len(pools) == 0 {
		return nil
	}

	var total float64
	for _, p := range pools {
		total += p.weight
	}

	r := s.float64() * total
	var cumulative float64
	for _, p := range pools {
		cumulative += p.weight
		if r < cumulative {
			return p.members[s.intN(len(p.members))]
		}
	}

	// Floating point edge at the top of the range
	last := pools[len(pools)-1]
	return last.members[s.intN(len(last.members))]
}

func (s *Selector) intN(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.IntN(n)
}

func (s *Selector) float64() float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Float64()
}

func (s *Selector) chatHistory(chatID string) *history {
	s.mu.RLock()
	h, ok := s.history[chatID]
	s.mu.RUnlock()
	if ok {
		return h
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if h, ok := s.history[chatID]; ok {
		return h
	}
	h = newHistory(s.historySize)
	s.history[chatID] = h
	return h
}
