package selector_test

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collectabot/collect-api/internal/engine/selector"
	"github.com/collectabot/collect-api/internal/entities/catalog"
	"github.com/collectabot/collect-api/internal/errors"
)

func seeded(historySize int) *selector.Selector {
	return selector.New(&selector.Config{
		HistorySize: historySize,
		Rand:        rand.New(rand.NewPCG(42, 1)),
	})
}

func char(id string, tier catalog.Tier) *catalog.Character {
	return &catalog.Character{
		ID:      id,
		Name:    "Character " + id,
		Tier:    tier,
		IsVideo: tier.IsVideo(),
	}
}

func enabledPolicy(weights map[catalog.Tier]float64) selector.Policy {
	global := make(map[catalog.Tier]selector.TierSetting, len(weights))
	for tier, w := range weights {
		global[tier] = selector.TierSetting{Enabled: true, Weight: w}
	}
	return selector.Policy{Global: global}
}

func TestSelectEmptyCatalog(t *testing.T) {
	s := seeded(5)

	_, err := s.Select("chat_1", enabledPolicy(map[catalog.Tier]float64{catalog.TierCommon: 100}), nil)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSelectSkipsRemoved(t *testing.T) {
	s := seeded(5)

	removed := char("gone", catalog.TierCommon)
	removed.Removed = true
	candidates := []*catalog.Character{removed, char("stays", catalog.TierCommon)}

	policy := enabledPolicy(map[catalog.Tier]float64{catalog.TierCommon: 100})
	for i := 0; i < 10; i++ {
		picked, err := s.Select("chat_1", policy, candidates)
		require.NoError(t, err)
		assert.Equal(t, "stays", picked.ID)
	}
}

func TestSelectAllRemovedIsNotFound(t *testing.T) {
	s := seeded(5)

	removed := char("gone", catalog.TierCommon)
	removed.Removed = true

	_, err := s.Select("chat_1", enabledPolicy(map[catalog.Tier]float64{catalog.TierCommon: 100}),
		[]*catalog.Character{removed})
	assert.True(t, errors.IsNotFound(err))
}

func TestSelectVideoOnlyInVenue(t *testing.T) {
	s := seeded(5)

	candidates := []*catalog.Character{char("video_1", catalog.TierAMV)}
	policy := selector.Policy{
		Global: map[catalog.Tier]selector.TierSetting{
			catalog.TierAMV: {Enabled: true, Weight: 100},
		},
		VideoVenueChatID: "venue",
	}

	_, err := s.Select("other_chat", policy, candidates)
	assert.True(t, errors.IsNotFound(err), "video tier never spawns outside the venue")

	picked, err := s.Select("venue", policy, candidates)
	require.NoError(t, err)
	assert.Equal(t, "video_1", picked.ID)
}

func TestSelectReservedTierExcludedElsewhere(t *testing.T) {
	s := seeded(5)

	candidates := []*catalog.Character{
		char("lim_1", catalog.TierLimited),
		char("com_1", catalog.TierCommon),
	}
	policy := enabledPolicy(map[catalog.Tier]float64{
		catalog.TierCommon:  50,
		catalog.TierLimited: 50,
	})
	policy.Reserved = map[catalog.Tier]string{catalog.TierLimited: "owner_chat"}

	for i := 0; i < 20; i++ {
		picked, err := s.Select("other_chat", policy, candidates)
		require.NoError(t, err)
		assert.Equal(t, "com_1", picked.ID, "reserved tier never spawns in another chat")
	}
}

func TestSelectExclusivePoolDrawsFirst(t *testing.T) {
	s := seeded(5)

	candidates := []*catalog.Character{
		char("lim_1", catalog.TierLimited),
		char("com_1", catalog.TierCommon),
	}
	// Limited disabled globally but exclusive to this chat with an
	// overwhelming weight
	policy := enabledPolicy(map[catalog.Tier]float64{catalog.TierCommon: 1})
	policy.Exclusive = &selector.ExclusiveTier{Tier: catalog.TierLimited, Weight: 10000}
	policy.Reserved = map[catalog.Tier]string{catalog.TierLimited: "chat_1"}

	hits := 0
	for i := 0; i < 100; i++ {
		picked, err := s.Select("chat_1", policy, candidates)
		require.NoError(t, err)
		if picked.ID == "lim_1" {
			hits++
		}
	}
	assert.Greater(t, hits, 90, "exclusive pool dominates at this weight")
}

func TestSelectDisabledTierSkipped(t *testing.T) {
	s := seeded(5)

	candidates := []*catalog.Character{
		char("leg_1", catalog.TierLegendary),
		char("com_1", catalog.TierCommon),
	}
	policy := selector.Policy{
		Global: map[catalog.Tier]selector.TierSetting{
			catalog.TierCommon:    {Enabled: true, Weight: 100},
			catalog.TierLegendary: {Enabled: false, Weight: 100},
		},
	}

	for i := 0; i < 20; i++ {
		picked, err := s.Select("chat_1", policy, candidates)
		require.NoError(t, err)
		assert.Equal(t, "com_1", picked.ID)
	}
}

func TestSelectUniformFallbackWhenNoPools(t *testing.T) {
	s := seeded(5)

	// Every tier disabled: the weighted pass yields nothing, but a
	// spawn still happens from the eligible set
	candidates := []*catalog.Character{
		char("a", catalog.TierCommon),
		char("b", catalog.TierRare),
	}
	picked, err := s.Select("chat_1", selector.Policy{}, candidates)
	require.NoError(t, err)
	assert.Contains(t, []string{"a", "b"}, picked.ID)
}

func TestSelectHistoryAvoidsRepeats(t *testing.T) {
	s := seeded(3)

	candidates := []*catalog.Character{
		char("a", catalog.TierCommon),
		char("b", catalog.TierCommon),
		char("c", catalog.TierCommon),
		char("d", catalog.TierCommon),
	}
	policy := enabledPolicy(map[catalog.Tier]float64{catalog.TierCommon: 100})

	var prev string
	for i := 0; i < 20; i++ {
		picked, err := s.Select("chat_1", policy, candidates)
		require.NoError(t, err)
		assert.NotEqual(t, prev, picked.ID, "back-to-back repeat within history window")
		prev = picked.ID
	}
}

func TestSelectHistorySmallerPoolStillSpawns(t *testing.T) {
	s := seeded(10)

	// One eligible character: history would exclude it, the fallback
	// must still produce a spawn every time
	candidates := []*catalog.Character{char("only", catalog.TierCommon)}
	policy := enabledPolicy(map[catalog.Tier]float64{catalog.TierCommon: 100})

	for i := 0; i < 5; i++ {
		picked, err := s.Select("chat_1", policy, candidates)
		require.NoError(t, err)
		assert.Equal(t, "only", picked.ID)
	}
}

func TestSelectHistoryPerChat(t *testing.T) {
	s := seeded(1)

	candidates := []*catalog.Character{
		char("a", catalog.TierCommon),
		char("b", catalog.TierCommon),
	}
	policy := enabledPolicy(map[catalog.Tier]float64{catalog.TierCommon: 100})

	first, err := s.Select("chat_1", policy, candidates)
	require.NoError(t, err)

	// Another chat's history is untouched; both characters remain
	// possible there
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		picked, err := s.Select("chat_2", policy, candidates)
		require.NoError(t, err)
		seen[picked.ID] = true
	}
	assert.True(t, seen["a"] && seen["b"])
	_ = first
}

func TestSelectWeightDistribution(t *testing.T) {
	s := seeded(1)

	candidates := []*catalog.Character{
		char("com_1", catalog.TierCommon),
		char("com_2", catalog.TierCommon),
		char("com_3", catalog.TierCommon),
		char("rare_1", catalog.TierRare),
		char("rare_2", catalog.TierRare),
		char("rare_3", catalog.TierRare),
	}
	policy := enabledPolicy(map[catalog.Tier]float64{
		catalog.TierCommon: 60,
		catalog.TierRare:   40,
	})

	const draws = 10000
	commons := 0
	for i := 0; i < draws; i++ {
		picked, err := s.Select("chat_1", policy, candidates)
		require.NoError(t, err)
		if picked.Tier == catalog.TierCommon {
			commons++
		}
	}

	ratio := float64(commons) / draws
	assert.InDelta(t, 0.60, ratio, 0.05, "common share converges to its weight")
}

func TestSelectConcurrentChats(t *testing.T) {
	s := seeded(5)

	candidates := []*catalog.Character{
		char("com_1", catalog.TierCommon),
		char("com_2", catalog.TierCommon),
		char("rare_1", catalog.TierRare),
	}
	policy := enabledPolicy(map[catalog.Tier]float64{
		catalog.TierCommon: 60,
		catalog.TierRare:   40,
	})

	const chats = 20
	var wg sync.WaitGroup
	errs := make([]error, chats)

	for i := 0; i < chats; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chatID := fmt.Sprintf("chat_%d", i)
			for j := 0; j < 50; j++ {
				if _, err := s.Select(chatID, policy, candidates); err != nil {
					errs[i] = err
					return
				}
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		require.NoErrorf(t, err, "chat %d", i)
	}
}
