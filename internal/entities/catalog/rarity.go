package catalog

import (
	"github.com/collectabot/collect-api/internal/errors"
)

// Tier is the rarity tier code of a character
type Tier string

// Known rarity tiers
const (
	TierCommon    Tier = "common"
	TierRare      Tier = "rare"
	TierEpic      Tier = "epic"
	TierLegendary Tier = "legendary"
	TierLimited   Tier = "limited"

	// TierAMV is the video tier. Characters in it spawn only in the
	// single designated venue chat, regardless of rarity policy.
	TierAMV Tier = "amv"
)

var tierLabels = map[Tier]string{
	TierCommon:    "Common",
	TierRare:      "Rare",
	TierEpic:      "Epic",
	TierLegendary: "Legendary",
	TierLimited:   "Limited",
	TierAMV:       "AMV",
}

// tierOrder gives Tiers() and policy listings a stable order
var tierOrder = []Tier{
	TierCommon,
	TierRare,
	TierEpic,
	TierLegendary,
	TierLimited,
	TierAMV,
}

// String returns the tier code
func (t Tier) String() string {
	return string(t)
}

// Label returns the display label for the tier
func (t Tier) Label() string {
	return tierLabels[t]
}

// Valid reports whether the tier is a known code
func (t Tier) Valid() bool {
	_, ok := tierLabels[t]
	return ok
}

// IsVideo reports whether the tier is the venue-locked video tier
func (t Tier) IsVideo() bool {
	return t == TierAMV
}

// ParseTier converts a tier code to a Tier.
// Unknown codes are an error, never a zero tier.
func ParseTier(code string) (Tier, error) {
	t := Tier(code)
	if !t.Valid() {
		return "", errors.InvalidArgumentf("unknown rarity tier %q", code)
	}
	return t, nil
}

// Tiers returns every known tier in stable order
func Tiers() []Tier {
	out := make([]Tier, len(tierOrder))
	copy(out, tierOrder)
	return out
}
