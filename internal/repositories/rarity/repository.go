// Package rarity provides the interface for rarity policy persistence.
// The spawn engine reads it as its policy provider; writes come from
// admin tooling.
package rarity

//go:generate mockgen -destination=mock/mock_repository.go -package=raritymock github.com/collectabot/collect-api/internal/repositories/rarity Repository

import (
	"context"

	"github.com/collectabot/collect-api/internal/entities/catalog"
)

// Setting is a global per-tier toggle
type Setting struct {
	Enabled bool    `json:"enabled"`
	Weight  float64 `json:"weight"`
}

// Exclusive reserves a tier for a single chat. A tier exclusive to one
// chat never spawns anywhere else.
type Exclusive struct {
	Tier   catalog.Tier `json:"tier"`
	Weight float64      `json:"weight"`
}

// Repository defines the interface for rarity policy storage
type Repository interface {
	// GetGlobalSettings reads every tier's toggle. Tiers never written
	// fall back to DefaultSettings entries.
	GetGlobalSettings(ctx context.Context, input GetGlobalSettingsInput) (*GetGlobalSettingsOutput, error)

	// SetGlobalSetting writes one tier's toggle
	SetGlobalSetting(ctx context.Context, input SetGlobalSettingInput) (*SetGlobalSettingOutput, error)

	// GetGroupExclusive reads a chat's exclusive tier
	// Returns errors.NotFound if the chat has none
	GetGroupExclusive(ctx context.Context, input GetGroupExclusiveInput) (*GetGroupExclusiveOutput, error)

	// SetGroupExclusive reserves a tier for a chat, at most one per chat.
	// Returns errors.FailedPrecondition if the tier is already exclusive
	// to a different chat.
	SetGroupExclusive(ctx context.Context, input SetGroupExclusiveInput) (*SetGroupExclusiveOutput, error)

	// ClearGroupExclusive releases a chat's exclusive tier, a no-op if none
	ClearGroupExclusive(ctx context.Context, input ClearGroupExclusiveInput) (*ClearGroupExclusiveOutput, error)

	// ListReserved maps every exclusively held tier to its owning chat
	ListReserved(ctx context.Context, input ListReservedInput) (*ListReservedOutput, error)
}

// GetGlobalSettingsInput defines the input for reading global toggles
type GetGlobalSettingsInput struct{}

// GetGlobalSettingsOutput defines the output for reading global toggles
type GetGlobalSettingsOutput struct {
	Settings map[catalog.Tier]Setting
}

// SetGlobalSettingInput defines the input for writing one tier's toggle
type SetGlobalSettingInput struct {
	Tier    catalog.Tier
	Setting Setting
}

// SetGlobalSettingOutput defines the output for writing one tier's toggle
type SetGlobalSettingOutput struct{}

// GetGroupExclusiveInput defines the input for reading a chat's exclusive tier
type GetGroupExclusiveInput struct {
	ChatID string
}

// GetGroupExclusiveOutput defines the output for reading a chat's exclusive tier
type GetGroupExclusiveOutput struct {
	Exclusive *Exclusive
}

// SetGroupExclusiveInput defines the input for reserving a tier for a chat
type SetGroupExclusiveInput struct {
	ChatID    string
	Exclusive Exclusive
}

// SetGroupExclusiveOutput defines the output for reserving a tier
type SetGroupExclusiveOutput struct{}

// ClearGroupExclusiveInput defines the input for releasing a chat's exclusive tier
type ClearGroupExclusiveInput struct {
	ChatID string
}

// ClearGroupExclusiveOutput defines the output for releasing a chat's exclusive tier
type ClearGroupExclusiveOutput struct{}

// ListReservedInput defines the input for listing exclusively held tiers
type ListReservedInput struct{}

// ListReservedOutput defines the output for listing exclusively held tiers
type ListReservedOutput struct {
	// OwnerByTier maps a reserved tier to the chat holding it
	OwnerByTier map[catalog.Tier]string
}

// DefaultSettings returns the toggles used for tiers that were never
// configured. The video tier is disabled globally; it spawns only via
// the venue restriction.
func DefaultSettings() map[catalog.Tier]Setting {
	return map[catalog.Tier]Setting{
		catalog.TierCommon:    {Enabled: true, Weight: 60},
		catalog.TierRare:      {Enabled: true, Weight: 25},
		catalog.TierEpic:      {Enabled: true, Weight: 10},
		catalog.TierLegendary: {Enabled: true, Weight: 4},
		catalog.TierLimited:   {Enabled: false, Weight: 1},
		catalog.TierAMV:       {Enabled: false, Weight: 1},
	}
}
