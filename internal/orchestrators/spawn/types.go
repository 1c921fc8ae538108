package spawn

import (
	"time"

	"github.com/collectabot/collect-api/internal/entities/catalog"
)

// ClaimOutcome is the result of resolving one guess
type ClaimOutcome string

// Claim outcomes. Exactly one guess per session ever gets OutcomeWon.
const (
	OutcomeWon             ClaimOutcome = "won"
	OutcomeWrongGuess      ClaimOutcome = "wrong_guess"
	OutcomeNoActiveSpawn   ClaimOutcome = "no_active_spawn"
	OutcomeAlreadyResolved ClaimOutcome = "already_resolved"
)

// RecordActivityInput defines the input for recording a chat event
type RecordActivityInput struct {
	ChatID string
}

// RecordActivityOutput defines the output for recording a chat event
type RecordActivityOutput struct {
	// SpawnTriggered is true when this event reached the threshold and
	// a spawn was placed
	SpawnTriggered bool
}

// ForceSpawnInput defines the input for the admin force-spawn operation
type ForceSpawnInput struct {
	ChatID string
}

// ForceSpawnOutput defines the output for the admin force-spawn operation
type ForceSpawnOutput struct {
	Spawned bool
}

// ClaimInput defines the input for resolving a guess
type ClaimInput struct {
	ChatID string
	UserID string
	Guess  string
}

// ClaimOutput defines the output for resolving a guess
type ClaimOutput struct {
	Outcome ClaimOutcome

	// Character is the granted snapshot, set only on OutcomeWon
	Character *catalog.Character

	// SideEffectErr reports a post-win persistence failure. The win
	// stands; callers surface the error instead of rolling back.
	SideEffectErr error
}

// ChangeThresholdInput defines the input for the admin threshold operation
type ChangeThresholdInput struct {
	ChatID    string
	Threshold int
}

// ChangeThresholdOutput defines the output for the admin threshold operation
type ChangeThresholdOutput struct {
	Threshold int
}

// GetActiveSpawnInput defines the input for reading a chat's live spawn
type GetActiveSpawnInput struct {
	ChatID string
}

// GetActiveSpawnOutput describes a live spawn without revealing the
// character's name
type GetActiveSpawnOutput struct {
	SessionID string
	ChatID    string
	Tier      catalog.Tier
	MediaRef  string
	IsVideo   bool
	CreatedAt time.Time
	Deadline  time.Time
}

// RefreshCatalogInput defines the input for reloading the catalog cache
type RefreshCatalogInput struct{}

// RefreshCatalogOutput defines the output for reloading the catalog cache
type RefreshCatalogOutput struct {
	Characters int
}
