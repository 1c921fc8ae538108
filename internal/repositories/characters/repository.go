// Package characters provides the interface for character catalog persistence
package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=charactersmock github.com/collectabot/collect-api/internal/repositories/characters Repository

import (
	"context"

	"github.com/collectabot/collect-api/internal/entities/catalog"
)

// Repository defines the interface for character catalog storage.
// The spawn engine only reads from it; writes come from catalog tooling.
type Repository interface {
	// Create stores a new catalog record
	// Returns errors.AlreadyExists if a character with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID, including removed ones
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing catalog record
	// Returns errors.NotFound if the character doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Remove soft-deletes a character; it stays readable via Get but is
	// excluded from ListEligible
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)

	// ListEligible retrieves all non-removed characters, optionally
	// restricted to one rarity tier
	ListEligible(ctx context.Context, input ListEligibleInput) (*ListEligibleOutput, error)
}

// CreateInput defines the input for creating a catalog record
type CreateInput struct {
	Character *catalog.Character
}

// CreateOutput defines the output for creating a catalog record
type CreateOutput struct {
	Character *catalog.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *catalog.Character
}

// UpdateInput defines the input for updating a catalog record
type UpdateInput struct {
	Character *catalog.Character
}

// UpdateOutput defines the output for updating a catalog record
type UpdateOutput struct {
	Character *catalog.Character
}

// RemoveInput defines the input for soft-deleting a character
type RemoveInput struct {
	ID string
}

// RemoveOutput defines the output for soft-deleting a character
type RemoveOutput struct {
	Character *catalog.Character
}

// ListEligibleInput defines the filter for listing spawnable characters
type ListEligibleInput struct {
	// Tier restricts the listing to one rarity tier when non-nil
	Tier *catalog.Tier
}

// ListEligibleOutput defines the output for listing spawnable characters
type ListEligibleOutput struct {
	Characters []*catalog.Character
}
