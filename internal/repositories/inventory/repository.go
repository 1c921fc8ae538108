// Package inventory provides the interface for per-user owned-character persistence
package inventory

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/collectabot/collect-api/internal/repositories/inventory Repository

import (
	"context"

	"github.com/collectabot/collect-api/internal/entities/catalog"
)

// Repository defines the interface for user inventory storage
type Repository interface {
	// Append grants a character snapshot to a user. Every grant is a new
	// instance; owning duplicates of the same character is allowed.
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get retrieves everything a user owns, in grant order
	// Returns an empty inventory (not an error) for unknown users
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}

// AppendInput defines the input for granting a character
type AppendInput struct {
	UserID    string
	Character *catalog.Character
}

// AppendOutput defines the output for granting a character
type AppendOutput struct {
	// Total owned instances after the grant
	Total int64
}

// GetInput defines the input for reading a user's inventory
type GetInput struct {
	UserID string
}

// GetOutput defines the output for reading a user's inventory
type GetOutput struct {
	Characters []*catalog.Character

	// Counts maps character ID to owned instance count
	Counts map[string]int64
}
