// Package claimstats provides the interface for claim counter persistence
package claimstats

//go:generate mockgen -destination=mock/mock_repository.go -package=claimstatsmock github.com/collectabot/collect-api/internal/repositories/claimstats Repository

import (
	"context"
)

// Repository defines the interface for per-group and global claim counters
type Repository interface {
	// IncrementClaim bumps the winner's per-group counter, the group
	// total, and the winner's global counter in one transaction
	IncrementClaim(ctx context.Context, input IncrementClaimInput) (*IncrementClaimOutput, error)

	// GroupTotals reads a group's per-user claim counts and its total
	GroupTotals(ctx context.Context, input GroupTotalsInput) (*GroupTotalsOutput, error)

	// UserTotal reads a user's global claim count
	UserTotal(ctx context.Context, input UserTotalInput) (*UserTotalOutput, error)
}

// IncrementClaimInput defines the input for recording a claim
type IncrementClaimInput struct {
	ChatID string
	UserID string
}

// IncrementClaimOutput defines the output for recording a claim
type IncrementClaimOutput struct {
	// UserGroupTotal is the winner's claim count in this group after the increment
	UserGroupTotal int64

	// GroupTotal is the group's claim count after the increment
	GroupTotal int64
}

// GroupTotalsInput defines the input for reading group counters
type GroupTotalsInput struct {
	ChatID string
}

// GroupTotalsOutput defines the output for reading group counters
type GroupTotalsOutput struct {
	ByUser map[string]int64
	Total  int64
}

// UserTotalInput defines the input for reading a user's global counter
type UserTotalInput struct {
	UserID string
}

// UserTotalOutput defines the output for reading a user's global counter
type UserTotalOutput struct {
	Total int64
}
