// Package catalogcache holds an in-process snapshot of the character
// catalog so selection never blocks on storage
package catalogcache

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/collectabot/collect-api/internal/entities/catalog"
	"github.com/collectabot/collect-api/internal/errors"
	"github.com/collectabot/collect-api/internal/pkg/clock"
	"github.com/collectabot/collect-api/internal/repositories/characters"
)

// Config holds the dependencies for the catalog cache
type Config struct {
	Repository characters.Repository
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}

	return vb.Build()
}

type snapshot struct {
	characters  []*catalog.Character
	refreshedAt time.Time
}

// Cache is a read-through snapshot of the full non-removed catalog.
// Refresh swaps the whole snapshot atomically; readers never block.
type Cache struct {
	repo  characters.Repository
	clock clock.Clock

	current atomic.Pointer[snapshot]
}

// New creates a catalog cache. Call Refresh before first use.
func New(cfg *Config) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	cache := &Cache{
		repo:  cfg.Repository,
		clock: c,
	}
	cache.current.Store(&snapshot{})
	return cache, nil
}

// Refresh reloads the catalog and swaps in the new snapshot. On failure
// the previous snapshot stays in place.
func (c *Cache) Refresh(ctx context.Context) error {
	output, err := c.repo.ListEligible(ctx, characters.ListEligibleInput{})
	if err != nil {
		return errors.Wrap(err, "failed to refresh catalog cache")
	}

	c.current.Store(&snapshot{
		characters:  output.Characters,
		refreshedAt: c.clock.Now(),
	})

	slog.InfoContext(ctx, "catalog cache refreshed",
		"characters", len(output.Characters))
	return nil
}

// Snapshot returns the current catalog snapshot. The returned slice is
// shared; callers must not mutate it or the records it points to.
func (c *Cache) Snapshot() []*catalog.Character {
	return c.current.Load().characters
}

// Age returns how long ago the snapshot was refreshed, or a negative
// duration when it never was.
func (c *Cache) Age() time.Duration {
	s := c.current.Load()
	if s.refreshedAt.IsZero() {
		return -1
	}
	return c.clock.Now().Sub(s.refreshedAt)
}
