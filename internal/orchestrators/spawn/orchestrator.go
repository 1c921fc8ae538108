// Package spawn implements the spawn engine orchestrator: activity
// counting, weighted selection, spawn placement, claim arbitration,
// and despawn.
package spawn

//go:generate mockgen -destination=mock/mock_service.go -package=spawnmock github.com/collectabot/collect-api/internal/orchestrators/spawn Service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/collectabot/collect-api/internal/clients/messaging"
	"github.com/collectabot/collect-api/internal/engine/activity"
	"github.com/collectabot/collect-api/internal/engine/catalogcache"
	"github.com/collectabot/collect-api/internal/engine/selector"
	"github.com/collectabot/collect-api/internal/engine/session"
	"github.com/collectabot/collect-api/internal/entities/catalog"
	"github.com/collectabot/collect-api/internal/errors"
	"github.com/collectabot/collect-api/internal/metrics"
	"github.com/collectabot/collect-api/internal/pkg/clock"
	"github.com/collectabot/collect-api/internal/pkg/idgen"
	"github.com/collectabot/collect-api/internal/pkg/timer"
	"github.com/collectabot/collect-api/internal/repositories/claimstats"
	"github.com/collectabot/collect-api/internal/repositories/inventory"
	"github.com/collectabot/collect-api/internal/repositories/rarity"
)

// DefaultDespawnWindow is how long a spawn stays claimable
const DefaultDespawnWindow = 10 * time.Minute

// Service defines the spawn engine operations
type Service interface {
	// RecordActivity counts one qualifying chat event and places a spawn
	// when the chat's threshold is reached
	RecordActivity(ctx context.Context, input *RecordActivityInput) (*RecordActivityOutput, error)

	// ForceSpawn places a spawn immediately, bypassing the counter.
	// Declined (not an error) while the chat already has a live spawn.
	ForceSpawn(ctx context.Context, input *ForceSpawnInput) (*ForceSpawnOutput, error)

	// Claim resolves one guess against the chat's live spawn
	Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error)

	// ChangeThreshold sets the chat's activity threshold
	ChangeThreshold(ctx context.Context, input *ChangeThresholdInput) (*ChangeThresholdOutput, error)

	// GetActiveSpawn describes the chat's live spawn without revealing
	// the character's name
	GetActiveSpawn(ctx context.Context, input *GetActiveSpawnInput) (*GetActiveSpawnOutput, error)

	// RefreshCatalog reloads the catalog snapshot used for selection
	RefreshCatalog(ctx context.Context, input *RefreshCatalogInput) (*RefreshCatalogOutput, error)
}

// Config holds the dependencies for the spawn orchestrator
type Config struct {
	Catalog    *catalogcache.Cache
	Rarity     rarity.Repository
	Inventory  inventory.Repository
	ClaimStats claimstats.Repository
	Messenger  messaging.Client

	// Optional collaborators, defaulted when nil
	Selector    *selector.Selector
	Counter     *activity.Counter
	Registry    *session.Registry
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Scheduler   timer.Scheduler

	// DespawnWindow is how long a spawn stays claimable; 0 means default
	DespawnWindow time.Duration

	// VideoVenueChatID is the one chat where the video tier may spawn
	VideoVenueChatID string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Rarity == nil {
		vb.RequiredField("Rarity")
	}
	if c.Inventory == nil {
		vb.RequiredField("Inventory")
	}
	if c.ClaimStats == nil {
		vb.RequiredField("ClaimStats")
	}
	if c.Messenger == nil {
		vb.RequiredField("Messenger")
	}

	return vb.Build()
}

// Orchestrator implements the spawn engine
type Orchestrator struct {
	catalog    *catalogcache.Cache
	rarity     rarity.Repository
	inventory  inventory.Repository
	claimStats claimstats.Repository
	messenger  messaging.Client

	selector  *selector.Selector
	counter   *activity.Counter
	registry  *session.Registry
	idGen     idgen.Generator
	clock     clock.Clock
	scheduler timer.Scheduler

	despawnWindow  time.Duration
	videoVenueChat string
}

// New creates a spawn orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &Orchestrator{
		catalog:        cfg.Catalog,
		rarity:         cfg.Rarity,
		inventory:      cfg.Inventory,
		claimStats:     cfg.ClaimStats,
		messenger:      cfg.Messenger,
		selector:       cfg.Selector,
		counter:        cfg.Counter,
		registry:       cfg.Registry,
		idGen:          cfg.IDGenerator,
		clock:          cfg.Clock,
		scheduler:      cfg.Scheduler,
		despawnWindow:  cfg.DespawnWindow,
		videoVenueChat: cfg.VideoVenueChatID,
	}

	if o.selector == nil {
		o.selector = selector.New(nil)
	}
	if o.counter == nil {
		o.counter = activity.NewCounter()
	}
	if o.registry == nil {
		o.registry = session.NewRegistry()
	}
	if o.idGen == nil {
		o.idGen = idgen.NewPrefixed("spawn")
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.scheduler == nil {
		o.scheduler = timer.New()
	}
	if o.despawnWindow <= 0 {
		o.despawnWindow = DefaultDespawnWindow
	}

	return o, nil
}

// Ensure Orchestrator implements Service
var _ Service = (*Orchestrator)(nil)

// RecordActivity counts one chat event. A spawn attempt that fails
// downstream is logged and swallowed; the cycle simply produces no
// spawn and counting starts over.
func (o *Orchestrator) RecordActivity(ctx context.Context, input *RecordActivityInput) (*RecordActivityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.ChatID == "" {
		return nil, errors.InvalidArgument("chat ID is required")
	}

	if !o.counter.Record(input.ChatID) {
		return &RecordActivityOutput{}, nil
	}

	return &RecordActivityOutput{
		SpawnTriggered: o.trySpawn(ctx, input.ChatID),
	}, nil
}

// ForceSpawn places a spawn immediately, bypassing the activity counter
func (o *Orchestrator) ForceSpawn(ctx context.Context, input *ForceSpawnInput) (*ForceSpawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.ChatID == "" {
		return nil, errors.InvalidArgument("chat ID is required")
	}

	return &ForceSpawnOutput{
		Spawned: o.trySpawn(ctx, input.ChatID),
	}, nil
}

// trySpawn is the single spawn path. It acquires the chat's in-flight
// marker, runs selection and placement outside the lock, then installs
// the session and arms the despawn timer. At most one spawn per chat
// can be live or in flight.
func (o *Orchestrator) trySpawn(ctx context.Context, chatID string) bool {
	acquired := false
	o.registry.WithChat(chatID, func(slot *session.Slot) {
		if slot.Spawning {
			return
		}
		if slot.Session != nil && slot.Session.State == session.StateActive {
			return
		}
		slot.Spawning = true
		acquired = true
	})
	if !acquired {
		slog.DebugContext(ctx, "spawn declined, chat already has one live or in flight",
			"chat_id", chatID)
		return false
	}

	sess, ok := o.placeSpawn(ctx, chatID)
	if !ok {
		o.registry.WithChat(chatID, func(slot *session.Slot) {
			slot.Spawning = false
		})
		return false
	}

	o.scheduler.AfterFunc(o.despawnWindow, func() {
		o.expire(context.Background(), chatID, sess.ID)
	})

	metrics.Spawns.WithLabelValues(sess.Character.Tier.String()).Inc()
	slog.InfoContext(ctx, "spawn placed",
		"chat_id", chatID,
		"session_id", sess.ID,
		"character_id", sess.Character.ID,
		"tier", sess.Character.Tier.String(),
	)
	return true
}

// placeSpawn selects a character, posts the announcement, and installs
// the Active session. The caller holds the chat's in-flight marker.
func (o *Orchestrator) placeSpawn(ctx context.Context, chatID string) (*session.Session, bool) {
	policy, err := o.loadPolicy(ctx, chatID)
	if err != nil {
		slog.WarnContext(ctx, "failed to load rarity policy, skipping spawn",
			"chat_id", chatID,
			"error", err)
		return nil, false
	}

	picked, err := o.selector.Select(chatID, policy, o.catalog.Snapshot())
	if err != nil {
		if errors.IsNotFound(err) {
			slog.InfoContext(ctx, "no character available this cycle",
				"chat_id", chatID)
		} else {
			slog.WarnContext(ctx, "character selection failed",
				"chat_id", chatID,
				"error", err)
		}
		return nil, false
	}

	// Snapshot so catalog edits never mutate an in-flight spawn
	character := picked.Clone()

	ref, err := o.messenger.PostSpawnAnnouncement(ctx, chatID, character)
	if err != nil {
		slog.WarnContext(ctx, "failed to post spawn announcement, skipping spawn",
			"chat_id", chatID,
			"error", err)
		return nil, false
	}

	now := o.clock.Now()
	sess := &session.Session{
		ID:           o.idGen.Generate(),
		ChatID:       chatID,
		Character:    character,
		PlacementRef: ref,
		CreatedAt:    now,
		Deadline:     now.Add(o.despawnWindow),
		State:        session.StateActive,
	}

	o.registry.WithChat(chatID, func(slot *session.Slot) {
		slot.Session = sess
		slot.Spawning = false
	})
	return sess, true
}

// loadPolicy assembles the selector policy from rarity storage
func (o *Orchestrator) loadPolicy(ctx context.Context, chatID string) (selector.Policy, error) {
	settings, err := o.rarity.GetGlobalSettings(ctx, rarity.GetGlobalSettingsInput{})
	if err != nil {
		return selector.Policy{}, errors.Wrap(err, "failed to load global settings")
	}

	global := make(map[catalog.Tier]selector.TierSetting, len(settings.Settings))
	for tier, s := range settings.Settings {
		global[tier] = selector.TierSetting{Enabled: s.Enabled, Weight: s.Weight}
	}

	reserved, err := o.rarity.ListReserved(ctx, rarity.ListReservedInput{})
	if err != nil {
		return selector.Policy{}, errors.Wrap(err, "failed to list reserved tiers")
	}

	policy := selector.Policy{
		Global:           global,
		Reserved:         reserved.OwnerByTier,
		VideoVenueChatID: o.videoVenueChat,
	}

	exclusive, err := o.rarity.GetGroupExclusive(ctx, rarity.GetGroupExclusiveInput{ChatID: chatID})
	if err != nil {
		if !errors.IsNotFound(err) {
			return selector.Policy{}, errors.Wrap(err, "failed to load group exclusive")
		}
	} else if exclusive.Exclusive != nil {
		policy.Exclusive = &selector.ExclusiveTier{
			Tier:   exclusive.Exclusive.Tier,
			Weight: exclusive.Exclusive.Weight,
		}
	}

	return policy, nil
}

// Claim resolves one guess. The check-and-transition runs inside the
// chat's exclusive section; side effects run after, outside the lock.
// A persistence failure after the transition does not undo the win.
func (o *Orchestrator) Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.ChatID == "" {
		return nil, errors.InvalidArgument("chat ID is required")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	outcome := OutcomeNoActiveSpawn
	var won *session.Session

	o.registry.WithChat(input.ChatID, func(slot *session.Slot) {
		if slot.Session == nil {
			return
		}
		if slot.Session.State != session.StateActive {
			outcome = OutcomeAlreadyResolved
			return
		}
		if !guessAllowed(input.Guess) || !matchesName(input.Guess, slot.Session.Character.Name) {
			outcome = OutcomeWrongGuess
			return
		}
		// The session stays in the slot as a resolved marker until the
		// next spawn replaces it, so late duplicate guesses see
		// AlreadyResolved rather than NoActiveSpawn
		slot.Session.Claim(input.UserID)
		outcome = OutcomeWon
		won = slot.Session
	})

	metrics.Claims.WithLabelValues(string(outcome)).Inc()

	if outcome != OutcomeWon {
		return &ClaimOutput{Outcome: outcome}, nil
	}

	slog.InfoContext(ctx, "spawn claimed",
		"chat_id", input.ChatID,
		"session_id", won.ID,
		"user_id", input.UserID,
		"character_id", won.Character.ID,
	)

	if err := o.messenger.DeleteMessage(ctx, input.ChatID, won.PlacementRef); err != nil {
		slog.WarnContext(ctx, "failed to remove spawn announcement",
			"chat_id", input.ChatID,
			"message_ref", won.PlacementRef,
			"error", err)
	}

	out := &ClaimOutput{
		Outcome:   OutcomeWon,
		Character: won.Character,
	}

	if _, err := o.inventory.Append(ctx, inventory.AppendInput{
		UserID:    input.UserID,
		Character: won.Character,
	}); err != nil {
		out.SideEffectErr = errors.Wrap(err, "failed to persist granted character")
	} else if _, err := o.claimStats.IncrementClaim(ctx, claimstats.IncrementClaimInput{
		ChatID: input.ChatID,
		UserID: input.UserID,
	}); err != nil {
		out.SideEffectErr = errors.Wrap(err, "failed to increment claim counters")
	}

	if out.SideEffectErr != nil {
		slog.ErrorContext(ctx, "claim side effect failed, win stands",
			"chat_id", input.ChatID,
			"session_id", won.ID,
			"user_id", input.UserID,
			"error", out.SideEffectErr)
	}

	return out, nil
}

// expire runs when the despawn timer fires. It is idempotent: a session
// already claimed, already expired, or already replaced is left alone.
func (o *Orchestrator) expire(ctx context.Context, chatID, sessionID string) {
	var expired *session.Session

	o.registry.WithChat(chatID, func(slot *session.Slot) {
		if slot.Session == nil || slot.Session.ID != sessionID {
			return
		}
		if !slot.Session.Expire() {
			return
		}
		expired = slot.Session
		slot.Session = nil
	})
	if expired == nil {
		return
	}

	metrics.Despawns.Inc()
	slog.InfoContext(ctx, "spawn expired unclaimed",
		"chat_id", chatID,
		"session_id", expired.ID,
		"character_id", expired.Character.ID,
	)

	if err := o.messenger.DeleteMessage(ctx, chatID, expired.PlacementRef); err != nil {
		slog.WarnContext(ctx, "failed to remove expired spawn announcement",
			"chat_id", chatID,
			"message_ref", expired.PlacementRef,
			"error", err)
	}

	notice := fmt.Sprintf("Time's up! Nobody caught %s.", expired.Character.Name)
	if err := o.messenger.PostNotice(ctx, chatID, notice); err != nil {
		slog.WarnContext(ctx, "failed to post despawn notice",
			"chat_id", chatID,
			"error", err)
	}
}

// ChangeThreshold sets the chat's activity threshold
func (o *Orchestrator) ChangeThreshold(ctx context.Context, input *ChangeThresholdInput) (*ChangeThresholdOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.ChatID == "" {
		return nil, errors.InvalidArgument("chat ID is required")
	}

	if err := o.counter.SetThreshold(input.ChatID, input.Threshold); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "spawn threshold changed",
		"chat_id", input.ChatID,
		"threshold", input.Threshold)

	return &ChangeThresholdOutput{Threshold: input.Threshold}, nil
}

// GetActiveSpawn describes a live spawn without revealing the name
func (o *Orchestrator) GetActiveSpawn(_ context.Context, input *GetActiveSpawnInput) (*GetActiveSpawnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}
	if input.ChatID == "" {
		return nil, errors.InvalidArgument("chat ID is required")
	}

	sess := o.registry.ActiveSession(input.ChatID)
	if sess == nil {
		return nil, errors.NotFoundf("no active spawn in chat %s", input.ChatID)
	}

	return &GetActiveSpawnOutput{
		SessionID: sess.ID,
		ChatID:    sess.ChatID,
		Tier:      sess.Character.Tier,
		MediaRef:  sess.Character.MediaRef,
		IsVideo:   sess.Character.IsVideo,
		CreatedAt: sess.CreatedAt,
		Deadline:  sess.Deadline,
	}, nil
}

// RefreshCatalog reloads the catalog snapshot used for selection
func (o *Orchestrator) RefreshCatalog(ctx context.Context, input *RefreshCatalogInput) (*RefreshCatalogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	if err := o.catalog.Refresh(ctx); err != nil {
		return nil, err
	}

	return &RefreshCatalogOutput{
		Characters: len(o.catalog.Snapshot()),
	}, nil
}
