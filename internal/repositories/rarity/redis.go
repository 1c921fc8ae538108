package rarity

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/collectabot/collect-api/internal/entities/catalog"
	"github.com/collectabot/collect-api/internal/errors"
	redisclient "github.com/collectabot/collect-api/internal/redis"
)

const (
	globalSettingsKey      = "rarity:global"
	exclusiveChatKeyPrefix = "rarity:exclusive:chat:"
	reservedTiersKey       = "rarity:exclusive:tiers"

	// Error messages
	errChatIDEmpty = "chat ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis rarity policy repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed rarity policy repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) GetGlobalSettings(ctx context.Context, _ GetGlobalSettingsInput) (*GetGlobalSettingsOutput, error) {
	raw, err := r.client.HGetAll(ctx, globalSettingsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read global rarity settings")
	}

	// Stored toggles override the defaults tier by tier
	settings := DefaultSettings()
	for code, val := range raw {
		tier, err := catalog.ParseTier(code)
		if err != nil {
			// Stale entry for a tier that no longer exists
			continue
		}
		var setting Setting
		if err := json.Unmarshal([]byte(val), &setting); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal setting for tier %s", code)
		}
		settings[tier] = setting
	}

	return &GetGlobalSettingsOutput{Settings: settings}, nil
}

func (r *redisRepository) SetGlobalSetting(ctx context.Context, input SetGlobalSettingInput) (*SetGlobalSettingOutput, error) {
	if !input.Tier.Valid() {
		return nil, errors.InvalidArgumentf("unknown rarity tier %q", input.Tier)
	}
	if input.Setting.Weight < 0 {
		return nil, errors.InvalidArgument("weight cannot be negative")
	}

	data, err := json.Marshal(input.Setting)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal setting")
	}

	if err := r.client.HSet(ctx, globalSettingsKey, input.Tier.String(), data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to write global rarity setting")
	}

	return &SetGlobalSettingOutput{}, nil
}

func (r *redisRepository) GetGroupExclusive(ctx context.Context, input GetGroupExclusiveInput) (*GetGroupExclusiveOutput, error) {
	if input.ChatID == "" {
		return nil, errors.InvalidArgument(errChatIDEmpty)
	}

	raw, err := r.client.Get(ctx, exclusiveChatKeyPrefix+input.ChatID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("chat %s has no exclusive rarity", input.ChatID)
		}
		return nil, errors.Wrapf(err, "failed to read group exclusive rarity")
	}

	var exclusive Exclusive
	if err := json.Unmarshal([]byte(raw), &exclusive); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal group exclusive rarity")
	}

	return &GetGroupExclusiveOutput{Exclusive: &exclusive}, nil
}

func (r *redisRepository) SetGroupExclusive(ctx context.Context, input SetGroupExclusiveInput) (*SetGroupExclusiveOutput, error) {
	if input.ChatID == "" {
		return nil, errors.InvalidArgument(errChatIDEmpty)
	}
	if !input.Exclusive.Tier.Valid() {
		return nil, errors.InvalidArgumentf("unknown rarity tier %q", input.Exclusive.Tier)
	}
	if input.Exclusive.Weight <= 0 {
		return nil, errors.InvalidArgument("weight must be positive")
	}

	// A tier can be exclusive to at most one chat; the reverse index
	// hash holds the owning chat per tier
	owner, err := r.client.HGet(ctx, reservedTiersKey, input.Exclusive.Tier.String()).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to check tier ownership")
	}
	if err == nil && owner != input.ChatID {
		return nil, errors.FailedPreconditionf("tier %s is already exclusive to another chat", input.Exclusive.Tier)
	}

	// Release the chat's previous tier before assigning the new one
	prev, err := r.GetGroupExclusive(ctx, GetGroupExclusiveInput{ChatID: input.ChatID})
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	data, err := json.Marshal(input.Exclusive)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal group exclusive rarity")
	}

	pipe := r.client.TxPipeline()
	if prev != nil && prev.Exclusive.Tier != input.Exclusive.Tier {
		pipe.HDel(ctx, reservedTiersKey, prev.Exclusive.Tier.String())
	}
	pipe.Set(ctx, exclusiveChatKeyPrefix+input.ChatID, data, 0)
	pipe.HSet(ctx, reservedTiersKey, input.Exclusive.Tier.String(), input.ChatID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to write group exclusive rarity")
	}

	return &SetGroupExclusiveOutput{}, nil
}

func (r *redisRepository) ClearGroupExclusive(ctx context.Context, input ClearGroupExclusiveInput) (*ClearGroupExclusiveOutput, error) {
	if input.ChatID == "" {
		return nil, errors.InvalidArgument(errChatIDEmpty)
	}

	prev, err := r.GetGroupExclusive(ctx, GetGroupExclusiveInput{ChatID: input.ChatID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &ClearGroupExclusiveOutput{}, nil
		}
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, exclusiveChatKeyPrefix+input.ChatID)
	pipe.HDel(ctx, reservedTiersKey, prev.Exclusive.Tier.String())

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear group exclusive rarity")
	}

	return &ClearGroupExclusiveOutput{}, nil
}

func (r *redisRepository) ListReserved(ctx context.Context, _ ListReservedInput) (*ListReservedOutput, error) {
	raw, err := r.client.HGetAll(ctx, reservedTiersKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read reserved tiers")
	}

	owners := make(map[catalog.Tier]string, len(raw))
	for code, chatID := range raw {
		tier, err := catalog.ParseTier(code)
		if err != nil {
			continue
		}
		owners[tier] = chatID
	}

	return &ListReservedOutput{OwnerByTier: owners}, nil
}
