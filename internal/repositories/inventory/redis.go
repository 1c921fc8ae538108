package inventory

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/collectabot/collect-api/internal/entities/catalog"
	"github.com/collectabot/collect-api/internal/errors"
	redisclient "github.com/collectabot/collect-api/internal/redis"
)

const (
	listKeyPrefix   = "inventory:"
	countsKeySuffix = ":counts"

	// Error messages
	errUserIDEmpty  = "user ID cannot be empty"
	errCharacterNil = "character cannot be nil"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository.
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

// NewRedis creates a new Redis-backed inventory repository
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

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	listKey := listKeyPrefix + input.UserID
	countsKey := listKey + countsKeySuffix

	pipe := r.client.TxPipeline()
	lenCmd := pipe.RPush(ctx, listKey, data)
	pipe.HIncrBy(ctx, countsKey, input.Character.ID, 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append to inventory")
	}

	return &AppendOutput{Total: lenCmd.Val()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	listKey := listKeyPrefix + input.UserID

	entries, err := r.client.LRange(ctx, listKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read inventory")
	}

	characters := make([]*catalog.Character, 0, len(entries))
	for _, entry := range entries {
		var char catalog.Character
		if err := json.Unmarshal([]byte(entry), &char); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal inventory entry")
		}
		characters = append(characters, &char)
	}

	rawCounts, err := r.client.HGetAll(ctx, listKey+countsKeySuffix).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read inventory counts")
	}

	counts := make(map[string]int64, len(rawCounts))
	for id, raw := range rawCounts {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse count for %s", id)
		}
		counts[id] = n
	}

	return &GetOutput{Characters: characters, Counts: counts}, nil
}
