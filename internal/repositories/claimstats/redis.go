package claimstats

import (
	"context"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/collectabot/collect-api/internal/errors"
	redisclient "github.com/collectabot/collect-api/internal/redis"
)

const (
	groupKeyPrefix      = "claims:group:"
	groupTotalKeySuffix = ":total"
	globalKey           = "claims:global"

	// Error messages
	errChatIDEmpty = "chat ID cannot be empty"
	errUserIDEmpty = "user ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis claim stats repository.
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

// NewRedis creates a new Redis-backed claim stats repository
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

func (r *redisRepository) IncrementClaim(ctx context.Context, input IncrementClaimInput) (*IncrementClaimOutput, error) {
	if input.ChatID == "" {
		return nil, errors.InvalidArgument(errChatIDEmpty)
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	groupKey := groupKeyPrefix + input.ChatID

	pipe := r.client.TxPipeline()
	userCmd := pipe.HIncrBy(ctx, groupKey, input.UserID, 1)
	totalCmd := pipe.IncrBy(ctx, groupKey+groupTotalKeySuffix, 1)
	pipe.HIncrBy(ctx, globalKey, input.UserID, 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to increment claim counters")
	}

	return &IncrementClaimOutput{
		UserGroupTotal: userCmd.Val(),
		GroupTotal:     totalCmd.Val(),
	}, nil
}

func (r *redisRepository) GroupTotals(ctx context.Context, input GroupTotalsInput) (*GroupTotalsOutput, error) {
	if input.ChatID == "" {
		return nil, errors.InvalidArgument(errChatIDEmpty)
	}

	groupKey := groupKeyPrefix + input.ChatID

	raw, err := r.client.HGetAll(ctx, groupKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read group counters")
	}

	byUser := make(map[string]int64, len(raw))
	for userID, val := range raw {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse counter for %s", userID)
		}
		byUser[userID] = n
	}

	total, err := r.client.Get(ctx, groupKey+groupTotalKeySuffix).Int64()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to read group total")
	}

	return &GroupTotalsOutput{ByUser: byUser, Total: total}, nil
}

func (r *redisRepository) UserTotal(ctx context.Context, input UserTotalInput) (*UserTotalOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	total, err := r.client.HGet(ctx, globalKey, input.UserID).Int64()
	if err != nil {
		if err == redis.Nil {
			return &UserTotalOutput{Total: 0}, nil
		}
		return nil, errors.Wrapf(err, "failed to read user total")
	}

	return &UserTotalOutput{Total: total}, nil
}
