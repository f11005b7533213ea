package draft

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/errors"
	redisclient "github.com/zombierpg/survivor-api/internal/redis"
)

// draftKey is the single slot; no TTL, a draft lives until finalized or
// reset.
const draftKey = "survivor:draft"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis draft repository.
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

// NewRedis creates a new Redis-backed draft repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Draft == nil {
		return nil, errors.InvalidArgument("draft cannot be nil")
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	if err := r.client.Set(ctx, draftKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store draft")
	}

	return &PutOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, draftKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no draft in progress")
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	var d survival.Draft
	if err := json.Unmarshal([]byte(result), &d); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "failed to unmarshal draft")
	}

	return &GetOutput{Draft: &d}, nil
}

func (r *redisRepository) Delete(ctx context.Context, _ DeleteInput) (*DeleteOutput, error) {
	if err := r.client.Del(ctx, draftKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}
	return &DeleteOutput{}, nil
}
