package registry

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/errors"
	redisclient "github.com/zombierpg/survivor-api/internal/redis"
)

const (
	customItemsKey  = "survivor:custom_items"
	customEventsKey = "survivor:custom_events"
	eventLogKey     = "survivor:event_log"

	// eventLogMax bounds the log; older entries fall off the end.
	eventLogMax = 50
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis registry repository.
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

// NewRedis creates a new Redis-backed registry repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// getCollection loads a whole JSON collection, degrading missing or corrupt
// payloads to empty.
func getCollection(ctx context.Context, client redisclient.Client, key string, dest interface{}) error {
	result, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", key)
	}

	if err := json.Unmarshal([]byte(result), dest); err != nil {
		slog.WarnContext(ctx, "stored collection unreadable, treating as empty",
			"key", key,
			"error", err.Error())
	}
	return nil
}

func putCollection(ctx context.Context, client redisclient.Client, key string, src interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", key)
	}
	if err := client.Set(ctx, key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s", key)
	}
	return nil
}

func (r *redisRepository) GetCustomItems(
	ctx context.Context,
	_ GetCustomItemsInput,
) (*GetCustomItemsOutput, error) {
	var items []survival.Item
	if err := getCollection(ctx, r.client, customItemsKey, &items); err != nil {
		return nil, err
	}
	return &GetCustomItemsOutput{Items: items}, nil
}

func (r *redisRepository) PutCustomItems(
	ctx context.Context,
	input PutCustomItemsInput,
) (*PutCustomItemsOutput, error) {
	if err := putCollection(ctx, r.client, customItemsKey, input.Items); err != nil {
		return nil, err
	}
	return &PutCustomItemsOutput{}, nil
}

func (r *redisRepository) GetCustomEvents(
	ctx context.Context,
	_ GetCustomEventsInput,
) (*GetCustomEventsOutput, error) {
	var events []survival.GameEvent
	if err := getCollection(ctx, r.client, customEventsKey, &events); err != nil {
		return nil, err
	}
	return &GetCustomEventsOutput{Events: events}, nil
}

func (r *redisRepository) PutCustomEvents(
	ctx context.Context,
	input PutCustomEventsInput,
) (*PutCustomEventsOutput, error) {
	if err := putCollection(ctx, r.client, customEventsKey, input.Events); err != nil {
		return nil, err
	}
	return &PutCustomEventsOutput{}, nil
}

func (r *redisRepository) GetEventLog(
	ctx context.Context,
	_ GetEventLogInput,
) (*GetEventLogOutput, error) {
	entries, err := r.client.LRange(ctx, eventLogKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read event log")
	}
	return &GetEventLogOutput{Entries: entries}, nil
}

func (r *redisRepository) AppendEventLog(
	ctx context.Context,
	input AppendEventLogInput,
) (*AppendEventLogOutput, error) {
	if input.Entry == "" {
		return nil, errors.InvalidArgument("log entry cannot be empty")
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, eventLogKey, input.Entry)
	pipe.LTrim(ctx, eventLogKey, 0, eventLogMax-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append event log")
	}

	return &AppendEventLogOutput{}, nil
}

func (r *redisRepository) ClearEventLog(
	ctx context.Context,
	_ ClearEventLogInput,
) (*ClearEventLogOutput, error) {
	if err := r.client.Del(ctx, eventLogKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear event log")
	}
	return &ClearEventLogOutput{}, nil
}
