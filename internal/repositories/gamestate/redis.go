package gamestate

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/zombierpg/survivor-api/internal/entities/survival"
	"github.com/zombierpg/survivor-api/internal/errors"
	"github.com/zombierpg/survivor-api/internal/pkg/clock"
	"github.com/zombierpg/survivor-api/internal/pkg/idgen"
	redisclient "github.com/zombierpg/survivor-api/internal/redis"
)

const (
	recordKeyPrefix = "survivor:"
	indexKey        = "survivor:index"

	// legacyStateKey held the single finalized record before slots existed.
	// legacy drafts (zombie:draft) are deliberately not migrated; an
	// unfinished creation has no id and no slot.
	legacyStateKey = "zombie:gamestate"

	gameVersion = "1.0.0"

	errStateNil     = "game state cannot be nil"
	errCharacterNil = "game state character cannot be nil"
	errIDEmpty      = "character ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis game-state repository.
type RedisConfig struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
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

// NewRedis creates a new Redis-backed game-state repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	g := cfg.IDGenerator
	if g == nil {
		g = &idgen.TimestampGenerator{}
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		idGen:  g,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.State == nil {
		return nil, errors.InvalidArgument(errStateNil)
	}
	if input.State.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	state := input.State
	if state.Character.ID == "" {
		state.Character.ID = r.idGen.Generate()
	}
	if state.GameVersion == "" {
		state.GameVersion = gameVersion
	}
	state.SaveDate = r.clock.Now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game state")
	}

	key := recordKeyPrefix + state.Character.ID

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // Saves never expire
	pipe.SAdd(ctx, indexKey, state.Character.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save game state")
	}

	return &SaveOutput{State: state}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := recordKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get game state")
	}

	var state survival.GameState
	if err := json.Unmarshal([]byte(result), &state); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss,
			"failed to unmarshal game state for %s", input.ID)
	}
	if state.Character == nil {
		return nil, errors.DataLossf("game state for %s has no character", input.ID)
	}

	return &GetOutput{State: &state}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, recordKeyPrefix+input.ID)
	pipe.SRem(ctx, indexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete game state")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListSummaries(
	ctx context.Context,
	_ ListSummariesInput,
) (*ListSummariesOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read save index")
	}

	summaries := make([]survival.Summary, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// A slot that cannot be loaded must not sink the whole
			// dashboard. Prune the index and move on.
			if errors.IsNotFound(err) || errors.IsDataLoss(err) {
				slog.WarnContext(ctx, "skipping unreadable save slot",
					"character_id", id,
					"error", err.Error())
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to load save slot %s", id)
		}

		ch := out.State.Character
		summaries = append(summaries, survival.Summary{
			ID:          ch.ID,
			Name:        ch.Name,
			Level:       ch.Level,
			Health:      ch.Health,
			CreatedAt:   ch.CreatedAt,
			LastUpdated: ch.LastUpdated,
			ImageData:   ch.ImageData,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return lastUpdatedTime(summaries[i]).After(lastUpdatedTime(summaries[j]))
	})

	return &ListSummariesOutput{Summaries: summaries}, nil
}

func lastUpdatedTime(s survival.Summary) time.Time {
	t, err := time.Parse(time.RFC3339, s.LastUpdated)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (r *redisRepository) Export(ctx context.Context, input ExportInput) (*ExportOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	// Backups must be byte-identical to the stored record, so return the
	// raw payload instead of a re-marshal.
	result, err := r.client.Get(ctx, recordKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to export game state")
	}

	return &ExportOutput{Data: []byte(result)}, nil
}

func (r *redisRepository) MigrateLegacy(
	ctx context.Context,
	_ MigrateLegacyInput,
) (*MigrateLegacyOutput, error) {
	result, err := r.client.Get(ctx, legacyStateKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &MigrateLegacyOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read legacy record")
	}

	var state survival.GameState
	if err := json.Unmarshal([]byte(result), &state); err != nil || state.Character == nil {
		// Corrupt legacy data degrades to "nothing to migrate"; the key is
		// removed so the broken payload is not re-examined every startup.
		slog.WarnContext(ctx, "legacy record unreadable, discarding",
			"key", legacyStateKey)
		r.client.Del(ctx, legacyStateKey)
		return &MigrateLegacyOutput{}, nil
	}

	// Save assigns an id when the legacy character predates ids.
	out, err := r.Save(ctx, SaveInput{State: &state})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to migrate legacy record")
	}

	if err := r.client.Del(ctx, legacyStateKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to remove legacy record")
	}

	slog.DebugContext(ctx, "migrated legacy save",
		"character_id", out.State.Character.ID)

	return &MigrateLegacyOutput{
		Migrated:    true,
		CharacterID: out.State.Character.ID,
	}, nil
}
