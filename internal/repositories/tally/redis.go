package tally

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/diceroller/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	tallyKeyPrefix = "win_tally:"
)

// Config holds configuration for the Redis tally repository
type Config struct {
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tally repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func tallyKey(playerID string) string {
	return tallyKeyPrefix + playerID
}

// RecordResult increments the tally hash fields by the delta
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) (*models.WinTally, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	key := tallyKey(input.PlayerID)

	pipe := r.client.TxPipeline()
	computerCmd := pipe.HIncrBy(ctx, key, models.ComputerWinsKey, int64(input.Delta.Computer))
	humanCmd := pipe.HIncrBy(ctx, key, models.HumanWinsKey, int64(input.Delta.Human))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record result: %w", err)
	}

	return &models.WinTally{
		Computer: int(computerCmd.Val()),
		Human:    int(humanCmd.Val()),
	}, nil
}

// GetTally reads both tally fields for a player
func (r *redisRepository) GetTally(ctx context.Context, input *GetTallyInput) (*models.WinTally, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, tallyKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tally: %w", err)
	}

	tally := &models.WinTally{}
	if tally.Computer, err = parseCount(fields[models.ComputerWinsKey]); err != nil {
		return nil, err
	}
	if tally.Human, err = parseCount(fields[models.HumanWinsKey]); err != nil {
		return nil, err
	}

	return tally, nil
}

func parseCount(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid tally value %q: %w", raw, err)
	}
	return n, nil
}
