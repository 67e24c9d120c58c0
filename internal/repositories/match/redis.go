package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/diceroller/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	matchKeyPrefix   = "match:"
	channelKeyPrefix = "channel_match:"
	activeMatchesKey = "active_matches"
)

// Config holds configuration for the Redis match repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed match repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveMatch persists a match to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	m := input.Match
	if m.ID == "" {
		return errors.New("match ID cannot be empty")
	}

	matchJSON, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, matchKeyPrefix+m.ID, matchJSON, 0)

	if m.ChannelID != "" {
		pipe.Set(ctx, channelKeyPrefix+m.ChannelID, m.ID, 0)
	}

	if m.Status.IsCompleted() {
		pipe.SRem(ctx, activeMatchesKey, m.ID)
	} else {
		pipe.SAdd(ctx, activeMatchesKey, m.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchJSON, err := r.client.Get(ctx, matchKeyPrefix+input.MatchID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var m models.Match
	if err := json.Unmarshal(matchJSON, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &m, nil
}

// GetMatchByChannel retrieves the match bound to a channel from Redis
func (r *redisRepository) GetMatchByChannel(ctx context.Context, input *GetMatchByChannelInput) (*models.Match, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	matchID, err := r.client.Get(ctx, channelKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match ID for channel: %w", err)
	}

	return r.GetMatch(ctx, &GetMatchInput{
		MatchID: matchID,
	})
}

// DeleteMatch removes a match from Redis
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.MatchID == "" {
		return errors.New("input and match ID cannot be empty")
	}

	m, err := r.GetMatch(ctx, &GetMatchInput{
		MatchID: input.MatchID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, matchKeyPrefix+m.ID)
	pipe.SRem(ctx, activeMatchesKey, m.ID)

	if m.ChannelID != "" {
		// only drop the channel binding if it still points at this match
		current, err := r.client.Get(ctx, channelKeyPrefix+m.ChannelID).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to get match ID for channel: %w", err)
		}
		if current == m.ID {
			pipe.Del(ctx, channelKeyPrefix+m.ChannelID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}

// GetActiveMatches retrieves all matches that are still being played
func (r *redisRepository) GetActiveMatches(ctx context.Context, input *GetActiveMatchesInput) (*GetActiveMatchesOutput, error) {
	matchIDs, err := r.client.SMembers(ctx, activeMatchesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active match IDs: %w", err)
	}

	if len(matchIDs) == 0 {
		return &GetActiveMatchesOutput{
			Matches: []*models.Match{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringCmd, len(matchIDs))
	for _, id := range matchIDs {
		cmds[id] = pipe.Get(ctx, matchKeyPrefix+id)
	}

	// a missing key surfaces as redis.Nil from Exec; handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get active matches: %w", err)
	}

	matches := make([]*models.Match, 0, len(matchIDs))
	for id, cmd := range cmds {
		raw, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get match %s: %w", id, err)
		}

		var m models.Match
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match %s: %w", id, err)
		}
		matches = append(matches, &m)
	}

	return &GetActiveMatchesOutput{
		Matches: matches,
	}, nil
}
