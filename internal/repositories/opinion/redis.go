package opinion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/frkandris/opinions/internal/models"
)

const (
	// Key prefixes for Redis
	opinionKeyPrefix      = "opinion:"
	gameOpinionsKeyPrefix = "game_opinions:"       // sorted set scored by order index
	authorGuardKeyPrefix  = "game_opinion_author:" // one opinion per (game, author)
	sequenceKeyPrefix     = "game_opinion_seq:"    // store-owned order counter
)

// ErrOpinionNotFound is returned when an opinion is not found
var ErrOpinionNotFound = errors.New("opinion not found")

// ErrAlreadySubmitted is returned when the author already has an opinion
// in the game
var ErrAlreadySubmitted = errors.New("opinion already submitted for this game")

// Config holds configuration for the Redis opinion repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed opinion repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateOpinion persists an opinion to Redis. Two invariants are enforced
// here rather than in the caller: the author guard key keeps the pair
// (game, author) unique under concurrent submissions, and the order index
// comes from a single INCR-backed sequence so simultaneous submitters can
// never receive the same index.
func (r *redisRepository) CreateOpinion(ctx context.Context, input *CreateOpinionInput) (*CreateOpinionOutput, error) {
	if input == nil || input.Opinion == nil {
		return nil, errors.New("input and opinion cannot be nil")
	}

	op := input.Opinion
	if op.ID == "" || op.GameID == "" || op.PlayerID == "" {
		return nil, errors.New("opinion ID, game ID and player ID cannot be empty")
	}

	guardKey := authorGuardKeyPrefix + op.GameID + ":" + op.PlayerID
	claimed, err := r.client.SetNX(ctx, guardKey, op.ID, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to claim author slot: %w", err)
	}
	if !claimed {
		return nil, ErrAlreadySubmitted
	}

	seq, err := r.client.Incr(ctx, sequenceKeyPrefix+op.GameID).Result()
	if err != nil {
		r.client.Del(ctx, guardKey)
		return nil, fmt.Errorf("failed to assign order index: %w", err)
	}

	stored := *op
	stored.OrderIndex = int(seq) - 1

	opinionJSON, err := json.Marshal(&stored)
	if err != nil {
		r.client.Del(ctx, guardKey)
		return nil, fmt.Errorf("failed to marshal opinion: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, opinionKeyPrefix+stored.ID, opinionJSON, 0)
	pipe.ZAdd(ctx, gameOpinionsKeyPrefix+stored.GameID, redis.Z{
		Score:  float64(stored.OrderIndex),
		Member: stored.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		r.client.Del(ctx, guardKey)
		return nil, fmt.Errorf("failed to save opinion: %w", err)
	}

	return &CreateOpinionOutput{Opinion: &stored}, nil
}

// GetOpinionsForGame retrieves all opinions of a game from Redis, in
// submission order.
func (r *redisRepository) GetOpinionsForGame(ctx context.Context, input *GetOpinionsForGameInput) (*GetOpinionsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	opinionIDs, err := r.client.ZRange(ctx, gameOpinionsKeyPrefix+input.GameID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get opinion IDs for game: %w", err)
	}

	if len(opinionIDs) == 0 {
		return &GetOpinionsForGameOutput{
			Opinions: []*models.Opinion{},
		}, nil
	}

	pipe := r.client.Pipeline()
	opinionCommands := make([]*redis.StringCmd, len(opinionIDs))
	for i, opinionID := range opinionIDs {
		opinionCommands[i] = pipe.Get(ctx, opinionKeyPrefix+opinionID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get opinions: %w", err)
	}

	opinions := make([]*models.Opinion, 0, len(opinionIDs))
	for i, cmd := range opinionCommands {
		opinionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get opinion %s: %w", opinionIDs[i], err)
		}

		var op models.Opinion
		if err := json.Unmarshal([]byte(opinionJSON), &op); err != nil {
			return nil, fmt.Errorf("failed to unmarshal opinion %s: %w", opinionIDs[i], err)
		}

		opinions = append(opinions, &op)
	}

	return &GetOpinionsForGameOutput{
		Opinions: opinions,
	}, nil
}

// DeleteOpinionsForGame removes every opinion in a game from Redis
func (r *redisRepository) DeleteOpinionsForGame(ctx context.Context, input *DeleteOpinionsForGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	out, err := r.GetOpinionsForGame(ctx, &GetOpinionsForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	for _, op := range out.Opinions {
		pipe.Del(ctx, opinionKeyPrefix+op.ID)
		pipe.Del(ctx, authorGuardKeyPrefix+op.GameID+":"+op.PlayerID)
	}
	pipe.Del(ctx, gameOpinionsKeyPrefix+input.GameID)
	pipe.Del(ctx, sequenceKeyPrefix+input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete opinions: %w", err)
	}

	return nil
}
