package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/frkandris/opinions/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix = "game:"
	codeKeyPrefix = "game_code:"
)

// ErrGameNotFound is returned when a game is not found
var ErrGameNotFound = errors.New("game not found")

// ErrCodeTaken is returned when a join code is already claimed by another game
var ErrCodeTaken = errors.New("join code already taken")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
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

// CreateGame persists a new game. The join code is claimed atomically so
// two games can never share a code; a collision surfaces as ErrCodeTaken
// and the caller retries with a fresh code.
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	if input.Game.ID == "" || input.Game.Code == "" {
		return errors.New("game ID and code cannot be empty")
	}

	codeKey := codeKeyPrefix + normalizeCode(input.Game.Code)
	claimed, err := r.client.SetNX(ctx, codeKey, input.Game.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to claim join code: %w", err)
	}
	if !claimed {
		return ErrCodeTaken
	}

	if err := r.SaveGame(ctx, &SaveGameInput{Game: input.Game}); err != nil {
		// Release the code so a retry is not blocked by a half-created game.
		r.client.Del(ctx, codeKey)
		return err
	}

	return nil
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	gameKey := gameKeyPrefix + input.Game.ID
	if err := r.client.Set(ctx, gameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := gameKeyPrefix + input.GameID
	gameJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// GetGameByCode retrieves a game by its join code from Redis
func (r *redisRepository) GetGameByCode(ctx context.Context, input *GetGameByCodeInput) (*models.Game, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and code cannot be empty")
	}

	codeKey := codeKeyPrefix + normalizeCode(input.Code)
	gameID, err := r.client.Get(ctx, codeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game ID for code: %w", err)
	}

	return r.GetGame(ctx, &GetGameInput{
		GameID: gameID,
	})
}

// DeleteGame removes a game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	// Get the game first to release its join code
	game, err := r.GetGame(ctx, &GetGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, gameKeyPrefix+input.GameID)
	if game.Code != "" {
		pipe.Del(ctx, codeKeyPrefix+normalizeCode(game.Code))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// normalizeCode makes join codes case-insensitive lookup keys
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
