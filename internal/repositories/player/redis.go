package player

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
	playerKeyPrefix      = "player:"
	gamePlayersKeyPrefix = "game_players:" // list, preserves join order
	gameNamesKeyPrefix   = "game_names:"   // hash of lowercased name -> player ID
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// ErrNameTaken is returned when a display name is already used in the game
var ErrNameTaken = errors.New("name already taken in this game")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// CreatePlayer persists a player to Redis. The lowercased name is claimed
// first via HSETNX so two joins with the same name race safely; the loser
// gets ErrNameTaken.
func (r *redisRepository) CreatePlayer(ctx context.Context, input *CreatePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.ID == "" || player.GameID == "" || player.Name == "" {
		return errors.New("player ID, game ID and name cannot be empty")
	}

	namesKey := gameNamesKeyPrefix + player.GameID
	claimed, err := r.client.HSetNX(ctx, namesKey, models.NameKey(player.Name), player.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to claim player name: %w", err)
	}
	if !claimed {
		return ErrNameTaken
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		r.client.HDel(ctx, namesKey, models.NameKey(player.Name))
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, playerKeyPrefix+player.ID, playerJSON, 0)
	pipe.RPush(ctx, gamePlayersKeyPrefix+player.GameID, player.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		// Release the name claim so a retry is possible.
		r.client.HDel(ctx, namesKey, models.NameKey(player.Name))
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKeyPrefix+input.PlayerID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayersInGame retrieves all players in a game from Redis. The backing
// structure is a list so join order survives the round trip.
func (r *redisRepository) GetPlayersInGame(ctx context.Context, input *GetPlayersInGameInput) (*GetPlayersInGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	playerIDs, err := r.client.LRange(ctx, gamePlayersKeyPrefix+input.GameID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for game: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetPlayersInGameOutput{
			Players: []*models.Player{},
		}, nil
	}

	pipe := r.client.Pipeline()
	playerCommands := make([]*redis.StringCmd, len(playerIDs))
	for i, playerID := range playerIDs {
		playerCommands[i] = pipe.Get(ctx, playerKeyPrefix+playerID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player was deleted between getting the IDs and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerIDs[i], err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerIDs[i], err)
		}

		players = append(players, &player)
	}

	return &GetPlayersInGameOutput{
		Players: players,
	}, nil
}

// DeletePlayersInGame removes every player in a game from Redis
func (r *redisRepository) DeletePlayersInGame(ctx context.Context, input *DeletePlayersInGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	playerIDs, err := r.client.LRange(ctx, gamePlayersKeyPrefix+input.GameID, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get player IDs for game: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, playerID := range playerIDs {
		pipe.Del(ctx, playerKeyPrefix+playerID)
	}
	pipe.Del(ctx, gamePlayersKeyPrefix+input.GameID)
	pipe.Del(ctx, gameNamesKeyPrefix+input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete players: %w", err)
	}

	return nil
}
