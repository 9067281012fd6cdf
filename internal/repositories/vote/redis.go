package vote

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
	voteKeyPrefix         = "vote:"
	gameVotesKeyPrefix    = "game_votes:"    // list of vote IDs per game
	opinionVotesKeyPrefix = "opinion_votes:" // hash of voter ID -> vote ID per opinion
)

// ErrVoteNotFound is returned when a vote is not found
var ErrVoteNotFound = errors.New("vote not found")

// ErrAlreadyVoted is returned when the voter already voted on the opinion
var ErrAlreadyVoted = errors.New("vote already cast for this opinion")

// Config holds configuration for the Redis vote repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed vote repository
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

// CreateVote persists a vote to Redis. The (voter, opinion) slot is claimed
// via HSETNX so a double submission races safely; the loser gets
// ErrAlreadyVoted.
func (r *redisRepository) CreateVote(ctx context.Context, input *CreateVoteInput) error {
	if input == nil || input.Vote == nil {
		return errors.New("input and vote cannot be nil")
	}

	v := input.Vote
	if v.ID == "" || v.GameID == "" || v.OpinionID == "" || v.VoterPlayerID == "" {
		return errors.New("vote ID, game ID, opinion ID and voter ID cannot be empty")
	}

	opinionVotesKey := opinionVotesKeyPrefix + v.OpinionID
	claimed, err := r.client.HSetNX(ctx, opinionVotesKey, v.VoterPlayerID, v.ID).Result()
	if err != nil {
		return fmt.Errorf("failed to claim vote slot: %w", err)
	}
	if !claimed {
		return ErrAlreadyVoted
	}

	voteJSON, err := json.Marshal(v)
	if err != nil {
		r.client.HDel(ctx, opinionVotesKey, v.VoterPlayerID)
		return fmt.Errorf("failed to marshal vote: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, voteKeyPrefix+v.ID, voteJSON, 0)
	pipe.RPush(ctx, gameVotesKeyPrefix+v.GameID, v.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		// Release the slot so a retry is possible.
		r.client.HDel(ctx, opinionVotesKey, v.VoterPlayerID)
		return fmt.Errorf("failed to save vote: %w", err)
	}

	return nil
}

// GetVotesForGame retrieves all votes of a game from Redis
func (r *redisRepository) GetVotesForGame(ctx context.Context, input *GetVotesForGameInput) (*GetVotesForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	voteIDs, err := r.client.LRange(ctx, gameVotesKeyPrefix+input.GameID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get vote IDs for game: %w", err)
	}

	if len(voteIDs) == 0 {
		return &GetVotesForGameOutput{
			Votes: []*models.Vote{},
		}, nil
	}

	pipe := r.client.Pipeline()
	voteCommands := make([]*redis.StringCmd, len(voteIDs))
	for i, voteID := range voteIDs {
		voteCommands[i] = pipe.Get(ctx, voteKeyPrefix+voteID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}

	votes := make([]*models.Vote, 0, len(voteIDs))
	for i, cmd := range voteCommands {
		voteJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get vote %s: %w", voteIDs[i], err)
		}

		var v models.Vote
		if err := json.Unmarshal([]byte(voteJSON), &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vote %s: %w", voteIDs[i], err)
		}

		votes = append(votes, &v)
	}

	return &GetVotesForGameOutput{
		Votes: votes,
	}, nil
}

// CountVotesForOpinion returns how many votes exist on an opinion
func (r *redisRepository) CountVotesForOpinion(ctx context.Context, input *CountVotesForOpinionInput) (*CountVotesForOpinionOutput, error) {
	if input == nil || input.OpinionID == "" {
		return nil, errors.New("input and opinion ID cannot be empty")
	}

	count, err := r.client.HLen(ctx, opinionVotesKeyPrefix+input.OpinionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	return &CountVotesForOpinionOutput{
		Count: int(count),
	}, nil
}

// DeleteVotesForGame removes every vote in a game from Redis
func (r *redisRepository) DeleteVotesForGame(ctx context.Context, input *DeleteVotesForGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	out, err := r.GetVotesForGame(ctx, &GetVotesForGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		return err
	}

	opinionIDs := make(map[string]struct{})
	pipe := r.client.Pipeline()
	for _, v := range out.Votes {
		pipe.Del(ctx, voteKeyPrefix+v.ID)
		opinionIDs[v.OpinionID] = struct{}{}
	}
	for opinionID := range opinionIDs {
		pipe.Del(ctx, opinionVotesKeyPrefix+opinionID)
	}
	pipe.Del(ctx, gameVotesKeyPrefix+input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}

	return nil
}
