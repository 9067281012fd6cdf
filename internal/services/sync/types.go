package sync

import (
	"github.com/redis/go-redis/v9"

	"github.com/frkandris/opinions/internal/models"
)

// EntityType identifies which shared entity an event is about
type EntityType string

const (
	// EntityGame is the game record itself
	EntityGame EntityType = "game"

	// EntityPlayer is a player record
	EntityPlayer EntityType = "player"

	// EntityOpinion is an opinion record
	EntityOpinion EntityType = "opinion"

	// EntityVote is a vote record
	EntityVote EntityType = "vote"
)

// EventType identifies what happened to the entity
type EventType string

const (
	// EventInsert indicates a new entity was committed
	EventInsert EventType = "insert"

	// EventUpdate indicates an existing entity was overwritten
	EventUpdate EventType = "update"

	// EventDelete indicates an entity was removed
	EventDelete EventType = "delete"
)

// Event is one change to a shared entity, delivered to every participant
// subscribed to the owning game. Exactly one of the entity payload fields
// is set, matching Entity; for deletes only EntityID is guaranteed.
type Event struct {
	// GameID scopes the event to one game's feed
	GameID string `json:"game_id"`

	// Entity is the entity type the event refers to
	Entity EntityType `json:"entity"`

	// Type is what happened to the entity
	Type EventType `json:"type"`

	// EntityID is the ID of the affected entity
	EntityID string `json:"entity_id"`

	// Game is the payload for game events
	Game *models.Game `json:"game,omitempty"`

	// Player is the payload for player events
	Player *models.Player `json:"player,omitempty"`

	// Opinion is the payload for opinion events
	Opinion *models.Opinion `json:"opinion,omitempty"`

	// Vote is the payload for vote events
	Vote *models.Vote `json:"vote,omitempty"`
}

// Config holds configuration for the sync service
type Config struct {
	// RedisClient carries the pub/sub connection
	RedisClient *redis.Client
}

// PublishInput contains parameters for publishing an event
type PublishInput struct {
	Event *Event
}

// SubscribeInput contains parameters for subscribing to a game's feed
type SubscribeInput struct {
	GameID string
}
