package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

const (
	// gameEventsChannelPrefix is the pub/sub channel per game
	gameEventsChannelPrefix = "game_events:"

	// subscriptionBuffer absorbs short bursts so a slow reader does not
	// stall the pub/sub receive loop
	subscriptionBuffer = 32
)

// service implements the Service interface using Redis pub/sub
type service struct {
	client *redis.Client
}

// New creates a new Redis-backed sync service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	return &service{
		client: cfg.RedisClient,
	}, nil
}

// Publish delivers an event to every subscriber of the event's game
func (s *service) Publish(ctx context.Context, input *PublishInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	if input.Event.GameID == "" {
		return errors.New("event game ID cannot be empty")
	}

	eventJSON, err := json.Marshal(input.Event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	channel := gameEventsChannelPrefix + input.Event.GameID
	if err := s.client.Publish(ctx, channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Subscription is one participant's live feed of a game's events
type Subscription struct {
	events chan *Event
	pubsub *redis.PubSub
}

// Events returns the event channel. It is closed when the subscription ends.
func (s *Subscription) Events() <-chan *Event {
	return s.events
}

// Close ends the subscription and closes the event channel
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

// Subscribe opens a feed of events for one game. Events arrive in
// publish order; malformed payloads are logged and skipped.
func (s *service) Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	pubsub := s.client.Subscribe(ctx, gameEventsChannelPrefix+input.GameID)

	// Force the subscription to be established before returning, so a
	// caller who publishes right after subscribing cannot miss events.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to game events: %w", err)
	}

	sub := &Subscription{
		events: make(chan *Event, subscriptionBuffer),
		pubsub: pubsub,
	}

	go func() {
		defer close(sub.events)

		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				pubsub.Close()
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}

				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("sync: dropping malformed event on %s: %v", msg.Channel, err)
					continue
				}

				select {
				case sub.events <- &event:
				case <-ctx.Done():
					pubsub.Close()
					return
				}
			}
		}
	}()

	return sub, nil
}
