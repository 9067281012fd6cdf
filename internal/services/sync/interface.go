package sync

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_publisher.go github.com/frkandris/opinions/internal/services/sync Publisher

// Publisher is the write side of the synchronization feed. The game
// orchestrator publishes one event after every successful commit.
type Publisher interface {
	// Publish delivers an event to every subscriber of the event's game
	Publish(ctx context.Context, input *PublishInput) error
}

// Service is the full synchronization feed: publish plus per-game
// subscriptions delivering events in arrival order.
type Service interface {
	Publisher

	// Subscribe opens a feed of events for one game. The subscription is
	// closed when ctx is cancelled or Close is called.
	Subscribe(ctx context.Context, input *SubscribeInput) (*Subscription, error)
}
