package ports

import "context"

// EventPublisher hands an outbox event to the downstream transport.
// Ownership of the event transfers to the publisher; the core does not
// retain it.
type EventPublisher interface {
	Publish(ctx context.Context, event OutboxEvent) error
}
