package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ordertaking/internal/core/domain/model/order"
)

// OutboxEvent is the persisted form of an emitted domain event, as handed to
// publishers. The payload is the event's JSON projection.
type OutboxEvent struct {
	ID         uuid.UUID
	OrderID    string
	Name       string
	Payload    []byte
	OccurredAt time.Time
}

// EventRepository persists emitted place-order events in an outbox so they
// can be published reliably after the workflow completes.
type EventRepository interface {
	// Add records the events emitted for one workflow invocation, preserving
	// their order. Each event is stored unpublished with a fresh identifier.
	Add(ctx context.Context, events []order.PlaceOrderEvent) error

	// GetUnpublished retrieves up to limit events that have not been handed
	// to a publisher yet, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxEvent, error)

	// MarkPublished flags the given events as handed to a publisher.
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}
