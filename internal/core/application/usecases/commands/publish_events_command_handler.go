package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ordertaking/internal/core/ports"
)

// ErrNoUnpublishedEventsFound signals an empty outbox. It is an expected
// business scenario, not a failure; callers typically skip logging it.
var ErrNoUnpublishedEventsFound = errors.New("no unpublished events found")

// PublishEventsCommandHandler drains a batch of pending events from the
// outbox, publishes them to the broker, and marks the published ones.
// Publication happens in stored order, so the per-order event sequence
// survives the trip through the outbox.
type PublishEventsCommandHandler struct {
	uowFactory EventUoWFactory
	publisher  ports.EventPublisher
}

// NewPublishEventsCommandHandler creates a handler for outbox publication.
// Requires an EventUoWFactory for marking events and an EventPublisher for
// the broker side.
func NewPublishEventsCommandHandler(
	uowFactory EventUoWFactory, publisher ports.EventPublisher,
) PublishEventsCommandHandler {
	return PublishEventsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes one batch. A broker failure mid-batch stops publication;
// events already handed to the broker are still marked, so the worst case is
// a retried, not a lost, event.
func (h *PublishEventsCommandHandler) Handle(ctx context.Context, cmd PublishEventsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EventRepository()
	events, err := repo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return ErrNoUnpublishedEventsFound
	}

	publishedIDs := make([]uuid.UUID, 0, len(events))
	var publishErr error
	for _, event := range events {
		if publishErr = h.publisher.Publish(ctx, event); publishErr != nil {
			break
		}
		publishedIDs = append(publishedIDs, event.ID)
	}

	if len(publishedIDs) > 0 {
		if err = repo.MarkPublished(ctx, publishedIDs); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
	}

	return publishErr
}
