package commands

import (
	"errors"

	"ordertaking/internal/pkg/guard"
)

var (
	ErrPublishEventsCommandIsNotConstructed = errors.New(
		"PublishEventsCommand must be created via NewPublishEventsCommand constructor",
	)
	ErrBatchSizeIsInvalid = errors.New("batch size must be greater than 0")
)

// PublishEventsCommand requests publication of a batch of pending outbox
// events to the message broker.
type PublishEventsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewPublishEventsCommand creates a command to publish at most batchSize
// pending events. Returns ErrBatchSizeIsInvalid for a non-positive size.
func NewPublishEventsCommand(batchSize int) (PublishEventsCommand, error) {
	if batchSize <= 0 {
		return PublishEventsCommand{}, ErrBatchSizeIsInvalid
	}

	return PublishEventsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPublishEventsCommandIsNotConstructed if validation fails.
func (c PublishEventsCommand) Validate() error {
	return c.guard.Validate(ErrPublishEventsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of events to publish in one run.
func (c PublishEventsCommand) BatchSize() int {
	return c.batchSize
}
