package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"ordertaking/internal/core/application/usecases/commands"
)

// relayBatchSize bounds how many outbox events one relay run publishes.
const relayBatchSize = 100

// EventRelayJob manages the scheduled publication of outbox events.
// Runs every second to drain pending events to the message broker.
type EventRelayJob struct {
	handler commands.PublishEventsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewEventRelayJob creates a new job for relaying outbox events.
// Uses PublishEventsCommandHandler to publish pending events every second.
func NewEventRelayJob(handler commands.PublishEventsCommandHandler, logger *slog.Logger) *EventRelayJob {
	return &EventRelayJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "event_relay_job"),
	}
}

// Start begins the event relay job to run every second.
func (j *EventRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewPublishEventsCommand(relayBatchSize)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Event relay job misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// An empty outbox is the normal idle state, not a failure.
			if !errors.Is(handleErr, commands.ErrNoUnpublishedEventsFound) {
				j.logger.ErrorContext(ctx, "Event relay job failed", "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Event relay job started (running every second)")
	return nil
}

// Stop stops the event relay job.
func (j *EventRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Event relay job stopped")
}
