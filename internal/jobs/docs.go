// Package jobs provides scheduled background tasks for the order-taking
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The single job here, EventRelayJob, runs every second and relays pending
// outbox events to the message broker via PublishEventsCommandHandler. The
// relay publishes already-emitted events; it never re-runs the place-order
// workflow itself.
//
// An empty outbox (commands.ErrNoUnpublishedEventsFound) is treated as the
// idle state and not logged; every other failure is.
package jobs
