// Package queries contains read-only operations over the persistence layer.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the domain
// model.
package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"ordertaking/internal/pkg/guard"
)

var (
	ErrGetUnpublishedEventsQueryIsNotConstructed = errors.New(
		"GetUnpublishedEventsQuery must be created via NewGetUnpublishedEventsQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// GetUnpublishedEventsQuery retrieves outbox events that have not been
// published yet, oldest first. Used by the monitoring endpoint to inspect
// the publication backlog.
type GetUnpublishedEventsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetUnpublishedEventsQuery creates a query for at most limit pending
// events. Returns ErrLimitIsInvalid for a non-positive limit.
func NewGetUnpublishedEventsQuery(limit int) (GetUnpublishedEventsQuery, error) {
	if limit <= 0 {
		return GetUnpublishedEventsQuery{}, ErrLimitIsInvalid
	}

	return GetUnpublishedEventsQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnpublishedEventsQueryIsNotConstructed if validation fails.
func (q GetUnpublishedEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnpublishedEventsQueryIsNotConstructed)
}

// Limit returns the maximum number of events to retrieve.
func (q GetUnpublishedEventsQuery) Limit() int {
	return q.limit
}

// GetUnpublishedEventsQueryResponse represents one pending outbox entry.
type GetUnpublishedEventsQueryResponse struct {
	ID         uuid.UUID
	OrderID    string
	Name       string
	Payload    []byte
	OccurredAt time.Time
}
