package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUnpublishedEventsQueryHandler reads the pending part of the event outbox.
// Results come back in insertion order, which preserves the per-order event
// sequence produced by the workflow.
//
// Example:
//
//	handler := NewGetUnpublishedEventsQueryHandler(db)
//	query, _ := NewGetUnpublishedEventsQuery(100)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d events awaiting publication\n", len(pending))
type GetUnpublishedEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnpublishedEventsQueryHandler creates a handler for outbox backlog queries.
// Requires a GORM database connection for query execution.
func NewGetUnpublishedEventsQueryHandler(db *gorm.DB) GetUnpublishedEventsQueryHandler {
	return GetUnpublishedEventsQueryHandler{db: db}
}

// Handle executes the query and returns at most query.Limit() pending events.
func (h GetUnpublishedEventsQueryHandler) Handle(
	ctx context.Context,
	query GetUnpublishedEventsQuery,
) ([]GetUnpublishedEventsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetUnpublishedEventsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			name,
			payload,
			occurred_at
		FROM outbox_events
		WHERE published_at IS NULL
		ORDER BY position
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetUnpublishedEventsQueryResponse

		err = rows.Scan(
			&event.ID,
			&event.OrderID,
			&event.Name,
			&event.Payload,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
