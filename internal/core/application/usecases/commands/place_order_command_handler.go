package commands

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler runs the place-order workflow and persists the
// resulting events to the outbox in a single transaction. The events are
// returned to the caller so the acknowledging response can summarize them.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(placementService, uowFactory)
//	cmd, _ := NewPlaceOrderCommand(rawOrder)
//
//	events, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order was not placed: %w", err)
//	}
//	// Events are durably queued for publication
type PlaceOrderCommandHandler struct {
	placer     OrderPlacer
	uowFactory EventUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires the workflow service and an EventUoWFactory for transactional
// outbox writes.
func NewPlaceOrderCommandHandler(placer OrderPlacer, uowFactory EventUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		placer:     placer,
		uowFactory: uowFactory,
	}
}

// Handle processes the place-order command. A workflow failure leaves the
// outbox untouched; a persisted order has all of its events stored or none.
func (h *PlaceOrderCommandHandler) Handle(
	ctx context.Context, cmd PlaceOrderCommand,
) ([]order.PlaceOrderEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	events, err := h.placer.PlaceOrder(ctx, cmd.RawOrder())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EventRepository().Add(ctx, events); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return events, nil
}
