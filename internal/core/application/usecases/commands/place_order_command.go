package commands

import (
	"errors"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to run the place-order workflow on
// one raw order. The raw order is carried as-is: field validation is the
// workflow's job, so the command never rejects input on content.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(rawOrder)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewPlaceOrderCommandHandler(placer, uowFactory)
//	events, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	rawOrder order.UnvalidatedOrder

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command wrapping one unvalidated order.
func NewPlaceOrderCommand(rawOrder order.UnvalidatedOrder) (PlaceOrderCommand, error) {
	return PlaceOrderCommand{
		rawOrder: rawOrder,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// RawOrder returns the unvalidated order the workflow should process.
func (c PlaceOrderCommand) RawOrder() order.UnvalidatedOrder {
	return c.rawOrder
}
