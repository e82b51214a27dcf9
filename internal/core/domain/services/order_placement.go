package services

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// OrderPlacementService composes the place-order pipeline:
// validate -> price -> acknowledge -> assemble events, strictly in sequence.
// Any failure from validation or pricing propagates unchanged and aborts the
// pipeline; no events are emitted for a failed order.
//
// Example usage:
//
//	placement := NewOrderPlacementService(catalog, addresses, renderer, sender)
//	events, err := placement.PlaceOrder(ctx, rawOrder)
//	if err != nil {
//	    // Validation or pricing failed; no events were produced
//	    return err
//	}
//	// Publish events downstream
type OrderPlacementService struct {
	validation     OrderValidationService
	pricing        OrderPricingService
	acknowledgment OrderAcknowledgmentService
}

// NewOrderPlacementService wires the three stages from the workflow's
// collaborators. Collaborators are injected once at construction; the
// resulting service is a pure function of its input plus the collaborator
// results it is given.
func NewOrderPlacementService(
	catalog ports.ProductCatalog,
	addresses ports.AddressDirectory,
	renderer ports.LetterRenderer,
	sender ports.AcknowledgmentSender,
) OrderPlacementService {
	return OrderPlacementService{
		validation:     NewOrderValidationService(catalog, addresses),
		pricing:        NewOrderPricingService(catalog),
		acknowledgment: NewOrderAcknowledgmentService(renderer, sender),
	}
}

// PlaceOrder runs the full pipeline on one unvalidated order and returns the
// ordered list of domain events to publish.
func (s OrderPlacementService) PlaceOrder(
	ctx context.Context, raw order.UnvalidatedOrder,
) ([]order.PlaceOrderEvent, error) {
	validated, err := s.validation.Validate(ctx, raw)
	if err != nil {
		return nil, err
	}

	priced, err := s.pricing.Price(ctx, validated)
	if err != nil {
		return nil, err
	}

	ackSent, err := s.acknowledgment.Acknowledge(priced)
	if err != nil {
		return nil, err
	}

	return order.CreateEvents(priced, ackSent)
}
