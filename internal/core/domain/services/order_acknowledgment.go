package services

import (
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// OrderAcknowledgmentService builds the customer acknowledgment for a priced
// order and attempts to send it. A failed send is not an error: it only
// means no acknowledgment event will be emitted for the order.
type OrderAcknowledgmentService struct {
	renderer ports.LetterRenderer
	sender   ports.AcknowledgmentSender
}

// NewOrderAcknowledgmentService creates the acknowledgment stage with its
// letter renderer and sender.
func NewOrderAcknowledgmentService(
	renderer ports.LetterRenderer, sender ports.AcknowledgmentSender,
) OrderAcknowledgmentService {
	return OrderAcknowledgmentService{
		renderer: renderer,
		sender:   sender,
	}
}

// Acknowledge renders the letter, packages it with the customer's email, and
// invokes the sender.
//
// Returns:
//   - *order.AcknowledgmentSent: The sent record if the sender reported Sent,
//     nil if it reported NotSent
//   - error: Only if the priced order or the assembled acknowledgment is
//     invalid; a NotSent result is not an error
func (s OrderAcknowledgmentService) Acknowledge(
	pricedOrder order.PricedOrder,
) (*order.AcknowledgmentSent, error) {
	if err := pricedOrder.Validate(); err != nil {
		return nil, err
	}

	letter := s.renderer.Render(pricedOrder)

	ack, err := order.NewAcknowledgment(pricedOrder.CustomerInfo().Email(), letter)
	if err != nil {
		return nil, err
	}

	if s.sender.Send(ack) != order.Sent {
		return nil, nil //nolint:nilnil //absence of a sent record is a normal outcome
	}

	sent, err := order.NewAcknowledgmentSent(pricedOrder.ID(), pricedOrder.CustomerInfo().Email())
	if err != nil {
		return nil, err
	}

	return &sent, nil
}
