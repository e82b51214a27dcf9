package ports

import (
	"ordertaking/internal/core/domain/model/order"
)

// LetterRenderer renders the customer acknowledgment letter for a priced
// order. Rendering is pure; no failure is modeled.
type LetterRenderer interface {
	Render(pricedOrder order.PricedOrder) order.HTMLLetter
}

// AcknowledgmentSender attempts to deliver an acknowledgment to the customer.
// It reports a result only and never fails: NotSent is a normal branch, not
// an error.
type AcknowledgmentSender interface {
	Send(ack order.Acknowledgment) order.SendResult
}
