package order

import (
	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/kernel"
)

// Event names as they appear on the wire and in the outbox.
const (
	EventNameOrderPlaced         = "OrderPlaced"
	EventNameBillableOrderPlaced = "BillableOrderPlaced"
	EventNameAcknowledgmentSent  = "AcknowledgmentSent"
)

// PlaceOrderEvent is the closed set of domain events produced by the
// place-order workflow. Events are derived, read-only projections of a priced
// order; ownership is transferred to whatever publishes them.
//
// The set is closed by the unexported marker method: only the variants in
// this package implement it, so consumers can switch exhaustively over
// OrderPlaced, BillableOrderPlaced, and AcknowledgmentSent.
type PlaceOrderEvent interface {
	// EventName returns the event's wire name.
	EventName() string

	// OrderID returns the identifier of the order the event is about.
	OrderID() OrderID

	isPlaceOrderEvent()
}

// OrderPlaced announces a successfully validated and priced order. It is
// always the first event emitted for an order.
type OrderPlaced struct {
	pricedOrder PricedOrder
}

// NewOrderPlaced creates an OrderPlaced event from a constructed priced order.
func NewOrderPlaced(pricedOrder PricedOrder) (OrderPlaced, error) {
	if err := pricedOrder.Validate(); err != nil {
		return OrderPlaced{}, err
	}
	return OrderPlaced{pricedOrder: pricedOrder}, nil
}

// PricedOrder returns the full priced order the event projects.
func (e OrderPlaced) PricedOrder() PricedOrder {
	return e.pricedOrder
}

// EventName returns "OrderPlaced".
func (e OrderPlaced) EventName() string {
	return EventNameOrderPlaced
}

// OrderID returns the identifier of the placed order.
func (e OrderPlaced) OrderID() OrderID {
	return e.pricedOrder.ID()
}

func (e OrderPlaced) isPlaceOrderEvent() {}

// BillableOrderPlaced carries the subset of order data needed for downstream
// billing: the order id, the billing address, and the amount to bill.
type BillableOrderPlaced struct {
	orderID        OrderID
	billingAddress Address
	amountToBill   decimal.Decimal
}

// NewBillableOrderPlaced projects the billing facts out of a priced order.
func NewBillableOrderPlaced(pricedOrder PricedOrder) (BillableOrderPlaced, error) {
	if err := pricedOrder.Validate(); err != nil {
		return BillableOrderPlaced{}, err
	}
	return BillableOrderPlaced{
		orderID:        pricedOrder.ID(),
		billingAddress: pricedOrder.BillingAddress(),
		amountToBill:   pricedOrder.AmountToBill(),
	}, nil
}

// BillingAddress returns the address the bill goes to.
func (e BillableOrderPlaced) BillingAddress() Address {
	return e.billingAddress
}

// AmountToBill returns the order total to bill.
func (e BillableOrderPlaced) AmountToBill() decimal.Decimal {
	return e.amountToBill
}

// EventName returns "BillableOrderPlaced".
func (e BillableOrderPlaced) EventName() string {
	return EventNameBillableOrderPlaced
}

// OrderID returns the identifier of the billable order.
func (e BillableOrderPlaced) OrderID() OrderID {
	return e.orderID
}

func (e BillableOrderPlaced) isPlaceOrderEvent() {}

// AcknowledgmentSent records that the customer notification for an order was
// delivered. It exists only if the send attempt reported success.
type AcknowledgmentSent struct {
	orderID OrderID
	email   kernel.EmailAddress
}

// NewAcknowledgmentSent creates an AcknowledgmentSent record for an order and
// the address the acknowledgment went to.
func NewAcknowledgmentSent(orderID OrderID, email kernel.EmailAddress) (AcknowledgmentSent, error) {
	if err := orderID.Validate(); err != nil {
		return AcknowledgmentSent{}, err
	}
	if err := email.Validate(); err != nil {
		return AcknowledgmentSent{}, err
	}
	return AcknowledgmentSent{orderID: orderID, email: email}, nil
}

// Email returns the address the acknowledgment went to.
func (e AcknowledgmentSent) Email() kernel.EmailAddress {
	return e.email
}

// EventName returns "AcknowledgmentSent".
func (e AcknowledgmentSent) EventName() string {
	return EventNameAcknowledgmentSent
}

// OrderID returns the identifier of the acknowledged order.
func (e AcknowledgmentSent) OrderID() OrderID {
	return e.orderID
}

func (e AcknowledgmentSent) isPlaceOrderEvent() {}

// CreateEvents assembles the ordered event list for a priced order and an
// optional acknowledgment-sent record.
//
// The order is deterministic and consumers may rely on it:
//  1. OrderPlaced, always
//  2. BillableOrderPlaced, iff the amount to bill is non-negative (a negative
//     amount suppresses the event; not expected in normal operation since
//     quantities and prices are non-negative)
//  3. AcknowledgmentSent, iff the acknowledgment stage produced a record
func CreateEvents(pricedOrder PricedOrder, ackSent *AcknowledgmentSent) ([]PlaceOrderEvent, error) {
	events := make([]PlaceOrderEvent, 0, 3)

	placed, err := NewOrderPlaced(pricedOrder)
	if err != nil {
		return nil, err
	}
	events = append(events, placed)

	if !pricedOrder.AmountToBill().IsNegative() {
		billable, err := NewBillableOrderPlaced(pricedOrder)
		if err != nil {
			return nil, err
		}
		events = append(events, billable)
	}

	if ackSent != nil {
		events = append(events, *ackSent)
	}

	return events, nil
}
