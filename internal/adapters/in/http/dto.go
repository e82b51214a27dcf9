package http

import (
	"time"

	"ordertaking/internal/core/domain/model/order"
)

// Error is the common error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomerInfoRequest carries raw customer fields as received from the caller.
type CustomerInfoRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

// AddressRequest carries raw address fields as received from the caller.
type AddressRequest struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zipCode"`
}

// OrderLineRequest carries one raw order line.
type OrderLineRequest struct {
	OrderLineID string `json:"orderLineId"`
	ProductCode string `json:"productCode"`
	Quantity    string `json:"quantity"`
}

// PlaceOrderRequest is the raw order as submitted. All fields are plain
// strings; validation happens inside the workflow.
type PlaceOrderRequest struct {
	OrderID         string              `json:"orderId"`
	CustomerInfo    CustomerInfoRequest `json:"customerInfo"`
	ShippingAddress AddressRequest      `json:"shippingAddress"`
	BillingAddress  AddressRequest      `json:"billingAddress"`
	Lines           []OrderLineRequest  `json:"lines"`
}

func (r PlaceOrderRequest) toUnvalidatedOrder() order.UnvalidatedOrder {
	lines := make([]order.UnvalidatedOrderLine, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, order.UnvalidatedOrderLine{
			OrderLineID: line.OrderLineID,
			ProductCode: line.ProductCode,
			Quantity:    line.Quantity,
		})
	}

	return order.UnvalidatedOrder{
		OrderID: r.OrderID,
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    r.CustomerInfo.FirstName,
			LastName:     r.CustomerInfo.LastName,
			EmailAddress: r.CustomerInfo.EmailAddress,
		},
		ShippingAddress: order.UnvalidatedAddress{
			AddressLine1: r.ShippingAddress.AddressLine1,
			AddressLine2: r.ShippingAddress.AddressLine2,
			City:         r.ShippingAddress.City,
			ZipCode:      r.ShippingAddress.ZipCode,
		},
		BillingAddress: order.UnvalidatedAddress{
			AddressLine1: r.BillingAddress.AddressLine1,
			AddressLine2: r.BillingAddress.AddressLine2,
			City:         r.BillingAddress.City,
			ZipCode:      r.BillingAddress.ZipCode,
		},
		Lines: lines,
	}
}

// EventSummary describes one emitted event in the placement response.
type EventSummary struct {
	Name         string  `json:"name"`
	AmountToBill *string `json:"amountToBill,omitempty"`
	EmailAddress *string `json:"emailAddress,omitempty"`
}

// PlaceOrderResponse acknowledges a placed order with its emitted events.
type PlaceOrderResponse struct {
	OrderID string         `json:"orderId"`
	Events  []EventSummary `json:"events"`
}

func toEventSummaries(events []order.PlaceOrderEvent) []EventSummary {
	summaries := make([]EventSummary, 0, len(events))
	for _, event := range events {
		summary := EventSummary{Name: event.EventName()}

		switch e := event.(type) {
		case order.BillableOrderPlaced:
			amount := e.AmountToBill().String()
			summary.AmountToBill = &amount
		case order.AcknowledgmentSent:
			email := e.Email().Value()
			summary.EmailAddress = &email
		case order.OrderPlaced:
		}

		summaries = append(summaries, summary)
	}

	return summaries
}

// UnpublishedEventResponse is one outbox backlog entry.
type UnpublishedEventResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurredAt"`
}
