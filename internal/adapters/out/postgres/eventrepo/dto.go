// Package eventrepo persists place-order events in a transactional outbox.
// Events are written in the same database transaction as the business
// operation that produced them and relayed to the broker afterwards, so an
// order is never acknowledged without its events being durably queued.
package eventrepo

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// ErrUnknownEventType is returned for an event outside the closed
// PlaceOrderEvent set. Unreachable as long as the set stays closed.
var ErrUnknownEventType = errors.New("unknown event type")

// EventDTO represents one outbox row. Position is assigned by the database
// and preserves insertion order; publication order follows it.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position    int64     `gorm:"autoIncrement;uniqueIndex"`
	OrderID     string    `gorm:"size:50;index"`
	Name        string    `gorm:"size:100"`
	Payload     []byte    `gorm:"type:jsonb"`
	OccurredAt  time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox entries.
// Overrides GORM's default naming convention to use "outbox_events".
func (EventDTO) TableName() string {
	return "outbox_events"
}

type addressPayload struct {
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city"`
	ZipCode      string  `json:"zipCode"`
}

type customerInfoPayload struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

type pricedLinePayload struct {
	OrderLineID  string          `json:"orderLineId"`
	ProductCode  string          `json:"productCode"`
	Quantity     int             `json:"quantity"`
	QuantityUnit string          `json:"quantityUnit"`
	LinePrice    decimal.Decimal `json:"linePrice"`
}

type orderPlacedPayload struct {
	OrderID         string              `json:"orderId"`
	CustomerInfo    customerInfoPayload `json:"customerInfo"`
	ShippingAddress addressPayload      `json:"shippingAddress"`
	BillingAddress  addressPayload      `json:"billingAddress"`
	AmountToBill    decimal.Decimal     `json:"amountToBill"`
	Lines           []pricedLinePayload `json:"lines"`
}

type billableOrderPlacedPayload struct {
	OrderID        string          `json:"orderId"`
	BillingAddress addressPayload  `json:"billingAddress"`
	AmountToBill   decimal.Decimal `json:"amountToBill"`
}

type acknowledgmentSentPayload struct {
	OrderID      string `json:"orderId"`
	EmailAddress string `json:"emailAddress"`
}

func addressToPayload(a order.Address) addressPayload {
	var line2 *string
	if v := a.AddressLine2(); v != nil {
		s := v.Value()
		line2 = &s
	}

	return addressPayload{
		AddressLine1: a.AddressLine1().Value(),
		AddressLine2: line2,
		City:         a.City().Value(),
		ZipCode:      a.ZipCode().Value(),
	}
}

func customerInfoToPayload(c order.CustomerInfo) customerInfoPayload {
	return customerInfoPayload{
		FirstName:    c.FirstName().Value(),
		LastName:     c.LastName().Value(),
		EmailAddress: c.Email().Value(),
	}
}

// fromDomain converts one domain event to its outbox representation. The
// switch is exhaustive over the closed event set.
func fromDomain(event order.PlaceOrderEvent, occurredAt time.Time) (EventDTO, error) {
	var payload any

	switch e := event.(type) {
	case order.OrderPlaced:
		po := e.PricedOrder()
		lines := make([]pricedLinePayload, 0, len(po.Lines()))
		for _, line := range po.Lines() {
			lines = append(lines, pricedLinePayload{
				OrderLineID:  line.ID().Value(),
				ProductCode:  line.ProductCode().Value(),
				Quantity:     line.Quantity().Value(),
				QuantityUnit: line.Quantity().Unit().String(),
				LinePrice:    line.LinePrice(),
			})
		}
		payload = orderPlacedPayload{
			OrderID:         po.ID().Value(),
			CustomerInfo:    customerInfoToPayload(po.CustomerInfo()),
			ShippingAddress: addressToPayload(po.ShippingAddress()),
			BillingAddress:  addressToPayload(po.BillingAddress()),
			AmountToBill:    po.AmountToBill(),
			Lines:           lines,
		}
	case order.BillableOrderPlaced:
		payload = billableOrderPlacedPayload{
			OrderID:        e.OrderID().Value(),
			BillingAddress: addressToPayload(e.BillingAddress()),
			AmountToBill:   e.AmountToBill(),
		}
	case order.AcknowledgmentSent:
		payload = acknowledgmentSentPayload{
			OrderID:      e.OrderID().Value(),
			EmailAddress: e.Email().Value(),
		}
	default:
		return EventDTO{}, ErrUnknownEventType
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return EventDTO{}, err
	}

	return EventDTO{
		ID:         uuid.New(),
		OrderID:    event.OrderID().Value(),
		Name:       event.EventName(),
		Payload:    raw,
		OccurredAt: occurredAt,
	}, nil
}

// toPort converts an outbox row to the transport-facing representation.
func toPort(dto EventDTO) ports.OutboxEvent {
	return ports.OutboxEvent{
		ID:         dto.ID,
		OrderID:    dto.OrderID,
		Name:       dto.Name,
		Payload:    dto.Payload,
		OccurredAt: dto.OccurredAt,
	}
}
