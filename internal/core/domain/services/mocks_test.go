package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"ordertaking/internal/core/domain/model/order"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Exists(ctx context.Context, rawCode string) (bool, error) {
	args := m.Called(ctx, rawCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductCatalog) UnitPrice(ctx context.Context, code order.ProductCode) (decimal.Decimal, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type MockAddressDirectory struct{ mock.Mock }

func (m *MockAddressDirectory) Exists(ctx context.Context, raw order.UnvalidatedAddress) (bool, error) {
	args := m.Called(ctx, raw)
	return args.Bool(0), args.Error(1)
}

type MockLetterRenderer struct{ mock.Mock }

func (m *MockLetterRenderer) Render(pricedOrder order.PricedOrder) order.HTMLLetter {
	args := m.Called(pricedOrder)
	return args.Get(0).(order.HTMLLetter)
}

type MockAcknowledgmentSender struct{ mock.Mock }

func (m *MockAcknowledgmentSender) Send(ack order.Acknowledgment) order.SendResult {
	args := m.Called(ack)
	return args.Get(0).(order.SendResult)
}

func validRawAddress() order.UnvalidatedAddress {
	return order.UnvalidatedAddress{
		AddressLine1: "1 Main St",
		City:         "Springfield",
		ZipCode:      "12345",
	}
}

func validRawOrder() order.UnvalidatedOrder {
	return order.UnvalidatedOrder{
		OrderID: "order-001",
		CustomerInfo: order.UnvalidatedCustomerInfo{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			EmailAddress: "ada@example.com",
		},
		ShippingAddress: validRawAddress(),
		BillingAddress:  validRawAddress(),
		Lines: []order.UnvalidatedOrderLine{
			{OrderLineID: "line-1", ProductCode: "W1234", Quantity: "5"},
		},
	}
}

func mustPricedOrder(raw order.UnvalidatedOrder, linePrices ...decimal.Decimal) order.PricedOrder {
	id, _ := order.NewOrderID(raw.OrderID)
	customerInfo, _ := order.NewCustomerInfo(raw.CustomerInfo)
	shipping, _ := order.NewAddress(raw.ShippingAddress)
	billing, _ := order.NewAddress(raw.BillingAddress)

	lines := make([]order.ValidatedOrderLine, 0, len(raw.Lines))
	for _, rawLine := range raw.Lines {
		lineID, _ := order.NewOrderLineID(rawLine.OrderLineID)
		code, _ := order.NewProductCode(rawLine.ProductCode)
		qty, _ := order.NewOrderQuantity(code, rawLine.Quantity)
		line, _ := order.NewValidatedOrderLine(lineID, code, qty)
		lines = append(lines, line)
	}
	validated, _ := order.NewValidatedOrder(id, customerInfo, shipping, billing, lines)

	pricedLines := make([]order.PricedOrderLine, 0, len(lines))
	for i, line := range lines {
		pricedLine, _ := order.NewPricedOrderLine(line, linePrices[i])
		pricedLines = append(pricedLines, pricedLine)
	}
	priced, _ := order.NewPricedOrder(validated, pricedLines)
	return priced
}
