package order

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

var (
	// ErrValidatedOrderLineIsNotConstructed is returned when attempting to use
	// an improperly initialized ValidatedOrderLine.
	ErrValidatedOrderLineIsNotConstructed = errs.NewValueIsRequiredError(
		"ValidatedOrderLine must be created via NewValidatedOrderLine constructor")

	// ErrValidatedOrderIsNotConstructed is returned when attempting to use an
	// improperly initialized ValidatedOrder.
	ErrValidatedOrderIsNotConstructed = errs.NewValueIsRequiredError(
		"ValidatedOrder must be created via NewValidatedOrder constructor")

	// ErrPricedOrderLineIsNotConstructed is returned when attempting to use an
	// improperly initialized PricedOrderLine.
	ErrPricedOrderLineIsNotConstructed = errs.NewValueIsRequiredError(
		"PricedOrderLine must be created via NewPricedOrderLine constructor")

	// ErrPricedOrderIsNotConstructed is returned when attempting to use an
	// improperly initialized PricedOrder.
	ErrPricedOrderIsNotConstructed = errs.NewValueIsRequiredError(
		"PricedOrder must be created via NewPricedOrder constructor")
)

// UnvalidatedOrderLine is the raw order line shape as received from the
// caller: identifier, product code, and quantity, all as plain strings.
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    string
}

// UnvalidatedOrder is the raw order shape as received from the caller. It is
// the entry shape of the place-order workflow and carries no guarantees.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
}

// ValidatedOrderLine is an order line whose identifier, product code, and
// quantity have all passed validation. It is immutable after construction.
type ValidatedOrderLine struct {
	id          OrderLineID
	productCode ProductCode
	quantity    OrderQuantity
	guard       guard.ConstructorGuard
}

// NewValidatedOrderLine assembles a validated line from its constructed
// components. Each component must have been created via its own constructor.
func NewValidatedOrderLine(
	id OrderLineID, productCode ProductCode, quantity OrderQuantity,
) (ValidatedOrderLine, error) {
	if err := id.Validate(); err != nil {
		return ValidatedOrderLine{}, err
	}
	if err := productCode.Validate(); err != nil {
		return ValidatedOrderLine{}, err
	}
	if err := quantity.Validate(); err != nil {
		return ValidatedOrderLine{}, err
	}

	return ValidatedOrderLine{
		id:          id,
		productCode: productCode,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the line was properly constructed via
// NewValidatedOrderLine.
func (l ValidatedOrderLine) Validate() error {
	return l.guard.Validate(ErrValidatedOrderLineIsNotConstructed)
}

// ID returns the line's identifier.
func (l ValidatedOrderLine) ID() OrderLineID {
	return l.id
}

// ProductCode returns the line's product code.
func (l ValidatedOrderLine) ProductCode() ProductCode {
	return l.productCode
}

// Quantity returns the line's quantity.
func (l ValidatedOrderLine) Quantity() OrderQuantity {
	return l.quantity
}

// ValidatedOrder is the order shape produced by the validation stage. Every
// field has passed its field-level checks and the external existence checks.
// It is immutable; the pricing stage consumes it and produces a new
// PricedOrder.
type ValidatedOrder struct {
	id              OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	lines           []ValidatedOrderLine
	guard           guard.ConstructorGuard
}

// NewValidatedOrder assembles a validated order from its constructed
// components. Every component must have been created via its own
// constructor; an order with zero lines is allowed.
func NewValidatedOrder(
	id OrderID,
	customerInfo CustomerInfo,
	shippingAddress Address,
	billingAddress Address,
	lines []ValidatedOrderLine,
) (ValidatedOrder, error) {
	if err := id.Validate(); err != nil {
		return ValidatedOrder{}, err
	}
	if err := customerInfo.Validate(); err != nil {
		return ValidatedOrder{}, err
	}
	if err := shippingAddress.Validate(); err != nil {
		return ValidatedOrder{}, err
	}
	if err := billingAddress.Validate(); err != nil {
		return ValidatedOrder{}, err
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return ValidatedOrder{}, err
		}
	}

	return ValidatedOrder{
		id:              id,
		customerInfo:    customerInfo,
		shippingAddress: shippingAddress,
		billingAddress:  billingAddress,
		lines:           slices.Clone(lines),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the order was properly constructed via
// NewValidatedOrder.
func (o ValidatedOrder) Validate() error {
	return o.guard.Validate(ErrValidatedOrderIsNotConstructed)
}

// ID returns the order's identifier.
func (o ValidatedOrder) ID() OrderID {
	return o.id
}

// CustomerInfo returns the validated customer info.
func (o ValidatedOrder) CustomerInfo() CustomerInfo {
	return o.customerInfo
}

// ShippingAddress returns the validated shipping address.
func (o ValidatedOrder) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the validated billing address.
func (o ValidatedOrder) BillingAddress() Address {
	return o.billingAddress
}

// Lines returns a copy of the order's validated lines, in order.
func (o ValidatedOrder) Lines() []ValidatedOrderLine {
	return slices.Clone(o.lines)
}

// PricedOrderLine is an order line extended with its computed monetary total.
type PricedOrderLine struct {
	id          OrderLineID
	productCode ProductCode
	quantity    OrderQuantity
	linePrice   decimal.Decimal
	guard       guard.ConstructorGuard
}

// NewPricedOrderLine carries a validated line forward unchanged and attaches
// its computed total. The total must not be negative.
func NewPricedOrderLine(line ValidatedOrderLine, linePrice decimal.Decimal) (PricedOrderLine, error) {
	if err := line.Validate(); err != nil {
		return PricedOrderLine{}, err
	}
	if linePrice.IsNegative() {
		return PricedOrderLine{}, errs.NewValueIsInvalidErrorWithCause("linePrice",
			fmt.Errorf("%s is negative", linePrice))
	}

	return PricedOrderLine{
		id:          line.ID(),
		productCode: line.ProductCode(),
		quantity:    line.Quantity(),
		linePrice:   linePrice,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the line was properly constructed via NewPricedOrderLine.
func (l PricedOrderLine) Validate() error {
	return l.guard.Validate(ErrPricedOrderLineIsNotConstructed)
}

// ID returns the line's identifier.
func (l PricedOrderLine) ID() OrderLineID {
	return l.id
}

// ProductCode returns the line's product code.
func (l PricedOrderLine) ProductCode() ProductCode {
	return l.productCode
}

// Quantity returns the line's quantity.
func (l PricedOrderLine) Quantity() OrderQuantity {
	return l.quantity
}

// LinePrice returns the line's computed total.
func (l PricedOrderLine) LinePrice() decimal.Decimal {
	return l.linePrice
}

// PricedOrder is the order shape produced by the pricing stage. Its amount to
// bill is computed at construction as the sum of the line totals, so the
// invariant "amountToBill equals the sum of current line totals" holds by
// construction; there is no incremental update.
type PricedOrder struct {
	id              OrderID
	customerInfo    CustomerInfo
	shippingAddress Address
	billingAddress  Address
	amountToBill    decimal.Decimal
	lines           []PricedOrderLine
	guard           guard.ConstructorGuard
}

// NewPricedOrder carries a validated order forward with its priced lines.
// The amount to bill is recomputed from the given lines; an order with zero
// lines prices to zero.
func NewPricedOrder(validated ValidatedOrder, lines []PricedOrderLine) (PricedOrder, error) {
	if err := validated.Validate(); err != nil {
		return PricedOrder{}, err
	}

	amountToBill := decimal.Zero
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return PricedOrder{}, err
		}
		amountToBill = amountToBill.Add(line.LinePrice())
	}

	return PricedOrder{
		id:              validated.ID(),
		customerInfo:    validated.CustomerInfo(),
		shippingAddress: validated.ShippingAddress(),
		billingAddress:  validated.BillingAddress(),
		amountToBill:    amountToBill,
		lines:           slices.Clone(lines),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the order was properly constructed via NewPricedOrder.
func (o PricedOrder) Validate() error {
	return o.guard.Validate(ErrPricedOrderIsNotConstructed)
}

// ID returns the order's identifier.
func (o PricedOrder) ID() OrderID {
	return o.id
}

// CustomerInfo returns the validated customer info.
func (o PricedOrder) CustomerInfo() CustomerInfo {
	return o.customerInfo
}

// ShippingAddress returns the validated shipping address.
func (o PricedOrder) ShippingAddress() Address {
	return o.shippingAddress
}

// BillingAddress returns the validated billing address.
func (o PricedOrder) BillingAddress() Address {
	return o.billingAddress
}

// AmountToBill returns the order total: the sum of all line totals.
func (o PricedOrder) AmountToBill() decimal.Decimal {
	return o.amountToBill
}

// Lines returns a copy of the order's priced lines, in order.
func (o PricedOrder) Lines() []PricedOrderLine {
	return slices.Clone(o.lines)
}
