package services

import (
	"context"
	"errors"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
	"ordertaking/internal/pkg/errs"
)

// ErrProductCodeMustBeValid is the rule violated when a line's product code
// is not recognized by the catalog. It is distinct from the field-level
// format rules: the code may be well-formed but unknown.
var ErrProductCodeMustBeValid = errors.New("ProductCode must be valid")

// OrderValidationService converts an unvalidated order into a validated one.
// It performs total validation with defined failure points: the first
// violated rule wins, in field order (order id, customer info, shipping
// address, billing address, then order lines in list order). No partial or
// interim validated order is ever returned.
//
// Known limitation: because validation fails fast, a caller cannot show the
// user all errors at once; a single specific error (field + rule) is
// surfaced per call.
type OrderValidationService struct {
	catalog   ports.ProductCatalog
	addresses ports.AddressDirectory
}

// NewOrderValidationService creates the validation stage with its external
// existence checks.
func NewOrderValidationService(
	catalog ports.ProductCatalog, addresses ports.AddressDirectory,
) OrderValidationService {
	return OrderValidationService{
		catalog:   catalog,
		addresses: addresses,
	}
}

// Validate builds a fully-populated ValidatedOrder from raw input, or fails
// with the first validation error encountered.
//
// The billing address is validated from its own raw input, independently of
// the shipping address.
func (s OrderValidationService) Validate(
	ctx context.Context, raw order.UnvalidatedOrder,
) (order.ValidatedOrder, error) {
	id, err := order.NewOrderID(raw.OrderID)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	customerInfo, err := order.NewCustomerInfo(raw.CustomerInfo)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	shippingAddress, err := s.validateAddress(ctx, "shippingAddress", raw.ShippingAddress)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	billingAddress, err := s.validateAddress(ctx, "billingAddress", raw.BillingAddress)
	if err != nil {
		return order.ValidatedOrder{}, err
	}

	lines := make([]order.ValidatedOrderLine, 0, len(raw.Lines))
	for _, rawLine := range raw.Lines {
		line, lineErr := s.validateLine(ctx, rawLine)
		if lineErr != nil {
			return order.ValidatedOrder{}, lineErr
		}
		lines = append(lines, line)
	}

	return order.NewValidatedOrder(id, customerInfo, shippingAddress, billingAddress, lines)
}

// validateAddress checks the raw address against the directory before any
// field-level construction is attempted. A negative directory answer is an
// existence failure, distinct from field-level invalidity.
func (s OrderValidationService) validateAddress(
	ctx context.Context, paramName string, raw order.UnvalidatedAddress,
) (order.Address, error) {
	exists, err := s.addresses.Exists(ctx, raw)
	if err != nil {
		return order.Address{}, err
	}
	if !exists {
		return order.Address{}, errs.NewObjectNotFoundError(paramName, raw.AddressLine1)
	}

	return order.NewAddress(raw)
}

// validateLine builds a validated line: identifier first, then catalog
// existence, then the product code variant, then the quantity derived from
// the code's tag.
func (s OrderValidationService) validateLine(
	ctx context.Context, raw order.UnvalidatedOrderLine,
) (order.ValidatedOrderLine, error) {
	lineID, err := order.NewOrderLineID(raw.OrderLineID)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}

	exists, err := s.catalog.Exists(ctx, raw.ProductCode)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}
	if !exists {
		return order.ValidatedOrderLine{}, errs.NewValueIsInvalidErrorWithCause(
			"productCode", ErrProductCodeMustBeValid)
	}

	productCode, err := order.NewProductCode(raw.ProductCode)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}

	quantity, err := order.NewOrderQuantity(productCode, raw.Quantity)
	if err != nil {
		return order.ValidatedOrderLine{}, err
	}

	return order.NewValidatedOrderLine(lineID, productCode, quantity)
}
