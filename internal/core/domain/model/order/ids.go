package order

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrOrderIDIsNotConstructed is returned when attempting to use an improperly
// initialized OrderID. Instances must be created via NewOrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID constructor")

// ErrOrderLineIDIsNotConstructed is returned when attempting to use an
// improperly initialized OrderLineID. Instances must be created via
// NewOrderLineID.
var ErrOrderLineIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderLineID must be created via NewOrderLineID constructor")

// OrderID identifies an order. It is a bounded, non-empty string value;
// the zero value is invalid and fails validation.
type OrderID struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderID creates an OrderID from a raw string, applying the shared
// bounded-string rules (non-empty, at most 50 characters).
func NewOrderID(raw string) (OrderID, error) {
	s, err := kernel.NewString50("orderId", raw)
	if err != nil {
		return OrderID{}, err
	}

	return OrderID{
		value: s.Value(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the OrderID was properly constructed via NewOrderID.
func (id OrderID) Validate() error {
	return id.guard.Validate(ErrOrderIDIsNotConstructed)
}

// Value returns the wrapped identifier string.
func (id OrderID) Value() string {
	return id.value
}

// String implements fmt.Stringer.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// OrderLineID identifies a single line within an order. It is a bounded,
// non-empty string value; the zero value is invalid and fails validation.
type OrderLineID struct {
	value string
	guard guard.ConstructorGuard
}

// NewOrderLineID creates an OrderLineID from a raw string, applying the
// shared bounded-string rules (non-empty, at most 50 characters).
func NewOrderLineID(raw string) (OrderLineID, error) {
	s, err := kernel.NewString50("orderLineId", raw)
	if err != nil {
		return OrderLineID{}, err
	}

	return OrderLineID{
		value: s.Value(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the OrderLineID was properly constructed via
// NewOrderLineID.
func (id OrderLineID) Validate() error {
	return id.guard.Validate(ErrOrderLineIDIsNotConstructed)
}

// Value returns the wrapped identifier string.
func (id OrderLineID) Value() string {
	return id.value
}

// String implements fmt.Stringer.
func (id OrderLineID) String() string {
	return id.value
}

// IsEqual compares two line identifiers by value.
func (id OrderLineID) IsEqual(other OrderLineID) bool {
	return id.value == other.value
}
