package order

import (
	"fmt"
	"strconv"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrOrderQuantityIsNotConstructed is returned when attempting to use an
// improperly initialized OrderQuantity. Instances must be created via
// NewOrderQuantity.
var ErrOrderQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderQuantity must be created via NewOrderQuantity constructor")

// QuantityUnit is the variant tag of an OrderQuantity. The unit is coupled to
// the product code's variant: widgets are counted in units, gizmos are
// weighed in kilograms. This coupling is enforced at construction time.
type QuantityUnit int

const (
	// UnknownQuantityUnit represents an invalid or undefined unit.
	// This value (0) helps catch uninitialized QuantityUnit values.
	UnknownQuantityUnit QuantityUnit = iota

	// Units is the quantity unit for widget lines.
	Units

	// Kilograms is the quantity unit for gizmo lines.
	Kilograms
)

// getQuantityUnitStrings returns a map of units to their string
// representations. All units are included for string conversion.
func getQuantityUnitStrings() map[QuantityUnit]string {
	return map[QuantityUnit]string{
		UnknownQuantityUnit: "Unknown",
		Units:               "Units",
		Kilograms:           "Kilograms",
	}
}

// getValidQuantityUnitStrings returns a map of only valid units to support
// validation.
func getValidQuantityUnitStrings() map[QuantityUnit]string {
	//nolint:exhaustive // UnknownQuantityUnit is intentionally excluded as it's invalid
	return map[QuantityUnit]string{
		Units:     "Units",
		Kilograms: "Kilograms",
	}
}

// Validate checks if the unit is one of the recognized variants.
func (u QuantityUnit) Validate() error {
	if _, ok := getValidQuantityUnitStrings()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("quantityUnit",
			fmt.Errorf("%d is not a valid quantity unit", u))
	}
	return nil
}

// String returns the human-readable name of the unit.
// This method implements the fmt.Stringer interface and is safe to call on
// any unit value, including invalid ones.
func (u QuantityUnit) String() string {
	if str, ok := getQuantityUnitStrings()[u]; ok {
		return str
	}
	return "Unknown"
}

// OrderQuantity is a tagged non-negative integer quantity. The variant is
// determined by the paired ProductCode's tag: Widget yields Units, Gizmo
// yields Kilograms.
//
// Example:
//
//	code, _ := order.NewProductCode("G123")
//	qty, err := order.NewOrderQuantity(code, "3")
//	if err != nil {
//	    // Handle validation error
//	}
//	qty.Unit() // order.Kilograms
type OrderQuantity struct { //nolint:recvcheck //using for validation
	unit  QuantityUnit
	value int
	guard guard.ConstructorGuard
}

// NewOrderQuantity derives an OrderQuantity from a raw quantity string and
// the product code it is paired with. The raw value is parsed as an integer
// and must be non-negative; the unit is chosen from the code's variant.
//
// Returns:
//   - OrderQuantity: A valid instance
//   - error: A validation error if the code is not constructed, the raw value
//     is empty, not an integer, or negative
func NewOrderQuantity(code ProductCode, raw string) (OrderQuantity, error) {
	q := OrderQuantity{
		guard: guard.NewConstructorGuard(),
	}

	if err := code.Validate(); err != nil {
		return OrderQuantity{}, err
	}

	if err := q.setUnit(code); err != nil {
		return OrderQuantity{}, err
	}

	if err := q.setValue(raw); err != nil {
		return OrderQuantity{}, err
	}

	return q, nil
}

// Validate checks if the OrderQuantity was properly constructed via
// NewOrderQuantity.
func (q OrderQuantity) Validate() error {
	return q.guard.Validate(ErrOrderQuantityIsNotConstructed)
}

// Unit returns the variant tag of the quantity.
// For properly constructed instances this is always Units or Kilograms.
func (q OrderQuantity) Unit() QuantityUnit {
	return q.unit
}

// Value returns the numeric quantity, regardless of unit.
func (q OrderQuantity) Value() int {
	return q.value
}

// String implements fmt.Stringer.
func (q OrderQuantity) String() string {
	return fmt.Sprintf("%d %s", q.value, q.unit)
}

// setUnit derives the quantity unit from the paired product code.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (q *OrderQuantity) setUnit(code ProductCode) error {
	switch code.Kind() {
	case WidgetCode:
		q.unit = Units
	case GizmoCode:
		q.unit = Kilograms
	case UnknownProductCodeKind:
		return code.Kind().Validate()
	default:
		return code.Kind().Validate()
	}

	return nil
}

// setValue parses and sets the numeric quantity.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (q *OrderQuantity) setValue(raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError("quantity")
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%q is not an integer", raw))
	}

	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", value))
	}

	q.value = value
	return nil
}
