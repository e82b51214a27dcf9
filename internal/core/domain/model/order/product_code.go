package order

import (
	"fmt"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrProductCodeIsNotConstructed is returned when attempting to use an
// improperly initialized ProductCode. Instances must be created via
// NewProductCode.
var ErrProductCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"ProductCode must be created via NewProductCode constructor")

// ProductCodeKind is the variant tag of a ProductCode. The set of variants is
// closed: a constructed ProductCode always carries a recognized kind.
type ProductCodeKind int

const (
	// UnknownProductCodeKind represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized ProductCodeKind values.
	UnknownProductCodeKind ProductCodeKind = iota

	// WidgetCode tags product codes starting with 'W'. Widgets are counted
	// in units.
	WidgetCode

	// GizmoCode tags product codes starting with 'G'. Gizmos are weighed in
	// kilograms.
	GizmoCode
)

// getProductCodeKindStrings returns a map of kinds to their string
// representations. All kinds are included for string conversion.
func getProductCodeKindStrings() map[ProductCodeKind]string {
	return map[ProductCodeKind]string{
		UnknownProductCodeKind: "Unknown",
		WidgetCode:             "Widget",
		GizmoCode:              "Gizmo",
	}
}

// getValidProductCodeKindStrings returns a map of only valid kinds to
// support validation.
func getValidProductCodeKindStrings() map[ProductCodeKind]string {
	//nolint:exhaustive // UnknownProductCodeKind is intentionally excluded as it's invalid
	return map[ProductCodeKind]string{
		WidgetCode: "Widget",
		GizmoCode:  "Gizmo",
	}
}

// Validate checks if the kind is one of the recognized variants.
func (k ProductCodeKind) Validate() error {
	if _, ok := getValidProductCodeKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("productCodeKind",
			fmt.Errorf("%d is not a valid product code kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// This method implements the fmt.Stringer interface and is safe to call on
// any kind value, including invalid ones.
func (k ProductCodeKind) String() string {
	if str, ok := getProductCodeKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// ProductCode is a tagged value over the two recognized product categories,
// Widget and Gizmo, each carrying the original code string. The variant is
// selected by the code's first character ('W' or 'G'); any other leading
// character is a construction failure, not a representable variant.
//
// Example:
//
//	code, err := order.NewProductCode("W1234")
//	if err != nil {
//	    // Handle validation error
//	}
//	code.Kind() // order.WidgetCode
type ProductCode struct { //nolint:recvcheck //using for validation
	kind  ProductCodeKind
	value string
	guard guard.ConstructorGuard
}

// NewProductCode creates a ProductCode from a raw string.
//
// Returns:
//   - ProductCode: A valid instance tagged Widget or Gizmo
//   - error: ValueIsRequiredError if raw is empty, ValueIsOutOfRangeError if
//     it exceeds 50 characters, ValueIsInvalidError if the leading character
//     is neither 'W' nor 'G'
func NewProductCode(raw string) (ProductCode, error) {
	p := ProductCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := p.setValue(raw); err != nil {
		return ProductCode{}, err
	}

	return p, nil
}

// Validate checks if the ProductCode was properly constructed via
// NewProductCode.
func (p ProductCode) Validate() error {
	return p.guard.Validate(ErrProductCodeIsNotConstructed)
}

// Kind returns the variant tag of the code.
// For properly constructed instances this is always WidgetCode or GizmoCode.
func (p ProductCode) Kind() ProductCodeKind {
	return p.kind
}

// Value returns the original code string.
func (p ProductCode) Value() string {
	return p.value
}

// String implements fmt.Stringer.
func (p ProductCode) String() string {
	return p.value
}

// IsEqual compares two product codes by their original code strings.
func (p ProductCode) IsEqual(other ProductCode) bool {
	return p.value == other.value
}

// setValue validates and sets the code string together with its variant tag.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (p *ProductCode) setValue(raw string) error {
	if _, err := kernel.NewString50("productCode", raw); err != nil {
		return err
	}

	switch raw[0] {
	case 'W':
		p.kind = WidgetCode
	case 'G':
		p.kind = GizmoCode
	default:
		return errs.NewValueIsInvalidErrorWithCause("productCode",
			fmt.Errorf("%q does not start with a recognized tag ('W' or 'G')", raw))
	}

	p.value = raw
	return nil
}
