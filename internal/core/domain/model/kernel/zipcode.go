package kernel

import (
	"unicode/utf8"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrZipCodeIsNotConstructed is returned when attempting to use an improperly
// initialized ZipCode. Instances must be created via NewZipCode.
var ErrZipCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"ZipCode must be created via NewZipCode constructor")

// ZipCode is a constrained postal code: non-empty and at most 50 characters.
// The bound is the same 50 used for the other id-like fields, and the error
// message reports that same bound. It is an immutable value object; the zero
// value is invalid and fails validation.
type ZipCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewZipCode creates a ZipCode from a raw string.
//
// Returns:
//   - ZipCode: A valid instance
//   - error: ValueIsRequiredError if raw is empty, ValueIsOutOfRangeError if
//     it exceeds 50 characters
func NewZipCode(raw string) (ZipCode, error) {
	z := ZipCode{
		guard: guard.NewConstructorGuard(),
	}

	if err := z.setValue(raw); err != nil {
		return ZipCode{}, err
	}

	return z, nil
}

// Validate checks if the ZipCode was properly constructed via NewZipCode.
func (z ZipCode) Validate() error {
	return z.guard.Validate(ErrZipCodeIsNotConstructed)
}

// Value returns the wrapped zip code string.
func (z ZipCode) Value() string {
	return z.value
}

// String implements fmt.Stringer.
func (z ZipCode) String() string {
	return z.value
}

// IsEqual compares two ZipCode values by their wrapped strings.
func (z ZipCode) IsEqual(other ZipCode) bool {
	return z.value == other.value
}

// setValue validates and sets the wrapped zip code.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (z *ZipCode) setValue(raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError("zipCode")
	}

	if length := utf8.RuneCountInString(raw); length > String50MaxLength {
		return errs.NewValueIsOutOfRangeError("zipCode", length, 1, String50MaxLength)
	}

	z.value = raw
	return nil
}
