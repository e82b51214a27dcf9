package kernel

import (
	"unicode/utf8"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// String50MaxLength is the maximum number of characters allowed in a String50.
// Name, email, zip and id-like fields all share this bound.
const String50MaxLength = 50

// ErrString50IsNotConstructed is returned when attempting to use an improperly
// initialized String50. Instances must be created via NewString50.
var ErrString50IsNotConstructed = errs.NewValueIsRequiredError(
	"String50 must be created via NewString50 constructor")

// String50 is a constrained string value: non-empty and at most 50 characters.
// It is an immutable value object; the zero value is invalid and fails
// validation; use NewString50 to create instances.
//
// Example:
//
//	name, err := kernel.NewString50("firstName", "Ada")
//	if err != nil {
//	    // Handle validation error naming the offending field
//	}
type String50 struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewString50 creates a String50 from a raw string. The paramName is carried
// into any validation error so callers can report which field was invalid.
//
// Returns:
//   - String50: A valid instance
//   - error: ValueIsRequiredError if raw is empty, ValueIsOutOfRangeError if
//     it exceeds String50MaxLength characters
func NewString50(paramName string, raw string) (String50, error) {
	s := String50{
		guard: guard.NewConstructorGuard(),
	}

	if err := s.setValue(paramName, raw); err != nil {
		return String50{}, err
	}

	return s, nil
}

// NewOptionalString50 creates a String50 from a raw string that may be absent.
// An empty raw string yields (nil, nil); a present value is validated the same
// way as NewString50.
func NewOptionalString50(paramName string, raw string) (*String50, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil //absence is a valid outcome for optional fields
	}

	s, err := NewString50(paramName, raw)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks if the String50 was properly constructed via NewString50.
func (s String50) Validate() error {
	return s.guard.Validate(ErrString50IsNotConstructed)
}

// Value returns the wrapped string.
func (s String50) Value() string {
	return s.value
}

// String implements fmt.Stringer.
func (s String50) String() string {
	return s.value
}

// IsEqual compares two String50 values by their wrapped strings.
func (s String50) IsEqual(other String50) bool {
	return s.value == other.value
}

// setValue validates and sets the wrapped string.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (s *String50) setValue(paramName string, raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError(paramName)
	}

	if length := utf8.RuneCountInString(raw); length > String50MaxLength {
		return errs.NewValueIsOutOfRangeError(paramName, length, 1, String50MaxLength)
	}

	s.value = raw
	return nil
}
