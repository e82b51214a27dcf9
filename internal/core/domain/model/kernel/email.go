package kernel

import (
	"errors"
	"strings"
	"unicode/utf8"

	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrEmailAddressIsNotConstructed is returned when attempting to use an
// improperly initialized EmailAddress. Instances must be created via
// NewEmailAddress.
var ErrEmailAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"EmailAddress must be created via NewEmailAddress constructor")

// EmailAddress is a constrained email value: non-empty, at most 50 characters,
// and containing the '@' sign. It is an immutable value object; the zero value
// is invalid and fails validation.
//
// Example:
//
//	email, err := kernel.NewEmailAddress("ada@example.com")
//	if err != nil {
//	    // Handle validation error
//	}
type EmailAddress struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmailAddress creates an EmailAddress from a raw string.
//
// Returns:
//   - EmailAddress: A valid instance
//   - error: ValueIsRequiredError if raw is empty, ValueIsOutOfRangeError if
//     it exceeds 50 characters, ValueIsInvalidError if the '@' sign is missing
func NewEmailAddress(raw string) (EmailAddress, error) {
	e := EmailAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := e.setValue(raw); err != nil {
		return EmailAddress{}, err
	}

	return e, nil
}

// Validate checks if the EmailAddress was properly constructed via
// NewEmailAddress.
func (e EmailAddress) Validate() error {
	return e.guard.Validate(ErrEmailAddressIsNotConstructed)
}

// Value returns the wrapped email string.
func (e EmailAddress) Value() string {
	return e.value
}

// String implements fmt.Stringer.
func (e EmailAddress) String() string {
	return e.value
}

// IsEqual compares two EmailAddress values by their wrapped strings.
func (e EmailAddress) IsEqual(other EmailAddress) bool {
	return e.value == other.value
}

// setValue validates and sets the wrapped email string.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers, to enable self-encapsulated validation during construction.
func (e *EmailAddress) setValue(raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError("email")
	}

	if length := utf8.RuneCountInString(raw); length > String50MaxLength {
		return errs.NewValueIsOutOfRangeError("email", length, 1, String50MaxLength)
	}

	if !strings.Contains(raw, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", errors.New("email must contain the '@' sign"))
	}

	e.value = raw
	return nil
}
