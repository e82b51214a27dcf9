package order

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrAcknowledgmentIsNotConstructed is returned when attempting to use an
// improperly initialized Acknowledgment. Instances must be created via
// NewAcknowledgment.
var ErrAcknowledgmentIsNotConstructed = errs.NewValueIsRequiredError(
	"Acknowledgment must be created via NewAcknowledgment constructor")

// HTMLLetter is the rendered customer notification body.
type HTMLLetter string

// SendResult is the outcome reported by an acknowledgment sender.
// NotSent is not an error: it only means no acknowledgment event will be
// emitted for the order.
type SendResult int

const (
	// NotSent indicates the acknowledgment could not be delivered.
	NotSent SendResult = iota

	// Sent indicates the acknowledgment was delivered to the customer.
	Sent
)

// String returns the human-readable name of the send result.
func (r SendResult) String() string {
	if r == Sent {
		return "Sent"
	}
	return "NotSent"
}

// Acknowledgment is the customer notification assembled after pricing:
// the rendered letter packaged with the customer's email address. It is an
// ephemeral value, never persisted by the core.
type Acknowledgment struct {
	email  kernel.EmailAddress
	letter HTMLLetter
	guard  guard.ConstructorGuard
}

// NewAcknowledgment packages a rendered letter with the address it should be
// sent to. The email must be constructed and the letter must not be empty.
func NewAcknowledgment(email kernel.EmailAddress, letter HTMLLetter) (Acknowledgment, error) {
	if err := email.Validate(); err != nil {
		return Acknowledgment{}, err
	}
	if letter == "" {
		return Acknowledgment{}, errs.NewValueIsRequiredError("letter")
	}

	return Acknowledgment{
		email:  email,
		letter: letter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Acknowledgment was properly constructed via
// NewAcknowledgment.
func (a Acknowledgment) Validate() error {
	return a.guard.Validate(ErrAcknowledgmentIsNotConstructed)
}

// Email returns the address the acknowledgment is sent to.
func (a Acknowledgment) Email() kernel.EmailAddress {
	return a.email
}

// Letter returns the rendered letter body.
func (a Acknowledgment) Letter() HTMLLetter {
	return a.letter
}
