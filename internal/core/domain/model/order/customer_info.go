package order

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrCustomerInfoIsNotConstructed is returned when attempting to use an
// improperly initialized CustomerInfo. Instances must be created via
// NewCustomerInfo.
var ErrCustomerInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"CustomerInfo must be created via NewCustomerInfo constructor")

// UnvalidatedCustomerInfo is the raw customer shape as received from the
// caller. Its fields carry no guarantees; they are validated by
// NewCustomerInfo.
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

// CustomerInfo is the validated customer shape: bounded first and last names
// plus a validated email address. The zero value is invalid and fails
// validation.
type CustomerInfo struct { //nolint:recvcheck //using for validation
	firstName kernel.String50
	lastName  kernel.String50
	email     kernel.EmailAddress
	guard     guard.ConstructorGuard
}

// NewCustomerInfo validates raw customer info field by field, first failure
// wins.
//
// Returns:
//   - CustomerInfo: A fully-populated validated customer
//   - error: The first field-level validation error encountered, in field
//     order: firstName, lastName, email
func NewCustomerInfo(raw UnvalidatedCustomerInfo) (CustomerInfo, error) {
	c := CustomerInfo{
		guard: guard.NewConstructorGuard(),
	}

	firstName, err := kernel.NewString50("firstName", raw.FirstName)
	if err != nil {
		return CustomerInfo{}, err
	}
	c.firstName = firstName

	lastName, err := kernel.NewString50("lastName", raw.LastName)
	if err != nil {
		return CustomerInfo{}, err
	}
	c.lastName = lastName

	email, err := kernel.NewEmailAddress(raw.EmailAddress)
	if err != nil {
		return CustomerInfo{}, err
	}
	c.email = email

	return c, nil
}

// Validate checks if the CustomerInfo was properly constructed via
// NewCustomerInfo.
func (c CustomerInfo) Validate() error {
	return c.guard.Validate(ErrCustomerInfoIsNotConstructed)
}

// FirstName returns the customer's first name.
func (c CustomerInfo) FirstName() kernel.String50 {
	return c.firstName
}

// LastName returns the customer's last name.
func (c CustomerInfo) LastName() kernel.String50 {
	return c.lastName
}

// Email returns the customer's email address.
func (c CustomerInfo) Email() kernel.EmailAddress {
	return c.email
}
