package order

import (
	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/pkg/errs"
	"ordertaking/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Instances must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress constructor")

// UnvalidatedAddress is the raw address shape as received from the caller.
// Its fields carry no guarantees; they are validated by NewAddress.
type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	City         string
	ZipCode      string
}

// Address is the validated address shape. The first address line, city and
// zip code are required; the second address line is optional. The zero value
// is invalid and fails validation.
type Address struct { //nolint:recvcheck //using for validation
	addressLine1 kernel.String50
	addressLine2 *kernel.String50
	city         kernel.String50
	zipCode      kernel.ZipCode
	guard        guard.ConstructorGuard
}

// NewAddress validates a raw address field by field, first failure wins.
//
// Returns:
//   - Address: A fully-populated validated address
//   - error: The first field-level validation error encountered, in field
//     order: addressLine1, addressLine2, city, zipCode
func NewAddress(raw UnvalidatedAddress) (Address, error) {
	a := Address{
		guard: guard.NewConstructorGuard(),
	}

	line1, err := kernel.NewString50("addressLine1", raw.AddressLine1)
	if err != nil {
		return Address{}, err
	}
	a.addressLine1 = line1

	line2, err := kernel.NewOptionalString50("addressLine2", raw.AddressLine2)
	if err != nil {
		return Address{}, err
	}
	a.addressLine2 = line2

	city, err := kernel.NewString50("city", raw.City)
	if err != nil {
		return Address{}, err
	}
	a.city = city

	zip, err := kernel.NewZipCode(raw.ZipCode)
	if err != nil {
		return Address{}, err
	}
	a.zipCode = zip

	return a, nil
}

// Validate checks if the Address was properly constructed via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// AddressLine1 returns the required first address line.
func (a Address) AddressLine1() kernel.String50 {
	return a.addressLine1
}

// AddressLine2 returns the optional second address line.
// Returns nil when the line is absent.
func (a Address) AddressLine2() *kernel.String50 {
	return a.addressLine2
}

// City returns the city name.
func (a Address) City() kernel.String50 {
	return a.city
}

// ZipCode returns the postal code.
func (a Address) ZipCode() kernel.ZipCode {
	return a.zipCode
}
