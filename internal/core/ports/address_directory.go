package ports

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
)

// AddressDirectory is the external address verification used by the
// validation stage.
type AddressDirectory interface {
	// Exists reports whether the raw address is deliverable/known. A false
	// result is an existence failure distinct from field-level invalidity.
	Exists(ctx context.Context, address order.UnvalidatedAddress) (bool, error)
}
