// Package ports defines the contracts between the order-taking core and its
// infrastructure: the workflow collaborators (catalog, address directory,
// letter rendering and sending) and the outbox persistence used to hand
// emitted events to downstream publishers. These interfaces enable dependency
// inversion and testability.
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"ordertaking/internal/core/domain/model/order"
)

// ProductCatalog is the external product lookup used by the validation and
// pricing stages.
type ProductCatalog interface {
	// Exists reports whether the raw product code is recognized by the
	// catalog. The code is checked before any field-level construction is
	// attempted.
	Exists(ctx context.Context, rawCode string) (bool, error)

	// UnitPrice returns the unit price for a valid product code. It must be
	// defined for every code reachable by an order that passed validation.
	UnitPrice(ctx context.Context, code order.ProductCode) (decimal.Decimal, error)
}
