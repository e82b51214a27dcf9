// Package geo provides the address existence check backing the
// AddressDirectory port.
package geo

import (
	"context"
	"log/slog"

	"ordertaking/internal/core/domain/model/order"
)

// StubAddressDirectory stands in for the remote address verification service.
// Any address with a non-empty first line is considered known; the real
// service sits behind the same port.
type StubAddressDirectory struct {
	logger *slog.Logger
}

// NewStubAddressDirectory creates the stub directory.
func NewStubAddressDirectory(logger *slog.Logger) StubAddressDirectory {
	return StubAddressDirectory{
		logger: logger.With("component", "address_directory"),
	}
}

// Exists reports whether the raw address is known to the directory.
func (d StubAddressDirectory) Exists(ctx context.Context, raw order.UnvalidatedAddress) (bool, error) {
	exists := raw.AddressLine1 != ""
	if !exists {
		d.logger.DebugContext(ctx, "Address lookup failed", "city", raw.City)
	}
	return exists, nil
}
