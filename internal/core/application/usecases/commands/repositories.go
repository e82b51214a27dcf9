// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/core/ports"
)

// OrderPlacer runs the place-order workflow on one raw order and returns the
// domain events it produced. The domain's OrderPlacementService satisfies it.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, raw order.UnvalidatedOrder) ([]order.PlaceOrderEvent, error)
}

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// EventRepoFactory provides access to the event outbox within a transaction.
	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	// EventUoW manages transactions for outbox writes. Events of one order are
	// persisted atomically or not at all.
	EventUoW interface {
		TxManager
		EventRepoFactory
	}

	// EventUoWFactory creates new event unit of work instances.
	EventUoWFactory interface {
		Create() EventUoW
	}
)
