// Package ports defines the contracts between the dispatch core and its adapters.
// Repositories, the unit of work, the run lock, the outcome publisher and the metrics
// observer are all expressed here so that use cases depend only on interfaces.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order.
	// Returns errs.ErrObjectAlreadyExists when the order number is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Inside a transaction the row is locked until commit.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves every pending order, oldest first.
	// Inside a transaction the rows are locked until commit so that concurrent runs
	// cannot assign the same order twice.
	GetAllPending(ctx context.Context) ([]*order.Order, error)
}
