// Package ports defines the contracts between the application core and the
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns its identifier.
	// The order must be valid and must not carry an identifier yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The full aggregate state is written; there is no delta persistence.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Absence is reported as an errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
