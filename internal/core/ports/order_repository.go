package ports

import (
	"context"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPending retrieves all orders awaiting truck allocation, oldest
	// first. Pending orders that already have a non-terminal dispatch are
	// excluded: the order stays pending until the journey starts, but it is
	// no longer a candidate for allocation. The allocation sweep walks this
	// list in order so earlier orders get first pick of the idle fleet.
	GetAllPending(ctx context.Context) ([]*order.Order, error)
}
