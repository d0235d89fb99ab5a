package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The from
	// argument is the status the aggregate had when it was loaded; the
	// update only applies if the stored row still holds that status, so
	// two concurrent transitions on the same order resolve to exactly one
	// winner. The loser receives an invalid-transition error.
	Update(ctx context.Context, aggregate *order.Order, from order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its delivery events.
	Delete(ctx context.Context, id kernel.UUID) error
}
