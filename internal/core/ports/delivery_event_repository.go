package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/order"
)

// DeliveryEventRepository defines the persistence contract for the
// append-only order audit log. Events are only ever appended; there are no
// update or delete operations.
type DeliveryEventRepository interface {
	// Append persists a new delivery event.
	Append(ctx context.Context, event *order.DeliveryEvent) error
}
