package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

// Notification describes a recipient-facing message about an order
// transition. The payload is an opaque string (usually JSON) with
// channel-specific content.
type Notification struct {
	OrderID     kernel.UUID
	RecipientID kernel.UUID
	Status      order.Status
	Payload     string
}

// NotificationGateway durably records and best-effort delivers recipient
// notifications. Dispatch is at-most-once: a delivery failure is recorded
// with success=false and never retried. Callers must treat dispatch as
// fire-and-forget observability; a transition never fails because its
// notification did.
type NotificationGateway interface {
	Dispatch(ctx context.Context, notification Notification) error
}
