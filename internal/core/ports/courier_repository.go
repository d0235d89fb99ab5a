package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier profiles.
type CourierRepository interface {
	// Add persists a new courier profile.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier profile.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its profile identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByUserID retrieves the courier profile owned by the given user.
	// Every courier-initiated order operation resolves the acting courier
	// through this lookup.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*courier.Courier, error)

	// Delete removes a courier profile.
	Delete(ctx context.Context, id kernel.UUID) error
}
