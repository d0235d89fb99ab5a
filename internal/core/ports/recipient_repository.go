package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
)

// RecipientRepository defines the persistence contract for recipient profiles.
type RecipientRepository interface {
	// Add persists a new recipient profile.
	Add(ctx context.Context, aggregate *recipient.Recipient) error

	// Update persists changes to an existing recipient profile.
	Update(ctx context.Context, aggregate *recipient.Recipient) error

	// Get retrieves a recipient by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error)

	// Delete removes a recipient profile.
	Delete(ctx context.Context, id kernel.UUID) error
}
