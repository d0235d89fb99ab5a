package ports

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for authentication
// identities. CPF lookups always receive normalized values; callers must
// not pass formatted CPFs.
type UserRepository interface {
	// Add persists a new user. A duplicate CPF surfaces as a duplicate
	// value error.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByCPF retrieves a user by its normalized CPF.
	GetByCPF(ctx context.Context, cpf kernel.CPF) (*user.User, error)

	// Delete removes a user.
	Delete(ctx context.Context, id kernel.UUID) error

	// HasAdmin reports whether at least one admin user exists.
	// Used at startup to decide whether to seed the initial admin.
	HasAdmin(ctx context.Context) (bool, error)
}
