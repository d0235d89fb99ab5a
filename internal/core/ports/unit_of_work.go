package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the running
// transaction. Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Safe to defer after Begin; a no-op once committed.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// CourierRepository returns a CourierRepository bound to the current transaction.
	CourierRepository() CourierRepository

	// RecipientRepository returns a RecipientRepository bound to the current transaction.
	RecipientRepository() RecipientRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository

	// DeliveryEventRepository returns a DeliveryEventRepository bound to the current transaction.
	DeliveryEventRepository() DeliveryEventRepository
}
