// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work spans one business transaction: repositories obtained from
// it run against the same database transaction, so an order transition and
// its audit event commit or roll back together.
package postgres

import (
	"context"

	"fastfeet/internal/adapters/out/postgres/courierrepo"
	"fastfeet/internal/adapters/out/postgres/eventrepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/adapters/out/postgres/userrepo"
	"fastfeet/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database
// connection pool. Each business operation gets a fresh instance so
// concurrent operations stay isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for Begin.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction across the
// repositories. Repository accessors return instances bound to the running
// transaction; before Begin or after Commit/Rollback they fall back to the
// shared connection.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin with one already active is a
// no-op, so handlers can begin defensively.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. The unit of work cannot be reused
// afterwards.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Safe to defer after Begin; once the
// transaction committed it returns gorm.ErrInvalidTransaction, which
// deferred callers ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn())
}

// CourierRepository returns a courier repository bound to the transaction.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn())
}

// RecipientRepository returns a recipient repository bound to the transaction.
func (uow *GormUnitOfWork) RecipientRepository() ports.RecipientRepository {
	return recipientrepo.NewGormRecipientRepository(uow.conn())
}

// UserRepository returns a user repository bound to the transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn())
}

// DeliveryEventRepository returns an event repository bound to the transaction.
func (uow *GormUnitOfWork) DeliveryEventRepository() ports.DeliveryEventRepository {
	return eventrepo.NewGormDeliveryEventRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
