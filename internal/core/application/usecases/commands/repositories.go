// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

// NotificationDispatcher hands a recipient notification to the asynchronous
// notifier. Dispatch must never block and never fail: transitions commit
// first, notifications are fire-and-forget observability on top.
type NotificationDispatcher interface {
	Dispatch(notification ports.Notification)
}

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler narrows the full unit of work down to the repositories it
// actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// RecipientRepoFactory provides access to the recipient repository within a transaction.
	RecipientRepoFactory interface {
		RecipientRepository() ports.RecipientRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// EventRepoFactory provides access to the delivery event repository within a transaction.
	EventRepoFactory interface {
		DeliveryEventRepository() ports.DeliveryEventRepository
	}

	// OrderUoW manages transactions for order lifecycle operations: the
	// order row plus its append-only event log.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		EventRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW additionally resolves the referenced recipient and
	// courier for existence checks during order creation and update.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		EventRepoFactory
		RecipientRepoFactory
		CourierRepoFactory
	}

	// CreateOrderUoWFactory creates unit of work instances for order
	// creation and update.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// CourierTransitionUoW serves courier-initiated transitions, which
	// resolve the acting courier profile before touching the order.
	CourierTransitionUoW interface {
		TxManager
		OrderRepoFactory
		EventRepoFactory
		CourierRepoFactory
	}

	// CourierTransitionUoWFactory creates unit of work instances for
	// courier-initiated transitions.
	CourierTransitionUoWFactory interface {
		Create() CourierTransitionUoW
	}

	// CourierUoW manages transactions for courier CRUD, which spans the
	// courier profile and its backing user.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
		UserRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// RecipientUoW manages transactions for recipient CRUD.
	RecipientUoW interface {
		TxManager
		RecipientRepoFactory
	}

	// RecipientUoWFactory creates new recipient unit of work instances.
	RecipientUoWFactory interface {
		Create() RecipientUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
