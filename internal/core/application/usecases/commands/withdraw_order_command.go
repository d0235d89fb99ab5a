package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
)

var ErrWithdrawOrderCommandIsNotConstructed = errors.New(
	"WithdrawOrderCommand must be created via NewWithdrawOrderCommand constructor",
)

// WithdrawOrderCommand represents a courier picking an Awaiting order up.
// The acting courier is identified by the authenticated CourierActor; the
// handler resolves the courier profile from the actor's user identity.
type WithdrawOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.CourierActor

	guard kernel.ConstructorGuard
}

// NewWithdrawOrderCommand creates a command for a courier to withdraw an order.
func NewWithdrawOrderCommand(orderID kernel.UUID, actor user.CourierActor) (WithdrawOrderCommand, error) {
	cmd := WithdrawOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return WithdrawOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawOrderCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawOrderCommandIsNotConstructed)
}

// OrderID returns the order to withdraw.
func (c WithdrawOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated courier performing the withdrawal.
func (c WithdrawOrderCommand) Actor() user.CourierActor {
	return c.actor
}

func (c *WithdrawOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *WithdrawOrderCommand) setActor(actor user.CourierActor) error {
	if err := actor.UserID().Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
