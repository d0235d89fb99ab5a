package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand represents the assigned courier bringing a Withdrawn
// order back to the distribution point. The optional reason is recorded in
// the RETURNED event's payload.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.CourierActor
	reason  string

	guard kernel.ConstructorGuard
}

// NewReturnOrderCommand creates a command for a courier to return an order.
func NewReturnOrderCommand(
	orderID kernel.UUID,
	actor user.CourierActor,
	reason string,
) (ReturnOrderCommand, error) {
	cmd := ReturnOrderCommand{
		reason: reason,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ReturnOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the order to return.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated courier performing the return.
func (c ReturnOrderCommand) Actor() user.CourierActor {
	return c.actor
}

// Reason returns the optional free-text return reason.
func (c ReturnOrderCommand) Reason() string {
	return c.reason
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReturnOrderCommand) setActor(actor user.CourierActor) error {
	if err := actor.UserID().Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
