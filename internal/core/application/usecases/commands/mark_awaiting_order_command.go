package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrMarkAwaitingOrderCommandIsNotConstructed = errors.New(
	"MarkAwaitingOrderCommand must be created via NewMarkAwaitingOrderCommand constructor",
)

// MarkAwaitingOrderCommand represents an operator request to release an
// order for pickup: initial dispatch of a Pending order or re-dispatch of a
// Returned one.
type MarkAwaitingOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewMarkAwaitingOrderCommand creates a command to release an order for pickup.
func NewMarkAwaitingOrderCommand(orderID kernel.UUID) (MarkAwaitingOrderCommand, error) {
	cmd := MarkAwaitingOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkAwaitingOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkAwaitingOrderCommand) Validate() error {
	return c.guard.Validate(ErrMarkAwaitingOrderCommandIsNotConstructed)
}

// OrderID returns the order to release.
func (c MarkAwaitingOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkAwaitingOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
