package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents partial edits to an order's plain fields:
// re-addressing, courier reassignment, and description changes. Lifecycle
// fields are only reachable through the transition commands.
//
// Each field is tri-state: absent fields are untouched. For the courier,
// changeCourier distinguishes "leave as is" from "set to courierID", where a
// nil courierID unassigns.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	recipientID   *kernel.UUID
	changeCourier bool
	courierID     *kernel.UUID
	description   *string

	guard kernel.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order's plain fields.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	recipientID *kernel.UUID,
	changeCourier bool,
	courierID *kernel.UUID,
	description *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		changeCourier: changeCourier,
		description:   description,
		guard:         kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecipientID(recipientID),
		cmd.setCourierID(courierID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RecipientID returns the new recipient, nil to keep the current one.
func (c UpdateOrderCommand) RecipientID() *kernel.UUID {
	return c.recipientID
}

// ChangeCourier reports whether the courier assignment should be replaced.
func (c UpdateOrderCommand) ChangeCourier() bool {
	return c.changeCourier
}

// CourierID returns the new courier assignment; nil unassigns. Only
// meaningful when ChangeCourier is true.
func (c UpdateOrderCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// Description returns the new description, nil to keep the current one.
func (c UpdateOrderCommand) Description() *string {
	return c.description
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setRecipientID(recipientID *kernel.UUID) error {
	if recipientID == nil {
		return nil
	}
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c *UpdateOrderCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
