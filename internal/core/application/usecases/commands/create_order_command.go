package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new delivery order
// addressed to an existing recipient, optionally pre-assigned to a courier.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	recipientID kernel.UUID
	courierID   *kernel.UUID
	description string

	guard kernel.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order and recipient IDs are valid and, when a courier
// is supplied, that its ID is valid too.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	recipientID kernel.UUID,
	courierID *kernel.UUID,
	description string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		description: description,
		guard:       kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRecipientID(recipientID),
		cmd.setCourierID(courierID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RecipientID returns the recipient the order is addressed to.
func (c CreateOrderCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// CourierID returns the optional pre-assigned courier, nil if unassigned.
func (c CreateOrderCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// Description returns the optional free-text description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c *CreateOrderCommand) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
