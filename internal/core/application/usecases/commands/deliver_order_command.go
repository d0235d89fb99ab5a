package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/errs"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents the assigned courier handing a Withdrawn
// order to its recipient. The photo path references the proof-of-delivery
// image already saved by the upload layer.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     user.CourierActor
	photoPath string

	guard kernel.ConstructorGuard
}

// NewDeliverOrderCommand creates a command for a courier to deliver an order.
func NewDeliverOrderCommand(
	orderID kernel.UUID,
	actor user.CourierActor,
	photoPath string,
) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setPhotoPath(photoPath),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated courier performing the delivery.
func (c DeliverOrderCommand) Actor() user.CourierActor {
	return c.actor
}

// PhotoPath returns the stored proof-of-delivery reference.
func (c DeliverOrderCommand) PhotoPath() string {
	return c.photoPath
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setActor(actor user.CourierActor) error {
	if err := actor.UserID().Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *DeliverOrderCommand) setPhotoPath(photoPath string) error {
	if photoPath == "" {
		return errs.NewValueIsRequiredError("photoPath")
	}
	c.photoPath = photoPath
	return nil
}
