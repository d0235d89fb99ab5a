package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

// DeleteCourierCommand represents an operator request to remove a courier
// profile and its backing user identity.
type DeleteCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewDeleteCourierCommand creates a command to delete a courier.
func NewDeleteCourierCommand(courierID kernel.UUID) (DeleteCourierCommand, error) {
	cmd := DeleteCourierCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setCourierID(courierID); err != nil {
		return DeleteCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

// CourierID returns the courier to delete.
func (c DeleteCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *DeleteCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
