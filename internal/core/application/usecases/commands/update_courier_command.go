package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

// UpdateCourierCommand represents partial edits to a courier: display name
// on the backing user, phone and vehicle on the profile. Absent fields are
// untouched.
type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      *string
	phone     *string
	vehicle   *string

	guard kernel.ConstructorGuard
}

// NewUpdateCourierCommand creates a command to edit a courier.
func NewUpdateCourierCommand(
	courierID kernel.UUID,
	name, phone, vehicle *string,
) (UpdateCourierCommand, error) {
	cmd := UpdateCourierCommand{
		name:    name,
		phone:   phone,
		vehicle: vehicle,
		guard:   kernel.NewConstructorGuard(),
	}

	if err := cmd.setCourierID(courierID); err != nil {
		return UpdateCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

// CourierID returns the courier profile to edit.
func (c UpdateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the new display name, nil to keep the current one.
func (c UpdateCourierCommand) Name() *string {
	return c.name
}

// Phone returns the new phone, nil to keep the current one.
func (c UpdateCourierCommand) Phone() *string {
	return c.phone
}

// Vehicle returns the new vehicle, nil to keep the current one.
func (c UpdateCourierCommand) Vehicle() *string {
	return c.vehicle
}

func (c *UpdateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}
