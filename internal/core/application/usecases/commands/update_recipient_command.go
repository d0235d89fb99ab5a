package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
)

var ErrUpdateRecipientCommandIsNotConstructed = errors.New(
	"UpdateRecipientCommand must be created via NewUpdateRecipientCommand constructor",
)

// UpdateRecipientCommand represents partial edits to a recipient profile.
// Absent fields are untouched; changeLocation distinguishes "leave as is"
// from "set to location", where a nil location clears the coordinates.
type UpdateRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID    kernel.UUID
	name           *string
	address        *recipient.Address
	phone          *string
	email          *string
	changeLocation bool
	location       *kernel.GeoPoint

	guard kernel.ConstructorGuard
}

// NewUpdateRecipientCommand creates a command to edit a recipient.
func NewUpdateRecipientCommand(
	recipientID kernel.UUID,
	name *string,
	address *recipient.Address,
	phone, email *string,
	changeLocation bool,
	location *kernel.GeoPoint,
) (UpdateRecipientCommand, error) {
	cmd := UpdateRecipientCommand{
		name:           name,
		address:        address,
		phone:          phone,
		email:          email,
		changeLocation: changeLocation,
		guard:          kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.setLocation(location),
	); err != nil {
		return UpdateRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRecipientCommandIsNotConstructed)
}

// RecipientID returns the recipient to edit.
func (c UpdateRecipientCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// Name returns the new display name, nil to keep the current one.
func (c UpdateRecipientCommand) Name() *string {
	return c.name
}

// Address returns the new postal address, nil to keep the current one.
func (c UpdateRecipientCommand) Address() *recipient.Address {
	return c.address
}

// Phone returns the new phone, nil to keep the current one.
func (c UpdateRecipientCommand) Phone() *string {
	return c.phone
}

// Email returns the new email, nil to keep the current one.
func (c UpdateRecipientCommand) Email() *string {
	return c.email
}

// ChangeLocation reports whether the coordinates should be replaced.
func (c UpdateRecipientCommand) ChangeLocation() bool {
	return c.changeLocation
}

// Location returns the new coordinates; nil clears them. Only meaningful
// when ChangeLocation is true.
func (c UpdateRecipientCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *UpdateRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c *UpdateRecipientCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
