package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
)

var ErrCreateRecipientCommandIsNotConstructed = errors.New(
	"CreateRecipientCommand must be created via NewCreateRecipientCommand constructor",
)

// CreateRecipientCommand represents an operator request to register a
// recipient profile. Coordinates are optional; without them the recipient's
// orders are invisible to the nearby search.
type CreateRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID
	name        string
	address     recipient.Address
	phone       string
	email       string
	location    *kernel.GeoPoint

	guard kernel.ConstructorGuard
}

// NewCreateRecipientCommand creates a command to register a recipient.
// Field validation is delegated to the aggregate constructor at handle time;
// the command only checks its identifier and coordinates.
func NewCreateRecipientCommand(
	recipientID kernel.UUID,
	name string,
	address recipient.Address,
	phone, email string,
	location *kernel.GeoPoint,
) (CreateRecipientCommand, error) {
	cmd := CreateRecipientCommand{
		name:    name,
		address: address,
		phone:   phone,
		email:   email,
		guard:   kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecipientID(recipientID),
		cmd.setLocation(location),
	); err != nil {
		return CreateRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRecipientCommand) Validate() error {
	return c.guard.Validate(ErrCreateRecipientCommandIsNotConstructed)
}

// RecipientID returns the identifier for the new recipient.
func (c CreateRecipientCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// Name returns the recipient's display name.
func (c CreateRecipientCommand) Name() string {
	return c.name
}

// Address returns the postal address.
func (c CreateRecipientCommand) Address() recipient.Address {
	return c.address
}

// Phone returns the optional contact number.
func (c CreateRecipientCommand) Phone() string {
	return c.phone
}

// Email returns the optional contact email.
func (c CreateRecipientCommand) Email() string {
	return c.email
}

// Location returns the optional geocoordinates.
func (c CreateRecipientCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *CreateRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}

func (c *CreateRecipientCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
