package commands

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrDeleteRecipientCommandIsNotConstructed = errors.New(
	"DeleteRecipientCommand must be created via NewDeleteRecipientCommand constructor",
)

// DeleteRecipientCommand represents an operator request to remove a
// recipient profile.
type DeleteRecipientCommand struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewDeleteRecipientCommand creates a command to delete a recipient.
func NewDeleteRecipientCommand(recipientID kernel.UUID) (DeleteRecipientCommand, error) {
	cmd := DeleteRecipientCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := cmd.setRecipientID(recipientID); err != nil {
		return DeleteRecipientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRecipientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRecipientCommandIsNotConstructed)
}

// RecipientID returns the recipient to delete.
func (c DeleteRecipientCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

func (c *DeleteRecipientCommand) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	c.recipientID = recipientID
	return nil
}
