package commands

import (
	"errors"
	"fmt"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var ErrChangePasswordCommandIsNotConstructed = errors.New(
	"ChangePasswordCommand must be created via NewChangePasswordCommand constructor",
)

// ChangePasswordCommand represents an operator resetting a user's password.
type ChangePasswordCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	newPassword string

	guard kernel.ConstructorGuard
}

// NewChangePasswordCommand creates a command to reset a user's password.
// The new password must satisfy the minimum length.
func NewChangePasswordCommand(userID kernel.UUID, newPassword string) (ChangePasswordCommand, error) {
	cmd := ChangePasswordCommand{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ChangePasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangePasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangePasswordCommandIsNotConstructed)
}

// UserID returns the user whose password is reset.
func (c ChangePasswordCommand) UserID() kernel.UUID {
	return c.userID
}

// NewPassword returns the plaintext replacement password.
func (c ChangePasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangePasswordCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *ChangePasswordCommand) setNewPassword(newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"newPassword",
			fmt.Errorf("must be at least %d characters", minPasswordLength),
		)
	}
	c.newPassword = newPassword
	return nil
}
