package commands

import (
	"context"

	"fastfeet/internal/core/ports"
)

// ChangePasswordCommandHandler resets user passwords. Only the hash derived
// from the new password ever reaches persistence.
type ChangePasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewChangePasswordCommandHandler creates a handler for password resets.
func NewChangePasswordCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the password reset command.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	aggregate, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangePasswordHash(passwordHash); err != nil {
		return err
	}
	if err = userRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
