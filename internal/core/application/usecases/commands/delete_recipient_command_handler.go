package commands

import (
	"context"
)

// DeleteRecipientCommandHandler handles recipient removal.
type DeleteRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewDeleteRecipientCommandHandler creates a handler for recipient deletion.
func NewDeleteRecipientCommandHandler(uowFactory RecipientUoWFactory) DeleteRecipientCommandHandler {
	return DeleteRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteRecipientCommandHandler) Handle(ctx context.Context, cmd DeleteRecipientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipientRepo := uow.RecipientRepository()
	if _, err := recipientRepo.Get(ctx, cmd.RecipientID()); err != nil {
		return err
	}

	if err := recipientRepo.Delete(ctx, cmd.RecipientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
