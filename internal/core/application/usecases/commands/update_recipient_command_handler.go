package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/recipient"
)

// UpdateRecipientCommandHandler handles recipient edits.
type UpdateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewUpdateRecipientCommandHandler creates a handler for recipient edits.
func NewUpdateRecipientCommandHandler(uowFactory RecipientUoWFactory) UpdateRecipientCommandHandler {
	return UpdateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
func (h *UpdateRecipientCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateRecipientCommand,
) (*recipient.Recipient, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipientRepo := uow.RecipientRepository()
	aggregate, err := recipientRepo.Get(ctx, cmd.RecipientID())
	if err != nil {
		return nil, err
	}

	if cmd.Name() != nil {
		if err = aggregate.ChangeName(*cmd.Name()); err != nil {
			return nil, err
		}
	}
	if cmd.Address() != nil {
		if err = aggregate.ChangeAddress(*cmd.Address()); err != nil {
			return nil, err
		}
	}
	if cmd.Phone() != nil || cmd.Email() != nil {
		phone, email := aggregate.Phone(), aggregate.Email()
		if cmd.Phone() != nil {
			phone = *cmd.Phone()
		}
		if cmd.Email() != nil {
			email = *cmd.Email()
		}
		aggregate.ChangeContact(phone, email)
	}
	if cmd.ChangeLocation() {
		if err = aggregate.ChangeLocation(cmd.Location()); err != nil {
			return nil, err
		}
	}

	if err = recipientRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
