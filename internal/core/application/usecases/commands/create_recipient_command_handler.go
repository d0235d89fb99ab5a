package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/recipient"
)

// CreateRecipientCommandHandler registers recipient profiles.
type CreateRecipientCommandHandler struct {
	uowFactory RecipientUoWFactory
}

// NewCreateRecipientCommandHandler creates a handler for recipient registration.
func NewCreateRecipientCommandHandler(uowFactory RecipientUoWFactory) CreateRecipientCommandHandler {
	return CreateRecipientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *CreateRecipientCommandHandler) Handle(
	ctx context.Context,
	cmd CreateRecipientCommand,
) (*recipient.Recipient, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := recipient.NewRecipient(
		cmd.RecipientID(), cmd.Name(), cmd.Address(), cmd.Phone(), cmd.Email(), cmd.Location())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RecipientRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
