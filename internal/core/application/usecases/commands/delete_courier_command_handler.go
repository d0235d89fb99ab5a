package commands

import (
	"context"
)

// DeleteCourierCommandHandler handles courier removal. The profile and its
// backing user are removed together so no orphaned courier login survives.
type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewDeleteCourierCommandHandler creates a handler for courier deletion.
func NewDeleteCourierCommandHandler(uowFactory CourierUoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h *DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	aggregate, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = courierRepo.Delete(ctx, cmd.CourierID()); err != nil {
		return err
	}
	if err = uow.UserRepository().Delete(ctx, aggregate.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
