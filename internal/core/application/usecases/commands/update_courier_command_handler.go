package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/courier"
)

// UpdateCourierCommandHandler handles courier edits. A name change is
// applied to the backing user in the same transaction as the profile edits.
type UpdateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewUpdateCourierCommandHandler creates a handler for courier edits.
func NewUpdateCourierCommandHandler(uowFactory CourierUoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
func (h *UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) (*courier.Courier, error) {
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

	courierRepo := uow.CourierRepository()
	aggregate, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	if cmd.Phone() != nil {
		if err = aggregate.ChangePhone(*cmd.Phone()); err != nil {
			return nil, err
		}
	}
	if cmd.Vehicle() != nil {
		if err = aggregate.ChangeVehicle(*cmd.Vehicle()); err != nil {
			return nil, err
		}
	}
	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if cmd.Name() != nil {
		userRepo := uow.UserRepository()
		owner, err := userRepo.Get(ctx, aggregate.UserID())
		if err != nil {
			return nil, err
		}
		if err = owner.ChangeName(*cmd.Name()); err != nil {
			return nil, err
		}
		if err = userRepo.Update(ctx, owner); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
