package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"
)

// CreateCourierCommandHandler registers couriers. The backing COURIER user
// and the courier profile are created in the same transaction; a duplicate
// CPF fails the whole registration with a conflict.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	hasher     ports.PasswordHasher
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(
	uowFactory CourierUoWFactory,
	hasher ports.PasswordHasher,
) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	newUser, err := user.NewUser(kernel.NewUUID(), cmd.Name(), cmd.CPF(), passwordHash, user.RoleCourier)
	if err != nil {
		return nil, err
	}
	newCourier, err := courier.NewCourier(cmd.CourierID(), newUser.ID(), cmd.Phone(), cmd.Vehicle())
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

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return nil, err
	}
	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCourier, nil
}
