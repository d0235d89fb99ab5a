package commands

import (
	"context"

	"fastfeet/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler handles plain field edits on orders. Referenced
// entities are resolved before the edit so a re-address or reassignment to a
// missing recipient/courier fails with a not-found error.
type UpdateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(uowFactory CreateOrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	from := aggregate.Status()

	if cmd.RecipientID() != nil {
		if _, err = uow.RecipientRepository().Get(ctx, *cmd.RecipientID()); err != nil {
			return nil, err
		}
		if err = aggregate.ChangeRecipient(*cmd.RecipientID()); err != nil {
			return nil, err
		}
	}

	if cmd.ChangeCourier() {
		if cmd.CourierID() != nil {
			if _, err = uow.CourierRepository().Get(ctx, *cmd.CourierID()); err != nil {
				return nil, err
			}
		}
		if err = aggregate.ChangeCourier(cmd.CourierID()); err != nil {
			return nil, err
		}
	}

	if cmd.Description() != nil {
		aggregate.ChangeDescription(*cmd.Description())
	}

	if err = orderRepo.Update(ctx, aggregate, from); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
