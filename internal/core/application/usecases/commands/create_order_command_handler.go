package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in Pending status with a freshly generated tracking code;
// the referenced recipient (and courier, if supplied) must exist.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command. Resolves the referenced
// recipient and courier, persists the new order, and appends the CREATED
// event in the same transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.RecipientRepository().Get(ctx, cmd.RecipientID()); err != nil {
		return nil, err
	}
	if cmd.CourierID() != nil {
		if _, err := uow.CourierRepository().Get(ctx, *cmd.CourierID()); err != nil {
			return nil, err
		}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.RecipientID(), cmd.CourierID(), cmd.Description())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	event, err := order.NewDeliveryEvent(
		newOrder.ID(), order.EventCreated, transitionPayload(newOrder, nil), time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err = uow.DeliveryEventRepository().Append(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
