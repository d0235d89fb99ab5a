package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
)

// MarkAwaitingOrderCommandHandler releases orders for pickup. The status
// change and the AWAITING event commit atomically; the recipient
// notification is dispatched after the commit and never affects it.
type MarkAwaitingOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	dispatcher NotificationDispatcher
}

// NewMarkAwaitingOrderCommandHandler creates a handler for releasing orders.
func NewMarkAwaitingOrderCommandHandler(
	uowFactory OrderUoWFactory,
	dispatcher NotificationDispatcher,
) MarkAwaitingOrderCommandHandler {
	return MarkAwaitingOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the release command.
func (h *MarkAwaitingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd MarkAwaitingOrderCommand,
) (*order.Order, error) {
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
	now := time.Now().UTC()
	if err = aggregate.MarkAwaiting(now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate, from); err != nil {
		return nil, err
	}

	payload := transitionPayload(aggregate, nil)
	event, err := order.NewDeliveryEvent(aggregate.ID(), order.EventAwaiting, payload, now)
	if err != nil {
		return nil, err
	}
	if err = uow.DeliveryEventRepository().Append(ctx, event); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.dispatcher.Dispatch(ports.Notification{
		OrderID:     aggregate.ID(),
		RecipientID: aggregate.RecipientID(),
		Status:      aggregate.Status(),
		Payload:     payload,
	})

	return aggregate, nil
}
