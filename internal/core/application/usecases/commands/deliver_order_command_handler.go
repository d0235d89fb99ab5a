package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
)

// DeliverOrderCommandHandler handles delivery completion. Only the assigned
// courier may deliver, and only from Withdrawn status.
type DeliverOrderCommandHandler struct {
	uowFactory CourierTransitionUoWFactory
	dispatcher NotificationDispatcher
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(
	uowFactory CourierTransitionUoWFactory,
	dispatcher NotificationDispatcher,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the delivery command.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
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

	actingCourier, err := uow.CourierRepository().GetByUserID(ctx, cmd.Actor().UserID())
	if err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	from := aggregate.Status()
	now := time.Now().UTC()
	if err = aggregate.Deliver(actingCourier.ID(), cmd.PhotoPath(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate, from); err != nil {
		return nil, err
	}

	payload := transitionPayload(aggregate, map[string]string{
		"deliveryPhoto": aggregate.DeliveryPhoto(),
	})
	event, err := order.NewDeliveryEvent(aggregate.ID(), order.EventDelivered, payload, now)
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
