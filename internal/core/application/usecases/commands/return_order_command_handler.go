package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
)

// ReturnOrderCommandHandler handles order returns. Only the assigned courier
// may return, and only from Withdrawn status. Returned orders keep their
// courier assignment and may be re-dispatched later.
type ReturnOrderCommandHandler struct {
	uowFactory CourierTransitionUoWFactory
	dispatcher NotificationDispatcher
}

// NewReturnOrderCommandHandler creates a handler for order returns.
func NewReturnOrderCommandHandler(
	uowFactory CourierTransitionUoWFactory,
	dispatcher NotificationDispatcher,
) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the return command.
func (h *ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) (*order.Order, error) {
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
	if err = aggregate.Return(actingCourier.ID(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate, from); err != nil {
		return nil, err
	}

	extra := map[string]string{}
	if cmd.Reason() != "" {
		extra["reason"] = cmd.Reason()
	}
	payload := transitionPayload(aggregate, extra)
	event, err := order.NewDeliveryEvent(aggregate.ID(), order.EventReturned, payload, now)
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
