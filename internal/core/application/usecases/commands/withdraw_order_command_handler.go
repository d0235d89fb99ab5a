package commands

import (
	"context"
	"time"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
)

// WithdrawOrderCommandHandler handles courier pickups. The acting courier is
// resolved from the command's actor; an unassigned Awaiting order is claimed
// by whoever withdraws it, a pre-assigned one only by its assignee.
//
// Two couriers racing for the same order resolve at the repository update:
// the first commit wins, the second observes a stale status and fails.
type WithdrawOrderCommandHandler struct {
	uowFactory CourierTransitionUoWFactory
	dispatcher NotificationDispatcher
}

// NewWithdrawOrderCommandHandler creates a handler for order withdrawal.
func NewWithdrawOrderCommandHandler(
	uowFactory CourierTransitionUoWFactory,
	dispatcher NotificationDispatcher,
) WithdrawOrderCommandHandler {
	return WithdrawOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the withdrawal command.
func (h *WithdrawOrderCommandHandler) Handle(ctx context.Context, cmd WithdrawOrderCommand) (*order.Order, error) {
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
	if err = aggregate.Withdraw(actingCourier.ID(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate, from); err != nil {
		return nil, err
	}

	payload := transitionPayload(aggregate, map[string]string{
		"courierId": actingCourier.ID().String(),
	})
	event, err := order.NewDeliveryEvent(aggregate.ID(), order.EventWithdrawn, payload, now)
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
