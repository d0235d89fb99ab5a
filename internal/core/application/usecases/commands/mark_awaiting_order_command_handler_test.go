package commands_test

import (
	"testing"
	"time"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkAwaitingOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "")
	require.NoError(t, err)
	cmd, err := commands.NewMarkAwaitingOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockDeliveryEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.Pending).Return(nil).Once(),
		uow.On("DeliveryEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Append", mock.Anything, mock.MatchedBy(func(e *order.DeliveryEvent) bool {
			return e.Type() == order.EventAwaiting && e.OrderID().IsEqual(aggregate.ID())
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.MatchedBy(func(n ports.Notification) bool {
		return n.Status == order.Awaiting
	})).Once()

	h := commands.NewMarkAwaitingOrderCommandHandler(factory, dispatcher)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Awaiting, result.Status())
	assert.NotNil(t, result.AwaitingAt())
	orderRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestMarkAwaitingOrderCommandHandler_Handle_RedispatchAfterReturn(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	aggregate, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "")
	t0 := time.Now().UTC().Add(-3 * time.Hour)
	require.NoError(t, aggregate.MarkAwaiting(t0))
	require.NoError(t, aggregate.Withdraw(courierID, t0.Add(time.Hour)))
	require.NoError(t, aggregate.Return(courierID, t0.Add(2*time.Hour)))
	previousAwaitingAt := *aggregate.AwaitingAt()

	cmd, _ := commands.NewMarkAwaitingOrderCommand(aggregate.ID())

	orderRepo := new(MockOrderRepository)
	eventRepo := new(MockDeliveryEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.Returned).Return(nil).Once(),
		uow.On("DeliveryEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.DeliveryEvent")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.Anything).Once()

	h := commands.NewMarkAwaitingOrderCommandHandler(factory, dispatcher)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Awaiting, result.Status())
	assert.True(t, result.AwaitingAt().After(previousAwaitingAt))
	assert.NotNil(t, result.WithdrawnAt())
	assert.NotNil(t, result.ReturnedAt())
}

func TestMarkAwaitingOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := newAwaitingOrder(t, nil)
	cmd, _ := commands.NewMarkAwaitingOrderCommand(aggregate.ID())

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dispatcher := new(MockDispatcher)

	h := commands.NewMarkAwaitingOrderCommandHandler(factory, dispatcher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestMarkAwaitingOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewMarkAwaitingOrderCommand(orderID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	notFound := errs.NewObjectNotFoundError("order", orderID)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkAwaitingOrderCommandHandler(factory, new(MockDispatcher))
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
