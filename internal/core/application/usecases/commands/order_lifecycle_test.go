package commands_test

import (
	"testing"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// TestOrderCommands_FullCycle drives one order through dispatch, a failed
// first attempt ending in a return, and the successful second attempt,
// exercising every transition handler against shared state. The mocked
// repositories hand out the same aggregate pointer, so each step observes
// the result of the previous one.
func TestOrderCommands_FullCycle(t *testing.T) {
	ctx := t.Context()
	profile, actor := newCourierProfile(t)

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "birthday present")
	require.NoError(t, err)

	var (
		appended  []order.EventType
		notified  []order.Status
		guardedBy []order.Status
	)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	orderRepo.On("Update", mock.Anything, aggregate, mock.AnythingOfType("order.Status")).
		Run(func(args mock.Arguments) {
			guardedBy = append(guardedBy, args.Get(2).(order.Status))
		}).
		Return(nil)

	courierRepo := new(MockCourierRepository)
	courierRepo.On("GetByUserID", mock.Anything, actor.UserID()).Return(profile, nil)

	eventRepo := new(MockDeliveryEventRepository)
	eventRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.DeliveryEvent")).
		Run(func(args mock.Arguments) {
			appended = append(appended, args.Get(1).(*order.DeliveryEvent).Type())
		}).
		Return(nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("DeliveryEventRepository").Return(eventRepo)

	orderFactory := new(MockOrderUoWFactory)
	orderFactory.On("Create").Return(uow)
	transitionFactory := new(MockCourierTransitionUoWFactory)
	transitionFactory.On("Create").Return(uow)

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.AnythingOfType("ports.Notification")).
		Run(func(args mock.Arguments) {
			notified = append(notified, args.Get(0).(ports.Notification).Status)
		})

	await := commands.NewMarkAwaitingOrderCommandHandler(orderFactory, dispatcher)
	withdraw := commands.NewWithdrawOrderCommandHandler(transitionFactory, dispatcher)
	deliver := commands.NewDeliverOrderCommandHandler(transitionFactory, dispatcher)
	giveBack := commands.NewReturnOrderCommandHandler(transitionFactory, dispatcher)

	awaitCmd, err := commands.NewMarkAwaitingOrderCommand(aggregate.ID())
	require.NoError(t, err)
	withdrawCmd, err := commands.NewWithdrawOrderCommand(aggregate.ID(), actor)
	require.NoError(t, err)
	returnCmd, err := commands.NewReturnOrderCommand(aggregate.ID(), actor, "recipient absent")
	require.NoError(t, err)
	deliverCmd, err := commands.NewDeliverOrderCommand(aggregate.ID(), actor, "uploads/proof.jpg")
	require.NoError(t, err)

	// Dispatch and first attempt, ending in a return.
	result, err := await.Handle(ctx, awaitCmd)
	require.NoError(t, err)
	require.NotNil(t, result.AwaitingAt())
	firstAwaitingAt := *result.AwaitingAt()

	_, err = withdraw.Handle(ctx, withdrawCmd)
	require.NoError(t, err)

	result, err = giveBack.Handle(ctx, returnCmd)
	require.NoError(t, err)
	require.NotNil(t, result.ReturnedAt())
	returnedAt := *result.ReturnedAt()

	// A delivery straight after the return is rejected.
	_, err = deliver.Handle(ctx, deliverCmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)

	// Re-dispatch and the successful second attempt.
	result, err = await.Handle(ctx, awaitCmd)
	require.NoError(t, err)
	require.NotNil(t, result.AwaitingAt())
	assert.False(t, result.AwaitingAt().Before(firstAwaitingAt))

	_, err = withdraw.Handle(ctx, withdrawCmd)
	require.NoError(t, err)

	result, err = deliver.Handle(ctx, deliverCmd)
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, result.Status())
	assert.Equal(t, "uploads/proof.jpg", result.DeliveryPhoto())
	require.NotNil(t, result.Courier())
	assert.True(t, result.Courier().IsEqual(profile.ID()))
	// The return timestamp survives the second cycle as audit trail.
	require.NotNil(t, result.ReturnedAt())
	assert.Equal(t, returnedAt, *result.ReturnedAt())

	assert.Equal(t, []order.EventType{
		order.EventAwaiting, order.EventWithdrawn, order.EventReturned,
		order.EventAwaiting, order.EventWithdrawn, order.EventDelivered,
	}, appended)
	assert.Equal(t, []order.Status{
		order.Awaiting, order.Withdrawn, order.Returned,
		order.Awaiting, order.Withdrawn, order.Delivered,
	}, notified)
	assert.Equal(t, []order.Status{
		order.Pending, order.Awaiting, order.Withdrawn,
		order.Returned, order.Awaiting, order.Withdrawn,
	}, guardedBy)
}
