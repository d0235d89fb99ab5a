package commands_test

import (
	"encoding/json"
	"testing"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReturnOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	profile, actor := newCourierProfile(t)
	aggregate := newWithdrawnOrderFor(t, profile)
	cmd, err := commands.NewReturnOrderCommand(aggregate.ID(), actor, "recipient absent")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	eventRepo := new(MockDeliveryEventRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetByUserID", mock.Anything, actor.UserID()).Return(profile, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate, order.Withdrawn).Return(nil).Once(),
		uow.On("DeliveryEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Append", mock.Anything, mock.MatchedBy(func(e *order.DeliveryEvent) bool {
			if e.Type() != order.EventReturned {
				return false
			}
			var payload map[string]string
			if err := json.Unmarshal([]byte(e.Payload()), &payload); err != nil {
				return false
			}
			return payload["reason"] == "recipient absent"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.MatchedBy(func(n ports.Notification) bool {
		return n.Status == order.Returned
	})).Once()

	h := commands.NewReturnOrderCommandHandler(factory, dispatcher)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Returned, result.Status())
	assert.NotNil(t, result.ReturnedAt())
	// Assignment survives the return for the re-dispatch cycle.
	require.NotNil(t, result.Courier())
	assert.True(t, result.Courier().IsEqual(profile.ID()))
	eventRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestReturnOrderCommandHandler_Handle_WrongCourier(t *testing.T) {
	ctx := t.Context()
	assignedProfile, _ := newCourierProfile(t)
	actingProfile, actor := newCourierProfile(t)
	aggregate := newWithdrawnOrderFor(t, assignedProfile)
	cmd, _ := commands.NewReturnOrderCommand(aggregate.ID(), actor, "")

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("GetByUserID", mock.Anything, actor.UserID()).Return(actingProfile, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReturnOrderCommandHandler(factory, new(MockDispatcher))
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOperationForbidden)
}
