package commands_test

import (
	"testing"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(
		courierID, "João", "123.456.789-00", "s3cret-pass", "+55 11 99999-0000", "motorcycle")
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret-pass").Return("$2a$10$hashed", nil).Once()

	userRepo := new(MockUserRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Role() == user.RoleCourier &&
				u.CPF().String() == "12345678900" &&
				u.PasswordHash() == "$2a$10$hashed"
		})).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", mock.Anything, mock.MatchedBy(func(c *courier.Courier) bool {
			return c.ID().IsEqual(courierID) && c.Vehicle() == "motorcycle"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCourierCommandHandler(factory, hasher)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.ID().IsEqual(courierID))
	hasher.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_DuplicateCPF(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateCourierCommand(
		kernel.NewUUID(), "João", "12345678900", "s3cret-pass", "111", "bike")

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "s3cret-pass").Return("hash", nil).Once()

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	duplicate := errs.NewDuplicateValueError("cpf", "12345678900")
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(duplicate).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCourierCommandHandler(factory, hasher)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrDuplicateValue)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateCourierCommand_Validate(t *testing.T) {
	courierID := kernel.NewUUID()

	t.Run("normalizes formatted CPF", func(t *testing.T) {
		cmd, err := commands.NewCreateCourierCommand(courierID, "João", "123.456.789-00", "password123", "111", "bike")

		require.NoError(t, err)
		assert.Equal(t, "12345678900", cmd.CPF().String())
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := commands.NewCreateCourierCommand(courierID, "João", "12345678900", "short", "111", "bike")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("rejects malformed CPF", func(t *testing.T) {
		_, err := commands.NewCreateCourierCommand(courierID, "João", "12345", "password123", "111", "bike")

		require.Error(t, err)
	})

	t.Run("aggregates missing fields", func(t *testing.T) {
		_, err := commands.NewCreateCourierCommand(courierID, "", "12345678900", "password123", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "phone")
		assert.Contains(t, err.Error(), "vehicle")
	})
}
