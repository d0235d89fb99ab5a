package user_test

import (
	"testing"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCPF(t *testing.T) kernel.CPF {
	t.Helper()
	cpf, err := kernel.NewCPF("123.456.789-00")
	require.NoError(t, err)
	return cpf
}

func TestParseRole(t *testing.T) {
	t.Run("should accept known roles", func(t *testing.T) {
		admin, err := user.ParseRole("ADMIN")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, admin)

		courier, err := user.ParseRole("COURIER")
		require.NoError(t, err)
		assert.Equal(t, user.RoleCourier, courier)
	})

	t.Run("should reject unknown roles", func(t *testing.T) {
		_, err := user.ParseRole("MANAGER")
		require.Error(t, err)

		_, err = user.ParseRole("admin")
		require.Error(t, err)
	})
}

func TestNewUser(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid user", func(t *testing.T) {
		u, err := user.NewUser(validID, "João", validCPF(t), "$2a$10$hash", user.RoleCourier)

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(validID))
		assert.Equal(t, "João", u.Name())
		assert.Equal(t, "12345678900", u.CPF().String())
		assert.Equal(t, user.RoleCourier, u.Role())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		u, err := user.NewUser(validID, "", validCPF(t), "hash", user.RoleAdmin)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with zero CPF", func(t *testing.T) {
		var cpf kernel.CPF

		u, err := user.NewUser(validID, "João", cpf, "hash", user.RoleAdmin)

		require.Error(t, err)
		assert.Nil(t, u)
	})

	t.Run("should fail with empty password hash", func(t *testing.T) {
		u, err := user.NewUser(validID, "João", validCPF(t), "", user.RoleAdmin)

		require.Error(t, err)
		assert.Nil(t, u)
		assert.Contains(t, err.Error(), "passwordHash")
	})

	t.Run("should fail with invalid role", func(t *testing.T) {
		u, err := user.NewUser(validID, "João", validCPF(t), "hash", user.Role("ROOT"))

		require.Error(t, err)
		assert.Nil(t, u)
	})
}

func TestUser_ChangePasswordHash(t *testing.T) {
	u, _ := user.NewUser(kernel.NewUUID(), "João", validCPF(t), "old-hash", user.RoleAdmin)

	require.NoError(t, u.ChangePasswordHash("new-hash"))
	assert.Equal(t, "new-hash", u.PasswordHash())

	require.Error(t, u.ChangePasswordHash(""))
	assert.Equal(t, "new-hash", u.PasswordHash())
}

func TestActor(t *testing.T) {
	t.Run("should build actor matching user role", func(t *testing.T) {
		admin, _ := user.NewUser(kernel.NewUUID(), "Admin", validCPF(t), "hash", user.RoleAdmin)
		courierCPF, _ := kernel.NewCPF("98765432100")
		courier, _ := user.NewUser(kernel.NewUUID(), "Courier", courierCPF, "hash", user.RoleCourier)

		adminActor, err := user.ActorFor(admin)
		require.NoError(t, err)
		assert.IsType(t, user.AdminActor{}, adminActor)
		assert.Equal(t, user.RoleAdmin, adminActor.Role())
		assert.True(t, adminActor.UserID().IsEqual(admin.ID()))

		courierActor, err := user.ActorFor(courier)
		require.NoError(t, err)
		assert.IsType(t, user.CourierActor{}, courierActor)
		assert.Equal(t, user.RoleCourier, courierActor.Role())
	})

	t.Run("should reject invalid user identity", func(t *testing.T) {
		var userID kernel.UUID

		_, err := user.NewAdminActor(userID)
		require.Error(t, err)

		_, err = user.NewCourierActor(userID)
		require.Error(t, err)
	})
}
