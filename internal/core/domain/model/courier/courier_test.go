package courier_test

import (
	"testing"

	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourier(t *testing.T) {
	validID := kernel.NewUUID()
	userID := kernel.NewUUID()

	t.Run("should create valid courier", func(t *testing.T) {
		c, err := courier.NewCourier(validID, userID, "+55 11 99999-0000", "motorcycle")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(validID))
		assert.True(t, c.UserID().IsEqual(userID))
		assert.Equal(t, "+55 11 99999-0000", c.Phone())
		assert.Equal(t, "motorcycle", c.Vehicle())
	})

	t.Run("should fail with invalid ID", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := courier.NewCourier(invalidID, userID, "phone", "bike")

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should fail with invalid user ID", func(t *testing.T) {
		var invalidUser kernel.UUID

		c, err := courier.NewCourier(validID, invalidUser, "phone", "bike")

		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("should fail with empty phone", func(t *testing.T) {
		c, err := courier.NewCourier(validID, userID, "  ", "bike")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("should fail with empty vehicle", func(t *testing.T) {
		c, err := courier.NewCourier(validID, userID, "phone", "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "vehicle")
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		c, err := courier.NewCourier(invalidID, userID, "", "")

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "phone")
		assert.Contains(t, err.Error(), "vehicle")
	})
}

func TestCourier_Validate(t *testing.T) {
	t.Run("should fail validation for nil courier", func(t *testing.T) {
		var c *courier.Courier

		assert.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})

	t.Run("should fail validation for zero value courier", func(t *testing.T) {
		var c courier.Courier

		assert.Equal(t, courier.ErrCourierIsNotConstructed, c.Validate())
	})
}

func TestCourier_Updates(t *testing.T) {
	newCourier := func(t *testing.T) *courier.Courier {
		t.Helper()
		c, err := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), "111", "bike")
		require.NoError(t, err)
		return c
	}

	t.Run("should change phone", func(t *testing.T) {
		c := newCourier(t)

		require.NoError(t, c.ChangePhone("222"))
		assert.Equal(t, "222", c.Phone())
	})

	t.Run("should reject empty phone", func(t *testing.T) {
		c := newCourier(t)

		require.Error(t, c.ChangePhone(""))
		assert.Equal(t, "111", c.Phone())
	})

	t.Run("should change vehicle", func(t *testing.T) {
		c := newCourier(t)

		require.NoError(t, c.ChangeVehicle("van"))
		assert.Equal(t, "van", c.Vehicle())
	})

	t.Run("should reject empty vehicle", func(t *testing.T) {
		c := newCourier(t)

		require.Error(t, c.ChangeVehicle(" "))
		assert.Equal(t, "bike", c.Vehicle())
	})
}

func TestCourier_IsEqual(t *testing.T) {
	id := kernel.NewUUID()

	c1, _ := courier.NewCourier(id, kernel.NewUUID(), "1", "bike")
	c2, _ := courier.NewCourier(id, kernel.NewUUID(), "2", "van")
	c3, _ := courier.NewCourier(kernel.NewUUID(), kernel.NewUUID(), "1", "bike")

	assert.True(t, c1.IsEqual(c2))
	assert.False(t, c1.IsEqual(c3))
	assert.False(t, c1.IsEqual(nil))
}
