package order_test

import (
	"testing"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.Pending, order.Awaiting, order.Withdrawn, order.Delivered, order.Returned,
		}
		for _, s := range statuses {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject Unknown", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		err := order.Status(99).Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "99 is not a valid status")
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "PENDING"},
		{order.Awaiting, "AWAITING"},
		{order.Withdrawn, "WITHDRAWN"},
		{order.Delivered, "DELIVERED"},
		{order.Returned, "RETURNED"},
		{order.Unknown, "UNKNOWN"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should round-trip all valid statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.Pending, order.Awaiting, order.Withdrawn, order.Delivered, order.Returned,
		}
		for _, s := range statuses {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		_, err := order.ParseStatus("SHIPPED")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := order.ParseStatus("pending")

		require.Error(t, err)
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("MarkAwaiting allowed from Pending and Returned only", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Returned} {
			newStatus, err := s.MarkAwaiting()

			require.NoError(t, err, s.String())
			assert.Equal(t, order.Awaiting, newStatus)
		}

		for _, s := range []order.Status{order.Unknown, order.Awaiting, order.Withdrawn, order.Delivered} {
			_, err := s.MarkAwaiting()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Contains(t, err.Error(), "cannot mark awaiting from status "+s.String())
		}
	})

	t.Run("Withdraw allowed from Awaiting only", func(t *testing.T) {
		newStatus, err := order.Awaiting.Withdraw()

		require.NoError(t, err)
		assert.Equal(t, order.Withdrawn, newStatus)

		for _, s := range []order.Status{order.Unknown, order.Pending, order.Withdrawn, order.Delivered, order.Returned} {
			_, err := s.Withdraw()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})

	t.Run("Deliver allowed from Withdrawn only", func(t *testing.T) {
		newStatus, err := order.Withdrawn.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)

		for _, s := range []order.Status{order.Unknown, order.Pending, order.Awaiting, order.Delivered, order.Returned} {
			_, err := s.Deliver()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})

	t.Run("Return allowed from Withdrawn only", func(t *testing.T) {
		newStatus, err := order.Withdrawn.Return()

		require.NoError(t, err)
		assert.Equal(t, order.Returned, newStatus)

		for _, s := range []order.Status{order.Unknown, order.Pending, order.Awaiting, order.Delivered, order.Returned} {
			_, err := s.Return()

			require.Error(t, err, s.String())
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		}
	})
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	t.Run("should require a courier for Withdrawn, Delivered and Returned", func(t *testing.T) {
		for _, s := range []order.Status{order.Withdrawn, order.Delivered, order.Returned} {
			require.Error(t, s.ValidateCanHaveCourier(false), s.String())
			require.NoError(t, s.ValidateCanHaveCourier(true), s.String())
		}
	})

	t.Run("should allow Pending and Awaiting with or without courier", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Awaiting} {
			require.NoError(t, s.ValidateCanHaveCourier(false), s.String())
			require.NoError(t, s.ValidateCanHaveCourier(true), s.String())
		}
	})
}
