package queries_test

import (
	"testing"

	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, latitude, longitude float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(latitude, longitude)
	require.NoError(t, err)
	return point
}

func TestNewAuthenticateQuery(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		query, err := queries.NewAuthenticateQuery("123.456.789-00", "secret-pass")
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "12345678900", query.CPF().String())
		assert.Equal(t, "secret-pass", query.Password())
	})

	t.Run("MalformedCPF", func(t *testing.T) {
		_, err := queries.NewAuthenticateQuery("123", "secret-pass")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		_, err := queries.NewAuthenticateQuery("123.456.789-00", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("NotConstructedViaConstructor", func(t *testing.T) {
		query := queries.AuthenticateQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrAuthenticateQueryIsNotConstructed)
	})
}

func TestNewGetOrderQuery(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		orderID := kernel.NewUUID()
		query, err := queries.NewGetOrderQuery(orderID)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, orderID.IsEqual(query.OrderID()))
	})

	t.Run("ZeroOrderID", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("NotConstructedViaConstructor", func(t *testing.T) {
		query := queries.GetOrderQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	})
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("NoFilters", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("", nil, nil, 1)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, order.Unknown, query.Status())
		assert.Nil(t, query.CourierID())
		assert.Nil(t, query.RecipientID())
	})

	t.Run("AllFilters", func(t *testing.T) {
		courierID := kernel.NewUUID()
		recipientID := kernel.NewUUID()

		query, err := queries.NewListOrdersQuery("AWAITING", &courierID, &recipientID, 2)
		require.NoError(t, err)
		assert.Equal(t, order.Awaiting, query.Status())
		assert.True(t, courierID.IsEqual(*query.CourierID()))
		assert.True(t, recipientID.IsEqual(*query.RecipientID()))
		assert.Equal(t, 2, query.Page())
	})

	t.Run("MalformedStatus", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery("SHIPPED", nil, nil, 1)
		require.Error(t, err)
	})

	t.Run("ZeroCourierID", func(t *testing.T) {
		zero := kernel.UUID{}
		_, err := queries.NewListOrdersQuery("", &zero, nil, 1)
		require.Error(t, err)
	})

	t.Run("NotConstructedViaConstructor", func(t *testing.T) {
		query := queries.ListOrdersQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewListCourierOrdersQuery(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		courierID := kernel.NewUUID()
		query, err := queries.NewListCourierOrdersQuery(courierID, "DELIVERED", 1)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, courierID.IsEqual(query.CourierID()))
		assert.Equal(t, order.Delivered, query.Status())
	})

	t.Run("ZeroCourierID", func(t *testing.T) {
		_, err := queries.NewListCourierOrdersQuery(kernel.UUID{}, "", 1)
		require.Error(t, err)
	})

	t.Run("MalformedStatus", func(t *testing.T) {
		_, err := queries.NewListCourierOrdersQuery(kernel.NewUUID(), "delivered!", 1)
		require.Error(t, err)
	})

	t.Run("NotConstructedViaConstructor", func(t *testing.T) {
		query := queries.ListCourierOrdersQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrListCourierOrdersQueryIsNotConstructed)
	})
}

func TestNewListNearbyOrdersQuery(t *testing.T) {
	origin := func(t *testing.T) kernel.GeoPoint {
		t.Helper()
		return mustGeoPoint(t, -23.55052, -46.633308)
	}

	t.Run("Valid", func(t *testing.T) {
		userID := kernel.NewUUID()
		query, err := queries.NewListNearbyOrdersQuery(userID, origin(t), 10)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.True(t, userID.IsEqual(query.CourierUserID()))
		assert.InDelta(t, 10.0, query.RadiusKm(), 1e-9)
	})

	t.Run("ZeroUserID", func(t *testing.T) {
		_, err := queries.NewListNearbyOrdersQuery(kernel.UUID{}, origin(t), 10)
		require.Error(t, err)
	})

	t.Run("ZeroValueOrigin", func(t *testing.T) {
		_, err := queries.NewListNearbyOrdersQuery(kernel.NewUUID(), kernel.GeoPoint{}, 10)
		require.Error(t, err)
	})

	t.Run("NonPositiveRadius", func(t *testing.T) {
		for _, radius := range []float64{0, -1, -10.5} {
			_, err := queries.NewListNearbyOrdersQuery(kernel.NewUUID(), origin(t), radius)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("NotConstructedViaConstructor", func(t *testing.T) {
		query := queries.ListNearbyOrdersQuery{}
		err := query.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrListNearbyOrdersQueryIsNotConstructed)
	})
}

func TestNewListCouriersQuery(t *testing.T) {
	query := queries.NewListCouriersQuery("maria", 1)
	require.NoError(t, query.Validate())
	assert.Equal(t, "maria", query.Search())
	assert.Equal(t, 1, query.Page())

	notConstructed := queries.ListCouriersQuery{}
	err := notConstructed.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListCouriersQueryIsNotConstructed)
}

func TestNewGetCourierQuery(t *testing.T) {
	courierID := kernel.NewUUID()
	query, err := queries.NewGetCourierQuery(courierID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, courierID.IsEqual(query.CourierID()))

	_, err = queries.NewGetCourierQuery(kernel.UUID{})
	require.Error(t, err)

	notConstructed := queries.GetCourierQuery{}
	err = notConstructed.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCourierQueryIsNotConstructed)
}

func TestNewGetCourierByUserQuery(t *testing.T) {
	userID := kernel.NewUUID()
	query, err := queries.NewGetCourierByUserQuery(userID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, userID.IsEqual(query.UserID()))

	_, err = queries.NewGetCourierByUserQuery(kernel.UUID{})
	require.Error(t, err)

	notConstructed := queries.GetCourierByUserQuery{}
	err = notConstructed.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCourierByUserQueryIsNotConstructed)
}

func TestNewListRecipientsQuery(t *testing.T) {
	query := queries.NewListRecipientsQuery("", 3)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Search())
	assert.Equal(t, 3, query.Page())

	notConstructed := queries.ListRecipientsQuery{}
	err := notConstructed.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrListRecipientsQueryIsNotConstructed)
}

func TestNewGetRecipientQuery(t *testing.T) {
	recipientID := kernel.NewUUID()
	query, err := queries.NewGetRecipientQuery(recipientID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, recipientID.IsEqual(query.RecipientID()))

	_, err = queries.NewGetRecipientQuery(kernel.UUID{})
	require.Error(t, err)

	notConstructed := queries.GetRecipientQuery{}
	err = notConstructed.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRecipientQueryIsNotConstructed)
}

func TestNewGetOrderEventsQuery(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderEventsQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, orderID.IsEqual(query.OrderID()))

	_, err = queries.NewGetOrderEventsQuery(kernel.UUID{})
	require.Error(t, err)

	notConstructed := queries.GetOrderEventsQuery{}
	err = notConstructed.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderEventsQueryIsNotConstructed)
}
