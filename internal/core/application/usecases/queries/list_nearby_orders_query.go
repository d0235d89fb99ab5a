package queries

import (
	"errors"
	"fmt"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
)

var ErrListNearbyOrdersQueryIsNotConstructed = errors.New(
	"ListNearbyOrdersQuery must be created via NewListNearbyOrdersQuery constructor",
)

// ListNearbyOrdersQuery retrieves the awaiting orders of a courier whose
// delivery addresses lie within a radius of the courier's position.
type ListNearbyOrdersQuery struct { //nolint:recvcheck //using for validation
	courierUserID kernel.UUID
	origin        kernel.GeoPoint
	radiusKm      float64

	guard kernel.ConstructorGuard
}

// NewListNearbyOrdersQuery creates a proximity query. The radius must be
// positive; callers apply their own default before constructing the query.
func NewListNearbyOrdersQuery(
	courierUserID kernel.UUID,
	origin kernel.GeoPoint,
	radiusKm float64,
) (ListNearbyOrdersQuery, error) {
	query := ListNearbyOrdersQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := query.setCourierUserID(courierUserID); err != nil {
		return ListNearbyOrdersQuery{}, err
	}
	if err := query.setOrigin(origin); err != nil {
		return ListNearbyOrdersQuery{}, err
	}
	if err := query.setRadiusKm(radiusKm); err != nil {
		return ListNearbyOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListNearbyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListNearbyOrdersQueryIsNotConstructed)
}

// CourierUserID returns the account of the courier running the search.
func (q ListNearbyOrdersQuery) CourierUserID() kernel.UUID {
	return q.courierUserID
}

// Origin returns the courier's current position.
func (q ListNearbyOrdersQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// RadiusKm returns the search radius in kilometers.
func (q ListNearbyOrdersQuery) RadiusKm() float64 {
	return q.radiusKm
}

func (q *ListNearbyOrdersQuery) setCourierUserID(courierUserID kernel.UUID) error {
	if err := courierUserID.Validate(); err != nil {
		return err
	}
	q.courierUserID = courierUserID
	return nil
}

func (q *ListNearbyOrdersQuery) setOrigin(origin kernel.GeoPoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	q.origin = origin
	return nil
}

func (q *ListNearbyOrdersQuery) setRadiusKm(radiusKm float64) error {
	if radiusKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("radiusKm",
			fmt.Errorf("%f is not positive", radiusKm))
	}
	q.radiusKm = radiusKm
	return nil
}

// NearbyOrderResponse is an order decorated with its distance from the
// courier's position.
type NearbyOrderResponse struct {
	Order      OrderResponse
	DistanceKm float64
}
