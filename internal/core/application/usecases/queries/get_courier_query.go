package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery retrieves a single courier profile by its identifier.
type GetCourierQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetCourierQuery creates a query for one courier.
func NewGetCourierQuery(courierID kernel.UUID) (GetCourierQuery, error) {
	query := GetCourierQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return GetCourierQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the courier to retrieve.
func (q GetCourierQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q *GetCourierQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	q.courierID = courierID
	return nil
}
