package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrGetCourierByUserQueryIsNotConstructed = errors.New(
	"GetCourierByUserQuery must be created via NewGetCourierByUserQuery constructor",
)

// GetCourierByUserQuery retrieves the courier profile owned by a user
// account. Authenticated couriers carry their user identifier, not their
// profile identifier, so self-service reads start here.
type GetCourierByUserQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetCourierByUserQuery creates a query for the courier owned by a user.
func NewGetCourierByUserQuery(userID kernel.UUID) (GetCourierByUserQuery, error) {
	query := GetCourierByUserQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetCourierByUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierByUserQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierByUserQueryIsNotConstructed)
}

// UserID returns the owning user account.
func (q GetCourierByUserQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetCourierByUserQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	q.userID = userID
	return nil
}
