package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrGetOrderEventsQueryIsNotConstructed = errors.New(
	"GetOrderEventsQuery must be created via NewGetOrderEventsQuery constructor",
)

// GetOrderEventsQuery retrieves the audit trail of one order.
type GetOrderEventsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetOrderEventsQuery creates a query for an order's event history.
func NewGetOrderEventsQuery(orderID kernel.UUID) (GetOrderEventsQuery, error) {
	query := GetOrderEventsQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderEventsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderEventsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderEventsQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderEventsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderEventsQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	q.orderID = orderID
	return nil
}
