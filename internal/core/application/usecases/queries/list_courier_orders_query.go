package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

var ErrListCourierOrdersQueryIsNotConstructed = errors.New(
	"ListCourierOrdersQuery must be created via NewListCourierOrdersQuery constructor",
)

// ListCourierOrdersQuery retrieves a page of orders assigned to one
// courier, optionally narrowed by status.
type ListCourierOrdersQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	status    order.Status
	page      int

	guard kernel.ConstructorGuard
}

// NewListCourierOrdersQuery creates a courier workload query. Pass an
// empty status string to list every status.
func NewListCourierOrdersQuery(
	courierID kernel.UUID,
	status string,
	page int,
) (ListCourierOrdersQuery, error) {
	query := ListCourierOrdersQuery{
		page:  page,
		guard: kernel.NewConstructorGuard(),
	}

	if err := query.setCourierID(courierID); err != nil {
		return ListCourierOrdersQuery{}, err
	}
	if err := query.setStatus(status); err != nil {
		return ListCourierOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the courier whose orders are listed.
func (q ListCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Status returns the status filter, or order.Unknown when unfiltered.
func (q ListCourierOrdersQuery) Status() order.Status {
	return q.status
}

// Page returns the requested 1-based page number.
func (q ListCourierOrdersQuery) Page() int {
	return q.page
}

func (q *ListCourierOrdersQuery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	q.courierID = courierID
	return nil
}

func (q *ListCourierOrdersQuery) setStatus(status string) error {
	if status == "" {
		q.status = order.Unknown
		return nil
	}
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return err
	}
	q.status = parsed
	return nil
}
