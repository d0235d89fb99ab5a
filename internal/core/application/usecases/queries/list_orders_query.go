package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves a page of orders, optionally narrowed by
// status, courier, or recipient. An empty status string means no status
// filter; nil identifiers mean no filter on that column.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status      order.Status
	courierID   *kernel.UUID
	recipientID *kernel.UUID
	page        int

	guard kernel.ConstructorGuard
}

// NewListOrdersQuery creates an order listing query. The status filter is
// parsed from its textual form; pass an empty string to list every status.
func NewListOrdersQuery(
	status string,
	courierID *kernel.UUID,
	recipientID *kernel.UUID,
	page int,
) (ListOrdersQuery, error) {
	query := ListOrdersQuery{
		page:  page,
		guard: kernel.NewConstructorGuard(),
	}

	if err := query.setStatus(status); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := query.setCourierID(courierID); err != nil {
		return ListOrdersQuery{}, err
	}
	if err := query.setRecipientID(recipientID); err != nil {
		return ListOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or order.Unknown when unfiltered.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// CourierID returns the courier filter, or nil when unfiltered.
func (q ListOrdersQuery) CourierID() *kernel.UUID {
	return q.courierID
}

// RecipientID returns the recipient filter, or nil when unfiltered.
func (q ListOrdersQuery) RecipientID() *kernel.UUID {
	return q.recipientID
}

// Page returns the requested 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q *ListOrdersQuery) setStatus(status string) error {
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

func (q *ListOrdersQuery) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	q.courierID = courierID
	return nil
}

func (q *ListOrdersQuery) setRecipientID(recipientID *kernel.UUID) error {
	if recipientID == nil {
		return nil
	}
	if err := recipientID.Validate(); err != nil {
		return err
	}
	q.recipientID = recipientID
	return nil
}
