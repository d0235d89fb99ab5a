package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrListCouriersQueryIsNotConstructed = errors.New(
	"ListCouriersQuery must be created via NewListCouriersQuery constructor",
)

// ListCouriersQuery retrieves a page of courier profiles joined with their
// backing accounts. An optional search term matches against the account
// name or CPF.
type ListCouriersQuery struct {
	search string
	page   int

	guard kernel.ConstructorGuard
}

// NewListCouriersQuery creates a courier listing query. Pass an empty
// search term to list every courier.
func NewListCouriersQuery(search string, page int) ListCouriersQuery {
	return ListCouriersQuery{
		search: search,
		page:   page,
		guard:  kernel.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

// Search returns the optional name or CPF search term.
func (q ListCouriersQuery) Search() string {
	return q.search
}

// Page returns the requested 1-based page number.
func (q ListCouriersQuery) Page() int {
	return q.page
}
