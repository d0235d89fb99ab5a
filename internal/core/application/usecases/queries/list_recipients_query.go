package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrListRecipientsQueryIsNotConstructed = errors.New(
	"ListRecipientsQuery must be created via NewListRecipientsQuery constructor",
)

// ListRecipientsQuery retrieves a page of recipient profiles. An optional
// search term matches against the recipient name or city.
type ListRecipientsQuery struct {
	search string
	page   int

	guard kernel.ConstructorGuard
}

// NewListRecipientsQuery creates a recipient listing query. Pass an empty
// search term to list every recipient.
func NewListRecipientsQuery(search string, page int) ListRecipientsQuery {
	return ListRecipientsQuery{
		search: search,
		page:   page,
		guard:  kernel.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListRecipientsQuery) Validate() error {
	return q.guard.Validate(ErrListRecipientsQueryIsNotConstructed)
}

// Search returns the optional name or city search term.
func (q ListRecipientsQuery) Search() string {
	return q.search
}

// Page returns the requested 1-based page number.
func (q ListRecipientsQuery) Page() int {
	return q.page
}
