package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
)

var ErrGetRecipientQueryIsNotConstructed = errors.New(
	"GetRecipientQuery must be created via NewGetRecipientQuery constructor",
)

// GetRecipientQuery retrieves a single recipient profile by its identifier.
type GetRecipientQuery struct { //nolint:recvcheck //using for validation
	recipientID kernel.UUID

	guard kernel.ConstructorGuard
}

// NewGetRecipientQuery creates a query for one recipient.
func NewGetRecipientQuery(recipientID kernel.UUID) (GetRecipientQuery, error) {
	query := GetRecipientQuery{
		guard: kernel.NewConstructorGuard(),
	}

	if err := query.setRecipientID(recipientID); err != nil {
		return GetRecipientQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecipientQuery) Validate() error {
	return q.guard.Validate(ErrGetRecipientQueryIsNotConstructed)
}

// RecipientID returns the recipient to retrieve.
func (q GetRecipientQuery) RecipientID() kernel.UUID {
	return q.recipientID
}

func (q *GetRecipientQuery) setRecipientID(recipientID kernel.UUID) error {
	if err := recipientID.Validate(); err != nil {
		return err
	}
	q.recipientID = recipientID
	return nil
}
