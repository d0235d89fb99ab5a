package queries

import (
	"context"
	"database/sql"
	"errors"

	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRecipientQueryHandler reads a single recipient profile.
type GetRecipientQueryHandler struct {
	db *gorm.DB
}

// NewGetRecipientQueryHandler creates a handler for single-recipient lookups.
func NewGetRecipientQueryHandler(db *gorm.DB) GetRecipientQueryHandler {
	return GetRecipientQueryHandler{db: db}
}

// Handle returns the recipient or an ObjectNotFoundError when no row matches.
func (h GetRecipientQueryHandler) Handle(
	ctx context.Context,
	query GetRecipientQuery,
) (RecipientResponse, error) {
	if err := query.Validate(); err != nil {
		return RecipientResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			street,
			number,
			city,
			state,
			cep,
			phone,
			email,
			latitude,
			longitude
		FROM recipients
		WHERE id = ?
	`, query.RecipientID().String()).Row()

	resp, err := scanRecipientRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RecipientResponse{}, errs.NewObjectNotFoundError("recipientID", query.RecipientID())
	}
	if err != nil {
		return RecipientResponse{}, err
	}

	return resp, nil
}
