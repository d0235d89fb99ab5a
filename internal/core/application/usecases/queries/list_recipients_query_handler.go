package queries

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRecipientsQueryHandler reads pages of recipient profiles.
type ListRecipientsQueryHandler struct {
	db *gorm.DB
}

// NewListRecipientsQueryHandler creates a handler for recipient listings.
func NewListRecipientsQueryHandler(db *gorm.DB) ListRecipientsQueryHandler {
	return ListRecipientsQueryHandler{db: db}
}

// Handle lists recipients ordered by name for stable paging.
func (h ListRecipientsQueryHandler) Handle(
	ctx context.Context,
	query ListRecipientsQuery,
) ([]RecipientResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
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
	`
	args := make([]any, 0, 4)
	if search := query.Search(); search != "" {
		sql += ` WHERE name ILIKE ? OR city ILIKE ?`
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	sql += ` ORDER BY name, id LIMIT ? OFFSET ?`
	args = append(args, defaultPageSize, pageOffset(query.Page()))

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipients := make([]RecipientResponse, 0)
	for rows.Next() {
		resp, scanErr := scanRecipientRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		recipients = append(recipients, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recipients, nil
}

func scanRecipientRow(s rowScanner) (RecipientResponse, error) {
	var (
		id                  uuid.UUID
		name, street        string
		number, city, state string
		cep, phone, email   string
		latitude, longitude *float64
	)

	err := s.Scan(
		&id,
		&name,
		&street,
		&number,
		&city,
		&state,
		&cep,
		&phone,
		&email,
		&latitude,
		&longitude,
	)
	if err != nil {
		return RecipientResponse{}, err
	}

	recipientID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RecipientResponse{}, err
	}

	return RecipientResponse{
		ID:        recipientID,
		Name:      name,
		Street:    street,
		Number:    number,
		City:      city,
		State:     state,
		CEP:       cep,
		Phone:     phone,
		Email:     email,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}
