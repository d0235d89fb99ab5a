package queries

import (
	"context"
	"database/sql"
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierQueryHandler reads a single courier joined with its account.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for single-courier lookups.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle returns the courier or an ObjectNotFoundError when no row matches.
func (h GetCourierQueryHandler) Handle(
	ctx context.Context,
	query GetCourierQuery,
) (CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierResponse{}, err
	}

	var (
		id, userID                uuid.UUID
		name, cpf, phone, vehicle string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.user_id,
			u.name,
			u.cpf,
			c.phone,
			c.vehicle
		FROM couriers c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = ?
	`, query.CourierID().String()).Row()

	err := row.Scan(&id, &userID, &name, &cpf, &phone, &vehicle)
	if errors.Is(err, sql.ErrNoRows) {
		return CourierResponse{}, errs.NewObjectNotFoundError("courierID", query.CourierID())
	}
	if err != nil {
		return CourierResponse{}, err
	}

	courierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CourierResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return CourierResponse{}, err
	}

	return CourierResponse{
		ID:      courierID,
		UserID:  ownerID,
		Name:    name,
		CPF:     cpf,
		Phone:   phone,
		Vehicle: vehicle,
	}, nil
}
