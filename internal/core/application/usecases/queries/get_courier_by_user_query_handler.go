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

// GetCourierByUserQueryHandler reads the courier profile behind a user
// account.
type GetCourierByUserQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierByUserQueryHandler creates a handler for courier self lookups.
func NewGetCourierByUserQueryHandler(db *gorm.DB) GetCourierByUserQueryHandler {
	return GetCourierByUserQueryHandler{db: db}
}

// Handle returns the courier or an ObjectNotFoundError when the user owns
// no courier profile.
func (h GetCourierByUserQueryHandler) Handle(
	ctx context.Context,
	query GetCourierByUserQuery,
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
		WHERE c.user_id = ?
	`, query.UserID().String()).Row()

	err := row.Scan(&id, &userID, &name, &cpf, &phone, &vehicle)
	if errors.Is(err, sql.ErrNoRows) {
		return CourierResponse{}, errs.NewObjectNotFoundError("courierUserID", query.UserID())
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
