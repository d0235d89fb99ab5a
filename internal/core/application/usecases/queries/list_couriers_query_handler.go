package queries

import (
	"context"

	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCouriersQueryHandler reads pages of couriers with the name and CPF of
// their backing accounts.
type ListCouriersQueryHandler struct {
	db *gorm.DB
}

// NewListCouriersQueryHandler creates a handler for courier listings.
func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

// Handle lists couriers ordered by name for stable paging.
func (h ListCouriersQueryHandler) Handle(
	ctx context.Context,
	query ListCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			c.id,
			c.user_id,
			u.name,
			u.cpf,
			c.phone,
			c.vehicle
		FROM couriers c
		JOIN users u ON u.id = c.user_id
	`
	args := make([]any, 0, 3)
	if search := query.Search(); search != "" {
		if digits := kernel.NormalizeCPF(search); digits != "" {
			sql += ` WHERE u.name ILIKE ? OR u.cpf LIKE ?`
			args = append(args, "%"+search+"%", "%"+digits+"%")
		} else {
			sql += ` WHERE u.name ILIKE ?`
			args = append(args, "%"+search+"%")
		}
	}
	sql += ` ORDER BY u.name, c.id LIMIT ? OFFSET ?`
	args = append(args, defaultPageSize, pageOffset(query.Page()))

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]CourierResponse, 0)
	for rows.Next() {
		var (
			id, userID               uuid.UUID
			name, cpf, phone, vehicle string
		)
		if scanErr := rows.Scan(&id, &userID, &name, &cpf, &phone, &vehicle); scanErr != nil {
			return nil, scanErr
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(userID[:])
		if idErr != nil {
			return nil, idErr
		}

		couriers = append(couriers, CourierResponse{
			ID:      courierID,
			UserID:  ownerID,
			Name:    name,
			CPF:     cpf,
			Phone:   phone,
			Vehicle: vehicle,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
