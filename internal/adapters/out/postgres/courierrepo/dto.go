// Package courierrepo persists courier profiles.
package courierrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/courier"
	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the database row backing a courier profile. One profile per
// user account, enforced by the unique index on user_id.
type CourierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;column:user_id"`
	Phone     string
	Vehicle   string
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:      aggregate.ID().Bytes(),
		UserID:  aggregate.UserID().Bytes(),
		Phone:   aggregate.Phone(),
		Vehicle: aggregate.Vehicle(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, userID, dto.Phone, dto.Vehicle)
}
