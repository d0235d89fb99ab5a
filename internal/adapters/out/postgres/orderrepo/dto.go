// Package orderrepo persists order aggregates, mapping between the domain
// model and its relational representation.
package orderrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row backing an order aggregate. Status is stored
// by name so rows stay readable and queries can filter on the public status
// values directly. The tracking code carries a unique index; collisions
// surface as duplicate value errors at insert time.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID   uuid.UUID  `gorm:"type:uuid;index;column:recipient_id"`
	CourierID     *uuid.UUID `gorm:"type:uuid;index;column:courier_id"`
	TrackingCode  string     `gorm:"uniqueIndex;column:tracking_code"`
	Status        string     `gorm:"index"`
	Description   string
	DeliveryPhoto string     `gorm:"column:delivery_photo"`
	AwaitingAt    *time.Time `gorm:"column:awaiting_at"`
	WithdrawnAt   *time.Time `gorm:"column:withdrawn_at"`
	DeliveredAt   *time.Time `gorm:"column:delivered_at"`
	ReturnedAt    *time.Time `gorm:"column:returned_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		RecipientID:   aggregate.RecipientID().Bytes(),
		CourierID:     courierID,
		TrackingCode:  aggregate.TrackingCode().String(),
		Status:        aggregate.Status().String(),
		Description:   aggregate.Description(),
		DeliveryPhoto: aggregate.DeliveryPhoto(),
		AwaitingAt:    aggregate.AwaitingAt(),
		WithdrawnAt:   aggregate.WithdrawnAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		ReturnedAt:    aggregate.ReturnedAt(),
	}
}

// toDomain reconstructs the order aggregate from a database row.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	trackingCode, err := order.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		recipientID,
		courierID,
		trackingCode,
		status,
		dto.Description,
		dto.DeliveryPhoto,
		dto.AwaitingAt,
		dto.WithdrawnAt,
		dto.DeliveredAt,
		dto.ReturnedAt,
	)
}
