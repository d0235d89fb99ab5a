// Package eventrepo persists the append-only order audit log.
package eventrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// DeliveryEventDTO is the database row backing one audit record. Rows are
// only ever inserted.
type DeliveryEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;column:order_id"`
	EventType string    `gorm:"column:event_type"`
	Payload   string
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides GORM's default naming to use "delivery_events".
func (DeliveryEventDTO) TableName() string {
	return "delivery_events"
}

func fromDomain(event *order.DeliveryEvent) DeliveryEventDTO {
	return DeliveryEventDTO{
		ID:        event.ID().Bytes(),
		OrderID:   event.OrderID().Bytes(),
		EventType: string(event.Type()),
		Payload:   event.Payload(),
		CreatedAt: event.CreatedAt(),
	}
}
