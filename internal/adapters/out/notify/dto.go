// Package notify implements the notification gateway: it records every
// recipient notification in the database and best-effort delivers it
// through a configured channel. Delivery is at-most-once; failures are
// recorded with success=false and never retried.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// NotificationDTO is the database row recording one dispatch attempt.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index;column:order_id"`
	RecipientID uuid.UUID `gorm:"type:uuid;index;column:recipient_id"`
	Status      string
	Channel     string
	Payload     string
	Success     bool
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}
