package eventrepo

import (
	"context"

	"fastfeet/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormDeliveryEventRepository implements ports.DeliveryEventRepository
// using GORM.
type GormDeliveryEventRepository struct {
	db *gorm.DB
}

// NewGormDeliveryEventRepository creates a new GORM delivery event repository.
func NewGormDeliveryEventRepository(db *gorm.DB) *GormDeliveryEventRepository {
	return &GormDeliveryEventRepository{db: db}
}

// Append inserts a new audit record.
func (r *GormDeliveryEventRepository) Append(ctx context.Context, event *order.DeliveryEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}
