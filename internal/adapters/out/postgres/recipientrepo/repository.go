package recipientrepo

import (
	"context"
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRecipientRepository implements ports.RecipientRepository using GORM.
type GormRecipientRepository struct {
	db *gorm.DB
}

// NewGormRecipientRepository creates a new GORM recipient repository.
func NewGormRecipientRepository(db *gorm.DB) *GormRecipientRepository {
	return &GormRecipientRepository{db: db}
}

// Add saves a new recipient profile.
func (r *GormRecipientRepository) Add(ctx context.Context, aggregate *recipient.Recipient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing recipient profile. Coordinates are always
// written so clearing a location persists as NULL.
func (r *GormRecipientRepository) Update(ctx context.Context, aggregate *recipient.Recipient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.UpdatedAt = time.Now().UTC()

	result := r.db.WithContext(ctx).Model(&RecipientDTO{}).
		Where("id = ?", dto.ID).
		Select(
			"name",
			"street",
			"number",
			"city",
			"state",
			"cep",
			"phone",
			"email",
			"latitude",
			"longitude",
			"updated_at",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("recipient", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a recipient by its identifier.
func (r *GormRecipientRepository) Get(ctx context.Context, id kernel.UUID) (*recipient.Recipient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecipientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipient", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a recipient profile.
func (r *GormRecipientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RecipientDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("recipient", id.String())
	}

	return nil
}
