// Package recipientrepo persists recipient profiles.
package recipientrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"

	"github.com/google/uuid"
)

// RecipientDTO is the database row backing a recipient profile. Coordinates
// are nullable; rows without them never match the nearby-order search.
type RecipientDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Street    string
	Number    string
	City      string
	State     string
	CEP       string   `gorm:"column:cep"`
	Phone     string
	Email     string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "recipients".
func (RecipientDTO) TableName() string {
	return "recipients"
}

func fromDomain(aggregate *recipient.Recipient) RecipientDTO {
	var latitude, longitude *float64
	if location := aggregate.Location(); location != nil {
		lat := location.Latitude()
		lon := location.Longitude()
		latitude = &lat
		longitude = &lon
	}

	address := aggregate.Address()
	return RecipientDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Street:    address.Street,
		Number:    address.Number,
		City:      address.City,
		State:     address.State,
		CEP:       address.CEP,
		Phone:     aggregate.Phone(),
		Email:     aggregate.Email(),
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return recipient.RestoreRecipient(
		id,
		dto.Name,
		recipient.Address{
			Street: dto.Street,
			Number: dto.Number,
			City:   dto.City,
			State:  dto.State,
			CEP:    dto.CEP,
		},
		dto.Phone,
		dto.Email,
		location,
	)
}
