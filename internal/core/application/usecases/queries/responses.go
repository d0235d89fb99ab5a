// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read directly from the database and return flat response
// structures; they never load aggregates or modify state.
package queries

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// defaultPageSize caps every paginated listing.
const defaultPageSize = 20

// pageOffset converts a 1-based page number into a row offset.
// Page values below 1 are treated as the first page.
func pageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * defaultPageSize
}

// OrderResponse is the flat read model of an order returned by every
// order query.
type OrderResponse struct {
	ID            kernel.UUID
	RecipientID   kernel.UUID
	CourierID     *kernel.UUID
	TrackingCode  string
	Status        string
	Description   string
	DeliveryPhoto string
	AwaitingAt    *time.Time
	WithdrawnAt   *time.Time
	DeliveredAt   *time.Time
	ReturnedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// orderRow is the scan target for order queries.
type orderRow struct {
	ID            uuid.UUID
	RecipientID   uuid.UUID
	CourierID     *uuid.UUID
	TrackingCode  string
	Status        string
	Description   string
	DeliveryPhoto string
	AwaitingAt    *time.Time
	WithdrawnAt   *time.Time
	DeliveredAt   *time.Time
	ReturnedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// orderColumns is the select list matching orderRow.
const orderColumns = `
	id,
	recipient_id,
	courier_id,
	tracking_code,
	status,
	description,
	delivery_photo,
	awaiting_at,
	withdrawn_at,
	delivered_at,
	returned_at,
	created_at,
	updated_at`

// rowScanner abstracts *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(s rowScanner) (orderRow, error) {
	var r orderRow
	err := s.Scan(
		&r.ID,
		&r.RecipientID,
		&r.CourierID,
		&r.TrackingCode,
		&r.Status,
		&r.Description,
		&r.DeliveryPhoto,
		&r.AwaitingAt,
		&r.WithdrawnAt,
		&r.DeliveredAt,
		&r.ReturnedAt,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	return r, err
}

func (r orderRow) toResponse() (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	recipientID, err := kernel.UUIDFromBytes(r.RecipientID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	resp := OrderResponse{
		ID:            id,
		RecipientID:   recipientID,
		TrackingCode:  r.TrackingCode,
		Status:        r.Status,
		Description:   r.Description,
		DeliveryPhoto: r.DeliveryPhoto,
		AwaitingAt:    r.AwaitingAt,
		WithdrawnAt:   r.WithdrawnAt,
		DeliveredAt:   r.DeliveredAt,
		ReturnedAt:    r.ReturnedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}

	if r.CourierID != nil {
		courierID, err := kernel.UUIDFromBytes((*r.CourierID)[:])
		if err != nil {
			return OrderResponse{}, err
		}
		resp.CourierID = &courierID
	}

	return resp, nil
}

// CourierResponse is the flat read model of a courier profile joined with
// its backing user.
type CourierResponse struct {
	ID      kernel.UUID
	UserID  kernel.UUID
	Name    string
	CPF     string
	Phone   string
	Vehicle string
}

// RecipientResponse is the flat read model of a recipient profile.
type RecipientResponse struct {
	ID        kernel.UUID
	Name      string
	Street    string
	Number    string
	City      string
	State     string
	CEP       string
	Phone     string
	Email     string
	Latitude  *float64
	Longitude *float64
}

// DeliveryEventResponse is the flat read model of an order audit record.
type DeliveryEventResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Type      string
	Payload   string
	CreatedAt time.Time
}
