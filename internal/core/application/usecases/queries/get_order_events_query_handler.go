package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderEventsQueryHandler reads the append-only audit trail of an order
// in chronological order.
type GetOrderEventsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderEventsQueryHandler creates a handler for order history lookups.
func NewGetOrderEventsQueryHandler(db *gorm.DB) GetOrderEventsQueryHandler {
	return GetOrderEventsQueryHandler{db: db}
}

// Handle returns every event recorded for the order, oldest first. An
// unknown order yields an ObjectNotFoundError rather than an empty trail.
func (h GetOrderEventsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderEventsQuery,
) ([]DeliveryEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int
	row := h.db.WithContext(ctx).Raw(`
		SELECT 1 FROM orders WHERE id = ?
	`, query.OrderID().String()).Row()

	err := row.Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			event_type,
			payload,
			created_at
		FROM delivery_events
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]DeliveryEventResponse, 0)
	for rows.Next() {
		var (
			id, orderID        uuid.UUID
			eventType, payload string
			createdAt          time.Time
		)
		if scanErr := rows.Scan(&id, &orderID, &eventType, &payload, &createdAt); scanErr != nil {
			return nil, scanErr
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		subjectID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		events = append(events, DeliveryEventResponse{
			ID:        eventID,
			OrderID:   subjectID,
			Type:      eventType,
			Payload:   payload,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
