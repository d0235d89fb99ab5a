package queries

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListNearbyOrdersQueryHandler finds the courier's awaiting orders whose
// delivery addresses fall within the search radius. Candidate rows come
// from the database; distance math runs in process so the ranking has a
// single, testable implementation.
type ListNearbyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListNearbyOrdersQueryHandler creates a handler for proximity searches.
func NewListNearbyOrdersQueryHandler(db *gorm.DB) ListNearbyOrdersQueryHandler {
	return ListNearbyOrdersQueryHandler{db: db}
}

// Handle resolves the courier profile, loads awaiting orders assigned to it
// whose recipients are geocoded, and returns those within the radius sorted
// by distance. Orders without recipient coordinates never appear.
func (h ListNearbyOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListNearbyOrdersQuery,
) ([]NearbyOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var courierID uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT id FROM couriers WHERE user_id = ?
	`, query.CourierUserID().String()).Row()

	err := row.Scan(&courierID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("courierUserID", query.CourierUserID())
	}
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.recipient_id,
			o.courier_id,
			o.tracking_code,
			o.status,
			o.description,
			o.delivery_photo,
			o.awaiting_at,
			o.withdrawn_at,
			o.delivered_at,
			o.returned_at,
			o.created_at,
			o.updated_at,
			r.latitude,
			r.longitude
		FROM orders o
		JOIN recipients r ON r.id = o.recipient_id
		WHERE o.courier_id = ?
		  AND o.status = ?
		  AND r.latitude IS NOT NULL
		  AND r.longitude IS NOT NULL
		ORDER BY o.created_at, o.id
	`, courierID.String(), order.Awaiting.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]nearbyCandidate, 0)
	for rows.Next() {
		var (
			r                   orderRow
			latitude, longitude float64
		)
		scanErr := rows.Scan(
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
			&latitude,
			&longitude,
		)
		if scanErr != nil {
			return nil, scanErr
		}

		resp, respErr := r.toResponse()
		if respErr != nil {
			return nil, respErr
		}
		location, locErr := kernel.NewGeoPoint(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		candidates = append(candidates, nearbyCandidate{order: resp, location: location})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rankByDistance(query.Origin(), query.RadiusKm(), candidates), nil
}

// nearbyCandidate pairs an order with its delivery coordinates.
type nearbyCandidate struct {
	order    OrderResponse
	location kernel.GeoPoint
}

// rankByDistance keeps the candidates within radiusKm of origin, inclusive,
// and sorts them by ascending distance. Candidates at equal distance keep
// their input order.
func rankByDistance(
	origin kernel.GeoPoint,
	radiusKm float64,
	candidates []nearbyCandidate,
) []NearbyOrderResponse {
	ranked := make([]NearbyOrderResponse, 0, len(candidates))
	for _, candidate := range candidates {
		distance := origin.DistanceKm(candidate.location)
		if distance > radiusKm {
			continue
		}
		ranked = append(ranked, NearbyOrderResponse{
			Order:      candidate.order,
			DistanceKm: distance,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	return ranked
}
