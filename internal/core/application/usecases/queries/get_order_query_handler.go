package queries

import (
	"context"
	"database/sql"
	"errors"

	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order or an ObjectNotFoundError when no row matches.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	r, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return r.toResponse()
}
