package queries

import (
	"context"
	"strings"

	"fastfeet/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads pages of orders with optional filters.
// Results are ordered by creation time, newest first, so recent activity
// shows on the first page.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. An empty page is a valid response, not an
// error.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 5)

	if query.Status() != order.Unknown {
		conditions = append(conditions, "status = ?")
		args = append(args, query.Status().String())
	}
	if query.CourierID() != nil {
		conditions = append(conditions, "courier_id = ?")
		args = append(args, query.CourierID().String())
	}
	if query.RecipientID() != nil {
		conditions = append(conditions, "recipient_id = ?")
		args = append(args, query.RecipientID().String())
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, defaultPageSize, pageOffset(query.Page()))

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		`+where+`
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		r, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		resp, respErr := r.toResponse()
		if respErr != nil {
			return nil, respErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
