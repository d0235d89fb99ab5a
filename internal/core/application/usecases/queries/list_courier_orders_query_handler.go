package queries

import (
	"context"

	"fastfeet/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListCourierOrdersQueryHandler reads the orders assigned to a courier.
type ListCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListCourierOrdersQueryHandler creates a handler for courier workload
// listings.
func NewListCourierOrdersQueryHandler(db *gorm.DB) ListCourierOrdersQueryHandler {
	return ListCourierOrdersQueryHandler{db: db}
}

// Handle lists the courier's orders, newest first. A courier with no
// assignments yields an empty page.
func (h ListCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCourierOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "WHERE courier_id = ?"
	args := []any{query.CourierID().String()}
	if query.Status() != order.Unknown {
		where += " AND status = ?"
		args = append(args, query.Status().String())
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
