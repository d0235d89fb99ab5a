package http

import (
	"net/http"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondWithOrder reads the order back and writes it with the given status.
// Mutating endpoints return the resulting order so clients never need a
// follow-up read.
func (s *Server) respondWithOrder(ctx echo.Context, status int, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, orderToJSON(res))
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	recipientID, err := kernel.UUIDFromString(req.RecipientID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("recipientId", err))
	}

	var courierID *kernel.UUID
	if req.CourierID != nil {
		id, idErr := kernel.UUIDFromString(*req.CourierID)
		if idErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("courierId", idErr))
		}
		courierID = &id
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, recipientID, courierID, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	var courierID, recipientID *kernel.UUID
	if raw := ctx.QueryParam("courierId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("courierId", err))
		}
		courierID = &id
	}
	if raw := ctx.QueryParam("recipientId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("recipientId", err))
		}
		recipientID = &id
	}

	query, err := queries.NewListOrdersQuery(
		ctx.QueryParam("status"), courierID, recipientID, queryPage(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToJSON(orders))
}

// GetOrder handles GET /orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// UpdateOrder handles PUT /orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	var recipientID *kernel.UUID
	if req.RecipientID != nil {
		id, idErr := kernel.UUIDFromString(*req.RecipientID)
		if idErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("recipientId", idErr))
		}
		recipientID = &id
	}

	var courierID *kernel.UUID
	changeCourier := req.UnassignCourier
	if req.CourierID != nil {
		id, idErr := kernel.UUIDFromString(*req.CourierID)
		if idErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("courierId", idErr))
		}
		courierID = &id
		changeCourier = true
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, recipientID, changeCourier, courierID, req.Description)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.commands.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// DeleteOrder handles DELETE /orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderAwaiting handles PATCH /orders/:id/await.
func (s *Server) MarkOrderAwaiting(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkAwaitingOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.commands.MarkAwaiting.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ListOrderEvents handles GET /orders/:id/events.
func (s *Server) ListOrderEvents(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderEventsQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	events, err := s.queries.GetOrderEvents.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	out := make([]deliveryEventJSON, len(events))
	for i, e := range events {
		out[i] = deliveryEventToJSON(e)
	}

	return ctx.JSON(http.StatusOK, out)
}
