package http

import (
	"net/http"
	"strconv"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// defaultNearbyRadiusKm applies when the nearby search omits a radius.
const defaultNearbyRadiusKm = 10

// ListMyOrders handles GET /courier/me/orders.
func (s *Server) ListMyOrders(ctx echo.Context) error {
	actor, ok := courierActor(ctx)
	if !ok {
		return writeError(ctx, errs.NewUnauthorizedError("missing courier identity"))
	}

	profile, err := s.courierProfileFor(ctx, actor.UserID())
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListCourierOrdersQuery(
		profile.ID, ctx.QueryParam("status"), queryPage(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.ListCourierOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToJSON(orders))
}

// ListCourierOrders handles GET /courier/:courierId/orders. Admins may list
// any courier's workload; a courier may only list their own.
func (s *Server) ListCourierOrders(ctx echo.Context) error {
	courierID, err := pathUUID(ctx, "courierId")
	if err != nil {
		return writeError(ctx, err)
	}

	if _, ok := requestActor(ctx); !ok {
		return writeError(ctx, errs.NewUnauthorizedError("missing identity"))
	}

	if courier, isCourier := courierActor(ctx); isCourier {
		profile, profileErr := s.courierProfileFor(ctx, courier.UserID())
		if profileErr != nil {
			return writeError(ctx, profileErr)
		}
		if !profile.ID.IsEqual(courierID) {
			return writeError(ctx, errs.NewOperationForbiddenError(
				"listCourierOrders", "couriers may only list their own orders"))
		}
	}

	query, err := queries.NewListCourierOrdersQuery(
		courierID, ctx.QueryParam("status"), queryPage(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.queries.ListCourierOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ordersToJSON(orders))
}

// ListNearbyOrders handles GET /courier/orders/nearby.
func (s *Server) ListNearbyOrders(ctx echo.Context) error {
	actor, ok := courierActor(ctx)
	if !ok {
		return writeError(ctx, errs.NewUnauthorizedError("missing courier identity"))
	}

	latitude, err := strconv.ParseFloat(ctx.QueryParam("latitude"), 64)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("latitude", err))
	}
	longitude, err := strconv.ParseFloat(ctx.QueryParam("longitude"), 64)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("longitude", err))
	}

	radiusKm := float64(defaultNearbyRadiusKm)
	if raw := ctx.QueryParam("radiusKm"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("radiusKm", err))
		}
	}

	origin, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListNearbyOrdersQuery(actor.UserID(), origin, radiusKm)
	if err != nil {
		return writeError(ctx, err)
	}

	nearby, err := s.queries.ListNearbyOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	out := make([]nearbyOrderJSON, len(nearby))
	for i, n := range nearby {
		out[i] = nearbyOrderJSON{
			Order:      orderToJSON(n.Order),
			DistanceKm: n.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, out)
}

// WithdrawOrder handles PATCH /courier/orders/:id/withdraw.
func (s *Server) WithdrawOrder(ctx echo.Context) error {
	actor, ok := courierActor(ctx)
	if !ok {
		return writeError(ctx, errs.NewUnauthorizedError("missing courier identity"))
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewWithdrawOrderCommand(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.commands.Withdraw.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// DeliverOrder handles PATCH /courier/orders/:id/deliver. The proof photo
// arrives as a multipart file and is stored before the transition runs; a
// rejected transition removes the stored file again.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	actor, ok := courierActor(ctx)
	if !ok {
		return writeError(ctx, errs.NewUnauthorizedError("missing courier identity"))
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		return writeError(ctx, errs.NewValueIsRequiredError("photo"))
	}

	src, err := file.Open()
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("photo", err))
	}
	defer src.Close()

	reqCtx := ctx.Request().Context()
	reference, err := s.uploads.Save(reqCtx, file.Filename, src)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, actor, reference)
	if err != nil {
		_ = s.uploads.Remove(reqCtx, reference)
		return writeError(ctx, err)
	}

	if _, err = s.commands.Deliver.Handle(reqCtx, cmd); err != nil {
		_ = s.uploads.Remove(reqCtx, reference)
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// ReturnOrder handles PATCH /courier/orders/:id/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	actor, ok := courierActor(ctx)
	if !ok {
		return writeError(ctx, errs.NewUnauthorizedError("missing courier identity"))
	}

	orderID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req returnOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewReturnOrderCommand(orderID, actor, req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.commands.Return.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID)
}

// courierProfileFor resolves the courier profile owned by a user account.
func (s *Server) courierProfileFor(
	ctx echo.Context,
	userID kernel.UUID,
) (queries.CourierResponse, error) {
	query, err := queries.NewGetCourierByUserQuery(userID)
	if err != nil {
		return queries.CourierResponse{}, err
	}
	return s.queries.GetCourierByUser.Handle(ctx.Request().Context(), query)
}
