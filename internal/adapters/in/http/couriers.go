package http

import (
	"net/http"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) respondWithCourier(ctx echo.Context, status int, courierID kernel.UUID) error {
	query, err := queries.NewGetCourierQuery(courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.queries.GetCourier.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, courierToJSON(res))
}

// CreateCourier handles POST /couriers. Registration creates the courier's
// login account and profile together.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req createCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(
		courierID, req.Name, req.CPF, req.Password, req.Phone, req.Vehicle)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.commands.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCourier(ctx, http.StatusCreated, courierID)
}

// ListCouriers handles GET /couriers.
func (s *Server) ListCouriers(ctx echo.Context) error {
	query := queries.NewListCouriersQuery(ctx.QueryParam("search"), queryPage(ctx))

	couriers, err := s.queries.ListCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	out := make([]courierJSON, len(couriers))
	for i, c := range couriers {
		out[i] = courierToJSON(c)
	}

	return ctx.JSON(http.StatusOK, out)
}

// GetCourier handles GET /couriers/:id.
func (s *Server) GetCourier(ctx echo.Context) error {
	courierID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCourier(ctx, http.StatusOK, courierID)
}

// UpdateCourier handles PUT /couriers/:id.
func (s *Server) UpdateCourier(ctx echo.Context) error {
	courierID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateCourierRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewUpdateCourierCommand(courierID, req.Name, req.Phone, req.Vehicle)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.commands.UpdateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCourier(ctx, http.StatusOK, courierID)
}

// DeleteCourier handles DELETE /couriers/:id.
func (s *Server) DeleteCourier(ctx echo.Context) error {
	courierID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteCourierCommand(courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePassword handles PATCH /users/:id/password.
func (s *Server) ChangePassword(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req changePasswordRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewChangePasswordCommand(userID, req.NewPassword)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.ChangePassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
