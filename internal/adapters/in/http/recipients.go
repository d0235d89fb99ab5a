package http

import (
	"net/http"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) respondWithRecipient(ctx echo.Context, status int, recipientID kernel.UUID) error {
	query, err := queries.NewGetRecipientQuery(recipientID)
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.queries.GetRecipient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, recipientToJSON(res))
}

// CreateRecipient handles POST /recipients.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	var req createRecipientRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	location, err := locationFrom(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	recipientID := kernel.NewUUID()
	cmd, err := commands.NewCreateRecipientCommand(
		recipientID,
		req.Name,
		recipient.Address{
			Street: req.Address.Street,
			Number: req.Address.Number,
			City:   req.Address.City,
			State:  req.Address.State,
			CEP:    req.Address.CEP,
		},
		req.Phone,
		req.Email,
		location,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.commands.CreateRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithRecipient(ctx, http.StatusCreated, recipientID)
}

// ListRecipients handles GET /recipients.
func (s *Server) ListRecipients(ctx echo.Context) error {
	query := queries.NewListRecipientsQuery(ctx.QueryParam("search"), queryPage(ctx))

	recipients, err := s.queries.ListRecipients.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	out := make([]recipientJSON, len(recipients))
	for i, r := range recipients {
		out[i] = recipientToJSON(r)
	}

	return ctx.JSON(http.StatusOK, out)
}

// GetRecipient handles GET /recipients/:id.
func (s *Server) GetRecipient(ctx echo.Context) error {
	recipientID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithRecipient(ctx, http.StatusOK, recipientID)
}

// UpdateRecipient handles PUT /recipients/:id.
func (s *Server) UpdateRecipient(ctx echo.Context) error {
	recipientID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateRecipientRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("body"))
	}

	var address *recipient.Address
	if req.Address != nil {
		address = &recipient.Address{
			Street: req.Address.Street,
			Number: req.Address.Number,
			City:   req.Address.City,
			State:  req.Address.State,
			CEP:    req.Address.CEP,
		}
	}

	location, err := locationFrom(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}
	changeLocation := req.ClearLocation || location != nil
	if req.ClearLocation {
		location = nil
	}

	cmd, err := commands.NewUpdateRecipientCommand(
		recipientID, req.Name, address, req.Phone, req.Email, changeLocation, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.commands.UpdateRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithRecipient(ctx, http.StatusOK, recipientID)
}

// DeleteRecipient handles DELETE /recipients/:id.
func (s *Server) DeleteRecipient(ctx echo.Context) error {
	recipientID, err := pathUUID(ctx, "id")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteRecipientCommand(recipientID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.commands.DeleteRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// locationFrom builds an optional geo point from a coordinate pair. Both
// coordinates must be present together.
func locationFrom(latitude, longitude *float64) (*kernel.GeoPoint, error) {
	if latitude == nil && longitude == nil {
		return nil, nil
	}
	if latitude == nil || longitude == nil {
		return nil, errs.NewValueIsRequiredError("latitude and longitude")
	}

	point, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
