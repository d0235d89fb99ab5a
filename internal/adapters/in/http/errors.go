package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error body returned by every endpoint.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps an application error onto an HTTP status. Unrecognized
// errors become a 500 with a generic message so internals never leak to
// clients; the underlying error is logged with the request context instead.
func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"component", "http",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = "internal server error"
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: message,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrDuplicateValue):
		return http.StatusConflict
	case errors.Is(err, errs.ErrOperationForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
