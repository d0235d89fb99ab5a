package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog routes the default logger into a buffer for the test's duration.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", errs.NewObjectNotFoundError("orderID", "x"), http.StatusNotFound},
		{"duplicate", errs.NewDuplicateValueError("cpf", "123"), http.StatusConflict},
		{"forbidden", errs.NewOperationForbiddenError("withdraw", "not yours"), http.StatusForbidden},
		{"unauthorized", errs.NewUnauthorizedError("bad token"), http.StatusUnauthorized},
		{"invalid transition", errs.NewInvalidTransitionError("deliver", "PENDING"), http.StatusBadRequest},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("photo"), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, statusFor(tt.err))
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	logged := captureLog(t)
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := writeError(ctx, errors.New("pq: connection refused"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, rec.Body.String(), "internal server error")
	// The hidden cause still lands in the log with the request context.
	assert.Contains(t, logged.String(), "connection refused")
	assert.Contains(t, logged.String(), "GET")
}

func TestWriteError_ExposesClientFaults(t *testing.T) {
	logged := captureLog(t)
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	err := writeError(ctx, errs.NewObjectNotFoundError("orderID", "abc"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "orderID")
	// Client faults are not error-logged.
	assert.Empty(t, logged.String())
}
