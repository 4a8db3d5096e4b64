package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_HTTPCode(t *testing.T) {
	tests := []struct {
		err  *AppError
		want int
	}{
		{NewValidationError("bad", nil), http.StatusBadRequest},
		{NewConflictError("taken"), http.StatusBadRequest},
		{NewNotFoundError("missing"), http.StatusNotFound},
		{NewUnauthorizedError("no token"), http.StatusForbidden},
		{NewForbiddenError("denied"), http.StatusForbidden},
		{NewInternalError("boom", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPCode())
		})
	}
}

func TestAsAppError(t *testing.T) {
	t.Run("wrapped app error is found", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", NewNotFoundError("User not found"))

		appErr := AsAppError(err)
		assert.Equal(t, KindNotFound, appErr.Kind)
		assert.Equal(t, "User not found", appErr.Message)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		cause := errors.New("connection reset")

		appErr := AsAppError(cause)
		assert.Equal(t, KindInternal, appErr.Kind)
		assert.ErrorIs(t, appErr, cause)
	})
}

func TestResponseAppError(t *testing.T) {
	w := httptest.NewRecorder()

	ResponseAppError(w, NewValidationError("Validation failed", map[string]string{"phone": "This field is required"}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"success":false,"error":"Validation failed","errors":{"phone":"This field is required"}}`,
		w.Body.String())
}
