package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundFactory(t *testing.T) {
	err := NotFound("Game")
	assert.Equal(t, http.StatusNotFound, err.HTTPCode)
	assert.Equal(t, "Game not found", err.Message)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := InternalError(cause)

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.True(t, As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
}

func TestWithDetails(t *testing.T) {
	err := ValidationError(map[string]string{"email": "must be a valid email"})
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
	assert.NotNil(t, err.Details)
}

func TestSentinelComparison(t *testing.T) {
	wrapped := fmt.Errorf("login failed: %w", ErrInvalidCredentials)
	assert.ErrorIs(t, wrapped, ErrInvalidCredentials)
	assert.NotErrorIs(t, wrapped, ErrInsufficientPermissions)
}
