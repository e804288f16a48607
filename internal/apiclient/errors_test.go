package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRejectionError_PrefersMessageField(t *testing.T) {
	t.Parallel()

	err := rejectionError(http.StatusBadRequest, []byte(`{"message":"Email already registered"}`), "fallback")
	assert.Equal(t, "Email already registered", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestRejectionError_FallsBackToErrorField(t *testing.T) {
	t.Parallel()

	err := rejectionError(http.StatusBadRequest, []byte(`{"error":"bad input"}`), "fallback")
	assert.Equal(t, "bad input", err.Message)
}

func TestRejectionError_UsesFallbackForOpaqueBody(t *testing.T) {
	t.Parallel()

	err := rejectionError(http.StatusBadGateway, []byte("<html>nginx</html>"), "Unable to save.")
	assert.Equal(t, "Unable to save.", err.Message)

	err = rejectionError(http.StatusBadGateway, []byte(`{}`), "Unable to save.")
	assert.Equal(t, "Unable to save.", err.Message)
}

func TestAPIError_UnauthorizedMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := rejectionError(http.StatusUnauthorized, nil, "fallback")
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = rejectionError(http.StatusForbidden, nil, "fallback")
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestNetworkError(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := networkError(cause)
	assert.True(t, err.IsNetwork())
	assert.Equal(t, NetworkErrorMessage, err.Message)
	assert.ErrorIs(t, err, cause)
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	apiErr := &APIError{Status: 400, Message: "Title is required."}
	assert.Equal(t, "Title is required.", UserMessage(apiErr, "fallback"))

	wrapped := fmt.Errorf("create board: %w", apiErr)
	assert.Equal(t, "Title is required.", UserMessage(wrapped, "fallback"))

	assert.Equal(t, "fallback", UserMessage(errors.New("plain"), "fallback"))
	assert.Equal(t, "fallback", UserMessage(nil, "fallback"))
}
