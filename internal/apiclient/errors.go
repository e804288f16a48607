// Package apiclient is a typed wrapper over the Adhyan Guru super-admin
// REST API. It holds no session state, performs no retries and no caching:
// every method issues exactly one request and surfaces the outcome to the
// caller.
package apiclient

import (
	"encoding/json"
	"errors"
	"net/http"
)

// NetworkErrorMessage is the user-facing fallback shown when a request never
// reached the platform API or its response could not be parsed.
const NetworkErrorMessage = "Network error. Please check your connection and try again."

// ErrUnauthorized marks responses where the platform API rejected the bearer
// token. Callers must treat it as a forced logout signal.
var ErrUnauthorized = errors.New("platform api rejected the bearer token")

// APIError is the normalized error returned by every client method.
// Message is always safe to show to the user: it carries the server's
// message field when one was present, the per-operation fallback for a
// bare rejection, or NetworkErrorMessage for transport failures.
type APIError struct {
	// Status is the HTTP status code, or 0 when the request never
	// completed (transport failure, response parse failure).
	Status  int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause; 401 responses additionally match
// ErrUnauthorized via errors.Is.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return e.Cause
}

// IsNetwork reports whether the error represents a transport-level failure
// (the request never completed).
func (e *APIError) IsNetwork() bool {
	return e.Status == 0
}

// networkError wraps a transport or parse failure with the generic message.
func networkError(cause error) *APIError {
	return &APIError{Message: NetworkErrorMessage, Cause: cause}
}

// rejectionError builds the error for a non-2xx response: the server's
// message/error field when present, else the per-operation fallback.
func rejectionError(status int, body []byte, fallback string) *APIError {
	msg := fallback
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Error != "":
			msg = payload.Error
		}
	}
	return &APIError{Status: status, Message: msg}
}

// UserMessage extracts the displayable message from any error returned by
// this package, falling back to the provided default for foreign errors.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
