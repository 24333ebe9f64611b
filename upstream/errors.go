package upstream

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Sentinel errors for the failure classes the gateway handles globally.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("insufficient permissions")
)

// APIError carries the backend's own error message alongside the HTTP status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
}

// errorBody is the backend's error envelope. Some endpoints use "message",
// others "error".
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// classify maps a transport error or non-2xx response onto the gateway's
// error taxonomy. Transport failures (timeouts, connection refused) come
// back wrapped so callers can present a generic retry-suggesting message.
func classify(resp *resty.Response, err error, body *errorBody) error {
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	if resp.IsSuccess() {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrForbidden
	}

	msg := "request failed"
	if body != nil && body.text() != "" {
		msg = body.text()
	}
	return &APIError{Status: resp.StatusCode(), Message: msg}
}
