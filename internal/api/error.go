package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNetworkUnavailable wraps transport failures, where no response came back.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrUndecodableResponse marks a 2xx answer whose body did not fit the
	// expected type. The call itself succeeded.
	ErrUndecodableResponse = errors.New("decode response")

	ErrMissingToken = errors.New("login response has no token")
	ErrMissingID    = errors.New("id is required")
)

// Error is a non-2xx answer from the backend.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
