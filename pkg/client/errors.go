package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrBaseURLRequired is returned by New when no backend address is configured.
var ErrBaseURLRequired = errors.New("base URL is required")

// APIError represents a non-success response from the profile backend.
// It carries the status code and raw body text so callers can decide
// user-visible behavior. The client never retries and never caches errors.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("backend error (status %d) on %s %s: %s",
			e.StatusCode, e.Method, e.Path, e.Body)
	}
	return fmt.Sprintf("backend error (status %d) on %s %s",
		e.StatusCode, e.Method, e.Path)
}

// IsNotFound reports whether the backend answered 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// AsAPIError unwraps err into an *APIError if one is in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
