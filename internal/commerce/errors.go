package commerce

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidBaseURL = errors.New("commerce: invalid base url")
	ErrDecode         = errors.New("commerce: malformed response")
)

// APIError is returned for any non-2xx response from the commerce API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce api %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the upstream status of err, or 0 when err is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
