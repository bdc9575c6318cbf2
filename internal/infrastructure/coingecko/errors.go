package coingecko

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRateLimited marks a 429 response.
	ErrRateLimited = errors.New("rate limited by upstream API")

	// ErrFetchFailed wraps the last error once all attempts are spent.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrInvalidBody is returned when a 2xx response is not valid JSON.
	ErrInvalidBody = errors.New("response body is not valid JSON")
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap lets errors.Is match ErrRateLimited on 429 responses.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	return nil
}

// IsRateLimited reports whether err came from a 429 response.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
