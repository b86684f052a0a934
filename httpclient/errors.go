package httpclient

import (
	"errors"
	"fmt"
)

// ErrMissingBaseURL is returned when a Client is constructed without a base
// URL.
var ErrMissingBaseURL = errors.New("base URL is required")

// errBodyExcerptLen caps how much of an error response body is carried in a
// StatusError.
const errBodyExcerptLen = 512

// StatusError reports a non-2xx response. 4xx responses fail immediately;
// 5xx responses are retried up to the configured attempt budget and surface
// as a StatusError only once that budget is spent.
type StatusError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// RequestID is the X-Request-ID the failed request was sent with.
	RequestID string

	// Body holds up to errBodyExcerptLen bytes of the response body.
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request %s failed with status %d", e.RequestID, e.StatusCode)
	}

	return fmt.Sprintf("request %s failed with status %d: %s", e.RequestID, e.StatusCode, e.Body)
}

// IsStatus reports whether err is a StatusError with the given status code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}
