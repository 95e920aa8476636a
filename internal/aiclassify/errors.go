package aiclassify

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const defaultRetryAfter = 60 * time.Second

// RateLimitError reports that a classifier provider rejected a call with
// HTTP 429. RetryAfter is the provider's stated backoff, or a default when
// the provider did not state one.
type RateLimitError struct {
	Provider   string
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("aiclassify: %s rate limited, retry after %s: %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError, substituting the default
// backoff when retryAfter is not positive.
func NewRateLimitError(provider string, err error, retryAfter time.Duration) *RateLimitError {
	if retryAfter <= 0 {
		retryAfter = defaultRetryAfter
	}
	return &RateLimitError{Provider: provider, RetryAfter: retryAfter, Err: err}
}

// ParseRetryAfter converts a Retry-After header value (delay in seconds)
// into a duration. Empty, negative, or non-integer values yield zero.
func ParseRetryAfter(val string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
