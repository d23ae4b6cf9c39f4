package upstreamproxy

import (
	"errors"
	"fmt"
)

// ErrInvalidProxyURL indicates a configured proxy URL failed validation.
var ErrInvalidProxyURL = errors.New("upstreamproxy: invalid proxy URL")

// InvalidProxyURLError is returned when a proxy URL fails validation.
// It wraps ErrInvalidProxyURL so that errors.Is(err, ErrInvalidProxyURL)
// still works, and additionally wraps the underlying parse error when the
// URL was unparseable.
type InvalidProxyURLError struct {
	// Var is the environment variable the URL was configured through.
	Var string
	// URL is the offending proxy URL.
	URL string
	// Reason explains which validation clause failed.
	Reason string
	// Err is the underlying parse error, nil unless the URL was unparseable.
	Err error
}

func (e *InvalidProxyURLError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s in %s: %q: %v", ErrInvalidProxyURL.Error(), e.Var, e.URL, e.Err)
	}
	return fmt.Sprintf("%s in %s: %q: %s", ErrInvalidProxyURL.Error(), e.Var, e.URL, e.Reason)
}

func (e *InvalidProxyURLError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidProxyURL, e.Err}
	}
	return []error{ErrInvalidProxyURL}
}
