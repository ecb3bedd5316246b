package providers

import (
	"errors"
	"fmt"
)

// ErrLookupFailure marks any transport or upstream failure of an external API.
var ErrLookupFailure = errors.New("lookup failed")

// StatusError is returned when an upstream API answers with a non-200 status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrLookupFailure
}

// LookupError wraps a transport error so it matches ErrLookupFailure while
// keeping the cause reachable through errors.Is and errors.As.
func LookupError(provider string, err error) error {
	return fmt.Errorf("%s: %w: %w", provider, ErrLookupFailure, err)
}
