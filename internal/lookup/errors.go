package lookup

import (
	"context"
	"errors"
	"fmt"
)

// NetworkError reports a transport failure: unreachable host, timeout or cancellation.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("lookup request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a non-2xx response.
type HTTPStatusError struct {
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("lookup returned status %d", e.StatusCode)
}

// DecodeError reports a body that is not JSON or does not have the expected shape.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode lookup response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to decode lookup response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsCanceled reports whether err comes from a lookup that was cancelled by its caller.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
