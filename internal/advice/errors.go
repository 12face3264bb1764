package advice

import "errors"

var (
	// ErrServiceUnavailable indicates the advice backend is unreachable.
	ErrServiceUnavailable = errors.New("advice service unavailable")

	// ErrTimeout indicates the advice request exceeded the configured timeout.
	ErrTimeout = errors.New("advice request timed out")

	// ErrInvalidOutput indicates the backend response could not be parsed.
	ErrInvalidOutput = errors.New("invalid advice response format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("advice retry attempts exhausted")
)
