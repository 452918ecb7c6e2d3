package llm

import "errors"

var (
	// ErrUnavailable indicates the Gemini API could not be reached.
	ErrUnavailable = errors.New("ai service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("ai request timed out")

	// ErrEmptyResponse indicates the model returned no usable text.
	ErrEmptyResponse = errors.New("empty ai response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("ai retry attempts exhausted")
)
