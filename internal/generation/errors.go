package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrNotConfigured is returned when no API key is configured. Nothing is
	// sent to the provider and no retry happens.
	ErrNotConfigured = errors.New("gemini API key not configured")

	// ErrEmptyResponse is returned when the model produced no usable text.
	ErrEmptyResponse = errors.New("empty response from Gemini")

	// ErrProvider wraps any other failure of a provider call.
	ErrProvider = errors.New("provider request failed")

	// ErrExhaustedRetries is returned once every attempt has failed.
	ErrExhaustedRetries = errors.New("retries exhausted")

	// ErrInvalidConfig is returned when a generator cannot be built from the
	// supplied configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// RetryError reports that all attempts of a generation failed. It matches
// ErrExhaustedRetries with errors.Is and unwraps to the last attempt's error.
type RetryError struct {
	Attempts int
	Err      error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("AI generation failed after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap exposes both the sentinel and the last underlying error.
func (e *RetryError) Unwrap() []error {
	return []error{ErrExhaustedRetries, e.Err}
}
