package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SleeperKt/GoogleTeamRepo/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Messages used when a failed Result carries no error text of its own.
const (
	msgGenerateFailed = "Failed to generate description"
	msgShortenFailed  = "Failed to shorten description"
	msgExpandFailed   = "Failed to expand description"
	msgInternal       = "Internal server error"
	msgInvalidFormat  = "Invalid request format"
)

// MapErrorToStatusCode maps request-handling errors to HTTP status codes
// without leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// SanitizeValidationError turns a validation error into a short,
// user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fieldName(fe.Namespace()), getValidationTagMessage(fe.Tag()))
	}

	if errors.Is(err, domain.ErrMissingField) {
		return "Validation error: " + err.Error()
	}

	return "Validation error"
}

// fieldName converts a validator namespace such as "GenerateRequest.Task.Title"
// to a dotted lower-case path without the root type, e.g. "task.title".
func fieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
