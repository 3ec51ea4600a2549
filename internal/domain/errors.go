// Package domain defines the core business entities and errors.
package domain

import "errors"

// ErrMissingField is returned when a required field is empty.
// It is wrapped with the field name.
var ErrMissingField = errors.New("required field is missing")
