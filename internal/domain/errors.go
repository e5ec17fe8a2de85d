package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed projection input or configuration.
// It is the only failure kind the projection engine produces.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputf returns an error wrapping ErrInvalidInput with a formatted detail.
func InvalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
