package nutrition

import (
	"errors"
	"fmt"
	"math"
)

// ErrItemNotFound is returned when a library lookup matches nothing.
var ErrItemNotFound = errors.New("library item not found")

// ValidationError reports a rejected input value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NonNegative rejects values below zero and non-finite values.
func NonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return &ValidationError{Field: field, Reason: "must be a finite number"}
	}
	if value < 0 {
		return &ValidationError{Field: field, Reason: "must be >= 0"}
	}
	return nil
}
