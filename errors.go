package constellation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is returned when the orbit cannot exist (e.g. e >= 1 or a non positive radius).
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrInconsistentParameters is returned when the parameters disagree with each other.
	ErrInconsistentParameters = errors.New("inconsistent parameters")
)

// ParameterError names the parameter field which failed validation.
type ParameterError struct {
	Kind   error // ErrInvalidGeometry or ErrInconsistentParameters
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Reason)
}

// Unwrap allows errors.Is against the kind sentinels.
func (e *ParameterError) Unwrap() error {
	return e.Kind
}

func invalid(field, format string, args ...interface{}) error {
	return &ParameterError{ErrInvalidGeometry, field, fmt.Sprintf(format, args...)}
}

func inconsistent(field, format string, args ...interface{}) error {
	return &ParameterError{ErrInconsistentParameters, field, fmt.Sprintf(format, args...)}
}

// kindLabel returns the metrics label for an error.
func kindLabel(err error) string {
	switch {
	case errors.Is(err, ErrInvalidGeometry):
		return "invalid_geometry"
	case errors.Is(err, ErrInconsistentParameters):
		return "inconsistent_parameters"
	default:
		return "other"
	}
}
