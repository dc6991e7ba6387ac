package config

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is matched by every *InvalidParameterError.
var ErrInvalidParameter = errors.New("config: invalid parameter")

// InvalidParameterError reports a setting outside its declared range.
type InvalidParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *InvalidParameterError) Unwrap() error {
	return ErrInvalidParameter
}

func invalid(field string, value any, format string, args ...any) error {
	return &InvalidParameterError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
