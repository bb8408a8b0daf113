package record

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUnitSystem = errors.New("invalid unit system")
	ErrMissingColumn     = errors.New("missing column")
	ErrMalformedKey      = errors.New("malformed key")
)

// InvalidUnitSystemError names the rejected selector.
type InvalidUnitSystemError struct {
	Value string
}

func (e *InvalidUnitSystemError) Error() string {
	return fmt.Sprintf("invalid unit system %q (want si or imperial)", e.Value)
}

func (e *InvalidUnitSystemError) Is(target error) bool { return target == ErrInvalidUnitSystem }

// MissingColumnError reports a required column that is absent or empty.
type MissingColumnError struct {
	Category string
	Column   string
	Field    string
}

func (e *MissingColumnError) Error() string {
	if e.Field != "" && e.Field != e.Column {
		return fmt.Sprintf("%s: missing column %q for field %s", e.Category, e.Column, e.Field)
	}
	return fmt.Sprintf("%s: missing column %q", e.Category, e.Column)
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }

// MalformedKeyError reports a cell that cannot be parsed.
type MalformedKeyError struct {
	Category string
	Column   string
	Value    string
	Err      error
}

func (e *MalformedKeyError) Error() string {
	msg := fmt.Sprintf("%s: malformed value %q in column %q", e.Category, e.Value, e.Column)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedKeyError) Is(target error) bool { return target == ErrMalformedKey }

func (e *MalformedKeyError) Unwrap() error { return e.Err }
