package units

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is matched by every DimensionError.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrIncompatibleDimension is matched by conversions and additions
	// between unrelated dimensions.
	ErrIncompatibleDimension = errors.New("incompatible dimension")
	// ErrUnknownUnit is matched by UnknownUnitError.
	ErrUnknownUnit = errors.New("unknown unit")
)

// DimensionError reports an operand whose dimension does not match what an
// operation expects.
type DimensionError struct {
	Op    string // operation or guarded function name
	Index int    // positional argument index, -1 when not applicable
	Param string // parameter name, may be empty
	Want  Dimension
	Got   Dimension
	// GotType is set when the argument was not a dimensioned value at all.
	GotType string
}

func (e *DimensionError) Error() string {
	got := e.Got.String()
	if e.GotType != "" {
		got = "non-quantity " + e.GotType
	}
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s: want %s, got %s", e.Op, ErrDimensionMismatch, e.Want, got)
	}
	param := fmt.Sprintf("argument %d", e.Index)
	if e.Param != "" {
		param += " (" + e.Param + ")"
	}
	return fmt.Sprintf("%s: %s for %s: want %s, got %s", e.Op, ErrDimensionMismatch, param, e.Want, got)
}

// Is matches ErrDimensionMismatch always, and ErrIncompatibleDimension for
// additive operations where the operands had to share a dimension.
func (e *DimensionError) Is(target error) bool {
	switch target {
	case ErrDimensionMismatch:
		return true
	case ErrIncompatibleDimension:
		return e.Op == "add" || e.Op == "sub" || e.Op == "compare"
	}
	return false
}

// ConversionError reports a unit conversion across unrelated dimensions.
type ConversionError struct {
	From, To Unit
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s (%s) to %s (%s): %s",
		e.From.Symbol, e.From.Dim, e.To.Symbol, e.To.Dim, ErrIncompatibleDimension)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrIncompatibleDimension
}

// UnknownUnitError reports a symbol missing from a Catalog or an expression
// that cannot be parsed.
type UnknownUnitError struct {
	Symbol string
	Expr   string
}

func (e *UnknownUnitError) Error() string {
	if e.Expr != "" && e.Expr != e.Symbol {
		return fmt.Sprintf("%s %q in %q", ErrUnknownUnit, e.Symbol, e.Expr)
	}
	return fmt.Sprintf("%s %q", ErrUnknownUnit, e.Symbol)
}

func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}
