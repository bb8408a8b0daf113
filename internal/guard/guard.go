// Package guard checks the physical dimensions of a computation's
// arguments before the computation runs.
package guard

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gomech/internal/units"
)

// ErrArity is returned when a guarded call receives the wrong number of
// arguments.
var ErrArity = errors.New("wrong number of arguments")

// Dimensioned is anything that reports a physical dimension. units.Quantity
// satisfies it.
type Dimensioned interface {
	Dim() units.Dimension
}

// Slot describes one positional parameter.
type Slot struct {
	Name string
	Dim  units.Dimension
	// Free marks a plain scalar or selector that is not checked.
	Free bool
}

// Want declares a parameter that must carry dimension d.
func Want(name string, d units.Dimension) Slot {
	return Slot{Name: name, Dim: d}
}

// Free declares an unconstrained parameter.
func Free(name string) Slot {
	return Slot{Name: name, Free: true}
}

// Signature is the ordered list of slots a computation expects.
type Signature struct {
	Func  string
	Slots []Slot
}

// New builds a signature for the named computation.
func New(fn string, slots ...Slot) Signature {
	return Signature{Func: fn, Slots: slots}
}

// Check validates args against the signature and returns the first
// mismatch as a *units.DimensionError.
func (s Signature) Check(args ...any) error {
	if len(args) != len(s.Slots) {
		return fmt.Errorf("%s: %w: want %d, got %d", s.Func, ErrArity, len(s.Slots), len(args))
	}
	for i, slot := range s.Slots {
		if slot.Free {
			continue
		}
		d, ok := args[i].(Dimensioned)
		if !ok {
			return &units.DimensionError{
				Op: s.Func, Index: i, Param: slot.Name,
				Want: slot.Dim, GotType: fmt.Sprintf("%T", args[i]),
			}
		}
		if got := d.Dim(); got != slot.Dim {
			return &units.DimensionError{Op: s.Func, Index: i, Param: slot.Name, Want: slot.Dim, Got: got}
		}
	}
	return nil
}

// Func is a computation over positional arguments.
type Func[T any] func(args ...any) (T, error)

// Wrap returns fn guarded by s: fn is only invoked once every argument has
// passed Check.
func Wrap[T any](s Signature, fn Func[T]) Func[T] {
	return func(args ...any) (T, error) {
		if err := s.Check(args...); err != nil {
			var zero T
			return zero, err
		}
		return fn(args...)
	}
}
