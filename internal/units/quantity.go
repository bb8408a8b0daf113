package units

import (
	"fmt"
	"math"
	"strconv"
)

// Quantity is an immutable magnitude paired with a unit. Every operation
// returns a new Quantity.
type Quantity struct {
	mag  float64
	unit Unit
}

// New attaches a unit to a magnitude.
func New(mag float64, u Unit) Quantity {
	return Quantity{mag: mag, unit: u}
}

// Scalar returns a dimensionless quantity.
func Scalar(v float64) Quantity {
	return Quantity{mag: v, unit: One}
}

func (q Quantity) Magnitude() float64 { return q.mag }
func (q Quantity) Unit() Unit         { return q.unit }
func (q Quantity) Dim() Dimension     { return q.unit.Dim }

// base returns the magnitude in the dimension's SI base unit.
func (q Quantity) base() float64 {
	return q.mag*q.unit.Scale + q.unit.Offset
}

// Base re-expresses q in the SI base unit of its dimension.
func (q Quantity) Base() Quantity {
	return Quantity{mag: q.base(), unit: BaseUnit(q.unit.Dim)}
}

// To re-expresses q in unit u.
func (q Quantity) To(u Unit) (Quantity, error) {
	if q.unit.Dim != u.Dim {
		return Quantity{}, &ConversionError{From: q.unit, To: u}
	}
	return Quantity{mag: (q.base() - u.Offset) / u.Scale, unit: u}, nil
}

// In returns the magnitude of q expressed in unit u.
func (q Quantity) In(u Unit) (float64, error) {
	c, err := q.To(u)
	if err != nil {
		return 0, err
	}
	return c.mag, nil
}

// Add returns q + o in q's unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	oc, err := q.sameDim("add", o)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{mag: q.mag + oc.mag, unit: q.unit}, nil
}

// Sub returns q - o in q's unit.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	oc, err := q.sameDim("sub", o)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{mag: q.mag - oc.mag, unit: q.unit}, nil
}

func (q Quantity) sameDim(op string, o Quantity) (Quantity, error) {
	if q.unit.Dim != o.unit.Dim {
		return Quantity{}, &DimensionError{Op: op, Index: -1, Want: q.unit.Dim, Got: o.unit.Dim}
	}
	return o.To(q.unit)
}

// Mul returns q*o in the product unit.
func (q Quantity) Mul(o Quantity) Quantity {
	q, o = q.absolute(), o.absolute()
	return Quantity{mag: q.mag * o.mag, unit: q.unit.Mul(o.unit)}
}

// Div returns q/o in the quotient unit.
func (q Quantity) Div(o Quantity) Quantity {
	q, o = q.absolute(), o.absolute()
	return Quantity{mag: q.mag / o.mag, unit: q.unit.Div(o.unit)}
}

// Pow raises q to an integer power.
func (q Quantity) Pow(n int) Quantity {
	return q.PowRat(int64(n), 1)
}

// PowRat raises q to the rational power num/den.
func (q Quantity) PowRat(num, den int64) Quantity {
	q = q.absolute()
	return Quantity{
		mag:  powf(q.mag, float64(num)/float64(den)),
		unit: q.unit.PowRat(num, den),
	}
}

// Sqrt is PowRat(1, 2).
func (q Quantity) Sqrt() Quantity {
	return q.PowRat(1, 2)
}

// Scale multiplies the magnitude by a plain number, keeping the unit.
func (q Quantity) Scale(k float64) Quantity {
	return Quantity{mag: q.mag * k, unit: q.unit}
}

// Neg flips the sign of the magnitude.
func (q Quantity) Neg() Quantity {
	return q.Scale(-1)
}

// Abs returns q with a non-negative magnitude.
func (q Quantity) Abs() Quantity {
	return Quantity{mag: math.Abs(q.mag), unit: q.unit}
}

// absolute converts affine quantities to their base unit.
func (q Quantity) absolute() Quantity {
	if !q.unit.IsAffine() {
		return q
	}
	return q.Base()
}

// Value returns the plain number held by a dimensionless quantity, after
// cancelling any scale left over by derived units such as in/ft.
func (q Quantity) Value() (float64, error) {
	if !q.unit.Dim.IsDimensionless() {
		return 0, &DimensionError{Op: "value", Index: -1, Want: Dimensionless, Got: q.unit.Dim}
	}
	return q.base(), nil
}

// Compare returns -1, 0 or +1 comparing q to o.
func (q Quantity) Compare(o Quantity) (int, error) {
	if q.unit.Dim != o.unit.Dim {
		return 0, &DimensionError{Op: "compare", Index: -1, Want: q.unit.Dim, Got: o.unit.Dim}
	}
	a, b := q.base(), o.base()
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	}
	return 0, nil
}

// ApproxEqual reports whether q and o share a dimension and agree within
// the relative tolerance tol.
func (q Quantity) ApproxEqual(o Quantity, tol float64) bool {
	if q.unit.Dim != o.unit.Dim {
		return false
	}
	return approx(q.base(), o.base(), tol)
}

// Format renders the magnitude with prec significant decimals followed by
// the unit symbol.
func (q Quantity) Format(prec int) string {
	return strconv.FormatFloat(q.mag, 'f', prec, 64) + " " + q.unit.Symbol
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.mag, q.unit.Symbol)
}

func powf(x, y float64) float64 {
	if y == 1 {
		return x
	}
	if y == math.Trunc(y) && math.Abs(y) <= 16 {
		return intPow(x, int(y))
	}
	return math.Pow(x, y)
}

func intPow(x float64, n int) float64 {
	if n < 0 {
		return 1 / intPow(x, -n)
	}
	out := 1.0
	for ; n > 0; n-- {
		out *= x
	}
	return out
}

func approx(a, b, tol float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1e-300 {
		return diff < tol
	}
	return diff <= tol*scale
}
