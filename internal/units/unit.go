package units

import (
	"fmt"
	"strings"
)

// Unit is a concrete unit of measure. A magnitude m expressed in the unit
// converts to the dimension's SI base representation as m*Scale + Offset.
// Offset is non-zero only for affine units such as degC and degF.
type Unit struct {
	Symbol string
	Dim    Dimension
	Scale  float64
	Offset float64
}

// One is the dimensionless unit.
var One = Unit{Symbol: "1", Dim: Dimensionless, Scale: 1}

// BaseUnit returns the SI base unit of a dimension, e.g. "kg*m/s^2" for
// Force.
func BaseUnit(d Dimension) Unit {
	return Unit{Symbol: d.baseSymbol(), Dim: d, Scale: 1}
}

// IsAffine reports whether the unit carries an offset.
func (u Unit) IsAffine() bool {
	return u.Offset != 0
}

// absolute replaces an affine unit by its base unit so that products and
// powers stay linear.
func (u Unit) absolute() Unit {
	if !u.IsAffine() {
		return u
	}
	return BaseUnit(u.Dim)
}

// Mul returns the product unit.
func (u Unit) Mul(o Unit) Unit {
	u, o = u.absolute(), o.absolute()
	return Unit{
		Symbol: joinSymbols(u.Symbol, "*", o.Symbol),
		Dim:    u.Dim.Mul(o.Dim),
		Scale:  u.Scale * o.Scale,
	}
}

// Div returns the quotient unit.
func (u Unit) Div(o Unit) Unit {
	u, o = u.absolute(), o.absolute()
	return Unit{
		Symbol: joinSymbols(u.Symbol, "/", o.Symbol),
		Dim:    u.Dim.Div(o.Dim),
		Scale:  u.Scale / o.Scale,
	}
}

// Pow raises the unit to an integer power.
func (u Unit) Pow(n int) Unit {
	return u.PowRat(int64(n), 1)
}

// PowRat raises the unit to the rational power num/den.
func (u Unit) PowRat(num, den int64) Unit {
	u = u.absolute()
	switch {
	case num == 0:
		return One
	case num == den:
		return u
	}
	return Unit{
		Symbol: group(u.Symbol) + powSuffix(makeRatio(num, den)),
		Dim:    u.Dim.PowRat(num, den),
		Scale:  powf(u.Scale, float64(num)/float64(den)),
	}
}

// Equivalent reports whether both units share dimension, scale and offset,
// whatever their symbols.
func (u Unit) Equivalent(o Unit) bool {
	return u.Dim == o.Dim && approx(u.Scale, o.Scale, 1e-12) && approx(u.Offset, o.Offset, 1e-12)
}

func (u Unit) String() string {
	return u.Symbol
}

// GoString prints the full definition, useful in test failures.
func (u Unit) GoString() string {
	return fmt.Sprintf("units.Unit{%q, %s, scale=%g, offset=%g}", u.Symbol, u.Dim, u.Scale, u.Offset)
}

func joinSymbols(a, op, b string) string {
	switch {
	case b == "1":
		return a
	case a == "1" && op == "*":
		return b
	}
	if op == "/" && strings.ContainsAny(b, "*/") {
		return a + "/(" + b + ")"
	}
	return a + op + b
}

// group parenthesises compound symbols before they get an exponent or a
// divisor.
func group(sym string) string {
	if strings.ContainsAny(sym, "*/^") {
		return "(" + sym + ")"
	}
	return sym
}
