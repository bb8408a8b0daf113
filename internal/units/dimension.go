package units

import (
	"fmt"
	"strings"
)

// base indexes the base physical dimensions a Dimension is expressed over.
type base int

const (
	baseMass base = iota
	baseLength
	baseTime
	baseAngle
	baseTemperature
	numBase
)

var baseNames = [numBase]string{"mass", "length", "time", "angle", "temperature"}

// baseSymbols are the SI units each base dimension is stored in.
var baseSymbols = [numBase]string{"kg", "m", "s", "rad", "K"}

// Dimension is the physical kind of a quantity, held as rational exponents
// over mass, length, time, angle and temperature. The zero value is
// dimensionless. Dimensions are comparable with ==.
type Dimension struct {
	exp [numBase]ratio
}

// Base and derived dimensions.
var (
	Dimensionless = Dimension{}

	Length      = baseDim(baseLength)
	Mass        = baseDim(baseMass)
	Time        = baseDim(baseTime)
	Angle       = baseDim(baseAngle)
	Temperature = baseDim(baseTemperature)

	// Force is mass·length·time⁻².
	Force = Mass.Mul(Length).Div(Time.Pow(2))

	Area               = Length.Pow(2)
	Volume             = Length.Pow(3)
	SecondMoment       = Length.Pow(4)
	Velocity           = Length.Div(Time)
	Acceleration       = Velocity.Div(Time)
	Pressure           = Force.Div(Area)
	Density            = Mass.Div(Volume)
	Energy             = Force.Mul(Length)
	Torque             = Energy
	Power              = Energy.Div(Time)
	Frequency          = Time.Pow(-1)
	AngularVelocity    = Angle.Div(Time)
	Stiffness          = Force.Div(Length)
	TorsionalStiffness = Torque.Div(Angle)
	MassPerLength      = Mass.Div(Length)
	MassMoment         = Mass.Mul(Area)
)

func baseDim(b base) Dimension {
	var d Dimension
	d.exp[b] = makeRatio(1, 1)
	return d
}

// Mul adds exponents component-wise.
func (d Dimension) Mul(o Dimension) Dimension {
	var out Dimension
	for i := range d.exp {
		out.exp[i] = d.exp[i].add(o.exp[i])
	}
	return out
}

// Div subtracts exponents component-wise.
func (d Dimension) Div(o Dimension) Dimension {
	var out Dimension
	for i := range d.exp {
		out.exp[i] = d.exp[i].sub(o.exp[i])
	}
	return out
}

// Pow multiplies every exponent by n.
func (d Dimension) Pow(n int) Dimension {
	return d.PowRat(int64(n), 1)
}

// PowRat multiplies every exponent by num/den, e.g. PowRat(1, 2) for a
// square root. It panics if den is zero.
func (d Dimension) PowRat(num, den int64) Dimension {
	p := makeRatio(num, den)
	var out Dimension
	for i := range d.exp {
		out.exp[i] = d.exp[i].mul(p)
	}
	return out
}

// Equal reports whether both dimensions have the same exponents.
func (d Dimension) Equal(o Dimension) bool {
	return d == o
}

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// Exponent returns the exponent of the named base dimension ("length",
// "mass", ...) as a float.
func (d Dimension) Exponent(name string) float64 {
	for i, n := range baseNames {
		if n == name {
			return d.exp[i].float()
		}
	}
	return 0
}

// String renders the dimension as e.g. "[mass]·[length]/[time]^2".
func (d Dimension) String() string {
	return d.format(func(b base) string { return "[" + baseNames[b] + "]" }, "·")
}

// baseSymbol renders the dimension in SI base units, e.g. "kg*m/s^2".
func (d Dimension) baseSymbol() string {
	if d.IsDimensionless() {
		return "1"
	}
	return d.format(func(b base) string { return baseSymbols[b] }, "*")
}

func (d Dimension) format(label func(base) string, sep string) string {
	if d.IsDimensionless() {
		return "dimensionless"
	}
	var num, den []string
	for i, e := range d.exp {
		switch {
		case e.n > 0:
			num = append(num, label(base(i))+powSuffix(e))
		case e.n < 0:
			den = append(den, label(base(i))+powSuffix(e.neg()))
		}
	}
	out := strings.Join(num, sep)
	if out == "" {
		out = "1"
	}
	switch len(den) {
	case 0:
	case 1:
		out += "/" + den[0]
	default:
		out += "/(" + strings.Join(den, sep) + ")"
	}
	return out
}

func powSuffix(e ratio) string {
	if e.n == 1 && e.den() == 1 {
		return ""
	}
	if e.den() == 1 {
		return fmt.Sprintf("^%d", e.n)
	}
	return fmt.Sprintf("^(%d/%d)", e.n, e.den())
}

// ratio is a normalised rational exponent. The zero value is 0 and every
// non-zero value has a positive denominator and no common factor, so two
// equal ratios are identical structs.
type ratio struct {
	n, d int64
}

func makeRatio(n, d int64) ratio {
	if d == 0 {
		panic("units: zero denominator in exponent")
	}
	if n == 0 {
		return ratio{}
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs64(n), d)
	return ratio{n: n / g, d: d / g}
}

func (r ratio) den() int64 {
	if r.d == 0 {
		return 1
	}
	return r.d
}

func (r ratio) add(o ratio) ratio {
	return makeRatio(r.n*o.den()+o.n*r.den(), r.den()*o.den())
}

func (r ratio) sub(o ratio) ratio {
	return r.add(o.neg())
}

func (r ratio) mul(o ratio) ratio {
	return makeRatio(r.n*o.n, r.den()*o.den())
}

func (r ratio) neg() ratio {
	return ratio{n: -r.n, d: r.d}
}

func (r ratio) float() float64 {
	return float64(r.n) / float64(r.den())
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
