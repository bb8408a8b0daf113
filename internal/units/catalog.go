package units

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Definition declares one catalog entry. A unit is given either directly by
// Dim and Scale, or by Expr (an expression over previously defined units)
// multiplied by Factor.
type Definition struct {
	Symbol  string
	Aliases []string
	Dim     Dimension
	Scale   float64
	Offset  float64
	Expr    string
	Factor  float64
}

// Catalog maps unit symbols and aliases to units. It is populated once by
// NewCatalog and never mutated afterwards, so a single instance can be
// shared by every component that converts units.
type Catalog struct {
	units   map[string]Unit
	symbols []string
}

// NewCatalog builds a catalog from definitions in order. Expressions may
// only reference units defined earlier.
func NewCatalog(defs []Definition) (*Catalog, error) {
	c := &Catalog{units: make(map[string]Unit, len(defs)*2)}
	for _, def := range defs {
		u, err := c.resolve(def)
		if err != nil {
			return nil, fmt.Errorf("define %q: %w", def.Symbol, err)
		}
		for _, name := range append([]string{def.Symbol}, def.Aliases...) {
			if _, dup := c.units[name]; dup {
				return nil, fmt.Errorf("define %q: symbol %q already defined", def.Symbol, name)
			}
			c.units[name] = u
		}
		c.symbols = append(c.symbols, def.Symbol)
	}
	return c, nil
}

func (c *Catalog) resolve(def Definition) (Unit, error) {
	if def.Symbol == "" {
		return Unit{}, fmt.Errorf("empty symbol")
	}
	if def.Expr == "" {
		if def.Scale == 0 {
			return Unit{}, fmt.Errorf("zero scale")
		}
		return Unit{Symbol: def.Symbol, Dim: def.Dim, Scale: def.Scale, Offset: def.Offset}, nil
	}
	u, err := c.Parse(def.Expr)
	if err != nil {
		return Unit{}, err
	}
	factor := def.Factor
	if factor == 0 {
		factor = 1
	}
	return Unit{Symbol: def.Symbol, Dim: u.Dim, Scale: u.Scale * factor, Offset: def.Offset}, nil
}

// Unit looks up a single symbol or alias.
func (c *Catalog) Unit(symbol string) (Unit, error) {
	u, ok := c.units[strings.TrimSpace(symbol)]
	if !ok {
		return Unit{}, &UnknownUnitError{Symbol: symbol}
	}
	return u, nil
}

// MustUnit parses an expression known to be valid and panics otherwise.
func (c *Catalog) MustUnit(expr string) Unit {
	u, err := c.Parse(expr)
	if err != nil {
		panic(err)
	}
	return u
}

// Quantity parses expr and attaches it to mag.
func (c *Catalog) Quantity(mag float64, expr string) (Quantity, error) {
	u, err := c.Parse(expr)
	if err != nil {
		return Quantity{}, err
	}
	return New(mag, u), nil
}

// ParseQuantity reads "<number> <unit expression>", e.g. "1000 lbf" or
// "12.5 in^2". A bare number is dimensionless.
func (c *Catalog) ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && strings.ContainsRune("+-.0123456789eE", rune(s[end])) {
		// stop at an 'e' that starts a unit symbol rather than an exponent
		if (s[end] == 'e' || s[end] == 'E') && (end+1 >= len(s) || !strings.ContainsRune("+-0123456789", rune(s[end+1]))) {
			break
		}
		end++
	}
	mag, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("parse quantity %q: bad magnitude: %w", s, err)
	}
	rest := strings.TrimSpace(s[end:])
	if rest == "" {
		return Scalar(mag), nil
	}
	return c.Quantity(mag, rest)
}

// Symbols returns the primary symbol of every entry in definition order.
func (c *Catalog) Symbols() []string {
	out := make([]string, len(c.symbols))
	copy(out, c.symbols)
	return out
}

// Compatible returns the primary symbols sharing a dimension with d,
// sorted by scale.
func (c *Catalog) Compatible(d Dimension) []string {
	var out []string
	for _, sym := range c.symbols {
		if c.units[sym].Dim == d {
			out = append(out, sym)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return c.units[out[i]].Scale < c.units[out[j]].Scale
	})
	return out
}

// StandardCatalog returns a catalog holding the SI and US customary units
// used across the toolbox. Each call builds a fresh instance; callers create
// one at startup and pass it to whatever needs conversions.
func StandardCatalog() *Catalog {
	c, err := NewCatalog(standardDefinitions)
	if err != nil {
		panic(err)
	}
	return c
}

const (
	lbfInNewtons = 4.4482216152605
	lbInKilos    = 0.45359237
	inchInMeters = 0.0254
)

var standardDefinitions = []Definition{
	// base
	{Symbol: "1", Aliases: []string{"dimensionless"}, Dim: Dimensionless, Scale: 1},
	{Symbol: "m", Aliases: []string{"meter", "metre"}, Dim: Length, Scale: 1},
	{Symbol: "kg", Aliases: []string{"kilogram"}, Dim: Mass, Scale: 1},
	{Symbol: "s", Aliases: []string{"sec", "second"}, Dim: Time, Scale: 1},
	{Symbol: "rad", Aliases: []string{"radian"}, Dim: Angle, Scale: 1},
	{Symbol: "K", Aliases: []string{"degK", "kelvin"}, Dim: Temperature, Scale: 1},

	// length
	{Symbol: "mm", Expr: "m", Factor: 1e-3},
	{Symbol: "cm", Expr: "m", Factor: 1e-2},
	{Symbol: "km", Expr: "m", Factor: 1e3},
	{Symbol: "um", Aliases: []string{"µm", "micron"}, Expr: "m", Factor: 1e-6},
	{Symbol: "in", Aliases: []string{"inch", "inches"}, Expr: "m", Factor: inchInMeters},
	{Symbol: "ft", Aliases: []string{"foot", "feet"}, Expr: "in", Factor: 12},
	{Symbol: "yd", Aliases: []string{"yard"}, Expr: "ft", Factor: 3},
	{Symbol: "mi", Aliases: []string{"mile"}, Expr: "ft", Factor: 5280},

	// area and volume shorthands
	{Symbol: "sq_mm", Expr: "mm^2"},
	{Symbol: "sq_cm", Expr: "cm^2"},
	{Symbol: "sq_m", Expr: "m^2"},
	{Symbol: "sq_in", Expr: "in^2"},
	{Symbol: "sq_ft", Expr: "ft^2"},
	{Symbol: "cu_in", Expr: "in^3"},
	{Symbol: "cu_ft", Expr: "ft^3"},
	{Symbol: "L", Aliases: []string{"liter", "litre"}, Expr: "m^3", Factor: 1e-3},
	{Symbol: "mL", Expr: "L", Factor: 1e-3},

	// time
	{Symbol: "ms", Expr: "s", Factor: 1e-3},
	{Symbol: "min", Aliases: []string{"minute"}, Expr: "s", Factor: 60},
	{Symbol: "h", Aliases: []string{"hr", "hour"}, Expr: "min", Factor: 60},
	{Symbol: "day", Expr: "h", Factor: 24},

	// mass
	{Symbol: "g", Aliases: []string{"gram"}, Expr: "kg", Factor: 1e-3},
	{Symbol: "Mg", Aliases: []string{"t", "tonne"}, Expr: "kg", Factor: 1e3},
	{Symbol: "lb", Aliases: []string{"lbm", "lbs", "pound"}, Expr: "kg", Factor: lbInKilos},

	// angle
	{Symbol: "deg", Aliases: []string{"degree", "°"}, Expr: "rad", Factor: math.Pi / 180},
	{Symbol: "rev", Aliases: []string{"revolution"}, Expr: "rad", Factor: 2 * math.Pi},

	// temperature
	{Symbol: "degC", Aliases: []string{"°C", "celsius"}, Dim: Temperature, Scale: 1, Offset: 273.15},
	{Symbol: "degF", Aliases: []string{"°F", "fahrenheit"}, Dim: Temperature, Scale: 5.0 / 9, Offset: 459.67 * 5 / 9},
	{Symbol: "degR", Aliases: []string{"rankine"}, Dim: Temperature, Scale: 5.0 / 9},

	// force
	{Symbol: "N", Aliases: []string{"newton"}, Expr: "kg*m/s^2"},
	{Symbol: "kN", Expr: "N", Factor: 1e3},
	{Symbol: "MN", Expr: "N", Factor: 1e6},
	{Symbol: "lbf", Aliases: []string{"force_pound"}, Expr: "N", Factor: lbfInNewtons},
	{Symbol: "kip", Aliases: []string{"kipf"}, Expr: "lbf", Factor: 1e3},
	{Symbol: "slug", Expr: "lbf*s^2/ft"},

	// pressure and stress
	{Symbol: "Pa", Aliases: []string{"pascal"}, Expr: "N/m^2"},
	{Symbol: "kPa", Expr: "Pa", Factor: 1e3},
	{Symbol: "MPa", Expr: "Pa", Factor: 1e6},
	{Symbol: "GPa", Expr: "Pa", Factor: 1e9},
	{Symbol: "bar", Expr: "Pa", Factor: 1e5},
	{Symbol: "psi", Expr: "lbf/in^2"},
	{Symbol: "ksi", Aliases: []string{"kpsi"}, Expr: "psi", Factor: 1e3},
	{Symbol: "Mpsi", Aliases: []string{"megapsi"}, Expr: "psi", Factor: 1e6},
	{Symbol: "psf", Expr: "lbf/ft^2"},

	// energy, torque and power
	{Symbol: "J", Aliases: []string{"joule"}, Expr: "N*m"},
	{Symbol: "kJ", Expr: "J", Factor: 1e3},
	{Symbol: "Btu", Aliases: []string{"btu"}, Expr: "J", Factor: 1055.05585262},
	{Symbol: "ftlb", Aliases: []string{"ftlbf", "footpound"}, Expr: "ft*lbf"},
	{Symbol: "inlb", Aliases: []string{"inlbf", "inchpound"}, Expr: "in*lbf"},
	{Symbol: "W", Aliases: []string{"watt"}, Expr: "J/s"},
	{Symbol: "kW", Expr: "W", Factor: 1e3},
	{Symbol: "hp", Expr: "W", Factor: 745.69987158227},

	// rates
	{Symbol: "Hz", Aliases: []string{"hz", "hertz"}, Expr: "1/s"},
	{Symbol: "rpm", Expr: "rev/min"},

	// ratios
	{Symbol: "%", Aliases: []string{"pct", "percent"}, Expr: "1", Factor: 0.01},
}
