package design

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gomech/internal/guard"
	"github.com/alexiusacademia/gomech/internal/units"
)

// BearingKind selects the load-life exponent.
type BearingKind int

const (
	Ball BearingKind = iota + 1
	Roller
)

func (k BearingKind) String() string {
	switch k {
	case Ball:
		return "ball"
	case Roller:
		return "roller"
	}
	return "invalid"
}

// Exponent is the load-life exponent a in L10 = (C/P)^a.
func (k BearingKind) Exponent() float64 {
	if k == Roller {
		return 10.0 / 3
	}
	return 3
}

// ParseBearingKind accepts "ball" or "roller".
func ParseBearingKind(s string) (BearingKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ball":
		return Ball, nil
	case "roller":
		return Roller, nil
	}
	return 0, fmt.Errorf("unknown bearing kind %q: want ball or roller", s)
}

// RatedRevolutions is the life basis of a dynamic load rating.
const RatedRevolutions = 1e6

var (
	lifeSig = guard.New("bearing_life",
		guard.Want("dynamic_rating", units.Force),
		guard.Want("equivalent_load", units.Force),
		guard.Free("kind"),
	)
	lifeHoursSig = guard.New("bearing_life_hours",
		guard.Want("dynamic_rating", units.Force),
		guard.Want("equivalent_load", units.Force),
		guard.Want("speed", units.AngularVelocity),
		guard.Free("kind"),
	)
	equivalentSig = guard.New("equivalent_load",
		guard.Want("radial", units.Force),
		guard.Want("axial", units.Force),
		guard.Free("x"),
		guard.Free("y"),
	)

	revPerHour = units.Unit{Symbol: "rev/h", Dim: units.AngularVelocity, Scale: 2 * math.Pi / 3600}
	hour       = units.Unit{Symbol: "h", Dim: units.Time, Scale: 3600}
)

// BearingLifeRevs is the L10 rating life in revolutions.
func BearingLifeRevs(rating, load units.Quantity, kind BearingKind) (float64, error) {
	if err := lifeSig.Check(rating, load, kind); err != nil {
		return 0, err
	}
	if kind != Ball && kind != Roller {
		return 0, fmt.Errorf("bearing_life: invalid bearing kind %d", kind)
	}
	ratio, err := rating.Div(load).Value()
	if err != nil {
		return 0, err
	}
	if load.Magnitude() <= 0 || ratio <= 0 {
		return 0, fmt.Errorf("bearing_life: rating and load must be positive")
	}
	return math.Pow(ratio, kind.Exponent()) * RatedRevolutions, nil
}

// BearingLifeHours is the L10 life in hours at a constant speed.
func BearingLifeHours(rating, load, speed units.Quantity, kind BearingKind) (units.Quantity, error) {
	if err := lifeHoursSig.Check(rating, load, speed, kind); err != nil {
		return units.Quantity{}, err
	}
	revs, err := BearingLifeRevs(rating, load, kind)
	if err != nil {
		return units.Quantity{}, err
	}
	n, err := speed.In(revPerHour)
	if err != nil {
		return units.Quantity{}, err
	}
	if n <= 0 {
		return units.Quantity{}, fmt.Errorf("bearing_life_hours: speed must be positive")
	}
	return units.New(revs/n, hour), nil
}

// EquivalentRadialLoad is P = X·Fr + Y·Fa, in the unit of Fr. When the
// result is below Fr the radial load governs.
func EquivalentRadialLoad(radial, axial units.Quantity, x, y float64) (units.Quantity, error) {
	if err := equivalentSig.Check(radial, axial, x, y); err != nil {
		return units.Quantity{}, err
	}
	fa, err := axial.In(radial.Unit())
	if err != nil {
		return units.Quantity{}, err
	}
	p := x*radial.Magnitude() + y*fa
	return units.New(max(p, radial.Magnitude()), radial.Unit()), nil
}

// EquivalentAxialLoad is Pa = Fa + Y·Fr, the thrust bearing counterpart,
// in the unit of Fa.
func EquivalentAxialLoad(radial, axial units.Quantity, y float64) (units.Quantity, error) {
	if err := equivalentSig.Check(radial, axial, 1.0, y); err != nil {
		return units.Quantity{}, err
	}
	fr, err := radial.In(axial.Unit())
	if err != nil {
		return units.Quantity{}, err
	}
	return units.New(axial.Magnitude()+y*fr, axial.Unit()), nil
}
