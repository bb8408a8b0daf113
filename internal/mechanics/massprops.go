package mechanics

import (
	"math"

	"github.com/alexiusacademia/gomech/internal/guard"
	"github.com/alexiusacademia/gomech/internal/units"
)

// MassProperties of a homogeneous solid. Ix is about the long (or
// symmetry) axis; Iy and Iz are about the transverse axes through the
// centre of mass. Results are in SI base units.
type MassProperties struct {
	Mass       units.Quantity
	Ix, Iy, Iz units.Quantity
}

var (
	rodSig      = guard.New("rod", guard.Want("diameter", units.Length), guard.Want("length", units.Length), guard.Want("density", units.Density))
	diskSig     = guard.New("disk", guard.Want("diameter", units.Length), guard.Want("thickness", units.Length), guard.Want("density", units.Density))
	prismSig    = guard.New("rect_prism", guard.Want("length", units.Length), guard.Want("width", units.Length), guard.Want("height", units.Length), guard.Want("density", units.Density))
	cylinderSig = guard.New("cylinder", guard.Want("outer_dia", units.Length), guard.Want("inner_dia", units.Length), guard.Want("length", units.Length), guard.Want("density", units.Density))
)

// si converts every argument to SI base magnitudes.
func si(qs ...units.Quantity) []float64 {
	out := make([]float64, len(qs))
	for i, q := range qs {
		out[i] = q.Base().Magnitude()
	}
	return out
}

func massProps(m, ix, iy, iz float64) MassProperties {
	kg := units.BaseUnit(units.Mass)
	kgm2 := units.BaseUnit(units.MassMoment)
	return MassProperties{
		Mass: units.New(m, kg),
		Ix:   units.New(ix, kgm2),
		Iy:   units.New(iy, kgm2),
		Iz:   units.New(iz, kgm2),
	}
}

// Rod is a slender rod; Ix is neglected and reported as zero.
func Rod(diameter, length, density units.Quantity) (MassProperties, error) {
	if err := rodSig.Check(diameter, length, density); err != nil {
		return MassProperties{}, err
	}
	v := si(diameter, length, density)
	d, l, rho := v[0], v[1], v[2]
	m := math.Pi * d * d * l * rho / 4
	i := m * l * l / 12
	return massProps(m, 0, i, i), nil
}

// Disk is a thin disk with its axis along x.
func Disk(diameter, thickness, density units.Quantity) (MassProperties, error) {
	if err := diskSig.Check(diameter, thickness, density); err != nil {
		return MassProperties{}, err
	}
	v := si(diameter, thickness, density)
	d, t, rho := v[0], v[1], v[2]
	m := math.Pi * d * d * t * rho / 4
	return massProps(m, m*d*d/8, m*d*d/16, m*d*d/16), nil
}

// RectPrism is a rectangular block with length along z, height along x and
// width along y.
func RectPrism(length, width, height, density units.Quantity) (MassProperties, error) {
	if err := prismSig.Check(length, width, height, density); err != nil {
		return MassProperties{}, err
	}
	v := si(length, width, height, density)
	l, w, h, rho := v[0], v[1], v[2], v[3]
	m := l * w * h * rho
	return massProps(m,
		m/12*(l*l+w*w),
		m/12*(l*l+h*h),
		m/12*(w*w+h*h),
	), nil
}

// HollowCylinder is a tube with its axis along x. A zero inner diameter
// gives a solid cylinder.
func HollowCylinder(outerDia, innerDia, length, density units.Quantity) (MassProperties, error) {
	if err := cylinderSig.Check(outerDia, innerDia, length, density); err != nil {
		return MassProperties{}, err
	}
	v := si(outerDia, innerDia, length, density)
	do, di, l, rho := v[0], v[1], v[2], v[3]
	m := math.Pi * l * rho / 4 * (do*do - di*di)
	it := m / 48 * (3*do*do + 3*di*di + 4*l*l)
	return massProps(m, m/8*(do*do+di*di), it, it), nil
}
