package section

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gomech/internal/guard"
	"github.com/alexiusacademia/gomech/internal/record"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	rectangleSig    = guard.New("rectangle", guard.Want("height", units.Length), guard.Want("base", units.Length))
	circleSig       = guard.New("circle", guard.Want("diameter", units.Length))
	hollowCircleSig = guard.New("hollow_circle", guard.Want("outer_dia", units.Length), guard.Want("inner_dia", units.Length))
)

// Rectangle returns the properties of a solid rectangle bending about the
// axis parallel to its base.
func Rectangle(height, base units.Quantity) (*Properties, error) {
	if err := rectangleSig.Check(height, base); err != nil {
		return nil, err
	}
	u := height.Unit()
	h := height.Magnitude()
	b, err := base.In(u)
	if err != nil {
		return nil, err
	}
	if h <= 0 || b <= 0 {
		return nil, &ValidationError{"rectangle dimensions must be positive"}
	}
	q := quantities(u)
	ix, iy := b*h*h*h/12, h*b*b*b/12
	return &Properties{
		Shape:     "rectangle",
		Width:     q(b, 1),
		Height:    q(h, 1),
		Area:      q(b*h, 2),
		CentroidX: q(b/2, 1),
		CentroidY: q(h/2, 1),
		Ix:        q(ix, 4),
		Iy:        q(iy, 4),
		J:         q(ix+iy, 4),
		Sx:        q(b*h*h/6, 3),
		Sy:        q(h*b*b/6, 3),
		Rx:        q(h/math.Sqrt(12), 1),
		Ry:        q(b/math.Sqrt(12), 1),
		C:         q(h/2, 1),
		Q:         q(b*h*h/8, 3),
		B:         q(b, 1),
	}, nil
}

// Circle returns the properties of a solid round section.
func Circle(diameter units.Quantity) (*Properties, error) {
	if err := circleSig.Check(diameter); err != nil {
		return nil, err
	}
	d := diameter.Magnitude()
	if d <= 0 {
		return nil, &ValidationError{"diameter must be positive"}
	}
	q := quantities(diameter.Unit())
	i := math.Pi * math.Pow(d, 4) / 64
	return &Properties{
		Shape:     "circle",
		Width:     q(d, 1),
		Height:    q(d, 1),
		Area:      q(math.Pi*d*d/4, 2),
		CentroidX: q(d/2, 1),
		CentroidY: q(d/2, 1),
		Ix:        q(i, 4),
		Iy:        q(i, 4),
		J:         q(2*i, 4),
		Sx:        q(math.Pi*d*d*d/32, 3),
		Sy:        q(math.Pi*d*d*d/32, 3),
		Rx:        q(d/4, 1),
		Ry:        q(d/4, 1),
		C:         q(d/2, 1),
		Q:         q(d*d*d/12, 3),
		B:         q(d, 1),
	}, nil
}

// HollowCircle returns the properties of a round tube.
func HollowCircle(outerDia, innerDia units.Quantity) (*Properties, error) {
	if err := hollowCircleSig.Check(outerDia, innerDia); err != nil {
		return nil, err
	}
	u := outerDia.Unit()
	do := outerDia.Magnitude()
	di, err := innerDia.In(u)
	if err != nil {
		return nil, err
	}
	if di < 0 || di >= do {
		return nil, &ValidationError{fmt.Sprintf("inner diameter %v must be non-negative and smaller than outer diameter %v", innerDia, outerDia)}
	}
	q := quantities(u)
	area := math.Pi * (do*do - di*di) / 4
	i := math.Pi * (math.Pow(do, 4) - math.Pow(di, 4)) / 64
	r := math.Sqrt(i / area)
	return &Properties{
		Shape:     "hollow circle",
		Width:     q(do, 1),
		Height:    q(do, 1),
		Area:      q(area, 2),
		CentroidX: q(do/2, 1),
		CentroidY: q(do/2, 1),
		Ix:        q(i, 4),
		Iy:        q(i, 4),
		J:         q(2*i, 4),
		Sx:        q(i/(do/2), 3),
		Sy:        q(i/(do/2), 3),
		Rx:        q(r, 1),
		Ry:        q(r, 1),
		C:         q(do/2, 1),
		Q:         q((do*do*do-di*di*di)/12, 3),
		B:         q(do-di, 1),
	}, nil
}

// Rolled returns the tabulated properties of a rolled shape record, such
// as a wide-flange beam. Q and B are not tabulated and stay zero.
func Rolled(rec *record.Record) (*Properties, error) {
	get := func(name string) (units.Quantity, error) {
		v, ok := rec.Quantity(name)
		if !ok {
			return units.Quantity{}, fmt.Errorf("%s %s: no %s", rec.Category(), rec.Name(), name)
		}
		return v, nil
	}
	var (
		p   = &Properties{Shape: rec.Name()}
		err error
	)
	for _, f := range []struct {
		name string
		dst  *units.Quantity
	}{
		{"area", &p.Area},
		{"depth", &p.Height},
		{"flange_width", &p.Width},
		{"ix", &p.Ix},
		{"iy", &p.Iy},
		{"sx", &p.Sx},
		{"sy", &p.Sy},
		{"rx", &p.Rx},
		{"ry", &p.Ry},
	} {
		if *f.dst, err = get(f.name); err != nil {
			return nil, err
		}
	}
	if p.J, err = p.Ix.Add(p.Iy); err != nil {
		return nil, err
	}
	p.C = p.Height.Scale(0.5)
	p.CentroidX = p.Width.Scale(0.5)
	p.CentroidY = p.C
	return p, nil
}
