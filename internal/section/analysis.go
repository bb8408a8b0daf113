package section

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/alexiusacademia/gomech/internal/guard"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	polygonSig = guard.New("polygon", guard.Want("unit", units.Length))
	shearSig   = guard.New("shear_stress", guard.Want("shear", units.Force))
)

// LoadFromFile loads a polygon section definition from a JSON file
func LoadFromFile(filepath string) (*Polygon, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var p Polygon
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath, err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Properties computes the area properties of the polygon in its declared
// unit.
func (p *Polygon) Properties(cat *units.Catalog) (*Properties, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	u, err := cat.Parse(p.Unit)
	if err != nil {
		return nil, err
	}
	if err := polygonSig.Check(units.New(1, u)); err != nil {
		return nil, err
	}

	area, cx, cy, ixo, iyo := areaMoments(p.Vertices)
	if area == 0 {
		return nil, &ValidationError{"section has zero area"}
	}
	b := p.bounds()
	ix := ixo - area*cy*cy
	iy := iyo - area*cx*cx
	cTop, cBottom := b.maxY-cy, cy-b.minY
	cRight, cLeft := b.maxX-cx, cx-b.minX

	q := quantities(u)
	return &Properties{
		Shape:     "polygon",
		Width:     q(b.maxX-b.minX, 1),
		Height:    q(b.maxY-b.minY, 1),
		Area:      q(area, 2),
		CentroidX: q(cx, 1),
		CentroidY: q(cy, 1),
		Ix:        q(ix, 4),
		Iy:        q(iy, 4),
		J:         q(ix+iy, 4),
		Sx:        q(ix/math.Max(cTop, cBottom), 3),
		Sy:        q(iy/math.Max(cRight, cLeft), 3),
		Rx:        q(math.Sqrt(ix/area), 1),
		Ry:        q(math.Sqrt(iy/area), 1),
		C:         q(math.Max(cTop, cBottom), 1),
		Q:         q(p.firstMomentAbove(cy), 3),
		B:         q(p.widthAtY(cy), 1),
	}, nil
}

// WidthAtDepth is the section width at a depth measured down from the top.
func (p *Polygon) WidthAtDepth(depth float64) float64 {
	return p.widthAtY(p.bounds().maxY - depth)
}

func quantities(u units.Unit) func(v float64, pow int) units.Quantity {
	return func(v float64, pow int) units.Quantity {
		return units.New(v, u.Pow(pow))
	}
}

// MaxShearStress is the transverse shear stress at the neutral axis,
// τ = V·Q / (I·b).
func (p *Properties) MaxShearStress(shear units.Quantity) (units.Quantity, error) {
	if err := shearSig.Check(shear); err != nil {
		return units.Quantity{}, err
	}
	if p.Q.Magnitude() == 0 || p.B.Magnitude() == 0 {
		return units.Quantity{}, fmt.Errorf("%s: first moment of area is not available", p.Shape)
	}
	tau := shear.Mul(p.Q).Div(p.Ix.Mul(p.B))
	return tau.Base(), nil
}
