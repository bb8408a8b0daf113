package section

import (
	"fmt"

	"github.com/alexiusacademia/gomech/internal/units"
)

// Polygon is an arbitrary cross-section defined by its outline.
// The outline is in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
type Polygon struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Unit of every coordinate, e.g. "mm" or "in".
	Unit string `json:"unit"`

	// Vertices of a simple polygon (no holes), in either winding order.
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Properties holds calculated area properties. Second moments, section
// moduli and radii of gyration are about the centroidal axes.
type Properties struct {
	Shape string

	// Overall dimensions
	Width  units.Quantity
	Height units.Quantity
	Area   units.Quantity

	// Centroid location, measured in the shape's own coordinates
	CentroidX units.Quantity
	CentroidY units.Quantity

	Ix, Iy units.Quantity
	// J is the polar second moment Ix + Iy.
	J      units.Quantity
	Sx, Sy units.Quantity
	Rx, Ry units.Quantity

	// C is the distance from the x centroidal axis to the extreme fibre.
	C units.Quantity

	// Q is the first moment about the x centroidal axis of the area above
	// it, and B the section width there. Both are zero when unknown.
	Q units.Quantity
	B units.Quantity
}

// Validate checks if the polygon definition is valid
func (p *Polygon) Validate() error {
	if len(p.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if p.Unit == "" {
		return &ValidationError{"section must declare a length unit"}
	}
	seen := make(map[Point]int, len(p.Vertices))
	for i, v := range p.Vertices {
		if j, ok := seen[v]; ok {
			return &ValidationError{fmt.Sprintf("vertices %d and %d coincide", j+1, i+1)}
		}
		seen[v] = i
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
