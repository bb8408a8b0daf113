package section

import (
	"math"
	"sort"
)

// bounds is the polygon's bounding box.
type bounds struct {
	minX, maxX, minY, maxY float64
}

func (p *Polygon) bounds() bounds {
	b := bounds{p.Vertices[0].X, p.Vertices[0].X, p.Vertices[0].Y, p.Vertices[0].Y}
	for _, v := range p.Vertices {
		b.minX = math.Min(b.minX, v.X)
		b.maxX = math.Max(b.maxX, v.X)
		b.minY = math.Min(b.minY, v.Y)
		b.maxY = math.Max(b.maxY, v.Y)
	}
	return b
}

// areaMoments uses the shoelace formula for area and centroid and the
// matching polygon integrals for the second moments about the origin.
func areaMoments(vs []Point) (area, cx, cy, ixo, iyo float64) {
	n := len(vs)
	if n < 3 {
		return 0, 0, 0, 0, 0
	}

	var signedArea, sumX, sumY float64
	for i := 0; i < n; i++ {
		a, b := vs[i], vs[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		signedArea += cross
		sumX += (a.X + b.X) * cross
		sumY += (a.Y + b.Y) * cross
		ixo += cross * (a.Y*a.Y + a.Y*b.Y + b.Y*b.Y)
		iyo += cross * (a.X*a.X + a.X*b.X + b.X*b.X)
	}

	signedArea /= 2
	if signedArea == 0 {
		return 0, 0, 0, 0, 0
	}
	cx = sumX / (6 * signedArea)
	cy = sumY / (6 * signedArea)

	// Clockwise outlines give negative integrals.
	sign := math.Copysign(1, signedArea)
	return math.Abs(signedArea), cx, cy, sign * ixo / 12, sign * iyo / 12
}

// widthAtY calculates the width at a specific Y coordinate
func (p *Polygon) widthAtY(y float64) float64 {
	intersections := p.findIntersectionsAtY(y)

	if len(intersections) < 2 {
		return 0
	}

	// Sort intersections by X coordinate
	sort.Float64s(intersections)

	// Total width is the sum of all segments
	var totalWidth float64
	for i := 0; i+1 < len(intersections); i += 2 {
		totalWidth += intersections[i+1] - intersections[i]
	}

	return totalWidth
}

// findIntersectionsAtY finds all X coordinates where a horizontal line at Y intersects the polygon
func (p *Polygon) findIntersectionsAtY(y float64) []float64 {
	var intersections []float64
	n := len(p.Vertices)

	for i := 0; i < n; i++ {
		v1, v2 := p.Vertices[i], p.Vertices[(i+1)%n]

		// Check if the edge crosses the Y level
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			intersections = append(intersections, v1.X+t*(v2.X-v1.X))
		}
	}

	return intersections
}

// clipAbove returns the part of the outline at or above y.
func (p *Polygon) clipAbove(y float64) []Point {
	var result []Point
	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		curr, next := p.Vertices[i], p.Vertices[(i+1)%n]
		currAbove := curr.Y >= y
		nextAbove := next.Y >= y

		if currAbove {
			result = append(result, curr)
		}
		if currAbove != nextAbove {
			t := (y - curr.Y) / (next.Y - curr.Y)
			result = append(result, Point{X: curr.X + t*(next.X-curr.X), Y: y})
		}
	}
	return result
}

// firstMomentAbove is the first moment, about the line y, of the area
// above it.
func (p *Polygon) firstMomentAbove(y float64) float64 {
	part := p.clipAbove(y)
	if len(part) < 3 {
		return 0
	}
	a, _, cy, _, _ := areaMoments(part)
	return a * (cy - y)
}
