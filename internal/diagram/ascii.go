package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Point represents a 2D coordinate for section vertices
type Point struct {
	X float64
	Y float64
}

// SectionData holds what is needed to draw a cross-section
type SectionData struct {
	Title string
	Unit  string // length unit of every coordinate

	// Outline, in either winding order. Holes are given as separate
	// outlines in Holes.
	Vertices []Point
	Holes    [][]Point

	// Centroid, in the outline's coordinates
	CentroidX float64
	CentroidY float64
}

func (d SectionData) bounds() (minX, maxX, minY, maxY float64) {
	minX, maxX = math.Inf(1), math.Inf(-1)
	minY, maxY = math.Inf(1), math.Inf(-1)
	for _, v := range d.Vertices {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	return
}

// inside reports whether (x, y) lies in the filled region.
func (d SectionData) inside(x, y float64) bool {
	if !contains(d.Vertices, x, y) {
		return false
	}
	for _, h := range d.Holes {
		if contains(h, x, y) {
			return false
		}
	}
	return true
}

// contains is the even-odd ray casting test.
func contains(vs []Point, x, y float64) bool {
	in := false
	n := len(vs)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := vs[i], vs[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

// CircleOutline approximates a circle of diameter d, centred at (d/2, d/2),
// by a regular polygon.
func CircleOutline(d float64, segments int) []Point {
	if segments < 8 {
		segments = 8
	}
	r := d / 2
	pts := make([]Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{X: r + r*math.Cos(a), Y: r + r*math.Sin(a)}
	}
	return pts
}

// ConcentricCircle shifts an outline of diameter d so that it shares the
// centre of a circle of diameter outer.
func ConcentricCircle(outer, d float64, segments int) []Point {
	pts := CircleOutline(d, segments)
	off := (outer - d) / 2
	for i := range pts {
		pts[i].X += off
		pts[i].Y += off
	}
	return pts
}

// DrawASCIISection renders the section outline filled with shading, the
// centroid as '+' and the neutral axis through it.
func DrawASCIISection(data SectionData) string {
	var sb strings.Builder
	if len(data.Vertices) < 3 {
		return ""
	}

	minX, maxX, minY, maxY := data.bounds()
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		return ""
	}

	// Terminal cells are roughly twice as tall as they are wide.
	heightChars := 20
	widthChars := int(math.Round(2 * float64(heightChars) * w / h))
	widthChars = min(max(widthChars, 8), 60)

	cellW := w / float64(widthChars)
	cellH := h / float64(heightChars)
	naRow := int((maxY - data.CentroidY) / cellH)
	naRow = min(max(naRow, 0), heightChars-1)
	cCol := int((data.CentroidX - minX) / cellW)
	cCol = min(max(cCol, 0), widthChars-1)

	title := data.Title
	if title == "" {
		title = "SECTION"
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(title)))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(title)))))

	for row := 0; row < heightChars; row++ {
		y := maxY - (float64(row)+0.5)*cellH
		line := make([]rune, widthChars)
		for col := range line {
			x := minX + (float64(col)+0.5)*cellW
			switch {
			case row == naRow && col == cCol:
				line[col] = '+'
			case data.inside(x, y):
				line[col] = '░'
			case row == naRow:
				line[col] = '─'
			default:
				line[col] = ' '
			}
		}
		sb.WriteString("  │")
		sb.WriteString(string(line))
		sb.WriteString("│")
		if row == naRow {
			sb.WriteString(fmt.Sprintf(" ◄─ N.A. y = %.2f %s", data.CentroidY, data.Unit))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Section area\n")
	sb.WriteString(fmt.Sprintf("  +   = Centroid (%.2f, %.2f) %s\n", data.CentroidX, data.CentroidY, data.Unit))
	sb.WriteString(fmt.Sprintf("  Overall %.2f x %.2f %s\n", w, h, data.Unit))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes, which misaligns unit
// symbols such as ² and µ.
func pad(s string, n int) string {
	if k := n - len([]rune(s)); k > 0 {
		return s + strings.Repeat(" ", k)
	}
	return s
}
