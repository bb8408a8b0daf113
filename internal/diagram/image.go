package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	outlineColor = color.Black
	fillColor    = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	axisColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	dashes       = []vg.Length{vg.Points(5), vg.Points(3)}
)

// Formats lists the file extensions the exporters accept.
var Formats = []string{".png", ".svg", ".pdf"}

// ExportSectionDiagram exports a cross-section drawing to an image file.
// The format follows the file extension; a name without a known
// extension gets ".png" appended. It returns the path written.
func ExportSectionDiagram(data SectionData, filename string) (string, error) {
	if len(data.Vertices) < 3 {
		return "", fmt.Errorf("section diagram: need at least 3 vertices, got %d", len(data.Vertices))
	}

	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Cross Section"
	}
	p.X.Label.Text = fmt.Sprintf("x (%s)", data.Unit)
	p.Y.Label.Text = fmt.Sprintf("y (%s)", data.Unit)

	// Holes must wind against the outer ring.
	polys := []plotter.XYer{toXYs(data.Vertices, false)}
	outer := signedArea(data.Vertices) > 0
	for _, h := range data.Holes {
		polys = append(polys, toXYs(h, (signedArea(h) > 0) == outer))
	}
	area, err := plotter.NewPolygon(polys...)
	if err != nil {
		return "", err
	}
	area.Color = fillColor
	area.LineStyle.Width = vg.Points(2)
	area.LineStyle.Color = outlineColor
	p.Add(area)

	minX, maxX, _, _ := data.bounds()
	margin := 0.1 * (maxX - minX)

	// Neutral axis through the centroid
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: minX - margin, Y: data.CentroidY},
		{X: maxX + margin, Y: data.CentroidY},
	})
	if err != nil {
		return "", err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = axisColor
	naLine.LineStyle.Dashes = dashes
	p.Add(naLine)

	centroid, err := plotter.NewScatter(plotter.XYs{{X: data.CentroidX, Y: data.CentroidY}})
	if err != nil {
		return "", err
	}
	centroid.GlyphStyle.Color = axisColor
	centroid.GlyphStyle.Radius = vg.Points(4)
	centroid.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(centroid)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: maxX + margin, Y: data.CentroidY}},
		Labels: []string{"N.A."},
	})
	if err != nil {
		return "", err
	}
	p.Add(labels)
	p.Legend.Add(fmt.Sprintf("centroid (%.2f, %.2f)", data.CentroidX, data.CentroidY), centroid)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

func toXYs(vs []Point, reverse bool) plotter.XYs {
	xys := make(plotter.XYs, len(vs))
	for i, v := range vs {
		xys[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	if reverse {
		slices.Reverse(xys)
	}
	return xys
}

func signedArea(vs []Point) float64 {
	var a float64
	for i := range vs {
		j := (i + 1) % len(vs)
		a += vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
	}
	return a / 2
}

func save(p *plot.Plot, width, height vg.Length, filename string) (string, error) {
	if !slices.Contains(Formats, strings.ToLower(filepath.Ext(filename))) {
		filename += ".png"
	}

	// Create directory if needed
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}

	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
