package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/dataset"
	"github.com/alexiusacademia/gomech/internal/diagram"
	"github.com/alexiusacademia/gomech/internal/section"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	// Shared output flags
	sectionDiagram bool
	sectionOutput  string
	sectionShear   string
	sectionUnit    string

	// Shape inputs
	rectHeight  string
	rectBase    string
	circleDia   string
	circleInner string
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section area properties",
	Long: `Calculate area, centroid, second moments, section moduli and radii
of gyration of a cross-section.

Subcommands:
  rect     - Solid rectangle
  circle   - Solid or hollow round
  polygon  - Arbitrary outline defined in a JSON file
  rolled   - Tabulated wide-flange shape

Example JSON file structure for polygon:
{
  "name": "Tee",
  "unit": "mm",
  "vertices": [
    {"x": 125, "y": 0},
    {"x": 175, "y": 0},
    {"x": 175, "y": 250},
    {"x": 300, "y": 250},
    {"x": 300, "y": 300},
    {"x": 0, "y": 300},
    {"x": 0, "y": 250},
    {"x": 125, "y": 250}
  ]
}`,
}

var sectionRectCmd = &cobra.Command{
	Use:   "rect",
	Short: "Solid rectangular section",
	Long: `Area properties of a solid rectangle bending about the axis parallel
to its base. Results are in the unit of the height.

Examples:
  gomech section rect --height "500 mm" --base "300 mm"
  gomech section rect -H 12 -B 4 --unit in --shear "10 kip" --diagram`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := quantityFlag("height", rectHeight, sectionUnit)
		if err != nil {
			return err
		}
		b, err := quantityFlag("base", rectBase, sectionUnit)
		if err != nil {
			return err
		}
		p, err := section.Rectangle(h, b)
		if err != nil {
			return err
		}
		hv, bv := h.Magnitude(), p.Width.Magnitude()
		outline := []diagram.Point{{X: 0, Y: 0}, {X: bv, Y: 0}, {X: bv, Y: hv}, {X: 0, Y: hv}}
		return reportSection(p, diagram.SectionData{Vertices: outline})
	},
}

var sectionCircleCmd = &cobra.Command{
	Use:   "circle",
	Short: "Solid or hollow round section",
	Long: `Area properties of a solid round, or of a tube when --inner is given.

Examples:
  gomech section circle --dia "50 mm"
  gomech section circle --dia "2 in" --inner "1.5 in" --diagram`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := quantityFlag("dia", circleDia, sectionUnit)
		if err != nil {
			return err
		}
		dv := d.Magnitude()
		data := diagram.SectionData{Vertices: diagram.CircleOutline(dv, 72)}

		var p *section.Properties
		if circleInner == "" {
			p, err = section.Circle(d)
		} else {
			var di units.Quantity
			if di, err = quantityFlag("inner", circleInner, firstNonEmpty(sectionUnit, d.Unit().Symbol)); err != nil {
				return err
			}
			if p, err = section.HollowCircle(d, di); err == nil {
				inner, _ := di.In(d.Unit())
				data.Holes = [][]diagram.Point{diagram.ConcentricCircle(dv, inner, 72)}
			}
		}
		if err != nil {
			return err
		}
		return reportSection(p, data)
	},
}

var sectionPolygonCmd = &cobra.Command{
	Use:   "polygon <file.json>",
	Short: "Arbitrary polygon section from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		poly, err := section.LoadFromFile(args[0])
		if err != nil {
			return fmt.Errorf("error loading section: %w", err)
		}
		logger.Debug("loaded section", "name", poly.Name, "vertices", len(poly.Vertices))
		p, err := poly.Properties(catalog)
		if err != nil {
			return err
		}
		if poly.Name != "" {
			p.Shape = poly.Name
		}
		outline := make([]diagram.Point, len(poly.Vertices))
		for i, v := range poly.Vertices {
			outline[i] = diagram.Point{X: v.X, Y: v.Y}
		}
		return reportSection(p, diagram.SectionData{Vertices: outline})
	},
}

var sectionRolledCmd = &cobra.Command{
	Use:   "rolled <designation>",
	Short: "Tabulated wide-flange section",
	Long: `Area properties of a rolled wide-flange shape from the wide-flange
dataset, in the selected unit system.

Examples:
  gomech section rolled W8X31
  gomech section rolled W12X26 --system imperial`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.ByName("wide-flange")
		if err != nil {
			return err
		}
		rec, err := loader.Lookup(ds, system, strings.ToUpper(args[0]))
		if err != nil {
			return err
		}
		p, err := section.Rolled(rec)
		if err != nil {
			return err
		}
		if sectionDiagram || sectionOutput != "" {
			logger.Warn("no outline is drawn for rolled shapes")
			sectionDiagram, sectionOutput = false, ""
		}
		return reportSection(p, diagram.SectionData{})
	},
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.AddCommand(sectionRectCmd, sectionCircleCmd, sectionPolygonCmd, sectionRolledCmd)

	sectionCmd.PersistentFlags().BoolVarP(&sectionDiagram, "diagram", "d", false, "draw the section as ASCII art")
	sectionCmd.PersistentFlags().StringVarP(&sectionOutput, "output", "o", "", "export the section drawing (.png, .svg, .pdf)")
	sectionCmd.PersistentFlags().StringVar(&sectionShear, "shear", "", "vertical shear force for the maximum shear stress, e.g. \"10 kN\"")
	sectionCmd.PersistentFlags().StringVarP(&sectionUnit, "unit", "u", "", "length unit for bare numbers, e.g. mm")

	sectionRectCmd.Flags().StringVarP(&rectHeight, "height", "H", "", "section height [required]")
	sectionRectCmd.Flags().StringVarP(&rectBase, "base", "B", "", "section width [required]")
	sectionRectCmd.MarkFlagRequired("height")
	sectionRectCmd.MarkFlagRequired("base")

	sectionCircleCmd.Flags().StringVarP(&circleDia, "dia", "D", "", "outer diameter [required]")
	sectionCircleCmd.Flags().StringVar(&circleInner, "inner", "", "inner diameter for a tube")
	sectionCircleCmd.MarkFlagRequired("dia")
}

func reportSection(p *section.Properties, data diagram.SectionData) error {
	printHeader("SECTION PROPERTIES - " + strings.ToUpper(p.Shape))

	printSection("DIMENSIONS")
	w := newTabWriter()
	fmt.Fprintf(w, "  Width:\t%s\n", p.Width.Format(3))
	fmt.Fprintf(w, "  Height:\t%s\n", p.Height.Format(3))
	fmt.Fprintf(w, "  Area (A):\t%s\n", p.Area.Format(3))
	fmt.Fprintf(w, "  Centroid (x̄, ȳ):\t%s, %s\n", p.CentroidX.Format(3), p.CentroidY.Format(3))
	w.Flush()
	fmt.Fprintln(out)

	printSection("PROPERTIES")
	w = newTabWriter()
	fmt.Fprintf(w, "  Ix:\t%s\n", p.Ix.Format(3))
	fmt.Fprintf(w, "  Iy:\t%s\n", p.Iy.Format(3))
	fmt.Fprintf(w, "  J = Ix + Iy:\t%s\n", p.J.Format(3))
	fmt.Fprintf(w, "  Sx:\t%s\n", p.Sx.Format(3))
	fmt.Fprintf(w, "  Sy:\t%s\n", p.Sy.Format(3))
	fmt.Fprintf(w, "  rx:\t%s\n", p.Rx.Format(3))
	fmt.Fprintf(w, "  ry:\t%s\n", p.Ry.Format(3))
	fmt.Fprintf(w, "  c (extreme fibre):\t%s\n", p.C.Format(3))
	if p.Q.Magnitude() != 0 {
		fmt.Fprintf(w, "  Q at neutral axis:\t%s\n", p.Q.Format(3))
	}
	w.Flush()
	fmt.Fprintln(out)

	if sectionShear != "" {
		v, err := quantityFlag("shear", sectionShear, "")
		if err != nil {
			return err
		}
		tau, err := p.MaxShearStress(v)
		if err != nil {
			return err
		}
		fmt.Fprint(out, diagram.DrawSummaryBox("MAXIMUM SHEAR STRESS", []string{
			"V = " + v.Format(2),
			"τ = VQ / (I·b) = " + display(tau, stressDisplayUnit(), 3),
		}))
		fmt.Fprintln(out)
	}

	if len(data.Vertices) == 0 {
		return nil
	}
	data.Title = p.Shape
	data.Unit = p.Width.Unit().Symbol
	data.CentroidX = p.CentroidX.Magnitude()
	data.CentroidY = p.CentroidY.Magnitude()

	if sectionDiagram {
		fmt.Fprint(out, diagram.DrawASCIISection(data))
		fmt.Fprintln(out)
	}
	if sectionOutput != "" {
		path, err := diagram.ExportSectionDiagram(data, sectionOutput)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s Section diagram exported to %s\n\n", SuccessStyle.Render("✓"), path)
	}
	return nil
}
