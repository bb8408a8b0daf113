package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/design"
	"github.com/alexiusacademia/gomech/internal/diagram"
)

var (
	gearPitchDia  string
	gearTeeth     int
	gearFace      string
	gearMateTeeth int
	gearSpeed     string
	gearUnit      string
)

var gearCmd = &cobra.Command{
	Use:   "gear",
	Short: "Spur gear tooth proportions and gear pair kinematics",
	Long: `Derive full-depth involute tooth proportions of a spur gear from its
pitch diameter and number of teeth.

With --mate-teeth a second gear of the same module is meshed with the
first, which acts as the driving pinion; --speed then gives the driven
speed.

Examples:
  gomech gear --pitch-dia "60 mm" --teeth 20 --face "25 mm"
  gomech gear -D 3 -N 24 -b 1 --unit in --mate-teeth 72 --speed "1750 rpm"`,
	Args: cobra.NoArgs,
	RunE: runGear,
}

func init() {
	rootCmd.AddCommand(gearCmd)

	gearCmd.Flags().StringVarP(&gearPitchDia, "pitch-dia", "D", "", "pitch diameter [required]")
	gearCmd.Flags().IntVarP(&gearTeeth, "teeth", "N", 0, "number of teeth [required]")
	gearCmd.Flags().StringVarP(&gearFace, "face", "b", "", "face width [required]")
	gearCmd.Flags().IntVar(&gearMateTeeth, "mate-teeth", 0, "teeth on a meshing gear")
	gearCmd.Flags().StringVar(&gearSpeed, "speed", "", "pinion speed, e.g. \"1750 rpm\"")
	gearCmd.Flags().StringVarP(&gearUnit, "unit", "u", "", "length unit for bare numbers")

	gearCmd.MarkFlagRequired("pitch-dia")
	gearCmd.MarkFlagRequired("teeth")
	gearCmd.MarkFlagRequired("face")
	gearCmd.MarkFlagsRequiredTogether("mate-teeth", "speed")
}

func runGear(cmd *cobra.Command, args []string) error {
	d, err := quantityFlag("pitch-dia", gearPitchDia, gearUnit)
	if err != nil {
		return err
	}
	b, err := quantityFlag("face", gearFace, firstNonEmpty(gearUnit, d.Unit().Symbol))
	if err != nil {
		return err
	}
	pinion, err := design.NewSpurGear(d, gearTeeth, b)
	if err != nil {
		return err
	}

	printHeader("SPUR GEAR")
	printGear(pinion)

	if gearMateTeeth == 0 {
		return nil
	}
	// Same module, so the pitch diameter scales with the tooth count.
	mate, err := design.NewSpurGear(d.Scale(float64(gearMateTeeth)/float64(gearTeeth)), gearMateTeeth, b)
	if err != nil {
		return err
	}
	speed, err := quantityFlag("speed", gearSpeed, "rpm")
	if err != nil {
		return err
	}
	pair, err := design.NewGearPair(pinion, mate, speed)
	if err != nil {
		return err
	}
	logger.Debug("meshed gear pair", "pinion", pinion.Teeth, "gear", mate.Teeth)

	printSection("MATING GEAR")
	w := newTabWriter()
	fmt.Fprintf(w, "  Teeth (N):\t%d\n", mate.Teeth)
	fmt.Fprintf(w, "  Pitch diameter:\t%s\n", mate.PitchDia.Format(3))
	fmt.Fprintf(w, "  Outside diameter:\t%s\n", mate.OutsideDia.Format(3))
	fmt.Fprintf(w, "  Root diameter:\t%s\n", mate.RootDia.Format(3))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("GEAR PAIR", []string{
		fmt.Sprintf("Ratio mG = %.4g", pair.Ratio),
		"Pinion speed = " + pair.DrivingSpeed.Format(2),
		"Gear speed = " + pair.DrivenSpeed.Format(2),
		"Center distance = " + pair.CenterDistance.Format(3),
	}))
	fmt.Fprintln(out)
	return nil
}

func printGear(g *design.SpurGear) {
	printSection("PITCH")
	w := newTabWriter()
	fmt.Fprintf(w, "  Teeth (N):\t%d\n", g.Teeth)
	fmt.Fprintf(w, "  Pitch diameter (D):\t%s\n", g.PitchDia.Format(3))
	fmt.Fprintf(w, "  Face width (b):\t%s\n", g.FaceWidth.Format(3))
	fmt.Fprintf(w, "  Diametral pitch (P):\t%s\n", g.DiametralPitch.Format(4))
	fmt.Fprintf(w, "  Circular pitch (p):\t%s\n", g.CircularPitch.Format(4))
	fmt.Fprintf(w, "  Module (m):\t%s\n", g.Module.Format(4))
	w.Flush()
	fmt.Fprintln(out)

	printSection("TOOTH PROPORTIONS")
	w = newTabWriter()
	fmt.Fprintf(w, "  \tstandard\tshaved/ground\n")
	fmt.Fprintf(w, "  Addendum:\t%s\t\n", g.Addendum.Format(4))
	fmt.Fprintf(w, "  Dedendum:\t%s\t%s\n", g.Dedendum.Format(4), g.DedendumShaved.Format(4))
	fmt.Fprintf(w, "  Working depth:\t%s\t\n", g.WorkingDepth.Format(4))
	fmt.Fprintf(w, "  Whole depth:\t%s\t%s\n", g.WholeDepth.Format(4), g.WholeDepthShaved.Format(4))
	fmt.Fprintf(w, "  Clearance:\t%s\t%s\n", g.Clearance.Format(4), g.ClearanceShaved.Format(4))
	fmt.Fprintf(w, "  Tooth thickness:\t%s\t\n", g.ToothThickness.Format(4))
	w.Flush()
	fmt.Fprintln(out)

	printSection("DIAMETERS")
	w = newTabWriter()
	fmt.Fprintf(w, "  Outside:\t%s\n", g.OutsideDia.Format(3))
	fmt.Fprintf(w, "  Root:\t%s\n", g.RootDia.Format(3))
	fmt.Fprintf(w, "  Root (shaved/ground):\t%s\n", g.RootDiaShaved.Format(3))
	w.Flush()
	fmt.Fprintln(out)
}
