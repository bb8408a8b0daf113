package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/mechanics"
	"github.com/alexiusacademia/gomech/internal/record"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	stressLoad   string
	stressArea   string
	stressStrain float64
	stressDL     string
	stressLength string
	stressUnit   string
	stressUTS    string
	stressHB     string
	stressKB     float64
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Engineering and true stress, strain and strength correlations",
	Long: `Calculate axial stress from a load and an area, and optionally
strain, true stress and strength estimates.

  σ = F / A            engineering stress
  ε = ΔL / L           engineering strain
  σt = σ (1 + ε)       true stress
  Su = Kb · HB         ultimate strength from Brinell hardness
  Sy ≈ 1.05 Su − 30 kpsi

Examples:
  gomech stress --load "1000 lbf" --area "100 sq_in"
  gomech stress --load "50 kN" --area "250 mm^2" --dl "0.5 mm" --length "200 mm" --unit MPa
  gomech stress --hb "200 psi"`,
	Args: cobra.NoArgs,
	RunE: runStress,
}

func init() {
	rootCmd.AddCommand(stressCmd)

	stressCmd.Flags().StringVarP(&stressLoad, "load", "F", "", "axial load, e.g. \"1000 lbf\"")
	stressCmd.Flags().StringVarP(&stressArea, "area", "A", "", "cross-sectional area, e.g. \"100 sq_in\"")
	stressCmd.Flags().Float64Var(&stressStrain, "strain", 0, "engineering strain for true stress")
	stressCmd.Flags().StringVar(&stressDL, "dl", "", "change in length")
	stressCmd.Flags().StringVar(&stressLength, "length", "", "original length")
	stressCmd.Flags().StringVarP(&stressUnit, "unit", "u", "", "unit to report stresses in")
	stressCmd.Flags().StringVar(&stressUTS, "uts", "", "ultimate strength for the yield estimate")
	stressCmd.Flags().StringVar(&stressHB, "hb", "", "Brinell hardness as a pressure")
	stressCmd.Flags().Float64Var(&stressKB, "kb", mechanics.DefaultBrinellFactor, "Brinell to strength factor")

	stressCmd.MarkFlagsRequiredTogether("load", "area")
	stressCmd.MarkFlagsRequiredTogether("dl", "length")
	stressCmd.MarkFlagsOneRequired("load", "hb", "uts", "dl")
}

func runStress(cmd *cobra.Command, args []string) error {
	printHeader("STRESS AND STRAIN")
	w := newTabWriter()
	defer w.Flush()

	strain := stressStrain
	if stressDL != "" {
		dl, err := quantityFlag("dl", stressDL, "")
		if err != nil {
			return err
		}
		l, err := quantityFlag("length", stressLength, "")
		if err != nil {
			return err
		}
		if strain, err = mechanics.EngineeringStrain(dl, l); err != nil {
			return err
		}
		fmt.Fprintf(w, "  Engineering strain (ε):\t%.6f\n", strain)
	}

	if stressLoad != "" {
		f, err := quantityFlag("load", stressLoad, "")
		if err != nil {
			return err
		}
		a, err := quantityFlag("area", stressArea, "")
		if err != nil {
			return err
		}
		s, err := mechanics.EngineeringStress(f, a)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  Engineering stress (σ):\t%s\n", display(s, stressDisplayUnit(), 3))
		if strain != 0 {
			st, err := mechanics.TrueStress(f, a, strain)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  True stress (σt):\t%s\n", display(st, stressDisplayUnit(), 3))
		}
	}

	var su units.Quantity
	switch {
	case stressUTS != "":
		var err error
		if su, err = quantityFlag("uts", stressUTS, ""); err != nil {
			return err
		}
	case stressHB != "":
		hb, err := quantityFlag("hb", stressHB, "")
		if err != nil {
			return err
		}
		if su, err = mechanics.UTSFromBrinell(hb, stressKB); err != nil {
			return err
		}
		fmt.Fprintf(w, "  Ultimate strength (Su):\t%s\n", display(su, stressDisplayUnit(), 1))
	default:
		return nil
	}
	sy, err := mechanics.YieldFromUTS(su)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  Yield strength estimate (Sy):\t%s\n", display(sy, stressDisplayUnit(), 1))
	return nil
}

// stressDisplayUnit is --unit, else the customary stress unit of the
// selected unit system.
func stressDisplayUnit() string {
	if stressUnit != "" {
		return stressUnit
	}
	if system == record.Imperial {
		return "psi"
	}
	return "MPa"
}
