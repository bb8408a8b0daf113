package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gomech/internal/record"
)

// quantity declares a field read from the same column in both systems,
// converted to si or imp when those are set.
func quantity(name, col, unit, si, imp string, aliases ...string) record.Field {
	return record.Field{
		Name:     name,
		Kind:     record.KindQuantity,
		SI:       record.Source{Column: col, Unit: unit, As: si},
		Imperial: record.Source{Column: col, Unit: unit, As: imp},
		Aliases:  aliases,
	}
}

// dual declares a field with a separate column per unit system.
func dual(name, siCol, siUnit, impCol, impUnit string, aliases ...string) record.Field {
	return record.Field{
		Name:     name,
		Kind:     record.KindQuantity,
		SI:       record.Source{Column: siCol, Unit: siUnit},
		Imperial: record.Source{Column: impCol, Unit: impUnit},
		Aliases:  aliases,
	}
}

func text(name string) record.Field {
	return record.Field{Name: name, Kind: record.KindText, Column: name}
}

func scalar(name, col string, aliases ...string) record.Field {
	return record.Field{Name: name, Kind: record.KindScalar, Column: col, Aliases: aliases}
}

func optional(f record.Field) record.Field {
	f.Optional = true
	return f
}

var carbonSteel = &record.Schema{
	Category:   "carbon-steel",
	NamePrefix: "aisi",
	Keys:       []string{"aisi", "treatment"},
	Fields: []record.Field{
		text("aisi"),
		text("treatment"),
		dual("tensile_strength", "ts_mpa", "MPa", "ts_kpsi", "kpsi", "uts", "ultimate_strength"),
		dual("yield_strength", "ys_mpa", "MPa", "ys_kpsi", "kpsi", "ys"),
		scalar("elongation", "elongation_pct", "elongation_pct"),
		optional(scalar("reduction_in_area", "reduction_area_pct", "reduction_area_pct")),
		scalar("brinell_hardness", "brinell_hardness", "hb"),
	},
}

var stainlessSteel = &record.Schema{
	Category:   "stainless-steel",
	NamePrefix: "aisi",
	Keys:       []string{"aisi", "condition"},
	Fields: []record.Field{
		text("aisi"),
		text("condition"),
		dual("tensile_strength", "ts_mpa", "MPa", "ts_kpsi", "kpsi", "uts", "ultimate_strength"),
		dual("yield_strength", "ys_mpa", "MPa", "ys_kpsi", "kpsi", "ys"),
		scalar("elongation", "elongation_pct", "elongation_pct"),
		optional(scalar("brinell_hardness", "brinell_hardness", "hb")),
	},
}

var baseMetal = &record.Schema{
	Category: "base-metal",
	Keys:     []string{"metal"},
	Fields: []record.Field{
		text("metal"),
		dual("elastic_modulus", "e_gpa", "GPa", "e_mpsi", "Mpsi", "mod_elast", "modulus_elasticity", "e"),
		dual("shear_modulus", "g_gpa", "GPa", "g_mpsi", "Mpsi", "mod_rigid", "modulus_rigidity", "g"),
		dual("density", "rho", "Mg/m^3", "rho_lbin3", "lb/in^3", "rho"),
		scalar("poisson_ratio", "nu", "nu"),
	},
}

var polymer = &record.Schema{
	Category: "polymer",
	Keys:     []string{"polymer"},
	Fields: []record.Field{
		text("polymer"),
		quantity("tensile_strength", "ts_mpa", "MPa", "", "ksi", "uts"),
		quantity("elastic_modulus", "e_gpa", "GPa", "", "ksi", "mod_elast", "modulus_elasticity"),
		quantity("density", "rho", "g/cm^3", "", "lb/in^3", "rho"),
		optional(scalar("elongation", "elongation_pct", "elongation_pct")),
		optional(quantity("max_service_temp", "max_service_temp_c", "degC", "", "degF")),
	},
}

var unifiedThread = &record.Schema{
	Category: "unified-thread",
	Keys:     []string{"size", "fit_class"},
	Fields: []record.Field{
		text("size"),
		text("fit_class"),
		{Name: "threads_per_inch", Kind: record.KindScalar, Column: "pitch", Parse: ParseThreadsPerInch, Aliases: []string{"tpi"}},
		{
			Name:     "pitch",
			Kind:     record.KindQuantity,
			SI:       record.Source{Column: "pitch", Unit: "in", As: "mm"},
			Imperial: record.Source{Column: "pitch", Unit: "in"},
			Parse:    threadPitch,
		},
		optional(quantity("allowance", "allowance", "in", "mm", "")),
		quantity("major_dia_max", "major_dia_max", "in", "mm", "", "major_dia"),
		quantity("major_dia_min", "major_dia_min", "in", "mm", ""),
		quantity("pitch_dia_max", "pitch_dia_max", "in", "mm", "", "pitch_dia"),
		quantity("pitch_dia_min", "pitch_dia_min", "in", "mm", ""),
		quantity("minor_dia_max", "minor_dia_max", "in", "mm", "", "minor_dia"),
	},
}

var metricThread = &record.Schema{
	Category: "metric-thread",
	Keys:     []string{"designation"},
	Fields: []record.Field{
		text("designation"),
		text("series"),
		quantity("nominal_dia", "nominal_dia_mm", "mm", "", "in", "major_dia"),
		quantity("pitch", "pitch_mm", "mm", "", "in"),
		quantity("tensile_stress_area", "tensile_area_mm2", "mm^2", "", "in^2", "at"),
		quantity("minor_area", "minor_area_mm2", "mm^2", "", "in^2", "ar"),
	},
}

var saeGrade = &record.Schema{
	Category:   "sae-grade",
	NamePrefix: "sae",
	Keys:       []string{"grade", "size_range"},
	Fields: []record.Field{
		text("grade"),
		text("size_range"),
		quantity("proof_strength", "proof_kpsi", "kpsi", "MPa", "", "sp"),
		quantity("tensile_strength", "ts_kpsi", "kpsi", "MPa", "", "uts"),
		quantity("yield_strength", "ys_kpsi", "kpsi", "MPa", "", "ys"),
		optional(text("core_hardness")),
	},
}

var metricClass = &record.Schema{
	Category:   "metric-class",
	NamePrefix: "class",
	Keys:       []string{"class"},
	Fields: []record.Field{
		text("class"),
		text("size_range"),
		quantity("proof_strength", "proof_mpa", "MPa", "", "kpsi", "sp"),
		quantity("tensile_strength", "ts_mpa", "MPa", "", "kpsi", "uts"),
		quantity("yield_strength", "ys_mpa", "MPa", "", "kpsi", "ys"),
	},
}

var wideFlange = &record.Schema{
	Category: "wide-flange",
	Keys:     []string{"designation"},
	Fields: []record.Field{
		text("designation"),
		quantity("area", "area_in2", "in^2", "mm^2", "", "a"),
		quantity("depth", "depth_in", "in", "mm", "", "d"),
		quantity("web_thickness", "web_thk_in", "in", "mm", "", "tw"),
		quantity("flange_width", "flange_width_in", "in", "mm", "", "bf"),
		quantity("flange_thickness", "flange_thk_in", "in", "mm", "", "tf"),
		quantity("ix", "ix_in4", "in^4", "mm^4", "", "moment_inertia_x"),
		quantity("sx", "sx_in3", "in^3", "mm^3", "", "section_modulus_x"),
		quantity("rx", "rx_in", "in", "mm", "", "radius_gyration_x"),
		quantity("iy", "iy_in4", "in^4", "mm^4", "", "moment_inertia_y"),
		quantity("sy", "sy_in3", "in^3", "mm^3", "", "section_modulus_y"),
		quantity("ry", "ry_in", "in", "mm", "", "radius_gyration_y"),
		quantity("weight", "weight_lbft", "lb/ft", "kg/m", "", "w"),
	},
}

// irregularTPI are the thread counts the unified thread table writes in
// fractional notation.
var irregularTPI = map[string]float64{
	"4 1/2": 4.5,
	"4½":    4.5,
}

// ParseThreadsPerInch reads a unified thread pitch cell. Plain positive
// numbers and the documented fractional counts are accepted; anything else
// is an error.
func ParseThreadsPerInch(raw string) (float64, error) {
	s := strings.Join(strings.Fields(raw), " ")
	if v, ok := irregularTPI[s]; ok {
		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("threads per inch %q is not a number", raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("threads per inch must be positive, got %v", v)
	}
	return v, nil
}

// threadPitch converts threads per inch into the axial pitch in inches.
func threadPitch(raw string) (float64, error) {
	tpi, err := ParseThreadsPerInch(raw)
	if err != nil {
		return 0, err
	}
	return 1 / tpi, nil
}
