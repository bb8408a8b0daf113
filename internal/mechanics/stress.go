// Package mechanics implements strength-of-materials formulas over
// dimension-checked quantities.
package mechanics

import (
	"github.com/alexiusacademia/gomech/internal/guard"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	engineeringStressSig = guard.New("stress_eng", guard.Want("load", units.Force), guard.Want("area", units.Area))
	engineeringStrainSig = guard.New("strain_eng", guard.Want("dlength", units.Length), guard.Want("length", units.Length))
	trueStressSig        = guard.New("stress_true", guard.Want("load", units.Force), guard.Want("area_actual", units.Area), guard.Free("strain"))
	utsFromBrinellSig    = guard.New("uts_from_brinell", guard.Want("hb", units.Pressure), guard.Free("kb"))
	yieldFromUTSSig      = guard.New("ys_from_uts", guard.Want("uts", units.Pressure))
	shearModulusSig      = guard.New("shear_modulus", guard.Want("modulus_elasticity", units.Pressure), guard.Free("poisson_ratio"))
)

// Fixed units for the empirical correlations, defined from SI base units
// so formula code needs no catalog.
var (
	psi = units.Unit{Symbol: "psi", Dim: units.Pressure, Scale: 4.4482216152605 / (0.0254 * 0.0254)}
	mpa = units.Unit{Symbol: "MPa", Dim: units.Pressure, Scale: 1e6}
)

// EngineeringStress is load over the initial cross-sectional area.
func EngineeringStress(load, area units.Quantity) (units.Quantity, error) {
	if err := engineeringStressSig.Check(load, area); err != nil {
		return units.Quantity{}, err
	}
	return load.Div(area), nil
}

// EngineeringStrain is the change in length over the original length.
func EngineeringStrain(dlength, length units.Quantity) (float64, error) {
	if err := engineeringStrainSig.Check(dlength, length); err != nil {
		return 0, err
	}
	return dlength.Div(length).Value()
}

// TrueStress accounts for the reduction in area under load:
// σ = (P/A)·(1+ε).
func TrueStress(load, areaActual units.Quantity, strain float64) (units.Quantity, error) {
	if err := trueStressSig.Check(load, areaActual, strain); err != nil {
		return units.Quantity{}, err
	}
	return load.Div(areaActual).Scale(1 + strain), nil
}

// DefaultBrinellFactor applies to steels generally.
const DefaultBrinellFactor = 500

// UTSFromBrinell estimates ultimate tensile strength as kb·HB, with HB given
// as a pressure.
func UTSFromBrinell(hb units.Quantity, kb float64) (units.Quantity, error) {
	if err := utsFromBrinellSig.Check(hb, kb); err != nil {
		return units.Quantity{}, err
	}
	return hb.Scale(kb), nil
}

// UTSFromHardnessNumber estimates the tensile strength of steel from a bare
// Brinell hardness number, Su ≈ 3.41·HB MPa.
func UTSFromHardnessNumber(hb float64) units.Quantity {
	return units.New(3.41*hb, mpa)
}

// YieldFromUTS is the empirical steel correlation Sy = 1.05·Su − 30 000 psi.
// The result is in psi whatever the unit of uts.
func YieldFromUTS(uts units.Quantity) (units.Quantity, error) {
	if err := yieldFromUTSSig.Check(uts); err != nil {
		return units.Quantity{}, err
	}
	v, err := uts.In(psi)
	if err != nil {
		return units.Quantity{}, err
	}
	return units.New(1.05*v-30000, psi), nil
}

// ShearModulus of an isotropic material, G = E / (2(1+ν)).
func ShearModulus(e units.Quantity, nu float64) (units.Quantity, error) {
	if err := shearModulusSig.Check(e, nu); err != nil {
		return units.Quantity{}, err
	}
	return e.Scale(1 / (2 * (1 + nu))), nil
}
