package design

import (
	"fmt"

	"github.com/alexiusacademia/gomech/internal/guard"
	"github.com/alexiusacademia/gomech/internal/units"
)

// SpringKind tells a linear spring from a torsional one.
type SpringKind int

const (
	Linear SpringKind = iota + 1
	Torsional
)

func (k SpringKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Torsional:
		return "torsional"
	}
	return "invalid"
}

// SpringElement is an ideal spring known only by its stiffness.
type SpringElement struct {
	Stiffness units.Quantity
	Kind      SpringKind
}

// NewSpringElement infers the kind from the stiffness: force per length
// gives a linear spring, torque per angle a torsional one.
func NewSpringElement(stiffness units.Quantity) (*SpringElement, error) {
	var kind SpringKind
	switch stiffness.Dim() {
	case units.Stiffness:
		kind = Linear
	case units.TorsionalStiffness:
		kind = Torsional
	default:
		return nil, &units.DimensionError{
			Op: "spring_element", Param: "stiffness",
			Want: units.Stiffness, Got: stiffness.Dim(),
		}
	}
	return &SpringElement{Stiffness: stiffness, Kind: kind}, nil
}

// RestoringForce is -k·x. The deflection is a length for a linear spring
// and an angle for a torsional one, and the result a force or a torque.
// Positive deflection is extension.
func (s *SpringElement) RestoringForce(deflection units.Quantity) (units.Quantity, error) {
	want := units.Length
	if s.Kind == Torsional {
		want = units.Angle
	}
	sig := guard.New("restoring_force", guard.Want("deflection", want))
	if err := sig.Check(deflection); err != nil {
		return units.Quantity{}, err
	}
	return s.Stiffness.Mul(deflection).Neg().Base(), nil
}

var coilSpringSig = guard.New("coil_spring",
	guard.Want("wire_dia", units.Length),
	guard.Want("coil_dia", units.Length),
	guard.Free("active_coils"),
	guard.Want("shear_modulus", units.Pressure),
)

// CoilSpring is a helical compression or extension spring of round wire.
type CoilSpring struct {
	WireDia      units.Quantity
	CoilDia      units.Quantity // mean coil diameter
	ActiveCoils  float64
	ShearModulus units.Quantity
}

// NewCoilSpring validates the geometry of a helical spring.
func NewCoilSpring(wireDia, coilDia units.Quantity, activeCoils float64, shearModulus units.Quantity) (*CoilSpring, error) {
	if err := coilSpringSig.Check(wireDia, coilDia, activeCoils, shearModulus); err != nil {
		return nil, err
	}
	c, err := coilDia.Div(wireDia).Value()
	if err != nil {
		return nil, err
	}
	if wireDia.Magnitude() <= 0 || c <= 1 || activeCoils <= 0 || shearModulus.Magnitude() <= 0 {
		return nil, fmt.Errorf("coil_spring: %w: need d > 0, D > d, Na > 0 and G > 0", ErrInvalidGeometry)
	}
	return &CoilSpring{WireDia: wireDia, CoilDia: coilDia, ActiveCoils: activeCoils, ShearModulus: shearModulus}, nil
}

// SpringIndex is D/d.
func (s *CoilSpring) SpringIndex() float64 {
	c, _ := s.CoilDia.Div(s.WireDia).Value()
	return c
}

// Rate is k = G·d⁴ / (8·D³·Na), in N/m.
func (s *CoilSpring) Rate() units.Quantity {
	k := s.ShearModulus.Mul(s.WireDia.Pow(4)).Div(s.CoilDia.Pow(3)).Scale(1 / (8 * s.ActiveCoils))
	return k.Base()
}

// Element returns the spring as a linear SpringElement.
func (s *CoilSpring) Element() *SpringElement {
	return &SpringElement{Stiffness: s.Rate(), Kind: Linear}
}
