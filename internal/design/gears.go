// Package design holds sizing formulas for common machine elements.
package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gomech/internal/guard"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	spurGearSig = guard.New("spur_gear",
		guard.Want("pitch_dia", units.Length),
		guard.Free("teeth"),
		guard.Want("face_width", units.Length),
	)
	gearPairSig = guard.New("gear_pair", guard.Free("pinion"), guard.Free("gear"), guard.Want("driving_speed", units.AngularVelocity))
)

// ErrInvalidGeometry is returned for non-physical element dimensions.
var ErrInvalidGeometry = errors.New("invalid geometry")

// SpurGear is a full-depth involute spur gear. Every length is expressed in
// the unit of the pitch diameter.
type SpurGear struct {
	PitchDia  units.Quantity
	Teeth     int
	FaceWidth units.Quantity

	DiametralPitch units.Quantity // teeth per unit of pitch diameter
	CircularPitch  units.Quantity
	Module         units.Quantity

	Addendum         units.Quantity
	Dedendum         units.Quantity
	DedendumShaved   units.Quantity
	WorkingDepth     units.Quantity
	WholeDepth       units.Quantity
	WholeDepthShaved units.Quantity
	Clearance        units.Quantity
	ClearanceShaved  units.Quantity

	OutsideDia     units.Quantity
	RootDia        units.Quantity
	RootDiaShaved  units.Quantity
	ToothThickness units.Quantity // basic circular thickness
}

// NewSpurGear derives the standard tooth proportions of a spur gear.
func NewSpurGear(pitchDia units.Quantity, teeth int, faceWidth units.Quantity) (*SpurGear, error) {
	if err := spurGearSig.Check(pitchDia, teeth, faceWidth); err != nil {
		return nil, err
	}
	if pitchDia.Magnitude() <= 0 || faceWidth.Magnitude() <= 0 {
		return nil, fmt.Errorf("spur_gear: %w: pitch diameter and face width must be positive", ErrInvalidGeometry)
	}
	if teeth < 3 {
		return nil, fmt.Errorf("spur_gear: %w: %d teeth", ErrInvalidGeometry, teeth)
	}

	n := float64(teeth)
	u := pitchDia.Unit()
	m := pitchDia.Magnitude() / n // module, 1/P
	l := func(k float64) units.Quantity { return units.New(k*m, u) }

	return &SpurGear{
		PitchDia:         pitchDia,
		Teeth:            teeth,
		FaceWidth:        faceWidth,
		DiametralPitch:   units.New(1/m, u.Pow(-1)),
		CircularPitch:    l(math.Pi),
		Module:           l(1),
		Addendum:         l(1),
		Dedendum:         l(1.25),
		DedendumShaved:   l(1.35),
		WorkingDepth:     l(2),
		WholeDepth:       l(2.25),
		WholeDepthShaved: l(2.35),
		Clearance:        l(0.25),
		ClearanceShaved:  l(0.35),
		OutsideDia:       l(n + 2),
		RootDia:          l(n - 2.5),
		RootDiaShaved:    l(n - 2.7),
		ToothThickness:   l(1.5708),
	}, nil
}

// GearPair is a meshing pinion and gear driven through the pinion.
type GearPair struct {
	Pinion, Gear *SpurGear

	// Ratio is gear teeth over pinion teeth.
	Ratio          float64
	DrivingSpeed   units.Quantity
	DrivenSpeed    units.Quantity
	CenterDistance units.Quantity
}

// NewGearPair meshes two gears. The driven speed is expressed in the unit
// of the driving speed and the center distance in the pinion's unit.
func NewGearPair(pinion, gear *SpurGear, drivingSpeed units.Quantity) (*GearPair, error) {
	if err := gearPairSig.Check(pinion, gear, drivingSpeed); err != nil {
		return nil, err
	}
	if pinion == nil || gear == nil {
		return nil, fmt.Errorf("gear_pair: %w: missing gear", ErrInvalidGeometry)
	}
	pm, err := pinion.Module.In(gear.Module.Unit())
	if err != nil {
		return nil, err
	}
	if !approx(pm, gear.Module.Magnitude()) {
		return nil, fmt.Errorf("gear_pair: %w: modules %s and %s do not mesh",
			ErrInvalidGeometry, pinion.Module.Format(4), gear.Module.Format(4))
	}

	center, err := pinion.PitchDia.Add(gear.PitchDia)
	if err != nil {
		return nil, err
	}
	ratio := float64(gear.Teeth) / float64(pinion.Teeth)
	return &GearPair{
		Pinion:         pinion,
		Gear:           gear,
		Ratio:          ratio,
		DrivingSpeed:   drivingSpeed,
		DrivenSpeed:    drivingSpeed.Scale(1 / ratio),
		CenterDistance: center.Scale(0.5),
	}, nil
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*max(1, math.Abs(a), math.Abs(b))
}
