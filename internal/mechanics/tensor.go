package mechanics

import (
	"math"

	"github.com/alexiusacademia/gomech/internal/guard"
	"github.com/alexiusacademia/gomech/internal/units"
)

var (
	stressTensorSig = guard.New("stress_tensor",
		guard.Want("sigma_x", units.Pressure), guard.Want("sigma_y", units.Pressure), guard.Want("tau_xy", units.Pressure))
	planeAngleSig = guard.New("plane_stress", guard.Want("theta", units.Angle))

	radian = units.BaseUnit(units.Angle)
	degree = units.Unit{Symbol: "deg", Dim: units.Angle, Scale: math.Pi / 180}
)

// StressTensor is a two-dimensional state of stress. All components are
// held in the unit of σx.
type StressTensor struct {
	unit           units.Unit
	sx, sy, txy    float64
	center, radius float64
}

// NewStressTensor builds a plane stress state from σx, σy and τxy.
func NewStressTensor(sigmaX, sigmaY, tauXY units.Quantity) (*StressTensor, error) {
	if err := stressTensorSig.Check(sigmaX, sigmaY, tauXY); err != nil {
		return nil, err
	}
	u := sigmaX.Unit()
	sy, err := sigmaY.In(u)
	if err != nil {
		return nil, err
	}
	txy, err := tauXY.In(u)
	if err != nil {
		return nil, err
	}
	sx := sigmaX.Magnitude()
	return &StressTensor{
		unit:   u,
		sx:     sx,
		sy:     sy,
		txy:    txy,
		center: (sx + sy) / 2,
		radius: math.Hypot((sx-sy)/2, txy),
	}, nil
}

func (s *StressTensor) q(v float64) units.Quantity { return units.New(v, s.unit) }

// SigmaX, SigmaY and TauXY return the input components.
func (s *StressTensor) SigmaX() units.Quantity { return s.q(s.sx) }
func (s *StressTensor) SigmaY() units.Quantity { return s.q(s.sy) }
func (s *StressTensor) TauXY() units.Quantity  { return s.q(s.txy) }

// Sigma1 is the maximum principal stress.
func (s *StressTensor) Sigma1() units.Quantity { return s.q(s.center + s.radius) }

// Sigma2 is the minimum principal stress.
func (s *StressTensor) Sigma2() units.Quantity { return s.q(s.center - s.radius) }

// TauMax is the maximum in-plane shear stress, the radius of Mohr's circle.
func (s *StressTensor) TauMax() units.Quantity { return s.q(s.radius) }

// Center is the average normal stress, the centre of Mohr's circle.
func (s *StressTensor) Center() units.Quantity { return s.q(s.center) }

// PrincipalAngle is the rotation from the x axis to the σ1 plane, in
// degrees.
func (s *StressTensor) PrincipalAngle() units.Quantity {
	rad := 0.5 * math.Atan2(2*s.txy, s.sx-s.sy)
	return units.New(rad*180/math.Pi, degree)
}

// OnPlane returns the normal and shear stress on a plane rotated by theta
// from the x face.
func (s *StressTensor) OnPlane(theta units.Quantity) (normal, shear units.Quantity, err error) {
	if err := planeAngleSig.Check(theta); err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	th, err := theta.In(radian)
	if err != nil {
		return units.Quantity{}, units.Quantity{}, err
	}
	half := (s.sx - s.sy) / 2
	sin2, cos2 := math.Sincos(2 * th)
	normal = s.q(s.center + half*cos2 + s.txy*sin2)
	shear = s.q(-half*sin2 + s.txy*cos2)
	return normal, shear, nil
}

// Unit is the stress unit the tensor reports in.
func (s *StressTensor) Unit() units.Unit { return s.unit }
