// Package spatialmath converts rotations between unit quaternions, rotation matrices,
// yaw-pitch-roll Euler angles and axis-angle pairs in single precision, switching formula
// branches near the Euler poles and near degenerate axes so that every conversion stays
// within a documented error budget.
package spatialmath

import (
	"math"

	"github.com/pkg/errors"
)

// Angular constants in single precision.
const (
	Pi          = float32(math.Pi)
	TwoPi       = float32(math.Pi * 2)
	HalfPi      = float32(math.Pi / 2)
	MinusHalfPi = -HalfPi
	DegToRad    = float32(math.Pi / 180)
	RadToDeg    = float32(180 / math.Pi)
)

// Pole thresholds. SinNear90 is sin(89.95°): past it the arcsin of the pitch sine loses more
// precision than the polar budget allows and the pole formula takes over.
const (
	poleCutDegrees = 89.95

	SinNear90     = float32(0.99999961922824943)
	HalfSinNear90 = float32(0.49999980961412471)

	// HalfSqrt2 is cos(45°); quaternion to axis-angle uses arcsin above it and arccos below it.
	HalfSqrt2 = float32(math.Sqrt2 / 2)

	// AxisLengthEpsilon is the vector-part length under which a quaternion's axis carries no direction.
	AxisLengthEpsilon = float32(1e-15)
)

type constantCheck struct {
	name     string
	actual   float32
	expected float32
}

// SelfCheck verifies that the compiled single-precision constants match values recomputed at
// run time. Every error budget depends on them, so callers should run it once at startup.
func SelfCheck() error {
	sinNear90 := math.Sin(poleCutDegrees * math.Pi / 180)
	checks := []constantCheck{
		{"Pi", Pi, 3.14159274},
		{"TwoPi", TwoPi, 6.28318548},
		{"HalfPi", HalfPi, 1.57079637},
		{"DegToRad", DegToRad, 0.0174532924},
		{"RadToDeg", RadToDeg, 57.29578},
		{"SinNear90", SinNear90, float32(sinNear90)},
		{"HalfSinNear90", HalfSinNear90, float32(sinNear90 / 2)},
		{"HalfSqrt2", HalfSqrt2, float32(math.Cos(math.Pi / 4))},
	}
	for _, c := range checks {
		if c.actual != c.expected {
			return errors.Errorf("constant %s is %v, expected %v", c.name, c.actual, c.expected)
		}
	}
	if 2*HalfSinNear90 != SinNear90 {
		return errors.Errorf("HalfSinNear90 (%v) is not half of SinNear90 (%v)", HalfSinNear90, SinNear90)
	}
	return nil
}

// normalizeAngle wraps an angle into (-π, π].
func normalizeAngle(angle float32) float32 {
	if angle > -Pi && angle <= Pi {
		return angle
	}
	wrapped := float32(math.Remainder(float64(angle), 2*math.Pi))
	if wrapped <= -Pi {
		wrapped += TwoPi
	}
	return wrapped
}

func isUnitAngle(angle float32) bool {
	return angle >= -Pi && angle <= Pi
}
