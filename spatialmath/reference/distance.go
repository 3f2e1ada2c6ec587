package reference

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"
)

func components(q quat.Number) []float64 {
	return []float64{q.Imag, q.Jmag, q.Kmag, q.Real}
}

// QuaternionDistance returns the sum of absolute component differences between a and whichever
// of b and -b is closer.
func QuaternionDistance(a, b quat.Number) float64 {
	ac := components(a)
	same := floats.Distance(ac, components(b), 1)
	flip := floats.Distance(ac, components(quat.Scale(-1, b)), 1)
	return math.Min(same, flip)
}

// MatrixDistance returns the sum of absolute element differences.
func MatrixDistance(a, b RotationMatrix) float64 {
	return floats.Distance(a[:], b[:], 1)
}

// Double-precision constants shared with the single-precision package.
const (
	DegToRad      = float64(math.Pi / 180)
	SinNear90     = float64(0.99999961922824943)
	HalfSinNear90 = float64(0.49999980961412471)
)

// SelfCheck verifies the constants and the composition order of the oracle against values
// computed independently.
func SelfCheck() error {
	if got := math.Sin(89.95 * DegToRad); math.Abs(got-SinNear90) > 1e-15 {
		return errors.Errorf("SinNear90 is %v, recomputed %v", SinNear90, got)
	}
	if 2*HalfSinNear90 != SinNear90 {
		return errors.Errorf("HalfSinNear90 (%v) is not half of SinNear90 (%v)", HalfSinNear90, SinNear90)
	}

	// a quarter turn of yaw points the forward row along +X
	m := EulerAngles{Yaw: math.Pi / 2}.RotationMatrix()
	if d := MatrixDistance(m, RotationMatrix{0, 0, -1, 0, 1, 0, 1, 0, 0}); d > 1e-14 {
		return errors.Errorf("quarter yaw matrix is off by %v", d)
	}

	// closed-form trig composition at an arbitrary point
	e := EulerAngles{Yaw: 0.3, Pitch: -0.7, Roll: 1.9}
	sy, cy := math.Sincos(e.Yaw)
	sp, cp := math.Sincos(e.Pitch)
	sr, cr := math.Sincos(e.Roll)
	expected := RotationMatrix{
		sy*sp*sr + cy*cr, cp * sr, cy*sp*sr - sy*cr,
		sy*sp*cr - cy*sr, cp * cr, cy*sp*cr + sy*sr,
		sy * cp, -sp, cy * cp,
	}
	if d := MatrixDistance(e.RotationMatrix(), expected); d > 1e-14 {
		return errors.Errorf("euler composition is off by %v", d)
	}
	if d := QuaternionDistance(expected.Quaternion(), e.Quaternion()); d > 1e-14 {
		return errors.Errorf("matrix to quaternion is off by %v", d)
	}
	return nil
}
