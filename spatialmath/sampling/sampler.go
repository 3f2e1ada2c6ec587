// Package sampling generates random rotations in double precision, stratified by the zones the
// error budgets are stated for.
package sampling

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/chubrik/rotation3d/spatialmath"
	"github.com/chubrik/rotation3d/spatialmath/reference"
)

const degToRad = math.Pi / 180

// Sampler draws rotations from its own seeded source. It is not safe for concurrent use; give
// every goroutine its own Sampler.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler whose sequence is fixed by seed.
func NewSampler(seed int64) *Sampler {
	//nolint:gosec
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *Sampler) unitValue() float64 {
	return s.rng.Float64()*2 - 1
}

func (s *Sampler) sign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

func (s *Sampler) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// unitAngle is uniform in [-π, π).
func (s *Sampler) unitAngle() float64 {
	return s.rng.Float64()*2*math.Pi - math.Pi
}

// Factor returns a scale factor log-uniform in [1e-3, 1e3).
func (s *Sampler) Factor() float64 {
	return math.Pow(10, s.rng.Float64()*6-3)
}

// UnitVector returns a random direction.
func (s *Sampler) UnitVector() r3.Vector {
	for {
		v := r3.Vector{X: s.unitValue(), Y: s.unitValue(), Z: s.unitValue()}
		if n := v.Norm(); n > 1e-3 {
			return v.Mul(1 / n)
		}
	}
}

// ScaledVector returns a random direction of random length.
func (s *Sampler) ScaledVector() r3.Vector {
	return s.UnitVector().Mul(s.Factor())
}

// UnitQuaternion returns a random unit quaternion.
func (s *Sampler) UnitQuaternion() quat.Number {
	for {
		q := quat.Number{Real: s.unitValue(), Imag: s.unitValue(), Jmag: s.unitValue(), Kmag: s.unitValue()}
		if quat.Abs(q) > 1e-3 {
			return reference.NormalizeQuaternion(q)
		}
	}
}

// ScaledQuaternion returns a random quaternion of random norm.
func (s *Sampler) ScaledQuaternion() quat.Number {
	return quat.Scale(s.Factor(), s.UnitQuaternion())
}

// UnitEulerAngles returns unit Euler angles whose pitch magnitude falls in the zone.
func (s *Sampler) UnitEulerAngles(zone spatialmath.Zone) reference.EulerAngles {
	lo, hi := zone.PitchRange()
	return reference.EulerAngles{
		Yaw:   s.unitAngle(),
		Pitch: s.sign() * s.between(lo, hi) * degToRad,
		Roll:  s.unitAngle(),
	}
}

// UnitMatrix returns a random rotation matrix.
func (s *Sampler) UnitMatrix() reference.RotationMatrix {
	return reference.QuaternionToMatrix(s.UnitQuaternion())
}

// ScaledMatrix returns a random rotation matrix with every row scaled by its own factor.
func (s *Sampler) ScaledMatrix() reference.RotationMatrix {
	return s.UnitMatrix().ScaleRows(s.Factor(), s.Factor(), s.Factor())
}

// UnitAxisAngle returns a unit axis-angle whose angle magnitude falls in the zone.
func (s *Sampler) UnitAxisAngle(zone spatialmath.AngleZone) reference.AxisAngle {
	lo, hi := zone.AngleRange()
	return reference.AxisAngle{
		Axis:  s.UnitVector(),
		Angle: s.sign() * s.between(lo, hi) * degToRad,
	}
}

// ScaledAxisAngle returns an axis-angle of the zone whose axis has random length.
func (s *Sampler) ScaledAxisAngle(zone spatialmath.AngleZone) reference.AxisAngle {
	aa := s.UnitAxisAngle(zone)
	aa.Axis = aa.Axis.Mul(s.Factor())
	return aa
}

// EulerQuaternion returns the unit quaternion of random Euler angles in the zone, with random sign.
func (s *Sampler) EulerQuaternion(zone spatialmath.Zone) quat.Number {
	return quat.Scale(s.sign(), s.UnitEulerAngles(zone).Quaternion())
}

// ScaledEulerQuaternion returns EulerQuaternion scaled by a random factor.
func (s *Sampler) ScaledEulerQuaternion(zone spatialmath.Zone) quat.Number {
	return quat.Scale(s.Factor(), s.EulerQuaternion(zone))
}

// EulerMatrix returns the matrix of random Euler angles in the zone.
func (s *Sampler) EulerMatrix(zone spatialmath.Zone) reference.RotationMatrix {
	return s.UnitEulerAngles(zone).RotationMatrix()
}

// ScaledEulerMatrix returns EulerMatrix with every row scaled by its own factor.
func (s *Sampler) ScaledEulerMatrix(zone spatialmath.Zone) reference.RotationMatrix {
	return s.EulerMatrix(zone).ScaleRows(s.Factor(), s.Factor(), s.Factor())
}
