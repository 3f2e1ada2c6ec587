package spatialmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Vector is a single-precision 3-vector, used as the axis of an AxisAngle and as the basis
// vectors of a RotationMatrix.
type Vector struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Length returns the Euclidean length of the vector.
func (v Vector) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the vector scaled to unit length. The zero vector has no direction and is
// returned unchanged.
func (v Vector) Normalize() Vector {
	lenSq := v.X*v.X + v.Y*v.Y + v.Z*v.Z
	if lenSq == 0 {
		return v
	}
	invLen := 1 / math32.Sqrt(lenSq)
	return Vector{v.X * invLen, v.Y * invLen, v.Z * invLen}
}

// UnitDiff returns |x²+y²+z²-1| evaluated in double precision.
func (v Vector) UnitDiff() float64 {
	x, y, z := float64(v.X), float64(v.Y), float64(v.Z)
	return math.Abs(x*x + y*y + z*z - 1)
}

// IsUnit reports whether the vector has unit length within VectorUnitEpsilon.
func (v Vector) IsUnit() bool {
	return v.UnitDiff() <= VectorUnitEpsilon
}
