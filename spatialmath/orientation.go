package spatialmath

import (
	"github.com/chewxy/math32"
)

// Orientation is an interface used to express the different parameterizations of a 3D rotation.
// Every conversion it exposes expects unit input.
type Orientation interface {
	AxisAngles() AxisAngle
	Quaternion() Quaternion
	EulerAngles() EulerAngles
	RotationMatrix() RotationMatrix
}

// NewZeroOrientation returns an orientation which signifies no rotation.
func NewZeroOrientation() Orientation {
	return IdentityQuaternion()
}

// QuaternionDistance returns the sum of absolute component differences between two quaternions,
// taking the smaller of the distances to q2 and -q2.
func QuaternionDistance(q1, q2 Quaternion) float32 {
	same := math32.Abs(q1.X-q2.X) + math32.Abs(q1.Y-q2.Y) + math32.Abs(q1.Z-q2.Z) + math32.Abs(q1.W-q2.W)
	flip := math32.Abs(q1.X+q2.X) + math32.Abs(q1.Y+q2.Y) + math32.Abs(q1.Z+q2.Z) + math32.Abs(q1.W+q2.W)
	return math32.Min(same, flip)
}

// MatrixDistance returns the sum of absolute element differences between two matrices.
func MatrixDistance(m1, m2 RotationMatrix) float32 {
	return math32.Abs(m1.M11-m2.M11) + math32.Abs(m1.M12-m2.M12) + math32.Abs(m1.M13-m2.M13) +
		math32.Abs(m1.M21-m2.M21) + math32.Abs(m1.M22-m2.M22) + math32.Abs(m1.M23-m2.M23) +
		math32.Abs(m1.M31-m2.M31) + math32.Abs(m1.M32-m2.M32) + math32.Abs(m1.M33-m2.M33)
}

// OrientationAlmostEqual reports whether two orientations describe the same rotation within 1e-5.
func OrientationAlmostEqual(o1, o2 Orientation) bool {
	return OrientationAlmostEqualEps(o1, o2, 1e-5)
}

// OrientationAlmostEqualEps reports whether two orientations describe the same rotation within epsilon,
// measured by QuaternionDistance.
func OrientationAlmostEqualEps(o1, o2 Orientation, epsilon float32) bool {
	return QuaternionDistance(o1.Quaternion(), o2.Quaternion()) <= epsilon
}
