package spatialmath

import (
	"github.com/chewxy/math32"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// An orientation can be expressed by first specifying an axis, i.e. a line from the origin
// to a point on the unit sphere, and a rotation around that axis by Angle radians.

// AxisAngle is a rotation by Angle radians about Axis. When Angle is 0 the axis carries no
// information and callers must not rely on it.
type AxisAngle struct {
	Axis  Vector  `json:"axis"`
	Angle float32 `json:"angle"`
}

// IdentityAxisAngle returns the axis-angle of no rotation, about the X axis.
func IdentityAxisAngle() AxisAngle {
	return AxisAngle{Axis: Vector{1, 0, 0}}
}

// NewAxisAngle creates an axis-angle from axis components and an angle in radians.
func NewAxisAngle(x, y, z, angle float32) AxisAngle {
	return AxisAngle{Vector{x, y, z}, angle}
}

// NewAxisAngleDegrees creates an axis-angle from axis components and an angle in degrees.
func NewAxisAngleDegrees(x, y, z, angle float32) AxisAngle {
	return AxisAngle{Vector{x, y, z}, angle * DegToRad}
}

// AngleDegrees returns the angle in degrees.
func (aa AxisAngle) AngleDegrees() float32 {
	return aa.Angle * RadToDeg
}

// Normalize scales the axis to unit length and wraps the angle into (-π, π].
func (aa AxisAngle) Normalize() AxisAngle {
	return AxisAngle{aa.Axis.Normalize(), normalizeAngle(aa.Angle)}
}

// IsUnit reports whether the axis has unit length and the angle lies in [-π, π].
func (aa AxisAngle) IsUnit() bool {
	return aa.Axis.IsUnit() && isUnitAngle(aa.Angle)
}

// AxisAngles returns the receiver.
func (aa AxisAngle) AxisAngles() AxisAngle {
	return aa
}

// Quaternion converts an axis-angle with a unit axis to a unit quaternion.
func (aa AxisAngle) Quaternion() Quaternion {
	assertUnitAxisAngle(aa)

	s, c := math32.Sincos(aa.Angle * 0.5)
	return Quaternion{aa.Axis.X * s, aa.Axis.Y * s, aa.Axis.Z * s, c}
}

// ScaledQuaternion converts an axis-angle with a non-zero axis of any length to a unit quaternion.
func (aa AxisAngle) ScaledQuaternion() Quaternion {
	assertNonZeroAxis(aa)

	s, c := math32.Sincos(aa.Angle * 0.5)
	s /= aa.Axis.Length()
	return Quaternion{aa.Axis.X * s, aa.Axis.Y * s, aa.Axis.Z * s, c}
}

// RotationMatrix converts an axis-angle with a unit axis to a rotation matrix (Rodrigues).
func (aa AxisAngle) RotationMatrix() RotationMatrix {
	assertUnitAxisAngle(aa)
	return rodrigues(aa.Axis.X, aa.Axis.Y, aa.Axis.Z, aa.Angle)
}

// ScaledRotationMatrix converts an axis-angle with a non-zero axis of any length to a rotation matrix.
func (aa AxisAngle) ScaledRotationMatrix() RotationMatrix {
	assertNonZeroAxis(aa)

	inv := 1 / aa.Axis.Length()
	return rodrigues(aa.Axis.X*inv, aa.Axis.Y*inv, aa.Axis.Z*inv, aa.Angle)
}

func rodrigues(x, y, z, angle float32) RotationMatrix {
	sa, ca := math32.Sincos(angle)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	sax, say, saz := sa*x, sa*y, sa*z
	xyc, xzc, yzc := xy-ca*xy, xz-ca*xz, yz-ca*yz

	return RotationMatrix{
		M11: xx + ca*(1-xx), M12: xyc + saz, M13: xzc - say,
		M21: xyc - saz, M22: yy + ca*(1-yy), M23: yzc + sax,
		M31: xzc + say, M32: yzc - sax, M33: zz + ca*(1-zz),
	}
}

// EulerAngles converts an axis-angle with a unit axis to Euler angles through its quaternion.
func (aa AxisAngle) EulerAngles() EulerAngles {
	return aa.Quaternion().EulerAngles()
}

// ScaledEulerAngles converts an axis-angle with a non-zero axis of any length to Euler angles.
func (aa AxisAngle) ScaledEulerAngles() EulerAngles {
	return aa.ScaledQuaternion().EulerAngles()
}
