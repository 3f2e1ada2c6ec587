package spatialmath

import (
	"math"

	"github.com/chewxy/math32"
)

// Quaternion is a rotation quaternion with vector part (X, Y, Z) and scalar part W.
// Q and -Q describe the same rotation.
type Quaternion struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// IdentityQuaternion returns the quaternion of no rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// Length returns the norm of the quaternion.
func (q Quaternion) Length() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns the quaternion scaled to unit norm. The zero quaternion is returned unchanged.
func (q Quaternion) Normalize() Quaternion {
	lenSq := q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
	if lenSq == 0 {
		return q
	}
	invLen := 1 / math32.Sqrt(lenSq)
	return Quaternion{q.X * invLen, q.Y * invLen, q.Z * invLen, q.W * invLen}
}

// Negate returns -q, which describes the same rotation.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

// UnitDiff returns |x²+y²+z²+w²-1| evaluated in double precision.
func (q Quaternion) UnitDiff() float64 {
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)
	return math.Abs(x*x + y*y + z*z + w*w - 1)
}

// IsUnit reports whether the quaternion has unit norm within QuaternionUnitEpsilon.
func (q Quaternion) IsUnit() bool {
	return q.UnitDiff() <= QuaternionUnitEpsilon
}

// Quaternion returns the receiver.
func (q Quaternion) Quaternion() Quaternion {
	return q
}

// RotationMatrix converts a unit quaternion to a rotation matrix.
func (q Quaternion) RotationMatrix() RotationMatrix {
	assertUnitQuaternion(q)

	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	xw, yw, zw := q.X*q.W, q.Y*q.W, q.Z*q.W

	return RotationMatrix{
		M11: 1 - 2*(yy+zz), M12: 2 * (xy + zw), M13: 2 * (xz - yw),
		M21: 2 * (xy - zw), M22: 1 - 2*(xx+zz), M23: 2 * (yz + xw),
		M31: 2 * (xz + yw), M32: 2 * (yz - xw), M33: 1 - 2*(xx+yy),
	}
}

// ScaledRotationMatrix converts a non-zero quaternion of any norm to the rotation matrix of its
// normalized form without normalizing it first.
func (q Quaternion) ScaledRotationMatrix() RotationMatrix {
	assertNonZeroQuaternion(q)

	xx, yy, zz, ww := q.X*q.X, q.Y*q.Y, q.Z*q.Z, q.W*q.W
	invS := 1 / (xx + yy + zz + ww)
	twoInvS := 2 * invS
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	xw, yw, zw := q.X*q.W, q.Y*q.W, q.Z*q.W

	return RotationMatrix{
		M11: (ww + xx - yy - zz) * invS, M12: (xy + zw) * twoInvS, M13: (xz - yw) * twoInvS,
		M21: (xy - zw) * twoInvS, M22: (ww - xx + yy - zz) * invS, M23: (yz + xw) * twoInvS,
		M31: (xz + yw) * twoInvS, M32: (yz - xw) * twoInvS, M33: (ww - xx - yy + zz) * invS,
	}
}

// EulerAngles converts a unit quaternion to yaw, pitch and roll. Within 0.05° of a pole the
// roll is unobservable, reported as 0 and folded into the yaw.
func (q Quaternion) EulerAngles() EulerAngles {
	assertUnitQuaternion(q)

	// half of sin(pitch)
	h := q.X*q.W - q.Y*q.Z
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z

	if ClassifyHalfPole(h).Branch() {
		return EulerAngles{
			Yaw:   math32.Atan2(q.Y*q.W-q.X*q.Z, 0.5-yy-zz),
			Pitch: polePitch(h),
		}
	}
	return EulerAngles{
		Yaw:   math32.Atan2(q.X*q.Z+q.Y*q.W, 0.5-xx-yy),
		Pitch: math32.Asin(2 * h),
		Roll:  math32.Atan2(q.X*q.Y+q.Z*q.W, 0.5-xx-zz),
	}
}

// ScaledEulerAngles converts a non-zero quaternion of any norm to the Euler angles of its
// normalized form.
func (q Quaternion) ScaledEulerAngles() EulerAngles {
	assertNonZeroQuaternion(q)

	xx, yy, zz, ww := q.X*q.X, q.Y*q.Y, q.Z*q.Z, q.W*q.W
	h := (q.X*q.W - q.Y*q.Z) / (xx + yy + zz + ww)

	if ClassifyHalfPole(h).Branch() {
		return EulerAngles{
			Yaw:   math32.Atan2(2*(q.Y*q.W-q.X*q.Z), ww+xx-yy-zz),
			Pitch: polePitch(h),
		}
	}
	return EulerAngles{
		Yaw:   math32.Atan2(2*(q.X*q.Z+q.Y*q.W), ww-xx-yy+zz),
		Pitch: math32.Asin(2 * h),
		Roll:  math32.Atan2(2*(q.X*q.Y+q.Z*q.W), ww-xx+yy-zz),
	}
}

// AxisAngles converts a unit quaternion to an axis-angle with angle in [0, π]. A quaternion
// whose vector part is shorter than AxisLengthEpsilon yields the identity with the X axis.
func (q Quaternion) AxisAngles() AxisAngle {
	assertUnitQuaternion(q)

	if q.W < 0 {
		q = q.Negate()
	}
	s := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if s < AxisLengthEpsilon {
		return IdentityAxisAngle()
	}
	return AxisAngle{
		Axis:  Vector{q.X / s, q.Y / s, q.Z / s},
		Angle: halfAngleFromParts(s, q.W),
	}
}

// ScaledAxisAngles converts a non-zero quaternion of any norm to the axis-angle of its
// normalized form.
func (q Quaternion) ScaledAxisAngles() AxisAngle {
	assertNonZeroQuaternion(q)

	if q.W < 0 {
		q = q.Negate()
	}
	s := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	n := math32.Sqrt(s*s + q.W*q.W)
	if s < AxisLengthEpsilon*n {
		return IdentityAxisAngle()
	}
	return AxisAngle{
		Axis:  Vector{q.X / s, q.Y / s, q.Z / s},
		Angle: halfAngleFromParts(s/n, q.W/n),
	}
}

// halfAngleFromParts returns twice the half angle whose sine is s and cosine is w, for s, w >= 0.
// Arcsin is used below 45° and arccos above, each where it is well conditioned.
func halfAngleFromParts(s, w float32) float32 {
	if w >= HalfSqrt2 {
		if s > 1 {
			s = 1
		}
		return 2 * math32.Asin(s)
	}
	return 2 * math32.Acos(w)
}
