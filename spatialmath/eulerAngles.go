package spatialmath

import (
	"github.com/chewxy/math32"
)

// EulerAngles is a rotation in the aircraft convention, in radians. Yaw turns about Y and is
// applied first, pitch turns about X second and roll turns about Z last.
// At pitch ±π/2 yaw and roll turn about the same axis; conversions then report roll 0.
type EulerAngles struct {
	Yaw   float32 `json:"yaw"`
	Pitch float32 `json:"pitch"`
	Roll  float32 `json:"roll"`
}

// IdentityEulerAngles returns the Euler angles of no rotation.
func IdentityEulerAngles() EulerAngles {
	return EulerAngles{}
}

// NewEulerAnglesDegrees creates Euler angles from degrees.
func NewEulerAnglesDegrees(yaw, pitch, roll float32) EulerAngles {
	return EulerAngles{yaw * DegToRad, pitch * DegToRad, roll * DegToRad}
}

// YawDegrees returns the yaw in degrees.
func (e EulerAngles) YawDegrees() float32 {
	return e.Yaw * RadToDeg
}

// PitchDegrees returns the pitch in degrees.
func (e EulerAngles) PitchDegrees() float32 {
	return e.Pitch * RadToDeg
}

// RollDegrees returns the roll in degrees.
func (e EulerAngles) RollDegrees() float32 {
	return e.Roll * RadToDeg
}

// IsValid reports whether the pitch lies in [-π/2, π/2].
func (e EulerAngles) IsValid() bool {
	return e.Pitch >= MinusHalfPi && e.Pitch <= HalfPi
}

// IsUnit reports whether the angles are valid and yaw and roll lie in [-π, π].
func (e EulerAngles) IsUnit() bool {
	return e.IsValid() && isUnitAngle(e.Yaw) && isUnitAngle(e.Roll)
}

// Normalize returns unit angles describing the same rotation. A pitch past a pole is reflected
// back, which turns yaw and roll by a half turn.
func (e EulerAngles) Normalize() EulerAngles {
	yaw, pitch, roll := e.Yaw, normalizeAngle(e.Pitch), e.Roll
	switch {
	case pitch > HalfPi:
		pitch = Pi - pitch
		yaw += Pi
		roll += Pi
	case pitch < MinusHalfPi:
		pitch = -Pi - pitch
		yaw += Pi
		roll += Pi
	}
	return EulerAngles{normalizeAngle(yaw), pitch, normalizeAngle(roll)}
}

// EulerAngles returns the receiver.
func (e EulerAngles) EulerAngles() EulerAngles {
	return e
}

// RotationMatrix converts unit Euler angles to a rotation matrix.
func (e EulerAngles) RotationMatrix() RotationMatrix {
	assertUnitEulerAngles(e)

	sy, cy := math32.Sincos(e.Yaw)
	sp, cp := math32.Sincos(e.Pitch)
	sr, cr := math32.Sincos(e.Roll)
	sysp, cysp := sy*sp, cy*sp

	return RotationMatrix{
		M11: sysp*sr + cy*cr, M12: cp * sr, M13: cysp*sr - sy*cr,
		M21: sysp*cr - cy*sr, M22: cp * cr, M23: cysp*cr + sy*sr,
		M31: sy * cp, M32: -sp, M33: cy * cp,
	}
}

// Quaternion converts unit Euler angles to a unit quaternion.
func (e EulerAngles) Quaternion() Quaternion {
	assertUnitEulerAngles(e)

	sy, cy := math32.Sincos(e.Yaw * 0.5)
	sp, cp := math32.Sincos(e.Pitch * 0.5)
	sr, cr := math32.Sincos(e.Roll * 0.5)
	sysp, sycp, cysp, cycp := sy*sp, sy*cp, cy*sp, cy*cp

	return Quaternion{
		X: cysp*cr + sycp*sr,
		Y: sycp*cr - cysp*sr,
		Z: cycp*sr - sysp*cr,
		W: cycp*cr + sysp*sr,
	}
}

// AxisAngles converts unit Euler angles to an axis-angle through their quaternion.
func (e EulerAngles) AxisAngles() AxisAngle {
	return e.Quaternion().AxisAngles()
}
