package reference

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/chubrik/rotation3d/spatialmath"
)

// FromQuaternion widens a single-precision quaternion.
func FromQuaternion(q spatialmath.Quaternion) quat.Number {
	return quat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}

// Float32Quaternion rounds a quaternion to single precision.
func Float32Quaternion(q quat.Number) spatialmath.Quaternion {
	return spatialmath.Quaternion{X: float32(q.Imag), Y: float32(q.Jmag), Z: float32(q.Kmag), W: float32(q.Real)}
}

// FromEulerAngles widens single-precision Euler angles.
func FromEulerAngles(e spatialmath.EulerAngles) EulerAngles {
	return EulerAngles{Yaw: float64(e.Yaw), Pitch: float64(e.Pitch), Roll: float64(e.Roll)}
}

// Float32 rounds the Euler angles to single precision.
func (e EulerAngles) Float32() spatialmath.EulerAngles {
	return spatialmath.EulerAngles{Yaw: float32(e.Yaw), Pitch: float32(e.Pitch), Roll: float32(e.Roll)}
}

// FromAxisAngle widens a single-precision axis-angle.
func FromAxisAngle(aa spatialmath.AxisAngle) AxisAngle {
	return AxisAngle{
		Axis:  r3.Vector{X: float64(aa.Axis.X), Y: float64(aa.Axis.Y), Z: float64(aa.Axis.Z)},
		Angle: float64(aa.Angle),
	}
}

// Float32 rounds the axis-angle to single precision.
func (aa AxisAngle) Float32() spatialmath.AxisAngle {
	return spatialmath.NewAxisAngle(float32(aa.Axis.X), float32(aa.Axis.Y), float32(aa.Axis.Z), float32(aa.Angle))
}

// FromMatrix widens a single-precision matrix.
func FromMatrix(m spatialmath.RotationMatrix) RotationMatrix {
	return RotationMatrix{
		float64(m.M11), float64(m.M12), float64(m.M13),
		float64(m.M21), float64(m.M22), float64(m.M23),
		float64(m.M31), float64(m.M32), float64(m.M33),
	}
}

// Float32 rounds the matrix to single precision.
func (m RotationMatrix) Float32() spatialmath.RotationMatrix {
	return spatialmath.RotationMatrix{
		M11: float32(m[0]), M12: float32(m[1]), M13: float32(m[2]),
		M21: float32(m[3]), M22: float32(m[4]), M23: float32(m[5]),
		M31: float32(m[6]), M32: float32(m[7]), M33: float32(m[8]),
	}
}
