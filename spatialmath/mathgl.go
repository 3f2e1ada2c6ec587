package spatialmath

import (
	"github.com/go-gl/mathgl/mgl32"
)

// mathgl stores matrices column-major for column vectors. That is the transpose of the row-vector
// layout used here, so both store the same elements in the same memory order.

// QuaternionFromMgl converts a mathgl quaternion.
func QuaternionFromMgl(q mgl32.Quat) Quaternion {
	return Quaternion{q.V.X(), q.V.Y(), q.V.Z(), q.W}
}

// Mgl returns the quaternion as a mathgl quaternion.
func (q Quaternion) Mgl() mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// VectorFromMgl converts a mathgl vector.
func VectorFromMgl(v mgl32.Vec3) Vector {
	return Vector{v.X(), v.Y(), v.Z()}
}

// Mgl returns the vector as a mathgl vector.
func (v Vector) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// RotationMatrixFromMat4 reads the rotation block of a mathgl 4x4 matrix.
func RotationMatrixFromMat4(m mgl32.Mat4) RotationMatrix {
	return RotationMatrix{
		M11: m[0], M12: m[1], M13: m[2],
		M21: m[4], M22: m[5], M23: m[6],
		M31: m[8], M32: m[9], M33: m[10],
	}
}

// Mat4 returns the rotation as a mathgl 4x4 matrix with no translation.
func (m RotationMatrix) Mat4() mgl32.Mat4 {
	return mgl32.Mat4{
		m.M11, m.M12, m.M13, 0,
		m.M21, m.M22, m.M23, 0,
		m.M31, m.M32, m.M33, 0,
		0, 0, 0, 1,
	}
}

// RotationMatrixFromMat3 converts a mathgl 3x3 matrix.
func RotationMatrixFromMat3(m mgl32.Mat3) RotationMatrix {
	return RotationMatrix{
		M11: m[0], M12: m[1], M13: m[2],
		M21: m[3], M22: m[4], M23: m[5],
		M31: m[6], M32: m[7], M33: m[8],
	}
}

// Mat3 returns the rotation as a mathgl 3x3 matrix.
func (m RotationMatrix) Mat3() mgl32.Mat3 {
	return mgl32.Mat3{
		m.M11, m.M12, m.M13,
		m.M21, m.M22, m.M23,
		m.M31, m.M32, m.M33,
	}
}
