package spatialmath

import (
	"math"

	"github.com/chewxy/math32"
)

// RotationMatrix is the 3x3 rotation block of a row-vector 4x4 matrix. Its rows are the right,
// up and forward basis vectors of the rotated frame, so the element layout matches the memory
// layout of an OpenGL matrix.
type RotationMatrix struct {
	M11 float32 `json:"m11"`
	M12 float32 `json:"m12"`
	M13 float32 `json:"m13"`
	M21 float32 `json:"m21"`
	M22 float32 `json:"m22"`
	M23 float32 `json:"m23"`
	M31 float32 `json:"m31"`
	M32 float32 `json:"m32"`
	M33 float32 `json:"m33"`
}

// IdentityMatrix returns the matrix of no rotation.
func IdentityMatrix() RotationMatrix {
	return RotationMatrix{M11: 1, M22: 1, M33: 1}
}

// Right returns the first row.
func (m RotationMatrix) Right() Vector {
	return Vector{m.M11, m.M12, m.M13}
}

// Up returns the second row.
func (m RotationMatrix) Up() Vector {
	return Vector{m.M21, m.M22, m.M23}
}

// Forward returns the third row.
func (m RotationMatrix) Forward() Vector {
	return Vector{m.M31, m.M32, m.M33}
}

// Normalize scales every row to unit length. It does not orthogonalize.
func (m RotationMatrix) Normalize() RotationMatrix {
	r, u, f := m.Right().Normalize(), m.Up().Normalize(), m.Forward().Normalize()
	return RotationMatrix{
		M11: r.X, M12: r.Y, M13: r.Z,
		M21: u.X, M22: u.Y, M23: u.Z,
		M31: f.X, M32: f.Y, M33: f.Z,
	}
}

func rowLength64(a, b, c float32) float64 {
	x, y, z := float64(a), float64(b), float64(c)
	return math.Sqrt(x*x + y*y + z*z)
}

func rowDot64(a, b Vector) float64 {
	return float64(a.X)*float64(b.X) + float64(a.Y)*float64(b.Y) + float64(a.Z)*float64(b.Z)
}

// UnitDiff returns the largest |length-1| over the three rows, evaluated in double precision.
func (m RotationMatrix) UnitDiff() float64 {
	return math.Max(math.Abs(rowLength64(m.M11, m.M12, m.M13)-1),
		math.Max(math.Abs(rowLength64(m.M21, m.M22, m.M23)-1),
			math.Abs(rowLength64(m.M31, m.M32, m.M33)-1)))
}

// OrthogonalityDiff returns the largest |cosine| between two rows, evaluated in double precision.
func (m RotationMatrix) OrthogonalityDiff() float64 {
	r, u, f := m.Right(), m.Up(), m.Forward()
	lr := rowLength64(r.X, r.Y, r.Z)
	lu := rowLength64(u.X, u.Y, u.Z)
	lf := rowLength64(f.X, f.Y, f.Z)
	if lr == 0 || lu == 0 || lf == 0 {
		return 1
	}
	return math.Max(math.Abs(rowDot64(r, u)/(lr*lu)),
		math.Max(math.Abs(rowDot64(r, f)/(lr*lf)), math.Abs(rowDot64(u, f)/(lu*lf))))
}

// IsUnit reports whether the matrix is orthonormal within MatrixUnitEpsilon and
// MatrixOrthogonalEpsilon.
func (m RotationMatrix) IsUnit() bool {
	return m.UnitDiff() <= MatrixUnitEpsilon && m.OrthogonalityDiff() <= MatrixOrthogonalEpsilon
}

// RotationMatrix returns the receiver.
func (m RotationMatrix) RotationMatrix() RotationMatrix {
	return m
}

// Quaternion converts an orthonormal matrix to a quaternion, extracting the largest of the four
// components first.
func (m RotationMatrix) Quaternion() Quaternion {
	assertUnitMatrix(m)
	return matrixToQuaternion(m, 1, 1, 1)
}

// ScaledQuaternion converts a matrix whose rows are orthogonal but of any non-zero length to the
// quaternion of its normalized form.
func (m RotationMatrix) ScaledQuaternion() Quaternion {
	assertOrthogonalMatrix(m)

	i1 := 1 / math32.Sqrt(m.M11*m.M11+m.M12*m.M12+m.M13*m.M13)
	i2 := 1 / math32.Sqrt(m.M21*m.M21+m.M22*m.M22+m.M23*m.M23)
	i3 := 1 / math32.Sqrt(m.M31*m.M31+m.M32*m.M32+m.M33*m.M33)
	return matrixToQuaternion(m, i1, i2, i3)
}

// matrixToQuaternion reads row k of m scaled by ik. Only the elements a branch needs are scaled.
func matrixToQuaternion(m RotationMatrix, i1, i2, i3 float32) Quaternion {
	m11, m22, m33 := m.M11*i1, m.M22*i2, m.M33*i3
	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		w := math32.Sqrt(1+trace) * 0.5
		invS := 0.25 / w
		return Quaternion{
			(m.M23*i2 - m.M32*i3) * invS,
			(m.M31*i3 - m.M13*i1) * invS,
			(m.M12*i1 - m.M21*i2) * invS,
			w,
		}
	case m11 >= m22 && m11 >= m33:
		x := math32.Sqrt(1+m11-m22-m33) * 0.5
		invS := 0.25 / x
		return Quaternion{
			x,
			(m.M12*i1 + m.M21*i2) * invS,
			(m.M13*i1 + m.M31*i3) * invS,
			(m.M23*i2 - m.M32*i3) * invS,
		}
	case m22 > m33:
		y := math32.Sqrt(1+m22-m11-m33) * 0.5
		invS := 0.25 / y
		return Quaternion{
			(m.M21*i2 + m.M12*i1) * invS,
			y,
			(m.M32*i3 + m.M23*i2) * invS,
			(m.M31*i3 - m.M13*i1) * invS,
		}
	default:
		z := math32.Sqrt(1+m33-m11-m22) * 0.5
		invS := 0.25 / z
		return Quaternion{
			(m.M31*i3 + m.M13*i1) * invS,
			(m.M32*i3 + m.M23*i2) * invS,
			z,
			(m.M12*i1 - m.M21*i2) * invS,
		}
	}
}

// EulerAngles converts an orthonormal matrix to yaw, pitch and roll. Near a pole the roll is
// reported as 0 and folded into the yaw.
func (m RotationMatrix) EulerAngles() EulerAngles {
	assertUnitMatrix(m)

	sinPitch := -m.M32
	if ClassifyPole(sinPitch).Branch() {
		return EulerAngles{
			Yaw:   math32.Atan2(-m.M13, m.M11),
			Pitch: polePitch(sinPitch),
		}
	}
	return EulerAngles{
		Yaw:   math32.Atan2(m.M31, m.M33),
		Pitch: math32.Asin(sinPitch),
		Roll:  math32.Atan2(m.M12, m.M22),
	}
}

// ScaledEulerAngles converts a matrix whose rows are orthogonal but of any non-zero length to the
// Euler angles of its normalized form. Only the terms mixing two rows need the row lengths.
func (m RotationMatrix) ScaledEulerAngles() EulerAngles {
	assertOrthogonalMatrix(m)

	sinPitch := -m.M32 / math32.Sqrt(m.M31*m.M31+m.M32*m.M32+m.M33*m.M33)
	if ClassifyPole(sinPitch).Branch() {
		return EulerAngles{
			Yaw:   math32.Atan2(-m.M13, m.M11),
			Pitch: polePitch(sinPitch),
		}
	}
	inv1 := 1 / math32.Sqrt(m.M11*m.M11+m.M12*m.M12+m.M13*m.M13)
	inv2 := 1 / math32.Sqrt(m.M21*m.M21+m.M22*m.M22+m.M23*m.M23)
	return EulerAngles{
		Yaw:   math32.Atan2(m.M31, m.M33),
		Pitch: math32.Asin(sinPitch),
		Roll:  math32.Atan2(m.M12*inv1, m.M22*inv2),
	}
}

// AxisAngles converts an orthonormal matrix to an axis-angle through its quaternion.
func (m RotationMatrix) AxisAngles() AxisAngle {
	return m.Quaternion().AxisAngles()
}

// ScaledAxisAngles converts a matrix with orthogonal rows of any non-zero length to an axis-angle.
func (m RotationMatrix) ScaledAxisAngles() AxisAngle {
	return m.ScaledQuaternion().AxisAngles()
}
