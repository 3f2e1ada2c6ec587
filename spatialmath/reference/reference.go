// Package reference implements the rotation conversions in double precision. Its results are
// the ground truth that single-precision conversions are measured against.
package reference

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
)

// EulerAngles are yaw about Y applied first, pitch about X second and roll about Z last, in radians.
type EulerAngles struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// AxisAngle is a rotation by Angle radians about Axis, which need not be unit.
type AxisAngle struct {
	Axis  r3.Vector
	Angle float64
}

// RotationMatrix holds M11 through M33 in row-major order. Rows are the right, up and forward
// basis vectors.
type RotationMatrix [9]float64

var (
	unitX = quat.Number{Imag: 1}
	unitY = quat.Number{Jmag: 1}
	unitZ = quat.Number{Kmag: 1}
)

// rotation returns the unit quaternion turning by angle about a unit axis quaternion.
func rotation(axis quat.Number, angle float64) quat.Number {
	s, c := math.Sincos(angle / 2)
	return quat.Add(quat.Number{Real: c}, quat.Scale(s, axis))
}

// Quaternion composes the three elementary rotations.
func (e EulerAngles) Quaternion() quat.Number {
	return quat.Mul(quat.Mul(rotation(unitY, e.Yaw), rotation(unitX, e.Pitch)), rotation(unitZ, e.Roll))
}

// RotationMatrix returns the matrix of the Euler angles.
func (e EulerAngles) RotationMatrix() RotationMatrix {
	return QuaternionToMatrix(e.Quaternion())
}

// Quaternion returns the unit quaternion of the axis-angle. A zero axis is the identity.
func (aa AxisAngle) Quaternion() quat.Number {
	n := aa.Axis.Norm()
	if n == 0 {
		return quat.Number{Real: 1}
	}
	u := aa.Axis.Mul(1 / n)
	return rotation(quat.Number{Imag: u.X, Jmag: u.Y, Kmag: u.Z}, aa.Angle)
}

// RotationMatrix returns the matrix of the axis-angle.
func (aa AxisAngle) RotationMatrix() RotationMatrix {
	return QuaternionToMatrix(aa.Quaternion())
}

// NormalizeQuaternion scales q to unit norm. The zero quaternion is returned unchanged.
func NormalizeQuaternion(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 {
		return q
	}
	return quat.Scale(1/n, q)
}

// QuaternionToMatrix returns the matrix of q, normalizing it first.
func QuaternionToMatrix(q quat.Number) RotationMatrix {
	q = NormalizeQuaternion(q)
	x, y, z, w := q.Imag, q.Jmag, q.Kmag, q.Real
	return RotationMatrix{
		1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w),
		2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w),
		2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y),
	}
}

// QuaternionToAxisAngle returns the axis-angle of q with a unit axis and an angle in [0, π].
func QuaternionToAxisAngle(q quat.Number) AxisAngle {
	q = NormalizeQuaternion(q)
	if q.Real < 0 {
		q = quat.Scale(-1, q)
	}
	v := r3.Vector{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	s := v.Norm()
	if s == 0 {
		return AxisAngle{Axis: r3.Vector{X: 1}}
	}
	return AxisAngle{Axis: v.Mul(1 / s), Angle: 2 * math.Atan2(s, q.Real)}
}

// Normalize scales every row to unit length.
func (m RotationMatrix) Normalize() RotationMatrix {
	for row := 0; row < 3; row++ {
		v := r3.Vector{X: m[3*row], Y: m[3*row+1], Z: m[3*row+2]}
		n := v.Norm()
		if n == 0 {
			continue
		}
		m[3*row], m[3*row+1], m[3*row+2] = v.X/n, v.Y/n, v.Z/n
	}
	return m
}

// Dense returns the matrix as a gonum matrix.
func (m RotationMatrix) Dense() *mat.Dense {
	data := make([]float64, 9)
	copy(data, m[:])
	return mat.NewDense(3, 3, data)
}

// UnitDiff returns the largest absolute row sum of M·Mᵀ - I, which is 0 for an orthonormal matrix.
func (m RotationMatrix) UnitDiff() float64 {
	d := m.Dense()
	var g mat.Dense
	g.Mul(d, d.T())
	g.Sub(&g, mat.NewDiagDense(3, []float64{1, 1, 1}))
	return mat.Norm(&g, math.Inf(1))
}

// Quaternion returns the unit quaternion of the matrix after normalizing its rows.
func (m RotationMatrix) Quaternion() quat.Number {
	m = m.Normalize()
	m11, m12, m13 := m[0], m[1], m[2]
	m21, m22, m23 := m[3], m[4], m[5]
	m31, m32, m33 := m[6], m[7], m[8]

	var q quat.Number
	switch trace := m11 + m22 + m33; {
	case trace > 0:
		w := math.Sqrt(1+trace) / 2
		q = quat.Number{Real: w, Imag: (m23 - m32) / (4 * w), Jmag: (m31 - m13) / (4 * w), Kmag: (m12 - m21) / (4 * w)}
	case m11 >= m22 && m11 >= m33:
		x := math.Sqrt(1+m11-m22-m33) / 2
		q = quat.Number{Real: (m23 - m32) / (4 * x), Imag: x, Jmag: (m12 + m21) / (4 * x), Kmag: (m13 + m31) / (4 * x)}
	case m22 > m33:
		y := math.Sqrt(1+m22-m11-m33) / 2
		q = quat.Number{Real: (m31 - m13) / (4 * y), Imag: (m21 + m12) / (4 * y), Jmag: y, Kmag: (m32 + m23) / (4 * y)}
	default:
		z := math.Sqrt(1+m33-m11-m22) / 2
		q = quat.Number{Real: (m12 - m21) / (4 * z), Imag: (m31 + m13) / (4 * z), Jmag: (m32 + m23) / (4 * z), Kmag: z}
	}
	return NormalizeQuaternion(q)
}

// ScaleRows multiplies each row by its own factor.
func (m RotationMatrix) ScaleRows(right, up, forward float64) RotationMatrix {
	for i, f := range [3]float64{right, up, forward} {
		m[3*i] *= f
		m[3*i+1] *= f
		m[3*i+2] *= f
	}
	return m
}
