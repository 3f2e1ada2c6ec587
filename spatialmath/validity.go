package spatialmath

import (
	"fmt"
)

// Validity epsilons. They were chosen from the worst deviation observed on float32 values
// rounded from exact unit inputs, so a value produced by a conversion in this package passes.
const (
	// QuaternionUnitEpsilon bounds |x²+y²+z²+w²-1|.
	QuaternionUnitEpsilon = 4.8e-7
	// VectorUnitEpsilon bounds |x²+y²+z²-1|.
	VectorUnitEpsilon = 3.6e-7
	// MatrixUnitEpsilon bounds |length-1| of every basis vector.
	MatrixUnitEpsilon = 1.2e-7
	// MatrixOrthogonalEpsilon bounds the cosine between any two basis vectors.
	MatrixOrthogonalEpsilon = 2.4e-7
)

// assertSlack widens the epsilons for precondition assertions, which also see values that
// went through an upstream conversion.
const assertSlack = 4

func assertUnitQuaternion(q Quaternion) {
	if debugAssertions && q.UnitDiff() > assertSlack*QuaternionUnitEpsilon {
		panic(fmt.Sprintf("spatialmath: quaternion %+v is not unit (diff %g)", q, q.UnitDiff()))
	}
}

func assertNonZeroQuaternion(q Quaternion) {
	if debugAssertions && q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0 {
		panic("spatialmath: zero quaternion has no rotation")
	}
}

func assertUnitMatrix(m RotationMatrix) {
	if debugAssertions && (m.UnitDiff() > assertSlack*MatrixUnitEpsilon ||
		m.OrthogonalityDiff() > assertSlack*MatrixOrthogonalEpsilon) {
		panic(fmt.Sprintf("spatialmath: matrix %+v is not orthonormal", m))
	}
}

func assertOrthogonalMatrix(m RotationMatrix) {
	if debugAssertions && m.OrthogonalityDiff() > assertSlack*MatrixOrthogonalEpsilon {
		panic(fmt.Sprintf("spatialmath: matrix %+v is not orthogonal", m))
	}
}

func assertUnitEulerAngles(e EulerAngles) {
	if debugAssertions && !e.IsUnit() {
		panic(fmt.Sprintf("spatialmath: euler angles %+v are not unit", e))
	}
}

func assertUnitAxisAngle(aa AxisAngle) {
	if debugAssertions && aa.Axis.UnitDiff() > assertSlack*VectorUnitEpsilon {
		panic(fmt.Sprintf("spatialmath: axis %+v is not unit", aa.Axis))
	}
}

func assertNonZeroAxis(aa AxisAngle) {
	if debugAssertions && aa.Axis == (Vector{}) {
		panic("spatialmath: zero axis has no direction")
	}
}
