package spatialmath

import (
	"github.com/chewxy/math32"
)

// Zone buckets rotations by the magnitude of their Euler pitch. Error budgets are stated per zone
// because the conversions that extract pitch lose precision as it approaches ±90°.
type Zone int

const (
	// ZoneMain is |pitch| < 45°.
	ZoneMain Zone = iota
	// ZoneMiddle is 45° <= |pitch| < 89.8°.
	ZoneMiddle
	// ZonePolar is 89.8° <= |pitch| <= 90°.
	ZonePolar
)

// Zones lists the zones from the equator to the poles.
func Zones() []Zone {
	return []Zone{ZoneMain, ZoneMiddle, ZonePolar}
}

func (z Zone) String() string {
	switch z {
	case ZoneMain:
		return "main"
	case ZoneMiddle:
		return "middle"
	case ZonePolar:
		return "polar"
	default:
		return "unknown"
	}
}

// PitchRange returns the zone's bounds on |pitch| in degrees.
func (z Zone) PitchRange() (float64, float64) {
	switch z {
	case ZoneMiddle:
		return 45, 89.8
	case ZonePolar:
		return 89.8, 90
	default:
		return 0, 45
	}
}

// ZoneOf returns the zone of a pitch in radians.
func ZoneOf(pitch float32) Zone {
	deg := math32.Abs(pitch * RadToDeg)
	switch {
	case deg < 45:
		return ZoneMain
	case deg < 89.8:
		return ZoneMiddle
	default:
		return ZonePolar
	}
}

// AngleZone buckets axis-angle rotations by the magnitude of their angle, which decides the
// arcsin or arccos branch of quaternion to axis-angle.
type AngleZone int

const (
	// AngleSmall is |angle| < 1°.
	AngleSmall AngleZone = iota
	// AngleMedium is 1° <= |angle| < 179°.
	AngleMedium
	// AngleLarge is 179° <= |angle| <= 180°.
	AngleLarge
)

// AngleZones lists the angle zones from small to large.
func AngleZones() []AngleZone {
	return []AngleZone{AngleSmall, AngleMedium, AngleLarge}
}

func (z AngleZone) String() string {
	switch z {
	case AngleSmall:
		return "small"
	case AngleMedium:
		return "medium"
	case AngleLarge:
		return "large"
	default:
		return "unknown"
	}
}

// AngleRange returns the zone's bounds on |angle| in degrees.
func (z AngleZone) AngleRange() (float64, float64) {
	switch z {
	case AngleSmall:
		return 0, 1
	case AngleLarge:
		return 179, 180
	default:
		return 1, 179
	}
}

// Conversion names a measured conversion.
type Conversion string

// Measured conversions. Scaled variants are measured on non-unit input against the reference
// result for the normalized input.
const (
	QuaternionToMatrix          Conversion = "quaternion->matrix"
	ScaledQuaternionToMatrix    Conversion = "scaled quaternion->matrix"
	MatrixToQuaternion          Conversion = "matrix->quaternion"
	ScaledMatrixToQuaternion    Conversion = "scaled matrix->quaternion"
	QuaternionToEuler           Conversion = "quaternion->euler"
	ScaledQuaternionToEuler     Conversion = "scaled quaternion->euler"
	MatrixToEuler               Conversion = "matrix->euler"
	ScaledMatrixToEuler         Conversion = "scaled matrix->euler"
	EulerToMatrix               Conversion = "euler->matrix"
	EulerToQuaternion           Conversion = "euler->quaternion"
	AxisAngleToQuaternion       Conversion = "axis-angle->quaternion"
	AxisAngleToMatrix           Conversion = "axis-angle->matrix"
	QuaternionToAxisAngle       Conversion = "quaternion->axis-angle"
	ScaledQuaternionToAxisAngle Conversion = "scaled quaternion->axis-angle"
	EulerToAxisAngle            Conversion = "euler->axis-angle"
	MatrixToAxisAngle           Conversion = "matrix->axis-angle"
	AxisAngleToEuler            Conversion = "axis-angle->euler"
	MatrixRoundTrip             Conversion = "quaternion->matrix->quaternion"
	EulerCrossConsistency       Conversion = "euler->quaternion vs euler->matrix->quaternion"
)

// Budget is the maximum error a conversion may show in each zone. Errors of quaternion,
// Euler and axis-angle results are measured as the double-cover aware sum of absolute
// component differences between quaternions re-expressed from the result and from the source.
// Errors of matrix results are the sum of absolute element differences.
type Budget struct {
	Conversion Conversion
	Main       float64
	Middle     float64
	Polar      float64
}

// Max returns the budget for one zone.
func (b Budget) Max(z Zone) float64 {
	switch z {
	case ZoneMiddle:
		return b.Middle
	case ZonePolar:
		return b.Polar
	default:
		return b.Main
	}
}

func flat(c Conversion, max float64) Budget {
	return Budget{c, max, max, max}
}

var budgets = []Budget{
	flat(QuaternionToMatrix, 3e-6),
	flat(ScaledQuaternionToMatrix, 5e-6),
	flat(MatrixToQuaternion, 2e-6),
	flat(ScaledMatrixToQuaternion, 4e-6),
	{QuaternionToEuler, 2e-6, 2.5e-4, 2e-3},
	{ScaledQuaternionToEuler, 3e-6, 3e-4, 2.5e-3},
	{MatrixToEuler, 2e-6, 2.5e-4, 2e-3},
	{ScaledMatrixToEuler, 4e-6, 3e-4, 2.5e-3},
	flat(EulerToMatrix, 3e-6),
	flat(EulerToQuaternion, 2e-6),
	flat(AxisAngleToQuaternion, 1e-6),
	flat(AxisAngleToMatrix, 3e-6),
	flat(QuaternionToAxisAngle, 2e-6),
	flat(ScaledQuaternionToAxisAngle, 3e-6),
	flat(EulerToAxisAngle, 3e-6),
	flat(MatrixToAxisAngle, 4e-6),
	{AxisAngleToEuler, 3e-6, 2.5e-4, 2e-3},
	flat(MatrixRoundTrip, 2e-6),
	flat(EulerCrossConsistency, 2e-6),
}

// Budgets returns every documented budget.
func Budgets() []Budget {
	out := make([]Budget, len(budgets))
	copy(out, budgets)
	return out
}

// ErrorBudget returns the maximum error documented for a conversion in a zone, and false if
// the conversion has no budget.
func ErrorBudget(c Conversion, z Zone) (float64, bool) {
	for _, b := range budgets {
		if b.Conversion == c {
			return b.Max(z), true
		}
	}
	return 0, false
}
