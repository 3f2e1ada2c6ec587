package spatialmath

import "github.com/chewxy/math32"

// Pole classifies how close a rotation is to the Euler gimbal-lock poles, judged from the sine
// of the pitch that a conversion is about to feed to arcsin.
type Pole int

const (
	// PoleRegular is away from the poles; arcsin and two atan2 terms are well conditioned.
	PoleRegular Pole = iota
	// PoleNear is within 0.05° of a pole, where arcsin error outgrows the budget.
	PoleNear
	// PoleAt is on the pole, or past it by rounding.
	PoleAt
)

func (p Pole) String() string {
	switch p {
	case PoleRegular:
		return "regular"
	case PoleNear:
		return "near-pole"
	case PoleAt:
		return "at-pole"
	default:
		return "unknown"
	}
}

// Branch reports whether the pole-safe formula must be used.
func (p Pole) Branch() bool {
	return p != PoleRegular
}

// Sign returns +1 for the north pole (positive pitch sine) and -1 for the south pole.
func Sign(sinPitch float32) float32 {
	if sinPitch > 0 {
		return 1
	}
	return -1
}

// ClassifyPole classifies a pitch sine against SinNear90.
func ClassifyPole(sinPitch float32) Pole {
	abs := math32.Abs(sinPitch)
	switch {
	case abs <= SinNear90:
		return PoleRegular
	case abs < 1:
		return PoleNear
	default:
		return PoleAt
	}
}

// ClassifyHalfPole classifies half of a pitch sine, the form quaternion formulas produce,
// against HalfSinNear90.
func ClassifyHalfPole(halfSinPitch float32) Pole {
	abs := math32.Abs(halfSinPitch)
	switch {
	case abs <= HalfSinNear90:
		return PoleRegular
	case abs < 0.5:
		return PoleNear
	default:
		return PoleAt
	}
}

// polePitch returns the pitch a pole-branch conversion reports: +π/2 on the north pole and
// -π/2 on the south pole.
func polePitch(sinPitch float32) float32 {
	return Sign(sinPitch) * HalfPi
}
