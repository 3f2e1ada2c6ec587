// Package survey measures the error of every single-precision conversion against the
// double-precision reference over random samples, and checks it against the documented budgets.
package survey

import (
	"fmt"
	"regexp"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/num/quat"

	"github.com/chubrik/rotation3d/spatialmath"
	"github.com/chubrik/rotation3d/spatialmath/reference"
	"github.com/chubrik/rotation3d/spatialmath/sampling"
)

// AllZones labels cases whose input is not stratified.
const AllZones = "all"

// Trial is the outcome of converting one sample.
type Trial struct {
	Error  float64
	Input  interface{}
	Output interface{}
}

// Measure draws one sample from the sampler, converts it and measures the error.
type Measure func(s *sampling.Sampler) Trial

// Case is one conversion measured over one zone of inputs.
type Case struct {
	Conversion spatialmath.Conversion
	// Zone is a pitch zone, an angle zone or AllZones.
	Zone    string
	Budget  float64
	Measure Measure
}

// Name identifies the case, e.g. "matrix->euler/polar".
func (c Case) Name() string {
	if c.Zone == AllZones {
		return string(c.Conversion)
	}
	return string(c.Conversion) + "/" + c.Zone
}

// Filter returns the cases whose name matches r. A nil r keeps every case.
func Filter(cases []Case, r *regexp.Regexp) []Case {
	if r == nil {
		return cases
	}
	return lo.Filter(cases, func(c Case, _ int) bool {
		return r.MatchString(c.Name())
	})
}

func mustBudget(c spatialmath.Conversion, z spatialmath.Zone) float64 {
	max, ok := spatialmath.ErrorBudget(c, z)
	if !ok {
		panic(fmt.Sprintf("no error budget for %s", c))
	}
	return max
}

// flatCase builds an unstratified case.
func flatCase(c spatialmath.Conversion, m Measure) Case {
	return Case{Conversion: c, Zone: AllZones, Budget: mustBudget(c, spatialmath.ZoneMain), Measure: m}
}

// pitchCases builds one case per pitch zone.
func pitchCases(c spatialmath.Conversion, m func(spatialmath.Zone) Measure) []Case {
	var out []Case
	for _, z := range spatialmath.Zones() {
		out = append(out, Case{Conversion: c, Zone: z.String(), Budget: mustBudget(c, z), Measure: m(z)})
	}
	return out
}

// angleCases builds one case per rotation angle zone. Their budgets do not depend on pitch.
func angleCases(c spatialmath.Conversion, m func(spatialmath.AngleZone) Measure) []Case {
	var out []Case
	for _, z := range spatialmath.AngleZones() {
		out = append(out, Case{Conversion: c, Zone: z.String(), Budget: mustBudget(c, spatialmath.ZoneMain), Measure: m(z)})
	}
	return out
}

// Catalog returns every measured case.
func Catalog() []Case {
	var cases []Case
	cases = append(cases,
		flatCase(spatialmath.QuaternionToMatrix, measureQuaternionToMatrix),
		flatCase(spatialmath.ScaledQuaternionToMatrix, measureScaledQuaternionToMatrix),
		flatCase(spatialmath.MatrixToQuaternion, measureMatrixToQuaternion),
		flatCase(spatialmath.ScaledMatrixToQuaternion, measureScaledMatrixToQuaternion),
	)
	cases = append(cases, pitchCases(spatialmath.QuaternionToEuler, measureQuaternionToEuler)...)
	cases = append(cases, pitchCases(spatialmath.ScaledQuaternionToEuler, measureScaledQuaternionToEuler)...)
	cases = append(cases, pitchCases(spatialmath.MatrixToEuler, measureMatrixToEuler)...)
	cases = append(cases, pitchCases(spatialmath.ScaledMatrixToEuler, measureScaledMatrixToEuler)...)
	cases = append(cases, pitchCases(spatialmath.EulerToMatrix, measureEulerToMatrix)...)
	cases = append(cases, pitchCases(spatialmath.EulerToQuaternion, measureEulerToQuaternion)...)
	cases = append(cases, angleCases(spatialmath.AxisAngleToQuaternion, measureAxisAngleToQuaternion)...)
	cases = append(cases, angleCases(spatialmath.AxisAngleToMatrix, measureAxisAngleToMatrix)...)
	cases = append(cases, angleCases(spatialmath.QuaternionToAxisAngle, measureQuaternionToAxisAngle)...)
	cases = append(cases, angleCases(spatialmath.ScaledQuaternionToAxisAngle, measureScaledQuaternionToAxisAngle)...)
	cases = append(cases, pitchCases(spatialmath.EulerToAxisAngle, measureEulerToAxisAngle)...)
	cases = append(cases, flatCase(spatialmath.MatrixToAxisAngle, measureMatrixToAxisAngle))
	cases = append(cases, pitchCases(spatialmath.AxisAngleToEuler, measureAxisAngleToEuler)...)
	cases = append(cases, flatCase(spatialmath.MatrixRoundTrip, measureMatrixRoundTrip))
	cases = append(cases, pitchCases(spatialmath.EulerCrossConsistency, measureEulerCrossConsistency)...)
	return cases
}

// Sources are rounded to single precision first; the reference result is computed from the
// rounded value so only the conversion itself contributes error.

func measureQuaternionToMatrix(s *sampling.Sampler) Trial {
	q := reference.Float32Quaternion(s.UnitQuaternion())
	m := q.RotationMatrix()
	want := reference.QuaternionToMatrix(reference.FromQuaternion(q))
	return Trial{reference.MatrixDistance(want, reference.FromMatrix(m)), q, m}
}

func measureScaledQuaternionToMatrix(s *sampling.Sampler) Trial {
	q := reference.Float32Quaternion(s.ScaledQuaternion())
	m := q.ScaledRotationMatrix()
	want := reference.QuaternionToMatrix(reference.FromQuaternion(q))
	return Trial{reference.MatrixDistance(want, reference.FromMatrix(m)), q, m}
}

func measureMatrixToQuaternion(s *sampling.Sampler) Trial {
	m := s.UnitMatrix().Float32()
	q := m.Quaternion()
	want := reference.FromMatrix(m).Quaternion()
	return Trial{reference.QuaternionDistance(want, reference.FromQuaternion(q)), m, q}
}

func measureScaledMatrixToQuaternion(s *sampling.Sampler) Trial {
	m := s.ScaledMatrix().Float32()
	q := m.ScaledQuaternion()
	want := reference.FromMatrix(m).Quaternion()
	return Trial{reference.QuaternionDistance(want, reference.FromQuaternion(q)), m, q}
}

func eulerError(want spatialmath.Quaternion, e spatialmath.EulerAngles) float64 {
	return reference.QuaternionDistance(
		reference.NormalizeQuaternion(reference.FromQuaternion(want)),
		reference.FromEulerAngles(e).Quaternion(),
	)
}

func measureQuaternionToEuler(z spatialmath.Zone) Measure {
	return func(s *sampling.Sampler) Trial {
		q := reference.Float32Quaternion(s.EulerQuaternion(z))
		e := q.EulerAngles()
		return Trial{eulerError(q, e), q, e}
	}
}

func measureScaledQuaternionToEuler(z spatialmath.Zone) Measure {
	return func(s *sampling.Sampler) Trial {
		q := reference.Float32Quaternion(s.ScaledEulerQuaternion(z))
		e := q.ScaledEulerAngles()
		return Trial{eulerError(q, e), q, e}
	}
}

func measureMatrixToEuler(z spatialmath.Zone) Measure {
	return func(s *sampling.Sampler) Trial {
		m := s.EulerMatrix(z).Float32()
		e := m.EulerAngles()
		want := reference.FromMatrix(m).Quaternion()
		return Trial{reference.QuaternionDistance(want, reference.FromEulerAngles(e).Quaternion()), m, e}
	}
}

func measureScaledMatrixToEuler(z spatialmath.Zone) Measure {
	return func(s *sampling.Sampler) Trial {
		m := s.ScaledEulerMatrix(z).Float32()
		e := m.ScaledEulerAngles()
		want := reference.FromMatrix(m).Quaternion()
		return Trial{reference.QuaternionDistance(want, reference.FromEulerAngles(e).Quaternion()), m, e}
	}
}

func measureEulerToMatrix(z spatialmath.Zone) Measure {
	return func(s *sampling.Sampler) Trial {
		e := s.UnitEulerAngles(z).Float32()
		m := e.RotationMatrix()
		want := reference.FromEulerAngles(e).RotationMatrix()
		return Trial{reference.MatrixDistance(want, reference.FromMatrix(m)), e, m}
	}
}

func measureEulerToQuaternion(z spatialmath.Zone) Measure {
	return func(s *sampling.Sampler) Trial {
		e := s.UnitEulerAngles(z).Float32()
		q := e.Quaternion()
		want := reference.FromEulerAngles(e).Quaternion()
		return Trial{reference.QuaternionDistance(want, reference.FromQuaternion(q)), e, q}
	}
}

func measureAxisAngleToQuaternion(z spatialmath.AngleZone) Measure {
	return func(s *sampling.Sampler) Trial {
		aa := s.UnitAxisAngle(z).Float32()
		q := aa.Quaternion()
		want := reference.FromAxisAngle(aa).Quaternion()
		return Trial{reference.QuaternionDistance(want, reference.FromQuaternion(q)), aa, q}
	}
}

func measureAxisAngleToMatrix(z spatialmath.AngleZone) Measure {
	return func(s *sampling.Sampler) Trial {
		aa := s.UnitAxisAngle(z).Float32()
		m := aa.RotationMatrix()
		want := reference.FromAxisAngle(aa).RotationMatrix()
		return Trial{reference.MatrixDistance(want, reference.FromMatrix(m)), aa, m}
	}
}

func axisAngleError(want spatialmath.Quaternion, aa spatialmath.AxisAngle) float64 {
	return reference.QuaternionDistance(
		reference.NormalizeQuaternion(reference.FromQuaternion(want)),
		reference.FromAxisAngle(aa).Quaternion(),
	)
}

func measureQuaternionToAxisAngle(z spatialmath.AngleZone) Measure {
	return func(s *sampling.Sampler) Trial {
		q := reference.Float32Quaternion(s.UnitAxisAngle(z).Quaternion())
		aa := q.AxisAngles()
		return Trial{axisAngleError(q, aa), q, aa}
	}
}

func measureScaledQuaternionToAxisAngle(z spatialmath.AngleZone) Measure {
	return func(s *sampling.Sampler) Trial {
		q := reference.Float32Quaternion(quat.Scale(s.Factor(), s.UnitAxisAngle(z).Quaternion()))
		aa := q.ScaledAxisAngles()
		return Trial{axisAngleError(q, aa), q, aa}
	}
}

func measureEulerToAxisAngle(z spatialmath.Zone) Measure {
	return func(s *sampling.Sampler) Trial {
		e := s.UnitEulerAngles(z).Float32()
		aa := e.AxisAngles()
		want := reference.FromEulerAngles(e).Quaternion()
		return Trial{reference.QuaternionDistance(want, reference.FromAxisAngle(aa).Quaternion()), e, aa}
	}
}

func measureMatrixToAxisAngle(s *sampling.Sampler) Trial {
	m := s.UnitMatrix().Float32()
	aa := m.AxisAngles()
	want := reference.FromMatrix(m).Quaternion()
	return Trial{reference.QuaternionDistance(want, reference.FromAxisAngle(aa).Quaternion()), m, aa}
}

func measureAxisAngleToEuler(z spatialmath.Zone) Measure {
	return func(s *sampling.Sampler) Trial {
		aa := reference.QuaternionToAxisAngle(s.EulerQuaternion(z)).Float32()
		e := aa.EulerAngles()
		want := reference.FromAxisAngle(aa).Quaternion()
		return Trial{reference.QuaternionDistance(want, reference.FromEulerAngles(e).Quaternion()), aa, e}
	}
}

func measureMatrixRoundTrip(s *sampling.Sampler) Trial {
	q := reference.Float32Quaternion(s.UnitQuaternion())
	back := q.RotationMatrix().Quaternion()
	want := reference.NormalizeQuaternion(reference.FromQuaternion(q))
	return Trial{reference.QuaternionDistance(want, reference.FromQuaternion(back)), q, back}
}

func measureEulerCrossConsistency(z spatialmath.Zone) Measure {
	return func(s *sampling.Sampler) Trial {
		e := s.UnitEulerAngles(z).Float32()
		direct := e.Quaternion()
		viaMatrix := e.RotationMatrix().Quaternion()
		return Trial{reference.QuaternionDistance(reference.FromQuaternion(direct), reference.FromQuaternion(viaMatrix)), e, viaMatrix}
	}
}
