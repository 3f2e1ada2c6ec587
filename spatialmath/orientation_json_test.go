package spatialmath

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

// customOrientation is an Orientation the config encoder does not know.
type customOrientation struct {
	q Quaternion
}

func (c customOrientation) AxisAngles() AxisAngle { return c.q.AxisAngles() }
func (c customOrientation) Quaternion() Quaternion { return c.q }
func (c customOrientation) EulerAngles() EulerAngles { return c.q.EulerAngles() }
func (c customOrientation) RotationMatrix() RotationMatrix { return c.q.RotationMatrix() }

func loadOrientationConfigs(t *testing.T) map[string]OrientationConfig {
	t.Helper()
	data, err := os.ReadFile("data/orientations.json")
	test.That(t, err, test.ShouldBeNil)

	var testMap map[string]OrientationConfig
	test.That(t, json.Unmarshal(data, &testMap), test.ShouldBeNil)
	return testMap
}

func TestOrientationConfig(t *testing.T) {
	testMap := loadOrientationConfigs(t)

	// config with unknown orientation
	oc := testMap["wrong"]
	_, err := oc.ParseConfig()
	test.That(t, err, test.ShouldBeError, errors.New("orientation type oiler_angles not recognized"))

	// config with good type, but bad value
	oc = testMap["wrongvalue"]
	_, err = oc.ParseConfig()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot unmarshal string")

	oc = testMap["novalue"]
	_, err = oc.ParseConfig()
	test.That(t, err, test.ShouldBeError, errors.New("orientation type axis_angle has no value"))

	// empty config
	oc = testMap["empty"]
	o, err := oc.ParseConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.Quaternion(), test.ShouldResemble, IdentityQuaternion())
	_, err = NewOrientationConfig(customOrientation{IdentityQuaternion()})
	test.That(t, err, test.ShouldBeError,
		errors.Errorf("do not know how to map Orientation type %T to json fields", customOrientation{}))

	// a value without a type is a quaternion
	oc = testMap["untyped"]
	o, err = oc.ParseConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o, test.ShouldResemble, Quaternion{0, 0, 1, 0})

	for _, tc := range []struct {
		key      string
		oType    OrientationType
		expected Orientation
	}{
		{"quaternion", QuaternionType, Quaternion{0, 0.70710677, 0, 0.70710677}},
		{"euler", EulerAnglesType, EulerAngles{Yaw: 0.5, Pitch: -0.25, Roll: 1}},
		{"eulerdegrees", EulerAnglesType, NewEulerAnglesDegrees(45, 0, 0)},
		{"axisangle", AxisAnglesType, NewAxisAngle(1, 0, 0, 0.78539816)},
		{"axisangledegrees", AxisAnglesType, NewAxisAngleDegrees(0, 0, 1, 90)},
		{"matrix", RotationMatrixType, IdentityMatrix()},
	} {
		t.Run(tc.key, func(t *testing.T) {
			oc := testMap[tc.key]
			o, err := oc.ParseConfig()
			test.That(t, err, test.ShouldBeNil)
			test.That(t, o, test.ShouldResemble, tc.expected)

			// degree configs are written back in radians.
			encoded, err := NewOrientationConfig(o)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, encoded.Type, test.ShouldEqual, tc.oType)

			again, err := encoded.ParseConfig()
			test.That(t, err, test.ShouldBeNil)
			test.That(t, again, test.ShouldResemble, o)
		})
	}
}

func TestOrientationConfigJSON(t *testing.T) {
	oc, err := NewOrientationConfig(NewEulerAnglesDegrees(90, 0, 0))
	test.That(t, err, test.ShouldBeNil)

	data, err := json.Marshal(oc)
	test.That(t, err, test.ShouldBeNil)

	var decoded OrientationConfig
	test.That(t, json.Unmarshal(data, &decoded), test.ShouldBeNil)
	test.That(t, decoded.Type, test.ShouldEqual, EulerAnglesType)

	o, err := decoded.ParseConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(o, Quaternion{0, 0.70710677, 0, 0.70710677}), test.ShouldBeTrue)
}

func parseJSON(t *testing.T, data string) (Orientation, error) {
	t.Helper()
	var oc OrientationConfig
	test.That(t, json.Unmarshal([]byte(data), &oc), test.ShouldBeNil)
	return oc.ParseConfig()
}

func TestOrientationConfigNormalizes(t *testing.T) {
	// an axis of length 3 about X at 1.2 rad
	o, err := parseJSON(t, `{"type": "axis_angle", "value": {"axis": {"x": 3, "y": 0, "z": 0}, "angle": 1.2}}`)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o, test.ShouldResemble, NewAxisAngle(1, 0, 0, 1.2))
	test.That(t, o.EulerAngles().PitchDegrees(), test.ShouldAlmostEqual, 68.755, 1e-3)
	test.That(t, o.RotationMatrix().IsUnit(), test.ShouldBeTrue)

	o, err = parseJSON(t, `{"type": "axis_angle_degrees", "value": {"axis": {"x": 0, "y": 0, "z": 0.5}, "angle": 270}}`)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.(AxisAngle).IsUnit(), test.ShouldBeTrue)
	quaternionAlmostEqual(t, o.Quaternion(), NewAxisAngleDegrees(0, 0, 1, -90).Quaternion(), 1e-6)

	o, err = parseJSON(t, `{"type": "quaternion", "value": {"x": 1, "y": 1, "z": 0, "w": 0}}`)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.(Quaternion).IsUnit(), test.ShouldBeTrue)
	test.That(t, o.RotationMatrix().IsUnit(), test.ShouldBeTrue)

	o, err = parseJSON(t, `{"type": "euler_angles_degrees", "value": {"yaw": 400, "pitch": 0, "roll": -200}}`)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.(EulerAngles).IsUnit(), test.ShouldBeTrue)
	test.That(t, o.(EulerAngles).YawDegrees(), test.ShouldAlmostEqual, 40, 1e-3)
	test.That(t, o.(EulerAngles).RollDegrees(), test.ShouldAlmostEqual, 160, 1e-3)

	// rows of length 2, 1 and 4
	o, err = parseJSON(t, `{"type": "rotation_matrix", "value": {"m11": 2, "m22": 0, "m23": 1, "m32": -4, "m33": 0}}`)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.(RotationMatrix).IsUnit(), test.ShouldBeTrue)
	matrixAlmostEqual(t, o.(RotationMatrix), RotationMatrix{M11: 1, M23: 1, M32: -1}, 1e-6)
}

func TestOrientationConfigRejectsNoRotation(t *testing.T) {
	_, err := parseJSON(t, `{"type": "quaternion", "value": {"x": 0, "y": 0, "z": 0, "w": 0}}`)
	test.That(t, err, test.ShouldBeError, errors.New("quaternion is zero"))

	_, err = parseJSON(t, `{"type": "axis_angle", "value": {"axis": {"x": 0, "y": 0, "z": 0}, "angle": 1}}`)
	test.That(t, err, test.ShouldBeError, errors.New("axis angle has a zero axis"))

	_, err = parseJSON(t, `{"type": "rotation_matrix", "value": {"m11": 1, "m21": 1, "m33": 1}}`)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "rotation matrix rows are not orthogonal")

	_, err = parseJSON(t, `{"type": "rotation_matrix", "value": {"m11": 1, "m22": 1}}`)
	test.That(t, err, test.ShouldNotBeNil)
}
