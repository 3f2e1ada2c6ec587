package spatialmath

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// OrientationType defines what orientation representations are known.
type OrientationType string

// The set of allowed representations for orientation.
const (
	NoOrientationType            = OrientationType("")
	QuaternionType               = OrientationType("quaternion")
	EulerAnglesType              = OrientationType("euler_angles")
	EulerAnglesDegreesType       = OrientationType("euler_angles_degrees")
	AxisAnglesType               = OrientationType("axis_angle")
	AxisAnglesDegreesType        = OrientationType("axis_angle_degrees")
	RotationMatrixType           = OrientationType("rotation_matrix")
	defaultOrientationConfigType = QuaternionType
)

// OrientationConfig holds the underlying type of orientation, and the value.
type OrientationConfig struct {
	Type  OrientationType `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

type axisAngleDegrees struct {
	Axis  Vector  `json:"axis"`
	Angle float32 `json:"angle"`
}

type eulerAnglesDegrees struct {
	Yaw   float32 `json:"yaw"`
	Pitch float32 `json:"pitch"`
	Roll  float32 `json:"roll"`
}

// NewOrientationConfig encodes an orientation into a config, keeping its representation.
func NewOrientationConfig(o Orientation) (*OrientationConfig, error) {
	var oType OrientationType
	switch o.(type) {
	case Quaternion:
		oType = QuaternionType
	case EulerAngles:
		oType = EulerAnglesType
	case AxisAngle:
		oType = AxisAnglesType
	case RotationMatrix:
		oType = RotationMatrixType
	default:
		return nil, errors.Errorf("do not know how to map Orientation type %T to json fields", o)
	}
	bytes, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return &OrientationConfig{Type: oType, Value: json.RawMessage(bytes)}, nil
}

// ParseConfig will use the Type in OrientationConfig and convert into the correct struct that implements Orientation.
// An empty config is the identity rotation. Values that are not unit are normalized, so the result
// is always safe to pass to the unit conversions; values with no rotation, such as a zero
// quaternion, are rejected.
func (config *OrientationConfig) ParseConfig() (Orientation, error) {
	if config.Type == NoOrientationType && len(config.Value) == 0 {
		return NewZeroOrientation(), nil
	}
	oType := config.Type
	if oType == NoOrientationType {
		oType = defaultOrientationConfigType
	}

	switch oType {
	case QuaternionType:
		var q Quaternion
		if err := config.unmarshalValue(&q); err != nil {
			return nil, err
		}
		return unitQuaternion(q)
	case EulerAnglesType:
		var e EulerAngles
		if err := config.unmarshalValue(&e); err != nil {
			return nil, err
		}
		return unitEulerAngles(e), nil
	case EulerAnglesDegreesType:
		var e eulerAnglesDegrees
		if err := config.unmarshalValue(&e); err != nil {
			return nil, err
		}
		return unitEulerAngles(NewEulerAnglesDegrees(e.Yaw, e.Pitch, e.Roll)), nil
	case AxisAnglesType:
		var aa AxisAngle
		if err := config.unmarshalValue(&aa); err != nil {
			return nil, err
		}
		return unitAxisAngle(aa)
	case AxisAnglesDegreesType:
		var aa axisAngleDegrees
		if err := config.unmarshalValue(&aa); err != nil {
			return nil, err
		}
		return unitAxisAngle(NewAxisAngleDegrees(aa.Axis.X, aa.Axis.Y, aa.Axis.Z, aa.Angle))
	case RotationMatrixType:
		var m RotationMatrix
		if err := config.unmarshalValue(&m); err != nil {
			return nil, err
		}
		return unitMatrix(m)
	default:
		return nil, errors.Errorf("orientation type %s not recognized", config.Type)
	}
}

func unitQuaternion(q Quaternion) (Quaternion, error) {
	if q == (Quaternion{}) {
		return q, errors.New("quaternion is zero")
	}
	if q.IsUnit() {
		return q, nil
	}
	return q.Normalize(), nil
}

func unitEulerAngles(e EulerAngles) EulerAngles {
	if e.IsUnit() {
		return e
	}
	return e.Normalize()
}

func unitAxisAngle(aa AxisAngle) (AxisAngle, error) {
	if aa.Axis == (Vector{}) {
		return aa, errors.New("axis angle has a zero axis")
	}
	if aa.IsUnit() {
		return aa, nil
	}
	return aa.Normalize(), nil
}

// unitMatrix accepts rows of any non-zero length but not a shear.
func unitMatrix(m RotationMatrix) (RotationMatrix, error) {
	if diff := m.OrthogonalityDiff(); diff > assertSlack*MatrixOrthogonalEpsilon {
		return m, errors.Errorf("rotation matrix rows are not orthogonal (cosine %g)", diff)
	}
	if m.IsUnit() {
		return m, nil
	}
	return m.ScaledQuaternion().Normalize().RotationMatrix(), nil
}

func (config *OrientationConfig) unmarshalValue(v interface{}) error {
	if len(config.Value) == 0 {
		return errors.Errorf("orientation type %s has no value", config.Type)
	}
	return json.Unmarshal(config.Value, v)
}
