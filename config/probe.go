package config

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/chubrik/rotation3d/spatialmath"
)

// Probe is a named orientation to convert into every representation.
// Type and Value follow spatialmath.OrientationConfig.
type Probe struct {
	Name  string                 `yaml:"name" json:"name"`
	Type  string                 `yaml:"type" json:"type"`
	Value map[string]interface{} `yaml:"value" json:"value"`
}

// OrientationConfig re-encodes the probe value as JSON.
func (p Probe) OrientationConfig() (*spatialmath.OrientationConfig, error) {
	cfg := &spatialmath.OrientationConfig{Type: spatialmath.OrientationType(p.Type)}
	if len(p.Value) == 0 {
		return cfg, nil
	}
	raw, err := json.Marshal(p.Value)
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode probe value")
	}
	cfg.Value = raw
	return cfg, nil
}

// Orientation parses the probe.
func (p Probe) Orientation() (spatialmath.Orientation, error) {
	cfg, err := p.OrientationConfig()
	if err != nil {
		return nil, err
	}
	return cfg.ParseConfig()
}
