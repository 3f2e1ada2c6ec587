package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Marshal encodes the configuration as YAML.
func (c *SurveyConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// SaveTo writes the configuration to path, creating parent directories.
func (c *SurveyConfig) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrap(err, "cannot create config directory")
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
