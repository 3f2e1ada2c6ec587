package config

import (
	"github.com/a8m/envsubst"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/chubrik/rotation3d/logging"
)

// Overrides holds command line values. Nil fields leave the loaded value alone.
type Overrides struct {
	Samples  *int
	Seed     *int64
	Filter   *string
	Bins     *int
	Workers  *int
	LogLevel *string
	LogFile  *string
	PlotDir  *string
	// LogPatterns are appended after the file's patterns, so they win.
	LogPatterns []logging.LoggerPatternConfig
}

// Load builds the configuration with priority defaults < file < overrides.
// An empty path skips the file.
func Load(path string, overrides Overrides) (*SurveyConfig, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.Apply(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies every set override into the configuration.
func (c *SurveyConfig) Apply(o Overrides) {
	if o.Samples != nil {
		c.Samples = *o.Samples
	}
	if o.Seed != nil {
		c.Seed = *o.Seed
	}
	if o.Filter != nil {
		c.Filter = *o.Filter
	}
	if o.Bins != nil {
		c.Bins = *o.Bins
	}
	if o.Workers != nil {
		c.Workers = *o.Workers
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.LogFile != nil {
		if *o.LogFile == "" {
			c.LogFile = nil
		} else if c.LogFile == nil {
			c.LogFile = defaultFileConfig(*o.LogFile)
		} else {
			c.LogFile.Path = *o.LogFile
		}
	}
	if o.PlotDir != nil {
		c.PlotDir = *o.PlotDir
	}
	c.LogPatterns = append(c.LogPatterns, o.LogPatterns...)
}

// loadFromFile merges a YAML file over the values already in cfg. Environment variables in the
// file, such as ${SURVEY_SEED}, are expanded first.
func loadFromFile(cfg *SurveyConfig, path string) error {
	data, err := envsubst.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "cannot read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "cannot parse config %s", path)
	}
	return nil
}
