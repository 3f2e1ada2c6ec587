// Package config defines the rotation survey configuration file.
package config

import (
	"regexp"
	"runtime"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/chubrik/rotation3d/logging"
)

// Default values for a survey run.
const (
	DefaultSamples = 100000
	DefaultSeed    = 1
	DefaultBins    = 40
	DefaultLevel   = "info"
)

// SurveyConfig describes one run of the rotation error survey.
type SurveyConfig struct {
	// Samples is the number of random inputs per case.
	Samples int `yaml:"samples" json:"samples"`
	// Seed seeds every case's sampler. Each case derives its own stream from it.
	Seed int64 `yaml:"seed" json:"seed"`
	// Filter is a regular expression on case names; empty runs every case.
	Filter string `yaml:"filter,omitempty" json:"filter,omitempty"`
	// Bins is the number of histogram buckets; 0 disables histograms.
	Bins int `yaml:"bins" json:"bins"`
	// Workers bounds concurrent cases; 0 means one per CPU.
	Workers int `yaml:"workers" json:"workers"`
	// PlotDir receives one PNG error plot per case when set.
	PlotDir string `yaml:"plot_dir,omitempty" json:"plot_dir,omitempty"`

	LogLevel    string                        `yaml:"log_level" json:"log_level"`
	LogFile     *logging.FileConfig           `yaml:"log_file,omitempty" json:"log_file,omitempty"`
	LogPatterns []logging.LoggerPatternConfig `yaml:"log_patterns,omitempty" json:"log_patterns,omitempty"`

	Probes []Probe `yaml:"probes,omitempty" json:"probes,omitempty"`
}

// Default returns a configuration with sensible defaults.
func Default() *SurveyConfig {
	return &SurveyConfig{
		Samples:  DefaultSamples,
		Seed:     DefaultSeed,
		Bins:     DefaultBins,
		LogLevel: DefaultLevel,
	}
}

// Validate reports every problem with the configuration at once.
func (c *SurveyConfig) Validate() error {
	var err error
	if c.Samples <= 0 {
		err = multierr.Append(err, errors.Errorf("samples must be positive, got %d", c.Samples))
	}
	if c.Bins < 0 {
		err = multierr.Append(err, errors.Errorf("bins must not be negative, got %d", c.Bins))
	}
	if c.Workers < 0 {
		err = multierr.Append(err, errors.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.Filter != "" {
		if _, rerr := regexp.Compile(c.Filter); rerr != nil {
			err = multierr.Append(err, errors.Wrap(rerr, "invalid filter"))
		}
	}
	if _, lerr := logging.LevelFromString(c.LogLevel); lerr != nil {
		err = multierr.Append(err, lerr)
	}
	if c.LogFile != nil && c.LogFile.Path == "" {
		err = multierr.Append(err, errors.New("log_file.path is empty"))
	}
	for _, lpc := range c.LogPatterns {
		if !logging.ValidatePattern(lpc.Pattern) {
			err = multierr.Append(err, errors.Errorf("invalid log pattern %q", lpc.Pattern))
		}
		if _, lerr := logging.LevelFromString(lpc.Level); lerr != nil {
			err = multierr.Append(err, errors.Wrapf(lerr, "log pattern %q", lpc.Pattern))
		}
	}
	names := make(map[string]bool, len(c.Probes))
	for i, p := range c.Probes {
		if p.Name == "" {
			err = multierr.Append(err, errors.Errorf("probe %d has no name", i))
		} else if names[p.Name] {
			err = multierr.Append(err, errors.Errorf("duplicate probe name %q", p.Name))
		}
		names[p.Name] = true
		if _, perr := p.Orientation(); perr != nil {
			err = multierr.Append(err, errors.Wrapf(perr, "probe %q", p.Name))
		}
	}
	return err
}

// Level returns the parsed log level, INFO if it does not parse.
func (c *SurveyConfig) Level() logging.Level {
	level, err := logging.LevelFromString(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// WorkerCount returns the effective number of concurrent cases.
func (c *SurveyConfig) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// FilterRegexp compiles Filter; nil when no filter is set.
func (c *SurveyConfig) FilterRegexp() (*regexp.Regexp, error) {
	if c.Filter == "" {
		return nil, nil
	}
	r, err := regexp.Compile(c.Filter)
	if err != nil {
		return nil, errors.Wrap(err, "invalid filter")
	}
	return r, nil
}

func defaultFileConfig(path string) *logging.FileConfig {
	fc := logging.DefaultFileConfig(path)
	return &fc
}
