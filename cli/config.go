package cli

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/chubrik/rotation3d/config"
	"github.com/chubrik/rotation3d/logging"
)

// loadConfig reads the configuration file and applies every flag the user set.
func loadConfig(c *cli.Context) (*config.SurveyConfig, error) {
	var o config.Overrides
	if c.IsSet(runFlagSamples) {
		v := c.Int(runFlagSamples)
		o.Samples = &v
	}
	if c.IsSet(runFlagSeed) {
		v := c.Int64(runFlagSeed)
		o.Seed = &v
	}
	if c.IsSet(runFlagFilter) {
		v := c.String(runFlagFilter)
		o.Filter = &v
	}
	if c.IsSet(runFlagWorkers) {
		v := c.Int(runFlagWorkers)
		o.Workers = &v
	}
	if c.IsSet(runFlagBins) {
		v := c.Int(runFlagBins)
		o.Bins = &v
	}
	if c.IsSet(generalFlagLogLevel) {
		v := c.String(generalFlagLogLevel)
		o.LogLevel = &v
	}
	if c.Bool(generalFlagDebug) {
		v := "debug"
		o.LogLevel = &v
	}
	if c.IsSet(generalFlagLogFile) {
		v := c.String(generalFlagLogFile)
		o.LogFile = &v
	}
	for _, arg := range c.StringSlice(generalFlagLogPattern) {
		p, err := logging.ParseLoggerPattern(arg)
		if err != nil {
			return nil, err
		}
		o.LogPatterns = append(o.LogPatterns, p)
	}
	if c.IsSet(runFlagPlotDir) {
		v := c.String(runFlagPlotDir)
		o.PlotDir = &v
	}
	return config.Load(c.String(generalFlagConfig), o)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newLogger builds the command logger. Console output goes to the error writer so reports on
// the main writer stay clean. log_level applies to every logger no log pattern matches.
func newLogger(c *cli.Context, cfg *config.SurveyConfig) (logging.Logger, io.Closer, error) {
	if err := logging.ConfigureLevels(cfg.Level(), cfg.LogPatterns); err != nil {
		return nil, nil, err
	}
	logger := logging.NewWriterLogger("rotsurvey", cfg.Level(), c.App.ErrWriter)
	var closer io.Closer = nopCloser{}
	if cfg.LogFile != nil {
		fileAppender, err := logging.NewFileAppender(*cfg.LogFile)
		if err != nil {
			return nil, nil, err
		}
		logger.AddAppender(fileAppender)
		closer = fileAppender
	}
	return logger, closer, nil
}

// ConfigAction prints or writes the effective configuration.
func ConfigAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if path := c.String(configFlagWrite); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, pterm.Success.Sprintf("Wrote %s", path))
		return nil
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(data)
	return err
}
