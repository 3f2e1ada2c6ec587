// Package cli contains the rotsurvey command line application.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	generalFlagConfig     = "config"
	generalFlagDebug      = "debug"
	generalFlagLogLevel   = "log-level"
	generalFlagLogFile    = "log-file"
	generalFlagLogPattern = "log-pattern"

	runFlagSamples    = "samples"
	runFlagSeed       = "seed"
	runFlagFilter     = "filter"
	runFlagWorkers    = "workers"
	runFlagBins       = "bins"
	runFlagHistograms = "histograms"
	runFlagPlotDir    = "plot-dir"

	configFlagWrite = "write"
)

// NewApp returns the rotsurvey application writing to out and errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "rotsurvey",
		Usage:           "measure single-precision rotation conversions against a double-precision reference",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    generalFlagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:  generalFlagLogLevel,
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  generalFlagLogFile,
				Usage: "also write JSON logs to a rotating `FILE`",
			},
			&cli.StringSliceFlag{
				Name:  generalFlagLogPattern,
				Usage: "set the level of matching loggers, e.g. rotsurvey.survey=warn (repeatable)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "run every conversion over random samples and check the error budgets",
				Action: RunAction,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    runFlagSamples,
						Aliases: []string{"n"},
						Usage:   "samples per case",
					},
					&cli.Int64Flag{
						Name:  runFlagSeed,
						Usage: "random seed",
					},
					&cli.StringFlag{
						Name:  runFlagFilter,
						Usage: "only run cases whose name matches `REGEXP`",
					},
					&cli.IntFlag{
						Name:  runFlagWorkers,
						Usage: "cases run concurrently (0 for one per CPU)",
					},
					&cli.IntFlag{
						Name:  runFlagBins,
						Usage: "histogram buckets (0 disables histograms)",
					},
					&cli.BoolFlag{
						Name:  runFlagHistograms,
						Usage: "print an error histogram for every case, not only failing ones",
					},
					&cli.StringFlag{
						Name:  runFlagPlotDir,
						Usage: "write a PNG error plot per case into `DIR`",
					},
				},
			},
			{
				Name:   "budgets",
				Usage:  "print the error budget of every conversion",
				Action: BudgetsAction,
			},
			{
				Name:      "probe",
				Usage:     "convert orientations into every representation",
				ArgsUsage: "[orientation json ...]",
				Description: `Converts the probes of the configuration file and every argument.
Arguments are orientation configs such as
  '{"type": "euler_angles_degrees", "value": {"yaw": 90, "pitch": 30, "roll": 0}}'`,
				Action: ProbeAction,
			},
			{
				Name:   "selfcheck",
				Usage:  "verify the numeric constants",
				Action: SelfCheckAction,
			},
			{
				Name:   "config",
				Usage:  "print the effective configuration",
				Action: ConfigAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  configFlagWrite,
						Usage: "write the configuration to `FILE` instead",
					},
				},
			},
		},
	}
}
