package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/chubrik/rotation3d/logging"
	"github.com/chubrik/rotation3d/spatialmath"
	"github.com/chubrik/rotation3d/spatialmath/reference"
	"github.com/chubrik/rotation3d/spatialmath/survey"
)

const histogramWidth = 40

// RunAction runs the survey and prints a report. It fails if any case exceeds its budget.
func RunAction(c *cli.Context) (err error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(c, cfg)
	if err != nil {
		return err
	}
	defer func() {
		//nolint:errcheck
		logger.Sync()
		if cerr := closer.Close(); err == nil {
			err = cerr
		}
	}()

	if err := selfCheck(); err != nil {
		logger.Errorw("self check failed", "error", err)
		return err
	}

	filter, err := cfg.FilterRegexp()
	if err != nil {
		return err
	}
	cases := survey.Filter(survey.Catalog(), filter)
	if len(cases) == 0 {
		return errors.Errorf("no case matches %q", cfg.Filter)
	}

	surveyLogger := logger.Sublogger("survey")
	logger.Debugw("logger levels", "levels", logging.Levels())
	logger.Infow("survey started", "cases", len(cases), "samples", cfg.Samples, "seed", cfg.Seed,
		"workers", cfg.WorkerCount())
	results, err := survey.Run(c.Context, cases, survey.Options{
		Samples: cfg.Samples,
		Seed:    cfg.Seed,
		Workers: cfg.WorkerCount(),
		Logger:  surveyLogger,
	})
	if err != nil {
		return err
	}
	if cfg.PlotDir != "" {
		if err := os.MkdirAll(cfg.PlotDir, 0o750); err != nil {
			return errors.Wrap(err, "cannot create plot directory")
		}
		if err := survey.SavePlots(results, cfg.Bins, cfg.PlotDir); err != nil {
			return err
		}
		logger.Infow("plots written", "dir", cfg.PlotDir, "count", len(results))
	}

	fmt.Fprintln(c.App.Writer, resultTable(results))
	failed := survey.Failed(results)
	for _, r := range results {
		if r.Passed() && !c.Bool(runFlagHistograms) {
			continue
		}
		if err := writeDetails(c.App.Writer, r, cfg.Bins); err != nil {
			return err
		}
	}
	if len(failed) > 0 {
		return errors.Errorf("%d of %d cases exceeded their error budget", len(failed), len(results))
	}
	fmt.Fprintln(c.App.Writer, pterm.Success.Sprintf("All %d cases within budget", len(results)))
	return nil
}

var (
	statusOK   = color.New(color.FgGreen)
	statusFail = color.New(color.FgRed, color.Bold)
)

func resultTable(results []survey.Result) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Case", "Samples", "Mean", "StdDev", "Max", "Budget", "Status"})
	for i, r := range results {
		status := statusOK.Sprint("ok")
		if !r.Passed() {
			status = statusFail.Sprint("FAIL")
		}
		t.AppendRow([]interface{}{
			fmt.Sprintf("%d", i+1),
			r.Case.Name(),
			fmt.Sprintf("%d", r.Samples),
			fmt.Sprintf("%.2e", r.Mean),
			fmt.Sprintf("%.2e", r.StdDev),
			fmt.Sprintf("%.2e", r.Max),
			fmt.Sprintf("%.1e", r.Case.Budget),
			status,
		})
	}
	return t.Render()
}

func writeDetails(w io.Writer, r survey.Result, bins int) error {
	fmt.Fprintf(w, "\n%s: worst error %.3e\n  input:  %+v\n  output: %+v\n",
		r.Case.Name(), r.Worst.Error, r.Worst.Input, r.Worst.Output)
	if bins <= 0 {
		return nil
	}
	return survey.WriteHistogram(w, r, bins, histogramWidth)
}

func selfCheck() error {
	if err := spatialmath.SelfCheck(); err != nil {
		return errors.Wrap(err, "single-precision constants")
	}
	if err := reference.SelfCheck(); err != nil {
		return errors.Wrap(err, "reference")
	}
	return nil
}

// SelfCheckAction verifies the constants of both implementations.
func SelfCheckAction(c *cli.Context) error {
	if err := selfCheck(); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, pterm.Success.Sprint("Constants verified"))
	return nil
}
