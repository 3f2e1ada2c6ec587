package survey

import (
	"context"
	"hash/fnv"
	"runtime"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/chubrik/rotation3d/logging"
	"github.com/chubrik/rotation3d/spatialmath/sampling"
)

// batchSize is how many samples run between cancellation checks.
const batchSize = 4096

// Options controls a survey run.
type Options struct {
	// Samples per case.
	Samples int
	// Seed is combined with each case name, so a case sees the same inputs whichever
	// other cases run with it.
	Seed int64
	// Workers bounds concurrent cases; 0 means one per CPU.
	Workers int
	Logger  logging.Logger
	// Clock times each case; nil means the wall clock.
	Clock clock.Clock
}

// Result summarizes the errors of one case.
type Result struct {
	Case    Case
	Samples int
	Mean    float64
	Max     float64
	StdDev  float64
	// Worst is the trial with the largest error.
	Worst    Trial
	Errors   []float64
	Duration time.Duration
}

// Passed reports whether the largest error is within the case budget.
func (r Result) Passed() bool {
	return r.Max <= r.Case.Budget
}

// Failed returns the results that exceed their budget.
func Failed(results []Result) []Result {
	return lo.Reject(results, func(r Result, _ int) bool {
		return r.Passed()
	})
}

// CaseSeed returns the sampler seed a case runs with.
func CaseSeed(seed int64, c Case) int64 {
	h := fnv.New64a()
	//nolint:errcheck
	h.Write([]byte(c.Name()))
	//nolint:gosec
	return seed ^ int64(h.Sum64())
}

// Run measures every case concurrently. Results are in the order of cases.
func Run(ctx context.Context, cases []Case, opts Options) ([]Result, error) {
	if opts.Samples <= 0 {
		return nil, errors.Errorf("samples must be positive, got %d", opts.Samples)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewBlankLogger("")
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}

	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range cases {
		i, c := i, c
		g.Go(func() error {
			r, err := runCase(ctx, c, opts.Samples, CaseSeed(opts.Seed, c), clk, logger.With("case", c.Name()))
			if err != nil {
				return errors.Wrapf(err, "case %s", c.Name())
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runCase(ctx context.Context, c Case, samples int, seed int64, clk clock.Clock, logger logging.Logger) (Result, error) {
	logger.Debugw("case started", "samples", samples, "seed", seed)
	start := clk.Now()

	sampler := sampling.NewSampler(seed)
	errs := make([]float64, samples)
	var worst Trial
	for i := 0; i < samples; i++ {
		if i%batchSize == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		trial := c.Measure(sampler)
		errs[i] = trial.Error
		if i == 0 || trial.Error > worst.Error {
			worst = trial
		}
	}

	r, err := summarize(c, errs)
	if err != nil {
		return Result{}, err
	}
	r.Worst = worst
	r.Duration = clk.Since(start)

	if r.Passed() {
		logger.Infow("case finished", "mean", r.Mean, "max", r.Max, "budget", c.Budget, "duration", r.Duration)
	} else {
		logger.Warnw("error budget exceeded", "max", r.Max, "budget", c.Budget,
			"input", worst.Input, "output", worst.Output)
	}
	return r, nil
}

func summarize(c Case, errs []float64) (Result, error) {
	data := stats.Float64Data(errs)
	mean, err := stats.Mean(data)
	if err != nil {
		return Result{}, err
	}
	max, err := stats.Max(data)
	if err != nil {
		return Result{}, err
	}
	sd, err := stats.StandardDeviation(data)
	if err != nil {
		return Result{}, err
	}
	return Result{Case: c, Samples: len(errs), Mean: mean, Max: max, StdDev: sd, Errors: errs}, nil
}
