package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lovantir/qwedge/mobius"
	"github.com/lovantir/qwedge/stabstate"
)

// Runner evaluates scenarios against one shared immutable state.
type Runner struct {
	st   *stabstate.State
	log  zerolog.Logger
	opts Options
}

// NewRunner builds a Runner. The state is shared read-only across all
// evaluations; the logger may be zerolog.Nop() for silent operation.
func NewRunner(st *stabstate.State, log zerolog.Logger, opts Options) (*Runner, error) {
	if st == nil {
		return nil, ErrNilState
	}

	return &Runner{st: st, log: log, opts: opts}, nil
}

// Run evaluates a single scenario: total mutual information, the full
// Möbius decomposition, and the running synergy-ratio sequence.
func (r *Runner) Run(ctx context.Context, sc Scenario) (*Result, error) {
	r.log.Debug().Str("label", sc.Label).Int("marked", sc.Marked).
		Ints("fragments", sc.Fragments).Msg("evaluating scenario")

	d, err := mobius.Decompose(ctx, r.st, sc.Marked, sc.Fragments, mobius.Options{
		Tolerance: r.opts.Tolerance,
		Workers:   r.opts.Workers,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Label:             sc.Label,
		BulkTarget:        sc.Marked,
		FragmentSet:       d.Fragments,
		MutualInformation: d.MutualInformation,
		FValues:           d.FValues,
		FK:                d.FK,
		SynergyRatio:      d.SynergyRatios(r.opts.Tolerance),
		TotalInformation:  d.Total,
	}
	r.log.Info().Str("label", sc.Label).Float64("total_information", d.Total).
		Msg("scenario complete")

	return res, nil
}

// RunAll evaluates every scenario, at most Options.Parallel at a time.
//
// A scenario-local defect (malformed fragment set) is recorded in
// Report.Failures and does not disturb its siblings. A representation
// defect (entropy inconsistency, decomposition sum mismatch) or a context
// cancellation aborts the whole run and is returned as the error.
// Successful results appear in input order.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario) (*Report, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	seen := make(map[string]bool, len(scenarios))
	for _, sc := range scenarios {
		if seen[sc.Label] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, sc.Label)
		}
		seen[sc.Label] = true
	}

	parallel := r.opts.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	results := make([]*Result, len(scenarios))
	failures := make([]*Failure, len(scenarios))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(parallel)
	for i, sc := range scenarios {
		i, sc := i, sc
		grp.Go(func() error {
			res, err := r.Run(gctx, sc)
			switch {
			case err == nil:
				results[i] = res
			case scenarioLocal(err):
				r.log.Warn().Str("label", sc.Label).Err(err).Msg("scenario skipped")
				failures[i] = &Failure{Label: sc.Label, Err: err, Cause: err.Error()}
			default:
				// Representation defect or cancellation: fail the run.
				return err
			}

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	for i := range scenarios {
		if results[i] != nil {
			report.Results = append(report.Results, results[i])
		}
		if failures[i] != nil {
			report.Failures = append(report.Failures, *failures[i])
		}
	}

	return report, nil
}

// scenarioLocal reports whether err invalidates only the scenario that
// produced it, as opposed to the shared representation.
func scenarioLocal(err error) bool {
	return errors.Is(err, stabstate.ErrOverlap) ||
		errors.Is(err, stabstate.ErrElementOutOfRange) ||
		errors.Is(err, mobius.ErrEmptyFragments) ||
		errors.Is(err, mobius.ErrFragmentSetTooLarge)
}
