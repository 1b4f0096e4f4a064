package scenario

import (
	"errors"

	"github.com/lovantir/qwedge/mobius"
)

// Sentinel errors for scenario orchestration.
var (
	// ErrNilState indicates a Runner constructed without a state.
	ErrNilState = errors.New("scenario: state must not be nil")
	// ErrNoScenarios indicates RunAll was called with an empty list.
	ErrNoScenarios = errors.New("scenario: scenario list must not be empty")
	// ErrDuplicateLabel indicates two scenarios sharing a label; labels key
	// the result and failure tables, so they must be unique.
	ErrDuplicateLabel = errors.New("scenario: duplicate scenario label")
)

// Scenario names one experiment: the marked (bulk) element and the
// candidate fragment set to probe it with.
type Scenario struct {
	Label     string `json:"label"     mapstructure:"label"`
	Marked    int    `json:"marked"    mapstructure:"marked"`
	Fragments []int  `json:"fragments" mapstructure:"fragments"`
}

// Result is the per-scenario outcome in the stable shape consumed by the
// external plotting/serialization collaborators.
type Result struct {
	Label             string                     `json:"label"`
	BulkTarget        int                        `json:"bulk_target"`
	FragmentSet       []int                      `json:"fragment_set"`
	MutualInformation []mobius.SubsetValue       `json:"mutual_information"`
	FValues           []mobius.SubsetValue       `json:"f_values"`
	FK                []mobius.OrderContribution `json:"fk"`
	SynergyRatio      []mobius.RatioPoint        `json:"synergy_ratio"`
	TotalInformation  float64                    `json:"total_information"`
}

// Failure records a scenario that could not be evaluated. Only
// scenario-local (malformed-subset) defects land here; representation
// defects abort the run instead.
type Failure struct {
	Label string `json:"label"`
	Err   error  `json:"-"`
	Cause string `json:"cause"`
}

// Report is the assembled outcome of a run: results in input order for
// every scenario that succeeded, failures for those that did not.
type Report struct {
	Results  []*Result `json:"experiments"`
	Failures []Failure `json:"failures,omitempty"`
}

// Options configures a Runner.
//
//   - Tolerance: zero-snap/denominator tolerance passed through to the
//     decomposition and synergy stages (≤ 0 means the package defaults).
//   - Parallel: maximum number of scenarios evaluated concurrently
//     (≤ 0 means serial).
//   - Workers: per-scenario mutual-information workers (≤ 0 means serial).
type Options struct {
	Tolerance float64
	Parallel  int
	Workers   int
}

// DefaultOptions returns production-safe defaults: package-default
// tolerance, serial evaluation.
func DefaultOptions() Options {
	return Options{Tolerance: mobius.DefaultTolerance, Parallel: 1, Workers: 1}
}
