package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lovantir/qwedge/graphstate"
	"github.com/lovantir/qwedge/scenario"
	"github.com/lovantir/qwedge/stabstate"
	"github.com/lovantir/qwedge/store"
)

// Run command flag values.
var (
	flagOut      string
	flagDB       string
	flagParallel int
	flagWorkers  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the configured scenarios and write the result tables",
	Long: `run builds the 16-element graph state, evaluates every configured
scenario (defaulting to the standard recovery-wedge experiment set),
writes the JSON result document, and optionally archives the report into
a SQLite database.`,
	RunE: runExperiments,
}

func init() {
	runCmd.Flags().StringVarP(&flagOut, "out", "o", "", "result file (default from config, then "+defaultOutput+")")
	runCmd.Flags().StringVar(&flagDB, "db", "", "SQLite archive path (default from config; empty disables archiving)")
	runCmd.Flags().IntVar(&flagParallel, "parallel", 1, "scenarios evaluated concurrently")
	runCmd.Flags().IntVar(&flagWorkers, "workers", 1, "mutual-information workers per scenario")
}

// resultDocument is the on-disk shape: graph metadata plus one experiment
// entry per scenario, mirroring the structure the plotting tooling reads.
type resultDocument struct {
	Graph       graphMeta          `json:"graph"`
	Experiments []*scenario.Result `json:"experiments"`
	Failures    []scenario.Failure `json:"failures,omitempty"`
}

type graphMeta struct {
	BulkTarget    int   `json:"bulk_target"`
	BulkNodes     []int `json:"bulk_nodes"`
	BoundaryNodes []int `json:"boundary_nodes"`
}

func runExperiments(cmd *cobra.Command, args []string) error {
	top := graphstate.Main16()
	st, err := stabstate.New(top.Adjacency, stabstate.DefaultOptions())
	if err != nil {
		return fmt.Errorf("build state: %w", err)
	}

	scenarios, err := configuredScenarios(top)
	if err != nil {
		return err
	}

	opts := scenario.DefaultOptions()
	opts.Parallel = flagParallel
	opts.Workers = flagWorkers
	runner, err := scenario.NewRunner(st, log, opts)
	if err != nil {
		return err
	}

	report, err := runner.RunAll(cmd.Context(), scenarios)
	if err != nil {
		return fmt.Errorf("run scenarios: %w", err)
	}

	doc := resultDocument{
		Graph: graphMeta{
			BulkTarget:    top.BulkTarget,
			BulkNodes:     top.BulkNodes,
			BoundaryNodes: top.Boundary(),
		},
		Experiments: report.Results,
		Failures:    report.Failures,
	}
	out := flagOut
	if out == "" {
		out = viper.GetString(cfgKeyOutput)
	}
	if err = writeDocument(out, doc); err != nil {
		return err
	}
	log.Info().Str("path", out).Int("experiments", len(report.Results)).Msg("results written")

	if db := databasePath(); db != "" {
		if err = archive(cmd, db, report); err != nil {
			return err
		}
	}

	return nil
}

// configuredScenarios returns the scenario list from config, falling back
// to the standard experiment set of the topology.
func configuredScenarios(top graphstate.Topology) ([]scenario.Scenario, error) {
	if !viper.IsSet(cfgKeyScenarios) {
		return top.Scenarios(), nil
	}
	var scs []scenario.Scenario
	if err := viper.UnmarshalKey(cfgKeyScenarios, &scs); err != nil {
		return nil, fmt.Errorf("decode scenarios: %w", err)
	}

	return scs, nil
}

// databasePath resolves the archive path: flag first, then config.
func databasePath() string {
	if flagDB != "" {
		return flagDB
	}

	return viper.GetString(cfgKeyDB)
}

func writeDocument(path string, doc resultDocument) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	raw = append(raw, '\n')
	if err = os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	return nil
}

func archive(cmd *cobra.Command, path string, report *scenario.Report) error {
	s, err := store.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()

	runID, err := s.SaveReport(cmd.Context(), report)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Int64("run_id", runID).Msg("report archived")

	return nil
}
