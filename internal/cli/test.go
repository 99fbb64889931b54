package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/roach88/allen/internal/scenario"
)

// Golden states reported per scenario.
const (
	GoldenMatch   = "match"
	GoldenUpdated = "updated"
	GoldenMissing = "missing"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update  bool   // regenerate golden files
	Filter  string // scenario filter (glob pattern)
	Workers int    // scenarios run concurrently
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	RunID  string   `json:"run_id,omitempty"`
	Pass   bool     `json:"pass"`
	Golden string   `json:"golden,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run conformance scenarios",
		Long: `Run conformance scenarios against the classifier.

Every case is classified with both strategies and with its operands
swapped. When golden/<name>.golden exists next to a scenario file, the
result snapshot must match it byte for byte.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  allen test ./scenarios
  allen test ./scenarios --filter "discrete_*"
  allen test ./scenarios --update
  allen test ./scenarios --format json --workers 1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")
	cmd.Flags().IntVar(&opts.Workers, "workers", runtime.GOMAXPROCS(0), "number of scenarios run concurrently")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}
	if opts.Workers < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--workers must be at least 1, got %d", opts.Workers))
	}

	scenarioFiles, err := scenario.FindFiles(scenariosDir, opts.Filter)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find scenarios", err)
	}

	if len(scenarioFiles) == 0 {
		if opts.Format == "json" {
			return outputTestJSON(opts.formatter(cmd), TestResult{
				Scenarios: []ScenarioResult{},
				Total:     0,
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	runner := scenario.NewRunner(
		scenario.WithLogger(opts.logger(cmd.ErrOrStderr())),
		scenario.WithRunIDs(opts.runIDs()),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Each worker writes only its own slot, so output order follows file
	// order regardless of scheduling.
	results := make([]ScenarioResult, len(scenarioFiles))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, file := range scenarioFiles {
		i, file := i, file
		g.Go(func() error {
			res, err := runScenario(ctx, runner, file, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return WrapExitError(ExitCommandError, "test run aborted", err)
	}

	result := TestResult{
		Scenarios: results,
		Total:     len(results),
	}
	for _, r := range results {
		if r.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	if opts.Format == "json" {
		return outputTestJSON(opts.formatter(cmd), result)
	}
	return outputTestText(cmd, result)
}

// runScenario loads, runs and golden-checks one scenario file. Only
// cancellation is returned as an error; everything else fails the
// scenario.
func runScenario(ctx context.Context, runner *scenario.Runner, scenarioFile string, opts *TestOptions) (ScenarioResult, error) {
	s, err := scenario.Load(scenarioFile)
	if err != nil {
		return ScenarioResult{
			Name:   filepath.Base(scenarioFile),
			File:   scenarioFile,
			Errors: []string{fmt.Sprintf("failed to load scenario: %v", err)},
		}, nil
	}

	res := ScenarioResult{Name: s.Name, File: scenarioFile}

	result, err := runner.Run(ctx, s)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res, err
		}
		res.Errors = []string{fmt.Sprintf("execution failed: %v", err)}
		return res, nil
	}
	res.RunID = result.RunID
	res.Pass = result.Pass
	res.Errors = result.Errors

	data, err := scenario.Snapshot(result)
	if err != nil {
		res.Pass = false
		res.Errors = append(res.Errors, fmt.Sprintf("failed to snapshot result: %v", err))
		return res, nil
	}

	goldenPath := scenario.GoldenPath(scenarioFile)
	if opts.Update {
		if err := scenario.WriteGolden(goldenPath, data); err != nil {
			res.Pass = false
			res.Errors = append(res.Errors, fmt.Sprintf("failed to update golden file: %v", err))
			return res, nil
		}
		res.Golden = GoldenUpdated
		return res, nil
	}

	match, err := scenario.CompareGolden(goldenPath, data)
	switch {
	case errors.Is(err, scenario.ErrNoGolden):
		// No golden file - assertion-based validation only
		res.Golden = GoldenMissing
	case err != nil:
		res.Pass = false
		res.Errors = append(res.Errors, fmt.Sprintf("golden comparison failed: %v", err))
	case !match:
		res.Pass = false
		res.Errors = append(res.Errors, "snapshot does not match golden file (run with --update to regenerate)")
	default:
		res.Golden = GoldenMatch
	}
	return res, nil
}

// outputTestJSON outputs the test result as JSON.
func outputTestJSON(formatter *OutputFormatter, result TestResult) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}

	response := CLIResponse{
		Status: status,
		Data:   result,
	}

	if result.Failed > 0 {
		response.Error = &CLIError{
			Code:    ErrCodeTestFailed,
			Message: fmt.Sprintf("%d scenario(s) failed", result.Failed),
		}
	}

	if err := formatter.Respond(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}

// outputTestText outputs the test result as text.
func outputTestText(cmd *cobra.Command, result TestResult) error {
	w := cmd.OutOrStdout()

	for _, r := range result.Scenarios {
		switch {
		case r.Pass && r.Golden == GoldenUpdated:
			fmt.Fprintf(w, "✓ %s (golden updated)\n", r.Name)
		case r.Pass:
			fmt.Fprintf(w, "✓ %s\n", r.Name)
		default:
			fmt.Fprintf(w, "✗ %s\n", r.Name)
			for _, e := range r.Errors {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		// Test failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All scenarios passed")
	return nil
}
