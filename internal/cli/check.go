package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/patternlab/internal/harness"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Timeout time.Duration
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <suite.yaml>",
		Short: "Run a suite of demonstrations with expectations",
		Long: `Run every selection in a YAML suite file and evaluate its expectations.

Suites are collect-and-report: every selection is attempted and every
expectation mismatch recorded, then the summary decides the exit code.

Exit codes:
  0 - All suite entries passed
  1 - One or more entries failed their expectations
  2 - Command error (unreadable or malformed suite file)

Examples:
  patternlab check suites/smoke.yaml
  patternlab check suites/smoke.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "wall-clock bound per run (0 disables)")

	return cmd
}

func runCheck(opts *CheckOptions, suitePath string, cmd *cobra.Command) error {
	if _, err := os.Stat(suitePath); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("suite file not found: %s", suitePath))
	}

	suite, err := harness.LoadSuite(suitePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load suite", err)
	}

	cat, err := builtinCatalog()
	if err != nil {
		return err
	}

	h := harness.New(cat, harnessOptions(opts.RootOptions, opts.Timeout)...)
	result := h.RunSuite(cmd.Context(), suite)

	if opts.Format == "json" {
		return outputCheckJSON(cmd, result)
	}
	return outputCheckText(cmd, result)
}

func outputCheckJSON(cmd *cobra.Command, result *harness.SuiteResult) error {
	resp := CLIResponse{Status: "ok", Data: result}
	if !result.OK() {
		resp.Status = "error"
		resp.Error = &CLIError{
			Code:    "E_SUITE_FAILED",
			Message: fmt.Sprintf("%d suite run(s) failed", result.Failed),
		}
	}
	if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
		return err
	}
	if !result.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d suite run(s) failed", result.Failed))
	}
	return nil
}

func outputCheckText(cmd *cobra.Command, result *harness.SuiteResult) error {
	w := cmd.OutOrStdout()

	for _, run := range result.Runs {
		if run.Pass {
			fmt.Fprintf(w, "✓ %s\n", run.Key)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", run.Key)
		for _, e := range run.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Suite %q: %d passed, %d failed, %d total\n",
		result.Suite, result.Passed, result.Failed, result.Total)

	if !result.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d suite run(s) failed", result.Failed))
	}
	fmt.Fprintln(w, "✓ All suite runs passed")
	return nil
}
