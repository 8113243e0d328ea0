package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/patternlab/internal/catalog"
	"github.com/roach88/patternlab/internal/harness"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Timeout time.Duration
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <category> <name> <variant>",
		Short: "Run one demonstration",
		Long: `Run a single demonstration selected by category, pattern name, and variant.

The captured output lines are printed in order. A failed run (unknown
selection, or a demonstration that faults) prints the error and any
partial output.

Exit codes:
  0 - Demonstration completed
  1 - Demonstration failed or was not found
  2 - Command error (malformed selection)

Examples:
  patternlab run behavioral observer improved
  patternlab run creational singleton base --format json
  patternlab run casestudy checkout improved --timeout 5s`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOne(opts, args[0], args[1], args[2], cmd)
		},
	}

	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "wall-clock bound per run (0 disables)")

	return cmd
}

func runOne(opts *RunOptions, category, name, variant string, cmd *cobra.Command) error {
	key, err := catalog.NewKey(category, name, variant)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid selection", err)
	}

	cat, err := builtinCatalog()
	if err != nil {
		return err
	}

	h := harness.New(cat, harnessOptions(opts.RootOptions, opts.Timeout)...)
	res := h.Run(cmd.Context(), key)

	if opts.Format == "json" {
		return outputRunJSON(cmd, res)
	}
	return outputRunText(cmd, res)
}

// harnessOptions translates CLI flags into harness options.
func harnessOptions(rootOpts *RootOptions, timeout time.Duration) []harness.Option {
	var hopts []harness.Option
	if timeout > 0 {
		hopts = append(hopts, harness.WithTimeout(timeout))
	}
	if rootOpts.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		hopts = append(hopts, harness.WithLogger(slog.New(handler)))
	}
	return hopts
}

func outputRunJSON(cmd *cobra.Command, res harness.RunResult) error {
	resp := CLIResponse{Status: "ok", Data: res}
	if !res.OK() {
		resp.Status = "error"
		resp.Error = &CLIError{
			Code:    "E_RUN_FAILED",
			Message: res.Error,
		}
	}
	if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
		return err
	}
	if !res.OK() {
		return NewExitError(ExitFailure, res.Error)
	}
	return nil
}

func outputRunText(cmd *cobra.Command, res harness.RunResult) error {
	w := cmd.OutOrStdout()

	for _, line := range res.Output {
		fmt.Fprintln(w, line)
	}

	if !res.OK() {
		fmt.Fprintf(w, "✗ %s: %s\n", res.Key, res.Error)
		return NewExitError(ExitFailure, res.Error)
	}
	return nil
}
