// Package cli implements the patternlab command-line interface.
//
// The CLI is a thin wrapper over the catalog and harness: it selects
// demonstrations by (category, name, variant) tokens, maps run outcomes to
// process exit codes (0 ok, 1 failed, 2 command error), and renders
// results as text or JSON.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/patternlab/internal/catalog"
	"github.com/roach88/patternlab/internal/patterns"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the patternlab CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "patternlab",
		Short: "patternlab - design pattern demonstrations",
		Long: `Run Gang-of-Four design pattern demonstrations through a uniform harness.

Every pattern ships in two variants: "base" shows the naive form of a
problem, "improved" applies the pattern properly. Both emit deterministic
output lines, so the transcripts can be compared side by side.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// builtinCatalog loads the bundled demonstration catalog.
// A failure here is a content bug, so it maps to a command error.
func builtinCatalog() (*catalog.Catalog, error) {
	cat, err := patterns.Builtin()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to build demonstration catalog", err)
	}
	return cat, nil
}
