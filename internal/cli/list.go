package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/patternlab/internal/catalog"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Category string
	Name     string
}

// ListedEntry is one row of list output.
type ListedEntry struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Variant  string `json:"variant"`
	Title    string `json:"title,omitempty"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered demonstrations",
		Long: `List the registered demonstrations in deterministic order
(category, then name, then variant).

Examples:
  patternlab list
  patternlab list --category behavioral
  patternlab list --name observer --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "filter by category")
	cmd.Flags().StringVar(&opts.Name, "name", "", "filter by pattern name")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	if opts.Category != "" && !catalog.Category(opts.Category).Valid() {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown category %q", opts.Category))
	}

	cat, err := builtinCatalog()
	if err != nil {
		return err
	}

	filter := catalog.Filter{
		Category: catalog.Category(opts.Category),
		Name:     opts.Name,
	}

	entries := make([]ListedEntry, 0, cat.Len())
	for _, key := range cat.List(filter) {
		entry, err := cat.Resolve(key)
		if err != nil {
			// List and Resolve read the same sealed catalog; a miss here
			// is impossible short of a catalog bug.
			return WrapExitError(ExitCommandError, "catalog inconsistency", err)
		}
		entries = append(entries, ListedEntry{
			Category: string(key.Category),
			Name:     key.Name,
			Variant:  string(key.Variant),
			Title:    entry.Title,
		})
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), CLIResponse{Status: "ok", Data: entries})
	}

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(w, "No demonstrations match.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s/%s/%s", e.Category, e.Name, e.Variant)
		if e.Title != "" {
			fmt.Fprintf(w, "  %s", e.Title)
		}
		fmt.Fprintln(w)
	}
	return nil
}
