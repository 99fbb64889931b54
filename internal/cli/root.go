package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/allen/internal/scenario"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// IDs supplies the trace_id of JSON responses and the run ID of
	// scenario runs. Tests replace it with a fixed generator.
	IDs scenario.RunIDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the allen CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{IDs: scenario.UUIDv7Generator{}})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allen",
		Short: "Classify intervals with Allen's interval algebra",
		Long: `Classify pairs of intervals into one of Allen's thirteen relations.

Ranges are written start..end (discrete, half-open) or start..=end
(continuous, closed). Either end may be omitted to leave it unbounded.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewConverseCommand(opts))
	cmd.AddCommand(NewRelationsCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// formatter builds the OutputFormatter for a command invocation.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // keeps JSON on stdout clean
		Verbose:   o.Verbose,
		IDs:       o.IDs,
	}
}

// logger returns a debug-level text logger on w when verbose is set, and a
// discarding logger otherwise.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	if !o.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// runIDs returns the configured generator, defaulting to UUIDv7.
func (o *RootOptions) runIDs() scenario.RunIDGenerator {
	if o.IDs == nil {
		return scenario.UUIDv7Generator{}
	}
	return o.IDs
}
