package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/allen/internal/allen"
)

// ConverseResult is the data payload of the converse command.
type ConverseResult struct {
	Relation allen.Relation `json:"relation"`
	Converse allen.Relation `json:"converse"`
}

func (r ConverseResult) String() string {
	return r.Converse.String()
}

// NewConverseCommand creates the converse command.
func NewConverseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "converse <relation>",
		Short: "Print the converse of a relation",
		Long: `Print the converse of a relation: the relation of t to s when s
relates to t by the given one.

Relation names are matched ignoring case, hyphens and underscores, so
is-met-by, is_met_by and IsMetBy are the same relation.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := rootOpts.formatter(cmd)

			r, err := allen.ParseRelation(args[0])
			if err != nil {
				_ = formatter.Error(ErrCodeUnknownRelation, err.Error(), map[string][]allen.Relation{"valid": allen.All()})
				return NewExitError(ExitCommandError, fmt.Sprintf("%s: %v", ErrCodeUnknownRelation, err))
			}

			return formatter.Success(ConverseResult{Relation: r, Converse: r.Converse()})
		},
	}

	return cmd
}
