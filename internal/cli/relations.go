package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/allen/internal/allen"
)

// RelationInfo describes one relation in the relations listing.
type RelationInfo struct {
	Relation allen.Relation `json:"relation"`
	Family   string         `json:"family"`
	Inverted bool           `json:"inverted"`
	Converse allen.Relation `json:"converse"`
}

// RelationsResult lists all thirteen relations in sort order.
type RelationsResult struct {
	Relations []RelationInfo `json:"relations"`
}

func (r RelationsResult) String() string {
	var b strings.Builder
	for i, info := range r.Relations {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-16s  family=%-8s  converse=%s", info.Relation, info.Family, info.Converse)
	}
	return b.String()
}

// NewRelationsCommand creates the relations command.
func NewRelationsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "relations",
		Short: "List the thirteen relations",
		Long: `List Allen's thirteen relations in sort order, with the family each
belongs to and its converse.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Success(listRelations())
		},
	}

	return cmd
}

func listRelations() RelationsResult {
	all := allen.All()
	result := RelationsResult{Relations: make([]RelationInfo, len(all))}
	for i, r := range all {
		result.Relations[i] = RelationInfo{
			Relation: r,
			Family:   r.Family().String(),
			Inverted: r.IsInverted(),
			Converse: r.Converse(),
		}
	}
	return result
}
