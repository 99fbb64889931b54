package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/allen/internal/allen"
	"github.com/roach88/allen/internal/ranges"
)

// ClassifyOptions holds flags for the classify command.
type ClassifyOptions struct {
	*RootOptions
	Domain   allen.DomainKind
	Type     ranges.ValueType
	Strategy allen.Strategy
}

// ClassifyResult is the data payload of a successful classification.
type ClassifyResult struct {
	S        string                `json:"s"`
	T        string                `json:"t"`
	Relation allen.Relation        `json:"relation"`
	Converse allen.Relation        `json:"converse"`
	Atomics  allen.AtomicRelations `json:"atomics"`
}

func (r ClassifyResult) String() string {
	return r.Relation.String()
}

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClassifyOptions{
		RootOptions: rootOpts,
		Domain:      allen.KindDiscrete,
		Type:        ranges.TypeInt,
		Strategy:    allen.Lazy,
	}

	cmd := &cobra.Command{
		Use:   "classify <s> <t>",
		Short: "Classify the relation of interval s to interval t",
		Long: `Classify the relation of interval s to interval t.

Discrete ranges are half-open (2..5), continuous ranges are closed (2..=5).
Leave out either end for an unbounded range (..5, 2.., ..).
Separate negative values from flags with --.

Exit codes:
  0 - Relation classified
  1 - An interval is empty or its endpoints have no definite order
  2 - Command error (unparseable range, etc.)

Examples:
  allen classify 2..5 5..8
  allen classify --domain continuous --type float 0..=1.5 1.5..
  allen classify --type time 2024-01-01T09:00:00Z..2024-01-01T10:00:00Z 2024-01-01T09:30:00Z..
  allen classify --format json -- -3..0 ..0`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(opts, args[0], args[1], cmd)
		},
	}

	addRangeFlags(cmd.Flags(), &opts.Domain, &opts.Type)
	cmd.Flags().Var(strategyValue{&opts.Strategy}, "strategy", "atomic evaluation strategy (lazy|eager)")

	return cmd
}

func runClassify(opts *ClassifyOptions, s, t string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	formatter.VerboseLog("Classifying %s vs %s (%s %s, %s)", s, t, opts.Domain, opts.Type, opts.Strategy)

	out, err := ranges.Classify(ranges.Request{
		S:        s,
		T:        t,
		Domain:   opts.Domain,
		Type:     opts.Type,
		Strategy: opts.Strategy,
	})
	if err != nil {
		return outputClassifyError(formatter, err)
	}

	a := out.Atomics
	formatter.VerboseLog("Atomics: bb=%s be=%s eb=%s ee=%s", a.BB, a.BE, a.EB, a.EE)

	return formatter.Success(ClassifyResult{
		S:        s,
		T:        t,
		Relation: out.Relation,
		Converse: out.Relation.Converse(),
		Atomics:  out.Atomics,
	})
}

// outputClassifyError reports err and maps it to an exit code: interval
// errors are classification failures, everything else is a command error.
func outputClassifyError(formatter *OutputFormatter, err error) error {
	var ie *allen.IntervalError
	if errors.As(err, &ie) {
		var details any
		if ie.Operand != "" {
			details = map[string]string{"operand": ie.Operand}
		}
		_ = formatter.Error(string(ie.Code), ie.Message, details)
		return WrapExitError(ExitFailure, "classification failed", err)
	}

	code := ErrCodeGeneric
	var se *ranges.SyntaxError
	if errors.As(err, &se) {
		code = ErrCodeInvalidRange
	}
	_ = formatter.Error(code, err.Error(), nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %v", code, err))
}
