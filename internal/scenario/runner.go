package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/allen/internal/allen"
	"github.com/roach88/allen/internal/ranges"
)

// Runner executes scenarios.
type Runner struct {
	logger *slog.Logger
	ids    RunIDGenerator
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithRunIDs sets the run ID source. The default issues UUIDv7s.
func WithRunIDs(g RunIDGenerator) Option {
	return func(r *Runner) { r.ids = g }
}

// NewRunner creates a runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ids:    UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run classifies every case of s and evaluates its assertions.
//
// A case passes when the lazy outcome matches its expectation, the eager
// strategy agrees, and swapping the operands yields the converse relation.
//
// Case failures are reported in the Result; the error return is reserved
// for problems with the scenario itself and for cancellation.
func (r *Runner) Run(ctx context.Context, s *Scenario) (*Result, error) {
	domain, err := allen.ParseDomainKind(s.Domain)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	typ, err := ranges.ParseValueType(s.Type)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	result := NewResult(s.Name, r.ids.Generate())
	log := r.logger.With("scenario", s.Name, "run_id", result.RunID)
	log.Debug("running scenario", "cases", len(s.Cases), "domain", domain, "type", typ)

	for i, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cr := r.runCase(i, c, domain, typ)
		if !cr.Pass {
			for _, e := range cr.Errors {
				result.AddError(fmt.Sprintf("case %d (%s): %s", i, c.Label(), e))
			}
			log.Debug("case failed", "case", i, "outcome", cr.Outcome, "expect", cr.Expect)
		}
		result.Cases = append(result.Cases, cr)
	}

	for _, msg := range EvaluateAssertions(result, s.Assertions) {
		result.AddError(msg)
	}

	log.Info("scenario finished", "pass", result.Pass, "errors", len(result.Errors))
	return result, nil
}

func (r *Runner) runCase(index int, c Case, domain allen.DomainKind, typ ranges.ValueType) CaseResult {
	cr := CaseResult{
		Index:  index,
		Name:   c.Name,
		S:      c.S,
		T:      c.T,
		Expect: c.Expect,
		Pass:   true,
	}
	fail := func(format string, args ...any) {
		cr.Errors = append(cr.Errors, fmt.Sprintf(format, args...))
		cr.Pass = false
	}

	req := ranges.Request{S: c.S, T: c.T, Domain: domain, Type: typ, Strategy: allen.Lazy}
	lazy, lazyErr := ranges.Classify(req)
	cr.Outcome = outcomeOf(lazy.Relation, lazyErr)

	req.Strategy = allen.Eager
	eager, eagerErr := ranges.Classify(req)
	if eagerOutcome := outcomeOf(eager.Relation, eagerErr); eagerOutcome != cr.Outcome {
		fail("strategies disagree: lazy=%s eager=%s", cr.Outcome, eagerOutcome)
	}

	if lazyErr == nil {
		atomics := lazy.Atomics
		cr.Atomics = &atomics

		swapped, swapErr := ranges.Classify(ranges.Request{S: c.T, T: c.S, Domain: domain, Type: typ})
		cr.Swapped = outcomeOf(swapped.Relation, swapErr)

		want := lazy.Relation.Converse()
		if swapErr != nil || swapped.Relation != want {
			fail("swapped operands gave %s, want %s", cr.Swapped, want)
		}
	} else if cr.Outcome == OutcomeInvalidRange {
		fail("%v", lazyErr)
	}

	expect, err := normalizeExpect(c.Expect)
	if err != nil {
		fail("%v", err)
	} else if cr.Outcome != expect {
		fail("got %s, want %s", cr.Outcome, expect)
	}

	return cr
}
