package scenario

import (
	"fmt"
	"strings"

	"github.com/roach88/allen/internal/allen"
)

// Scenario is a named list of interval pairs with expected outcomes, all
// read in one domain and value type.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name" json:"name" validate:"required,scenarioname"`

	// Description explains what the scenario covers.
	Description string `yaml:"description" json:"description" validate:"required"`

	// Domain is "discrete" or "continuous".
	Domain string `yaml:"domain" json:"domain" validate:"required,oneof=discrete continuous"`

	// Type is the endpoint value type: "int", "float" or "time".
	Type string `yaml:"type" json:"type" validate:"required,oneof=int float time"`

	Cases []Case `yaml:"cases" json:"cases" validate:"required,min=1,dive"`

	// Assertions check properties of the whole set of outcomes.
	Assertions []Assertion `yaml:"assertions,omitempty" json:"assertions,omitempty" validate:"dive"`
}

// Case is one pair of ranges and what classifying them must produce.
type Case struct {
	// Name is optional and only used in reports.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	S string `yaml:"s" json:"s" validate:"required"`
	T string `yaml:"t" json:"t" validate:"required"`

	// Expect is a relation name, or one of the error outcomes
	// "empty_interval" and "ambiguous_order".
	Expect string `yaml:"expect" json:"expect" validate:"required,expectation"`
}

// Label returns the case name, or "s vs t" for unnamed cases.
func (c Case) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.S + " vs " + c.T
}

// Assertion validates the outcomes of a scenario as a whole.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type" json:"type" validate:"required,oneof=contains count order covers"`

	// Relation is used by contains and count.
	Relation string `yaml:"relation,omitempty" json:"relation,omitempty" validate:"omitempty,relation"`

	// Count is used by count.
	Count int `yaml:"count,omitempty" json:"count,omitempty" validate:"gte=0"`

	// Relations is used by order and covers. An empty list in a covers
	// assertion means all thirteen relations.
	Relations []string `yaml:"relations,omitempty" json:"relations,omitempty" validate:"dive,relation"`
}

// Assertion types.
const (
	AssertContains = "contains"
	AssertCount    = "count"
	AssertOrder    = "order"
	AssertCovers   = "covers"
)

// Outcome names for classification errors.
const (
	OutcomeEmptyInterval  = "empty_interval"
	OutcomeAmbiguousOrder = "ambiguous_order"
	OutcomeInvalidRange   = "invalid_range"
)

// outcomeOf names the result of a classification: the relation name on
// success, otherwise the error outcome.
func outcomeOf(r allen.Relation, err error) string {
	if err == nil {
		return r.String()
	}
	switch allen.CodeOf(err) {
	case allen.ErrCodeEmptyInterval:
		return OutcomeEmptyInterval
	case allen.ErrCodeAmbiguousOrder:
		return OutcomeAmbiguousOrder
	default:
		return OutcomeInvalidRange
	}
}

// normalizeExpect maps an expectation to the outcome name it matches.
func normalizeExpect(expect string) (string, error) {
	switch e := strings.ToLower(strings.TrimSpace(expect)); e {
	case OutcomeEmptyInterval, OutcomeAmbiguousOrder:
		return e, nil
	}
	r, err := allen.ParseRelation(expect)
	if err != nil {
		return "", fmt.Errorf("expect %q is neither a relation nor %s/%s", expect, OutcomeEmptyInterval, OutcomeAmbiguousOrder)
	}
	return r.String(), nil
}

// Result is the outcome of running a scenario.
type Result struct {
	// RunID identifies this execution. It is not part of golden snapshots.
	RunID string `json:"run_id"`

	Scenario string       `json:"scenario"`
	Pass     bool         `json:"pass"`
	Cases    []CaseResult `json:"cases"`

	// Errors holds failed assertions and case failures. Empty if Pass.
	Errors []string `json:"errors,omitempty"`
}

// CaseResult records how one case was classified.
type CaseResult struct {
	Index  int    `json:"index"`
	Name   string `json:"name,omitempty"`
	S      string `json:"s"`
	T      string `json:"t"`
	Expect string `json:"expect"`

	// Outcome is the lazy strategy's relation name or error outcome.
	Outcome string `json:"outcome"`

	// Swapped is the outcome with s and t exchanged. Only set when Outcome
	// is a relation.
	Swapped string `json:"swapped,omitempty"`

	Atomics *allen.AtomicRelations `json:"atomics,omitempty"`
	Pass    bool                   `json:"pass"`
	Errors  []string               `json:"errors,omitempty"`
}

// NewResult creates a passing result for the named scenario.
func NewResult(name, runID string) *Result {
	return &Result{
		RunID:    runID,
		Scenario: name,
		Pass:     true,
		Cases:    []CaseResult{},
		Errors:   []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// Outcomes returns the outcome of every case in order.
func (r *Result) Outcomes() []string {
	out := make([]string, len(r.Cases))
	for i, c := range r.Cases {
		out[i] = c.Outcome
	}
	return out
}
