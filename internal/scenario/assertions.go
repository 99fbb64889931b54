package scenario

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/allen/internal/allen"
)

// AssertionError is returned when a scenario assertion fails.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string

	// Outcomes lists every case outcome for context.
	Outcomes []string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "  outcomes: %s", strings.Join(e.Outcomes, ", "))
	return buf.String()
}

// relationName normalizes a relation as written in a scenario file.
// Assertions are validated on load, so parse failures leave the name as is.
func relationName(s string) string {
	r, err := allen.ParseRelation(s)
	if err != nil {
		return s
	}
	return r.String()
}

func assertContains(outcomes []string, a Assertion) error {
	want := relationName(a.Relation)
	if slices.Contains(outcomes, want) {
		return nil
	}
	return &AssertionError{
		Type:     AssertContains,
		Expected: fmt.Sprintf("some case classified as %s", want),
		Actual:   "no such case",
		Outcomes: outcomes,
	}
}

func assertCount(outcomes []string, a Assertion) error {
	want := relationName(a.Relation)
	n := 0
	for _, o := range outcomes {
		if o == want {
			n++
		}
	}
	if n == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertCount,
		Expected: fmt.Sprintf("%s exactly %d time(s)", want, a.Count),
		Actual:   fmt.Sprintf("%d time(s)", n),
		Outcomes: outcomes,
	}
}

// assertOrder checks that the first occurrences of the relations appear in
// the listed order. Other outcomes may appear in between.
func assertOrder(outcomes []string, a Assertion) error {
	prev, prevPos := "", -1
	for _, rel := range a.Relations {
		want := relationName(rel)
		pos := slices.Index(outcomes, want)
		if pos < 0 {
			return &AssertionError{
				Type:     AssertOrder,
				Expected: fmt.Sprintf("all relations present: %v", a.Relations),
				Actual:   fmt.Sprintf("missing relation: %s", want),
				Outcomes: outcomes,
			}
		}
		if pos <= prevPos {
			return &AssertionError{
				Type:     AssertOrder,
				Expected: fmt.Sprintf("relations in order: %v", a.Relations),
				Actual:   fmt.Sprintf("%s (case %d) should come before %s (case %d)", prev, prevPos, want, pos),
				Outcomes: outcomes,
			}
		}
		prev, prevPos = want, pos
	}
	return nil
}

// assertCovers checks that every listed relation, or all thirteen when the
// list is empty, is the outcome of some case.
func assertCovers(outcomes []string, a Assertion) error {
	var want []string
	if len(a.Relations) == 0 {
		for _, r := range allen.All() {
			want = append(want, r.String())
		}
	} else {
		for _, r := range a.Relations {
			want = append(want, relationName(r))
		}
	}

	var missing []string
	for _, w := range want {
		if !slices.Contains(outcomes, w) {
			missing = append(missing, w)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertCovers,
		Expected: fmt.Sprintf("outcomes covering %d relation(s)", len(want)),
		Actual:   fmt.Sprintf("missing: %s", strings.Join(missing, ", ")),
		Outcomes: outcomes,
	}
}

// EvaluateAssertions evaluates all assertions against the result and
// returns one message per failure.
func EvaluateAssertions(result *Result, assertions []Assertion) []string {
	outcomes := result.Outcomes()

	var errs []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertContains:
			err = assertContains(outcomes, a)
		case AssertCount:
			err = assertCount(outcomes, a)
		case AssertOrder:
			err = assertOrder(outcomes, a)
		case AssertCovers:
			err = assertCovers(outcomes, a)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, a.Type)
		}
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}
