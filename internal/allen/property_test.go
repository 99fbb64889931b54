package allen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid enumerates every interval with endpoints in [0, 4], plus unbounded
// sides, that is non-empty in domain D.
func grid[D Domain]() []Interval[int, D] {
	starts := []Bound[int]{Unbounded[int]()}
	ends := []Bound[int]{}
	for v := 0; v <= 4; v++ {
		starts = append(starts, Bounded(v))
		ends = append(ends, Bounded(v))
	}
	ends = append(ends, Unbounded[int]())

	var out []Interval[int, D]
	for _, s := range starts {
		for _, e := range ends {
			iv := New[int, D](s, e)
			if _, err := Validate(iv); err == nil {
				out = append(out, iv)
			}
		}
	}
	return out
}

// tableConditions are the thirteen rules of the decision table without
// their priority, in table order.
var tableConditions = []struct {
	r    Relation
	cond func(a AtomicRelations) bool
}{
	{Precedes, func(a AtomicRelations) bool { return a.EB == Less }},
	{IsPrecededBy, func(a AtomicRelations) bool { return a.BE == Greater }},
	{Meets, func(a AtomicRelations) bool { return a.EB == Equal }},
	{IsMetBy, func(a AtomicRelations) bool { return a.BE == Equal }},
	{Finishes, func(a AtomicRelations) bool { return a.EE == Equal && a.BB == Greater }},
	{IsFinishedBy, func(a AtomicRelations) bool { return a.EE == Equal && a.BB == Less }},
	{Starts, func(a AtomicRelations) bool { return a.BB == Equal && a.EE == Less }},
	{IsStartedBy, func(a AtomicRelations) bool { return a.BB == Equal && a.EE == Greater }},
	{Contains, func(a AtomicRelations) bool { return a.BB == Less && a.EE == Greater }},
	{IsContainedBy, func(a AtomicRelations) bool { return a.BB == Greater && a.EE == Less }},
	{Equals, func(a AtomicRelations) bool { return a.BB == Equal && a.EE == Equal }},
	{Overlaps, func(a AtomicRelations) bool { return a.BB == Less && a.EB == Greater && a.EE == Less }},
	{IsOverlappedBy, func(a AtomicRelations) bool { return a.BB == Greater && a.BE == Less && a.EE == Greater }},
}

func TestProperties_Discrete(t *testing.T) {
	ivs := grid[Discrete]()
	require.Len(t, ivs, 21)

	seen := map[Relation]bool{}
	for _, si := range ivs {
		for _, ti := range ivs {
			s, u := MustValidate(si), MustValidate(ti)
			a := Atomics(s, u)
			r := Classify(s, u)
			seen[r] = true

			// Exactly one condition holds, and it names the result.
			var matched []Relation
			for _, c := range tableConditions {
				if c.cond(a) {
					matched = append(matched, c.r)
				}
			}
			require.Equal(t, []Relation{r}, matched, "s=%s t=%s %s", si, ti, a)

			// Lazy and eager evaluation agree.
			eager, err := ClassifyWith(Eager, s, u, PartialCompare[int])
			require.NoError(t, err)
			require.Equal(t, r, eager, "s=%s t=%s", si, ti)
			require.Equal(t, r, a.Relation())

			// Swapping the operands yields the converse.
			require.Equal(t, r.Converse(), Classify(u, s), "s=%s t=%s", si, ti)
			require.Equal(t, a.Converse(), Atomics(u, s))
		}
	}

	assert.Len(t, seen, 13, "every relation is reachable")
}

func TestProperties_Continuous(t *testing.T) {
	// Points are empty, so the closed grid has the same shape as the
	// half-open one.
	ivs := grid[Continuous]()
	require.Len(t, ivs, 21)

	seen := map[Relation]bool{}
	for _, si := range ivs {
		for _, ti := range ivs {
			s, u := MustValidate(si), MustValidate(ti)

			lazy, err := ClassifyWith(Lazy, s, u, PartialCompare[int])
			require.NoError(t, err)
			eager, err := ClassifyWith(Eager, s, u, PartialCompare[int])
			require.NoError(t, err)
			require.Equal(t, lazy, eager, "s=%s t=%s", si, ti)
			seen[lazy] = true

			require.Equal(t, lazy.Converse(), Classify(u, s), "s=%s t=%s", si, ti)

			a := Atomics(s, u)
			var matched []Relation
			for _, c := range tableConditions {
				if c.cond(a) {
					matched = append(matched, c.r)
				}
			}
			require.Equal(t, []Relation{lazy}, matched, "s=%s t=%s %s", si, ti, a)
		}
	}

	assert.Len(t, seen, 13, "every relation is reachable")
}

func TestProperties_ContinuousFloatMatchesInt(t *testing.T) {
	for _, si := range grid[Continuous]() {
		for _, ti := range grid[Continuous]() {
			want, err := Relate(si, ti)
			require.NoError(t, err)

			got, err := Relate(toFloat(si), toFloat(ti))
			require.NoError(t, err)
			require.Equal(t, want, got, "s=%s t=%s", si, ti)
		}
	}
}

func toFloat(iv Interval[int, Continuous]) Interval[float64, Continuous] {
	conv := func(b Bound[int]) Bound[float64] {
		if v, ok := b.Value(); ok {
			return Bounded(float64(v))
		}
		return Unbounded[float64]()
	}
	return New[float64, Continuous](conv(iv.Start()), conv(iv.End()))
}
