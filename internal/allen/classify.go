package allen

import (
	"cmp"
	"fmt"
)

// Strategy selects how the atomic relations are evaluated.
type Strategy uint8

const (
	// Lazy evaluates comparators in decision-table order and skips those
	// the outcome no longer depends on. Under a partial order the skipped
	// comparators are still checked for a definite answer.
	Lazy Strategy = iota
	// Eager computes all four comparators, then applies the table.
	Eager
)

func (s Strategy) String() string {
	switch s {
	case Lazy:
		return "lazy"
	case Eager:
		return "eager"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses "lazy" or "eager".
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "lazy":
		return Lazy, nil
	case "eager":
		return Eager, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q: must be lazy or eager", s)
	}
}

// classifyLazy walks the decision table, computing each atomic ordering
// the first time a rule needs it.
func classifyLazy[T any, D Domain, O orderer[T]](o O, s, t *Interval[T, D]) (Relation, bool) {
	eb, ok := o.order(&ruleEB, &s.end, &t.start)
	if !ok {
		return 0, false
	}
	if eb == Less {
		return Precedes, true
	}
	be, ok := o.order(&ruleBE, &s.start, &t.end)
	if !ok {
		return 0, false
	}
	switch {
	case be == Greater:
		return IsPrecededBy, true
	case eb == Equal:
		return Meets, true
	case be == Equal:
		return IsMetBy, true
	}
	ee, ok := o.order(&ruleEE, &s.end, &t.end)
	if !ok {
		return 0, false
	}
	bb, ok := o.order(&ruleBB, &s.start, &t.start)
	if !ok {
		return 0, false
	}
	return AtomicRelations{BB: bb, BE: be, EB: eb, EE: ee}.Relation(), true
}

func classifyEager[T any, D Domain, O orderer[T]](o O, s, t *Interval[T, D]) (Relation, bool) {
	a, ok := atomics(o, s, t)
	if !ok {
		return 0, false
	}
	return a.Relation(), true
}

func classify[T any, D Domain, O orderer[T]](strategy Strategy, o O, s, t *Interval[T, D]) (Relation, bool) {
	if strategy == Eager {
		return classifyEager(o, s, t)
	}
	return classifyLazy(o, s, t)
}

// classifyPartial classifies under a partial order. A lazy walk can stop
// before it reaches the one comparison that has no answer, so the result
// only stands once all four orderings are definite.
func classifyPartial[T any, D Domain](strategy Strategy, compare PartialCompareFunc[T], s, t *Interval[T, D]) (Relation, error) {
	o := partialOrderer[T]{compare}
	r, ok := classify(strategy, o, s, t)
	if ok && strategy != Eager {
		_, ok = atomics(o, s, t)
	}
	if !ok {
		return 0, newAmbiguousOrderError("", "endpoints of s and t")
	}
	return r, nil
}

// Classify returns the relation between two validated intervals over a
// totally ordered type. It cannot fail.
func Classify[T Totally, D Domain](s, t NonEmpty[T, D]) Relation {
	return ClassifyFunc(s, t, cmp.Compare[T])
}

// ClassifyFunc is Classify with a caller-supplied total comparison, for
// types such as time.Time or *big.Int.
func ClassifyFunc[T any, D Domain](s, t NonEmpty[T, D], compare CompareFunc[T]) Relation {
	r, _ := classifyLazy(totalOrderer[T]{compare}, &s.iv, &t.iv)
	return r
}

// TryClassify returns the relation between two validated intervals over a
// possibly partial order, or ErrAmbiguousOrder.
func TryClassify[T cmp.Ordered, D Domain](s, t NonEmpty[T, D]) (Relation, error) {
	return TryClassifyFunc(s, t, PartialCompare[T])
}

// TryClassifyFunc is TryClassify with a caller-supplied comparison.
func TryClassifyFunc[T any, D Domain](s, t NonEmpty[T, D], compare PartialCompareFunc[T]) (Relation, error) {
	return ClassifyWith(Lazy, s, t, compare)
}

// ClassifyWith classifies with an explicit evaluation strategy. Both
// strategies return the same result for every input.
func ClassifyWith[T any, D Domain](strategy Strategy, s, t NonEmpty[T, D], compare PartialCompareFunc[T]) (Relation, error) {
	return classifyPartial(strategy, compare, &s.iv, &t.iv)
}

// Relate validates s and t and returns the relation between them.
//
// It fails with ErrEmptyInterval if either interval is empty (the error's
// Operand names which) and with ErrAmbiguousOrder if a comparison has no
// definite answer.
func Relate[T cmp.Ordered, D Domain](s, t Interval[T, D]) (Relation, error) {
	return RelateFunc(s, t, PartialCompare[T])
}

// RelateFunc is Relate with a caller-supplied comparison.
func RelateFunc[T any, D Domain](s, t Interval[T, D], compare PartialCompareFunc[T]) (Relation, error) {
	return RelateWith(Lazy, s, t, compare)
}

// RelateWith is RelateFunc with an explicit evaluation strategy.
func RelateWith[T any, D Domain](strategy Strategy, s, t Interval[T, D], compare PartialCompareFunc[T]) (Relation, error) {
	if err := checkNonEmpty(&s, compare, "s"); err != nil {
		return 0, err
	}
	if err := checkNonEmpty(&t, compare, "t"); err != nil {
		return 0, err
	}
	return classifyPartial(strategy, compare, &s, &t)
}
