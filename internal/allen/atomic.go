package allen

import (
	"cmp"
	"fmt"
)

// AtomicRelations holds the four endpoint orderings between intervals s
// and t. Together they determine the Allen relation; nothing else about the
// intervals is needed.
//
// The orderings follow Georgala, Sherif & Ngonga Ngomo (2016), "An efficient
// approach for the generation of Allen relations":
//
//	BB = order(start(s), start(t))
//	BE = order(start(s), end(t))
//	EB = order(end(s),   start(t))
//	EE = order(end(s),   end(t))
type AtomicRelations struct {
	BB Ordering `json:"bb"`
	BE Ordering `json:"be"`
	EB Ordering `json:"eb"`
	EE Ordering `json:"ee"`
}

func (a AtomicRelations) String() string {
	return fmt.Sprintf("bb=%s be=%s eb=%s ee=%s", a.BB, a.BE, a.EB, a.EE)
}

// Converse returns the atomic relations of (t, s).
func (a AtomicRelations) Converse() AtomicRelations {
	return AtomicRelations{
		BB: a.BB.Reverse(),
		BE: a.EB.Reverse(),
		EB: a.BE.Reverse(),
		EE: a.EE.Reverse(),
	}
}

// Relation maps the four orderings to a relation with the full decision
// table. Rules are tried in priority order and the first match wins.
//
// Panics with *InvariantError if no rule matches, which non-empty
// intervals cannot cause.
func (a AtomicRelations) Relation() Relation {
	bb, be, eb, ee := a.BB, a.BE, a.EB, a.EE
	switch {
	case eb == Less:
		return Precedes
	case be == Greater:
		return IsPrecededBy
	case eb == Equal:
		return Meets
	case be == Equal:
		return IsMetBy
	case ee == Equal && bb == Greater:
		return Finishes
	case ee == Equal && bb == Less:
		return IsFinishedBy
	case bb == Equal && ee == Less:
		return Starts
	case bb == Equal && ee == Greater:
		return IsStartedBy
	case bb == Less && ee == Greater:
		return Contains
	case bb == Greater && ee == Less:
		return IsContainedBy
	case bb == Equal && ee == Equal:
		return Equals
	case bb == Less && eb == Greater && ee == Less:
		return Overlaps
	case bb == Greater && be == Less && ee == Greater:
		return IsOverlappedBy
	}
	panic(&InvariantError{Atomics: a})
}

// orderer evaluates one comparator kind. The two implementations are
// value types so classification stays allocation-free.
type orderer[T any] interface {
	order(r *unboundedRule, s, t *Bound[T]) (Ordering, bool)
}

type totalOrderer[T any] struct{ compare CompareFunc[T] }

func (o totalOrderer[T]) order(r *unboundedRule, s, t *Bound[T]) (Ordering, bool) {
	return compareBounds(r, s, t, o.compare), true
}

type partialOrderer[T any] struct{ compare PartialCompareFunc[T] }

func (o partialOrderer[T]) order(r *unboundedRule, s, t *Bound[T]) (Ordering, bool) {
	return tryCompareBounds(r, s, t, o.compare)
}

// atomics computes all four orderings, stopping at the first one without
// a definite answer.
func atomics[T any, D Domain, O orderer[T]](o O, s, t *Interval[T, D]) (AtomicRelations, bool) {
	var a AtomicRelations
	var ok bool
	if a.BB, ok = o.order(&ruleBB, &s.start, &t.start); !ok {
		return AtomicRelations{}, false
	}
	if a.BE, ok = o.order(&ruleBE, &s.start, &t.end); !ok {
		return AtomicRelations{}, false
	}
	if a.EB, ok = o.order(&ruleEB, &s.end, &t.start); !ok {
		return AtomicRelations{}, false
	}
	if a.EE, ok = o.order(&ruleEE, &s.end, &t.end); !ok {
		return AtomicRelations{}, false
	}
	return a, true
}

// Atomics computes the atomic relations of two validated intervals over a
// totally ordered type.
func Atomics[T Totally, D Domain](s, t NonEmpty[T, D]) AtomicRelations {
	return AtomicsFunc(s, t, cmp.Compare[T])
}

// AtomicsFunc is Atomics with a caller-supplied total comparison.
func AtomicsFunc[T any, D Domain](s, t NonEmpty[T, D], compare CompareFunc[T]) AtomicRelations {
	a, _ := atomics(totalOrderer[T]{compare}, &s.iv, &t.iv)
	return a
}

// TryAtomics computes the atomic relations over a possibly partial order.
// It fails with ErrAmbiguousOrder on the first unordered comparison.
func TryAtomics[T cmp.Ordered, D Domain](s, t NonEmpty[T, D]) (AtomicRelations, error) {
	return TryAtomicsFunc(s, t, PartialCompare[T])
}

// TryAtomicsFunc is TryAtomics with a caller-supplied comparison.
func TryAtomicsFunc[T any, D Domain](s, t NonEmpty[T, D], compare PartialCompareFunc[T]) (AtomicRelations, error) {
	a, ok := atomics(partialOrderer[T]{compare}, &s.iv, &t.iv)
	if !ok {
		return AtomicRelations{}, newAmbiguousOrderError("", "endpoints of s and t")
	}
	return a, nil
}
