package allen

import "cmp"

// Totally is the set of built-in types whose < is a total order.
// Floating-point types are excluded because NaN is unordered.
type Totally interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~string
}

// CompareFunc is a total three-way comparison in the style of cmp.Compare:
// negative if a < b, zero if a == b, positive if a > b.
type CompareFunc[T any] func(a, b T) int

// PartialCompareFunc is a three-way comparison that may have no answer.
// The second result is false when a and b are unordered.
type PartialCompareFunc[T any] func(a, b T) (int, bool)

// PartialCompare compares values of any cmp.Ordered type, reporting false
// for unordered pairs (any NaN operand).
func PartialCompare[T cmp.Ordered](a, b T) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	}
	return 0, false
}

// unboundedRule fixes the outcome of one comparator kind whenever at least
// one side is unbounded. Unbounded starts act as -inf, unbounded ends as +inf.
type unboundedRule struct {
	boundedVsUnbounded   Ordering
	unboundedVsBounded   Ordering
	unboundedVsUnbounded Ordering
}

var (
	// start(s) vs start(t)
	ruleBB = unboundedRule{Greater, Less, Equal}
	// start(s) vs end(t): a start is never at or past an unbounded end.
	ruleBE = unboundedRule{Less, Less, Less}
	// end(s) vs start(t): an end is never at or before an unbounded start.
	ruleEB = unboundedRule{Greater, Greater, Greater}
	// end(s) vs end(t)
	ruleEE = unboundedRule{Less, Greater, Equal}
)

func (r *unboundedRule) resolve(sBounded, tBounded bool) Ordering {
	switch {
	case sBounded:
		return r.boundedVsUnbounded
	case tBounded:
		return r.unboundedVsBounded
	default:
		return r.unboundedVsUnbounded
	}
}

func compareBounds[T any](r *unboundedRule, s, t *Bound[T], compare CompareFunc[T]) Ordering {
	if s.bounded && t.bounded {
		return OrderingOf(compare(s.value, t.value))
	}
	return r.resolve(s.bounded, t.bounded)
}

func tryCompareBounds[T any](r *unboundedRule, s, t *Bound[T], compare PartialCompareFunc[T]) (Ordering, bool) {
	if s.bounded && t.bounded {
		c, ok := compare(s.value, t.value)
		if !ok {
			return 0, false
		}
		return OrderingOf(c), true
	}
	return r.resolve(s.bounded, t.bounded), true
}

// CompareBB orders the start of s against the start of t.
func CompareBB[T any](s, t *Bound[T], compare CompareFunc[T]) Ordering {
	return compareBounds(&ruleBB, s, t, compare)
}

// CompareBE orders the start of s against the end of t.
func CompareBE[T any](s, t *Bound[T], compare CompareFunc[T]) Ordering {
	return compareBounds(&ruleBE, s, t, compare)
}

// CompareEB orders the end of s against the start of t.
func CompareEB[T any](s, t *Bound[T], compare CompareFunc[T]) Ordering {
	return compareBounds(&ruleEB, s, t, compare)
}

// CompareEE orders the end of s against the end of t.
func CompareEE[T any](s, t *Bound[T], compare CompareFunc[T]) Ordering {
	return compareBounds(&ruleEE, s, t, compare)
}

// TryCompareBB is the partial-order variant of CompareBB.
func TryCompareBB[T any](s, t *Bound[T], compare PartialCompareFunc[T]) (Ordering, bool) {
	return tryCompareBounds(&ruleBB, s, t, compare)
}

// TryCompareBE is the partial-order variant of CompareBE.
func TryCompareBE[T any](s, t *Bound[T], compare PartialCompareFunc[T]) (Ordering, bool) {
	return tryCompareBounds(&ruleBE, s, t, compare)
}

// TryCompareEB is the partial-order variant of CompareEB.
func TryCompareEB[T any](s, t *Bound[T], compare PartialCompareFunc[T]) (Ordering, bool) {
	return tryCompareBounds(&ruleEB, s, t, compare)
}

// TryCompareEE is the partial-order variant of CompareEE.
func TryCompareEE[T any](s, t *Bound[T], compare PartialCompareFunc[T]) (Ordering, bool) {
	return tryCompareBounds(&ruleEE, s, t, compare)
}
