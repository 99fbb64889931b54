package allen

import (
	"cmp"
	"fmt"
)

// Interval is a pair of bounds over T, tagged with its domain D.
//
// The domain decides what a bounded pair means: Between(a, b) is [a, b) in
// a Discrete domain and [a, b] in a Continuous one.
type Interval[T any, D Domain] struct {
	start Bound[T]
	end   Bound[T]
}

// New builds an interval from explicit bounds.
func New[T any, D Domain](start, end Bound[T]) Interval[T, D] {
	return Interval[T, D]{start: start, end: end}
}

// Between builds an interval bounded on both sides.
func Between[T any, D Domain](start, end T) Interval[T, D] {
	return New[T, D](Bounded(start), Bounded(end))
}

// From builds an interval with no upper limit.
func From[T any, D Domain](start T) Interval[T, D] {
	return New[T, D](Bounded(start), Unbounded[T]())
}

// To builds an interval with no lower limit.
func To[T any, D Domain](end T) Interval[T, D] {
	return New[T, D](Unbounded[T](), Bounded(end))
}

// Full builds the interval covering the whole domain.
func Full[T any, D Domain]() Interval[T, D] {
	return New[T, D](Unbounded[T](), Unbounded[T]())
}

// Start returns the lower bound.
func (iv Interval[T, D]) Start() Bound[T] { return iv.start }

// End returns the upper bound.
func (iv Interval[T, D]) End() Bound[T] { return iv.end }

// Domain returns the kind of the interval's domain tag.
func (iv Interval[T, D]) Domain() DomainKind { return DomainOf[D]() }

// String renders the interval in range notation: "a..b" for discrete
// (exclusive end) and "a..=b" for continuous (inclusive end).
func (iv Interval[T, D]) String() string {
	var lo, hi string
	if v, ok := iv.start.Value(); ok {
		lo = fmt.Sprint(v)
	}
	if v, ok := iv.end.Value(); ok {
		hi = fmt.Sprint(v)
		if DomainOf[D]() == KindContinuous {
			hi = "=" + hi
		}
	}
	return lo + ".." + hi
}

// NonEmpty is an interval known to have extent. Only the Validate family
// produces one, so every NonEmpty can be classified.
type NonEmpty[T any, D Domain] struct {
	iv Interval[T, D]
}

// Interval returns the validated interval.
func (n NonEmpty[T, D]) Interval() Interval[T, D] { return n.iv }

func (n NonEmpty[T, D]) String() string { return n.iv.String() }

// Total adapts a total comparison to the partial signature.
func Total[T any](compare CompareFunc[T]) PartialCompareFunc[T] {
	return func(a, b T) (int, bool) { return compare(a, b), true }
}

// Validate checks that iv is non-empty under its domain's rules.
//
// An interval is empty if start >= end, in either domain. Unbounded sides never make an interval empty. A bounded
// value that is unordered even against itself (NaN) is ErrAmbiguousOrder.
func Validate[T cmp.Ordered, D Domain](iv Interval[T, D]) (NonEmpty[T, D], error) {
	return ValidateFunc(iv, PartialCompare[T])
}

// ValidateFunc is Validate with a caller-supplied comparison.
func ValidateFunc[T any, D Domain](iv Interval[T, D], compare PartialCompareFunc[T]) (NonEmpty[T, D], error) {
	if err := checkNonEmpty(&iv, compare, ""); err != nil {
		return NonEmpty[T, D]{}, err
	}
	return NonEmpty[T, D]{iv: iv}, nil
}

// MustValidate is like Validate but panics on error.
// Intended for literals in tests and examples.
func MustValidate[T cmp.Ordered, D Domain](iv Interval[T, D]) NonEmpty[T, D] {
	n, err := Validate(iv)
	if err != nil {
		panic(fmt.Sprintf("allen: MustValidate(%s): %v", iv, err))
	}
	return n
}

func checkNonEmpty[T any, D Domain](iv *Interval[T, D], compare PartialCompareFunc[T], operand string) error {
	start, end := &iv.start, &iv.end
	switch {
	case start.bounded && end.bounded:
		c, ok := compare(start.value, end.value)
		if !ok {
			return newAmbiguousOrderError(operand, "interval start and end")
		}
		if c >= 0 {
			return newEmptyIntervalError(operand)
		}
	case start.bounded:
		if _, ok := compare(start.value, start.value); !ok {
			return newAmbiguousOrderError(operand, "interval start and itself")
		}
	case end.bounded:
		if _, ok := compare(end.value, end.value); !ok {
			return newAmbiguousOrderError(operand, "interval end and itself")
		}
	}
	return nil
}
