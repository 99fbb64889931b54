package allen

import "fmt"

// Bound is one endpoint of an interval: either a finite value or unbounded.
//
// Whether an unbounded value means -infinity or +infinity depends on the
// side it sits on. On the start side it has no lower limit, on the end side
// no upper limit.
type Bound[T any] struct {
	value   T
	bounded bool
}

// Bounded returns a finite endpoint at v.
func Bounded[T any](v T) Bound[T] {
	return Bound[T]{value: v, bounded: true}
}

// Unbounded returns an infinite endpoint.
func Unbounded[T any]() Bound[T] {
	return Bound[T]{}
}

// IsBounded reports whether the endpoint is finite.
func (b Bound[T]) IsBounded() bool {
	return b.bounded
}

// Value returns the finite value and true, or the zero value and false for
// an unbounded endpoint.
func (b Bound[T]) Value() (T, bool) {
	return b.value, b.bounded
}

func (b Bound[T]) String() string {
	if !b.bounded {
		return "unbounded"
	}
	return fmt.Sprint(b.value)
}
