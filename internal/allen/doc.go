// Package allen classifies pairs of one-dimensional intervals into one of
// the thirteen relations of Allen's interval algebra.
//
// Intervals are generic over their scalar type T and a domain tag D:
//
//   - Discrete (integers): intervals are half-open, [start, end).
//   - Continuous (reals): intervals are closed, [start, end].
//
// In both domains an interval needs start < end; a single point [v, v] is
// empty and rejected like a reversed interval.
//
// Either side of an interval may be unbounded. An unbounded start compares
// as -infinity and an unbounded end as +infinity; this is resolved by the
// endpoint comparators themselves, so T never needs representable extrema.
//
// Classification works on four atomic orderings between the endpoints of
// s and t (start-start, start-end, end-start, end-end). The default lazy
// strategy evaluates them in the order of the decision table and stops as
// soon as the outcome is fixed:
//
//	eb < 0             => Precedes
//	be > 0             => IsPrecededBy
//	eb = 0             => Meets
//	be = 0             => IsMetBy
//	ee = 0, bb > 0     => Finishes
//	ee = 0, bb < 0     => IsFinishedBy
//	bb = 0, ee < 0     => Starts
//	bb = 0, ee > 0     => IsStartedBy
//	bb < 0, ee > 0     => Contains
//	bb > 0, ee < 0     => IsContainedBy
//	bb = 0, ee = 0     => Equals
//	bb < 0, eb > 0, ee < 0 => Overlaps
//	bb > 0, be < 0, ee > 0 => IsOverlappedBy
//
// Two API families exist. Classify and ClassifyFunc require a total order
// and cannot fail once both intervals are validated. TryClassify,
// TryClassifyFunc and Relate accept partial orders (floating point) and
// report ErrAmbiguousOrder when any of the four comparisons has no definite
// answer, whichever strategy is used.
//
// All functions are pure and safe for concurrent use.
package allen
