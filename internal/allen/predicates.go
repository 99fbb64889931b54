package allen

import "cmp"

// Holds reports whether want is the relation between s and t.
// The XxxOf helpers below are shorthands for Holds with a fixed relation.
func Holds[T cmp.Ordered, D Domain](want Relation, s, t Interval[T, D]) (bool, error) {
	r, err := Relate(s, t)
	if err != nil {
		return false, err
	}
	return r == want, nil
}

// PrecedesOf reports whether s ends before t starts.
func PrecedesOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(Precedes, s, t)
}

// IsPrecededByOf reports whether s starts after t ends.
func IsPrecededByOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(IsPrecededBy, s, t)
}

// MeetsOf reports whether s ends exactly where t starts.
func MeetsOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(Meets, s, t)
}

// IsMetByOf reports whether s starts exactly where t ends.
func IsMetByOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(IsMetBy, s, t)
}

// OverlapsOf reports whether s starts first and ends inside t.
func OverlapsOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(Overlaps, s, t)
}

// IsOverlappedByOf reports whether t starts first and ends inside s.
func IsOverlappedByOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(IsOverlappedBy, s, t)
}

// StartsOf reports whether s and t start together and s ends first.
func StartsOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(Starts, s, t)
}

// IsStartedByOf reports whether s and t start together and t ends first.
func IsStartedByOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(IsStartedBy, s, t)
}

// FinishesOf reports whether s and t end together and s starts last.
func FinishesOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(Finishes, s, t)
}

// IsFinishedByOf reports whether s and t end together and t starts last.
func IsFinishedByOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(IsFinishedBy, s, t)
}

// ContainsOf reports whether t lies strictly inside s.
func ContainsOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(Contains, s, t)
}

// IsContainedByOf reports whether s lies strictly inside t.
func IsContainedByOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(IsContainedBy, s, t)
}

// EqualsOf reports whether s and t share both endpoints.
func EqualsOf[T cmp.Ordered, D Domain](s, t Interval[T, D]) (bool, error) {
	return Holds(Equals, s, t)
}
