package allen

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Relation is one of the thirteen Allen relations that hold between an
// interval s and an interval t.
//
// Values are declared in the order of "how far s begins before t", then
// "how far s ends before t", so < on Relation is the sort order callers
// may rely on:
//
//	Precedes < Meets < Overlaps < IsFinishedBy < Contains < Starts < Equals <
//	IsStartedBy < IsContainedBy < Finishes < IsOverlappedBy < IsMetBy < IsPrecededBy
//
// The order is symmetric around Equals: a relation and its converse sit at
// mirrored positions.
type Relation uint8

const (
	// s: ┌────┐
	// t:        └────┘
	Precedes Relation = iota
	// s: ┌────┐
	// t:      └────┘
	Meets
	// s: ┌────┐
	// t:    └────┘
	Overlaps
	// s: ┌────────┐
	// t:     └────┘
	IsFinishedBy
	// s: ┌────────┐
	// t:   └──┘
	Contains
	// s: ┌────┐
	// t: └────────┘
	Starts
	// s: ┌────┐
	// t: └────┘
	Equals
	// s: ┌────────┐
	// t: └────┘
	IsStartedBy
	// s:   ┌──┐
	// t: └────────┘
	IsContainedBy
	// s:     ┌────┐
	// t: └────────┘
	Finishes
	// s:    ┌────┐
	// t: └────┘
	IsOverlappedBy
	// s:      ┌────┐
	// t: └────┘
	IsMetBy
	// s:        ┌────┐
	// t: └────┘
	IsPrecededBy

	relationCount = iota
)

// Family groups a relation with its converse.
type Family uint8

const (
	FamilyPrecedes Family = iota
	FamilyMeets
	FamilyOverlaps
	FamilyFinishes
	FamilyContains
	FamilyStarts
	FamilyEquals

	familyCount = iota
)

var relationNames = [relationCount]string{
	Precedes:       "precedes",
	Meets:          "meets",
	Overlaps:       "overlaps",
	IsFinishedBy:   "is-finished-by",
	Contains:       "contains",
	Starts:         "starts",
	Equals:         "equals",
	IsStartedBy:    "is-started-by",
	IsContainedBy:  "is-contained-by",
	Finishes:       "finishes",
	IsOverlappedBy: "is-overlapped-by",
	IsMetBy:        "is-met-by",
	IsPrecededBy:   "is-preceded-by",
}

var relationFamilies = [relationCount]Family{
	Precedes:       FamilyPrecedes,
	Meets:          FamilyMeets,
	Overlaps:       FamilyOverlaps,
	IsFinishedBy:   FamilyFinishes,
	Contains:       FamilyContains,
	Starts:         FamilyStarts,
	Equals:         FamilyEquals,
	IsStartedBy:    FamilyStarts,
	IsContainedBy:  FamilyContains,
	Finishes:       FamilyFinishes,
	IsOverlappedBy: FamilyOverlaps,
	IsMetBy:        FamilyMeets,
	IsPrecededBy:   FamilyPrecedes,
}

// familyBase is the non-inverted member of each family.
var familyBase = [familyCount]Relation{
	FamilyPrecedes: Precedes,
	FamilyMeets:    Meets,
	FamilyOverlaps: Overlaps,
	FamilyFinishes: Finishes,
	FamilyContains: Contains,
	FamilyStarts:   Starts,
	FamilyEquals:   Equals,
}

// All returns the thirteen relations in sort order.
func All() []Relation {
	rs := make([]Relation, relationCount)
	for i := range rs {
		rs[i] = Relation(i)
	}
	return rs
}

// Of returns the member of family f with the given orientation.
// Equals has a single orientation and ignores inverted. An unknown family
// yields an invalid Relation.
func Of(f Family, inverted bool) Relation {
	if f >= familyCount {
		return relationCount
	}
	r := familyBase[f]
	if inverted {
		return r.Converse()
	}
	return r
}

// Valid reports whether r is one of the thirteen relations.
func (r Relation) Valid() bool {
	return r < relationCount
}

// Family returns the family r belongs to. An invalid relation has no
// family and reports an out-of-range Family.
func (r Relation) Family() Family {
	if !r.Valid() {
		return familyCount
	}
	return relationFamilies[r]
}

// IsInverted reports whether r is the converse orientation of its family
// ("is preceded by" rather than "precedes"). Equals is never inverted.
func (r Relation) IsInverted() bool {
	if !r.Valid() {
		return false
	}
	return r != familyBase[r.Family()]
}

// Converse returns the relation that holds between t and s when r holds
// between s and t. An invalid relation is returned unchanged.
func (r Relation) Converse() Relation {
	if !r.Valid() {
		return r
	}
	return IsPrecededBy - r
}

// Compare orders relations by their sort order.
func (r Relation) Compare(o Relation) int {
	return cmp.Compare(r, o)
}

func (r Relation) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
	return relationNames[r]
}

// ParseRelation parses a relation name. Case, '-', '_' and spaces are
// ignored, so "is-met-by", "is_met_by" and "IsMetBy" are all accepted.
func ParseRelation(s string) (Relation, error) {
	key := normalizeRelationName(s)
	for i, name := range relationNames {
		if normalizeRelationName(name) == key {
			return Relation(i), nil
		}
	}
	return 0, fmt.Errorf("unknown relation %q", s)
}

func normalizeRelationName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))
}

func (f Family) String() string {
	if f >= familyCount {
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
	return familyBase[f].String()
}

// MarshalText encodes the relation by name, so relations read naturally in
// JSON and YAML documents.
func (r Relation) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid relation %d", uint8(r))
	}
	return []byte(relationNames[r]), nil
}

// UnmarshalText accepts anything ParseRelation does.
func (r *Relation) UnmarshalText(text []byte) error {
	v, err := ParseRelation(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Sort orders rs in place.
func Sort(rs []Relation) {
	slices.Sort(rs)
}

// Dedup sorts rs in place and removes duplicates.
func Dedup(rs []Relation) []Relation {
	slices.Sort(rs)
	return slices.Compact(rs)
}
