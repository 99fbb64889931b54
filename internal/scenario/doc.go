// Package scenario runs conformance scenarios for the interval classifier.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: discrete_basics
//	description: "Literal pairs over integer ranges"
//	domain: discrete        # discrete | continuous
//	type: int               # int | float | time
//	cases:
//	  - s: "2..4"
//	    t: "5..8"
//	    expect: precedes    # a relation, empty_interval or ambiguous_order
//	assertions:
//	  - type: covers        # contains | count | order | covers
//
// or CUE files with the same fields under a top-level scenario struct:
//
//	scenario: {
//		name:   "continuous_points"
//		domain: "continuous"
//		...
//	}
//
// Both loaders reject unknown fields, and every range is parsed during
// loading so malformed notation is reported before anything runs.
//
// # Execution
//
// Each case is classified with the lazy and the eager strategy, and again
// with its operands swapped. A case passes when the outcome matches its
// expectation, both strategies agree, and the swapped pair yields the
// converse relation.
//
// # Golden Snapshots
//
// Snapshot renders a Result as canonical JSON without the run ID, so the
// same scenario always produces the same bytes. The allen test command
// keeps snapshots in golden/<file>.golden next to each scenario file.
package scenario
