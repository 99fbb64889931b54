// Package ranges parses range notation into allen intervals and classifies
// pairs of them whose domain and value type are only known at runtime.
//
// Notation:
//
//	a..b    bounded, exclusive end (discrete domains)
//	a..=b   bounded, inclusive end (continuous domains)
//	a..     no upper limit
//	..b     no lower limit, exclusive end (discrete)
//	..=b    no lower limit, inclusive end (continuous)
//	..      the whole domain
//
// The end style must agree with the domain, so "2..5" is rejected in a
// continuous domain rather than silently read as closed.
package ranges

import (
	"fmt"
	"strings"

	"github.com/roach88/allen/internal/allen"
)

// SyntaxError reports range text that could not be parsed.
type SyntaxError struct {
	// Input is the offending text.
	Input string

	// Reason describes what is wrong with it.
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid range %q: %s", e.Input, e.Reason)
}

// Literal is range notation split into its parts, before the values are
// decoded.
type Literal struct {
	Start     string
	End       string
	HasStart  bool
	HasEnd    bool
	Inclusive bool
}

// Split separates text at its ".." or "..=" operator.
func Split(text string) (Literal, error) {
	in := strings.TrimSpace(text)
	i := strings.Index(in, "..")
	if i < 0 {
		return Literal{}, &SyntaxError{Input: text, Reason: `missing ".." operator`}
	}

	lit := Literal{Start: strings.TrimSpace(in[:i])}
	rest := in[i+2:]
	if strings.HasPrefix(rest, "=") {
		lit.Inclusive = true
		rest = rest[1:]
	}
	lit.End = strings.TrimSpace(rest)
	lit.HasStart = lit.Start != ""
	lit.HasEnd = lit.End != ""

	if strings.Contains(lit.End, "..") {
		return Literal{}, &SyntaxError{Input: text, Reason: `more than one ".." operator`}
	}
	if lit.Inclusive && !lit.HasEnd {
		return Literal{}, &SyntaxError{Input: text, Reason: `"..=" needs an end value`}
	}
	return lit, nil
}

// ValueParser decodes one endpoint.
type ValueParser[T any] func(string) (T, error)

// Parse reads text as an interval in domain D, decoding endpoints with
// value. The result is not validated; an empty range such as "5..5"
// parses and is rejected later by allen.Validate.
func Parse[T any, D allen.Domain](text string, value ValueParser[T]) (allen.Interval[T, D], error) {
	lit, err := Split(text)
	if err != nil {
		return allen.Interval[T, D]{}, err
	}

	if lit.HasEnd {
		switch allen.DomainOf[D]() {
		case allen.KindDiscrete:
			if lit.Inclusive {
				return allen.Interval[T, D]{}, &SyntaxError{Input: text, Reason: "discrete ranges have an exclusive end; use a..b"}
			}
		case allen.KindContinuous:
			if !lit.Inclusive {
				return allen.Interval[T, D]{}, &SyntaxError{Input: text, Reason: "continuous ranges have an inclusive end; use a..=b"}
			}
		}
	}

	start, err := parseBound(text, lit.Start, lit.HasStart, value)
	if err != nil {
		return allen.Interval[T, D]{}, err
	}
	end, err := parseBound(text, lit.End, lit.HasEnd, value)
	if err != nil {
		return allen.Interval[T, D]{}, err
	}
	return allen.New[T, D](start, end), nil
}

func parseBound[T any](text, raw string, present bool, value ValueParser[T]) (allen.Bound[T], error) {
	if !present {
		return allen.Unbounded[T](), nil
	}
	v, err := value(raw)
	if err != nil {
		return allen.Bound[T]{}, &SyntaxError{Input: text, Reason: err.Error()}
	}
	return allen.Bounded(v), nil
}
