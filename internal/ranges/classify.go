package ranges

import (
	"cmp"
	"fmt"
	"time"

	"github.com/roach88/allen/internal/allen"
)

// Request is a pair of range expressions and how to read them.
type Request struct {
	S        string
	T        string
	Domain   allen.DomainKind
	Type     ValueType
	Strategy allen.Strategy
}

// Outcome is the classification of a Request.
type Outcome struct {
	Relation allen.Relation
	Atomics  allen.AtomicRelations
}

// Classify parses both operands of req and classifies them.
//
// Parse failures are *SyntaxError values naming the operand. Empty or
// unordered intervals surface as *allen.IntervalError.
func Classify(req Request) (Outcome, error) {
	switch req.Domain {
	case allen.KindDiscrete:
		return classifyIn[allen.Discrete](req)
	case allen.KindContinuous:
		return classifyIn[allen.Continuous](req)
	default:
		return Outcome{}, fmt.Errorf("unknown domain %d", req.Domain)
	}
}

func classifyIn[D allen.Domain](req Request) (Outcome, error) {
	switch req.Type {
	case TypeInt:
		return classifyAs[int64, D](req, ParseInt, allen.Total(cmp.Compare[int64]))
	case TypeFloat:
		return classifyAs[float64, D](req, ParseFloat, allen.PartialCompare[float64])
	case TypeTime:
		return classifyAs[time.Time, D](req, ParseTime, allen.Total(time.Time.Compare))
	default:
		return Outcome{}, fmt.Errorf("unknown value type %q", req.Type)
	}
}

func classifyAs[T any, D allen.Domain](req Request, value ValueParser[T], compare allen.PartialCompareFunc[T]) (Outcome, error) {
	s, err := Parse[T, D](req.S, value)
	if err != nil {
		return Outcome{}, fmt.Errorf("operand s: %w", err)
	}
	t, err := Parse[T, D](req.T, value)
	if err != nil {
		return Outcome{}, fmt.Errorf("operand t: %w", err)
	}

	r, err := allen.RelateWith(req.Strategy, s, t, compare)
	if err != nil {
		return Outcome{}, err
	}

	// RelateWith already validated both sides.
	sn, _ := allen.ValidateFunc(s, compare)
	tn, _ := allen.ValidateFunc(t, compare)
	atomics, err := allen.TryAtomicsFunc(sn, tn, compare)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Relation: r, Atomics: atomics}, nil
}

// Check parses text the way Classify would read an operand, without
// validating or classifying it.
func Check(text string, domain allen.DomainKind, typ ValueType) error {
	switch domain {
	case allen.KindDiscrete:
		return checkIn[allen.Discrete](text, typ)
	case allen.KindContinuous:
		return checkIn[allen.Continuous](text, typ)
	default:
		return fmt.Errorf("unknown domain %d", domain)
	}
}

func checkIn[D allen.Domain](text string, typ ValueType) error {
	var err error
	switch typ {
	case TypeInt:
		_, err = Parse[int64, D](text, ParseInt)
	case TypeFloat:
		_, err = Parse[float64, D](text, ParseFloat)
	case TypeTime:
		_, err = Parse[time.Time, D](text, ParseTime)
	default:
		err = fmt.Errorf("unknown value type %q", typ)
	}
	return err
}
