package allen

import "fmt"

// Discrete tags intervals over quantized values such as integers.
// Discrete intervals are half-open: [start, end).
type Discrete struct{}

// Continuous tags intervals over un-quantized values such as reals.
// Continuous intervals are closed: [start, end].
type Continuous struct{}

func (Discrete) kind() DomainKind   { return KindDiscrete }
func (Continuous) kind() DomainKind { return KindContinuous }

// Domain is the type-level discreteness tag carried by every Interval.
// It is sealed to Discrete and Continuous.
type Domain interface {
	Discrete | Continuous
	kind() DomainKind
}

// DomainKind is the runtime view of a Domain tag.
type DomainKind uint8

const (
	KindDiscrete DomainKind = iota
	KindContinuous
)

// DomainOf returns the kind of the domain tag D.
func DomainOf[D Domain]() DomainKind {
	var d D
	return d.kind()
}

func (k DomainKind) String() string {
	switch k {
	case KindDiscrete:
		return "discrete"
	case KindContinuous:
		return "continuous"
	default:
		return fmt.Sprintf("DomainKind(%d)", uint8(k))
	}
}

// ParseDomainKind parses "discrete" or "continuous".
func ParseDomainKind(s string) (DomainKind, error) {
	switch s {
	case "discrete":
		return KindDiscrete, nil
	case "continuous":
		return KindContinuous, nil
	default:
		return 0, fmt.Errorf("unknown domain %q: must be discrete or continuous", s)
	}
}
