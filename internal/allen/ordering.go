package allen

import "fmt"

// Ordering is the result of comparing two endpoints.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// OrderingOf maps a cmp-style integer (negative, zero, positive) to an Ordering.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// Reverse returns the ordering seen from the other operand.
func (o Ordering) Reverse() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// MarshalText encodes the ordering by name.
func (o Ordering) MarshalText() ([]byte, error) {
	if o < Less || o > Greater {
		return nil, fmt.Errorf("invalid ordering %d", int8(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes "less", "equal" or "greater".
func (o *Ordering) UnmarshalText(text []byte) error {
	switch string(text) {
	case "less":
		*o = Less
	case "equal":
		*o = Equal
	case "greater":
		*o = Greater
	default:
		return fmt.Errorf("unknown ordering %q", text)
	}
	return nil
}
