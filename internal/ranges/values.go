package ranges

import (
	"fmt"
	"strconv"
	"time"
)

// ValueType names the scalar type of range endpoints.
type ValueType string

const (
	TypeInt   ValueType = "int"
	TypeFloat ValueType = "float"
	TypeTime  ValueType = "time"
)

// ValueTypes lists the supported value types.
func ValueTypes() []ValueType {
	return []ValueType{TypeInt, TypeFloat, TypeTime}
}

// ParseValueType parses "int", "float" or "time".
func ParseValueType(s string) (ValueType, error) {
	for _, t := range ValueTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown value type %q: must be int, float or time", s)
}

// ParseInt decodes a base-10 signed 64-bit integer.
func ParseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an int: %q", s)
	}
	return v, nil
}

// ParseFloat decodes a 64-bit float. "inf", "-inf" and "nan" are accepted;
// infinities are ordinary bounded values and NaN yields ambiguous orders.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a float: %q", s)
	}
	return v, nil
}

// ParseTime decodes an RFC 3339 timestamp, with optional fractional seconds.
func ParseTime(s string) (time.Time, error) {
	v, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("not an RFC 3339 time: %q", s)
	}
	return v, nil
}
