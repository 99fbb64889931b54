// Package canonical encodes values as RFC 8785 style canonical JSON, the
// byte-stable form used for golden snapshots of classification reports.
//
// Differences from encoding/json:
//   - object keys are sorted by UTF-16 code units
//   - strings are NFC normalized
//   - <, >, & and U+2028/U+2029 are written literally
//   - output is compact
//   - null and non-integer numbers are rejected
package canonical

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// Marshal encodes v canonically. v is first encoded with encoding/json, so
// struct tags and TextMarshaler implementations are honoured.
func Marshal(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := encode(&buf, tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encode(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		return fmt.Errorf("null is forbidden in canonical JSON")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return fmt.Errorf("only integers are allowed in canonical JSON: %s", val)
		}
		fmt.Fprintf(buf, "%d", n)
	case string:
		return encodeString(buf, val)
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		buf.WriteByte('{')
		for i, k := range SortedKeys(val) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encode(buf, val[k]); err != nil {
				return fmt.Errorf("%q: %w", k, err)
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return err
	}
	out := bytes.TrimSuffix(tmp.Bytes(), []byte("\n"))
	buf.Write(unescapeLineSeparators(out))
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that
// encoding/json always emits back into literal characters. An escape
// preceded by an odd run of backslashes is literal text and is kept.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == '\\' && i+1 < len(data) && data[i+1] == '\\' {
			out = append(out, '\\', '\\')
			i++
			continue
		}
		if bytes.HasPrefix(data[i:], []byte(`\u2028`)) {
			out = append(out, "\u2028"...)
			i += 5
			continue
		}
		if bytes.HasPrefix(data[i:], []byte(`\u2029`)) {
			out = append(out, "\u2029"...)
			i += 5
			continue
		}
		out = append(out, data[i])
	}
	return out
}

// SortedKeys returns the keys of m in UTF-16 code unit order, which differs
// from Go's byte order for characters outside the Basic Multilingual Plane.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)
	return keys
}

func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}
