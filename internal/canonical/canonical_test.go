package canonical

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBasic(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"string", "hello", `"hello"`},
		{"empty string", "", `""`},
		{"int", 42, "42"},
		{"negative int", int64(-100), "-100"},
		{"max int64", int64(9223372036854775807), "9223372036854775807"},
		{"bool", true, "true"},
		{"empty array", []any{}, "[]"},
		{"empty object", map[string]any{}, "{}"},
		{"array", []int{1, 2, 3}, "[1,2,3]"},
		{"integral float", 3.0, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestMarshalSortedKeys(t *testing.T) {
	got, err := Marshal(map[string]any{
		"zebra": 1,
		"alpha": map[string]any{"b": 1, "a": 2},
		"beta":  3,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":{"a":2,"b":1},"beta":3,"zebra":1}`, string(got))
}

func TestMarshalStructTags(t *testing.T) {
	type outcome struct {
		Name     string `json:"name"`
		Relation string `json:"relation,omitempty"`
		Code     string `json:"code,omitempty"`
		Pass     bool   `json:"pass"`
	}

	got, err := Marshal(outcome{Name: "meets", Relation: "meets", Pass: true})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"meets","pass":true,"relation":"meets"}`, string(got))
}

func TestMarshalUTF16Ordering(t *testing.T) {
	// U+10000 encodes as a surrogate pair starting 0xD800, which sorts
	// before U+E000 in UTF-16 but after it in UTF-8.
	got, err := Marshal(map[string]any{
		"\uE000":     1,
		"\U00010000": 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":2,\"\uE000\":1}", string(got))
}

func TestMarshalNoHTMLEscape(t *testing.T) {
	got, err := Marshal("a<b && c>d")
	require.NoError(t, err)
	assert.Equal(t, `"a<b && c>d"`, string(got))
}

func TestMarshalNFC(t *testing.T) {
	// "e" followed by a combining acute accent normalizes to U+00E9.
	got, err := Marshal(map[string]any{"cafe\u0301": "cafe\u0301"})
	require.NoError(t, err)
	assert.Equal(t, "{\"caf\u00e9\":\"caf\u00e9\"}", string(got))
}

func TestMarshalLineSeparators(t *testing.T) {
	got, err := Marshal("a\u2028b\u2029c")
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(got))

	// A literal backslash followed by the text u2028 stays escaped.
	got, err = Marshal(`x\u2028`)
	require.NoError(t, err)
	assert.Equal(t, `"x\\u2028"`, string(got))
}

func TestMarshalRejects(t *testing.T) {
	_, err := Marshal(nil)
	assert.ErrorContains(t, err, "null")

	_, err = Marshal(map[string]any{"ratio": 1.5})
	assert.ErrorContains(t, err, "integers")

	_, err = Marshal([]any{"ok", nil})
	assert.ErrorContains(t, err, "[1]")
}

func TestMarshalIdempotent(t *testing.T) {
	in := map[string]any{"b": []any{"x", 1, true}, "a": "y"}
	first, err := Marshal(in)
	require.NoError(t, err)

	var round map[string]any
	require.NoError(t, json.Unmarshal(first, &round))
	second, err := Marshal(round)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
	assert.Empty(t, SortedKeys(map[string]bool{}))
}
