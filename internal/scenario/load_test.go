package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadYAML(t *testing.T) {
	s, err := Load("testdata/scenarios/discrete_basics.yaml")
	require.NoError(t, err)

	assert.Equal(t, "discrete_basics", s.Name)
	assert.Equal(t, "discrete", s.Domain)
	assert.Equal(t, "int", s.Type)
	require.Len(t, s.Cases, 10)
	assert.Equal(t, Case{Name: "precedes", S: "2..4", T: "5..8", Expect: "precedes"}, s.Cases[0])
	assert.Equal(t, "..5 vs 5..", s.Cases[7].Label())

	require.Len(t, s.Assertions, 3)
	assert.Equal(t, Assertion{Type: AssertCount, Relation: "equals", Count: 1}, s.Assertions[1])
	assert.Equal(t, []string{"precedes", "meets", "overlaps"}, s.Assertions[2].Relations)
}

func TestLoadCUE(t *testing.T) {
	s, err := Load("testdata/scenarios/continuous_points.cue")
	require.NoError(t, err)

	assert.Equal(t, "continuous_points", s.Name)
	assert.Equal(t, "continuous", s.Domain)
	assert.Equal(t, "float", s.Type)
	require.Len(t, s.Cases, 8)
	assert.Equal(t, Case{Name: "same_point", S: "4..=4", T: "4..=4", Expect: "empty_interval"}, s.Cases[4])
	assert.Equal(t, []Assertion{{Type: AssertCount, Relation: "meets", Count: 1}}, s.Assertions)
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "unknown_field",
			content: `name: typo
description: d
domain: discrete
type: int
case:
  - {s: "1..2", t: "2..3", expect: meets}
`,
			wantErr: "field case not found",
		},
		{
			name: "missing_cases",
			content: `name: empty
description: d
domain: discrete
type: int
`,
			wantErr: "cases is required",
		},
		{
			name: "bad_domain",
			content: `name: dense
description: d
domain: dense
type: int
cases:
  - {s: "1..2", t: "2..3", expect: meets}
`,
			wantErr: "domain must be one of [discrete continuous]",
		},
		{
			name: "bad_expect",
			content: `name: bad_expect
description: d
domain: discrete
type: int
cases:
  - {s: "1..2", t: "2..3", expect: during}
`,
			wantErr: `cases[0].expect "during" is neither a relation`,
		},
		{
			name: "bad_name",
			content: `name: "Has Spaces"
description: d
domain: discrete
type: int
cases:
  - {s: "1..2", t: "2..3", expect: meets}
`,
			wantErr: "name \"Has Spaces\" must be lowercase",
		},
		{
			name: "wrong_end_style",
			content: `name: closed
description: d
domain: discrete
type: int
cases:
  - {s: "1..=2", t: "2..3", expect: meets}
`,
			wantErr: "cases[0].s: invalid range \"1..=2\"",
		},
		{
			name: "bad_value",
			content: `name: floats
description: d
domain: discrete
type: int
cases:
  - {s: "1..2", t: "2.5..3", expect: meets}
`,
			wantErr: "cases[0].t",
		},
		{
			name: "assertion_without_relation",
			content: `name: asserts
description: d
domain: discrete
type: int
cases:
  - {s: "1..2", t: "2..3", expect: meets}
assertions:
  - type: count
    count: 1
`,
			wantErr: "assertions[0]: relation is required for count",
		},
		{
			name: "unknown_assertion_relation",
			content: `name: asserts
description: d
domain: discrete
type: int
cases:
  - {s: "1..2", t: "2..3", expect: meets}
assertions:
  - type: order
    relations: [meets, during]
`,
			wantErr: `unknown relation "during"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "s.yaml", tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadCUE_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no_scenario",
			content: `other: {name: "x"}`,
			wantErr: "no top-level scenario field",
		},
		{
			name:    "syntax",
			content: `scenario: {name: `,
			wantErr: "failed to parse CUE",
		},
		{
			name: "unknown_field",
			content: `scenario: {
	name:        "typo"
	description: "d"
	domain:      "discrete"
	type:        "int"
	case: [{s: "1..2", t: "2..3", expect: "meets"}]
}`,
			wantErr: "failed to parse CUE",
		},
		{
			name: "bad_domain",
			content: `scenario: {
	name:        "dense"
	description: "d"
	domain:      "dense"
	type:        "int"
	cases: [{s: "1..2", t: "2..3", expect: "meets"}]
}`,
			wantErr: "failed to parse CUE",
		},
		{
			name: "no_cases",
			content: `scenario: {
	name:        "empty"
	description: "d"
	domain:      "discrete"
	type:        "int"
	cases: []
}`,
			wantErr: "invalid scenario: cases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "s.cue", tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewValidator(t *testing.T) {
	v, err := newValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Var("continuous_points", "scenarioname"))
	assert.Error(t, v.Var("Bad Name", "scenarioname"))
	assert.NoError(t, v.Var("empty_interval", "expectation"))
	assert.NoError(t, v.Var("is-met-by", "expectation"))
	assert.Error(t, v.Var("invalid_range", "expectation"))
	assert.NoError(t, v.Var("IsMetBy", "relation"))
	assert.Error(t, v.Var("during", "relation"))
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	_, err := Load("scenario.json")
	assert.ErrorContains(t, err, "unsupported scenario file extension")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario file")
}

func TestFindFiles(t *testing.T) {
	files, err := FindFiles("testdata/scenarios", "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("testdata/scenarios", "all_relations.yaml"),
		filepath.Join("testdata/scenarios", "continuous_points.cue"),
		filepath.Join("testdata/scenarios", "discrete_basics.yaml"),
		filepath.Join("testdata/scenarios", "meetings.yaml"),
	}, files)

	files, err = FindFiles("testdata/scenarios", "*_points")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("testdata/scenarios", "continuous_points.cue")}, files)

	_, err = FindFiles("testdata/scenarios", "[")
	assert.ErrorContains(t, err, "invalid filter pattern")
}

func TestFindFiles_SkipsGoldenAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "golden"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	writeFile(t, dir, "a.yaml", "")
	writeFile(t, dir, "notes.md", "")
	writeFile(t, dir, filepath.Join("golden", "a.yaml"), "")
	writeFile(t, dir, filepath.Join("nested", "b.yml"), "")

	files, err := FindFiles(dir, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "nested", "b.yml"),
	}, files)
}
