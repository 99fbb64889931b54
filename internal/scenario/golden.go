package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/allen/internal/allen"
	"github.com/roach88/allen/internal/canonical"
)

// snapshot is the golden form of a Result. Run IDs and error messages are
// left out so snapshots only change when classifications do.
type snapshot struct {
	Scenario string         `json:"scenario"`
	Pass     bool           `json:"pass"`
	Cases    []snapshotCase `json:"cases"`
}

type snapshotCase struct {
	Index   int                    `json:"index"`
	Name    string                 `json:"name,omitempty"`
	S       string                 `json:"s"`
	T       string                 `json:"t"`
	Outcome string                 `json:"outcome"`
	Swapped string                 `json:"swapped,omitempty"`
	Atomics *allen.AtomicRelations `json:"atomics,omitempty"`
}

// Snapshot renders result as canonical JSON for golden comparison.
func Snapshot(result *Result) ([]byte, error) {
	snap := snapshot{
		Scenario: result.Scenario,
		Pass:     result.Pass,
		Cases:    make([]snapshotCase, len(result.Cases)),
	}
	for i, c := range result.Cases {
		snap.Cases[i] = snapshotCase{
			Index:   c.Index,
			Name:    c.Name,
			S:       c.S,
			T:       c.T,
			Outcome: c.Outcome,
			Swapped: c.Swapped,
			Atomics: c.Atomics,
		}
	}
	return canonical.Marshal(snap)
}

// GoldenPath returns the golden file for a scenario file:
// golden/<name>.golden next to it.
func GoldenPath(scenarioFile string) string {
	base := filepath.Base(scenarioFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(scenarioFile), "golden", name+".golden")
}

// ErrNoGolden is returned by CompareGolden when the golden file does not
// exist.
var ErrNoGolden = errors.New("golden file not found")

// CompareGolden reports whether the golden file at path holds exactly data.
func CompareGolden(path string, data []byte) (bool, error) {
	golden, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, ErrNoGolden
	}
	if err != nil {
		return false, fmt.Errorf("failed to read golden file: %w", err)
	}
	return bytes.Equal(golden, data), nil
}

// WriteGolden writes data to the golden file at path, creating its
// directory if needed.
func WriteGolden(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create golden directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}
	return nil
}

// AssertGolden compares the snapshot of result against
// testdata/golden/<scenario>.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/scenario -update
func AssertGolden(t *testing.T, result *Result) {
	t.Helper()

	data, err := Snapshot(result)
	if err != nil {
		t.Fatalf("snapshot %s: %v", result.Scenario, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, result.Scenario, data)
}
