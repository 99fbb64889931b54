package scenario

import (
	"sync"

	"github.com/google/uuid"
)

// RunIDGenerator produces identifiers for scenario runs and CLI responses.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs, so reports from
// one session sort by start time.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7.
//
// Panics if the system random source fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined run IDs, for tests that compare
// exact output.
//
// Thread-safety: safe for concurrent use.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order. With a
// single id, that id is returned forever.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next id.
//
// Panics once a multi-id generator is exhausted, which means a test
// started more runs than it planned for.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if len(g.ids) == 1 {
		return g.ids[0]
	}
	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all run IDs exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
