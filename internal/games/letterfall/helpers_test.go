package letterfall

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/letterfall/internal/config"
)

// seqSource returns the given characters in order, cycling.
type seqSource struct {
	chars []rune
	i     int
}

func newSeqSource(chars string) *seqSource {
	return &seqSource{chars: []rune(chars)}
}

func (s *seqSource) Next() rune {
	r := s.chars[s.i%len(s.chars)]
	s.i++
	return r
}

var testField = config.Field{Width: 20, Height: 60, BoundaryMargin: 2}

func newTestPool(t *testing.T, chars string, keepClaimed bool) *Pool {
	t.Helper()
	p, err := NewPool(testField, 0.12, newSeqSource(chars), rand.New(rand.NewSource(1)), keepClaimed)
	if err != nil {
		t.Fatalf("NewPool() failed: %v", err)
	}
	return p
}

// spawnAll spawns n letters.
func spawnAll(p *Pool, n int) []Letter {
	out := make([]Letter, n)
	for i := range out {
		out[i] = p.Spawn()
	}
	return out
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
