package letterfall

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/letterfall/internal/config"
)

// LetterSource produces the character of each spawned letter.
type LetterSource interface {
	Next() rune
}

// Source draws letters uniformly from a multiset built from a weight table,
// so a letter with weight 2 is twice as likely as one with weight 1.
type Source struct {
	rng *rand.Rand
	bag []rune
}

// DefaultWeights returns the standard frequency table.
func DefaultWeights() map[rune]int {
	weights, _ := config.Letters{Weights: config.DefaultWeights()}.LetterWeights()
	return weights
}

// NewSource builds a source from the given weights. Keys are laid out in
// alphabetical order so that a seeded rng always yields the same sequence.
func NewSource(rng *rand.Rand, weights map[rune]int) (*Source, error) {
	if rng == nil {
		return nil, fmt.Errorf("letterfall: source needs an rng")
	}
	if len(weights) == 0 {
		return nil, fmt.Errorf("letterfall: empty weight table")
	}

	keys := make([]rune, 0, len(weights))
	for r, w := range weights {
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("letterfall: weight key %q is not an uppercase letter", r)
		}
		if w <= 0 {
			return nil, fmt.Errorf("letterfall: weight for %q must be positive, got %d", r, w)
		}
		keys = append(keys, r)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var bag []rune
	for _, r := range keys {
		for i := 0; i < weights[r]; i++ {
			bag = append(bag, r)
		}
	}
	return &Source{rng: rng, bag: bag}, nil
}

// Next returns a random letter.
func (s *Source) Next() rune {
	return s.bag[s.rng.Intn(len(s.bag))]
}

// Size returns the multiset population, the sum of all weights.
func (s *Source) Size() int {
	return len(s.bag)
}
