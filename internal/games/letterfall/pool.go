package letterfall

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/letterfall/internal/config"
)

// Pool owns every in-flight letter. Other components read snapshots and
// refer to letters by ID.
type Pool struct {
	field       config.Field
	speed       float64
	src         LetterSource
	rng         *rand.Rand
	keepClaimed bool

	letters []Letter     // Spawn order
	counts  map[rune]int // Active letters per character
	nextID  LetterID
}

// NewPool creates an empty pool. Invalid geometry or speed is rejected here
// so that spawning and advancing never fail later.
func NewPool(field config.Field, speed float64, src LetterSource, rng *rand.Rand, keepClaimed bool) (*Pool, error) {
	switch {
	case field.Width <= 0 || field.Height <= 0:
		return nil, fmt.Errorf("letterfall: field must have positive dimensions, got %gx%g", field.Width, field.Height)
	case field.BoundaryMargin < 0 || field.BoundaryMargin >= field.Height:
		return nil, fmt.Errorf("letterfall: boundary margin %g outside [0, %g)", field.BoundaryMargin, field.Height)
	case speed <= 0:
		return nil, fmt.Errorf("letterfall: speed must be positive, got %g", speed)
	case src == nil:
		return nil, fmt.Errorf("letterfall: pool needs a letter source")
	case rng == nil:
		return nil, fmt.Errorf("letterfall: pool needs an rng")
	}

	return &Pool{
		field:       field,
		speed:       speed,
		src:         src,
		rng:         rng,
		keepClaimed: keepClaimed,
		counts:      make(map[rune]int),
	}, nil
}

// Spawn adds a new active letter at the top of the field.
func (p *Pool) Spawn() Letter {
	x := p.rng.Float64() * p.field.Width
	if x >= p.field.Width {
		x = math.Nextafter(p.field.Width, 0)
	}

	p.nextID++
	l := Letter{
		ID:     p.nextID,
		Char:   p.src.Next(),
		X:      x,
		Y:      0,
		Speed:  p.speed,
		Active: true,
	}
	p.letters = append(p.letters, l)
	p.counts[l.Char]++
	return l
}

// Advance moves every letter down by Speed*multiplier.
// Claimed letters only remain in the pool under keepClaimed, where they keep
// falling until reaped.
func (p *Pool) Advance(multiplier float64) {
	if multiplier <= 0 {
		return
	}
	for i := range p.letters {
		p.letters[i].Y += p.letters[i].Speed * multiplier
	}
}

// ReapExpired removes every letter at or past the bottom boundary and returns
// them with Active as it was at removal. Callers charge one life per active
// letter returned.
func (p *Pool) ReapExpired() []Letter {
	expiry := p.field.Expiry()

	var reaped []Letter
	kept := p.letters[:0]
	for _, l := range p.letters {
		if l.Y < expiry {
			kept = append(kept, l)
			continue
		}
		if l.Active {
			p.decrement(l.Char)
		}
		reaped = append(reaped, l)
	}
	p.letters = kept
	return reaped
}

// Deactivate claims an active letter. It reports false if the letter is
// unknown or already inactive.
func (p *Pool) Deactivate(id LetterID) bool {
	for i := range p.letters {
		l := &p.letters[i]
		if l.ID != id {
			continue
		}
		if !l.Active {
			return false
		}
		l.Active = false
		p.decrement(l.Char)
		if !p.keepClaimed {
			p.letters = append(p.letters[:i], p.letters[i+1:]...)
		}
		return true
	}
	return false
}

func (p *Pool) decrement(r rune) {
	if p.counts[r] <= 1 {
		delete(p.counts, r)
		return
	}
	p.counts[r]--
}

// Letters returns a copy of the pool in spawn order.
func (p *Pool) Letters() []Letter {
	out := make([]Letter, len(p.letters))
	copy(out, p.letters)
	return out
}

// ActiveCount returns the number of active letters.
func (p *Pool) ActiveCount() int {
	n := 0
	for _, l := range p.letters {
		if l.Active {
			n++
		}
	}
	return n
}

// Count returns the number of active letters showing r.
func (p *Pool) Count(r rune) int {
	return p.counts[r]
}

// CanSpell reports whether the active letters hold every character of word,
// counting repeats.
func (p *Pool) CanSpell(word string) bool {
	if word == "" {
		return false
	}
	need := make(map[rune]int)
	for _, r := range word {
		need[r]++
	}
	for r, n := range need {
		if p.counts[r] < n {
			return false
		}
	}
	return true
}

// Len returns the number of letters in the pool, active or not.
func (p *Pool) Len() int {
	return len(p.letters)
}

// Clear removes every letter and restarts ID assignment.
func (p *Pool) Clear() {
	p.letters = nil
	p.counts = make(map[rune]int)
	p.nextID = 0
}
