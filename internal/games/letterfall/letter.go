// Package letterfall implements the falling-letters typing game.
//
// Letters spawn at the top of the field and fall at a constant speed. The
// player types words; letters spelling the typed buffer are focused, and a
// valid submitted word claims them. Active letters that reach the bottom cost
// a life.
package letterfall

// LetterID identifies a letter for the lifetime of a session.
// IDs are assigned in spawn order and never reused before the pool is cleared.
type LetterID uint64

// Letter is a single falling character.
type Letter struct {
	ID     LetterID
	Char   rune    // Uppercase A-Z
	X      float64 // [0, field width)
	Y      float64 // Grows from 0 while falling
	Speed  float64 // Field units per tick, fixed at spawn
	Active bool    // False once claimed or expired
}

// LetterView is the presentation-facing view of a letter.
type LetterView struct {
	ID      LetterID
	Char    rune
	X       float64
	Y       float64
	Active  bool
	Focused bool
}
