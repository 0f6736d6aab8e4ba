// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for letterfall.
package config

import (
	"errors"
	"fmt"
)

// Letterfall contains all tunable constants of a game session.
type Letterfall struct {
	Field      Field      `yaml:"field"`
	Letters    Letters    `yaml:"letters"`
	Rules      Rules      `yaml:"rules"`
	Timing     Timing     `yaml:"timing"`
	Feedback   Feedback   `yaml:"feedback"`
	Dictionary Dictionary `yaml:"dictionary"`
}

// Field defines the play-field in abstract field units.
type Field struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	BoundaryMargin float64 `yaml:"boundary_margin"` // Letters expire at Height - BoundaryMargin
}

// Expiry returns the y coordinate at which letters leave the field.
func (f Field) Expiry() float64 {
	return f.Height - f.BoundaryMargin
}

// Letters defines spawning and motion of falling letters.
type Letters struct {
	Speed       float64        `yaml:"speed"`        // Field units per tick
	SpawnRate   int            `yaml:"spawn_rate"`   // Spawn once every N ticks
	KeepClaimed bool           `yaml:"keep_claimed"` // Claimed letters keep falling instead of vanishing
	Weights     map[string]int `yaml:"weights"`      // Letter frequency table
}

// ScoringPolicy names how accepted words are scored.
type ScoringPolicy string

const (
	ScoringFlat   ScoringPolicy = "flat"   // One point per accepted word
	ScoringLength ScoringPolicy = "length" // One point per letter
	ScoringBonus  ScoringPolicy = "bonus"  // Per letter, multiplied on a full-board clear
)

// Rules defines scoring and lives.
type Rules struct {
	Lives           int           `yaml:"lives"` // 0 disables the lives system
	Scoring         ScoringPolicy `yaml:"scoring"`
	BonusMultiplier int           `yaml:"bonus_multiplier"`
	MinBonusLetters int           `yaml:"min_bonus_letters"` // Focused letters needed for a bonus
	RequireLetters  bool          `yaml:"require_letters"`   // Reject words not fully present on the board
}

// HasLives reports whether losing letters costs lives.
func (r Rules) HasLives() bool {
	return r.Lives > 0
}

// Timing defines the frame clock target.
type Timing struct {
	TickRate int `yaml:"tick_rate"`
}

// Feedback defines presentation cues for events.
type Feedback struct {
	FlashTicks int  `yaml:"flash_ticks"` // Ticks the border stays colored after an event
	Sound      bool `yaml:"sound"`
}

// Dictionary points at an optional word list replacing the embedded one.
type Dictionary struct {
	Path string `yaml:"path"`
}

// LetterWeights converts the YAML weight table into runes.
func (l Letters) LetterWeights() (map[rune]int, error) {
	weights := make(map[rune]int, len(l.Weights))
	for key, w := range l.Weights {
		r := []rune(key)
		if len(r) != 1 || r[0] < 'A' || r[0] > 'Z' {
			return nil, fmt.Errorf("config: weight key %q is not a single uppercase letter", key)
		}
		weights[r[0]] = w
	}
	return weights, nil
}

// Validate checks every invariant the simulation relies on and reports all
// violations at once.
func (c Letterfall) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}

	if c.Field.Width <= 0 {
		bad("field.width must be positive, got %g", c.Field.Width)
	}
	if c.Field.Height <= 0 {
		bad("field.height must be positive, got %g", c.Field.Height)
	}
	if c.Field.BoundaryMargin < 0 || c.Field.BoundaryMargin >= c.Field.Height {
		bad("field.boundary_margin must be in [0, height), got %g", c.Field.BoundaryMargin)
	}

	if c.Letters.Speed <= 0 {
		bad("letters.speed must be positive, got %g", c.Letters.Speed)
	}
	if c.Letters.SpawnRate <= 0 {
		bad("letters.spawn_rate must be positive, got %d", c.Letters.SpawnRate)
	}
	if len(c.Letters.Weights) == 0 {
		bad("letters.weights must not be empty")
	}
	if _, err := c.Letters.LetterWeights(); err != nil {
		errs = append(errs, err)
	}
	for key, w := range c.Letters.Weights {
		if w <= 0 {
			bad("letters.weights[%s] must be positive, got %d", key, w)
		}
	}

	if c.Rules.Lives < 0 {
		bad("rules.lives must not be negative, got %d", c.Rules.Lives)
	}
	switch c.Rules.Scoring {
	case ScoringFlat, ScoringLength, ScoringBonus:
	default:
		bad("rules.scoring must be flat, length or bonus, got %q", c.Rules.Scoring)
	}
	if c.Rules.BonusMultiplier < 1 {
		bad("rules.bonus_multiplier must be at least 1, got %d", c.Rules.BonusMultiplier)
	}
	if c.Rules.MinBonusLetters < 1 {
		bad("rules.min_bonus_letters must be at least 1, got %d", c.Rules.MinBonusLetters)
	}

	if c.Timing.TickRate <= 0 {
		bad("timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	}
	if c.Feedback.FlashTicks < 0 {
		bad("feedback.flash_ticks must not be negative, got %d", c.Feedback.FlashTicks)
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named set of fixed constants.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
