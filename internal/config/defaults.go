package config

import (
	_ "embed"
)

//go:embed defaults/letterfall.yaml
var defaultLetterfallYAML []byte

// DefaultLetterfall returns the default letterfall configuration.
func DefaultLetterfall() Letterfall {
	return Letterfall{
		Field: Field{
			Width:          20,
			Height:         60,
			BoundaryMargin: 2,
		},
		Letters: Letters{
			Speed:       0.12,
			SpawnRate:   80,
			KeepClaimed: false,
			Weights:     DefaultWeights(),
		},
		Rules: Rules{
			Lives:           3,
			Scoring:         ScoringBonus,
			BonusMultiplier: 2,
			MinBonusLetters: 2,
			RequireLetters:  false,
		},
		Timing: Timing{
			TickRate: 60,
		},
		Feedback: Feedback{
			FlashTicks: 20,
			Sound:      false,
		},
	}
}

// DefaultWeights returns the letter frequency table: vowels and Y are twice
// as likely as consonants.
func DefaultWeights() map[string]int {
	weights := make(map[string]int, 26)
	for r := 'A'; r <= 'Z'; r++ {
		weights[string(r)] = 1
	}
	for _, v := range "AEIOUY" {
		weights[string(v)] = 2
	}
	return weights
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLetterfallYAML
}
