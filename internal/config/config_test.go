package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLetterfallIsValid(t *testing.T) {
	if err := DefaultLetterfall().Validate(); err != nil {
		t.Errorf("DefaultLetterfall().Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedMatchesHardcodedDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	def := DefaultLetterfall()

	if cfg.Field != def.Field {
		t.Errorf("Field = %+v, expected %+v", cfg.Field, def.Field)
	}
	if cfg.Rules != def.Rules {
		t.Errorf("Rules = %+v, expected %+v", cfg.Rules, def.Rules)
	}
	if cfg.Letters.Speed != def.Letters.Speed || cfg.Letters.SpawnRate != def.Letters.SpawnRate {
		t.Errorf("Letters = %+v, expected %+v", cfg.Letters, def.Letters)
	}
	if cfg.Timing != def.Timing {
		t.Errorf("Timing = %+v, expected %+v", cfg.Timing, def.Timing)
	}
	for key, w := range def.Letters.Weights {
		if cfg.Letters.Weights[key] != w {
			t.Errorf("weight %s = %d, expected %d", key, cfg.Letters.Weights[key], w)
		}
	}
}

func TestDefaultWeights(t *testing.T) {
	weights := DefaultWeights()
	if len(weights) != 26 {
		t.Fatalf("len(DefaultWeights()) = %d, expected 26", len(weights))
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total != 32 {
		t.Errorf("total weight = %d, expected 32", total)
	}
	for _, v := range []string{"A", "E", "I", "O", "U", "Y"} {
		if weights[v] != 2 {
			t.Errorf("weight %s = %d, expected 2", v, weights[v])
		}
	}
	if weights["Z"] != 1 {
		t.Errorf("weight Z = %d, expected 1", weights["Z"])
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultLetterfall()
	cfg.Field.Width = 0
	cfg.Letters.SpawnRate = 0
	cfg.Rules.Scoring = "fancy"
	cfg.Timing.TickRate = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"field.width", "letters.spawn_rate", "rules.scoring", "timing.tick_rate"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q should mention %s", err, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Letterfall)
	}{
		{"negative height", func(c *Letterfall) { c.Field.Height = -1 }},
		{"margin beyond height", func(c *Letterfall) { c.Field.BoundaryMargin = 60 }},
		{"zero speed", func(c *Letterfall) { c.Letters.Speed = 0 }},
		{"empty weights", func(c *Letterfall) { c.Letters.Weights = map[string]int{} }},
		{"zero weight", func(c *Letterfall) { c.Letters.Weights["Q"] = 0 }},
		{"lowercase key", func(c *Letterfall) { c.Letters.Weights["a"] = 1 }},
		{"multi-letter key", func(c *Letterfall) { c.Letters.Weights["AB"] = 1 }},
		{"negative lives", func(c *Letterfall) { c.Rules.Lives = -1 }},
		{"zero multiplier", func(c *Letterfall) { c.Rules.BonusMultiplier = 0 }},
		{"zero min bonus letters", func(c *Letterfall) { c.Rules.MinBonusLetters = 0 }},
		{"negative flash", func(c *Letterfall) { c.Feedback.FlashTicks = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultLetterfall()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestZeroLivesIsValid(t *testing.T) {
	cfg := DefaultLetterfall()
	cfg.Rules.Lives = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Lives=0 should be valid, got %v", err)
	}
	if cfg.Rules.HasLives() {
		t.Error("HasLives() should be false with Lives=0")
	}
}

func TestLetterWeights(t *testing.T) {
	weights, err := Letters{Weights: map[string]int{"A": 3, "Z": 1}}.LetterWeights()
	if err != nil {
		t.Fatalf("LetterWeights failed: %v", err)
	}
	if weights['A'] != 3 || weights['Z'] != 1 || len(weights) != 2 {
		t.Errorf("LetterWeights() = %v", weights)
	}
}

func TestFieldExpiry(t *testing.T) {
	f := Field{Width: 20, Height: 60, BoundaryMargin: 2}
	if f.Expiry() != 58 {
		t.Errorf("Expiry() = %g, expected 58", f.Expiry())
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("rules:\n  lives: 7\nletters:\n  speed: 0.5\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Rules.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Rules.Lives)
	}
	if cfg.Letters.Speed != 0.5 {
		t.Errorf("Speed = %g, expected 0.5", cfg.Letters.Speed)
	}
	if cfg.Letters.SpawnRate != 80 {
		t.Errorf("SpawnRate = %d, expected default 80", cfg.Letters.SpawnRate)
	}
	if cfg.Rules.Scoring != ScoringBonus {
		t.Errorf("Scoring = %q, expected default bonus", cfg.Rules.Scoring)
	}
	if len(cfg.Letters.Weights) != 26 {
		t.Errorf("Weights should default to the full table, got %d entries", len(cfg.Letters.Weights))
	}
}

func TestParseWeightsReplaceDefaults(t *testing.T) {
	cfg, err := Parse([]byte("letters:\n  weights:\n    A: 1\n    B: 4\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(cfg.Letters.Weights) != 2 {
		t.Errorf("Weights = %v, expected only A and B", cfg.Letters.Weights)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("field:\n  width: -3\n")); err == nil {
		t.Error("Parse should reject an invalid config")
	}
	if _, err := Parse([]byte("field: [")); err == nil {
		t.Error("Parse should reject malformed YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  tick_rate: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Timing.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Timing.TickRate)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	normal := DefaultLetterfall()
	ApplyPreset(&normal, DifficultyNormal)
	if normal.Rules.Lives != 3 || normal.Letters.SpawnRate != 80 {
		t.Errorf("normal preset should not change defaults, got %+v", normal.Rules)
	}

	easy := DefaultLetterfall()
	ApplyPreset(&easy, DifficultyEasy)
	hard := DefaultLetterfall()
	ApplyPreset(&hard, DifficultyHard)

	if easy.Rules.Lives <= hard.Rules.Lives {
		t.Errorf("easy lives %d should exceed hard lives %d", easy.Rules.Lives, hard.Rules.Lives)
	}
	if easy.Letters.Speed >= hard.Letters.Speed {
		t.Errorf("easy speed %g should be below hard speed %g", easy.Letters.Speed, hard.Letters.Speed)
	}
	for _, cfg := range []Letterfall{easy, hard} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("LETTERFALL_TEST_VALUE", "set")
	if got := GetEnv("LETTERFALL_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, expected set", got)
	}
	if got := GetEnv("LETTERFALL_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected fallback", got)
	}

	t.Setenv("LETTERFALL_TEST_INT", "42")
	if got := GetEnvInt("LETTERFALL_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt() = %d, expected 42", got)
	}
	t.Setenv("LETTERFALL_TEST_INT", "many")
	if got := GetEnvInt("LETTERFALL_TEST_INT", 1); got != 1 {
		t.Errorf("GetEnvInt() = %d, expected fallback 1", got)
	}
}
