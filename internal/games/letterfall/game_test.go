package letterfall

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/dictionary"
	"github.com/vovakirdan/letterfall/internal/registry"
)

var testRuntime = core.RuntimeConfig{ScreenW: 40, ScreenH: 30, TickRate: 60, Seed: 12345}

func newTestGame(t *testing.T, mode Mode, oracle dictionary.Oracle, mutate func(*config.Letterfall)) *Game {
	t.Helper()
	cfg := config.DefaultLetterfall()
	if mutate != nil {
		mutate(&cfg)
	}

	g := New(mode)
	g.SetOracle(oracle)
	if err := g.Configure(cfg); err != nil {
		t.Fatalf("Configure() failed: %v", err)
	}
	g.Reset(testRuntime)
	return g
}

// onlyLetter makes every spawn produce r, one per tick.
func onlyLetter(r string) func(*config.Letterfall) {
	return func(c *config.Letterfall) {
		c.Letters.Weights = map[string]int{r: 1}
		c.Letters.SpawnRate = 1
	}
}

func TestSpawnCadence(t *testing.T) {
	g := newTestGame(t, ModeClassic, testWords, nil)

	for tick := uint64(1); tick < 80; tick++ {
		g.Step(tick, 1)
	}
	if n := len(g.Letters()); n != 0 {
		t.Fatalf("%d letters before tick 80, expected 0", n)
	}

	g.Step(80, 1)
	letters := g.Letters()
	if len(letters) != 1 {
		t.Fatalf("%d letters after tick 80, expected 1", len(letters))
	}
	if !approxEqual(letters[0].Y, 0.12) {
		t.Errorf("new letter Y = %g, expected one step of 0.12", letters[0].Y)
	}
}

func TestEditFocusesImmediately(t *testing.T) {
	g := newTestGame(t, ModeClassic, testWords, onlyLetter("A"))
	for tick := uint64(1); tick <= 3; tick++ {
		g.Step(tick, 1)
	}

	res := g.HandleInput(core.EditFrame(" a-a "))
	if res.State.Buffer != "AA" {
		t.Errorf("Buffer = %q, expected AA", res.State.Buffer)
	}
	if g.Focus().Len() != 2 {
		t.Errorf("Focus().Len() = %d, expected 2", g.Focus().Len())
	}

	focused := 0
	for _, l := range g.Letters() {
		if l.Focused {
			focused++
		}
	}
	if focused != 2 {
		t.Errorf("%d letters marked focused, expected 2", focused)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionClear)
	res = g.HandleInput(in)
	if res.State.Buffer != "" || g.Focus().Len() != 0 {
		t.Errorf("after clear: Buffer = %q, focus = %d", res.State.Buffer, g.Focus().Len())
	}
}

func submit(g *Game, text string) core.StepResult {
	g.HandleInput(core.EditFrame(text))
	in := core.NewInputFrame()
	in.Set(core.ActionSubmit)
	return g.HandleInput(in)
}

func TestSubmitThroughGame(t *testing.T) {
	oracle := dictionary.New([]string{"a", "aa"})
	g := newTestGame(t, ModeClassic, oracle, onlyLetter("A"))
	for tick := uint64(1); tick <= 3; tick++ {
		g.Step(tick, 1)
	}

	res := submit(g, "aa")
	if !res.Has(core.EventValid) || res.State.Score != 2 {
		t.Errorf("AA on three letters = %v score %d, expected valid score 2", res.Events, res.State.Score)
	}
	if res.State.Buffer != "" {
		t.Errorf("Buffer = %q after submit, expected empty", res.State.Buffer)
	}
	if n := len(g.Letters()); n != 1 {
		t.Errorf("%d letters left, expected 1", n)
	}

	g.Step(4, 1)
	res = submit(g, "AA")
	if !res.Has(core.EventInvalid) {
		t.Errorf("repeated AA = %v, expected invalid", res.Events)
	}
	if g.LastResult().Reason != RejectUsed {
		t.Errorf("LastResult().Reason = %q, expected already used", g.LastResult().Reason)
	}
}

func TestFullClearBonusThroughGame(t *testing.T) {
	g := newTestGame(t, ModeClassic, dictionary.New([]string{"aa"}), onlyLetter("A"))
	g.Step(1, 1)
	g.Step(2, 1)

	res := submit(g, "AA")
	if !res.Has(core.EventBonus) || res.State.Score != 4 {
		t.Errorf("AA on AA = %v score %d, expected bonus score 4", res.Events, res.State.Score)
	}
	if h := g.History(); len(h) != 1 || !h[0].Bonus {
		t.Errorf("History() = %+v, expected one bonus entry", h)
	}
}

// fastFall makes letters expire on their first step.
func fastFall(lives int) func(*config.Letterfall) {
	return func(c *config.Letterfall) {
		c.Letters.SpawnRate = 1
		c.Letters.Speed = 100
		c.Rules.Lives = lives
	}
}

func TestLastLifeEndsGameOnce(t *testing.T) {
	g := newTestGame(t, ModeClassic, testWords, fastFall(1))

	res := g.Step(1, 1)
	if !res.State.GameOver || res.State.Lives != 0 {
		t.Fatalf("State = %+v, expected game over with 0 lives", res.State)
	}
	gameOvers := 0
	for _, ev := range res.Events {
		if ev == core.EventGameOver {
			gameOvers++
		}
	}
	if gameOvers != 1 {
		t.Errorf("%d game-over events, expected 1", gameOvers)
	}

	for tick := uint64(2); tick < 10; tick++ {
		if res := g.Step(tick, 1); len(res.Events) != 0 {
			t.Errorf("Step(%d) after game over raised %v", tick, res.Events)
		}
	}
	if g.State().Tick != 1 {
		t.Errorf("Tick = %d, steps after game over should not advance it", g.State().Tick)
	}

	if res := submit(g, "CAT"); len(res.Events) != 0 || res.State.Score != 0 {
		t.Errorf("input after game over = %+v, expected no-op", res)
	}
}

func TestOneLifeLostPerExpiredLetter(t *testing.T) {
	g := newTestGame(t, ModeClassic, testWords, func(c *config.Letterfall) {
		c.Letters.SpawnRate = 1
		c.Letters.Speed = 30
		c.Rules.Lives = 1000
	})

	spawned, lost := 0, 0
	for tick := uint64(1); tick <= 50; tick++ {
		res := g.Step(tick, 1)
		spawned++
		for _, ev := range res.Events {
			if ev == core.EventInvalid {
				lost++
			}
		}
	}

	reaped := spawned - len(g.Letters())
	if lost != reaped {
		t.Errorf("%d lives lost for %d expired letters", lost, reaped)
	}
	if g.State().Lives != 1000-lost {
		t.Errorf("Lives = %d, expected %d", g.State().Lives, 1000-lost)
	}
}

func TestClaimedLettersCostNoLife(t *testing.T) {
	g := newTestGame(t, ModeClassic, dictionary.New([]string{"a"}), func(c *config.Letterfall) {
		onlyLetter("A")(c)
		c.Letters.KeepClaimed = true
		c.Letters.SpawnRate = 1000
		c.Letters.Speed = 10
	})

	g.Step(1000, 1)
	submit(g, "A")

	letters := g.Letters()
	if len(letters) != 1 || letters[0].Active {
		t.Fatalf("Letters() = %+v, expected one claimed letter still falling", letters)
	}

	for tick := uint64(1001); tick < 1010; tick++ {
		if res := g.Step(tick, 1); res.Has(core.EventInvalid) {
			t.Fatalf("claimed letter cost a life at tick %d", tick)
		}
	}
	if len(g.Letters()) != 0 {
		t.Error("claimed letter should be reaped at the boundary")
	}
	if g.State().Lives != 3 {
		t.Errorf("Lives = %d, expected 3", g.State().Lives)
	}
}

func TestResetRoundTrip(t *testing.T) {
	g := newTestGame(t, ModeClassic, dictionary.New([]string{"a"}), onlyLetter("A"))
	for tick := uint64(1); tick <= 5; tick++ {
		g.Step(tick, 1)
	}
	submit(g, "A")
	g.HandleInput(core.EditFrame("AAA"))

	g.Reset(testRuntime)

	state := g.State()
	if state.Score != 0 || state.Lives != 3 || state.Buffer != "" || state.GameOver || state.Tick != 0 {
		t.Errorf("State() after Reset = %+v", state)
	}
	if len(g.Letters()) != 0 || len(g.History()) != 0 || g.Focus().Len() != 0 {
		t.Error("Reset() should clear letters, history and focus")
	}
	if g.LastResult().Word != "" {
		t.Error("Reset() should clear the last result")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, ModeClassic, testWords, nil)
	g2 := newTestGame(t, ModeClassic, testWords, nil)

	for tick := uint64(1); tick <= 2000; tick++ {
		mult := 1 + float64(tick%5)/10
		g1.Step(tick, mult)
		g2.Step(tick, mult)
	}

	l1, l2 := g1.Letters(), g2.Letters()
	if len(l1) != len(l2) {
		t.Fatalf("letter count mismatch: %d vs %d", len(l1), len(l2))
	}
	for i := range l1 {
		if l1[i] != l2[i] {
			t.Errorf("letter %d mismatch: %+v vs %+v", i, l1[i], l2[i])
		}
	}
	if g1.State() != g2.State() {
		t.Errorf("state mismatch: %+v vs %+v", g1.State(), g2.State())
	}
}

func TestZenModeHasNoLives(t *testing.T) {
	g := newTestGame(t, ModeZen, testWords, fastFall(3))

	for tick := uint64(1); tick <= 20; tick++ {
		if res := g.Step(tick, 1); len(res.Events) != 0 {
			t.Fatalf("zen Step(%d) raised %v", tick, res.Events)
		}
	}
	state := g.State()
	if state.GameOver || state.Lives != -1 {
		t.Errorf("zen State() = %+v, expected no lives and no game over", state)
	}
	if g.Config().Rules.Scoring != config.ScoringLength {
		t.Errorf("zen scoring = %q, expected length", g.Config().Rules.Scoring)
	}
}

func TestStrictModeRules(t *testing.T) {
	g := newTestGame(t, ModeStrict, testWords, nil)
	if !g.Config().Rules.RequireLetters {
		t.Error("strict mode should require letters")
	}

	res := submit(g, "CAT")
	if !res.Has(core.EventInvalid) || g.LastResult().Reason != RejectNotOnBoard {
		t.Errorf("strict CAT on an empty board = %v (%q)", res.Events, g.LastResult().Reason)
	}
}

func TestConfigureRejectsInvalid(t *testing.T) {
	cfg := config.DefaultLetterfall()
	cfg.Letters.SpawnRate = 0
	if err := New(ModeClassic).Configure(cfg); err == nil {
		t.Error("Configure() should reject spawn_rate 0")
	}
}

func TestFlashDecays(t *testing.T) {
	g := newTestGame(t, ModeClassic, testWords, func(c *config.Letterfall) {
		c.Feedback.FlashTicks = 2
	})

	submit(g, "QQQ")
	if g.flash != core.EventInvalid {
		t.Fatalf("flash = %v, expected invalid", g.flash)
	}
	g.Step(1, 1)
	if g.flash != core.EventInvalid {
		t.Error("flash should last two ticks")
	}
	g.Step(2, 1)
	if g.flash != core.EventNone {
		t.Errorf("flash = %v after two ticks, expected none", g.flash)
	}
}

func TestModesRegistered(t *testing.T) {
	for _, m := range Modes() {
		if !registry.Exists(string(m)) {
			t.Errorf("mode %s not registered", m)
			continue
		}
		g, err := registry.Create(string(m))
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", m, err)
		}
		if g.ID() != string(m) || g.Title() != m.Title() {
			t.Errorf("Create(%s) = %s %q", m, g.ID(), g.Title())
		}
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer SetDifficultyPreset("")

	SetDifficultyPreset("hard")
	if difficultyPreset != config.DifficultyHard {
		t.Errorf("difficultyPreset = %q, expected hard", difficultyPreset)
	}
	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Errorf("difficultyPreset = %q, expected unset", difficultyPreset)
	}
}

func TestSetOracleMidSession(t *testing.T) {
	g := newTestGame(t, ModeClassic, dictionary.New([]string{"aa"}), onlyLetter("A"))
	for tick := uint64(1); tick <= 3; tick++ {
		g.Step(tick, 1)
	}
	if res := submit(g, "A"); g.LastResult().Reason != RejectUnknown {
		t.Errorf("A before swap = %v %q, expected not a word", res.Events, g.LastResult().Reason)
	}
	if res := submit(g, "AA"); res.State.Score != 2 {
		t.Errorf("AA score = %d, expected 2", res.State.Score)
	}

	g.SetOracle(dictionary.New([]string{"a"}))
	res := g.Step(4, 1)
	if res.State.Score != 2 {
		t.Errorf("Score after SetOracle = %d, expected 2 kept", res.State.Score)
	}

	res = submit(g, "A")
	if !res.Has(core.EventValid) || res.State.Score != 3 {
		t.Errorf("A after swap = %v score %d, expected valid score 3", res.Events, res.State.Score)
	}
}

func TestSetOracleBeforeConfigure(t *testing.T) {
	g := New(ModeClassic)
	g.SetOracle(dictionary.New([]string{"a"}))

	res := g.Step(1, 1)
	if len(res.Events) != 0 || res.State.Tick != 0 {
		t.Errorf("Step before Reset = %+v, expected no-op", res)
	}
	if res := submit(g, "A"); len(res.Events) != 0 {
		t.Errorf("input before Reset = %v, expected no-op", res.Events)
	}
}

func writeWords(t *testing.T, words string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(words), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestConfigureReloadsDictionary(t *testing.T) {
	first := writeWords(t, "aa\n")
	second := writeWords(t, "a\n")

	g := New(ModeClassic)
	play := func(path string) Result {
		cfg := config.DefaultLetterfall()
		onlyLetter("A")(&cfg)
		cfg.Dictionary.Path = path
		if err := g.Configure(cfg); err != nil {
			t.Fatalf("Configure(%s) failed: %v", path, err)
		}
		g.Reset(testRuntime)
		for tick := uint64(1); tick <= 3; tick++ {
			g.Step(tick, 1)
		}
		submit(g, "AA")
		return g.LastResult()
	}

	if res := play(first); res.Event != core.EventValid {
		t.Errorf("AA with first list = %+v, expected valid", res)
	}
	if res := play(second); res.Reason != RejectUnknown {
		t.Errorf("AA with second list = %+v, expected not a word", res)
	}
}

func TestResetReportsConfigError(t *testing.T) {
	defer SetConfigPath("")
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	g := New(ModeClassic)
	g.SetOracle(testWords)
	g.Reset(testRuntime)

	if g.Err() == nil {
		t.Errorf("Err() = nil, expected load error")
	}
	if g.Config().Rules != config.DefaultLetterfall().Rules {
		t.Errorf("Config().Rules = %+v, expected defaults", g.Config().Rules)
	}
	if res := g.Step(1, 1); res.State.Tick != 1 {
		t.Errorf("Step(1) Tick = %d, expected fallback game to run", res.State.Tick)
	}

	g.Reset(testRuntime)
	if g.Err() != nil {
		t.Errorf("Err() = %v after configured Reset, expected nil", g.Err())
	}
}

func TestModeDescribe(t *testing.T) {
	base := config.DefaultLetterfall().Rules
	tests := []struct {
		mode     Mode
		expected string
	}{
		{ModeClassic, "3 lives, 1 point per letter, x2 on a full-board clear"},
		{ModeStrict, "3 lives, 1 point per letter, x2 on a full-board clear, letters must be on the board"},
		{ModeZen, "no lives, 1 point per letter"},
	}
	for _, tt := range tests {
		if got := tt.mode.Describe(base); got != tt.expected {
			t.Errorf("%s.Describe() = %q, expected %q", tt.mode, got, tt.expected)
		}
	}

	base.Lives = 1
	base.Scoring = config.ScoringFlat
	if got := ModeClassic.Describe(base); got != "1 life, 1 point per word" {
		t.Errorf("Describe(1 life, flat) = %q", got)
	}
	if r := ModeZen.Rules(base); r.Lives != 0 || r.Scoring != config.ScoringLength {
		t.Errorf("ModeZen.Rules() = %+v, expected no lives and length scoring", r)
	}
}
