package letterfall

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/dictionary"
	"github.com/vovakirdan/letterfall/internal/registry"
)

// Mode selects a named rule set.
type Mode string

const (
	ModeClassic Mode = "classic" // Lives and full-board bonus
	ModeStrict  Mode = "strict"  // Classic, but every letter must be on the board
	ModeZen     Mode = "zen"     // No lives, length scoring
)

// Modes lists every mode in menu order.
func Modes() []Mode {
	return []Mode{ModeClassic, ModeStrict, ModeZen}
}

// Title returns the display name of the mode.
func (m Mode) Title() string {
	switch m {
	case ModeStrict:
		return "Letterfall (Strict)"
	case ModeZen:
		return "Letterfall (Zen)"
	default:
		return "Letterfall"
	}
}

// Rules returns base with the mode's overrides applied.
func (m Mode) Rules(base config.Rules) config.Rules {
	return m.apply(base)
}

// Describe summarizes lives and scoring for the mode played under base.
func (m Mode) Describe(base config.Rules) string {
	r := m.apply(base)

	lives := "no lives"
	switch {
	case r.Lives == 1:
		lives = "1 life"
	case r.Lives > 1:
		lives = fmt.Sprintf("%d lives", r.Lives)
	}

	var scoring string
	switch r.Scoring {
	case config.ScoringFlat:
		scoring = "1 point per word"
	case config.ScoringLength:
		scoring = "1 point per letter"
	default:
		scoring = fmt.Sprintf("1 point per letter, x%d on a full-board clear", r.BonusMultiplier)
	}

	out := lives + ", " + scoring
	if r.RequireLetters {
		out += ", letters must be on the board"
	}
	return out
}

// apply adjusts loaded rules for the mode.
func (m Mode) apply(rules config.Rules) config.Rules {
	switch m {
	case ModeStrict:
		rules.RequireLetters = true
	case ModeZen:
		rules.Lives = 0
		rules.Scoring = config.ScoringLength
	}
	return rules
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// wordList replaces the configured dictionary when set via CLI
var wordList dictionary.Oracle

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetDictionary sets the word list used by games created afterwards.
func SetDictionary(o dictionary.Oracle) {
	wordList = o
}

// Game wires pool, matcher and session into the tick and input API.
type Game struct {
	mode       Mode
	cfg        config.Letterfall
	configured bool
	explicit   dictionary.Oracle // Set by SetOracle, wins over config
	oracle     dictionary.Oracle
	runtime    core.RuntimeConfig
	err        error

	rng     *rand.Rand
	pool    *Pool
	session *Session

	focus  FocusSet
	buffer string
	tick   uint64

	flash      core.Event // Last feedback event, shown on the border
	flashTicks int
	last       Result // Last submission, shown in the status line
}

// New creates a game in the given mode. Unknown modes play classic rules.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.mode.Title()
}

// Mode returns the rule set the game plays.
func (g *Game) Mode() Mode {
	return g.mode
}

// SetOracle overrides the dictionary for this game. A running session keeps
// its score and checks later submissions against o. A nil o restores the
// configured dictionary.
func (g *Game) SetOracle(o dictionary.Oracle) {
	g.explicit = o
	if !g.configured {
		return
	}
	oracle, err := g.resolveOracle(g.cfg)
	if err != nil {
		g.err = err
		return
	}
	g.oracle = oracle
	if g.session != nil {
		g.session.SetOracle(oracle)
	}
}

// Configure validates cfg with the mode's rules applied and builds the
// session components from it. The dictionary is resolved again on every
// call, so a changed dictionary path takes effect.
func (g *Game) Configure(cfg config.Letterfall) error {
	cfg.Rules = g.mode.apply(cfg.Rules)
	if err := cfg.Validate(); err != nil {
		return err
	}

	oracle, err := g.resolveOracle(cfg)
	if err != nil {
		return err
	}

	g.oracle = oracle
	g.cfg = cfg
	g.configured = true
	return g.rebuild()
}

func (g *Game) resolveOracle(cfg config.Letterfall) (dictionary.Oracle, error) {
	switch {
	case g.explicit != nil:
		return g.explicit, nil
	case wordList != nil:
		return wordList, nil
	case cfg.Dictionary.Path != "":
		list, err := dictionary.Load(cfg.Dictionary.Path)
		if err != nil {
			return nil, fmt.Errorf("letterfall: %w", err)
		}
		return list, nil
	default:
		return dictionary.Default(), nil
	}
}

// Config returns the effective configuration.
func (g *Game) Config() config.Letterfall {
	return g.cfg
}

// Reset starts a new session. The first call loads the configuration unless
// Configure was called before. Load or setup failures fall back to the
// defaults and are reported by Err.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.err = nil

	if !g.configured {
		cfg, err := config.Load(configPath)
		if err != nil {
			g.err = fmt.Errorf("letterfall: load config: %w", err)
			cfg = config.DefaultLetterfall()
		}

		// Apply difficulty preset if set
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}

		if err := g.Configure(cfg); err != nil {
			g.err = errors.Join(g.err, err)
			if err := g.Configure(config.DefaultLetterfall()); err != nil {
				g.err = errors.Join(g.err, err)
			}
		}
		return
	}

	if err := g.rebuild(); err != nil {
		g.err = err
	}
}

// Err returns the setup error from the last Reset or SetOracle, if any.
func (g *Game) Err() error {
	return g.err
}

// rebuild reseeds the rng and clears all session state.
func (g *Game) rebuild() error {
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))

	weights, err := g.cfg.Letters.LetterWeights()
	if err != nil {
		return err
	}
	src, err := NewSource(g.rng, weights)
	if err != nil {
		return err
	}
	pool, err := NewPool(g.cfg.Field, g.cfg.Letters.Speed, src, g.rng, g.cfg.Letters.KeepClaimed)
	if err != nil {
		return err
	}
	g.pool = pool

	if g.session == nil || g.session.Rules() != g.cfg.Rules {
		g.session = NewSession(g.cfg.Rules, g.oracle)
	} else {
		g.session.SetOracle(g.oracle)
		g.session.Reset()
	}

	g.focus = FocusSet{}
	g.buffer = ""
	g.tick = 0
	g.flash = core.EventNone
	g.flashTicks = 0
	g.last = Result{}
	return nil
}

// Step advances the simulation by one clock tick: spawn on cadence, fall,
// refocus, then reap expired letters.
func (g *Game) Step(tick uint64, multiplier float64) core.StepResult {
	if g.pool == nil || g.session == nil || g.session.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	g.tick = tick
	g.decayFlash()

	if tick%uint64(g.cfg.Letters.SpawnRate) == 0 {
		g.pool.Spawn()
	}
	g.pool.Advance(multiplier)
	g.refocus()

	var events []core.Event
	for _, l := range g.pool.ReapExpired() {
		g.focus.Remove(l.ID)
		if l.Active {
			events = append(events, g.session.LoseLife()...)
		}
	}

	g.noteEvents(events)
	return core.StepResult{State: g.State(), Events: events}
}

// HandleInput applies buffer edits and submissions. Input is ignored after
// game over.
func (g *Game) HandleInput(in core.InputFrame) core.StepResult {
	if g.pool == nil || g.session == nil || g.session.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if in.Has(core.ActionEdit) {
		g.buffer = NormalizeWord(in.Text)
		g.refocus()
	}
	if in.Has(core.ActionClear) {
		g.buffer = ""
		g.refocus()
	}
	if in.Has(core.ActionSubmit) {
		res := g.session.SubmitWord(g.buffer, g.focus, g.pool)
		g.last = res
		if res.Event != core.EventNone {
			events = append(events, res.Event)
		}
		g.buffer = ""
		g.refocus()
	}

	g.noteEvents(events)
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) refocus() {
	g.focus = Match(g.buffer, g.pool.Letters())
}

func (g *Game) noteEvents(events []core.Event) {
	if len(events) == 0 {
		return
	}
	g.flash = events[len(events)-1]
	g.flashTicks = g.cfg.Feedback.FlashTicks
}

func (g *Game) decayFlash() {
	if g.flashTicks == 0 {
		return
	}
	g.flashTicks--
	if g.flashTicks == 0 {
		g.flash = core.EventNone
	}
}

// Letters returns every letter with its focus state, in spawn order.
func (g *Game) Letters() []LetterView {
	if g.pool == nil {
		return nil
	}
	letters := g.pool.Letters()
	out := make([]LetterView, len(letters))
	for i, l := range letters {
		out[i] = LetterView{
			ID:      l.ID,
			Char:    l.Char,
			X:       l.X,
			Y:       l.Y,
			Active:  l.Active,
			Focused: g.focus.Has(l.ID),
		}
	}
	return out
}

// Focus returns the letters matched by the current buffer.
func (g *Game) Focus() FocusSet {
	return g.focus
}

// LastResult returns the outcome of the most recent submission.
func (g *Game) LastResult() Result {
	return g.last
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	lives := g.session.Lives()
	if !g.session.Rules().HasLives() {
		lives = -1
	}
	return core.GameState{
		Score:    g.session.Score(),
		Lives:    lives,
		Buffer:   g.buffer,
		Tick:     g.tick,
		GameOver: g.session.IsGameOver(),
	}
}

// History returns the accepted submissions of the current session.
func (g *Game) History() []core.Submission {
	if g.session == nil {
		return nil
	}
	return g.session.History()
}

func init() {
	for _, m := range Modes() {
		registry.Register(string(m), func() registry.Game {
			return New(m)
		})
	}
}
