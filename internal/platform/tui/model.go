package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/registry"
)

// Rows below the play-field: input box and help line.
const footerLines = 2

// Sound plays a cue for a feedback event.
type Sound interface {
	Play(ev core.Event)
}

// Options configures a game host.
type Options struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger     // nil discards logs
	Sound   Sound           // nil plays nothing
	Time    core.TimeSource // nil uses the system clock
}

// Result tells the caller how a game ended.
type Result struct {
	Back    bool // Player asked to return to the menu
	Score   int
	History []core.Submission
}

// Model is the Bubble Tea model hosting one game.
// It uses pointer receivers because the frame clock calls back into it.
type Model struct {
	game    registry.Game
	clock   *core.FrameClock
	screen  *core.Screen
	input   textinput.Model
	help    help.Model
	keys    KeyMap
	summary table.Model
	logger  *log.Logger
	sound   Sound

	config    core.RuntimeConfig
	fixedSeed bool // Seed came from the command line; keep it on restart
	sessionID string
	startedAt time.Time
	endedAt   time.Time

	state       core.GameState
	paused      bool
	showSummary bool
	quitting    bool
	back        bool
	width       int
	height      int
	err         error
}

// NewModel creates a host for game.
func NewModel(game registry.Game, opts Options) *Model {
	cfg := opts.Runtime
	fixedSeed := cfg.Seed != 0
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a word, enter to submit"
	ti.CharLimit = 32
	ti.Focus()

	h := help.New()
	h.ShowAll = false

	return &Model{
		game:      game,
		clock:     core.NewFrameClock(opts.Time),
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerLines),
		input:     ti,
		help:      h,
		keys:      DefaultKeyMap(),
		logger:    logger,
		sound:     opts.Sound,
		config:    cfg,
		fixedSeed: fixedSeed,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
}

// Init starts the first session and the poll loop.
func (m *Model) Init() tea.Cmd {
	m.start()
	if m.err != nil {
		return tea.Quit
	}
	return tea.Batch(textinput.Blink, pollCmd(m.config.TickRate))
}

// start resets the game and starts the clock.
func (m *Model) start() {
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.sessionID = uuid.NewString()
	m.startedAt = m.clock.Now()
	m.paused = false
	m.showSummary = false
	m.input.Reset()
	m.input.Focus()

	if err := m.clock.Start(m.onTick, m.config.TickRate); err != nil {
		m.err = fmt.Errorf("tui: %w", err)
		return
	}
	m.logger.Info("session started",
		"session", m.sessionID,
		"mode", m.game.ID(),
		"seed", m.config.Seed,
		"fps", m.config.TickRate,
	)
}

func (m *Model) restart() {
	m.clock.Stop()
	if !m.state.GameOver {
		m.logger.Info("session abandoned", "session", m.sessionID, "score", m.state.Score)
	}
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.start()
}

// onTick is the frame clock callback.
func (m *Model) onTick(tick uint64, multiplier float64) {
	m.apply(m.game.Step(tick, multiplier))
}

// apply records a step result and reacts to its events.
func (m *Model) apply(res core.StepResult) {
	m.state = res.State
	for _, ev := range res.Events {
		if m.sound != nil {
			m.sound.Play(ev)
		}
		if ev == core.EventGameOver {
			m.finish()
		}
	}
}

// finish stops the clock and prepares the end-of-game summary.
func (m *Model) finish() {
	m.clock.Stop()
	m.input.Blur()
	m.endedAt = m.clock.Now()

	history := m.game.History()
	m.summary = newSummaryTable(history, m.width, m.height)
	m.logger.Info("game over",
		"session", m.sessionID,
		"score", m.state.Score,
		"words", len(history),
		"duration", m.endedAt.Sub(m.startedAt).Round(time.Second),
	)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case TickMsg:
		m.clock.Frame(m.clock.Now())
		return m, pollCmd(m.config.TickRate)
	}

	// Cursor blink and other input box messages
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.clock.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.restart()
		return m, nil
	}

	if m.state.GameOver {
		return m.handleGameOverKey(msg)
	}

	if m.paused {
		switch {
		case key.Matches(msg, m.keys.Pause):
			m.resume()
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.pause()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.input.Reset()
		in := core.NewInputFrame()
		in.Set(core.ActionClear)
		m.apply(m.game.HandleInput(in))
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		m.apply(m.game.HandleInput(core.EditFrame(value)))
	}
	return m, cmd
}

func (m *Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Again):
		m.restart()
	case key.Matches(msg, m.keys.Summary):
		m.showSummary = !m.showSummary
	case key.Matches(msg, m.keys.Back):
		m.back = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		if m.showSummary {
			m.summary, cmd = m.summary.Update(msg)
		}
	}
	return m, cmd
}

func (m *Model) submit() {
	word := m.state.Buffer
	before := m.state.Score

	in := core.NewInputFrame()
	in.Set(core.ActionSubmit)
	res := m.game.HandleInput(in)
	m.input.Reset()
	m.apply(res)

	switch {
	case res.Has(core.EventValid), res.Has(core.EventBonus):
		m.logger.Info("word accepted",
			"session", m.sessionID,
			"word", word,
			"points", res.State.Score-before,
			"bonus", res.Has(core.EventBonus),
		)
	case res.Has(core.EventInvalid):
		m.logger.Debug("word rejected", "session", m.sessionID, "word", word)
	}
}

func (m *Model) pause() {
	m.clock.Stop()
	m.paused = true
	m.input.Blur()
}

// resume restarts the clock. The tick counter starts over, so the spawn
// cadence restarts from the resume point.
func (m *Model) resume() {
	m.paused = false
	m.input.Focus()
	if err := m.clock.Start(m.onTick, m.config.TickRate); err != nil {
		m.err = fmt.Errorf("tui: %w", err)
	}
}

// handleResize processes window resize events. The game keeps its state;
// only the screen buffer changes.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerLines)
	m.help.Width = msg.Width
	if m.state.GameOver {
		m.summary = newSummaryTable(m.game.History(), m.width, m.height)
	}
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	if m.state.GameOver && m.showSummary {
		return m.summaryView()
	}

	m.game.Render(m.screen)
	if m.paused {
		mid := m.screen.Height() / 2
		m.screen.DrawTextCentered(mid, " PAUSED ")
		m.screen.DrawTextCentered(mid+1, " esc to resume ")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.currentHelp())))
	return b.String()
}

func (m *Model) currentHelp() help.KeyMap {
	switch {
	case m.state.GameOver:
		return gameOverHelp{m.keys}
	case m.paused:
		return pausedHelp{m.keys}
	default:
		return m.keys
	}
}

// State returns the last game state seen by the host.
func (m *Model) State() core.GameState {
	return m.state
}

// Paused reports whether the clock is stopped by the player.
func (m *Model) Paused() bool {
	return m.paused
}

// Err returns the error that stopped the host, if any.
func (m *Model) Err() error {
	return m.err
}

// Result summarizes how the game ended.
func (m *Model) Result() Result {
	return Result{
		Back:    m.back,
		Score:   m.state.Score,
		History: m.game.History(),
	}
}

// Run starts the Bubble Tea program for game and blocks until the player
// leaves.
func Run(game registry.Game, opts Options) (Result, error) {
	if opts.Runtime.TickRate <= 0 {
		return Result{}, fmt.Errorf("tui: tick rate must be positive, got %d", opts.Runtime.TickRate)
	}

	model := NewModel(game, opts)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(*Model)
	if !ok {
		return Result{}, nil
	}
	if m.Err() != nil {
		return m.Result(), m.Err()
	}
	return m.Result(), nil
}
