package letterfall

import (
	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/dictionary"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhasePlaying  Phase = iota
	PhaseGameOver       // Terminal until Reset
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Board is the part of the pool a submission needs.
type Board interface {
	ActiveCount() int
	Deactivate(id LetterID) bool
	CanSpell(word string) bool
}

// RejectReason explains why a submission scored nothing.
type RejectReason string

const (
	RejectNone       RejectReason = ""
	RejectEmpty      RejectReason = "empty"
	RejectUsed       RejectReason = "already used"
	RejectUnknown    RejectReason = "not a word"
	RejectNotOnBoard RejectReason = "letters not on board"
)

// Result is the outcome of one submission.
type Result struct {
	Word    string
	Event   core.Event // EventValid, EventBonus, EventInvalid, or EventNone after game over
	Points  int
	Claimed int
	Reason  RejectReason
}

// Session holds score, lives and used words, and applies the scoring rules.
type Session struct {
	rules   config.Rules
	oracle  dictionary.Oracle
	score   int
	lives   int
	used    map[string]struct{}
	history []core.Submission
	phase   Phase
}

// NewSession creates a session in the playing phase.
func NewSession(rules config.Rules, oracle dictionary.Oracle) *Session {
	s := &Session{rules: rules, oracle: oracle}
	s.Reset()
	return s
}

// Reset restores the initial state. Valid in any phase.
func (s *Session) Reset() {
	s.score = 0
	s.lives = s.rules.Lives
	s.used = make(map[string]struct{})
	s.history = nil
	s.phase = PhasePlaying
}

// SetOracle swaps the dictionary used by later submissions.
func (s *Session) SetOracle(oracle dictionary.Oracle) {
	s.oracle = oracle
}

// SubmitWord evaluates a normalized word against the focused letters.
// Accepted words deactivate every focused letter through board.
func (s *Session) SubmitWord(word string, focused FocusSet, board Board) Result {
	if s.phase != PhasePlaying {
		return Result{Word: word, Event: core.EventNone}
	}

	word = NormalizeWord(word)
	reject := func(reason RejectReason) Result {
		return Result{Word: word, Event: core.EventInvalid, Reason: reason}
	}

	switch {
	case word == "":
		return reject(RejectEmpty)
	case s.HasUsed(word):
		return reject(RejectUsed)
	case s.oracle == nil || !s.oracle.IsValid(word):
		return reject(RejectUnknown)
	case s.rules.RequireLetters && (board == nil || !board.CanSpell(word)):
		return reject(RejectNotOnBoard)
	}

	active := 0
	if board != nil {
		active = board.ActiveCount()
	}
	fullClear := focused.Len() == active
	bonus := s.rules.Scoring == config.ScoringBonus &&
		fullClear && focused.Len() >= s.rules.MinBonusLetters

	points := s.points(word, bonus)
	s.score += points
	s.used[word] = struct{}{}

	claimed := 0
	if board != nil {
		for _, id := range focused.IDs() {
			if board.Deactivate(id) {
				claimed++
			}
		}
	}
	s.history = append(s.history, core.Submission{
		Word:    word,
		Points:  points,
		Bonus:   bonus,
		Letters: claimed,
	})

	event := core.EventValid
	if bonus {
		event = core.EventBonus
	}
	return Result{Word: word, Event: event, Points: points, Claimed: claimed}
}

func (s *Session) points(word string, bonus bool) int {
	switch s.rules.Scoring {
	case config.ScoringFlat:
		return 1
	case config.ScoringBonus:
		if bonus {
			return len(word) * s.rules.BonusMultiplier
		}
	}
	return len(word)
}

// LoseLife charges one life for an expired letter. Returns the events raised:
// EventInvalid, plus EventGameOver on the transition to game over. Without a
// lives system, or once the game is over, nothing happens.
func (s *Session) LoseLife() []core.Event {
	if s.phase != PhasePlaying || !s.rules.HasLives() {
		return nil
	}

	s.lives = max(s.lives-1, 0)
	events := []core.Event{core.EventInvalid}
	if s.lives == 0 {
		s.phase = PhaseGameOver
		events = append(events, core.EventGameOver)
	}
	return events
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.lives
}

// Rules returns the active rules.
func (s *Session) Rules() config.Rules {
	return s.rules
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// IsGameOver reports whether the session has ended.
func (s *Session) IsGameOver() bool {
	return s.phase == PhaseGameOver
}

// HasUsed reports whether word was already accepted this session.
func (s *Session) HasUsed(word string) bool {
	_, ok := s.used[word]
	return ok
}

// UsedCount returns the number of accepted words.
func (s *Session) UsedCount() int {
	return len(s.used)
}

// History returns the accepted submissions in order.
func (s *Session) History() []core.Submission {
	out := make([]core.Submission, len(s.history))
	copy(out, s.history)
	return out
}
