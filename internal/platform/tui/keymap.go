package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings while a game is running.
// Letters go to the input box, so every binding uses a non-printing key
// except the ones that only apply while paused or after game over.
type KeyMap struct {
	Submit  key.Binding
	Clear   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Again   key.Binding // Restart after game over
	Summary key.Binding
	Back    key.Binding // Leave while paused or after game over
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear},
		{k.Pause, k.Restart, k.Again},
		{k.Summary, k.Back, k.Quit},
	}
}

// pausedHelp is shown while the clock is stopped.
type pausedHelp struct{ k KeyMap }

func (h pausedHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Pause, h.k.Restart, h.k.Back, h.k.Quit}
}

func (h pausedHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// gameOverHelp is shown after the last life is lost.
type gameOverHelp struct{ k KeyMap }

func (h gameOverHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Again, h.k.Summary, h.k.Back, h.k.Quit}
}

func (h gameOverHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// DefaultKeyMap returns default game key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/resume"),
		),
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		Again: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Summary: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "words"),
		),
		Back: key.NewBinding(
			key.WithKeys("q", "b"),
			key.WithHelp("q/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
	}
}

// MenuKeyMap defines the key bindings for the mode picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}
