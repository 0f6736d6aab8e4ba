package core

// Action represents a semantic input action, abstracted from physical key presses.
// Games work with these intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionEdit           // Input box text changed; InputFrame.Text holds the raw value
	ActionSubmit         // Enter - commit the typed word
	ActionClear          // Ctrl+U - empty the typed word
	ActionRestart        // R after game over, Ctrl+R anytime
	ActionPause          // Esc - pause/resume the frame clock
	ActionQuit           // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionEdit:
		return "Edit"
	case ActionSubmit:
		return "Submit"
	case ActionClear:
		return "Clear"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input received between two game updates.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Text is the raw input box content, meaningful when ActionEdit is set.
	Text string
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// EditFrame returns a frame carrying a text change.
func EditFrame(text string) InputFrame {
	f := NewInputFrame()
	f.Set(ActionEdit)
	f.Text = text
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and text for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = ""
}
