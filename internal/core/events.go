package core

// Event is a discrete feedback cue raised by the simulation for the
// presentation layer (flash a border, play a tone).
type Event int

const (
	EventNone     Event = iota
	EventValid          // Word accepted
	EventInvalid        // Word rejected or a life was lost
	EventBonus          // Word accepted and cleared the whole board
	EventGameOver       // Last life lost
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventValid:
		return "valid"
	case EventInvalid:
		return "invalid"
	case EventBonus:
		return "bonus"
	case EventGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}
