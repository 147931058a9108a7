package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionSubmit              // Enter - submit guess / check answer
	ActionErase               // Backspace - remove input
	ActionPlay                // Space - play the entered melody
	ActionHint                // Tab - play the answer
	ActionRestart             // Ctrl+R - start a new round
	ActionBack                // Esc - back to menu
	ActionQuit                // Ctrl+C - exit
	ActionOperatorNew         // Ctrl+N - operator: set a new target
	ActionOperatorExit        // Ctrl+X - operator: leave operator mode
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionSubmit:
		return "Submit"
	case ActionErase:
		return "Erase"
	case ActionPlay:
		return "Play"
	case ActionHint:
		return "Hint"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionOperatorNew:
		return "OperatorNew"
	case ActionOperatorExit:
		return "OperatorExit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input received during one platform tick.
// Actions are flags; Runes keeps typed characters in arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Runes   []rune

	// order records actions and runes as they arrived so games can
	// replay them one event at a time.
	order []Event
}

// Event is a single input event: either an action or a typed rune.
type Event struct {
	Action Action
	Rune   rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.order = append(f.order, Event{Action: a})
}

// Type records a typed character.
func (f *InputFrame) Type(r rune) {
	f.Runes = append(f.Runes, r)
	f.order = append(f.order, Event{Rune: r})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Events returns every action and rune of the frame in arrival order.
func (f InputFrame) Events() []Event {
	return f.order
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.order) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Runes = f.Runes[:0]
	f.order = f.order[:0]
}
