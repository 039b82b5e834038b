package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move ship left (held)
	ActionRight          // Right arrow, D - move ship right (held)
	ActionUp             // Up arrow, W - menu/shop cursor up
	ActionDown           // Down arrow, S - menu/shop cursor down
	ActionShoot          // Space - fire
	ActionShop           // Esc, Tab - open/close the shop
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B - leave a modal screen
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionShoot:
		return "Shoot"
	case ActionShop:
		return "Shop"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input for one simulation tick.
// Pressed holds discrete events that fired this tick; Held holds actions whose
// key is currently down (movement).
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// Holding returns true if the action is held or was pressed this frame.
func (f InputFrame) Holding(a Action) bool {
	return f.Held[a] || f.Pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Pressed {
		c.Pressed[k] = v
	}
	for k, v := range f.Held {
		c.Held[k] = v
	}
	return c
}
