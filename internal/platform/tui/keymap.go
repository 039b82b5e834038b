package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Hold windows, in ticks. Terminals send no key-up events, so a movement
// key counts as held until its window runs out. The first press gets a
// longer window to bridge the keyboard's auto-repeat delay.
const (
	initialHoldTicks = 30
	holdTicks        = 6
)

// KeyMap defines the key bindings used while a game is running.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Shoot      key.Binding
	Shop       key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Shoot, k.Shop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Shoot},
		{k.Up, k.Down, k.Confirm},
		{k.Shop, k.Back, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Shoot: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "shoot"),
		),
		Shop: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab/esc", "shop"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns ActionNone for keys the game does not use.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Shoot):
		return core.ActionShoot
	case key.Matches(msg, k.Shop):
		return core.ActionShop
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HoldTracker turns repeated key presses into held actions.
type HoldTracker struct {
	tick  int
	until map[core.Action]int
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{until: make(map[core.Action]int)}
}

// Press records a key press for a holdable action. Pressing one direction
// releases the opposite one.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	default:
		return
	}

	window := initialHoldTicks
	if h.active(a) {
		window = holdTicks
	}
	if until := h.tick + window; until > h.until[a] {
		h.until[a] = until
	}
}

func (h *HoldTracker) active(a core.Action) bool {
	until, ok := h.until[a]
	return ok && until > h.tick
}

// Apply marks every action still inside its window as held on the frame,
// then advances the tracker by one tick.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, until := range h.until {
		if until > h.tick {
			frame.Hold(a)
		} else {
			delete(h.until, a)
		}
	}
	h.tick++
}

// Release drops every held action.
func (h *HoldTracker) Release() {
	clear(h.until)
}
