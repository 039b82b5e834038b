package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Coin drops from a destroyed enemy and falls toward the ship.
type Coin struct {
	X, Y  int
	Size  int
	Speed int
	Value int

	dead bool
}

// Rect returns the coin hitbox.
func (c *Coin) Rect() core.Rect {
	return core.NewRect(c.X, c.Y, c.Size, c.Size)
}

// Update moves the coin down one tick.
func (c *Coin) Update() {
	c.Y += c.Speed
}
