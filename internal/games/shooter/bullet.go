package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Bullet travels straight up from the ship.
// Damage is not stored here: hits read the session weapon at collision time.
type Bullet struct {
	X, Y  int
	W, H  int
	Speed int

	dead bool
}

// Rect returns the bullet hitbox.
func (b *Bullet) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Update moves the bullet up one tick.
func (b *Bullet) Update() {
	b.Y -= b.Speed
}

// OffScreen reports whether the bullet left the top of the world.
func (b *Bullet) OffScreen() bool {
	return b.Y < 0
}
