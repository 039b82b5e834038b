package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Player is the ship controlled by the user.
// Speed, MaxHP and ShootDelay are upgrade-derived and survive Reset.
type Player struct {
	X, Y, W, H int
	Speed      int
	HP, MaxHP  int
	ShootDelay int // ticks between shots; <= 0 means no cooldown

	lastShot int
	fired    bool

	startX, startY int
	worldW         int
	clamp          bool
}

// NewPlayer creates a ship at its start position with full health.
func NewPlayer(cfg config.PlayerConfig, world config.WorldConfig) *Player {
	p := &Player{
		W:          cfg.Width,
		H:          cfg.Height,
		Speed:      cfg.Speed,
		MaxHP:      cfg.HP,
		ShootDelay: cfg.ShootDelay,
		startX:     world.Width / 2,
		startY:     world.Height - cfg.BottomOffset,
		worldW:     world.Width,
		clamp:      cfg.ClampToWorld,
	}
	p.Reset()
	return p
}

// Rect returns the ship's hitbox.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Update moves the ship horizontally according to held input.
func (p *Player) Update(in core.InputFrame) {
	if in.Holding(core.ActionLeft) {
		p.X -= p.Speed
	}
	if in.Holding(core.ActionRight) {
		p.X += p.Speed
	}
	if p.clamp {
		p.X = core.Clamp(p.X, 0, max(p.worldW-p.W, 0))
	}
}

// TakeDamage subtracts n hit points. HP never drops below zero.
func (p *Player) TakeDamage(n int) {
	p.HP = max(p.HP-n, 0)
}

// Alive reports whether the ship has hit points left.
func (p *Player) Alive() bool {
	return p.HP > 0
}

// CanShoot reports whether the cooldown allows a shot at the given tick.
func (p *Player) CanShoot(tick int) bool {
	return !p.fired || p.ShootDelay <= 0 || tick-p.lastShot >= p.ShootDelay
}

// markShot starts the cooldown.
func (p *Player) markShot(tick int) {
	p.lastShot = tick
	p.fired = true
}

// Muzzle returns where new bullets appear: horizontal center, top edge.
func (p *Player) Muzzle() (x, y int) {
	return p.X + p.W/2, p.Y
}

// Reset puts the ship back at its start position with HP = MaxHP.
func (p *Player) Reset() {
	p.X = p.startX
	p.Y = p.startY
	p.HP = p.MaxHP
	p.lastShot = 0
	p.fired = false
}
