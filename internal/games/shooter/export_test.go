package shooter

import "github.com/vovakirdan/tui-shooter/internal/config"

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{pinned: &cfg, sounds: silent{}}
}

// PlaceEnemy puts an enemy of the given kind at (x, y).
func PlaceEnemy(g *Game, kind EnemyKind, x, y int) *Enemy {
	e := NewEnemy(kind, g.variants[kind], x)
	e.Y = y
	g.enemies = append(g.enemies, e)
	return &g.enemies[len(g.enemies)-1]
}

// PlaceBullet puts a bullet with its top-left corner at (x, y).
func PlaceBullet(g *Game, x, y int) {
	g.bullets = append(g.bullets, Bullet{
		X:     x,
		Y:     y,
		W:     g.cfg.Bullet.Width,
		H:     g.cfg.Bullet.Height,
		Speed: g.cfg.Bullet.Speed,
	})
}

// PlaceCoin drops a coin at (x, y).
func PlaceCoin(g *Game, x, y int) {
	g.drops = append(g.drops, Coin{
		X:     x,
		Y:     y,
		Size:  g.cfg.Coin.Size,
		Speed: g.cfg.Coin.Speed,
		Value: g.cfg.Coin.Value,
	})
}

// SetCoins overrides the balance.
func SetCoins(g *Game, n int) {
	g.loadout.Coins = n
}
