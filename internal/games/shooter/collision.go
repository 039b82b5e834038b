package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// resolveBulletHits lets every live bullet hit at most one enemy.
// Damage comes from the weapon as it is now, not as it was when fired.
func (g *Game) resolveBulletHits() {
	damage := g.loadout.Weapon.Damage

	for i := range g.bullets {
		b := &g.bullets[i]
		if b.dead {
			continue
		}
		for j := range g.enemies {
			e := &g.enemies[j]
			if e.dead || !core.Overlaps(b.Rect(), e.Rect()) {
				continue
			}
			b.dead = true
			g.emit(Event{Kind: EventBulletHit, Enemy: e.Kind, Amount: damage})
			if e.Hit(damage) {
				g.destroy(e)
			}
			break
		}
	}
}

// destroy removes a shot-down enemy, drops its coin and scores the kill.
func (g *Game) destroy(e *Enemy) {
	e.dead = true
	g.score++
	if !e.IsBoss() {
		g.killsSinceBoss++
	}
	g.emit(Event{Kind: EventEnemyDestroyed, Enemy: e.Kind, Amount: g.score})

	g.drops = append(g.drops, Coin{
		X:     e.X + e.W/2,
		Y:     e.Y,
		Size:  g.cfg.Coin.Size,
		Speed: g.cfg.Coin.Speed,
		Value: g.cfg.Coin.Value,
	})
	g.emit(Event{Kind: EventCoinDropped, Enemy: e.Kind})
}

// resolveRams removes every enemy touching the ship and damages it once per enemy.
func (g *Game) resolveRams() {
	p := g.loadout.Player
	pr := p.Rect()

	for j := range g.enemies {
		e := &g.enemies[j]
		if e.dead || !core.Overlaps(pr, e.Rect()) {
			continue
		}
		e.dead = true
		p.TakeDamage(g.cfg.Player.ContactDamage)
		g.sounds.Play(SoundHit)
		g.emit(Event{Kind: EventEnemyRammed, Enemy: e.Kind, Amount: g.cfg.Player.ContactDamage})
	}
}

// updateDrops moves coins and resolves pickups and losses.
func (g *Game) updateDrops() {
	pr := g.loadout.Player.Rect()

	for i := range g.drops {
		c := &g.drops[i]
		c.Update()
		switch {
		case c.Y > g.cfg.World.Height:
			c.dead = true
			g.emit(Event{Kind: EventCoinLost})
		case core.Overlaps(pr, c.Rect()):
			c.dead = true
			g.loadout.Coins += c.Value
			g.emit(Event{Kind: EventCoinCollected, Amount: c.Value})
		}
	}
}
