package shooter

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Snapshot captures the session summary for determinism testing and logging.
type Snapshot struct {
	Tick           int
	Mode           Mode
	Score          int
	Coins          int
	KillsSinceBoss int
	PlayerX        int
	HP             int
	MaxHP          int
	Speed          int
	ShootDelay     int
	Damage         int
	Bullets        int
	Enemies        int
	Drops          int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.loadout.Player
	return Snapshot{
		Tick:           g.tick,
		Mode:           g.mode,
		Score:          g.score,
		Coins:          g.loadout.Coins,
		KillsSinceBoss: g.killsSinceBoss,
		PlayerX:        p.X,
		HP:             p.HP,
		MaxHP:          p.MaxHP,
		Speed:          p.Speed,
		ShootDelay:     p.ShootDelay,
		Damage:         g.loadout.Weapon.Damage,
		Bullets:        len(g.bullets),
		Enemies:        len(g.enemies),
		Drops:          len(g.drops),
	}
}

// Hash digests the full session, including every entity position, so two
// runs can be compared tick for tick.
func (g *Game) Hash() uint64 {
	s := g.Snapshot()
	buf := make([]byte, 0, 8*(14+2*len(g.bullets)+4*len(g.enemies)+2*len(g.drops)))
	put := func(vs ...int) {
		for _, v := range vs {
			buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
		}
	}

	put(s.Tick, int(s.Mode), s.Score, s.Coins, s.KillsSinceBoss,
		s.PlayerX, s.HP, s.MaxHP, s.Speed, s.ShootDelay, s.Damage,
		s.Bullets, s.Enemies, s.Drops)
	for _, b := range g.bullets {
		put(b.X, b.Y)
	}
	for _, e := range g.enemies {
		put(int(e.Kind), e.X, e.Y, e.HP)
	}
	for _, c := range g.drops {
		put(c.X, c.Y)
	}
	return xxhash.Sum64(buf)
}
