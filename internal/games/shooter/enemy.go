package shooter

import (
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// EnemyKind identifies an enemy variant.
type EnemyKind int

const (
	KindStandard EnemyKind = iota
	KindSpeedy
	KindTank
	KindBoss
)

// regularKinds are the kinds picked by the random spawner.
var regularKinds = [...]EnemyKind{KindStandard, KindSpeedy, KindTank}

// String returns the config name of the kind.
func (k EnemyKind) String() string {
	switch k {
	case KindStandard:
		return config.VariantStandard
	case KindSpeedy:
		return config.VariantSpeedy
	case KindTank:
		return config.VariantTank
	case KindBoss:
		return config.VariantBoss
	default:
		return "unknown"
	}
}

// Variant holds the fixed stats of one kind.
type Variant struct {
	W, H  int
	Speed int
	HP    int
	Color core.Color
}

// Variants is the immutable stat table indexed by EnemyKind.
type Variants [4]Variant

// VariantsFromConfig builds the stat table from config.
func VariantsFromConfig(cfg config.EnemiesConfig) Variants {
	var vs Variants
	for _, k := range [...]EnemyKind{KindStandard, KindSpeedy, KindTank, KindBoss} {
		v := cfg.Variants[k.String()]
		vs[k] = Variant{
			W:     v.Width,
			H:     v.Height,
			Speed: v.Speed,
			HP:    v.HP,
			Color: core.ParseColor(v.Color),
		}
	}
	return vs
}

// Enemy descends at a constant speed until destroyed or off the bottom.
// Size, speed and color are fixed at spawn.
type Enemy struct {
	Kind  EnemyKind
	X, Y  int
	W, H  int
	Speed int
	HP    int
	MaxHP int
	Color core.Color

	dead bool
}

// NewEnemy creates an enemy of the given variant just above the top edge.
func NewEnemy(kind EnemyKind, v Variant, x int) Enemy {
	return Enemy{
		Kind:  kind,
		X:     x,
		Y:     -v.H,
		W:     v.W,
		H:     v.H,
		Speed: v.Speed,
		HP:    v.HP,
		MaxHP: v.HP,
		Color: v.Color,
	}
}

// Rect returns the enemy hitbox.
func (e *Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Update moves the enemy down one tick.
func (e *Enemy) Update() {
	e.Y += e.Speed
}

// Hit applies damage and reports whether the enemy was destroyed.
func (e *Enemy) Hit(damage int) bool {
	e.HP -= damage
	return e.HP <= 0
}

// IsBoss reports whether this is a boss.
func (e *Enemy) IsBoss() bool {
	return e.Kind == KindBoss
}
