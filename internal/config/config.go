// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

// ShooterConfig contains all tuning for the shooter game.
// Coordinates and sizes are in world units (the playfield is World.Width x World.Height).
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Coin       CoinConfig       `yaml:"coin"`
	Shop       ShopConfig       `yaml:"shop"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width         int  `yaml:"width"`
	Height        int  `yaml:"height"`
	Speed         int  `yaml:"speed"`
	HP            int  `yaml:"hp"`
	ShootDelay    int  `yaml:"shoot_delay"`   // ticks between shots
	BottomOffset  int  `yaml:"bottom_offset"` // start Y = world height - offset
	ClampToWorld  bool `yaml:"clamp_to_world"`
	ContactDamage int  `yaml:"contact_damage"`
}

// BulletConfig defines player bullets.
type BulletConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"`
	Damage int `yaml:"damage"` // initial weapon damage
}

// EnemiesConfig defines spawning and the enemy variant table.
type EnemiesConfig struct {
	SpawnRate int                     `yaml:"spawn_rate"` // 1-in-N chance per tick
	BossEvery int                     `yaml:"boss_every"` // non-boss kills per boss
	Variants  map[string]EnemyVariant `yaml:"variants"`
}

// EnemyVariant holds the stats of one enemy kind.
type EnemyVariant struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Speed  int    `yaml:"speed"`
	HP     int    `yaml:"hp"`
	Color  string `yaml:"color"`
}

// CoinConfig defines coins dropped by destroyed enemies.
type CoinConfig struct {
	Size  int `yaml:"size"`
	Speed int `yaml:"speed"`
	Value int `yaml:"value"`
}

// ShopConfig lists the shop items in display order.
type ShopConfig struct {
	Items []ShopItemConfig `yaml:"items"`
}

// ShopItemConfig defines one purchasable upgrade.
type ShopItemConfig struct {
	ID          string `yaml:"id"`
	Cost        int    `yaml:"cost"`
	Amount      int    `yaml:"amount"`
	Description string `yaml:"description"`
}

// AudioConfig defines output volumes (0.0 to 1.0).
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	ShootVolume  float64 `yaml:"shoot_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnRateReduction int     `yaml:"spawn_rate_reduction"` // Spawn rate reduction at max difficulty
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`     // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset.
// The empty string is valid and means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, "":
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
