package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// Shop item identifiers.
const (
	ItemHealthUpgrade = "health_upgrade"
	ItemPowerBullet   = "power_bullet"
	ItemRapidFire     = "rapid_fire"
	ItemSpeedUpgrade  = "speed_upgrade"
)

// Enemy variant names used as keys in EnemiesConfig.Variants.
const (
	VariantStandard = "standard"
	VariantSpeedy   = "speedy"
	VariantTank     = "tank"
	VariantBoss     = "boss"
)

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:         50,
			Height:        30,
			Speed:         5,
			HP:            100,
			ShootDelay:    15,
			BottomOffset:  50,
			ClampToWorld:  true,
			ContactDamage: 10,
		},
		Bullet: BulletConfig{
			Width:  5,
			Height: 10,
			Speed:  10,
			Damage: 2,
		},
		Enemies: EnemiesConfig{
			SpawnRate: 30,
			BossEvery: 10,
			Variants: map[string]EnemyVariant{
				VariantStandard: {Width: 50, Height: 30, Speed: 2, HP: 2, Color: "red"},
				VariantSpeedy:   {Width: 50, Height: 30, Speed: 5, HP: 1, Color: "orange"},
				VariantTank:     {Width: 50, Height: 30, Speed: 1, HP: 10, Color: "blue"},
				VariantBoss:     {Width: 100, Height: 100, Speed: 1, HP: 20, Color: "magenta"},
			},
		},
		Coin: CoinConfig{
			Size:  20,
			Speed: 2,
			Value: 1,
		},
		Shop: ShopConfig{
			Items: []ShopItemConfig{
				{ID: ItemHealthUpgrade, Cost: 25, Amount: 20, Description: "Increase max health by 20"},
				{ID: ItemPowerBullet, Cost: 50, Amount: 1, Description: "Increase bullet damage by 1"},
				{ID: ItemRapidFire, Cost: 75, Amount: 5, Description: "Decrease shoot delay"},
				{ID: ItemSpeedUpgrade, Cost: 30, Amount: 1, Description: "Increase player speed by 1"},
			},
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			ShootVolume:  0.1,
			MusicVolume:  0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpawnRateReduction: 18,
				SpeedMultiplier:    0.5,
			},
		},
	}
}

// DefaultShooterYAML returns the embedded default configuration as YAML,
// suitable for writing out as a starting point for customization.
func DefaultShooterYAML() []byte {
	out := make([]byte, len(defaultShooterYAML))
	copy(out, defaultShooterYAML)
	return out
}
