package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file name looked up in the config directories.
const ConfigFileName = "shooter.yaml"

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.shooter/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
//
// Every source is decoded on top of the hardcoded defaults, so a file only
// needs to name the values it changes.
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultShooterConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFileName)); err == nil {
		if err := decode(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultShooterConfig()
	}

	// Use embedded default YAML
	if err := decode(defaultShooterYAML, &cfg); err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals YAML over cfg and checks the result is playable.
func decode(data []byte, cfg *ShooterConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate reports settings that would make the game unplayable.
func (c ShooterConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("player size must be positive")
	case c.Enemies.SpawnRate <= 0:
		return fmt.Errorf("enemies.spawn_rate must be positive, got %d", c.Enemies.SpawnRate)
	case c.Enemies.BossEvery <= 0:
		return fmt.Errorf("enemies.boss_every must be positive, got %d", c.Enemies.BossEvery)
	}
	for _, name := range []string{VariantStandard, VariantSpeedy, VariantTank, VariantBoss} {
		v, ok := c.Enemies.Variants[name]
		if !ok {
			return fmt.Errorf("enemies.variants.%s is missing", name)
		}
		if v.Width <= 0 || v.Height <= 0 || v.HP <= 0 {
			return fmt.Errorf("enemies.variants.%s needs positive size and hp", name)
		}
	}
	seen := make(map[string]bool, len(c.Shop.Items))
	for _, item := range c.Shop.Items {
		if seen[item.ID] {
			return fmt.Errorf("shop item %q listed twice", item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", ConfigFileName)
}

// UserDir returns ~/.shooter, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shooter")
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.HP = 150
		cfg.Player.ContactDamage = 5
	case DifficultyHard:
		cfg.Player.HP = 75
		cfg.Enemies.BossEvery = 8
	}
}
