package config

import "math"

// Floors below which difficulty scaling never pushes.
const (
	MinSpawnRate = 2
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnRate returns the 1-in-N spawn chance for the current level.
// With progression disabled the base rate is returned untouched.
func (d *DifficultyManager) SpawnRate(base int, score int, ticks int) int {
	if !d.cfg.Enabled {
		return base
	}
	if base <= MinSpawnRate {
		return base
	}
	level := d.Level(score, ticks)
	reduction := int(level * float64(d.cfg.Scaling.SpawnRateReduction))
	return max(base-reduction, MinSpawnRate)
}

// Speed returns the enemy speed for the current level, never below base.
func (d *DifficultyManager) Speed(base int, score int, ticks int) int {
	if !d.cfg.Enabled {
		return base
	}
	level := d.Level(score, ticks)
	return int(math.Round(float64(base) * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
