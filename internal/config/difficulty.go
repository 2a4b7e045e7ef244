package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic run parameters from progress.
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

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) from the stage
// reached (wave or chapter) and the time spent in the run.
func (d *DifficultyManager) Level(stage int, elapsed time.Duration) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "stage":
		progress = float64(stage) / maxAt
	case "time":
		progress = elapsed.Seconds() / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SpawnCount returns base plus the share of extra unlocked by the level.
func (d *DifficultyManager) SpawnCount(base, extra, stage int, elapsed time.Duration) int {
	level := d.Level(stage, elapsed)
	n := base + int(math.Round(level*float64(extra)))
	if n < 1 {
		n = 1
	}
	return n
}

// Speed returns the enemy speed scaled by the level.
func (d *DifficultyManager) Speed(baseSpeed float64, stage int, elapsed time.Duration) float64 {
	level := d.Level(stage, elapsed)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Damage returns contact damage scaled by the level.
func (d *DifficultyManager) Damage(base, stage int, elapsed time.Duration) int {
	level := d.Level(stage, elapsed)
	return base + int(level*float64(d.cfg.Scaling.DamageBonus))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
