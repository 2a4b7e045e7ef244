// Package config provides YAML-based tuning, difficulty curves and persisted
// player settings for mythfall.
package config

import "time"

// GameConfig contains all tuning for a run.
type GameConfig struct {
	Runtime  RuntimeTuning  `yaml:"runtime"`
	Player   PlayerTuning   `yaml:"player"`
	Enemy    EnemyTuning    `yaml:"enemy"`
	Survival SurvivalTuning `yaml:"survival"`
	Escape   EscapeTuning   `yaml:"escape"`
}

// RuntimeTuning defines the frame schedule.
type RuntimeTuning struct {
	TickRate int `yaml:"tick_rate"`
	Substeps int `yaml:"substeps"`
}

// PlayerTuning defines player movement and survivability.
type PlayerTuning struct {
	Speed           float64       `yaml:"speed"`      // cells per second
	DashSpeed       float64       `yaml:"dash_speed"` // cells per second while dashing
	DashDuration    time.Duration `yaml:"dash_duration"`
	DashCooldown    time.Duration `yaml:"dash_cooldown"`
	Invulnerability time.Duration `yaml:"invulnerability"`
	HealthPercent   int           `yaml:"health_percent"` // scales every hero's base health
}

// EnemyTuning defines enemy behaviour shared by every pack.
type EnemyTuning struct {
	Speed         float64 `yaml:"speed"`
	ContactDamage int     `yaml:"contact_damage"`
	MaxAlive      int     `yaml:"max_alive"`
}

// SurvivalTuning defines the wave-based mode.
type SurvivalTuning struct {
	WaveLength time.Duration    `yaml:"wave_length"`
	WavesToWin int              `yaml:"waves_to_win"`
	SpawnBase  int              `yaml:"spawn_base"`
	SpawnExtra int              `yaml:"spawn_extra"` // added at max difficulty
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EscapeTuning defines the chapter-based mode.
type EscapeTuning struct {
	ChapterLength time.Duration    `yaml:"chapter_length"`
	Chapters      int              `yaml:"chapters"`
	SpawnEvery    time.Duration    `yaml:"spawn_every"`
	SpawnBase     int              `yaml:"spawn_base"`
	SpawnExtra    int              `yaml:"spawn_extra"`
	Difficulty    DifficultyConfig `yaml:"difficulty"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stage", "time", or "none"
	MaxAt int    `yaml:"max_at"` // stage number or seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to enemy speed at max difficulty
	DamageBonus     int     `yaml:"damage_bonus"`     // added to contact damage at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// ParsePreset returns the preset named s, or false.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
