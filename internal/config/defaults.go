package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in tuning. It matches defaults/game.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Runtime: RuntimeTuning{
			TickRate: 30,
			Substeps: 4,
		},
		Player: PlayerTuning{
			Speed:           14.0,
			DashSpeed:       42.0,
			DashDuration:    150 * time.Millisecond,
			DashCooldown:    1500 * time.Millisecond,
			Invulnerability: 800 * time.Millisecond,
			HealthPercent:   100,
		},
		Enemy: EnemyTuning{
			Speed:         5.0,
			ContactDamage: 10,
			MaxAlive:      60,
		},
		Survival: SurvivalTuning{
			WaveLength: 30 * time.Second,
			WavesToWin: 10,
			SpawnBase:  3,
			SpawnExtra: 9,
			Difficulty: DifficultyConfig{
				Enabled: true,
				Progression: ProgressionConfig{
					Type:  "stage",
					MaxAt: 10,
				},
				Scaling: ScalingConfig{
					SpeedMultiplier: 0.8,
					DamageBonus:     10,
				},
			},
		},
		Escape: EscapeTuning{
			ChapterLength: 45 * time.Second,
			Chapters:      5,
			SpawnEvery:    6 * time.Second,
			SpawnBase:     2,
			SpawnExtra:    4,
			Difficulty: DifficultyConfig{
				Enabled: true,
				Progression: ProgressionConfig{
					Type:  "time",
					MaxAt: 225, // five chapters of 45s
				},
				Scaling: ScalingConfig{
					SpeedMultiplier: 0.6,
					DamageBonus:     5,
				},
			},
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
