package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game tuning.
// Search order: customPath -> ~/.mythfall/configs/game.yaml -> ./configs/game.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	// Files only override what they mention.
	cfg := DefaultGameConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg.normalized(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("game.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.normalized(), nil
			}
			cfg = DefaultGameConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "game.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.normalized(), nil
		}
		cfg = DefaultGameConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalized(), nil
}

// ApplyPreset modifies both modes' difficulty based on a preset.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	for _, d := range []*DifficultyConfig{&cfg.Survival.Difficulty, &cfg.Escape.Difficulty} {
		if preset == DifficultyFixed {
			d.Enabled = false
			continue
		}
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Player.HealthPercent = 150
		cfg.Player.Invulnerability = cfg.Player.Invulnerability * 3 / 2
	case DifficultyHard:
		cfg.Player.HealthPercent = 70
		cfg.Enemy.MaxAlive += cfg.Enemy.MaxAlive / 2
	}
}

// normalized replaces unusable values with their defaults.
func (c GameConfig) normalized() GameConfig {
	def := DefaultGameConfig()
	if c.Runtime.TickRate <= 0 {
		c.Runtime.TickRate = def.Runtime.TickRate
	}
	if c.Runtime.Substeps <= 0 {
		c.Runtime.Substeps = def.Runtime.Substeps
	}
	if c.Player.HealthPercent <= 0 {
		c.Player.HealthPercent = def.Player.HealthPercent
	}
	if c.Survival.WaveLength <= 0 {
		c.Survival.WaveLength = def.Survival.WaveLength
	}
	if c.Survival.WavesToWin <= 0 {
		c.Survival.WavesToWin = def.Survival.WavesToWin
	}
	if c.Escape.ChapterLength <= 0 {
		c.Escape.ChapterLength = def.Escape.ChapterLength
	}
	if c.Escape.Chapters <= 0 {
		c.Escape.Chapters = def.Escape.Chapters
	}
	if c.Escape.SpawnEvery <= 0 {
		c.Escape.SpawnEvery = def.Escape.SpawnEvery
	}
	return c
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mythfall", "configs", filename)
}
