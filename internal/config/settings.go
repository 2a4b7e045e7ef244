package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings are the player preferences persisted between sessions.
type Settings struct {
	Locale     string              `toml:"locale" json:"locale"`
	Difficulty string              `toml:"difficulty" json:"difficulty"`
	Keys       map[string][]string `toml:"keys,omitempty" json:"keys,omitempty"` // action name -> key names

	path      string
	envLocale string
}

// Env holds environment overrides.
type Env struct {
	Locale       string `env:"MYTHFALL_LOCALE"`
	SettingsPath string `env:"MYTHFALL_SETTINGS"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// DefaultSettings returns settings for a first launch.
func DefaultSettings() Settings {
	return Settings{
		Locale:     "en-US",
		Difficulty: string(DifficultyNormal),
	}
}

// DefaultSettingsPath returns ~/.mythfall/<settings file>, or the bare file
// name if home is unavailable.
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return settingsFileName
	}
	return filepath.Join(home, ".mythfall", settingsFileName)
}

// LoadSettings reads settings from path. An empty path falls back to
// MYTHFALL_SETTINGS and then DefaultSettingsPath. A missing file yields
// defaults. MYTHFALL_LOCALE overrides the stored locale for this session
// only; see ActiveLocale.
func LoadSettings(path string) (*Settings, error) {
	e, err := ParseEnv()
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = e.SettingsPath
	}
	if path == "" {
		path = DefaultSettingsPath()
	}

	s := DefaultSettings()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	default:
		if err := decodeSettings(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
		}
	}

	s.envLocale = e.Locale
	if _, ok := ParsePreset(s.Difficulty); !ok {
		s.Difficulty = string(DifficultyNormal)
	}
	s.path = path
	return &s, nil
}

// ActiveLocale returns the locale to use: the MYTHFALL_LOCALE override if
// set, otherwise the stored locale.
func (s *Settings) ActiveLocale() string {
	if s.envLocale != "" {
		return s.envLocale
	}
	return s.Locale
}

// Path returns the file the settings are saved to.
func (s *Settings) Path() string { return s.path }

// Save writes the settings to their file, creating the directory if needed.
func (s *Settings) Save() error {
	if s.path == "" {
		s.path = DefaultSettingsPath()
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	data, err := encodeSettings(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", s.path, err)
	}
	return nil
}

// SetLocale stores a new locale and saves. An explicit choice replaces the
// environment override for the rest of the session.
func (s *Settings) SetLocale(tag string) error {
	s.Locale = tag
	s.envLocale = ""
	return s.Save()
}

// SetDifficulty stores a new difficulty preset and saves.
func (s *Settings) SetDifficulty(preset DifficultyPreset) error {
	if _, ok := ParsePreset(string(preset)); !ok {
		return fmt.Errorf("unknown difficulty %q", preset)
	}
	s.Difficulty = string(preset)
	return s.Save()
}

// Bind replaces the keys for an action and saves. No keys restores the default binding.
func (s *Settings) Bind(action string, keys ...string) error {
	action = strings.ToLower(action)
	if len(keys) == 0 {
		delete(s.Keys, action)
	} else {
		if s.Keys == nil {
			s.Keys = make(map[string][]string)
		}
		s.Keys[action] = keys
	}
	return s.Save()
}
