package config

import (
	"path/filepath"
	"testing"
)

func TestSettingsMissingFileDefaults(t *testing.T) {
	t.Setenv("MYTHFALL_LOCALE", "")
	path := filepath.Join(t.TempDir(), "settings.toml")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings() error: %v", err)
	}
	if s.Locale != "en-US" {
		t.Errorf("Locale = %s, expected en-US", s.Locale)
	}
	if s.Path() != path {
		t.Errorf("Path() = %s, expected %s", s.Path(), path)
	}
}

func TestSettingsSaveOnChange(t *testing.T) {
	t.Setenv("MYTHFALL_LOCALE", "")
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetLocale("de-DE"); err != nil {
		t.Fatalf("SetLocale() error: %v", err)
	}
	if err := s.Bind("dash", "space", "x"); err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	reloaded, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Locale != "de-DE" {
		t.Errorf("Locale = %s, expected de-DE", reloaded.Locale)
	}
	if keys := reloaded.Keys["dash"]; len(keys) != 2 || keys[0] != "space" {
		t.Errorf("Keys[dash] = %v, expected [space x]", keys)
	}
}

func TestSettingsEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	t.Setenv("MYTHFALL_SETTINGS", path)
	t.Setenv("MYTHFALL_LOCALE", "es-ES")

	s, err := LoadSettings("")
	if err != nil {
		t.Fatal(err)
	}
	if s.Path() != path {
		t.Errorf("Path() = %s, expected %s from MYTHFALL_SETTINGS", s.Path(), path)
	}
	if got := s.ActiveLocale(); got != "es-ES" {
		t.Errorf("ActiveLocale() = %s, expected es-ES from MYTHFALL_LOCALE", got)
	}
	if s.Locale != "en-US" {
		t.Errorf("Locale = %s, expected stored en-US", s.Locale)
	}
}

func TestEnvLocaleIsNotSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	t.Setenv("MYTHFALL_LOCALE", "")
	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetLocale("de-DE"); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MYTHFALL_LOCALE", "es-ES")
	s, err = LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetDifficulty(DifficultyHard); err != nil {
		t.Fatalf("SetDifficulty() error: %v", err)
	}
	if err := s.Bind("dash", "x"); err != nil {
		t.Fatalf("Bind() error: %v", err)
	}

	t.Setenv("MYTHFALL_LOCALE", "")
	reloaded, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Locale != "de-DE" {
		t.Errorf("Locale = %s, expected de-DE", reloaded.Locale)
	}
	if reloaded.Difficulty != string(DifficultyHard) {
		t.Errorf("Difficulty = %s, expected hard", reloaded.Difficulty)
	}
}

func TestSetLocaleReplacesEnvLocale(t *testing.T) {
	t.Setenv("MYTHFALL_LOCALE", "es-ES")
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetLocale("de-DE"); err != nil {
		t.Fatal(err)
	}
	if got := s.ActiveLocale(); got != "de-DE" {
		t.Errorf("ActiveLocale() = %s, expected de-DE", got)
	}
}

func TestSetDifficultyRejectsUnknown(t *testing.T) {
	t.Setenv("MYTHFALL_LOCALE", "")
	s, err := LoadSettings(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetDifficulty("nightmare"); err == nil {
		t.Error("SetDifficulty() should reject unknown presets")
	}
}
