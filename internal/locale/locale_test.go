package locale

import (
	"errors"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
)

func TestEmbeddedCatalogs(t *testing.T) {
	l, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := l.Available(); len(got) != 3 || got[0] != language.MustParse(BaseLocale) {
		t.Errorf("Available() = %v, expected base locale first of 3", got)
	}
	if got := l.T("menu.play"); got != "Play" {
		t.Errorf("T(menu.play) = %q, expected Play", got)
	}
	if got := l.T("hud.wave", 3, 10); got != "Wave 3/10" {
		t.Errorf("T(hud.wave) = %q, expected Wave 3/10", got)
	}
}

func TestSetMatchesRegionalVariants(t *testing.T) {
	l, err := New()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		input    string
		expected string
	}{
		{"de", "de-DE"},
		{"es-MX", "es-ES"},
		{"en-GB", "en-US"},
	}
	for _, tt := range tests {
		tag, err := l.Set(tt.input)
		if err != nil {
			t.Errorf("Set(%q) error: %v", tt.input, err)
			continue
		}
		if tag.String() != tt.expected {
			t.Errorf("Set(%q) = %s, expected %s", tt.input, tag, tt.expected)
		}
	}

	if _, err := l.Set("de"); err != nil {
		t.Fatal(err)
	}
	if got := l.T("menu.play"); got != "Spielen" {
		t.Errorf("T(menu.play) in de = %q, expected Spielen", got)
	}
}

func TestSetUnknown(t *testing.T) {
	l, err := New()
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range []string{"ja", "not a tag"} {
		if _, err := l.Set(input); !errors.Is(err, ErrUnknownLocale) {
			t.Errorf("Set(%q) error = %v, expected ErrUnknownLocale", input, err)
		}
	}
	if l.Current().String() != BaseLocale {
		t.Errorf("Current() = %s after failed Set, expected %s", l.Current(), BaseLocale)
	}
}

func TestFallbackToBase(t *testing.T) {
	fsys := fstest.MapFS{
		"catalogs/en-US.yaml": {Data: []byte("locale: en-US\nmessages:\n  a: \"A\"\n  b: \"B\"\n")},
		"catalogs/de-DE.yaml": {Data: []byte("locale: de-DE\nmessages:\n  a: \"Ä\"\n")},
	}
	l, err := LoadFromFS(fsys)
	if err != nil {
		t.Fatalf("LoadFromFS() error: %v", err)
	}
	if _, err := l.Set("de-DE"); err != nil {
		t.Fatal(err)
	}
	if got := l.T("a"); got != "Ä" {
		t.Errorf("T(a) = %q, expected Ä", got)
	}
	if got := l.T("b"); got != "B" {
		t.Errorf("T(b) = %q, expected fallback B", got)
	}
	if !l.Has("b") || l.Has("c") {
		t.Error("Has() should see base keys only")
	}
}

func TestMissingBaseLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"catalogs/de-DE.yaml": {Data: []byte("locale: de-DE\nmessages:\n  a: \"Ä\"\n")},
	}
	if _, err := LoadFromFS(fsys); err == nil {
		t.Error("LoadFromFS() should require the base locale")
	}
}
