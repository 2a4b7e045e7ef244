package console

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/game"
	"github.com/vovakirdan/mythfall/internal/locale"
)

func newConsole(t *testing.T) (*Console, *app.App, *config.Settings) {
	t.Helper()
	t.Setenv("MYTHFALL_LOCALE", "")
	a := game.NewApp(game.Options{
		Config:  config.DefaultGameConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 20, Substeps: 1, Seed: 3},
	})
	loc, err := locale.New()
	if err != nil {
		t.Fatal(err)
	}
	settings, err := config.LoadSettings(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatal(err)
	}
	return New(a, loc, settings), a, settings
}

func startRun(t *testing.T, a *app.App) {
	t.Helper()
	if err := game.StartGame(a, 0, "heracles"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		a.Update(10 * time.Millisecond)
	}
}

func joined(out []string) string { return strings.Join(out, "\n") }

func TestListCommands(t *testing.T) {
	c, _, _ := newConsole(t)

	tests := []struct {
		line string
		want string
	}{
		{"item list", "aegis"},
		{"item list", "mead"},
		{"perk list", "heroic-vigor"},
		{"mode list", "0 survival"},
		{"mode list", "1 escape"},
		{"locale list", "* en-US"},
		{"locale show", "en-US"},
	}
	for _, tt := range tests {
		out := joined(c.Exec(tt.line))
		if !strings.Contains(out, tt.want) {
			t.Errorf("Exec(%q) = %q, expected it to contain %q", tt.line, out, tt.want)
		}
	}
}

func TestErrorsAreLines(t *testing.T) {
	c, _, _ := newConsole(t)

	tests := []struct {
		line string
		want string
	}{
		{"teleport", "unknown command"},
		{"inventory list", "no hero in play"},
		{"inventory add aegis", "no hero in play"},
		{"locale set", "accepts 1 arg"},
		{"locale set zz-ZZ", "error:"},
	}
	for _, tt := range tests {
		out := c.Exec(tt.line)
		if len(out) == 0 || !strings.Contains(joined(out), tt.want) {
			t.Errorf("Exec(%q) = %q, expected an error containing %q", tt.line, out, tt.want)
		}
	}
}

func TestInventoryCommands(t *testing.T) {
	c, a, _ := newConsole(t)
	startRun(t, a)

	if out := joined(c.Exec("inventory list")); !strings.Contains(out, "ambrosia") {
		t.Errorf("inventory list = %q, expected starting ambrosia", out)
	}
	if out := joined(c.Exec(`inventory add "aegis" 1`)); out != "added aegis x1" {
		t.Errorf("inventory add = %q", out)
	}
	if out := joined(c.Exec("inventory add nectar-of-ra")); !strings.Contains(out, "not found") {
		t.Errorf("inventory add unknown = %q, expected not found", out)
	}
	if out := joined(c.Exec("inventory add aegis many")); !strings.Contains(out, "invalid quantity") {
		t.Errorf("inventory add bad quantity = %q", out)
	}
	p, _, _ := game.HeroStatus(a)
	if p.Stats.DamageTakenMul >= 1 {
		t.Error("aegis added from the console should apply its bonus")
	}

	tests := []struct {
		line string
		want string
	}{
		{"inventory add ambrosia 5", "added ambrosia x2"},
		{"inventory add ambrosia", "error: ambrosia: stack is full"},
		{"inventory use ambrosia", "used ambrosia, healed "},
		{"inventory use aegis", "error: aegis: item cannot be used"},
	}
	for _, tt := range tests {
		if out := joined(c.Exec(tt.line)); !strings.HasPrefix(out, tt.want) {
			t.Errorf("Exec(%q) = %q, expected prefix %q", tt.line, out, tt.want)
		}
	}
	stacks, _ := game.HeroInventory(a)
	for _, st := range stacks {
		if st.ItemID == "ambrosia" && st.Quantity != 2 {
			t.Errorf("ambrosia quantity = %d, expected 2", st.Quantity)
		}
	}
}

func TestLocaleSetPersists(t *testing.T) {
	c, _, settings := newConsole(t)

	out := joined(c.Exec("locale set de-DE"))
	if out != "locale set to de-DE" {
		t.Fatalf("locale set = %q", out)
	}
	if settings.Locale != "de-DE" {
		t.Errorf("Settings.Locale = %q, expected de-DE", settings.Locale)
	}
	reloaded, err := config.LoadSettings(settings.Path())
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Locale != "de-DE" {
		t.Errorf("reloaded Locale = %q, expected de-DE", reloaded.Locale)
	}
	if got := joined(c.Exec("locale show")); got != "de-DE" {
		t.Errorf("locale show = %q, expected de-DE", got)
	}
}

func TestHistory(t *testing.T) {
	c, _, _ := newConsole(t)
	c.Exec("item list")
	c.Exec("   ")
	c.Exec("mode list")
	h := c.History()
	if len(h) != 2 || h[0] != "item list" || h[1] != "mode list" {
		t.Errorf("History() = %v", h)
	}
}
