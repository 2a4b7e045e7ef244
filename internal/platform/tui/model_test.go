package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/game"
	"github.com/vovakirdan/mythfall/internal/locale"
	"github.com/vovakirdan/mythfall/internal/state"
	"github.com/vovakirdan/mythfall/internal/storage"
)

type fakeRuns struct{ runs []storage.Run }

func (f fakeRuns) BestRuns(_ context.Context, modeID string, _ int) ([]storage.Run, error) {
	var out []storage.Run
	for _, r := range f.runs {
		if r.Mode == modeID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newModel(t *testing.T, runs RunLister) Model {
	t.Helper()
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Substeps: 2, Seed: 11}
	loc, err := locale.New()
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(Options{
		App:     game.NewApp(game.Options{Config: config.DefaultGameConfig(), Runtime: rc}),
		Locale:  loc,
		Runs:    runs,
		Runtime: rc,
	})
}

func send(m Model, msgs ...tea.Msg) Model {
	var tm tea.Model = m
	for _, msg := range msgs {
		tm, _ = tm.Update(msg)
	}
	return tm.(Model)
}

func tick(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m = send(m, TickMsg(time.Now()))
	}
	return m
}

func play(t *testing.T, m Model) Model {
	t.Helper()
	m = send(m, keyMsg("enter"))
	m = tick(m, 1)
	if got := app.CurrentState[state.AppState](m.app); got != state.GameModeSelectionScreen {
		t.Fatalf("AppState = %v, expected mode selection", got)
	}
	m = send(m, keyMsg("enter"), keyMsg("enter"))
	m = tick(m, 3)
	if got := app.CurrentState[state.GameState](m.app); got != state.Playing {
		t.Fatalf("GameState = %v, expected Playing", got)
	}
	return m
}

func TestMenuToPlaying(t *testing.T) {
	m := newModel(t, nil)
	if m.Context() != ContextMenu {
		t.Fatalf("Context() = %v, expected menu", m.Context())
	}
	if view := m.View(); !strings.Contains(view, "MYTHFALL") {
		t.Error("main menu should show the title")
	}
	m = play(t, m)
	if m.Context() != ContextGame {
		t.Errorf("Context() = %v, expected game", m.Context())
	}
	if view := m.View(); !strings.Contains(view, "HP ") {
		t.Error("game view should show the HUD")
	}
}

func TestSelectionBackReturnsToMenu(t *testing.T) {
	m := newModel(t, nil)
	m = send(m, keyMsg("enter"))
	m = tick(m, 1)
	m = send(m, keyMsg("enter")) // pick hero step
	m = send(m, keyMsg("esc"))   // back to modes
	m = send(m, keyMsg("esc"))   // back to main menu
	m = tick(m, 1)
	if got := app.CurrentState[state.AppState](m.app); got != state.MainMenu {
		t.Errorf("AppState = %v, expected MainMenu", got)
	}
}

func TestConsoleOverlay(t *testing.T) {
	m := play(t, newModel(t, nil))

	m = send(m, keyMsg("`"))
	m = tick(m, 1)
	if m.Context() != ContextConsole {
		t.Fatalf("Context() = %v, expected console", m.Context())
	}
	if !m.app.Physics().IsPaused() {
		t.Error("console should pause physics")
	}

	m = send(m, keyMsg("item list"), keyMsg("enter"))
	if out := strings.Join(m.output, "\n"); !strings.Contains(out, "aegis") {
		t.Errorf("console output = %q, expected item list", out)
	}

	m = send(m, keyMsg("esc"))
	m = tick(m, 1)
	if got := app.CurrentState[state.GameState](m.app); got != state.Playing {
		t.Errorf("GameState = %v, expected Playing after closing the console", got)
	}
}

func TestPauseMenuMainMenu(t *testing.T) {
	m := play(t, newModel(t, nil))

	m = send(m, keyMsg("p"))
	m = tick(m, 1)
	if m.Context() != ContextPause {
		t.Fatalf("Context() = %v, expected pause", m.Context())
	}
	m = send(m, keyMsg("down"), keyMsg("down"), keyMsg("enter"))
	m = tick(m, 1)
	if got := app.CurrentState[state.AppState](m.app); got != state.MainMenu {
		t.Errorf("AppState = %v, expected MainMenu", got)
	}
	if got := app.CurrentState[state.GameState](m.app); got != state.None {
		t.Errorf("GameState = %v, expected None", got)
	}
}

func TestHistoryScreen(t *testing.T) {
	runs := fakeRuns{runs: []storage.Run{
		{Mode: "survival", Hero: "heracles", Result: "won", Stage: 10, Kills: 42, Duration: 5 * time.Minute},
		{Mode: "escape", Hero: "freydis", Result: "lost", Stage: 2},
	}}
	m := newModel(t, runs)
	m = send(m, keyMsg("down"), keyMsg("enter"))
	if m.history == nil {
		t.Fatal("history screen did not open")
	}
	if got := m.history.Mode(); got != "survival" {
		t.Errorf("history mode = %q, expected survival", got)
	}
	if view := m.View(); !strings.Contains(view, "heracles") {
		t.Error("history should list the survival run")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.history.Mode(); got != "escape" {
		t.Errorf("history mode = %q, expected escape", got)
	}
	m = send(m, keyMsg("esc"))
	if m.history != nil {
		t.Error("esc should close the history screen")
	}
}

func TestQuitFromMenu(t *testing.T) {
	m := newModel(t, nil)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q in the main menu should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit command")
	}
}
