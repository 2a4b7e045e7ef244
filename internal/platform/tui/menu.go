package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/content"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/game"
	"github.com/vovakirdan/mythfall/internal/mode"
	"github.com/vovakirdan/mythfall/internal/state"
)

// menuState holds the cursors of every menu the model draws.
type menuState struct {
	main     int
	mode     int
	hero     int
	pickHero bool
	pause    int
	over     int
}

const (
	mainPlay = iota
	mainHistory
	mainQuit
)

const (
	pauseResume = iota
	pauseRestart
	pauseMenu
)

const (
	overRestart = iota
	overMenu
)

func (m Model) mainItems() []string {
	return []string{m.loc.T("menu.play"), m.loc.T("menu.history"), m.loc.T("menu.quit")}
}

func (m Model) pauseItems() []string {
	return []string{m.loc.T("pause.resume"), m.loc.T("pause.restart"), m.loc.T("pause.menu")}
}

func (m Model) overItems() []string {
	return []string{m.loc.T("over.restart"), m.loc.T("over.menu")}
}

func (m Model) modes() []mode.Mode {
	return ecs.MustResource[mode.Catalog](m.app.World()).List()
}

func (m Model) heroes() []content.Hero {
	return ecs.MustResource[content.Registries](m.app.World()).Heroes.List()
}

// modeName prefers the localized name and falls back to the mode's own.
func (m Model) modeName(md mode.Mode) string {
	if key := "mode." + md.ID() + ".name"; m.loc.Has(key) {
		return m.loc.T(key)
	}
	return md.Name()
}

func (m Model) modeDescription(md mode.Mode) string {
	if key := "mode." + md.ID() + ".desc"; m.loc.Has(key) {
		return m.loc.T(key, md.Progress(m.app.World()).Total)
	}
	return md.Description()
}

func move(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	return (cursor + delta + n) % n
}

// handleMenu drives the main menu and the mode and hero selection screens.
func (m Model) handleMenu(action core.Action) (tea.Model, tea.Cmd) {
	m.status = ""
	if app.CurrentState[state.AppState](m.app) == state.GameModeSelectionScreen {
		m.handleSelection(action)
		return m, nil
	}

	switch action {
	case core.ActionUp:
		m.menu.main = move(m.menu.main, -1, len(m.mainItems()))
	case core.ActionDown:
		m.menu.main = move(m.menu.main, 1, len(m.mainItems()))
	case core.ActionConfirm:
		switch m.menu.main {
		case mainPlay:
			m.menu.mode, m.menu.hero, m.menu.pickHero = 0, 0, false
			game.OpenModeSelection(m.app)
		case mainHistory:
			h := NewHistoryModel(m.runs, m.historyModes(), m.loc.T("history.empty"), m.config.ScreenW, m.config.ScreenH)
			m.history = &h
		case mainQuit:
			m.quitting = true
			return m, tea.Quit
		}
	case core.ActionBack, core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleSelection(action core.Action) {
	if !m.menu.pickHero {
		switch action {
		case core.ActionUp, core.ActionLeft:
			m.menu.mode = move(m.menu.mode, -1, len(m.modes()))
		case core.ActionDown, core.ActionRight:
			m.menu.mode = move(m.menu.mode, 1, len(m.modes()))
		case core.ActionConfirm:
			m.menu.pickHero = true
		case core.ActionBack:
			game.BackToMainMenu(m.app)
		}
		return
	}

	heroes := m.heroes()
	switch action {
	case core.ActionUp, core.ActionLeft:
		m.menu.hero = move(m.menu.hero, -1, len(heroes))
	case core.ActionDown, core.ActionRight:
		m.menu.hero = move(m.menu.hero, 1, len(heroes))
	case core.ActionConfirm:
		if len(heroes) == 0 {
			return
		}
		if err := game.StartGame(m.app, m.menu.mode, heroes[m.menu.hero].ID()); err != nil {
			m.status = err.Error()
		}
	case core.ActionBack:
		m.menu.pickHero = false
	}
}

func (m *Model) handlePauseMenu(action core.Action) {
	switch action {
	case core.ActionUp:
		m.menu.pause = move(m.menu.pause, -1, len(m.pauseItems()))
	case core.ActionDown:
		m.menu.pause = move(m.menu.pause, 1, len(m.pauseItems()))
	case core.ActionPause, core.ActionBack:
		game.SetPauseMenu(m.app, false)
	case core.ActionConsole:
		game.SetConsole(m.app, true)
	case core.ActionConfirm:
		switch m.menu.pause {
		case pauseResume:
			game.SetPauseMenu(m.app, false)
		case pauseRestart:
			game.RestartRun(m.app)
		case pauseMenu:
			game.BackToMainMenu(m.app)
		}
	}
}

func (m Model) handleOverMenu(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionUp:
		m.menu.over = move(m.menu.over, -1, len(m.overItems()))
	case core.ActionDown:
		m.menu.over = move(m.menu.over, 1, len(m.overItems()))
	case core.ActionRestart:
		m.input.Set(core.ActionRestart)
	case core.ActionBack:
		game.BackToMainMenu(m.app)
	case core.ActionConfirm:
		if m.menu.over == overRestart {
			game.RestartRun(m.app)
		} else {
			game.BackToMainMenu(m.app)
		}
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) historyModes() []HistoryMode {
	var out []HistoryMode
	for _, md := range m.modes() {
		out = append(out, HistoryMode{ID: md.ID(), Title: m.modeName(md)})
	}
	return out
}

func (m *Model) drawMainMenu() {
	s := m.screen
	y := s.Height() / 3
	s.DrawTextCentered(y, m.loc.T("app.title"), core.ColorBrightYellow)
	s.DrawTextCentered(y+1, "~ ~ ~", core.ColorGray)
	drawList(s, y+3, m.mainItems(), m.menu.main)
}

func (m *Model) drawSelection() {
	s := m.screen
	y := 2
	modes := m.modes()
	if !m.menu.pickHero {
		s.DrawTextCentered(y, m.loc.T("modes.title"), core.ColorBrightYellow)
		names := make([]string, len(modes))
		for i, md := range modes {
			names[i] = m.modeName(md)
		}
		drawList(s, y+2, names, m.menu.mode)
		if m.menu.mode < len(modes) {
			s.DrawTextCentered(y+3+len(names), m.modeDescription(modes[m.menu.mode]), core.ColorGray)
		}
		return
	}

	s.DrawTextCentered(y, m.loc.T("players.title"), core.ColorBrightYellow)
	if m.menu.mode < len(modes) {
		s.DrawTextCentered(y+1, m.modeName(modes[m.menu.mode]), core.ColorGray)
	}
	heroes := m.heroes()
	names := make([]string, len(heroes))
	for i, h := range heroes {
		names[i] = fmt.Sprintf("%c %-10s %-8s %3d HP", h.Glyph, h.Name, h.Mythology(), h.Health)
	}
	drawList(s, y+3, names, m.menu.hero)
}
