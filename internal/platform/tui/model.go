package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/console"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/game"
	"github.com/vovakirdan/mythfall/internal/locale"
	"github.com/vovakirdan/mythfall/internal/state"
)

const consoleLines = 6

// Options configures a Model.
type Options struct {
	App      *app.App
	Locale   *locale.Localizer
	Settings *config.Settings // nil disables persisting console changes
	Runs     RunLister        // nil hides recorded runs
	Runtime  core.RuntimeConfig
	Keys     KeyMap
}

// Model is the Bubble Tea model that hosts one game App.
type Model struct {
	app      *app.App
	loc      *locale.Localizer
	console  *console.Console
	runs     RunLister
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	config   core.RuntimeConfig
	input    core.InputFrame
	prompt   textinput.Model
	output   []string
	menu     menuState
	history  *HistoryModel
	status   string
	lastGame state.GameState
	quitting bool
}

// NewModel creates a model around an already built App.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	keys := opts.Keys
	if keys.bindings == nil {
		keys = DefaultKeyMap()
	}

	prompt := textinput.New()
	prompt.Prompt = "> "
	prompt.CharLimit = 120

	m := Model{
		app:     opts.App,
		loc:     opts.Locale,
		console: console.New(opts.App, opts.Locale, opts.Settings),
		runs:    opts.Runs,
		keys:    keys,
		help:    help.New(),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:  cfg,
		input:   core.NewInputFrame(),
		prompt:  prompt,
	}
	game.ResizeArena(m.app, cfg.ScreenW, cfg.ScreenH-1)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// Context reports which key context the model is in.
func (m Model) Context() Context {
	switch app.CurrentState[state.AppState](m.app) {
	case state.MainMenu, state.GameModeSelectionScreen:
		return ContextMenu
	}
	switch app.CurrentState[state.GameState](m.app) {
	case state.Won, state.Over:
		return ContextOver
	case state.Paused:
		if game.CurrentOverlays(m.app).Console {
			return ContextConsole
		}
		return ContextPause
	}
	return ContextGame
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.history != nil {
		h, cmd, back := m.history.Update(msg)
		m.history = &h
		if back {
			m.history = nil
		}
		return m, cmd
	}

	ctx := m.Context()
	action := m.keys.Resolve(msg, ctx)
	switch ctx {
	case ContextMenu:
		return m.handleMenu(action)
	case ContextGame:
		if action != core.ActionNone {
			m.input.Set(action)
		}
	case ContextPause:
		m.handlePauseMenu(action)
	case ContextOver:
		return m.handleOverMenu(action)
	case ContextConsole:
		return m.handleConsole(msg, action)
	}
	return m, nil
}

func (m Model) handleConsole(msg tea.KeyMsg, action core.Action) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, action == core.ActionConsole:
		game.SetConsole(m.app, false)
		m.prompt.Blur()
		return m, nil
	case msg.Type == tea.KeyEnter:
		line := m.prompt.Value()
		m.prompt.Reset()
		if line == "" {
			return m, nil
		}
		m.output = append(m.output, "> "+line)
		m.output = append(m.output, m.console.Exec(line)...)
		if n := len(m.output); n > 200 {
			m.output = m.output[n-200:]
		}
		return m, nil
	}
	var cmd tea.Cmd
	if !m.prompt.Focused() {
		cmd = m.prompt.Focus()
	}
	var inputCmd tea.Cmd
	m.prompt, inputCmd = m.prompt.Update(msg)
	return m, tea.Batch(cmd, inputCmd)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	game.ResizeArena(m.app, msg.Width, max(msg.Height-1, 1))
	if m.history != nil {
		h, _, _ := m.history.Update(msg)
		m.history = &h
	}
	return m, nil
}

// handleTick hands the collected input to the App and advances one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	game.SetInput(m.app, m.input)
	m.app.Update(m.config.FrameDuration())
	m.input = core.NewInputFrame()

	if gs := app.CurrentState[state.GameState](m.app); gs != m.lastGame {
		m.menu.pause, m.menu.over = 0, 0
		m.lastGame = gs
	}
	if m.app.ExitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".mythfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("mythfall_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// draw renders the current screen into the buffer.
func (m *Model) draw() {
	m.screen.Clear()
	switch app.CurrentState[state.AppState](m.app) {
	case state.MainMenu:
		m.drawMainMenu()
	case state.GameModeSelectionScreen:
		m.drawSelection()
	case state.Game:
		drawGame(m.screen, m.app, m.loc)
		m.drawOverlays()
	}
	if m.status != "" {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.status, core.ColorRed)
	}
}

func (m *Model) drawOverlays() {
	switch app.CurrentState[state.GameState](m.app) {
	case state.Paused:
		if game.CurrentOverlays(m.app).Console {
			m.drawConsole()
			return
		}
		drawPanel(m.screen, m.loc.T("pause.title"), core.ColorBrightWhite, m.pauseItems(), m.menu.pause)
	case state.Won:
		drawPanel(m.screen, m.loc.T("over.won"), core.ColorBrightYellow, m.overItems(), m.menu.over)
	case state.Over:
		drawPanel(m.screen, m.loc.T("over.lost"), core.ColorBrightRed, m.overItems(), m.menu.over)
	}
}

func (m *Model) drawConsole() {
	s := m.screen
	height := min(consoleLines+3, s.Height())
	r := core.NewRect(0, s.Height()-height, s.Width(), height)
	fillRect(s, r)
	s.DrawBox(r, core.ColorCyan)
	s.DrawTextColored(2, r.Y, " "+m.loc.T("console.title")+" - "+m.loc.T("console.hint")+" ", core.ColorCyan)

	lines := m.output
	if n := len(lines); n > consoleLines {
		lines = lines[n-consoleLines:]
	}
	for i, l := range lines {
		s.DrawText(2, r.Y+1+i, l)
	}
	s.DrawTextColored(2, r.Bottom()-2, m.prompt.Prompt+m.prompt.Value()+"_", core.ColorBrightWhite)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View(m.loc.T("history.title"))
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Help(m.Context())))
}

// Run starts the Bubble Tea program for one local player.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
