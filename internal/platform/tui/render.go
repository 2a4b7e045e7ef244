package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/cooldown"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/game"
	"github.com/vovakirdan/mythfall/internal/locale"
	"github.com/vovakirdan/mythfall/internal/state"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// fillRect blanks a rectangle so overlays hide the arena beneath them.
func fillRect(s *core.Screen, r core.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, ' ')
		}
	}
}

// drawList draws a vertical menu centered on the screen, starting at row y.
func drawList(s *core.Screen, y int, items []string, cursor int) {
	for i, item := range items {
		c := core.ColorWhite
		prefix := "  "
		if i == cursor {
			c = core.ColorBrightYellow
			prefix = "> "
		}
		s.DrawTextCentered(y+i, prefix+item+"  ", c)
	}
}

// drawPanel draws a boxed overlay with a title and a menu.
func drawPanel(s *core.Screen, title string, titleColor core.Color, items []string, cursor int) {
	width := len([]rune(title)) + 8
	for _, it := range items {
		width = max(width, len([]rune(it))+8)
	}
	height := len(items) + 4
	r := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	fillRect(s, r)
	s.DrawBox(r, core.ColorGray)
	s.DrawTextCentered(r.Y+1, title, titleColor)
	drawList(s, r.Y+3, items, cursor)
}

// drawArena draws the border and every entity that has a glyph.
func drawArena(s *core.Screen, a *app.App) {
	w := a.World()
	s.DrawBox(core.NewRect(0, 1, s.Width(), s.Height()-2), core.ColorGray)

	positions := ecs.StoreOf[game.Position](w)
	ecs.StoreOf[game.Glyph](w).Each(func(e ecs.Entity, g *game.Glyph) {
		pos, ok := positions.Get(e)
		if !ok {
			return
		}
		x, y := pos.Cell()
		c := g.Color
		if cooldown.Active[game.HitFlash](w, e) {
			c = core.ColorBrightRed
		}
		s.SetColored(x, y, g.Rune, c)
	})
}

// drawHUD draws the status line: health, progress, dash and foes.
func drawHUD(s *core.Screen, a *app.App, loc *locale.Localizer) {
	w := a.World()
	p, h, ok := game.HeroStatus(a)
	if !ok {
		return
	}

	x := 1
	hp := loc.T("hud.health", h.Current, h.Max)
	s.DrawTextColored(x, 0, hp, core.ColorBrightWhite)
	x += len([]rune(hp)) + 1
	frac := 0.0
	if h.Max > 0 {
		frac = float64(h.Current) / float64(h.Max)
	}
	barColor := core.ColorGreen
	if frac < 0.3 {
		barColor = core.ColorRed
	}
	s.DrawBar(x, 0, 10, frac, barColor)
	x += 12

	var parts []string
	if cur, ok := ecs.Resource[game.ActiveMode](w); ok {
		pr := cur.Mode.Progress(w)
		parts = append(parts, loc.T("hud."+pr.Stage, pr.Current, pr.Total))
		parts = append(parts, loc.T("hud.next", int(pr.Next.Seconds()+0.999)))
	}
	if e, ok := heroEntity(w); ok && cooldown.Active[game.DashCooldown](w, e) {
		parts = append(parts, loc.T("hud.dash_wait", cooldown.Remaining[game.DashCooldown](w, e).Seconds()))
	} else {
		parts = append(parts, loc.T("hud.dash_ready"))
	}
	parts = append(parts, loc.T("hud.enemies", ecs.StoreOf[game.Enemy](w).Len()))
	s.DrawTextColored(x, 0, strings.Join(parts, "  "), core.ColorCyan)

	name := fmt.Sprintf("%s (%s)", p.Hero.Name, p.Hero.Mythology())
	if nx := s.Width() - len([]rune(name)) - 1; nx > 0 {
		s.DrawTextColored(nx, s.Height()-1, name, core.ColorGray)
	}
}

func heroEntity(w *ecs.World) (ecs.Entity, bool) {
	es := ecs.StoreOf[game.Player](w).Entities()
	if len(es) == 0 {
		return 0, false
	}
	return es[0], true
}

// drawGame draws the Game screen for the current GameState.
func drawGame(s *core.Screen, a *app.App, loc *locale.Localizer) {
	switch app.CurrentState[state.GameState](a) {
	case state.None, state.Setup, state.Loading, state.Restart:
		myth := ""
		if p, _, ok := game.HeroStatus(a); ok {
			myth = p.Hero.Mythology()
		}
		s.DrawTextCentered(s.Height()/2, loc.T("loading", myth), core.ColorGray)
		return
	}
	drawArena(s, a)
	drawHUD(s, a, loc)
}
