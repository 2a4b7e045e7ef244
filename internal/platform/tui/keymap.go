package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mythfall/internal/core"
)

// Context is the UI situation a key press arrives in. Each context only
// resolves the actions that make sense there.
type Context int

const (
	ContextMenu Context = iota
	ContextGame
	ContextPause
	ContextConsole
	ContextOver
)

func (c Context) String() string {
	switch c {
	case ContextMenu:
		return "menu"
	case ContextGame:
		return "game"
	case ContextPause:
		return "pause"
	case ContextConsole:
		return "console"
	case ContextOver:
		return "over"
	default:
		return "unknown"
	}
}

var contextActions = map[Context][]core.Action{
	ContextMenu: {
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionConfirm, core.ActionBack, core.ActionQuit,
	},
	ContextGame: {
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionDash, core.ActionPause, core.ActionConsole,
	},
	ContextPause: {
		core.ActionUp, core.ActionDown, core.ActionConfirm,
		core.ActionBack, core.ActionPause, core.ActionConsole,
	},
	// Everything else goes to the text input.
	ContextConsole: {core.ActionConsole},
	ContextOver: {
		core.ActionUp, core.ActionDown, core.ActionConfirm,
		core.ActionRestart, core.ActionBack, core.ActionQuit,
	},
}

// KeyMap binds actions to keys.
type KeyMap struct {
	bindings map[core.Action]key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{bindings: make(map[core.Action]key.Binding)}
	km.set(core.ActionUp, "up", "up", "w", "k")
	km.set(core.ActionDown, "down", "down", "s", "j")
	km.set(core.ActionLeft, "left", "left", "a", "h")
	km.set(core.ActionRight, "right", "right", "d", "l")
	km.set(core.ActionDash, "dash", " ")
	km.set(core.ActionConfirm, "select", "enter")
	km.set(core.ActionBack, "back", "esc", "b")
	km.set(core.ActionPause, "pause", "p")
	km.set(core.ActionConsole, "console", "`")
	km.set(core.ActionRestart, "restart", "r")
	km.set(core.ActionQuit, "quit", "q")
	return km
}

func (km KeyMap) set(a core.Action, desc string, keys ...string) {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	km.bindings[a] = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(names, "/"), desc),
	)
}

// WithOverrides returns a copy with the given action bindings replaced.
// Keys are action names as stored in the settings file.
func (km KeyMap) WithOverrides(overrides map[string][]string) (KeyMap, error) {
	out := KeyMap{bindings: make(map[core.Action]key.Binding, len(km.bindings))}
	for a, b := range km.bindings {
		out.bindings[a] = b
	}
	for name, keys := range overrides {
		a, ok := core.ParseAction(strings.ToLower(name))
		if !ok {
			return km, fmt.Errorf("unknown action %q in key bindings", name)
		}
		if len(keys) == 0 {
			continue
		}
		out.set(a, out.bindings[a].Help().Desc, keys...)
	}
	return out, nil
}

// Binding returns the binding for an action.
func (km KeyMap) Binding(a core.Action) key.Binding {
	return km.bindings[a]
}

// Resolve maps a key press to an action valid in ctx.
func (km KeyMap) Resolve(msg tea.KeyMsg, ctx Context) core.Action {
	for _, a := range contextActions[ctx] {
		if key.Matches(msg, km.bindings[a]) {
			return a
		}
	}
	return core.ActionNone
}

// Help returns the bindings of one context for the help footer.
func (km KeyMap) Help(ctx Context) help.KeyMap {
	var bs []key.Binding
	for _, a := range contextActions[ctx] {
		bs = append(bs, km.bindings[a])
	}
	return contextHelp(bs)
}

type contextHelp []key.Binding

func (h contextHelp) ShortHelp() []key.Binding { return h }

func (h contextHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
