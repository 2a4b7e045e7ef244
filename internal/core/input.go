package core

// Action represents a semantic input action, abstracted from physical key presses.
// The platform maps keys to actions per UI context; systems only see actions.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Move up / previous menu entry
	ActionDown           // Move down / next menu entry
	ActionLeft           // Move left / previous option
	ActionRight          // Move right / next option
	ActionDash           // Dash in the current movement direction
	ActionConfirm        // Confirm selection in menus
	ActionBack           // Leave the current screen
	ActionPause          // Open or close the pause menu
	ActionConsole        // Open or close the console
	ActionRestart        // Restart the run from the end screen
	ActionQuit           // Exit the application
)

// String returns a human-readable name for the action.
// The names double as keys in the settings file's binding table.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionDash:
		return "dash"
	case ActionConfirm:
		return "confirm"
	case ActionBack:
		return "back"
	case ActionPause:
		return "pause"
	case ActionConsole:
		return "console"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ParseAction resolves an action by its String name.
func ParseAction(name string) (Action, bool) {
	for a := ActionUp; a <= ActionQuit; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame holds the actions triggered during one frame.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the movement vector implied by the directional actions.
func (f InputFrame) Direction() Vec {
	var v Vec
	if f.Has(ActionUp) {
		v.Y--
	}
	if f.Has(ActionDown) {
		v.Y++
	}
	if f.Has(ActionLeft) {
		v.X--
	}
	if f.Has(ActionRight) {
		v.X++
	}
	return v.Normalized()
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
