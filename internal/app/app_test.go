package app

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mythfall/internal/state"
)

func TestPhaseOrder(t *testing.T) {
	a := New(WithSubsteps(2))
	var trace []string
	for _, p := range []Phase{PostUpdate, Update, FixedUpdate, StateTransition, PreUpdate} {
		p := p
		a.AddSystem(p, p.String(), func(*App) { trace = append(trace, p.String()) })
	}

	a.Update(16 * time.Millisecond)

	got := strings.Join(trace, ",")
	expected := "PreUpdate,StateTransition,FixedUpdate,FixedUpdate,Update,PostUpdate"
	if got != expected {
		t.Errorf("phase trace = %s, expected %s", got, expected)
	}
	if a.Frame() != 1 {
		t.Errorf("Frame() = %d, expected 1", a.Frame())
	}
}

func TestFixedSubsteps(t *testing.T) {
	a := New(WithSubsteps(4))
	var total time.Duration
	var calls int
	a.AddSystem(FixedUpdate, "integrate", func(a *App) {
		calls++
		total += a.FixedDelta()
	})

	a.Update(20 * time.Millisecond)

	if calls != 4 {
		t.Errorf("FixedUpdate ran %d times, expected 4", calls)
	}
	if total != 20*time.Millisecond {
		t.Errorf("sum of substeps = %v, expected 20ms", total)
	}
	if a.FixedDelta() != 0 {
		t.Errorf("FixedDelta() outside FixedUpdate = %v, expected 0", a.FixedDelta())
	}
}

func TestPausedPhysicsSkipsFixedUpdate(t *testing.T) {
	a := New(WithSubsteps(3))
	calls := 0
	a.AddSystem(FixedUpdate, "integrate", func(*App) { calls++ })

	a.Physics().Pause()
	a.Update(16 * time.Millisecond)
	if calls != 0 {
		t.Errorf("FixedUpdate ran %d times while paused", calls)
	}
	if a.Physics().Elapsed() != 0 {
		t.Errorf("paused physics clock advanced to %v", a.Physics().Elapsed())
	}
	if a.Effects().Elapsed() != 16*time.Millisecond {
		t.Errorf("effects clock = %v, expected 16ms", a.Effects().Elapsed())
	}

	a.Physics().Resume()
	a.Update(16 * time.Millisecond)
	if calls != 3 {
		t.Errorf("FixedUpdate ran %d times after resume, expected 3", calls)
	}
}

func TestStateRequestsApplyAtTransitionPoint(t *testing.T) {
	a := New()
	AddState(a, state.New(state.MainMenu))

	var seenInUpdate []state.AppState
	a.AddSystem(PreUpdate, "request", func(a *App) {
		if CurrentState[state.AppState](a) == state.MainMenu {
			SetNextState(a, state.GameModeSelectionScreen)
			SetNextState(a, state.Game)
		}
	})
	a.AddSystem(Update, "observe", func(a *App) {
		seenInUpdate = append(seenInUpdate, CurrentState[state.AppState](a))
	})

	a.Update(time.Millisecond)

	if len(seenInUpdate) != 1 || seenInUpdate[0] != state.Game {
		t.Errorf("Update observed %v, expected [Game]", seenInUpdate)
	}
}

func TestEnterExitHooks(t *testing.T) {
	a := New()
	AddState(a, state.New(state.None))
	var trace []string
	OnExit(a, state.None, "exit-none", func(*App) { trace = append(trace, "exit:None") })
	OnEnter(a, state.Setup, "enter-setup", func(*App) { trace = append(trace, "enter:Setup") })
	OnEnter(a, state.Loading, "enter-loading", func(*App) { trace = append(trace, "enter:Loading") })

	SetNextState(a, state.Setup)
	a.Update(0)
	a.Update(0)

	got := strings.Join(trace, ",")
	if got != "exit:None,enter:Setup" {
		t.Errorf("hook trace = %s", got)
	}
}

func TestIllegalTransitionDropped(t *testing.T) {
	a := New()
	AddState(a, state.New(state.None).WithRules(state.GameRules()))

	SetNextState(a, state.Playing)
	a.Update(0)

	if got := CurrentState[state.GameState](a); got != state.None {
		t.Errorf("CurrentState() = %v, expected None", got)
	}
}

func TestRunConditions(t *testing.T) {
	a := New()
	AddState(a, state.New(state.Playing))
	playing, paused := 0, 0
	a.AddSystem(Update, "playing", func(*App) { playing++ }, InState(state.Playing))
	a.AddSystem(Update, "paused", func(*App) { paused++ }, InState(state.Paused))

	a.Update(0)
	if playing != 1 || paused != 0 {
		t.Errorf("runs = (%d, %d), expected (1, 0)", playing, paused)
	}

	// The request commits at this frame's transition point, before Update.
	SetNextState(a, state.Paused)
	a.Update(0)
	if playing != 1 || paused != 1 {
		t.Errorf("runs = (%d, %d), expected (1, 1)", playing, paused)
	}
}
