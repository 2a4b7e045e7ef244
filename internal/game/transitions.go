package game

import (
	"fmt"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/content"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/mode"
	"github.com/vovakirdan/mythfall/internal/state"
)

// OpenModeSelection requests the mode selection screen.
func OpenModeSelection(a *app.App) {
	app.SetNextState(a, state.GameModeSelectionScreen)
}

// StartGame records the selection and requests the Game screen.
func StartGame(a *app.App, modeIndex int, heroID string) error {
	w := a.World()
	if _, err := ecs.MustResource[mode.Catalog](w).At(modeIndex); err != nil {
		return err
	}
	hero, err := ecs.MustResource[content.Registries](w).Heroes.Get(heroID)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	sel := ecs.MustResource[Selection](w)
	sel.ModeIndex = modeIndex
	sel.HeroID = hero.ID()
	app.SetNextState(a, state.Game)
	return nil
}

// BackToMainMenu requests the main menu. Leaving the Game screen cleans up the run.
func BackToMainMenu(a *app.App) {
	app.SetNextState(a, state.MainMenu)
}

// RestartRun requests a fresh run with the same selection.
func RestartRun(a *app.App) {
	app.SetNextState(a, state.Restart)
}

// SetConsole opens or closes the console overlay.
func SetConsole(a *app.App, open bool) {
	ecs.MustResource[Overlays](a.World()).Console = open
}

// SetPauseMenu opens or closes the pause menu overlay.
func SetPauseMenu(a *app.App, open bool) {
	ecs.MustResource[Overlays](a.World()).PauseMenu = open
}

// SetInput replaces the current frame's input.
func SetInput(a *app.App, in core.InputFrame) {
	ecs.MustResource[Input](a.World()).InputFrame = in
}

// toggleOverlays maps console and pause actions onto the overlays.
func toggleOverlays(a *app.App) {
	gs := app.CurrentState[state.GameState](a)
	if gs != state.Playing && gs != state.Paused {
		return
	}
	in := ecs.MustResource[Input](a.World())
	ov := ecs.MustResource[Overlays](a.World())

	switch {
	case in.Has(core.ActionConsole):
		ov.Console = !ov.Console
	case in.Has(core.ActionPause):
		if ov.Console {
			ov.Console = false
		} else {
			ov.PauseMenu = !ov.PauseMenu
		}
	case in.Has(core.ActionBack):
		if ov.Console {
			ov.Console = false
		} else {
			ov.PauseMenu = false
		}
	}
}

// syncPause keeps Playing and Paused in step with the overlays.
func syncPause(a *app.App) {
	open := ecs.MustResource[Overlays](a.World()).Any()
	switch gs := app.CurrentState[state.GameState](a); {
	case gs == state.Playing && open:
		app.SetNextState(a, state.Paused)
	case gs == state.Paused && !open:
		app.SetNextState(a, state.Playing)
	}
}

// endMenuInput handles the end-of-run menu shortcuts.
func endMenuInput(a *app.App) {
	in := ecs.MustResource[Input](a.World())
	switch {
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
		RestartRun(a)
	case in.Has(core.ActionBack):
		BackToMainMenu(a)
	}
}

// checkEndConditions sets the Result and ends the run. Loss wins a tie.
func checkEndConditions(a *app.App) {
	w := a.World()
	if ecs.HasResource[Result](w) {
		return
	}

	if e, ok := playerEntity(w); ok {
		if h, _ := ecs.StoreOf[Health](w).Get(e); h.Dead() {
			ecs.InsertResource(w, &Result{Value: state.ResultLost})
			app.SetNextState(a, state.Over)
			a.Logger().Info("run lost")
			return
		}
	}

	if obj, ok := ecs.Resource[mode.Objective](w); ok && obj.Complete {
		ecs.InsertResource(w, &Result{Value: state.ResultWon})
		app.SetNextState(a, state.Won)
		a.Logger().Info("run won")
	}
}

// CurrentResult returns the result of a finished run.
func CurrentResult(a *app.App) (state.GameResult, bool) {
	r, ok := ecs.Resource[Result](a.World())
	if !ok {
		return 0, false
	}
	return r.Value, true
}

// CurrentOverlays reports which overlays are open.
func CurrentOverlays(a *app.App) Overlays {
	return *ecs.MustResource[Overlays](a.World())
}

// ResizeArena fits the arena to a new screen size. Entities outside are
// clamped back in on the next physics step.
func ResizeArena(a *app.App, width, height int) {
	ecs.MustResource[Arena](a.World()).Bounds = arenaBounds(core.RuntimeConfig{ScreenW: width, ScreenH: height})
}
