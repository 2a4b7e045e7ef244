// Package game wires the run lifecycle: the AppState and GameState machines,
// the hooks that set up and tear down a mode, the pause guard over the
// physics and effects clocks, and the gameplay systems of a run.
package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/content"
	"github.com/vovakirdan/mythfall/internal/cooldown"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/mode"
	"github.com/vovakirdan/mythfall/internal/state"
	"github.com/vovakirdan/mythfall/internal/storage"
)

// Options configures NewApp.
type Options struct {
	Config     config.GameConfig
	Runtime    core.RuntimeConfig
	Logger     *log.Logger
	Packs      []content.Pack
	Catalog    *mode.Catalog
	Saver      RunSaver
	Difficulty string
}

// NewApp builds an App with content, modes and the lifecycle installed.
func NewApp(opts Options) *app.App {
	substeps := opts.Runtime.Substeps
	if substeps <= 0 {
		substeps = opts.Config.Runtime.Substeps
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = mode.DefaultCatalog(opts.Config)
	}

	a := app.New(app.WithLogger(opts.Logger), app.WithSubsteps(substeps))
	a.AddPlugins(
		content.Plugin{Packs: opts.Packs},
		Plugin{Config: opts.Config, Runtime: opts.Runtime, Saver: opts.Saver, Difficulty: opts.Difficulty},
		mode.Plugin{Catalog: catalog},
	)
	return a
}

// Plugin installs the lifecycle. It expects content.Registries to be present.
type Plugin struct {
	Config     config.GameConfig
	Runtime    core.RuntimeConfig
	Saver      RunSaver
	Difficulty string
}

func (p Plugin) Build(a *app.App) {
	w := a.World()

	app.AddState(a, state.New(state.MainMenu).WithRules(state.AppRules()))
	app.AddState(a, state.New(state.None).WithRules(state.GameRules()))

	cfg := p.Config
	ecs.InsertResource(w, &cfg)
	ecs.InsertResource(w, &Input{InputFrame: core.NewInputFrame()})
	ecs.InsertResource(w, &Overlays{})
	ecs.InsertResource(w, &PauseGuard{})
	ecs.InsertResource(w, &Arena{Bounds: arenaBounds(p.Runtime)})
	ecs.InsertResource(w, &RNG{Rand: rand.New(rand.NewSource(seed(p.Runtime.Seed)))})
	ecs.InsertResource(w, &Recorder{Saver: p.Saver, Difficulty: p.Difficulty, Timeout: 2 * time.Second})

	sel := &Selection{}
	if reg, ok := ecs.Resource[content.Registries](w); ok {
		if heroes := reg.Heroes.IDs(); len(heroes) > 0 {
			sel.HeroID = heroes[0]
		}
	}
	ecs.InsertResource(w, sel)

	// AppState hooks
	app.OnEnter(a, state.Game, "game.enter", func(a *app.App) {
		app.SetNextState(a, state.Setup)
	})
	app.OnExit(a, state.Game, "game.exit", func(a *app.App) {
		cleanupRun(a)
		app.SetNextState(a, state.None)
	})

	// GameState hooks
	app.OnEnter(a, state.Setup, "run.setup", setupRun)
	app.OnEnter(a, state.Paused, "clocks.pause", pauseClocks)
	app.OnExit(a, state.Paused, "clocks.resume", resumeClocks)
	app.OnEnter(a, state.Won, "run.record", finishRun)
	app.OnEnter(a, state.Over, "run.record", finishRun)
	app.OnEnter(a, state.Restart, "run.cleanup", cleanupRun)

	// Cooldowns tick before anything reads them.
	a.AddPlugins(
		cooldown.Plugin[DashCooldown]{Name: "cooldown.dash"},
		cooldown.Plugin[Dashing]{Name: "cooldown.dashing"},
		cooldown.Plugin[Steering]{Name: "cooldown.steering"},
		cooldown.Plugin[Invulnerable]{Name: "cooldown.invulnerable"},
		cooldown.Plugin[Struck]{Name: "cooldown.struck"},
	)
	a.AddSystem(app.PreUpdate, "cooldown.flash", func(a *app.App) {
		cooldown.Tick[HitFlash](a.World(), a.Effects().Delta())
	})

	inGame := app.InState(state.Game)
	playing := app.InState(state.Playing)

	// Transition systems
	a.AddSystem(app.PreUpdate, "input.overlays", toggleOverlays, inGame)
	a.AddSystem(app.PreUpdate, "pause.sync", syncPause, inGame)
	a.AddSystem(app.PreUpdate, "end.menu", endMenuInput, inGame, runEnded)
	a.AddSystem(app.PreUpdate, "setup.done", finishSetup, app.InState(state.Setup))
	a.AddSystem(app.PreUpdate, "loading.gate", loadingGate, app.InState(state.Loading))
	a.AddSystem(app.PreUpdate, "restart", func(a *app.App) {
		app.SetNextState(a, state.Setup)
	}, app.InState(state.Restart))

	// Gameplay
	a.AddSystem(app.PreUpdate, "player.steer", steerPlayer, playing)
	a.AddSystem(app.PreUpdate, "player.dash", dashPlayer, playing)
	a.AddSystem(app.FixedUpdate, "enemy.chase", chaseEnemies, playing)
	a.AddSystem(app.FixedUpdate, "physics.integrate", integrate, playing)
	a.AddSystem(app.FixedUpdate, "physics.contact", resolveContacts, playing)
	a.AddSystem(app.Update, "enemy.spawn", spawnEnemies, playing)
	a.AddSystem(app.Update, "run.clock", tickRunClock, playing)
	a.AddSystem(app.Update, "run.end", checkEndConditions, playing)
}

func runEnded(a *app.App) bool {
	gs := app.CurrentState[state.GameState](a)
	return gs == state.Won || gs == state.Over
}

// setupRun activates the selected mode and spawns the hero. Failures send the
// app back to the main menu.
func setupRun(a *app.App) {
	w := a.World()
	logger := a.Logger()
	sel := ecs.MustResource[Selection](w)
	reg := ecs.MustResource[content.Registries](w)
	catalog := ecs.MustResource[mode.Catalog](w)

	abort := func(msg string, err error) {
		logger.Error(msg, "err", err)
		app.SetNextState(a, state.MainMenu)
	}

	m, err := catalog.At(sel.ModeIndex)
	if err != nil {
		abort("run setup failed", err)
		return
	}
	hero, err := reg.Heroes.Get(sel.HeroID)
	if err != nil {
		abort("run setup failed", err)
		return
	}
	if err := m.Setup(w); err != nil {
		abort("mode setup failed", err)
		return
	}

	ecs.InsertResource(w, &ActiveMode{Mode: m})
	ecs.RemoveResource[Result](w)
	ecs.InsertResource(w, &RunStats{})

	if err := spawnHero(a, hero); err != nil {
		logger.Warn("hero spawned without full stats", "hero", hero.ID(), "err", err)
	}
	logger.Info("run set up", "mode", m.ID(), "hero", hero.ID())
}

func finishSetup(a *app.App) {
	if ecs.HasResource[ActiveMode](a.World()) {
		app.SetNextState(a, state.Loading)
	}
}

// loadingGate holds the run in Loading until the hero and its enemies exist.
func loadingGate(a *app.App) {
	w := a.World()
	if _, ok := playerEntity(w); !ok {
		return
	}
	reg := ecs.MustResource[content.Registries](w)
	if len(reg.EnemyPacksFor(heroMythology(w))) == 0 {
		a.Logger().Error("no enemy packs for mythology", "mythology", heroMythology(w))
		app.SetNextState(a, state.MainMenu)
		return
	}
	app.SetNextState(a, state.Playing)
}

// cleanupRun tears down the current run. It is a no-op when no run was set up.
func cleanupRun(a *app.App) {
	w := a.World()
	if cur, ok := ecs.Resource[ActiveMode](w); ok {
		cur.Mode.Cleanup(w)
		ecs.RemoveResource[ActiveMode](w)
		a.Logger().Debug("run cleaned up", "mode", cur.Mode.ID())
	}
	for _, e := range ecs.StoreOf[RunEntity](w).Entities() {
		w.Despawn(e)
	}
	ecs.RemoveResource[Result](w)
	*ecs.MustResource[Overlays](w) = Overlays{}
}

// pauseClocks records which clocks were already paused, then pauses both.
func pauseClocks(a *app.App) {
	guard := ecs.MustResource[PauseGuard](a.World())
	guard.PhysicsWasPaused = a.Physics().IsPaused()
	guard.EffectsWasPaused = a.Effects().IsPaused()
	a.Physics().Pause()
	a.Effects().Pause()
}

// resumeClocks resumes only the clocks pauseClocks found running.
func resumeClocks(a *app.App) {
	guard := ecs.MustResource[PauseGuard](a.World())
	if !guard.PhysicsWasPaused {
		a.Physics().Resume()
	}
	if !guard.EffectsWasPaused {
		a.Effects().Resume()
	}
	*guard = PauseGuard{}
}

// finishRun saves the run once, however often Won or Over is entered.
func finishRun(a *app.App) {
	w := a.World()
	stats, ok := ecs.Resource[RunStats](w)
	if !ok || stats.Saved {
		return
	}
	stats.Saved = true

	res, _ := ecs.Resource[Result](w)
	cur, _ := ecs.Resource[ActiveMode](w)
	rec := ecs.MustResource[Recorder](w)
	if res == nil || cur == nil || rec.Saver == nil {
		return
	}

	run := storage.Run{
		Mode:       cur.Mode.ID(),
		Mythology:  heroMythology(w),
		Difficulty: rec.Difficulty,
		Result:     res.Value.String(),
		Stage:      cur.Mode.Progress(w).Current,
		Kills:      stats.Kills,
		Duration:   stats.Elapsed,
	}
	if e, ok := playerEntity(w); ok {
		p, _ := ecs.StoreOf[Player](w).Get(e)
		run.Hero = p.Hero.ID()
	}

	ctx, cancel := context.WithTimeout(context.Background(), rec.Timeout)
	defer cancel()
	if _, err := rec.Saver.SaveRun(ctx, run); err != nil {
		a.Logger().Error("failed to save run", "err", err)
		return
	}
	a.Logger().Info("run saved", "mode", run.Mode, "result", run.Result, "stage", run.Stage)
}

func arenaBounds(rc core.RuntimeConfig) core.Rect {
	w, h := rc.ScreenW, rc.ScreenH
	if w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		w, h = def.ScreenW, def.ScreenH
	}
	// One HUD line on top, one help line below, and a border.
	return core.NewRect(1, 2, max(w-2, 1), max(h-4, 1))
}

func seed(s int64) int64 {
	if s == 0 {
		return time.Now().UnixNano()
	}
	return s
}
