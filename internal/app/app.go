// Package app runs the per-frame schedule: ordered phases of systems over a
// shared ecs.World, queued state transitions, and a fixed-substep physics
// phase driven by a pausable virtual clock.
package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mythfall/internal/ecs"
)

// Phase identifies a stage of the frame schedule.
type Phase int

const (
	PreUpdate Phase = iota
	StateTransition
	FixedUpdate
	Update
	PostUpdate
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PreUpdate:
		return "PreUpdate"
	case StateTransition:
		return "StateTransition"
	case FixedUpdate:
		return "FixedUpdate"
	case Update:
		return "Update"
	case PostUpdate:
		return "PostUpdate"
	default:
		return "Phase(?)"
	}
}

// System is a unit of per-frame work.
type System func(a *App)

// Condition gates a system; all conditions must hold for it to run.
type Condition func(a *App) bool

// Plugin bundles systems, resources and hooks.
type Plugin interface {
	Build(a *App)
}

// PluginFunc adapts a function to Plugin.
type PluginFunc func(a *App)

// Build calls f(a).
func (f PluginFunc) Build(a *App) { f(a) }

type registeredSystem struct {
	name  string
	run   System
	conds []Condition
}

func (s registeredSystem) ready(a *App) bool {
	for _, c := range s.conds {
		if !c(a) {
			return false
		}
	}
	return true
}

// App owns the world and the schedule.
type App struct {
	world    *ecs.World
	logger   *log.Logger
	systems  [phaseCount][]registeredSystem
	appliers []registeredSystem
	substeps int

	frame      int64
	delta      time.Duration
	fixedDelta time.Duration
	exit       bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used for schedule diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithSubsteps sets how many FixedUpdate passes run per frame.
func WithSubsteps(n int) Option {
	return func(a *App) {
		if n > 0 {
			a.substeps = n
		}
	}
}

// New creates an App with physics and effects clocks installed.
func New(opts ...Option) *App {
	a := &App{
		world:    ecs.NewWorld(),
		logger:   log.New(io.Discard),
		substeps: 1,
	}
	for _, opt := range opts {
		opt(a)
	}
	ecs.InsertResource(a.world, &PhysicsTime{VirtualClock: NewVirtualClock()})
	ecs.InsertResource(a.world, &EffectsTime{VirtualClock: NewVirtualClock()})
	return a
}

// World returns the shared world.
func (a *App) World() *ecs.World { return a.world }

// Logger returns the app logger.
func (a *App) Logger() *log.Logger { return a.logger }

// Substeps returns the number of FixedUpdate passes per frame.
func (a *App) Substeps() int { return a.substeps }

// AddPlugins builds each plugin in order.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		p.Build(a)
	}
	return a
}

// AddSystem appends a system to a phase. Systems run in registration order.
func (a *App) AddSystem(phase Phase, name string, fn System, conds ...Condition) *App {
	if phase < 0 || phase >= phaseCount {
		a.logger.Error("system added to unknown phase", "system", name, "phase", int(phase))
		return a
	}
	a.systems[phase] = append(a.systems[phase], registeredSystem{name: name, run: fn, conds: conds})
	return a
}

// Update advances the clocks by dt and runs one frame.
func (a *App) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	a.delta = dt

	physics := a.Physics()
	effects := a.Effects()
	physics.Advance(dt)
	effects.Advance(dt)

	a.run(PreUpdate)

	for _, ap := range a.appliers {
		ap.run(a)
	}
	a.run(StateTransition)

	if !physics.IsPaused() {
		step := physics.Delta() / time.Duration(a.substeps)
		for i := 0; i < a.substeps; i++ {
			a.fixedDelta = step
			a.run(FixedUpdate)
		}
	}
	a.fixedDelta = 0

	a.run(Update)
	a.run(PostUpdate)
	a.frame++
}

func (a *App) run(phase Phase) {
	for _, s := range a.systems[phase] {
		if s.ready(a) {
			s.run(a)
		}
	}
}

// Frame returns the number of completed frames.
func (a *App) Frame() int64 { return a.frame }

// Delta returns the real time passed to the current frame.
func (a *App) Delta() time.Duration { return a.delta }

// FixedDelta returns the substep length inside FixedUpdate and zero elsewhere.
func (a *App) FixedDelta() time.Duration { return a.fixedDelta }

// Physics returns the physics clock.
func (a *App) Physics() *PhysicsTime { return ecs.MustResource[PhysicsTime](a.world) }

// Effects returns the effects clock.
func (a *App) Effects() *EffectsTime { return ecs.MustResource[EffectsTime](a.world) }

// RequestExit asks the host loop to stop after this frame.
func (a *App) RequestExit() { a.exit = true }

// ExitRequested reports whether RequestExit was called.
func (a *App) ExitRequested() bool { return a.exit }
