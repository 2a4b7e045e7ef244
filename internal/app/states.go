package app

import (
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/state"
)

type stateHooks[S comparable] struct {
	enter map[S][]registeredSystem
	exit  map[S][]registeredSystem
}

// AddState installs st as a resource and commits its pending requests at the
// state-transition point of each frame. States are applied in the order they
// were added.
func AddState[S comparable](a *App, st *state.State[S]) *state.State[S] {
	ecs.InsertResource(a.world, st)
	hooks := &stateHooks[S]{
		enter: make(map[S][]registeredSystem),
		exit:  make(map[S][]registeredSystem),
	}
	ecs.InsertResource(a.world, hooks)

	a.appliers = append(a.appliers, registeredSystem{
		name: "apply-state",
		run: func(a *App) {
			tr, changed, err := st.Apply()
			if err != nil {
				a.logger.Warn("state transition dropped", "from", tr.From, "to", tr.To, "err", err)
				return
			}
			if !changed {
				return
			}
			a.logger.Debug("state changed", "from", tr.From, "to", tr.To)
			for _, h := range hooks.exit[tr.From] {
				h.run(a)
			}
			for _, h := range hooks.enter[tr.To] {
				h.run(a)
			}
		},
	})
	return st
}

// StateOf returns the state resource for S.
func StateOf[S comparable](a *App) *state.State[S] {
	return ecs.MustResource[state.State[S]](a.world)
}

// CurrentState returns the committed value of S.
func CurrentState[S comparable](a *App) S {
	return StateOf[S](a).Current()
}

// SetNextState queues a transition for S.
func SetNextState[S comparable](a *App, v S) {
	StateOf[S](a).SetNext(v)
}

// InState is a condition that holds while S equals v.
func InState[S comparable](v S) Condition {
	return func(a *App) bool {
		st, ok := ecs.Resource[state.State[S]](a.world)
		return ok && st.Current() == v
	}
}

// NotInState is a condition that holds while S differs from v.
func NotInState[S comparable](v S) Condition {
	return func(a *App) bool {
		st, ok := ecs.Resource[state.State[S]](a.world)
		return ok && st.Current() != v
	}
}

// OnEnter runs fn when S transitions into v.
func OnEnter[S comparable](a *App, v S, name string, fn System) {
	h := ecs.MustResource[stateHooks[S]](a.world)
	h.enter[v] = append(h.enter[v], registeredSystem{name: name, run: fn})
}

// OnExit runs fn when S transitions out of v.
func OnExit[S comparable](a *App, v S, name string, fn System) {
	h := ecs.MustResource[stateHooks[S]](a.world)
	h.exit[v] = append(h.exit[v], registeredSystem{name: name, run: fn})
}
