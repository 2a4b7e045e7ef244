// Package cooldown attaches per-entity countdowns keyed by a tag type, so one
// entity can carry several independent cooldowns at once.
package cooldown

import (
	"time"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/timer"
)

// Cooldown is a countdown attached to an entity. T only distinguishes stores.
type Cooldown[T any] struct {
	timer timer.Timer
}

// Remaining returns the time left before expiry.
func (c Cooldown[T]) Remaining() time.Duration { return c.timer.Remaining() }

// Start attaches a cooldown of length d to e, replacing any existing one for
// the same tag. A non-positive d clears the cooldown instead.
func Start[T any](w *ecs.World, e ecs.Entity, d time.Duration) {
	store := ecs.StoreOf[Cooldown[T]](w)
	if d <= 0 {
		store.Remove(e)
		return
	}
	store.Set(e, Cooldown[T]{timer: timer.New(d, timer.Once)})
}

// Active reports whether e is on cooldown for T.
func Active[T any](w *ecs.World, e ecs.Entity) bool {
	return ecs.StoreOf[Cooldown[T]](w).Has(e)
}

// Remaining returns the time left on e's cooldown for T, or zero.
func Remaining[T any](w *ecs.World, e ecs.Entity) time.Duration {
	c, ok := ecs.StoreOf[Cooldown[T]](w).Get(e)
	if !ok {
		return 0
	}
	return c.Remaining()
}

// Clear removes e's cooldown for T.
func Clear[T any](w *ecs.World, e ecs.Entity) {
	ecs.StoreOf[Cooldown[T]](w).Remove(e)
}

// Tick advances every cooldown for T by dt and removes the ones that finish,
// returning their entities in attachment order.
func Tick[T any](w *ecs.World, dt time.Duration) []ecs.Entity {
	store := ecs.StoreOf[Cooldown[T]](w)
	var expired []ecs.Entity
	store.Each(func(e ecs.Entity, c *Cooldown[T]) {
		c.timer.Tick(dt)
		if c.timer.Finished() {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		store.Remove(e)
	}
	return expired
}

// TickSystem returns a system that ticks Cooldown[T] on the physics clock.
func TickSystem[T any]() app.System {
	return func(a *app.App) {
		Tick[T](a.World(), a.Physics().Delta())
	}
}

// Plugin ticks Cooldown[T] during PreUpdate, ahead of every system that
// checks Active.
type Plugin[T any] struct {
	Name string
}

// Build registers the tick system under Name, or "cooldown" if empty.
func (p Plugin[T]) Build(a *app.App) {
	name := p.Name
	if name == "" {
		name = "cooldown"
	}
	a.AddSystem(app.PreUpdate, name, TickSystem[T]())
}
