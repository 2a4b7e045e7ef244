package game

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/content"
	"github.com/vovakirdan/mythfall/internal/cooldown"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/mode"
)

const (
	steerHold     = 250 * time.Millisecond
	contactRadius = 1.0
	flashPlayer   = 200 * time.Millisecond
	flashEnemy    = 120 * time.Millisecond
)

var (
	// ErrNoHero is returned by hero commands outside of a run.
	ErrNoHero = errors.New("no hero in play")
	// ErrStackFull is returned when an inventory stack is at its limit.
	ErrStackFull = errors.New("stack is full")
	// ErrNotUsable is returned when using an item with no use effect.
	ErrNotUsable = errors.New("item cannot be used")
	// ErrNotCarried is returned when using an item the hero does not hold.
	ErrNotCarried = errors.New("item not carried")
)

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	es := ecs.StoreOf[Player](w).Entities()
	if len(es) == 0 {
		return 0, false
	}
	return es[0], true
}

func heroMythology(w *ecs.World) string {
	e, ok := playerEntity(w)
	if !ok {
		return ""
	}
	p, _ := ecs.StoreOf[Player](w).Get(e)
	return p.Hero.Mythology()
}

func spawnHero(a *app.App, hero content.Hero) error {
	w := a.World()
	arena := ecs.MustResource[Arena](w).Bounds

	items := ecs.MustResource[content.Registries](w).Items
	inv := &content.Inventory{}
	for _, st := range hero.StartingItems {
		if item, err := items.Get(st.ItemID); err == nil {
			st = item.Instantiate(st.Quantity)
		}
		inv.Add(st)
	}
	stats, err := heroStats(w, hero, inv)

	cx, cy := arena.Center()
	e := w.Spawn()
	ecs.StoreOf[Position](w).Set(e, Position{core.Vec{X: float64(cx), Y: float64(cy)}})
	ecs.StoreOf[Velocity](w).Set(e, Velocity{})
	ecs.StoreOf[Health](w).Set(e, Health{Current: stats.MaxHealth, Max: stats.MaxHealth})
	ecs.StoreOf[Player](w).Set(e, Player{Hero: hero, Stats: stats, Facing: core.Vec{X: 1}})
	ecs.StoreOf[Glyph](w).Set(e, Glyph{Rune: hero.Glyph, Color: core.ColorBrightWhite})
	ecs.StoreOf[content.Inventory](w).Set(e, *inv)
	ecs.StoreOf[RunEntity](w).Set(e, RunEntity{})
	return err
}

// RefreshPlayerStats recomputes the hero's stats from perks and carried
// relics, keeping the same share of health.
func RefreshPlayerStats(a *app.App) error {
	w := a.World()
	e, ok := playerEntity(w)
	if !ok {
		return nil
	}
	inv, _ := ecs.StoreOf[content.Inventory](w).Get(e)

	var err error
	ecs.StoreOf[Player](w).Update(e, func(p *Player) {
		var s content.Stats
		s, err = heroStats(w, p.Hero, &inv)
		p.Stats = s
	})
	if err != nil {
		return err
	}
	p, _ := ecs.StoreOf[Player](w).Get(e)
	ecs.StoreOf[Health](w).Update(e, func(h *Health) {
		if h.Max > 0 {
			h.Current = h.Current * p.Stats.MaxHealth / h.Max
		}
		h.Max = p.Stats.MaxHealth
	})
	return nil
}

// GiveItem instantiates qty of an item into the hero's inventory and
// refreshes the hero's stats. The returned stack holds the quantity the
// inventory actually took.
func GiveItem(a *app.App, itemID string, qty int) (content.ItemStack, error) {
	w := a.World()
	e, ok := playerEntity(w)
	if !ok {
		return content.ItemStack{}, ErrNoHero
	}
	item, err := ecs.MustResource[content.Registries](w).Items.Get(itemID)
	if err != nil {
		return content.ItemStack{}, err
	}
	st := item.Instantiate(qty)
	ecs.StoreOf[content.Inventory](w).Update(e, func(inv *content.Inventory) { st.Quantity = inv.Add(st) })
	if st.Quantity == 0 {
		return st, fmt.Errorf("%s: %w", itemID, ErrStackFull)
	}
	return st, RefreshPlayerStats(a)
}

// UseItem spends one of a usable item and heals the hero, never past
// maximum health. It returns the health restored.
func UseItem(a *app.App, itemID string) (int, error) {
	w := a.World()
	e, ok := playerEntity(w)
	if !ok {
		return 0, ErrNoHero
	}
	item, err := ecs.MustResource[content.Registries](w).Items.Get(itemID)
	if err != nil {
		return 0, err
	}
	usable, ok := item.(content.Usable)
	if !ok {
		return 0, fmt.Errorf("%s: %w", itemID, ErrNotUsable)
	}

	removed := 0
	ecs.StoreOf[content.Inventory](w).Update(e, func(inv *content.Inventory) { removed = inv.Remove(itemID, 1) })
	if removed == 0 {
		return 0, fmt.Errorf("%s: %w", itemID, ErrNotCarried)
	}

	healed := 0
	ecs.StoreOf[Health](w).Update(e, func(h *Health) {
		next := min(h.Current+usable.HealAmount(), h.Max)
		healed = max(next-h.Current, 0)
		h.Current += healed
	})
	a.Logger().Debug("item used", "item", itemID, "healed", healed)
	return healed, nil
}

// HeroInventory returns the stacks the hero carries.
func HeroInventory(a *app.App) ([]content.ItemStack, error) {
	e, ok := playerEntity(a.World())
	if !ok {
		return nil, ErrNoHero
	}
	inv, _ := ecs.StoreOf[content.Inventory](a.World()).Get(e)
	return inv.Stacks(), nil
}

// HeroStatus returns the hero component and health of the current run.
func HeroStatus(a *app.App) (Player, Health, bool) {
	w := a.World()
	e, ok := playerEntity(w)
	if !ok {
		return Player{}, Health{}, false
	}
	p, _ := ecs.StoreOf[Player](w).Get(e)
	h, _ := ecs.StoreOf[Health](w).Get(e)
	return p, h, true
}

// heroStats applies the configured health scale on top of perks and relics.
func heroStats(w *ecs.World, hero content.Hero, inv *content.Inventory) (content.Stats, error) {
	s, err := ecs.MustResource[content.Registries](w).HeroStats(hero, inv)
	if pct := ecs.MustResource[config.GameConfig](w).Player.HealthPercent; pct > 0 {
		s.MaxHealth = max(s.MaxHealth*pct/100, 1)
	}
	return s, err
}

func steerPlayer(a *app.App) {
	w := a.World()
	e, ok := playerEntity(w)
	if !ok {
		return
	}
	cfg := ecs.MustResource[config.GameConfig](w).Player
	dir := ecs.MustResource[Input](w).Direction()

	if dir.Len() > 0 {
		cooldown.Start[Steering](w, e, steerHold)
	}
	steering := cooldown.Active[Steering](w, e)
	dashing := cooldown.Active[Dashing](w, e)

	var p Player
	ecs.StoreOf[Player](w).Update(e, func(pl *Player) {
		if dir.Len() > 0 {
			pl.Steer = dir
			pl.Facing = dir
		} else if !steering {
			pl.Steer = core.Vec{}
		}
		p = *pl
	})

	v := p.Steer.Scale(cfg.Speed * p.Stats.SpeedMul)
	if dashing {
		v = p.Facing.Scale(cfg.DashSpeed * p.Stats.SpeedMul)
	}
	ecs.StoreOf[Velocity](w).Set(e, Velocity{v})
}

func dashPlayer(a *app.App) {
	w := a.World()
	e, ok := playerEntity(w)
	if !ok || !ecs.MustResource[Input](w).Has(core.ActionDash) {
		return
	}
	if cooldown.Active[DashCooldown](w, e) {
		return
	}
	cfg := ecs.MustResource[config.GameConfig](w).Player
	p, _ := ecs.StoreOf[Player](w).Get(e)

	cooldown.Start[Dashing](w, e, cfg.DashDuration)
	cd := time.Duration(float64(cfg.DashCooldown) * p.Stats.DashCooldownMul)
	cooldown.Start[DashCooldown](w, e, cd)
	ecs.StoreOf[Velocity](w).Set(e, Velocity{p.Facing.Scale(cfg.DashSpeed * p.Stats.SpeedMul)})
}

func chaseEnemies(a *app.App) {
	w := a.World()
	pe, ok := playerEntity(w)
	if !ok {
		return
	}
	target, _ := ecs.StoreOf[Position](w).Get(pe)
	positions := ecs.StoreOf[Position](w)
	velocities := ecs.StoreOf[Velocity](w)

	ecs.StoreOf[Enemy](w).Each(func(e ecs.Entity, en *Enemy) {
		pos, _ := positions.Get(e)
		dir := target.Sub(pos.Vec).Normalized()
		velocities.Set(e, Velocity{dir.Scale(en.Speed)})
	})
}

func integrate(a *app.App) {
	w := a.World()
	dt := a.FixedDelta().Seconds()
	bounds := ecs.MustResource[Arena](w).Bounds
	velocities := ecs.StoreOf[Velocity](w)

	ecs.StoreOf[Position](w).Each(func(e ecs.Entity, p *Position) {
		v, ok := velocities.Get(e)
		if !ok {
			return
		}
		p.Vec = p.Add(v.Scale(dt)).ClampTo(bounds)
	})
}

// resolveContacts applies dash hits to enemies and contact damage to the hero.
func resolveContacts(a *app.App) {
	w := a.World()
	pe, ok := playerEntity(w)
	if !ok {
		return
	}
	cfg := ecs.MustResource[config.GameConfig](w).Player
	positions := ecs.StoreOf[Position](w)
	healths := ecs.StoreOf[Health](w)
	ppos, _ := positions.Get(pe)
	player, _ := ecs.StoreOf[Player](w).Get(pe)
	dashing := cooldown.Active[Dashing](w, pe)

	var killed []ecs.Entity
	ecs.StoreOf[Enemy](w).Each(func(e ecs.Entity, en *Enemy) {
		pos, _ := positions.Get(e)
		if pos.Sub(ppos.Vec).Len() > contactRadius {
			return
		}

		if dashing {
			if cooldown.Active[Struck](w, e) {
				return
			}
			cooldown.Start[Struck](w, e, cfg.DashDuration)
			cooldown.Start[HitFlash](w, e, flashEnemy)
			healths.Update(e, func(h *Health) { h.Current-- })
			if h, _ := healths.Get(e); h.Dead() {
				killed = append(killed, e)
			}
			return
		}

		if cooldown.Active[Invulnerable](w, pe) {
			return
		}
		dmg := int(math.Ceil(float64(en.Damage) * player.Stats.DamageTakenMul))
		healths.Update(pe, func(h *Health) { h.Current = max(h.Current-dmg, 0) })
		cooldown.Start[Invulnerable](w, pe, cfg.Invulnerability)
		cooldown.Start[HitFlash](w, pe, flashPlayer)
	})

	if len(killed) == 0 {
		return
	}
	for _, e := range killed {
		w.Despawn(e)
	}
	if stats, ok := ecs.Resource[RunStats](w); ok {
		stats.Kills += len(killed)
	}
}

// spawnEnemies drains the mode's spawn queue onto the arena edge.
func spawnEnemies(a *app.App) {
	w := a.World()
	q, ok := ecs.Resource[mode.SpawnQueue](w)
	if !ok || q.Pending == 0 {
		return
	}
	cfg := ecs.MustResource[config.GameConfig](w).Enemy
	reg := ecs.MustResource[content.Registries](w)
	rng := ecs.MustResource[RNG](w)
	bounds := ecs.MustResource[Arena](w).Bounds

	packs := reg.EnemyPacksFor(heroMythology(w))
	n := q.Take()
	if len(packs) == 0 {
		return
	}
	if cfg.MaxAlive > 0 {
		n = min(n, cfg.MaxAlive-ecs.StoreOf[Enemy](w).Len())
	}

	for i := 0; i < n; i++ {
		kind := packs[rng.Intn(len(packs))].Pick(rng.Rand)
		e := w.Spawn()
		ecs.StoreOf[Position](w).Set(e, Position{edgePoint(rng, bounds)})
		ecs.StoreOf[Velocity](w).Set(e, Velocity{})
		ecs.StoreOf[Health](w).Set(e, Health{Current: kind.Health, Max: kind.Health})
		ecs.StoreOf[Enemy](w).Set(e, Enemy{Kind: kind, Speed: q.Speed * kind.SpeedMul, Damage: q.Damage})
		ecs.StoreOf[Glyph](w).Set(e, Glyph{Rune: kind.Glyph, Color: kind.Color})
		ecs.StoreOf[RunEntity](w).Set(e, RunEntity{})
	}
	if n > 0 {
		a.Logger().Debug("enemies spawned", "count", n)
	}
}

func edgePoint(rng *RNG, r core.Rect) core.Vec {
	x := float64(r.X + rng.Intn(r.W))
	y := float64(r.Y + rng.Intn(r.H))
	switch rng.Intn(4) {
	case 0:
		y = float64(r.Y)
	case 1:
		y = float64(r.Bottom() - 1)
	case 2:
		x = float64(r.X)
	default:
		x = float64(r.Right() - 1)
	}
	return core.Vec{X: x, Y: y}
}

func tickRunClock(a *app.App) {
	if stats, ok := ecs.Resource[RunStats](a.World()); ok {
		stats.Elapsed += a.Physics().Delta()
	}
}
