// Package content holds the descriptors that content packs register at
// startup: items, perks, enemy packs and playable heroes, grouped by
// mythology.
package content

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/registry"
)

// Stats are the tunable numbers of a hero, modified by perks and relics.
type Stats struct {
	MaxHealth       int
	SpeedMul        float64
	DashCooldownMul float64
	DamageTakenMul  float64
}

// BaseStats returns neutral multipliers for the given health.
func BaseStats(maxHealth int) Stats {
	return Stats{
		MaxHealth:       maxHealth,
		SpeedMul:        1,
		DashCooldownMul: 1,
		DamageTakenMul:  1,
	}
}

// ItemStack is an instantiated quantity of one item.
type ItemStack struct {
	ItemID   string
	Quantity int
	Limit    int // most a single stack may hold, 0 for no limit
}

// Item is anything that can be carried in an inventory.
type Item interface {
	ID() string
	Name() string
	Mythology() string
	Description() string
	Instantiate(qty int) ItemStack
}

// Usable is an item the hero can spend for an immediate effect.
type Usable interface {
	Item
	HealAmount() int
}

// Perk permanently modifies hero stats for a run.
type Perk interface {
	ID() string
	Name() string
	Mythology() string
	Apply(s *Stats)
}

// EnemyKind describes one enemy type within a pack.
type EnemyKind struct {
	Name     string
	Glyph    rune
	Color    core.Color
	Health   int
	SpeedMul float64
}

// EnemyPack is the set of enemies a mythology fields.
type EnemyPack struct {
	id        string
	mythology string
	Kinds     []EnemyKind
}

// NewEnemyPack creates a pack. It panics on an empty kind list.
func NewEnemyPack(id, mythology string, kinds ...EnemyKind) EnemyPack {
	if len(kinds) == 0 {
		panic(fmt.Sprintf("content: enemy pack %q has no kinds", id))
	}
	return EnemyPack{id: id, mythology: mythology, Kinds: kinds}
}

func (p EnemyPack) ID() string        { return p.id }
func (p EnemyPack) Mythology() string { return p.mythology }

// Pick returns a random kind.
func (p EnemyPack) Pick(rng *rand.Rand) EnemyKind {
	return p.Kinds[rng.Intn(len(p.Kinds))]
}

// Hero is a playable character.
type Hero struct {
	id            string
	Name          string
	mythology     string
	Glyph         rune
	Health        int
	StartingItems []ItemStack
	Perks         []string
}

func (h Hero) ID() string        { return h.id }
func (h Hero) Mythology() string { return h.mythology }

// Mythology groups a pantheon's content under one identifier.
type Mythology struct {
	id   string
	Name string
}

func (m Mythology) ID() string { return m.id }

// Registries are the content lookup tables shared by the whole app.
type Registries struct {
	Mythologies *registry.Registry[Mythology]
	Items       *registry.Registry[Item]
	Perks       *registry.Registry[Perk]
	Enemies     *registry.Registry[EnemyPack]
	Heroes      *registry.Registry[Hero]
}

// NewRegistries returns empty registries.
func NewRegistries() *Registries {
	return &Registries{
		Mythologies: registry.New[Mythology]("mythology"),
		Items:       registry.New[Item]("item"),
		Perks:       registry.New[Perk]("perk"),
		Enemies:     registry.New[EnemyPack]("enemy pack"),
		Heroes:      registry.New[Hero]("hero"),
	}
}

// EnemyPacksFor returns the enemy packs of one mythology.
func (r *Registries) EnemyPacksFor(mythology string) []EnemyPack {
	var packs []EnemyPack
	for _, p := range r.Enemies.List() {
		if p.Mythology() == mythology {
			packs = append(packs, p)
		}
	}
	return packs
}

// HeroStats returns a hero's stats after its perks and carried relics apply.
// Unknown perk or item IDs are reported, not ignored.
func (r *Registries) HeroStats(h Hero, inv *Inventory) (Stats, error) {
	s := BaseStats(h.Health)
	for _, id := range h.Perks {
		p, err := r.Perks.Get(id)
		if err != nil {
			return s, err
		}
		p.Apply(&s)
	}
	if inv == nil {
		return s, nil
	}
	for _, st := range inv.Stacks() {
		it, err := r.Items.Get(st.ItemID)
		if err != nil {
			return s, err
		}
		if relic, ok := it.(Relic); ok {
			relic.Bonus(&s)
		}
	}
	return s, nil
}
