package content

import (
	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/ecs"
)

// Pack registers one mythology's content.
type Pack struct {
	Mythology Mythology
	Register  func(r *Registries)
}

// DefaultPacks returns the built-in mythologies in menu order.
func DefaultPacks() []Pack {
	return []Pack{greekPack(), norsePack(), egyptianPack()}
}

// Load registers packs into r. It panics on duplicate identifiers, which
// can only come from pack definitions.
func Load(r *Registries, packs ...Pack) {
	for _, p := range packs {
		r.Mythologies.MustRegister(p.Mythology)
		p.Register(r)
	}
}

// Plugin registers content packs and inserts the Registries resource.
type Plugin struct {
	Packs []Pack
}

func (p Plugin) Build(a *app.App) {
	r := NewRegistries()
	packs := p.Packs
	if packs == nil {
		packs = DefaultPacks()
	}
	Load(r, packs...)
	ecs.InsertResource(a.World(), r)
	a.Logger().Debug("content loaded",
		"mythologies", r.Mythologies.Len(),
		"items", r.Items.Len(),
		"perks", r.Perks.Len(),
		"heroes", r.Heroes.Len(),
	)
}

func greekPack() Pack {
	const m = "greek"
	return Pack{
		Mythology: Mythology{id: m, Name: "Greek"},
		Register: func(r *Registries) {
			r.Items.MustRegister(
				NewRelic("aegis", "Aegis", m, "Takes the edge off every blow.", func(s *Stats) { s.DamageTakenMul *= 0.8 }),
				NewRelic("talaria", "Talaria", m, "Winged sandals of Hermes.", func(s *Stats) { s.SpeedMul *= 1.2 }),
				NewConsumable("ambrosia", "Ambrosia", m, "Food of the gods.", 40, 3),
			)
			r.Perks.MustRegister(
				NewStatPerk("heroic-vigor", "Heroic Vigor", m, func(s *Stats) { s.MaxHealth += 25 }),
				NewStatPerk("olympian-grace", "Olympian Grace", m, func(s *Stats) { s.DashCooldownMul *= 0.75 }),
			)
			r.Enemies.MustRegister(NewEnemyPack("greek-monsters", m,
				EnemyKind{Name: "Harpy", Glyph: 'h', Color: core.ColorYellow, Health: 1, SpeedMul: 1.3},
				EnemyKind{Name: "Satyr", Glyph: 's', Color: core.ColorGreen, Health: 2, SpeedMul: 1.0},
				EnemyKind{Name: "Cyclops", Glyph: 'C', Color: core.ColorBrightRed, Health: 4, SpeedMul: 0.6},
			))
			r.Heroes.MustRegister(Hero{
				id: "heracles", Name: "Heracles", mythology: m, Glyph: 'H', Health: 120,
				StartingItems: []ItemStack{{ItemID: "ambrosia", Quantity: 1}},
				Perks:         []string{"heroic-vigor"},
			}, Hero{
				id: "atalanta", Name: "Atalanta", mythology: m, Glyph: 'A', Health: 90,
				StartingItems: []ItemStack{{ItemID: "talaria", Quantity: 1}},
				Perks:         []string{"olympian-grace"},
			})
		},
	}
}

func norsePack() Pack {
	const m = "norse"
	return Pack{
		Mythology: Mythology{id: m, Name: "Norse"},
		Register: func(r *Registries) {
			r.Items.MustRegister(
				NewRelic("megingjord", "Megingjord", m, "Thor's belt of strength.", func(s *Stats) { s.MaxHealth += 30 }),
				NewRelic("draupnir", "Draupnir", m, "A ring that multiplies.", func(s *Stats) { s.DashCooldownMul *= 0.85 }),
				NewConsumable("mead", "Mead of Poetry", m, "Restores the spirit.", 25, 5),
			)
			r.Perks.MustRegister(
				NewStatPerk("berserkergang", "Berserkergang", m, func(s *Stats) {
					s.SpeedMul *= 1.15
					s.DamageTakenMul *= 1.1
				}),
				NewStatPerk("einherjar", "Einherjar", m, func(s *Stats) { s.DamageTakenMul *= 0.85 }),
			)
			r.Enemies.MustRegister(NewEnemyPack("norse-horde", m,
				EnemyKind{Name: "Draugr", Glyph: 'd', Color: core.ColorCyan, Health: 2, SpeedMul: 0.8},
				EnemyKind{Name: "Wolf", Glyph: 'w', Color: core.ColorGray, Health: 1, SpeedMul: 1.5},
				EnemyKind{Name: "Jotunn", Glyph: 'J', Color: core.ColorBrightBlue, Health: 5, SpeedMul: 0.5},
			))
			r.Heroes.MustRegister(Hero{
				id: "freydis", Name: "Freydis", mythology: m, Glyph: 'F', Health: 100,
				StartingItems: []ItemStack{{ItemID: "mead", Quantity: 2}},
				Perks:         []string{"berserkergang"},
			})
		},
	}
}

func egyptianPack() Pack {
	const m = "egyptian"
	return Pack{
		Mythology: Mythology{id: m, Name: "Egyptian"},
		Register: func(r *Registries) {
			r.Items.MustRegister(
				NewRelic("ankh", "Ankh", m, "The key of life.", func(s *Stats) { s.MaxHealth += 20 }),
				NewRelic("eye-of-horus", "Eye of Horus", m, "Sees danger coming.", func(s *Stats) { s.DamageTakenMul *= 0.9 }),
				NewConsumable("lotus", "Blue Lotus", m, "Soothes wounds.", 30, 3),
			)
			r.Perks.MustRegister(
				NewStatPerk("desert-wind", "Desert Wind", m, func(s *Stats) { s.SpeedMul *= 1.1 }),
			)
			r.Enemies.MustRegister(NewEnemyPack("egyptian-dead", m,
				EnemyKind{Name: "Mummy", Glyph: 'm', Color: core.ColorWhite, Health: 3, SpeedMul: 0.6},
				EnemyKind{Name: "Scarab", Glyph: 'x', Color: core.ColorBrightGreen, Health: 1, SpeedMul: 1.4},
				EnemyKind{Name: "Jackal", Glyph: 'j', Color: core.ColorOrange, Health: 2, SpeedMul: 1.1},
			))
			r.Heroes.MustRegister(Hero{
				id: "nefertari", Name: "Nefertari", mythology: m, Glyph: 'N', Health: 95,
				StartingItems: []ItemStack{{ItemID: "ankh", Quantity: 1}},
				Perks:         []string{"desert-wind"},
			})
		},
	}
}
