package game

import (
	"github.com/vovakirdan/mythfall/internal/content"
	"github.com/vovakirdan/mythfall/internal/core"
)

// Position is an entity's location in arena cells.
type Position struct {
	core.Vec
}

// Velocity is in cells per second.
type Velocity struct {
	core.Vec
}

// Health of a hero or enemy.
type Health struct {
	Current int
	Max     int
}

// Dead reports whether health is exhausted.
func (h Health) Dead() bool { return h.Current <= 0 }

// Player marks the hero entity.
type Player struct {
	Hero   content.Hero
	Stats  content.Stats
	Facing core.Vec
	Steer  core.Vec
}

// Enemy marks a hostile entity.
type Enemy struct {
	Kind   content.EnemyKind
	Speed  float64
	Damage int
}

// Glyph is how an entity is drawn.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// RunEntity marks entities owned by the current run. They are despawned on cleanup.
type RunEntity struct{}

// Cooldown tags.
type (
	// DashCooldown gates the next dash.
	DashCooldown struct{}
	// Dashing is active while a dash is in progress.
	Dashing struct{}
	// Steering keeps the hero moving between key repeats.
	Steering struct{}
	// Invulnerable follows a hit.
	Invulnerable struct{}
	// Struck stops one dash from hitting the same enemy twice.
	Struck struct{}
	// HitFlash is a visual effect ticked on the effects clock.
	HitFlash struct{}
)
