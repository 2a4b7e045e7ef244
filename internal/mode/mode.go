// Package mode defines the rulesets a run is played under. A mode's Setup
// inserts its GameMode[M] resource and the counters and timers it owns;
// Cleanup removes them again.
package mode

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/mythfall/internal/ecs"
)

var (
	// ErrAlreadyActive is returned when a mode is set up twice without cleanup.
	ErrAlreadyActive = errors.New("mode: already active")
	// ErrNoMode is returned when no mode exists at the selected index.
	ErrNoMode = errors.New("mode: no mode selected")
)

// Mode is a pluggable win and progression ruleset.
type Mode interface {
	ID() string
	Name() string
	Description() string
	// Setup inserts the mode's resources. It must be called once per activation.
	Setup(w *ecs.World) error
	// Cleanup removes the mode's resources. It is a no-op if Setup never ran.
	Cleanup(w *ecs.World)
	// Progress reports how far the current run has come.
	Progress(w *ecs.World) Progress
}

// GameMode holds the active mode of type M. Its presence means M is active.
type GameMode[M Mode] struct {
	Mode M
}

// Activate inserts GameMode[M] for m.
func Activate[M Mode](w *ecs.World, m M) error {
	if ecs.HasResource[GameMode[M]](w) {
		return fmt.Errorf("%w: %s", ErrAlreadyActive, m.ID())
	}
	ecs.InsertResource(w, &GameMode[M]{Mode: m})
	return nil
}

// Deactivate removes GameMode[M], reporting whether it was present.
func Deactivate[M Mode](w *ecs.World) bool {
	return ecs.RemoveResource[GameMode[M]](w)
}

// Active returns the active mode of type M.
func Active[M Mode](w *ecs.World) (M, bool) {
	gm, ok := ecs.Resource[GameMode[M]](w)
	if !ok {
		var zero M
		return zero, false
	}
	return gm.Mode, true
}

// Progress is a snapshot of run progression for the HUD and run history.
type Progress struct {
	Stage    string // "wave" or "chapter"
	Current  int
	Total    int
	Next     time.Duration // until the current stage ends
	Elapsed  time.Duration
	Complete bool
}

// SpawnQueue collects enemy spawns requested by mode progression.
type SpawnQueue struct {
	Pending int
	Speed   float64
	Damage  int
}

// Push queues n more enemies with the given stats.
func (q *SpawnQueue) Push(n int, speed float64, damage int) {
	q.Pending += n
	q.Speed = speed
	q.Damage = damage
}

// Take returns and clears the pending count.
func (q *SpawnQueue) Take() int {
	n := q.Pending
	q.Pending = 0
	return n
}

// Objective is set by a mode when its win condition is met.
type Objective struct {
	Complete bool
}
