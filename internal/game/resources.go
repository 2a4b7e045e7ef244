package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/vovakirdan/mythfall/internal/core"
	"github.com/vovakirdan/mythfall/internal/mode"
	"github.com/vovakirdan/mythfall/internal/state"
	"github.com/vovakirdan/mythfall/internal/storage"
)

// Selection is what the player picked before entering the Game screen.
type Selection struct {
	ModeIndex int
	HeroID    string
}

// ActiveMode is the mode whose Setup ran for the current run.
type ActiveMode struct {
	Mode mode.Mode
}

// Input holds the actions of the current frame. The host replaces it before
// every Update.
type Input struct {
	core.InputFrame
}

// Overlays are the screens that pause the run while open.
type Overlays struct {
	Console   bool
	PauseMenu bool
}

// Any reports whether an overlay is open.
func (o Overlays) Any() bool { return o.Console || o.PauseMenu }

// PauseGuard remembers which clocks were already paused when the run paused,
// so resuming leaves them as it found them.
type PauseGuard struct {
	PhysicsWasPaused bool
	EffectsWasPaused bool
}

// Result is the outcome of the finished run. It is absent while a run is in progress.
type Result struct {
	Value state.GameResult
}

// RunStats accumulates per-run numbers for the HUD and history.
type RunStats struct {
	Kills   int
	Elapsed time.Duration
	Saved   bool
}

// Arena is the playable area in screen cells.
type Arena struct {
	Bounds core.Rect
}

// RNG is the run's random source.
type RNG struct {
	*rand.Rand
}

// RunSaver persists finished runs.
type RunSaver interface {
	SaveRun(ctx context.Context, r storage.Run) (int64, error)
}

// Recorder holds the optional run saver.
type Recorder struct {
	Saver      RunSaver
	Difficulty string
	Timeout    time.Duration
}
