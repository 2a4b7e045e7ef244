package mode

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/timer"
)

// WaveCounter tracks the wave in progress.
type WaveCounter struct {
	Current int
	Target  int
}

// WaveTimer repeats once per wave.
type WaveTimer struct {
	timer.Timer
}

// Survival is won by outlasting a fixed number of escalating waves.
type Survival struct {
	cfg   config.SurvivalTuning
	enemy config.EnemyTuning
}

// NewSurvival creates the mode from its tuning.
func NewSurvival(cfg config.SurvivalTuning, enemy config.EnemyTuning) *Survival {
	return &Survival{cfg: cfg, enemy: enemy}
}

// ID and Name identify the mode in menus and run history.
func (s *Survival) ID() string   { return "survival" }
func (s *Survival) Name() string { return "Survival" }

// Description names the number of waves to survive.
func (s *Survival) Description() string {
	return fmt.Sprintf("Hold out against %d escalating waves of mythic foes.", s.cfg.WavesToWin)
}

// Setup activates the mode and inserts the wave counter, wave timer,
// difficulty manager and the first wave's spawn queue. It fails with
// ErrAlreadyActive if the mode is already set up.
func (s *Survival) Setup(w *ecs.World) error {
	if err := Activate(w, s); err != nil {
		return err
	}
	ecs.InsertResource(w, &WaveCounter{Current: 1, Target: s.cfg.WavesToWin})
	ecs.InsertResource(w, &WaveTimer{Timer: timer.New(s.cfg.WaveLength, timer.Repeating)})
	ecs.InsertResource(w, config.NewDifficultyManager(s.cfg.Difficulty))
	ecs.InsertResource(w, &Objective{})

	q := &SpawnQueue{}
	s.queueWave(w, q, 1)
	ecs.InsertResource(w, q)
	return nil
}

// Cleanup removes everything Setup inserted. It is a no-op when the mode
// is not active.
func (s *Survival) Cleanup(w *ecs.World) {
	if !Deactivate[*Survival](w) {
		return
	}
	ecs.RemoveResource[WaveCounter](w)
	ecs.RemoveResource[WaveTimer](w)
	ecs.RemoveResource[config.DifficultyManager](w)
	ecs.RemoveResource[Objective](w)
	ecs.RemoveResource[SpawnQueue](w)
}

// Progress reports the current wave and time to the next one.
func (s *Survival) Progress(w *ecs.World) Progress {
	p := Progress{Stage: "wave", Total: s.cfg.WavesToWin}
	if c, ok := ecs.Resource[WaveCounter](w); ok {
		p.Current = c.Current
	}
	if t, ok := ecs.Resource[WaveTimer](w); ok {
		p.Next = t.Remaining()
		p.Elapsed = t.Duration()*stagesBefore(p.Current) + t.Elapsed()
	}
	if o, ok := ecs.Resource[Objective](w); ok {
		p.Complete = o.Complete
	}
	return p
}

func (s *Survival) queueWave(w *ecs.World, q *SpawnQueue, wave int) {
	d, ok := ecs.Resource[config.DifficultyManager](w)
	if !ok {
		q.Push(s.cfg.SpawnBase, s.enemy.Speed, s.enemy.ContactDamage)
		return
	}
	elapsed := s.cfg.WaveLength * stagesBefore(wave)
	q.Push(
		d.SpawnCount(s.cfg.SpawnBase, s.cfg.SpawnExtra, wave, elapsed),
		d.Speed(s.enemy.Speed, wave, elapsed),
		d.Damage(s.enemy.ContactDamage, wave, elapsed),
	)
}

// advance handles every wave boundary crossed this frame.
func (s *Survival) advance(a *app.App) {
	w := a.World()
	wt := ecs.MustResource[WaveTimer](w)
	counter := ecs.MustResource[WaveCounter](w)
	obj := ecs.MustResource[Objective](w)
	q := ecs.MustResource[SpawnQueue](w)

	wt.Tick(a.Physics().Delta())
	for i := 0; i < wt.Laps() && !obj.Complete; i++ {
		if counter.Current >= counter.Target {
			obj.Complete = true
			a.Logger().Info("final wave survived", "waves", counter.Target)
			break
		}
		counter.Current++
		s.queueWave(w, q, counter.Current)
		a.Logger().Debug("wave started", "wave", counter.Current, "pending", q.Pending)
	}
}

// stagesBefore returns how many full stages precede the current one, as a
// multiplier for a stage length.
func stagesBefore(current int) time.Duration {
	if current <= 1 {
		return 0
	}
	return time.Duration(current - 1)
}
