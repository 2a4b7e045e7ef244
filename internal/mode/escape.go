package mode

import (
	"fmt"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/timer"
)

// ChapterCounter tracks the chapter in progress.
type ChapterCounter struct {
	Current int
	Total   int
}

// ChapterTimer repeats once per chapter.
type ChapterTimer struct {
	timer.Timer
}

// EscapeSpawnTimer paces spawns within a chapter.
type EscapeSpawnTimer struct {
	timer.Timer
}

// Escape is won by lasting through every chapter.
type Escape struct {
	cfg   config.EscapeTuning
	enemy config.EnemyTuning
}

// NewEscape creates the mode from its tuning.
func NewEscape(cfg config.EscapeTuning, enemy config.EnemyTuning) *Escape {
	return &Escape{cfg: cfg, enemy: enemy}
}

// ID and Name identify the mode in menus and run history.
func (e *Escape) ID() string   { return "escape" }
func (e *Escape) Name() string { return "Escape" }

// Description names the number of chapters to get through.
func (e *Escape) Description() string {
	return fmt.Sprintf("Fight your way through %d chapters before the realm closes.", e.cfg.Chapters)
}

// Setup activates the mode and inserts the chapter counter and timers,
// the difficulty manager and the opening spawn queue. It fails with
// ErrAlreadyActive if the mode is already set up.
func (e *Escape) Setup(w *ecs.World) error {
	if err := Activate(w, e); err != nil {
		return err
	}
	ecs.InsertResource(w, &ChapterCounter{Current: 1, Total: e.cfg.Chapters})
	ecs.InsertResource(w, &ChapterTimer{Timer: timer.New(e.cfg.ChapterLength, timer.Repeating)})
	ecs.InsertResource(w, &EscapeSpawnTimer{Timer: timer.New(e.cfg.SpawnEvery, timer.Repeating)})
	ecs.InsertResource(w, config.NewDifficultyManager(e.cfg.Difficulty))
	ecs.InsertResource(w, &Objective{})

	q := &SpawnQueue{}
	e.queueSpawn(w, q, 1)
	ecs.InsertResource(w, q)
	return nil
}

// Cleanup removes everything Setup inserted. It is a no-op when the mode
// is not active.
func (e *Escape) Cleanup(w *ecs.World) {
	if !Deactivate[*Escape](w) {
		return
	}
	ecs.RemoveResource[ChapterCounter](w)
	ecs.RemoveResource[ChapterTimer](w)
	ecs.RemoveResource[EscapeSpawnTimer](w)
	ecs.RemoveResource[config.DifficultyManager](w)
	ecs.RemoveResource[Objective](w)
	ecs.RemoveResource[SpawnQueue](w)
}

// Progress reports the current chapter and time left in it.
func (e *Escape) Progress(w *ecs.World) Progress {
	p := Progress{Stage: "chapter", Total: e.cfg.Chapters}
	if c, ok := ecs.Resource[ChapterCounter](w); ok {
		p.Current = c.Current
	}
	if t, ok := ecs.Resource[ChapterTimer](w); ok {
		p.Next = t.Remaining()
		p.Elapsed = t.Duration()*stagesBefore(p.Current) + t.Elapsed()
	}
	if o, ok := ecs.Resource[Objective](w); ok {
		p.Complete = o.Complete
	}
	return p
}

func (e *Escape) queueSpawn(w *ecs.World, q *SpawnQueue, chapter int) {
	d, ok := ecs.Resource[config.DifficultyManager](w)
	if !ok {
		q.Push(e.cfg.SpawnBase, e.enemy.Speed, e.enemy.ContactDamage)
		return
	}
	elapsed := e.Progress(w).Elapsed
	q.Push(
		d.SpawnCount(e.cfg.SpawnBase, e.cfg.SpawnExtra, chapter, elapsed),
		d.Speed(e.enemy.Speed, chapter, elapsed),
		d.Damage(e.enemy.ContactDamage, chapter, elapsed),
	)
}

func (e *Escape) advance(a *app.App) {
	w := a.World()
	dt := a.Physics().Delta()
	ct := ecs.MustResource[ChapterTimer](w)
	st := ecs.MustResource[EscapeSpawnTimer](w)
	counter := ecs.MustResource[ChapterCounter](w)
	obj := ecs.MustResource[Objective](w)
	q := ecs.MustResource[SpawnQueue](w)

	ct.Tick(dt)
	for i := 0; i < ct.Laps() && !obj.Complete; i++ {
		if counter.Current >= counter.Total {
			obj.Complete = true
			a.Logger().Info("escaped", "chapters", counter.Total)
			break
		}
		counter.Current++
		a.Logger().Debug("chapter started", "chapter", counter.Current)
	}
	if obj.Complete {
		return
	}

	st.Tick(dt)
	for i := 0; i < st.Laps(); i++ {
		e.queueSpawn(w, q, counter.Current)
	}
}
