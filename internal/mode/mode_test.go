package mode

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/config"
	"github.com/vovakirdan/mythfall/internal/ecs"
	"github.com/vovakirdan/mythfall/internal/state"
)

func testSurvival() *Survival {
	cfg := config.DefaultGameConfig()
	cfg.Survival.WaveLength = 100 * time.Millisecond
	cfg.Survival.WavesToWin = 3
	cfg.Survival.Difficulty.Enabled = false
	return NewSurvival(cfg.Survival, cfg.Enemy)
}

func TestSetupCleanup(t *testing.T) {
	w := ecs.NewWorld()
	s := testSurvival()

	if _, ok := Active[*Survival](w); ok {
		t.Fatal("mode active before setup")
	}
	if err := s.Setup(w); err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if got, ok := Active[*Survival](w); !ok || got != s {
		t.Fatal("GameMode[*Survival] missing after setup")
	}
	if !ecs.HasResource[WaveCounter](w) || !ecs.HasResource[WaveTimer](w) {
		t.Error("setup should insert wave counter and timer")
	}

	if err := s.Setup(w); !errors.Is(err, ErrAlreadyActive) {
		t.Errorf("second Setup() error = %v, expected ErrAlreadyActive", err)
	}

	s.Cleanup(w)
	if ecs.HasResource[GameMode[*Survival]](w) || ecs.HasResource[WaveCounter](w) || ecs.HasResource[SpawnQueue](w) {
		t.Error("cleanup should remove every mode-owned resource")
	}
}

func TestCleanupWithoutSetup(t *testing.T) {
	w := ecs.NewWorld()
	q := &SpawnQueue{Pending: 4}
	ecs.InsertResource(w, q)

	NewEscape(config.DefaultGameConfig().Escape, config.DefaultGameConfig().Enemy).Cleanup(w)

	if !ecs.HasResource[SpawnQueue](w) {
		t.Error("cleanup without setup must not touch other resources")
	}
}

func TestSurvivalWaves(t *testing.T) {
	a := app.New()
	app.AddState(a, state.New(state.Playing))
	s := testSurvival()
	a.AddPlugins(Plugin{Catalog: NewCatalog(s)})
	if err := s.Setup(a.World()); err != nil {
		t.Fatal(err)
	}

	q := ecs.MustResource[SpawnQueue](a.World())
	if q.Take() != 3 {
		t.Error("first wave should be queued on setup")
	}

	a.Update(100 * time.Millisecond)
	if c := ecs.MustResource[WaveCounter](a.World()); c.Current != 2 {
		t.Errorf("wave = %d, expected 2", c.Current)
	}
	if q.Take() == 0 {
		t.Error("new wave should queue spawns")
	}

	a.Update(100 * time.Millisecond)
	a.Update(50 * time.Millisecond)
	if ecs.MustResource[Objective](a.World()).Complete {
		t.Fatal("objective complete before the final wave ended")
	}
	a.Update(50 * time.Millisecond)
	p := s.Progress(a.World())
	if !p.Complete || p.Current != 3 {
		t.Errorf("Progress() = %+v, expected final wave complete", p)
	}
}

func TestProgressionPausedOutsidePlaying(t *testing.T) {
	a := app.New()
	app.AddState(a, state.New(state.Paused))
	s := testSurvival()
	a.AddPlugins(Plugin{Catalog: NewCatalog(s)})
	if err := s.Setup(a.World()); err != nil {
		t.Fatal(err)
	}

	a.Update(time.Second)

	if c := ecs.MustResource[WaveCounter](a.World()); c.Current != 1 {
		t.Errorf("wave advanced to %d while paused", c.Current)
	}
}

func TestEscapeChapters(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.Escape.ChapterLength = time.Second
	cfg.Escape.Chapters = 2
	cfg.Escape.SpawnEvery = 400 * time.Millisecond
	e := NewEscape(cfg.Escape, cfg.Enemy)

	a := app.New()
	app.AddState(a, state.New(state.Playing))
	a.AddPlugins(Plugin{Catalog: NewCatalog(e)})
	if err := e.Setup(a.World()); err != nil {
		t.Fatal(err)
	}
	q := ecs.MustResource[SpawnQueue](a.World())
	q.Take()

	a.Update(800 * time.Millisecond)
	if q.Take() == 0 {
		t.Error("spawn timer should queue enemies")
	}
	a.Update(200 * time.Millisecond)
	if got := e.Progress(a.World()).Current; got != 2 {
		t.Errorf("chapter = %d, expected 2", got)
	}
	a.Update(time.Second)
	if !e.Progress(a.World()).Complete {
		t.Error("escape should complete after the last chapter")
	}
}

func TestCatalog(t *testing.T) {
	c := DefaultCatalog(config.DefaultGameConfig())
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", c.Len())
	}
	for _, m := range c.List() {
		if m.Description() == "" || m.Name() == "" {
			t.Errorf("mode %s lacks a name or description", m.ID())
		}
	}
	if c.Index("escape") != 1 {
		t.Errorf("Index(escape) = %d, expected 1", c.Index("escape"))
	}
	if _, err := c.At(5); !errors.Is(err, ErrNoMode) {
		t.Errorf("At(5) error = %v, expected ErrNoMode", err)
	}
}
