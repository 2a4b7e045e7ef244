package cooldown

import (
	"testing"
	"time"

	"github.com/vovakirdan/mythfall/internal/app"
	"github.com/vovakirdan/mythfall/internal/ecs"
)

type dash struct{}
type ability struct{}

func TestRemovedOnTickThatReachesDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		ticks    []time.Duration
		expireAt int
	}{
		{"exact", 30 * time.Millisecond, []time.Duration{10, 10, 10, 10}, 2},
		{"overshoot", 25 * time.Millisecond, []time.Duration{10, 10, 10}, 2},
		{"single large tick", 5 * time.Millisecond, []time.Duration{100}, 0},
		{"zero ticks do nothing", 10 * time.Millisecond, []time.Duration{0, 0, 10}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := w.Spawn()
			Start[dash](w, e, tt.duration)

			for i, step := range tt.ticks {
				expired := Tick[dash](w, step*time.Millisecond)
				active := Active[dash](w, e)
				switch {
				case i < tt.expireAt && !active:
					t.Fatalf("tick %d: cooldown removed early", i)
				case i == tt.expireAt:
					if active {
						t.Fatalf("tick %d: cooldown still attached", i)
					}
					if len(expired) != 1 || expired[0] != e {
						t.Fatalf("tick %d: Tick() = %v, expected [%v]", i, expired, e)
					}
				}
			}
		})
	}
}

func TestRestartOverwrites(t *testing.T) {
	w := ecs.NewWorld()
	e := w.Spawn()

	Start[dash](w, e, 100*time.Millisecond)
	Tick[dash](w, 60*time.Millisecond)
	Start[dash](w, e, 50*time.Millisecond)

	if got := Remaining[dash](w, e); got != 50*time.Millisecond {
		t.Errorf("Remaining() = %v, expected 50ms", got)
	}
	Tick[dash](w, 49*time.Millisecond)
	if !Active[dash](w, e) {
		t.Fatal("cooldown expired early")
	}
	Tick[dash](w, time.Millisecond)
	if Active[dash](w, e) {
		t.Error("cooldown should expire at the new duration")
	}
}

func TestTagsAreIndependent(t *testing.T) {
	w := ecs.NewWorld()
	e := w.Spawn()
	Start[dash](w, e, 10*time.Millisecond)
	Start[ability](w, e, 50*time.Millisecond)

	Tick[dash](w, 10*time.Millisecond)

	if Active[dash](w, e) {
		t.Error("dash cooldown should have expired")
	}
	if !Active[ability](w, e) {
		t.Error("ability cooldown must not be ticked by dash")
	}
	if got := Remaining[ability](w, e); got != 50*time.Millisecond {
		t.Errorf("ability Remaining() = %v, expected 50ms", got)
	}
}

func TestNonPositiveDurationClears(t *testing.T) {
	w := ecs.NewWorld()
	e := w.Spawn()
	Start[dash](w, e, time.Second)
	Start[dash](w, e, 0)
	if Active[dash](w, e) {
		t.Error("zero duration should clear the cooldown")
	}
}

func TestPluginFollowsPhysicsClock(t *testing.T) {
	a := app.New()
	a.AddPlugins(Plugin[dash]{Name: "dash"})
	e := a.World().Spawn()
	Start[dash](a.World(), e, 20*time.Millisecond)

	a.Physics().Pause()
	a.Update(50 * time.Millisecond)
	if !Active[dash](a.World(), e) {
		t.Fatal("cooldown ticked while physics paused")
	}

	a.Physics().Resume()
	var seen bool
	a.AddSystem(app.Update, "check", func(a *app.App) { seen = Active[dash](a.World(), e) })
	a.Update(20 * time.Millisecond)
	if seen {
		t.Error("systems after PreUpdate should see the cooldown removed in the same frame")
	}
}
