package ecs

import "testing"

type position struct{ X, Y int }
type health struct{ HP int }

func TestSpawnDespawnGenerations(t *testing.T) {
	w := NewWorld()

	a := w.Spawn()
	StoreOf[position](w).Set(a, position{1, 2})
	StoreOf[health](w).Set(a, health{10})

	w.Despawn(a)
	if w.Alive(a) {
		t.Fatal("entity should be dead after Despawn")
	}
	if StoreOf[position](w).Has(a) || StoreOf[health](w).Has(a) {
		t.Error("Despawn should strip every component")
	}

	b := w.Spawn()
	if b.Index() != a.Index() {
		t.Errorf("expected index reuse, got %d vs %d", b.Index(), a.Index())
	}
	if b.Generation() == a.Generation() {
		t.Error("reused index should carry a new generation")
	}
	if w.Alive(a) {
		t.Error("stale handle must not be alive after index reuse")
	}

	// Despawning a stale handle must not touch the new entity
	StoreOf[health](w).Set(b, health{5})
	w.Despawn(a)
	if !StoreOf[health](w).Has(b) {
		t.Error("stale Despawn removed components of the live entity")
	}
	if w.EntityCount() != 1 {
		t.Errorf("EntityCount() = %d, expected 1", w.EntityCount())
	}
}

func TestStoreOrderAndEach(t *testing.T) {
	w := NewWorld()
	s := StoreOf[health](w)

	var es []Entity
	for i := 0; i < 5; i++ {
		e := w.Spawn()
		es = append(es, e)
		s.Set(e, health{HP: i})
	}
	s.Remove(es[2])

	got := s.Entities()
	expected := []Entity{es[0], es[1], es[3], es[4]}
	if len(got) != len(expected) {
		t.Fatalf("Entities() len = %d, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Entities()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	s.Each(func(e Entity, h *health) {
		h.HP += 100
		if e == es[3] {
			s.Remove(e)
		}
	})
	if h, _ := s.Get(es[0]); h.HP != 100 {
		t.Errorf("Each write-back: HP = %d, expected 100", h.HP)
	}
	if s.Has(es[3]) {
		t.Error("component removed during Each must stay removed")
	}
}

type gameMode[M any] struct{ Mode M }

func TestResources(t *testing.T) {
	w := NewWorld()

	if HasResource[health](w) {
		t.Fatal("fresh world should have no resources")
	}

	InsertResource(w, &health{HP: 3})
	r, ok := Resource[health](w)
	if !ok || r.HP != 3 {
		t.Fatalf("Resource() = %v, %v", r, ok)
	}
	r.HP = 7
	if MustResource[health](w).HP != 7 {
		t.Error("resources should be shared by pointer")
	}

	// Distinct instantiations of a generic wrapper are distinct resources
	InsertResource(w, &gameMode[string]{Mode: "survival"})
	if HasResource[gameMode[int]](w) {
		t.Error("gameMode[int] should not alias gameMode[string]")
	}

	if !RemoveResource[health](w) {
		t.Error("RemoveResource should report existing resource")
	}
	if RemoveResource[health](w) {
		t.Error("RemoveResource on missing resource should return false")
	}
}

func TestMustResourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustResource should panic for a missing resource")
		}
	}()
	MustResource[position](NewWorld())
}
