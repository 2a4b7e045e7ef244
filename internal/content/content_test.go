package content

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/mythfall/internal/registry"
)

func loaded(t *testing.T) *Registries {
	t.Helper()
	r := NewRegistries()
	Load(r, DefaultPacks()...)
	return r
}

func TestDefaultPacksLoad(t *testing.T) {
	r := loaded(t)
	if r.Mythologies.Len() != 3 {
		t.Errorf("Mythologies.Len() = %d, expected 3", r.Mythologies.Len())
	}
	for _, h := range r.Heroes.List() {
		if _, err := r.Mythologies.Get(h.Mythology()); err != nil {
			t.Errorf("hero %s has unknown mythology: %v", h.ID(), err)
		}
		if len(r.EnemyPacksFor(h.Mythology())) == 0 {
			t.Errorf("hero %s has no enemies to fight", h.ID())
		}
		if _, err := r.HeroStats(h, nil); err != nil {
			t.Errorf("HeroStats(%s) error: %v", h.ID(), err)
		}
		for _, st := range h.StartingItems {
			if !r.Items.Exists(st.ItemID) {
				t.Errorf("hero %s starts with unknown item %s", h.ID(), st.ItemID)
			}
		}
	}
}

func TestHeroStatsWithRelics(t *testing.T) {
	r := loaded(t)
	h, err := r.Heroes.Get("heracles")
	if err != nil {
		t.Fatal(err)
	}

	inv := &Inventory{}
	aegis, _ := r.Items.Get("aegis")
	inv.Add(aegis.Instantiate(1))
	ambrosia, _ := r.Items.Get("ambrosia")
	inv.Add(ambrosia.Instantiate(2))

	s, err := r.HeroStats(h, inv)
	if err != nil {
		t.Fatalf("HeroStats() error: %v", err)
	}
	if s.MaxHealth != 145 {
		t.Errorf("MaxHealth = %d, expected 145", s.MaxHealth)
	}
	if math.Abs(s.DamageTakenMul-0.8) > 1e-9 {
		t.Errorf("DamageTakenMul = %v, expected 0.8", s.DamageTakenMul)
	}
}

func TestHeroStatsUnknownItem(t *testing.T) {
	r := loaded(t)
	h, _ := r.Heroes.Get("freydis")
	inv := &Inventory{}
	inv.Add(ItemStack{ItemID: "gungnir", Quantity: 1})

	if _, err := r.HeroStats(h, inv); !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("HeroStats() error = %v, expected ErrNotFound", err)
	}
}

func TestInventory(t *testing.T) {
	inv := &Inventory{}
	inv.Add(ItemStack{ItemID: "mead", Quantity: 2})
	inv.Add(ItemStack{ItemID: "ankh", Quantity: 1})
	inv.Add(ItemStack{ItemID: "mead", Quantity: 3})
	inv.Add(ItemStack{ItemID: "lotus", Quantity: 0})

	if inv.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", inv.Len())
	}
	if inv.Count("mead") != 5 {
		t.Errorf("Count(mead) = %d, expected 5", inv.Count("mead"))
	}
	if got := inv.Remove("mead", 10); got != 5 {
		t.Errorf("Remove(mead, 10) = %d, expected 5", got)
	}
	if inv.Count("mead") != 0 || inv.Len() != 1 {
		t.Error("empty stack should be dropped")
	}
}

func TestConsumableStackLimit(t *testing.T) {
	c := NewConsumable("lotus", "Blue Lotus", "egyptian", "", 30, 3)
	if got := c.Instantiate(10).Quantity; got != 3 {
		t.Errorf("Instantiate(10).Quantity = %d, expected 3", got)
	}
	if got := c.Instantiate(0).Quantity; got != 1 {
		t.Errorf("Instantiate(0).Quantity = %d, expected 1", got)
	}

	inv := &Inventory{}
	tests := []struct {
		qty      int
		accepted int
		count    int
	}{
		{2, 2, 2},
		{2, 1, 3},
		{3, 0, 3},
	}
	for _, tt := range tests {
		if got := inv.Add(c.Instantiate(tt.qty)); got != tt.accepted {
			t.Errorf("Add(%d) = %d, expected %d", tt.qty, got, tt.accepted)
		}
		if got := inv.Count("lotus"); got != tt.count {
			t.Errorf("Count(lotus) = %d, expected %d", got, tt.count)
		}
	}
}
