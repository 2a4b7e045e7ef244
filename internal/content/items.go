package content

// Relic is a passive item whose bonus applies while carried.
type Relic struct {
	id, name, myth, desc string
	bonus                func(*Stats)
}

// NewRelic creates a relic whose bonus modifies stats while it is carried.
func NewRelic(id, name, mythology, desc string, bonus func(*Stats)) Relic {
	return Relic{id: id, name: name, myth: mythology, desc: desc, bonus: bonus}
}

// ID, Name, Mythology and Description implement Item.
func (r Relic) ID() string          { return r.id }
func (r Relic) Name() string        { return r.name }
func (r Relic) Mythology() string   { return r.myth }
func (r Relic) Description() string { return r.desc }

// Instantiate returns an unlimited stack of the relic.
func (r Relic) Instantiate(qty int) ItemStack {
	return ItemStack{ItemID: r.id, Quantity: max(qty, 1)}
}

// Bonus applies the relic to s.
func (r Relic) Bonus(s *Stats) {
	if r.bonus != nil {
		r.bonus(s)
	}
}

// Consumable is a stackable item that heals the hero when used.
type Consumable struct {
	id, name, myth, desc string
	Heal                 int
	MaxStack             int
}

// NewConsumable creates a consumable healing heal points. A positive
// maxStack caps how many one inventory stack may hold.
func NewConsumable(id, name, mythology, desc string, heal, maxStack int) Consumable {
	return Consumable{id: id, name: name, myth: mythology, desc: desc, Heal: heal, MaxStack: maxStack}
}

// ID, Name, Mythology and Description implement Item.
func (c Consumable) ID() string          { return c.id }
func (c Consumable) Name() string        { return c.name }
func (c Consumable) Mythology() string   { return c.myth }
func (c Consumable) Description() string { return c.desc }

// Instantiate returns a stack of qty, at least one and at most MaxStack.
func (c Consumable) Instantiate(qty int) ItemStack {
	qty = max(qty, 1)
	if c.MaxStack > 0 {
		qty = min(qty, c.MaxStack)
	}
	return ItemStack{ItemID: c.id, Quantity: qty, Limit: max(c.MaxStack, 0)}
}

// HealAmount returns how much health using one restores.
func (c Consumable) HealAmount() int { return c.Heal }

// StatPerk is a perk defined by a stat modifier.
type StatPerk struct {
	id, name, myth string
	apply          func(*Stats)
}

// NewStatPerk creates a perk that applies a stat modifier for the run.
func NewStatPerk(id, name, mythology string, apply func(*Stats)) StatPerk {
	return StatPerk{id: id, name: name, myth: mythology, apply: apply}
}

// ID, Name and Mythology implement Perk.
func (p StatPerk) ID() string        { return p.id }
func (p StatPerk) Name() string      { return p.name }
func (p StatPerk) Mythology() string { return p.myth }
// Apply runs the perk's modifier on s.
func (p StatPerk) Apply(s *Stats) { p.apply(s) }
