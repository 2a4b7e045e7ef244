package content

// Inventory is the item component carried by a hero.
type Inventory struct {
	stacks []ItemStack
}

// Add merges st into an existing stack of the same item or appends it,
// never past the stack's limit. It returns how many were taken.
func (inv *Inventory) Add(st ItemStack) int {
	if st.Quantity <= 0 {
		return 0
	}
	for i := range inv.stacks {
		held := &inv.stacks[i]
		if held.ItemID != st.ItemID {
			continue
		}
		if st.Limit > 0 {
			held.Limit = st.Limit
		}
		n := st.Quantity
		if held.Limit > 0 {
			n = min(n, held.Limit-held.Quantity)
		}
		n = max(n, 0)
		held.Quantity += n
		return n
	}
	if st.Limit > 0 {
		st.Quantity = min(st.Quantity, st.Limit)
	}
	inv.stacks = append(inv.stacks, st)
	return st.Quantity
}

// Remove takes up to qty of an item and returns how many were removed.
func (inv *Inventory) Remove(itemID string, qty int) int {
	for i := range inv.stacks {
		if inv.stacks[i].ItemID != itemID {
			continue
		}
		n := min(qty, inv.stacks[i].Quantity)
		inv.stacks[i].Quantity -= n
		if inv.stacks[i].Quantity == 0 {
			inv.stacks = append(inv.stacks[:i], inv.stacks[i+1:]...)
		}
		return n
	}
	return 0
}

// Count returns how many of an item are held.
func (inv *Inventory) Count(itemID string) int {
	for _, st := range inv.stacks {
		if st.ItemID == itemID {
			return st.Quantity
		}
	}
	return 0
}

// Stacks returns a copy of the held stacks in pickup order.
func (inv *Inventory) Stacks() []ItemStack {
	return append([]ItemStack(nil), inv.stacks...)
}

// Len returns the number of distinct items held.
func (inv *Inventory) Len() int { return len(inv.stacks) }
