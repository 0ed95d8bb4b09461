package game

import "strings"

// InventorySize is the fixed number of slots every character carries.
const InventorySize = 8

// Slot is one inventory position holding a stack of a single item.
type Slot struct {
	Item  *Item
	Count int
}

// Inventory is a fixed-size slot array. Empty slots are nil.
type Inventory struct {
	slots [InventorySize]*Slot
}

func NewInventory() *Inventory {
	return &Inventory{}
}

// Add places count units of item into the inventory, topping up existing
// stacks before opening new slots. Stacks are bounded by the item's MaxCount.
// It returns the number of units that did not fit.
func (inv *Inventory) Add(item *Item, count int) int {
	if item == nil || count <= 0 {
		return 0
	}

	for i := range inv.slots {
		if count == 0 {
			break
		}
		s := inv.slots[i]
		if s == nil || s.Item != item || s.Count >= item.MaxCount {
			continue
		}
		take := min(count, item.MaxCount-s.Count)
		s.Count += take
		count -= take
	}

	for i := range inv.slots {
		if count == 0 {
			break
		}
		if inv.slots[i] != nil {
			continue
		}
		take := min(count, item.MaxCount)
		inv.slots[i] = &Slot{Item: item, Count: take}
		count -= take
	}

	return count
}

// FindByPrefix returns the first slot whose item name starts with prefix
// (case-insensitive) and whose type passes the filter. An empty type filter
// matches everything. Returns -1 when nothing matches.
func (inv *Inventory) FindByPrefix(prefix string, types ...ItemType) (int, *Slot) {
	prefix = strings.ToLower(prefix)
	for i, s := range inv.slots {
		if s == nil {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(s.Item.Name), prefix) {
			continue
		}
		if len(types) > 0 && !s.Item.Consumable(types...) {
			continue
		}
		return i, s
	}
	return -1, nil
}

// ConsumeAt removes exactly one unit from the slot at index i, clearing the
// slot when the stack empties. Returns the consumed item, or nil when the
// slot is empty or out of range.
func (inv *Inventory) ConsumeAt(i int) *Item {
	if i < 0 || i >= InventorySize || inv.slots[i] == nil {
		return nil
	}
	s := inv.slots[i]
	s.Count--
	if s.Count <= 0 {
		inv.slots[i] = nil
	}
	return s.Item
}

// Slots returns the backing slot array for display. Callers must not mutate
// through it.
func (inv *Inventory) Slots() [InventorySize]*Slot {
	return inv.slots
}
