package game

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestInventoryAdd(t *testing.T) {
	bread := &Item{Name: "bread", Type: ItemTypeFood, MaxCount: 5}
	flask := &Item{Name: "water flask", Type: ItemTypeDrink, MaxCount: 3}

	tests := map[string]struct {
		add         []struct {
			item  *Item
			count int
		}
		expLeftover int
		expSlots    int
	}{
		"single stack": {
			add: []struct {
				item  *Item
				count int
			}{{bread, 3}},
			expLeftover: 0,
			expSlots:    1,
		},
		"tops up existing stack before opening a new slot": {
			add: []struct {
				item  *Item
				count int
			}{{bread, 3}, {bread, 4}},
			expLeftover: 0,
			expSlots:    2,
		},
		"overflow spills into leftover": {
			add: []struct {
				item  *Item
				count int
			}{{flask, 30}},
			expLeftover: 6,
			expSlots:    8,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inv := NewInventory()

			leftover := 0
			for _, a := range tt.add {
				leftover = inv.Add(a.item, a.count)
			}

			used := 0
			for _, s := range inv.Slots() {
				if s != nil {
					used++
				}
			}

			testutil.AssertEqual(t, "leftover", leftover, tt.expLeftover)
			testutil.AssertEqual(t, "used slots", used, tt.expSlots)
		})
	}
}

func TestInventoryFindByPrefix(t *testing.T) {
	bread := &Item{Name: "bread", Type: ItemTypeFood, MaxCount: 5}
	flask := &Item{Name: "water flask", Type: ItemTypeDrink, MaxCount: 3}
	potion := &Item{Name: "healing potion", Type: ItemTypePotion, MaxCount: 3}

	inv := NewInventory()
	inv.Add(bread, 1)
	inv.Add(flask, 1)
	inv.Add(potion, 1)

	idx, slot := inv.FindByPrefix("bre")
	if slot == nil {
		t.Fatal("expected a match for prefix 'bre'")
	}
	testutil.AssertEqual(t, "index", idx, 0)
	testutil.AssertEqual(t, "item", slot.Item.Name, "bread")

	// Type filter skips non-matching items
	_, slot = inv.FindByPrefix("bre", ItemTypeDrink)
	if slot != nil {
		t.Error("expected no drink match for prefix 'bre'")
	}

	// Potions count as drinkable
	_, slot = inv.FindByPrefix("hea", ItemTypeDrink, ItemTypePotion)
	if slot == nil {
		t.Fatal("expected potion to match drink search")
	}
	testutil.AssertEqual(t, "item", slot.Item.Name, "healing potion")

	idx, _ = inv.FindByPrefix("nothing")
	testutil.AssertEqual(t, "missing index", idx, -1)
}

func TestInventoryConsumeAt(t *testing.T) {
	bread := &Item{Name: "bread", Type: ItemTypeFood, MaxCount: 5}

	inv := NewInventory()
	inv.Add(bread, 2)

	item := inv.ConsumeAt(0)
	if item == nil {
		t.Fatal("expected to consume one bread")
	}
	testutil.AssertEqual(t, "remaining count", inv.Slots()[0].Count, 1)

	inv.ConsumeAt(0)
	if inv.Slots()[0] != nil {
		t.Error("expected slot to clear when the stack empties")
	}

	if inv.ConsumeAt(0) != nil {
		t.Error("expected consuming an empty slot to return nil")
	}
}
