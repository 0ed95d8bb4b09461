package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// ItemType is a closed tag controlling which verbs can consume an item.
type ItemType string

const (
	ItemTypeFood   ItemType = "food"
	ItemTypeDrink  ItemType = "drink"
	ItemTypePotion ItemType = "potion"
	ItemTypeOther  ItemType = "other"
)

// Item is immutable reference data.
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        ItemType `json:"type"`
	MaxCount    int      `json:"max_count"`
}

func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	switch i.Type {
	case ItemTypeFood, ItemTypeDrink, ItemTypePotion, ItemTypeOther:
	case "":
		el.Add(fmt.Errorf("type is required (must be %s, %s, %s, or %s)",
			ItemTypeFood, ItemTypeDrink, ItemTypePotion, ItemTypeOther))
	default:
		el.Add(fmt.Errorf("invalid type: %s", i.Type))
	}
	if i.MaxCount <= 0 {
		el.Add(fmt.Errorf("max_count must be positive"))
	}

	return el.Err()
}

// Consumable reports whether the item can be consumed by the given verb's
// type filter.
func (i *Item) Consumable(types ...ItemType) bool {
	for _, t := range types {
		if i.Type == t {
			return true
		}
	}
	return false
}
