package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// CharacterClass is immutable reference data layering attribute modifiers and
// a health contribution on top of a race.
type CharacterClass struct {
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	AttributeModifiers Attributes `json:"attribute_modifiers"`
	BaseHealth         int        `json:"base_health"`
}

func (c *CharacterClass) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("class name is required"))
	}
	if c.BaseHealth < 0 {
		el.Add(fmt.Errorf("base_health cannot be negative"))
	}

	return el.Err()
}
