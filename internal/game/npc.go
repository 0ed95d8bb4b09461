package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// NPC is the static definition of a non-player character. Instances are
// created once at world load, placed in their configured room, and persist
// indefinitely even at zero health.
type NPC struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Race               string  `json:"race"`
	Class              string  `json:"class"`
	Level              int     `json:"level"`
	Room               string  `json:"room"`
	AttackDamage       int     `json:"attack_damage"`
	AttackDelaySeconds float64 `json:"attack_delay_seconds"`
}

func (n *NPC) Validate() error {
	el := errors.NewErrorList()

	if n.Name == "" {
		el.Add(fmt.Errorf("npc name is required"))
	}
	if n.Race == "" {
		el.Add(fmt.Errorf("race is required"))
	}
	if n.Class == "" {
		el.Add(fmt.Errorf("class is required"))
	}
	if n.Level <= 0 {
		el.Add(fmt.Errorf("level must be positive"))
	}
	if n.Room == "" {
		el.Add(fmt.Errorf("room is required"))
	}
	if n.AttackDamage < 0 {
		el.Add(fmt.Errorf("attack_damage cannot be negative"))
	}
	if n.AttackDelaySeconds <= 0 {
		el.Add(fmt.Errorf("attack_delay_seconds must be positive"))
	}

	return el.Err()
}
