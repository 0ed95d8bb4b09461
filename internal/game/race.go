package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Race is immutable reference data contributing base attributes and base
// health to characters created with it.
type Race struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	BaseAttributes Attributes `json:"base_attributes"`
	BaseHealth     int        `json:"base_health"`
}

func (r *Race) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("race name is required"))
	}
	if r.BaseHealth <= 0 {
		el.Add(fmt.Errorf("base_health must be positive"))
	}

	return el.Err()
}
