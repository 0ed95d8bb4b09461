package command

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/ChrisLebbano/embermud/internal/game"
	"github.com/ChrisLebbano/embermud/internal/storage"
)

type WorldConfig struct {
	StartZone    string   `json:"start_zone"`
	StartRoom    string   `json:"start_room"`
	DefaultItems []string `json:"default_items"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.StartZone == "" {
		el.Add(fmt.Errorf("start_zone is required"))
	}
	if c.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required"))
	}

	return el.Err()
}

func (c *WorldConfig) BuildWorld(stores *Stores) (*game.World, error) {
	items := make([]storage.Identifier, len(c.DefaultItems))
	for i, id := range c.DefaultItems {
		items[i] = storage.Identifier(id)
	}

	return game.NewWorld(game.WorldConfig{
		StartZone:    storage.Identifier(c.StartZone),
		StartRoom:    storage.Identifier(c.StartRoom),
		DefaultItems: items,
	}, stores.Zones, stores.Rooms, stores.Races, stores.Classes, stores.Items, stores.Npcs)
}
