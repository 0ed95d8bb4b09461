package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/ChrisLebbano/embermud/internal/auth"
	"github.com/ChrisLebbano/embermud/internal/game"
	"github.com/ChrisLebbano/embermud/internal/storage"
)

type StorageConfig struct {
	Zones    AssetConfig[*game.Zone]           `json:"zones"`
	Rooms    AssetConfig[*game.Room]           `json:"rooms"`
	Races    AssetConfig[*game.Race]           `json:"races"`
	Classes  AssetConfig[*game.CharacterClass] `json:"classes"`
	Items    AssetConfig[*game.Item]           `json:"items"`
	Npcs     AssetConfig[*game.NPC]            `json:"npcs"`
	Accounts AssetConfig[*auth.Account]        `json:"accounts"`
}

// Stores holds the loaded asset stores the rest of the wiring consumes.
type Stores struct {
	Zones    storage.Storer[*game.Zone]
	Rooms    storage.Storer[*game.Room]
	Races    storage.Storer[*game.Race]
	Classes  storage.Storer[*game.CharacterClass]
	Items    storage.Storer[*game.Item]
	Npcs     storage.Storer[*game.NPC]
	Accounts storage.Storer[*auth.Account]
}

func (c *StorageConfig) BuildStores() (*Stores, error) {
	zones, err := c.Zones.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating zone store: %w", err)
	}
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	races, err := c.Races.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating race store: %w", err)
	}
	classes, err := c.Classes.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating class store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}
	npcs, err := c.Npcs.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating npc store: %w", err)
	}
	accounts, err := c.Accounts.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating account store: %w", err)
	}

	return &Stores{
		Zones:    zones,
		Rooms:    rooms,
		Races:    races,
		Classes:  classes,
		Items:    items,
		Npcs:     npcs,
		Accounts: accounts,
	}, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Zones.Validate("zones"))
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Races.Validate("races"))
	el.Add(c.Classes.Validate("classes"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Npcs.Validate("npcs"))
	el.Add(c.Accounts.Validate("accounts"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
