package game

import (
	"strings"

	"github.com/ChrisLebbano/embermud/internal/storage"
)

// Kind is the closed variant tag distinguishing player characters from
// non-player characters. Every decision point that cares must switch on it
// exhaustively.
type Kind string

const (
	KindPlayer Kind = "player"
	KindNPC    Kind = "npc"
)

// Character is the shared shape of players and NPCs. Players are keyed by
// connection id, NPCs by a minted instance id.
type Character struct {
	Kind       Kind
	Id         string
	Name       string
	RoomId     storage.Identifier
	Race       *Race
	Class      *CharacterClass
	Level      int
	Attributes Attributes
	Secondary  SecondaryAttributes

	// IsAttacking and PrimaryTarget together drive the attack loops. A set
	// PrimaryTarget whose RoomId differs from ours is stale and must be
	// cleared before use.
	IsAttacking   bool
	PrimaryTarget *Character

	// Inventory is nil for NPCs.
	Inventory *Inventory
}

// MatchName reports whether name matches this character's name, ignoring
// case.
func (c *Character) MatchName(name string) bool {
	return strings.EqualFold(c.Name, name)
}

// Alive reports whether the character has health remaining.
func (c *Character) Alive() bool {
	return c.Secondary.CurrentHealth > 0
}

// ClearTarget drops the attack flag and primary target.
func (c *Character) ClearTarget() {
	c.IsAttacking = false
	c.PrimaryTarget = nil
}
