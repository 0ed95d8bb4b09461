package game

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-errors"

	"github.com/ChrisLebbano/embermud/internal/storage"
)

// Directions recognized as exit keys, in canonical form.
var canonicalDirections = map[string]bool{
	"north": true,
	"south": true,
	"east":  true,
	"west":  true,
	"up":    true,
	"down":  true,
}

var directionAliases = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
	"u": "up",
	"d": "down",
}

// NormalizeDirection maps a direction token (full name or single-letter
// alias, any case) to its canonical name. ok is false for anything else.
func NormalizeDirection(dir string) (string, bool) {
	dir = strings.ToLower(strings.TrimSpace(dir))
	if canonicalDirections[dir] {
		return dir, true
	}
	if full, ok := directionAliases[dir]; ok {
		return full, true
	}
	return "", false
}

// Room is the static definition of a location. The exit map never changes
// after load; occupancy lives on RoomInstance.
type Room struct {
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	ZoneId      string                        `json:"zone_id"`
	Exits       map[string]storage.Identifier `json:"exits"`
}

func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}
	if r.ZoneId == "" {
		el.Add(fmt.Errorf("zone_id is required"))
	}

	for dir, dest := range r.Exits {
		if !canonicalDirections[dir] {
			el.Add(fmt.Errorf("exit %q: not a canonical direction", dir))
		}
		if dest == "" {
			el.Add(fmt.Errorf("exit %s: room_id is required", dir))
		}
	}

	return el.Err()
}

// RoomInstance is the runtime state of a room: its definition plus the only
// mutable part, the occupant sets.
type RoomInstance struct {
	Id   storage.Identifier
	Room *Room

	players map[string]*Character
	npcs    map[string]*Character
}

func NewRoomInstance(id storage.Identifier, room *Room) *RoomInstance {
	return &RoomInstance{
		Id:      id,
		Room:    room,
		players: make(map[string]*Character),
		npcs:    make(map[string]*Character),
	}
}

func (r *RoomInstance) AddPlayer(c *Character) {
	r.players[c.Id] = c
}

func (r *RoomInstance) RemovePlayer(connId string) {
	delete(r.players, connId)
}

func (r *RoomInstance) AddNPC(c *Character) {
	r.npcs[c.Id] = c
}

func (r *RoomInstance) PlayerCount() int {
	return len(r.players)
}

// FindPlayer returns the co-located player matching name (case-insensitive),
// skipping the character identified by excludeConnId.
func (r *RoomInstance) FindPlayer(name, excludeConnId string) *Character {
	for id, c := range r.players {
		if id == excludeConnId {
			continue
		}
		if c.MatchName(name) {
			return c
		}
	}
	return nil
}

// FindNPC returns the co-located NPC matching name (case-insensitive).
func (r *RoomInstance) FindNPC(name string) *Character {
	for _, c := range r.npcs {
		if c.MatchName(name) {
			return c
		}
	}
	return nil
}

// NPC returns the NPC instance with the given id, or nil.
func (r *RoomInstance) NPC(npcId string) *Character {
	return r.npcs[npcId]
}
