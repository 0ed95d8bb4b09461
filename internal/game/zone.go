package game

import (
	"fmt"

	"github.com/pixil98/go-errors"

	"github.com/ChrisLebbano/embermud/internal/storage"
)

// Zone is the static definition of a region grouping rooms for shout and
// who scoping.
type Zone struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (z *Zone) Validate() error {
	el := errors.NewErrorList()

	if z.Name == "" {
		el.Add(fmt.Errorf("zone name is required"))
	}

	return el.Err()
}

// ZoneInstance groups the room instances belonging to one zone.
type ZoneInstance struct {
	Id   storage.Identifier
	Zone *Zone

	rooms map[storage.Identifier]*RoomInstance
}

func NewZoneInstance(id storage.Identifier, zone *Zone) *ZoneInstance {
	return &ZoneInstance{
		Id:    id,
		Zone:  zone,
		rooms: make(map[storage.Identifier]*RoomInstance),
	}
}

func (z *ZoneInstance) AddRoom(ri *RoomInstance) {
	z.rooms[ri.Id] = ri
}

func (z *ZoneInstance) GetRoom(roomId storage.Identifier) *RoomInstance {
	return z.rooms[roomId]
}

// Rooms returns the zone's room instances keyed by room id.
func (z *ZoneInstance) Rooms() map[storage.Identifier]*RoomInstance {
	return z.rooms
}
