package game

import "github.com/ChrisLebbano/embermud/internal/storage"

// EventCategory tags every outbound event. The set is closed; clients switch
// on it. SelfRecieveAttackDamage is misspelled on the wire and stays that
// way.
type EventCategory string

const (
	EventCharacterSpeech         EventCategory = "CharacterSpeech"
	EventRoomDescription         EventCategory = "RoomDescription"
	EventSelfDealingAttackDamage EventCategory = "SelfDealingAttackDamage"
	EventSelfRecieveAttackDamage EventCategory = "SelfRecieveAttackDamage"
	EventShout                   EventCategory = "Shout"
	EventSystem                  EventCategory = "System"
)

// Event is the outbound envelope pushed to clients.
type Event struct {
	Category EventCategory `json:"category"`
	Message  string        `json:"message,omitempty"`
	Snapshot *RoomSnapshot `json:"snapshot,omitempty"`
}

// Publisher delivers events to players, with room and zone fan-out.
type Publisher interface {
	ToPlayer(connId string, ev *Event) error
	ToRoom(roomId storage.Identifier, ev *Event, exclude ...string) error
	ToZone(zoneId storage.Identifier, ev *Event, exclude ...string) error
}

// PlayerGroup resolves fan-out scopes to connection ids. World implements it.
type PlayerGroup interface {
	PlayersInRoom(roomId storage.Identifier) []string
	PlayersInZone(zoneId storage.Identifier) []string
}

// RoomSnapshot is the consistent view of a room pushed to clients, with an
// optional requester-specific character section.
type RoomSnapshot struct {
	RoomId      string `json:"room_id"`
	RoomName    string `json:"room_name"`
	Description string `json:"description"`
	ZoneName    string `json:"zone_name"`

	Exits   []string `json:"exits"`
	Players []string `json:"players"`
	NPCs    []string `json:"npcs"`

	Character *CharacterSnapshot `json:"character,omitempty"`
}

// CharacterSnapshot is the requesting player's computed state.
type CharacterSnapshot struct {
	Name       string     `json:"name"`
	RaceName   string     `json:"race_name"`
	ClassName  string     `json:"class_name"`
	Level      int        `json:"level"`
	Attributes Attributes `json:"attributes"`

	CurrentHealth            int     `json:"current_health"`
	MaxHealth                int     `json:"max_health"`
	AttackDamage             int     `json:"attack_damage"`
	AttackDelaySeconds       float64 `json:"attack_delay_seconds"`
	CurrentExperience        int     `json:"current_experience"`
	ExperienceUntilNextLevel int     `json:"experience_until_next_level"`

	Target *TargetVitals `json:"target,omitempty"`
}

// TargetVitals is the current target's name and health shown alongside the
// requester's own stats.
type TargetVitals struct {
	Name          string `json:"name"`
	CurrentHealth int    `json:"current_health"`
	MaxHealth     int    `json:"max_health"`
}
