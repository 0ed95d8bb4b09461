package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/ChrisLebbano/embermud/internal/game"
	"github.com/ChrisLebbano/embermud/internal/storage"
)

// PlayerSubject is the NATS subject a player's session subscribes to.
func PlayerSubject(connId string) string {
	return fmt.Sprintf("player-%s", connId)
}

// NatsPublisher publishes events to individual player NATS subjects,
// resolving room and zone scopes through a PlayerGroup.
type NatsPublisher struct {
	server *NatsServer
	group  game.PlayerGroup
}

// NewNatsPublisher wraps a NatsServer for per-player event delivery.
func NewNatsPublisher(server *NatsServer, group game.PlayerGroup) *NatsPublisher {
	return &NatsPublisher{
		server: server,
		group:  group,
	}
}

func (p *NatsPublisher) ToPlayer(connId string, ev *game.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}
	return p.server.Publish(PlayerSubject(connId), data)
}

func (p *NatsPublisher) ToRoom(roomId storage.Identifier, ev *game.Event, exclude ...string) error {
	return p.fanOut(p.group.PlayersInRoom(roomId), ev, exclude)
}

func (p *NatsPublisher) ToZone(zoneId storage.Identifier, ev *game.Event, exclude ...string) error {
	return p.fanOut(p.group.PlayersInZone(zoneId), ev, exclude)
}

func (p *NatsPublisher) fanOut(connIds []string, ev *game.Event, exclude []string) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	excludeSet := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excludeSet[id] = true
	}

	var firstErr error
	for _, id := range connIds {
		if excludeSet[id] {
			continue
		}
		if err := p.server.Publish(PlayerSubject(id), data); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
