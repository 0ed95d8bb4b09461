package commands

import (
	"context"
	"fmt"
	"strings"
)

// handleWho lists players sharing the actor's zone.
func (h *Handler) handleWho(_ context.Context, connId, _ string) error {
	c := h.world.Player(connId)
	if c == nil {
		return NewUserError("You are not in the world.")
	}
	zoneId, ok := h.world.ZoneOfRoom(c.RoomId)
	if !ok {
		return NewUserError("You are not in the world.")
	}

	names := h.world.PlayerNamesForZone(zoneId)
	h.systemMessage(connId, fmt.Sprintf("Players here:\n%s", strings.Join(names, "\n")))
	return nil
}
