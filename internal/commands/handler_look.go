package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/ChrisLebbano/embermud/internal/game"
)

// handleLook shows the current room, or peeks through an exit when given a
// direction.
func (h *Handler) handleLook(_ context.Context, connId, rest string) error {
	rest = strings.TrimSpace(rest)
	if rest != "" {
		dir, ok := game.NormalizeDirection(rest)
		if !ok {
			return NewUserError(fmt.Sprintf("There is no exit %s.", rest))
		}
		res, err := h.world.LookDirection(connId, dir)
		if err != nil {
			return toUserError(err)
		}
		h.systemMessage(connId, fmt.Sprintf("To the %s you see %s.", res.Direction, res.RoomName))
		return nil
	}

	c := h.world.Player(connId)
	if c == nil {
		return NewUserError("You are not in the world.")
	}
	snap, err := h.world.RoomSnapshot(c.RoomId, connId)
	if err != nil {
		return toUserError(err)
	}
	h.pub.ToPlayer(connId, &game.Event{Category: game.EventRoomDescription, Snapshot: snap})
	return nil
}
