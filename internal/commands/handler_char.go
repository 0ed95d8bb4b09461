package commands

import (
	"context"

	"github.com/ChrisLebbano/embermud/internal/display"
)

// handleChar shows the actor's computed character sheet.
func (h *Handler) handleChar(_ context.Context, connId, _ string) error {
	c := h.world.Player(connId)
	if c == nil {
		return NewUserError("You are not in the world.")
	}
	snap, err := h.world.RoomSnapshot(c.RoomId, connId)
	if err != nil {
		return toUserError(err)
	}

	h.systemMessage(connId, display.CharacterSheet(snap.Character))
	return nil
}
