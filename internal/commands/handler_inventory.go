package commands

import (
	"context"
	"strings"
)

// handleInventory lists the actor's carried stacks.
func (h *Handler) handleInventory(_ context.Context, connId, _ string) error {
	lines, err := h.world.InventoryList(connId)
	if err != nil {
		return toUserError(err)
	}

	if len(lines) == 0 {
		h.systemMessage(connId, "You are not carrying anything.")
		return nil
	}
	h.systemMessage(connId, "You are carrying:\n"+strings.Join(lines, "\n"))
	return nil
}
