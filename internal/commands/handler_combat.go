package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/ChrisLebbano/embermud/internal/game"
)

// handleTarget selects a co-located character as the actor's primary target.
func (h *Handler) handleTarget(_ context.Context, connId, rest string) error {
	res, err := h.world.SetPrimaryTarget(connId, rest)
	if err != nil {
		return toUserError(err)
	}

	h.pub.ToPlayer(connId, &game.Event{Category: game.EventRoomDescription, Snapshot: res.Snapshot})
	h.systemMessage(connId, fmt.Sprintf("You are now targeting %s.", res.TargetName))
	return nil
}

// handleKill drives the attack loop state machine. `kill <name>` targets and
// engages; bare `kill` engages the existing target, or toggles the loop off
// when one is already running.
func (h *Handler) handleKill(_ context.Context, connId, rest string) error {
	name := strings.TrimSpace(rest)

	if name == "" {
		if h.combat.Attacking(connId) {
			h.combat.StopAttack(connId)
			h.systemMessage(connId, "You stop attacking.")
			return nil
		}
		if !h.world.HasPrimaryTarget(connId) {
			return NewUserError("No primary target selected.")
		}
		h.combat.Engage(connId)
		return nil
	}

	if _, err := h.world.SetPrimaryTarget(connId, name); err != nil {
		return toUserError(err)
	}
	h.combat.Engage(connId)
	return nil
}
