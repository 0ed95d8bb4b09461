package commands

import (
	"context"

	"github.com/ChrisLebbano/embermud/internal/game"
)

// handleGo handles the explicit `move <dir>` / `go <dir>` forms.
func (h *Handler) handleGo(ctx context.Context, connId, rest string) error {
	dir, ok := game.NormalizeDirection(rest)
	if !ok {
		return NewUserError("Go where?")
	}
	return h.move(ctx, connId, dir)
}

// move performs the movement and emits its messages in the fixed order:
// snapshot to self, travel line to self, departure to the old room, arrival
// to the new room. World.MovePlayer has already migrated occupancy (leave
// old, join new) before any message goes out.
func (h *Handler) move(_ context.Context, connId, direction string) error {
	res, err := h.world.MovePlayer(connId, direction)
	if err != nil {
		return toUserError(err)
	}

	h.pub.ToPlayer(connId, &game.Event{Category: game.EventRoomDescription, Snapshot: res.Snapshot})
	h.systemMessage(connId, expand(msgTravel, map[string]string{"Direction": res.Direction}))

	data := map[string]string{"Name": res.PlayerName, "Direction": res.Direction}
	h.pub.ToRoom(res.FromRoomId, &game.Event{
		Category: game.EventSystem,
		Message:  expand(msgDeparture, data),
	}, connId)
	h.pub.ToRoom(res.ToRoomId, &game.Event{
		Category: game.EventSystem,
		Message:  expand(msgArrival, data),
	}, connId)

	return nil
}
