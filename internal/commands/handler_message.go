package commands

import (
	"context"
	"fmt"

	"github.com/ChrisLebbano/embermud/internal/game"
)

// handleSay delivers room-scoped speech. The whole room, speaker included,
// receives the same payload.
func (h *Handler) handleSay(_ context.Context, connId, rest string) error {
	res, err := h.world.Say(connId, rest)
	if err != nil {
		return toUserError(err)
	}

	h.pub.ToRoom(res.RoomId, &game.Event{
		Category: game.EventCharacterSpeech,
		Message:  fmt.Sprintf("%s says, '%s'", res.PlayerName, res.Message),
	})
	return nil
}

// handleShout delivers zone-scoped speech plus a distinct self-echo.
func (h *Handler) handleShout(_ context.Context, connId, rest string) error {
	res, err := h.world.Shout(connId, rest)
	if err != nil {
		return toUserError(err)
	}

	h.pub.ToZone(res.ZoneId, &game.Event{
		Category: game.EventShout,
		Message:  fmt.Sprintf("%s shouts, '%s'", res.PlayerName, res.Message),
	}, connId)
	h.pub.ToPlayer(connId, &game.Event{
		Category: game.EventShout,
		Message:  res.SelfEcho,
	})
	return nil
}

// handleHail greets a named co-located character, or the primary target when
// no name is given.
func (h *Handler) handleHail(_ context.Context, connId, rest string) error {
	res, err := h.world.Hail(connId, rest)
	if err != nil {
		return toUserError(err)
	}

	data := map[string]string{"Name": res.PlayerName, "Target": res.TargetName}
	h.systemMessage(connId, expand(msgHailSelf, data))
	if res.TargetConnId != "" {
		h.pub.ToPlayer(res.TargetConnId, &game.Event{
			Category: game.EventSystem,
			Message:  expand(msgHailTarget, data),
		})
	}
	h.pub.ToRoom(res.RoomId, &game.Event{
		Category: game.EventSystem,
		Message:  expand(msgHailRoom, data),
	}, connId, res.TargetConnId)

	return nil
}
