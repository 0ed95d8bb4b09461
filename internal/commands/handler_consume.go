package commands

import (
	"context"
	"strings"

	"github.com/ChrisLebbano/embermud/internal/game"
)

// minConsumeSearchLen keeps single-letter guesses from matching arbitrary
// inventory stacks.
const minConsumeSearchLen = 3

// consumeVerb binds a verb to its item-type filter and message forms.
type consumeVerb struct {
	present string
	past    string
	types   []game.ItemType
}

var (
	verbEat   = consumeVerb{present: "eat", past: "ate", types: []game.ItemType{game.ItemTypeFood}}
	verbDrink = consumeVerb{present: "drink", past: "drank", types: []game.ItemType{game.ItemTypeDrink, game.ItemTypePotion}}
)

func (h *Handler) handleEat(ctx context.Context, connId, rest string) error {
	return h.consume(ctx, connId, rest, verbEat)
}

func (h *Handler) handleDrink(ctx context.Context, connId, rest string) error {
	return h.consume(ctx, connId, rest, verbDrink)
}

// consume removes one unit of the first matching stack and emits a self
// confirmation plus a distinct room-visible message.
func (h *Handler) consume(_ context.Context, connId, rest string, verb consumeVerb) error {
	search := strings.TrimSpace(rest)
	if len(search) < minConsumeSearchLen {
		return NewUserError("You'll have to be more specific.")
	}

	res, err := h.world.ConsumeItem(connId, search, verb.types...)
	if err != nil {
		return toUserError(err)
	}

	data := map[string]string{
		"Name": res.PlayerName,
		"Item": res.ItemName,
		"Verb": verb.present,
		"Past": verb.past,
	}
	h.systemMessage(connId, expand(msgConsumeSelf, data))
	h.pub.ToRoom(res.RoomId, &game.Event{
		Category: game.EventSystem,
		Message:  expand(msgConsumeRoom, data),
	}, connId)

	return nil
}
