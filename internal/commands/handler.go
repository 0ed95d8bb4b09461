package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/ChrisLebbano/embermud/internal/game"
)

// CombatScheduler is the slice of the attack scheduler the interpreter
// drives.
type CombatScheduler interface {
	Engage(connId string)
	StopAttack(connId string)
	Attacking(connId string) bool
}

// commandFunc is the signature every verb handler implements.
type commandFunc func(ctx context.Context, connId string, rest string) error

// Handler parses one command line into verb + remainder and dispatches to a
// fixed handler set. All world mutation happens inside World; the handler's
// job is argument handling and message emission order.
type Handler struct {
	world  *game.World
	combat CombatScheduler
	pub    game.Publisher

	verbs map[string]commandFunc
}

func NewHandler(world *game.World, combat CombatScheduler, pub game.Publisher) *Handler {
	h := &Handler{
		world:  world,
		combat: combat,
		pub:    pub,
	}

	h.verbs = map[string]commandFunc{
		"say":       h.handleSay,
		"shout":     h.handleShout,
		"look":      h.handleLook,
		"hail":      h.handleHail,
		"target":    h.handleTarget,
		"kill":      h.handleKill,
		"char":      h.handleChar,
		"inventory": h.handleInventory,
		"inv":       h.handleInventory,
		"eat":       h.handleEat,
		"drink":     h.handleDrink,
		"who":       h.handleWho,
		"move":      h.handleGo,
		"go":        h.handleGo,
	}

	return h
}

// Exec executes one raw command line for a connection. UserError results are
// displayed to the player; anything else is a system failure.
func (h *Handler) Exec(ctx context.Context, connId, line string) error {
	verb, rest := splitCommand(line)
	if verb == "" {
		return nil
	}

	// Bare directions move the player.
	if dir, ok := game.NormalizeDirection(verb); ok {
		return h.move(ctx, connId, dir)
	}

	fn, ok := h.verbs[strings.ToLower(verb)]
	if !ok {
		return NewUserError(fmt.Sprintf("Unknown command: %s", verb))
	}

	return fn(ctx, connId, rest)
}

// splitCommand tokenizes a line into the verb and the untouched remainder.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}

func (h *Handler) systemMessage(connId, msg string) {
	h.pub.ToPlayer(connId, &game.Event{Category: game.EventSystem, Message: msg})
}
