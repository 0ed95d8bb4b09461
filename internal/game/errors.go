package game

import (
	"errors"

	"github.com/ChrisLebbano/embermud/internal/storage"
)

// WorldError is a hard refusal: the operation was rejected and no state
// changed. The message is safe to show the player.
type WorldError struct {
	Message string
}

func (e *WorldError) Error() string {
	return e.Message
}

func NewWorldError(msg string) *WorldError {
	return &WorldError{Message: msg}
}

// Warning is a soft outcome: the operation partially completed and hit a
// notable terminal condition (a death, an already-dead target). Some state
// may have changed, typically a cleared attack flag. Callers must check for
// WorldError before Warning.
type Warning struct {
	Message string

	// StopMessage, when set, is an extra line telling the actor their
	// attack loop has ended.
	StopMessage string

	// Victim identification for death outcomes. TargetConnId is set when
	// the victim is a player, TargetNPCId when it is an NPC.
	TargetName   string
	TargetConnId string
	TargetNPCId  string

	// RoomId is where the outcome happened, for room-scoped announcements.
	RoomId storage.Identifier
}

func (w *Warning) Error() string {
	return w.Message
}

// AsWorldError and AsWarning unwrap the outcome convention for callers.
func AsWorldError(err error) (*WorldError, bool) {
	var we *WorldError
	ok := errors.As(err, &we)
	return we, ok
}

func AsWarning(err error) (*Warning, bool) {
	var w *Warning
	ok := errors.As(err, &w)
	return w, ok
}
