package commands

import "github.com/ChrisLebbano/embermud/internal/game"

// UserError is a refusal the player should read: bad arguments, a missing
// exit, an absent target. The session prints the message and keeps the
// connection; any other error tears the session down.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// toUserError maps the world's outcome errors onto UserError, hard refusals
// and soft warnings alike. System failures pass through untouched.
func toUserError(err error) error {
	if err == nil {
		return nil
	}
	if we, ok := game.AsWorldError(err); ok {
		return NewUserError(we.Message)
	}
	if warn, ok := game.AsWarning(err); ok {
		return NewUserError(warn.Message)
	}
	return err
}
