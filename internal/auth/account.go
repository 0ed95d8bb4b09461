package auth

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Account is the stored login record for a single character. TokenHash is
// the bcrypt hash of the secret half of the login token.
type Account struct {
	CharacterName string `json:"character_name"`
	Race          string `json:"race"`
	Class         string `json:"class"`
	Level         int    `json:"level"`
	TokenHash     string `json:"token_hash"`
}

func (a *Account) Validate() error {
	el := errors.NewErrorList()

	if a.CharacterName == "" {
		el.Add(fmt.Errorf("character_name must be set"))
	}
	if a.Race == "" {
		el.Add(fmt.Errorf("race must be set"))
	}
	if a.Class == "" {
		el.Add(fmt.Errorf("class must be set"))
	}
	if a.Level < 1 {
		el.Add(fmt.Errorf("level must be at least 1"))
	}
	if a.TokenHash == "" {
		el.Add(fmt.Errorf("token_hash must be set"))
	}

	return el.Err()
}
