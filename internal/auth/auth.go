package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/ChrisLebbano/embermud/internal/storage"
)

// Identity is the character an authenticated token maps to.
type Identity struct {
	UserId string
	Name   string
	Race   string
	Class  string
	Level  int
}

// Memory validates login tokens against stored accounts. Tokens have the
// form "<userId>:<secret>"; the secret is checked against the account's
// bcrypt hash. Invalidated ids stay dead until the process restarts.
type Memory struct {
	mu          sync.Mutex
	accounts    storage.Storer[*Account]
	invalidated map[string]bool
}

func NewMemory(accounts storage.Storer[*Account]) *Memory {
	return &Memory{
		accounts:    accounts,
		invalidated: map[string]bool{},
	}
}

// Validate checks a login token and returns the identity it maps to.
func (m *Memory) Validate(token string) (*Identity, error) {
	userId, secret, ok := strings.Cut(token, ":")
	if !ok || userId == "" || secret == "" {
		return nil, fmt.Errorf("malformed token")
	}

	m.mu.Lock()
	dead := m.invalidated[userId]
	m.mu.Unlock()
	if dead {
		return nil, fmt.Errorf("token invalidated")
	}

	account := m.accounts.Get(storage.Identifier(userId))
	if account == nil {
		return nil, fmt.Errorf("unknown account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.TokenHash), []byte(secret)); err != nil {
		return nil, fmt.Errorf("bad credentials")
	}

	return &Identity{
		UserId: userId,
		Name:   account.CharacterName,
		Race:   account.Race,
		Class:  account.Class,
		Level:  account.Level,
	}, nil
}

// Invalidate marks a user's token unusable for the rest of the process
// lifetime.
func (m *Memory) Invalidate(userId string) {
	m.mu.Lock()
	m.invalidated[userId] = true
	m.mu.Unlock()
}

// IssueToken generates a fresh secret for a user and returns the token
// alongside the bcrypt hash to store.
func IssueToken(userId string) (token, hash string, err error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("generating secret: %w", err)
	}
	secret := hex.EncodeToString(buf)

	h, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("hashing secret: %w", err)
	}

	return fmt.Sprintf("%s:%s", userId, secret), string(h), nil
}
