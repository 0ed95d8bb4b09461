package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ChrisLebbano/embermud/internal/auth"
	"github.com/ChrisLebbano/embermud/internal/commands"
	"github.com/ChrisLebbano/embermud/internal/game"
)

const (
	defaultGracePeriod = 30 * time.Second
	maxTokenTries      = 3
)

// Authenticator maps login tokens to character identities and revokes
// them once a character has been removed for good.
type Authenticator interface {
	Validate(token string) (*auth.Identity, error)
	Invalidate(userId string)
}

// CombatManager is the slice of the combat scheduler the session layer
// drives on disconnect, reconnect, and final removal.
type CombatManager interface {
	HandleDisconnect(connId string)
	RekeyPlayer(oldConnId, newConnId string)
	RemovePlayer(connId string)
}

// Subscriber delivers published event bytes for a subject.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Manager owns the login sequence and the disconnect grace period. A
// character whose connection drops stays in the world until the grace
// timer fires; reconnecting with the same token before then rebinds the
// character to the new connection with no visible interruption.
type Manager struct {
	world   *game.World
	combat  CombatManager
	handler *commands.Handler
	auth    Authenticator
	pub     game.Publisher
	sub     Subscriber
	grace   time.Duration

	mu      sync.Mutex
	pending map[string]*pendingRemoval // userId -> linkdead character
	conns   map[string]string          // connId -> userId
}

type pendingRemoval struct {
	connId string
	timer  *time.Timer
}

type ManagerOpt func(*Manager)

// WithGracePeriod overrides the default disconnect grace period.
func WithGracePeriod(d time.Duration) ManagerOpt {
	return func(m *Manager) {
		m.grace = d
	}
}

func NewManager(world *game.World, combat CombatManager, handler *commands.Handler, a Authenticator, pub game.Publisher, sub Subscriber, opts ...ManagerOpt) *Manager {
	m := &Manager{
		world:   world,
		combat:  combat,
		handler: handler,
		auth:    a,
		pub:     pub,
		sub:     sub,
		grace:   defaultGracePeriod,
		pending: map[string]*pendingRemoval{},
		conns:   map[string]string{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// NewSession runs the login sequence on a fresh connection and binds the
// authenticated character to it.
func (m *Manager) NewSession(conn io.ReadWriter) (*Session, error) {
	conn.Write([]byte("Welcome to EmberMUD!\n"))

	br := bufio.NewReader(conn)

	var identity *auth.Identity
	_, err := prompt(conn, br, "Token: ", maxTokenTries, func(str string) (bool, string) {
		id, err := m.auth.Validate(str)
		if err != nil {
			return false, "Invalid token.\n"
		}
		identity = id
		return true, ""
	})
	if err != nil {
		return nil, err
	}

	// The named character must belong to the authenticated account.
	_, err = prompt(conn, br, "Character: ", maxTokenTries, func(str string) (bool, string) {
		if !strings.EqualFold(str, identity.Name) {
			return false, "No such character.\n"
		}
		return true, ""
	})
	if err != nil {
		return nil, err
	}

	connId := uuid.New().String()
	res, err := m.bind(connId, identity)
	if err != nil {
		return nil, err
	}

	return &Session{
		manager: m,
		conn:    conn,
		reader:  br,
		connId:  connId,
		bind:    res,
	}, nil
}

// BindResult describes how a login attached to the world.
type BindResult struct {
	UserId        string
	Resumed       bool
	Snapshot      *game.RoomSnapshot
	SystemMessage string
}

func (m *Manager) bind(connId string, identity *auth.Identity) (*BindResult, error) {
	m.mu.Lock()
	pr, linkdead := m.pending[identity.UserId]
	if linkdead {
		pr.timer.Stop()
		delete(m.pending, identity.UserId)
		delete(m.conns, pr.connId)
	}
	m.conns[connId] = identity.UserId
	m.mu.Unlock()

	if linkdead {
		if err := m.world.RekeyPlayer(pr.connId, connId); err != nil {
			return nil, fmt.Errorf("resuming session: %w", err)
		}
		m.combat.RekeyPlayer(pr.connId, connId)

		c := m.world.Player(connId)
		snap, err := m.world.RoomSnapshot(c.RoomId, connId)
		if err != nil {
			return nil, err
		}
		return &BindResult{
			UserId:        identity.UserId,
			Resumed:       true,
			Snapshot:      snap,
			SystemMessage: fmt.Sprintf("Welcome back, %s.", c.Name),
		}, nil
	}

	res, err := m.world.AddPlayer(connId, identity.Name, identity.Race, identity.Class)
	if err != nil {
		m.mu.Lock()
		delete(m.conns, connId)
		m.mu.Unlock()
		return nil, err
	}

	m.pub.ToRoom(res.RoomId, &game.Event{
		Category: game.EventSystem,
		Message:  fmt.Sprintf("%s has entered the realm.", identity.Name),
	}, connId)

	return &BindResult{
		UserId:        identity.UserId,
		Snapshot:      res.Snapshot,
		SystemMessage: res.SystemMessage,
	}, nil
}

// Disconnect stops the connection's attack loop and arms the grace
// timer. The character stays in the world until it fires. A second
// disconnect for the same user replaces the previous timer.
func (m *Manager) Disconnect(connId string) {
	m.combat.HandleDisconnect(connId)

	m.mu.Lock()
	userId, ok := m.conns[connId]
	if !ok {
		m.mu.Unlock()
		return
	}
	delete(m.conns, connId)

	if prev, ok := m.pending[userId]; ok {
		prev.timer.Stop()
	}
	m.pending[userId] = &pendingRemoval{
		connId: connId,
		timer:  time.AfterFunc(m.grace, func() { m.expire(userId) }),
	}
	m.mu.Unlock()
}

// Quit removes the character immediately. The token stays valid.
func (m *Manager) Quit(connId string) {
	m.mu.Lock()
	delete(m.conns, connId)
	m.mu.Unlock()

	m.removeAndAnnounce(connId)
}

func (m *Manager) expire(userId string) {
	m.mu.Lock()
	pr, ok := m.pending[userId]
	if !ok {
		m.mu.Unlock()
		return
	}
	delete(m.pending, userId)
	m.mu.Unlock()

	m.removeAndAnnounce(pr.connId)
	m.auth.Invalidate(userId)
}

func (m *Manager) removeAndAnnounce(connId string) {
	m.combat.RemovePlayer(connId)

	res, ok := m.world.RemovePlayer(connId)
	if !ok {
		return
	}
	m.pub.ToRoom(res.RoomId, &game.Event{
		Category: game.EventSystem,
		Message:  fmt.Sprintf("%s has left the realm.", res.PlayerName),
	})
}

// PendingRemovals reports how many linkdead characters are awaiting the
// grace timer.
func (m *Manager) PendingRemovals() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
