package listener

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/ChrisLebbano/embermud/internal/session"
)

// ConnectionManager hands accepted connections to the session layer,
// regardless of which transport produced them.
type ConnectionManager struct {
	sessions *session.Manager
}

func NewConnectionManager(sm *session.Manager) *ConnectionManager {
	return &ConnectionManager{
		sessions: sm,
	}
}

func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter) {
	sess, err := m.sessions.NewSession(conn)
	if err != nil {
		slog.WarnContext(ctx, "login failed", "error", err)
		return
	}

	if err := sess.Play(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.WarnContext(ctx, "player session", "connId", sess.Id(), "error", err)
	}
}
