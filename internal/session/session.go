package session

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ChrisLebbano/embermud/internal/commands"
	"github.com/ChrisLebbano/embermud/internal/display"
	"github.com/ChrisLebbano/embermud/internal/game"
	"github.com/ChrisLebbano/embermud/internal/messaging"
)

// Session drives one authenticated connection: it relays published
// events to the client and feeds input lines to the command handler.
type Session struct {
	manager *Manager
	conn    io.ReadWriter
	reader  *bufio.Reader
	connId  string
	bind    *BindResult
}

// Id returns the connection id the session's character is bound to.
func (s *Session) Id() string {
	return s.connId
}

func (s *Session) Play(ctx context.Context) error {
	defer s.manager.Disconnect(s.connId)

	msgs := make(chan []byte, 16)
	unsubscribe, err := s.manager.sub.Subscribe(messaging.PlayerSubject(s.connId), func(data []byte) {
		select {
		case msgs <- data:
		default:
			slog.Warn("dropping event for slow client", "connId", s.connId)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribing: %w", err)
	}
	defer unsubscribe()

	if err := s.writeLine(s.bind.SystemMessage); err != nil {
		return err
	}
	if err := s.writeLine(display.RenderRoom(s.bind.Snapshot)); err != nil {
		return err
	}
	if err := s.prompt(); err != nil {
		return err
	}

	// Read input lines into a channel so the loop can also service events.
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		for {
			line, err := s.reader.ReadString('\n')
			if err != nil {
				inputErrChan <- err
				close(inputChan)
				return
			}
			inputChan <- trimLine(line)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case data := <-msgs:
			var ev game.Event
			if err := json.Unmarshal(data, &ev); err != nil {
				slog.Warn("dropping malformed event", "connId", s.connId, "error", err)
				continue
			}
			if err := s.writeLine("\n" + display.RenderEvent(&ev)); err != nil {
				return err
			}
			if err := s.prompt(); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				err := <-inputErrChan
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}

			line = strings.TrimSpace(line)
			if line == "" {
				if err := s.prompt(); err != nil {
					return err
				}
				continue
			}

			if strings.EqualFold(line, "quit") {
				s.writeLine("Goodbye!")
				s.manager.Quit(s.connId)
				return nil
			}

			err := s.manager.handler.Exec(ctx, s.connId, line)
			if err != nil {
				var userErr *commands.UserError
				if errors.As(err, &userErr) {
					if err := s.writeLine(userErr.Message); err != nil {
						return err
					}
				} else {
					return fmt.Errorf("command execution failed: %w", err)
				}
			}

			if err := s.prompt(); err != nil {
				return err
			}
		}
	}
}

func (s *Session) prompt() error {
	p := "> "
	if cur, max, ok := s.manager.world.Vitals(s.connId); ok {
		p = fmt.Sprintf("[%d/%dHP] > ", cur, max)
	}
	_, err := s.conn.Write([]byte(p))
	return err
}

func (s *Session) writeLine(msg string) error {
	_, err := s.conn.Write([]byte(msg + "\n"))
	return err
}
