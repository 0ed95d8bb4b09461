package listener

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebsocketListener serves the same line-based session protocol over
// websocket text messages, one message per line in each direction.
type WebsocketListener struct {
	port uint16
	path string
	cm   *ConnectionManager
}

func NewWebsocketListener(port uint16, path string, cm *ConnectionManager) *WebsocketListener {
	if path == "" {
		path = "/ws"
	}
	return &WebsocketListener{
		port: port,
		path: path,
		cm:   cm,
	}
}

func (l *WebsocketListener) Start(ctx context.Context) error {
	connCtx, cancelConns := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc(l.path, func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.WarnContext(r.Context(), "websocket upgrade", "remote", r.RemoteAddr, "error", err)
			return
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			l.cm.AcceptConnection(connCtx, newWsReadWriter(conn))
		}()
	})

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%d", l.port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		svr.Shutdown(shutdownCtx)
		cancelConns()
	}()

	slog.InfoContext(ctx, "listening for websocket", "port", l.port, "path", l.path)

	err := svr.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serving websocket on port %d: %w", l.port, err)
	}

	wg.Wait()
	return nil
}

// wsReadWriter adapts a websocket connection to the io.ReadWriter the
// session layer expects. Each inbound text message is surfaced as a line
// and each Write goes out as one message.
type wsReadWriter struct {
	conn *websocket.Conn

	mu      sync.Mutex
	current io.Reader
}

func newWsReadWriter(conn *websocket.Conn) *wsReadWriter {
	return &wsReadWriter{conn: conn}
}

func (w *wsReadWriter) Read(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for {
		if w.current == nil {
			_, r, err := w.conn.NextReader()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return 0, io.EOF
				}
				return 0, err
			}
			w.current = &newlineTerminated{r: r}
		}

		n, err := w.current.Read(p)
		if err == io.EOF {
			w.current = nil
			if n == 0 {
				continue
			}
			err = nil
		}
		return n, err
	}
}

func (w *wsReadWriter) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// newlineTerminated appends a trailing newline to a message reader so
// line-oriented readers see message boundaries.
type newlineTerminated struct {
	r    io.Reader
	eof  bool
	sent bool
}

func (n *newlineTerminated) Read(p []byte) (int, error) {
	if n.sent {
		return 0, io.EOF
	}
	if !n.eof {
		c, err := n.r.Read(p)
		if err != nil && err != io.EOF {
			return c, err
		}
		if err == io.EOF {
			n.eof = true
			if c < len(p) {
				p[c] = '\n'
				n.sent = true
				return c + 1, io.EOF
			}
		}
		return c, nil
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = '\n'
	n.sent = true
	return 1, io.EOF
}
