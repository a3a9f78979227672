// Package web serves the browser front end: an embedded canvas client and a
// WebSocket endpoint that runs one independent game per connection.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// WebSocketPath is the endpoint the client connects to.
const WebSocketPath = "/ws"

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Config holds configuration for the web server.
type Config struct {
	Address      string        // host:port to listen on
	CanvasWidth  int           // Canvas width in pixels
	CanvasHeight int           // Canvas height in pixels
	CellPx       int           // Pixels per cell
	TickInterval time.Duration // Constant time between ticks
	Seed         int64         // 0 seeds every connection from the clock
}

// DefaultConfig returns a 400x400 canvas with 10px cells.
func DefaultConfig() Config {
	return Config{
		Address:      ":8080",
		CanvasWidth:  400,
		CanvasHeight: 400,
		CellPx:       10,
		TickInterval: core.DefaultTickInterval,
	}
}

// Server serves the canvas client and its WebSocket games.
type Server struct {
	config   Config
	grid     snake.Grid
	conns    *ConnManager
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewServer validates cfg and creates a server. A nil logger logs to stderr.
func NewServer(cfg Config, logger *log.Logger) (*Server, error) {
	if cfg.TickInterval <= 0 {
		return nil, fmt.Errorf("web: tick interval must be positive, got %s", cfg.TickInterval)
	}
	grid, err := snake.GridFromSurface(cfg.CanvasWidth, cfg.CanvasHeight, cfg.CellPx)
	if err != nil {
		return nil, fmt.Errorf("web: canvas %dx%d: %w", cfg.CanvasWidth, cfg.CanvasHeight, err)
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "gridsnake-web",
		})
	}

	return &Server{
		config: cfg,
		grid:   grid,
		conns:  NewConnManager(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}, nil
}

// Grid returns the board every connection plays on.
func (s *Server) Grid() snake.Grid {
	return s.grid
}

// Players returns the number of open game connections.
func (s *Server) Players() int {
	return s.conns.Count()
}

// Handler returns the HTTP routes: the static client at / and the game
// socket at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", s.requestLogger(http.FileServer(StaticFS())))
	mux.HandleFunc(WebSocketPath, s.handleWS)
	return mux
}

// handleWS upgrades the request and plays one game until the socket closes.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	conn := NewConn(ws)
	s.conns.Add(conn)
	s.logger.Info("player connected", "id", conn.ID, "remote", r.RemoteAddr, "players", s.conns.Count())

	ctx, cancel := context.WithCancel(r.Context())
	defer func() {
		cancel()
		conn.Close()
		s.conns.Remove(conn.ID)
		s.logger.Info("player disconnected", "id", conn.ID, "players", s.conns.Count())
	}()

	in := make(chan ClientMessage, 16)
	go conn.ReadLoop(ctx, in, s.logger)

	p, err := newPlayer(conn.ID, conn, s.grid, s.config.TickInterval, s.seed(), s.logger)
	if err != nil {
		s.logger.Error("start game", "id", conn.ID, "error", err)
		return
	}
	if err := p.run(ctx, in); err != nil {
		s.logger.Debug("player loop ended", "id", conn.ID, "error", err)
	}
}

func (s *Server) seed() int64 {
	if s.config.Seed != 0 {
		return s.config.Seed
	}
	return time.Now().UnixNano()
}

// statusWriter captures the HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		s.logger.Debug("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

// Run listens on the configured address and serves until ctx is canceled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("web: listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, ctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	canvasW, canvasH := s.grid.SurfaceSize()
	s.logger.Info("starting web server", "address", ln.Addr().String(),
		"grid", fmt.Sprintf("%dx%d", s.grid.Width, s.grid.Height),
		"canvas", fmt.Sprintf("%dx%d", canvasW, canvasH))

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("web: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Hijacked sockets are not tracked by Shutdown.
		s.conns.CloseAll()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
