package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tower-rush/internal/config"
	"github.com/vovakirdan/tower-rush/internal/game"
	"github.com/vovakirdan/tower-rush/internal/storage"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.towerrush/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate overrides the arena frame rate when positive.
	TickRate int

	// Game is the tuning every hosted session is built with.
	Game config.TowerRushConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.towerrush/runs.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultTowerRushConfig(),
	}
}

// SSHServer wraps a Wish SSH server hosting independent Tower Rush sessions.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	// sessions counts connections currently inside the middleware chain.
	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr with timestamps.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "towerrush-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".towerrush", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates an independent session for each SSH connection.
// Remote sessions are silent; audio stays with the host process.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	sessLog := s.logger.With("user", sshSession.User(), "session", uuid.NewString())
	session := game.New(s.config.Game,
		game.WithSeed(time.Now().UnixNano()),
		game.WithLogger(sessLog),
		game.WithSound(game.NopSound{}),
		game.WithBestScore(s.bestScore(sessLog)),
	)

	model := NewModel(session, s.store, Options{
		Player:   sshSession.User(),
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
		TickRate: s.config.TickRate,
		Logger:   sessLog,
		Renderer: bubbletea.MakeRenderer(sshSession),
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// bestScore is the server-wide record shown to new sessions.
func (s *SSHServer) bestScore(logger *log.Logger) int {
	if s.store == nil {
		return 0
	}
	best, err := s.store.HighScore()
	if err != nil {
		logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// loggingMiddleware logs connects and disconnects with the live count.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		remote := sshSession.RemoteAddr().String()
		started := time.Now()
		s.logger.Info("connected", "user", sshSession.User(), "remote", remote, "live", s.sessions.Add(1))
		defer func() {
			s.logger.Info("disconnected",
				"user", sshSession.User(),
				"remote", remote,
				"duration", time.Since(started).Round(time.Second),
				"live", s.sessions.Add(-1),
			)
		}()
		next(sshSession)
	}
}

// ListenAndServe serves connections until ctx is cancelled, then shuts
// the server down. A listener failure is returned after shutdown.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	serveErr := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info("shutting down", "sessions", s.sessions.Load())
	case err = <-serveErr:
		if err != nil {
			s.logger.Error("server error", "error", err)
			err = fmt.Errorf("tui: ssh listen: %w", err)
		}
	}
	return errors.Join(err, s.Shutdown())
}

// Shutdown stops accepting connections, waits up to shutdownGrace for
// open sessions, and closes the run database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		err = errors.Join(err, s.store.Close())
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
