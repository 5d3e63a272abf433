package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"golang.org/x/sync/errgroup"

	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/ports"
	"github.com/filearr/filearr/internal/services"
	"github.com/filearr/filearr/internal/ui"
)

// shutdownTimeout bounds how long open sessions get to finish on shutdown
const shutdownTimeout = 30 * time.Second

// Config holds the SSH picker server options
type Config struct {
	AuthorizedKeysPath string
	DevMode            bool
	Host               string
	HostKeyPath        string
	Keys               ui.KeyMap
	Port               string
	StartPath          string
}

// Server serves the folder picker over SSH, one browser per session
type Server struct {
	cfg        Config
	lister     ports.DirectoryLister
	settings   *services.FolderSettingsService
	wishServer *ssh.Server
}

// NewServer creates the SSH server. settings may be nil, in which case
// sessions cannot pick a folder setting by key.
func NewServer(cfg Config, lister ports.DirectoryLister, settings *services.FolderSettingsService) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		lister:   lister,
		settings: settings,
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first), so
	// selectionMiddleware runs after the program has exited
	wishServer, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			selectionMiddleware(),
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the configured listen address
func (s *Server) Address() string {
	return net.JoinHostPort(s.cfg.Host, s.cfg.Port)
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting SSH server", "address", s.Address())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			return fmt.Errorf("SSH server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logging.Logger.Info("Shutting down SSH server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.wishServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("failed to shutdown SSH server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
