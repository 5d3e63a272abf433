package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/filearr/filearr/internal/config"
	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/server"
)

// ServeCmd starts the SSH picker server
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file listing the allowed client keys" default:"~/.ssh/authorized_keys"`
	Dev            bool   `help:"Enable development mode (shows version info in dialogs)"`
	Host           string `help:"Host to bind to" default:"localhost"`
	Port           string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	keys, err := cli.keyMap()
	if err != nil {
		return err
	}

	settingsService, err := cli.Container.SettingsService()
	if err != nil {
		logging.Logger.Warn("Folder settings unavailable over SSH", "error", err)
		settingsService = nil
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: config.ExpandPath(s.AuthorizedKeys),
		DevMode:            s.Dev,
		Host:               s.Host,
		HostKeyPath:        filepath.Join(config.GetSSHDir(), "id_ed25519"),
		Keys:               keys,
		Port:               s.Port,
		StartPath:          cli.startPath(),
	}, cli.Container.Lister, settingsService)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	fmt.Fprintf(os.Stderr, "SSH server listening on %s\n", srv.Address())
	return srv.Start(context.Background())
}
