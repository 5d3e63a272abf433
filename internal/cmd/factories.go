package cmd

import (
	"time"

	"github.com/filearr/filearr/internal/adapters/browseapi"
	adapterstorage "github.com/filearr/filearr/internal/adapters/storage"
	"github.com/filearr/filearr/internal/config"
	"github.com/filearr/filearr/internal/ports"
	"github.com/filearr/filearr/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Lister ports.DirectoryLister

	dbPath          string
	settingsRepo    ports.FolderSettingRepository
	settingsService *services.FolderSettingsService
}

// NewContainer creates a new Container. The settings database is opened on first use,
// so commands that only browse never touch it.
func NewContainer(serverURL string, timeout time.Duration) (*Container, error) {
	client, err := browseapi.NewClient(serverURL, timeout)
	if err != nil {
		return nil, err
	}

	return &Container{
		Lister: client,
		dbPath: config.GetDBPath(),
	}, nil
}

// SettingsService returns the folder settings service, opening the database if needed
func (c *Container) SettingsService() (*services.FolderSettingsService, error) {
	if c.settingsService != nil {
		return c.settingsService, nil
	}

	repo, err := adapterstorage.NewSQLiteRepository(c.dbPath)
	if err != nil {
		return nil, err
	}

	c.settingsRepo = repo
	c.settingsService = services.NewFolderSettingsService(repo)
	return c.settingsService, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.settingsRepo != nil {
		return c.settingsRepo.Close()
	}
	return nil
}
