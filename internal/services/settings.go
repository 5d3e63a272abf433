package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/ports"
)

// FolderSettingsService resolves and stores the named folders filearr works with
type FolderSettingsService struct {
	repo ports.FolderSettingRepository
}

// NewFolderSettingsService creates a new FolderSettingsService
func NewFolderSettingsService(repo ports.FolderSettingRepository) *FolderSettingsService {
	return &FolderSettingsService{
		repo: repo,
	}
}

// Get resolves key from the database, then from the environment variable of the same name.
// A stored empty value counts as unset.
func (s *FolderSettingsService) Get(ctx context.Context, key string) (domain.FolderSetting, error) {
	if !domain.IsKnownSetting(key) {
		return domain.FolderSetting{}, fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	stored, err := s.repo.Get(ctx, key)
	if err == nil {
		if stored.Value != "" {
			return *stored, nil
		}
		return fromEnvironment(key), nil
	}
	if !errors.Is(err, domain.ErrSettingNotFound) {
		logging.Logger.Error("Failed to read setting", "key", key, "error", err)
		return domain.FolderSetting{}, fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	return fromEnvironment(key), nil
}

// List returns every known setting in display order, resolved like Get
func (s *FolderSettingsService) List(ctx context.Context) ([]domain.FolderSetting, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	byKey := make(map[string]domain.FolderSetting, len(stored))
	for _, setting := range stored {
		if setting.Value != "" {
			byKey[setting.Key] = setting
		}
	}

	settings := make([]domain.FolderSetting, 0, len(domain.FolderSettingKeys))
	for _, key := range domain.FolderSettingKeys {
		if setting, ok := byKey[key]; ok {
			settings = append(settings, setting)
			continue
		}
		settings = append(settings, fromEnvironment(key))
	}
	return settings, nil
}

// Set stores value under key
func (s *FolderSettingsService) Set(ctx context.Context, key, value string) error {
	if !domain.IsKnownSetting(key) {
		return fmt.Errorf("%w: %s", domain.ErrUnknownSetting, key)
	}

	previous, err := s.repo.Set(ctx, key, value)
	if err != nil {
		logging.Logger.Error("Failed to store setting", "key", key, "error", err)
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}

	logging.Logger.Info("Setting updated", "key", key, "old", previous, "new", value)
	return nil
}

// PickStartPath returns where the picker opens for key: its current value, or the default root
func (s *FolderSettingsService) PickStartPath(ctx context.Context, key string) (string, error) {
	setting, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if setting.Value == "" {
		return domain.DefaultRootPath, nil
	}
	return setting.Value, nil
}

// StoreSelection returns a picker callback that stores the selected path under key.
// done, when non-nil, receives the path and the outcome of the store.
func (s *FolderSettingsService) StoreSelection(ctx context.Context, key string, done func(selectedPath string, err error)) func(selectedPath string) {
	return func(selectedPath string) {
		err := s.Set(ctx, key, selectedPath)
		if done != nil {
			done(selectedPath, err)
		}
	}
}

func fromEnvironment(key string) domain.FolderSetting {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return domain.FolderSetting{Key: key, Source: domain.SourceEnvironment, Value: value}
	}
	return domain.FolderSetting{Key: key, Source: domain.SourceUnset}
}
