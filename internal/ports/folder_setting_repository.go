package ports

import (
	"context"

	"github.com/filearr/filearr/internal/domain"
)

// FolderSettingReader reads stored folder settings
type FolderSettingReader interface {
	Get(ctx context.Context, key string) (*domain.FolderSetting, error)
	List(ctx context.Context) ([]domain.FolderSetting, error)
}

// FolderSettingWriter stores folder settings
type FolderSettingWriter interface {
	// Set upserts key and returns the previous value ("" if there was none)
	Set(ctx context.Context, key, value string) (string, error)
}

// FolderSettingRepository is the composite interface
type FolderSettingRepository interface {
	FolderSettingReader
	FolderSettingWriter
	Close() error
}
