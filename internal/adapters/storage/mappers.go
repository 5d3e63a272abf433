package storage

import (
	"github.com/filearr/filearr/internal/domain"
)

// folderSettingModelToDomain converts a FolderSettingModel (GORM) to domain.FolderSetting
func folderSettingModelToDomain(m FolderSettingModel) domain.FolderSetting {
	return domain.FolderSetting{
		Key:       m.Key,
		Source:    domain.SourceDatabase,
		UpdatedAt: m.UpdatedAt,
		Value:     m.Value,
	}
}
