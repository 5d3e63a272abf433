package storage

import "time"

// FolderSettingModel is the GORM model for the system_settings table
type FolderSettingModel struct {
	CreatedAt time.Time
	Key       string    `gorm:"primaryKey"`
	UpdatedAt time.Time `gorm:"index:idx_updated_at"`
	Value     string    `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (FolderSettingModel) TableName() string { return "system_settings" }
