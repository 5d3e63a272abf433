package domain

import (
	"slices"
	"time"
)

// Folder setting keys understood by filearr
const (
	SettingInputDir     = "INPUT_DIR"
	SettingMalayalamDir = "MALAYALAM_DIR"
	SettingMoviesDir    = "MOVIES_DIR"
	SettingOutputDir    = "OUTPUT_DIR"
	SettingRejectedDir  = "REJECTED_DIR"
	SettingTrashDir     = "TRASH_DIR"
)

// FolderSettingKeys lists the known keys in display order
var FolderSettingKeys = []string{
	SettingInputDir,
	SettingOutputDir,
	SettingMoviesDir,
	SettingMalayalamDir,
	SettingRejectedDir,
	SettingTrashDir,
}

// SettingSource tells where a resolved setting value came from
type SettingSource string

const (
	SourceDatabase    SettingSource = "database"
	SourceEnvironment SettingSource = "environment"
	SourceUnset       SettingSource = "unset"
)

// FolderSetting is a named directory configured through the picker
type FolderSetting struct {
	Key       string
	Source    SettingSource
	UpdatedAt time.Time
	Value     string
}

// IsKnownSetting reports whether key is one of FolderSettingKeys
func IsKnownSetting(key string) bool {
	return slices.Contains(FolderSettingKeys, key)
}
