package config

import (
	"os"
	"path/filepath"
)

// GetFilearrHome returns $FILEARR_HOME or ~/.filearr
func GetFilearrHome() string {
	filearrHome := os.Getenv("FILEARR_HOME")
	if filearrHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".filearr"
		}
		return filepath.Join(homeDir, ".filearr")
	}
	return ExpandPath(filearrHome)
}

// GetDBPath returns $FILEARR_HOME/filearr.db
func GetDBPath() string {
	return filepath.Join(GetFilearrHome(), "filearr.db")
}

// GetSettingsPath returns $FILEARR_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetFilearrHome(), "settings.json")
}

// GetLogDir returns $FILEARR_HOME/logs, where debug logs are rotated
func GetLogDir() string {
	return filepath.Join(GetFilearrHome(), "logs")
}

// GetSSHDir returns $FILEARR_HOME/ssh, where the SSH server keeps its host key
func GetSSHDir() string {
	return filepath.Join(GetFilearrHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
