package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/filearr/filearr/internal/config"
	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version        kong.VersionFlag `help:"Show version information"`
	Debug          bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile      string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles    int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	RequestTimeout int              `help:"Listing request timeout in seconds (0 = none)" default:"0"`
	ServerURL      string           `help:"Base URL of the filearr listing service" env:"FILEARR_SERVER_URL" default:"http://localhost:8000"`

	Pick     PickCmd     `cmd:"" help:"Pick a folder and print its path (default)" default:"withargs"`
	Ls       LsCmd       `cmd:"ls" help:"List the subdirectories of a path"`
	Settings SettingsCmd `cmd:"settings" help:"Manage folder settings and settings.json"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the folder picker over SSH"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	stdout    io.Writer        `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetOutput redirects command output (stdout by default)
func (c *CLI) SetOutput(w io.Writer) {
	c.stdout = w
}

func (c *CLI) out() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}

// applySettings fills values still at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("FILEARR_MAX_LOG_FILES"); !hasEnv && c.settings.MaxLogFiles != nil {
			c.MaxLogFiles = *c.settings.MaxLogFiles
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("FILEARR_DEBUG"); !hasEnv && c.settings.Debug != nil && *c.settings.Debug {
			c.Debug = true
		}
	}

	if c.ServerURL == config.DefaultServerURL {
		if _, hasEnv := os.LookupEnv("FILEARR_SERVER_URL"); !hasEnv && c.settings.ServerURL != "" {
			c.ServerURL = c.settings.ServerURL
		}
	}

	if c.RequestTimeout == 0 && c.settings.RequestTimeoutSeconds != nil {
		c.RequestTimeout = *c.settings.RequestTimeoutSeconds
	}
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(ctx *kong.Context) error {
	c.applySettings()

	logFilePath, err := logging.Initialize(logging.Options{
		Command:  commandName(ctx.Command()),
		Debug:    c.Debug,
		Dir:      config.GetLogDir(),
		File:     c.DebugFile,
		MaxFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// Child processes (e.g. SSH sessions started by a parent filearr) share the log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("FILEARR_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("FILEARR_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("FILEARR_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM logs go to the right place
	container, err := NewContainer(c.ServerURL, time.Duration(c.RequestTimeout)*time.Second)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// commandName turns kong's "settings keys set <key> <value>" into "settings-keys-set"
func commandName(command string) string {
	var words []string
	for _, w := range strings.Fields(command) {
		if !strings.HasPrefix(w, "<") {
			words = append(words, w)
		}
	}
	return strings.Join(words, "-")
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// keyMap validates custom key bindings from settings.json and builds the key map
func (c *CLI) keyMap() (ui.KeyMap, error) {
	var keysConfig config.KeyBindingsConfig
	if c.settings != nil && c.settings.Keys != nil {
		if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return ui.KeyMap{}, fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = c.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}
	return ui.NewKeyMap(keysConfig), nil
}

// startPath returns the configured start path, or "" for the default root
func (c *CLI) startPath() string {
	if c.settings != nil {
		return c.settings.StartPath
	}
	return ""
}
