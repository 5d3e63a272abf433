package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/filearr/filearr/internal/config"
	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/logging"
)

// SettingsCmd manages folder settings and settings.json
type SettingsCmd struct {
	Get  SettingsGetCmd  `cmd:"get" help:"Show the resolved value of a folder setting"`
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage key bindings"`
	List SettingsListCmd `cmd:"list" help:"List folder settings and where their values come from" default:"1"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options"`
	Pick SettingsPickCmd `cmd:"pick" help:"Pick a folder and store it as a folder setting"`
	Set  SettingsSetCmd  `cmd:"set" help:"Store a folder setting"`
}

// SettingsListCmd lists folder settings
type SettingsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsGetCmd prints one folder setting
type SettingsGetCmd struct {
	Key string `arg:"" help:"Setting key (e.g., MOVIES_DIR)"`
}

// SettingsSetCmd stores one folder setting
type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key (e.g., MOVIES_DIR)"`
	Value string `arg:"" help:"Folder path"`
}

// SettingsPickCmd opens the picker at the setting's current value and stores the selection
type SettingsPickCmd struct {
	Dev bool   `help:"Enable development mode (shows version info in dialogs)"`
	Key string `arg:"" help:"Setting key (e.g., MOVIES_DIR)"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type settingOutput struct {
	Key       string `json:"key"`
	Source    string `json:"source"`
	UpdatedAt string `json:"updated_at,omitempty"`
	Value     string `json:"value"`
}

// Run executes the list command
func (s *SettingsListCmd) Run(cli *CLI) error {
	service, err := cli.Container.SettingsService()
	if err != nil {
		return err
	}

	settings, err := service.List(context.Background())
	if err != nil {
		return err
	}

	if s.Format == "json" {
		output := make([]settingOutput, 0, len(settings))
		for _, setting := range settings {
			entry := settingOutput{Key: setting.Key, Source: string(setting.Source), Value: setting.Value}
			if !setting.UpdatedAt.IsZero() {
				entry.UpdatedAt = setting.UpdatedAt.Format(time.RFC3339)
			}
			output = append(output, entry)
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.out(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cli.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
	for _, setting := range settings {
		value := setting.Value
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", setting.Key, value, setting.Source)
	}
	return w.Flush()
}

// Run executes the get command
func (s *SettingsGetCmd) Run(cli *CLI) error {
	service, err := cli.Container.SettingsService()
	if err != nil {
		return err
	}

	setting, err := service.Get(context.Background(), s.Key)
	if err != nil {
		return err
	}
	if setting.Source == domain.SourceUnset {
		return fmt.Errorf("%w: %s", domain.ErrSettingNotFound, s.Key)
	}

	fmt.Fprintln(cli.out(), setting.Value)
	return nil
}

// Run executes the set command
func (s *SettingsSetCmd) Run(cli *CLI) error {
	service, err := cli.Container.SettingsService()
	if err != nil {
		return err
	}

	if err := service.Set(context.Background(), s.Key, s.Value); err != nil {
		return err
	}

	fmt.Fprintf(cli.out(), "Set %s to: %s\n", s.Key, s.Value)
	return nil
}

// Run executes the pick command
func (s *SettingsPickCmd) Run(cli *CLI) error {
	service, err := cli.Container.SettingsService()
	if err != nil {
		return err
	}

	ctx := context.Background()
	start, err := service.PickStartPath(ctx, s.Key)
	if err != nil {
		return err
	}

	var storeErr error
	onSelect := service.StoreSelection(ctx, s.Key, func(_ string, err error) {
		storeErr = err
	})

	selected, err := runPicker(cli, "Select "+s.Key, start, onSelect, s.Dev)
	if err != nil {
		return err
	}
	if storeErr != nil {
		return storeErr
	}

	fmt.Fprintf(cli.out(), "Set %s to: %s\n", s.Key, selected)
	return nil
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.out(), string(data))
		return nil
	}

	out := cli.out()
	if settingsFileExists() {
		fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	} else {
		fmt.Fprintf(out, "Settings file: %s (not created yet)\n\n", settingsFile)
	}
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure filearr.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")

	logging.Logger.Debug("Settings metadata shown", "settings_file", settingsFile)
	return nil
}

// settingsFileExists reports whether settings.json is present
func settingsFileExists() bool {
	_, err := os.Stat(config.GetSettingsPath())
	return err == nil
}
