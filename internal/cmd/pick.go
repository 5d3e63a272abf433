package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/services"
	"github.com/filearr/filearr/internal/ui"
)

// PickCmd opens the folder browser and prints the selected path
type PickCmd struct {
	Dev   bool   `help:"Enable development mode (shows version info in dialogs)"`
	Start string `arg:"" optional:"" help:"Folder to start in (defaults to start_path from settings.json, then /media)"`
}

// Run executes the pick command
func (p *PickCmd) Run(cli *CLI) error {
	start := p.Start
	if start == "" {
		start = cli.startPath()
	}

	selected, err := runPicker(cli, "Select Folder", start, nil, p.Dev)
	if err != nil {
		return err
	}

	fmt.Fprintln(cli.out(), selected)
	return nil
}

// runPicker runs the folder browser on stderr, keeping stdout for the result
func runPicker(cli *CLI, title, startPath string, onSelect func(string), dev bool) (string, error) {
	keys, err := cli.keyMap()
	if err != nil {
		return "", err
	}

	lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(os.Stderr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	browser := services.NewDirectoryBrowser(cli.Container.Lister)
	content := ui.NewFolderBrowser(ctx, browser, startPath, onSelect, keys)

	logging.Logger.Info("Starting folder browser", "start_path", startPath, "title", title)
	program := tea.NewProgram(
		ui.NewDialog(title, content, dev),
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return "", fmt.Errorf("error running program: %w", err)
	}

	result := content.Result()
	if !content.Completed || result.Cancelled {
		logging.Logger.Info("Folder selection cancelled")
		return "", domain.ErrSelectionCancelled
	}

	return result.Path, nil
}
