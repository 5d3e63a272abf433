package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/theme"
)

// HelpScreen lists every folder browser key binding, grouped
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Navigation") + "\n")
	b.WriteString(renderBinding(keys.Up))
	b.WriteString(renderBinding(keys.Down))
	b.WriteString(renderBinding(keys.Open))
	b.WriteString(renderBinding(keys.Parent))
	b.WriteString(renderBinding(keys.GoTo))
	b.WriteString(renderBinding(keys.Refresh))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Selection") + "\n")
	b.WriteString(renderBinding(keys.Select))
	b.WriteString(renderBinding(keys.Cancel))
	b.WriteString(renderBinding(keys.ForceQuit))
	b.WriteString(renderBinding(keys.Help))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Rows (read-only)") + "\n")
	b.WriteString(renderShortcut(domain.ParentEntryText, "parent folder, present unless at the root"))
	b.WriteString(renderShortcut(domain.LoadingText, "listing in flight"))
	b.WriteString(renderShortcut(domain.NoSubdirectoryText, "folder has no subfolders"))
	b.WriteString(renderShortcut("Error: ...", "listing failed; the path can still be selected"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys(h.keys.Up.Keys()...)
	h.viewport.KeyMap.Down.SetKeys(h.keys.Down.Keys()...)
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.SetSize(msg.Width, msg.Height)
		return h, nil

	case tea.KeyMsg:
		if key.Matches(msg, h.keys.Cancel, h.keys.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// SetSize fits the viewport below the dialog header
func (h *HelpScreen) SetSize(width, height int) {
	h.viewport.Width = width
	h.viewport.Height = max(height-browserChromeHeight, 5)
	h.viewport.SetContent(h.content)
	h.initialized = true
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return h.content
	}

	footer := theme.HelpStyle.Render(h.keys.Cancel.Help().Key + " or " + h.keys.Help.Help().Key + " to close • scroll with " + h.keys.Up.Help().Key + "/" + h.keys.Down.Help().Key)
	return h.viewport.View() + "\n" + footer
}
