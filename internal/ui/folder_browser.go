package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/services"
	"github.com/filearr/filearr/internal/theme"
)

// Rows taken by the header, path label and help footer
const browserChromeHeight = 12

// FolderBrowserResult is the outcome of a folder browser session
type FolderBrowserResult struct {
	Cancelled bool
	Path      string
}

// FolderBrowser is the Bubble Tea dialog over a DirectoryBrowser
type FolderBrowser struct {
	Completed bool
	browser   *services.DirectoryBrowser
	ctx       context.Context
	cursor    int
	gotoForm  *GoToForm
	height    int
	help      *HelpScreen
	keys      KeyMap
	offset    int
	onSelect  func(selectedPath string)
	result    FolderBrowserResult
	spinner   spinner.Model
	startPath string
	width     int
}

// NewFolderBrowser creates the dialog. The browser is opened at startPath on Init,
// and onSelect is handed to it unchanged.
func NewFolderBrowser(
	ctx context.Context,
	browser *services.DirectoryBrowser,
	startPath string,
	onSelect func(selectedPath string),
	keys KeyMap,
) *FolderBrowser {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	return &FolderBrowser{
		browser:   browser,
		ctx:       ctx,
		keys:      keys,
		onSelect:  onSelect,
		spinner:   s,
		startPath: startPath,
	}
}

func (fb *FolderBrowser) Init() tea.Cmd {
	req := fb.browser.Open(fb.startPath, fb.onSelect)
	return tea.Batch(fb.fetch(req), fb.spinner.Tick)
}

// fetch runs the listing call off the update loop
func (fb *FolderBrowser) fetch(req services.NavigationRequest) tea.Cmd {
	browser, ctx := fb.browser, fb.ctx
	return func() tea.Msg {
		return listingLoadedMsg{result: browser.Fetch(ctx, req)}
	}
}

func (fb *FolderBrowser) startNavigation(req services.NavigationRequest) tea.Cmd {
	fb.cursor = 0
	fb.offset = 0
	return fb.fetch(req)
}

func (fb *FolderBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fb.width = msg.Width
		fb.height = msg.Height
		if fb.help != nil {
			fb.help.SetSize(msg.Width, msg.Height)
		}
		fb.ensureCursorVisible()
		return fb, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		fb.spinner, cmd = fb.spinner.Update(msg)
		return fb, cmd

	case listingLoadedMsg:
		if fb.browser.Apply(msg.result) {
			fb.cursor = 0
			fb.offset = 0
		}
		return fb, nil

	case goToPathMsg:
		fb.gotoForm = nil
		logging.Logger.Debug("Going to typed path", "path", msg.path)
		return fb, fb.startNavigation(fb.browser.Navigate(msg.path))
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && key.Matches(keyMsg, fb.keys.ForceQuit) {
		return fb, fb.cancel()
	}

	if fb.help != nil {
		_, cmd := fb.help.Update(msg)
		if fb.help.Completed {
			fb.help = nil
		}
		return fb, cmd
	}

	if fb.gotoForm != nil {
		_, cmd := fb.gotoForm.Update(msg)
		if fb.gotoForm.Completed {
			fb.gotoForm = nil
		}
		return fb, cmd
	}

	if isKey {
		return fb, fb.handleKey(keyMsg)
	}
	return fb, nil
}

func (fb *FolderBrowser) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, fb.keys.Cancel):
		return fb.cancel()

	case key.Matches(msg, fb.keys.Up):
		if fb.cursor > 0 {
			fb.cursor--
		}
		fb.ensureCursorVisible()

	case key.Matches(msg, fb.keys.Down):
		fb.cursor++
		fb.ensureCursorVisible()

	case key.Matches(msg, fb.keys.Open):
		if req, ok := fb.browser.Select(fb.cursor); ok {
			return fb.startNavigation(req)
		}

	case key.Matches(msg, fb.keys.Parent):
		if req, ok := fb.browser.NavigateUp(); ok {
			return fb.startNavigation(req)
		}

	case key.Matches(msg, fb.keys.Refresh):
		return fb.startNavigation(fb.browser.Navigate(fb.browser.CurrentPath()))

	case key.Matches(msg, fb.keys.GoTo):
		fb.gotoForm = NewGoToForm(fb.browser.CurrentPath())
		return fb.gotoForm.Init()

	case key.Matches(msg, fb.keys.Help):
		fb.help = NewHelpScreen(fb.keys)
		if fb.height > 0 {
			fb.help.SetSize(fb.width, fb.height)
		}
		return fb.help.Init()

	case key.Matches(msg, fb.keys.Select):
		fb.result.Path = fb.browser.ConfirmSelection()
		fb.Completed = true
		return tea.Quit
	}

	return nil
}

func (fb *FolderBrowser) cancel() tea.Cmd {
	fb.browser.Close()
	fb.result.Cancelled = true
	fb.Completed = true
	return tea.Quit
}

// visibleRows is how many entries fit on screen; all of them before the first resize
func (fb *FolderBrowser) visibleRows(total int) int {
	if fb.height == 0 {
		return total
	}
	return max(fb.height-browserChromeHeight, 3)
}

func (fb *FolderBrowser) ensureCursorVisible() {
	total := len(fb.browser.Entries())
	if fb.cursor >= total {
		fb.cursor = total - 1
	}
	if fb.cursor < 0 {
		fb.cursor = 0
	}

	rows := fb.visibleRows(total)
	if fb.cursor < fb.offset {
		fb.offset = fb.cursor
	}
	if fb.cursor >= fb.offset+rows {
		fb.offset = fb.cursor - rows + 1
	}
}

func (fb *FolderBrowser) View() string {
	snap := fb.browser.Snapshot()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.CurrentPathLabelStyle.Render("Current Path: "))
	b.WriteString(theme.CurrentPathStyle.Render(domain.SanitizeLabel(snap.CurrentPath)))
	b.WriteString("\n\n")

	if fb.help != nil {
		b.WriteString(fb.help.View())
		return b.String()
	}
	if fb.gotoForm != nil {
		b.WriteString(fb.gotoForm.View())
		return b.String()
	}

	total := len(snap.Entries)
	end := min(fb.offset+fb.visibleRows(total), total)

	if fb.offset > 0 {
		b.WriteString(theme.ScrollHintStyle.Render(fmt.Sprintf("  ↑ %d more", fb.offset)))
		b.WriteString("\n")
	}
	for i := fb.offset; i < end; i++ {
		b.WriteString(fb.renderEntry(snap.Entries[i], i == fb.cursor))
		b.WriteString("\n")
	}
	if end < total {
		b.WriteString(theme.ScrollHintStyle.Render(fmt.Sprintf("  ↓ %d more", total-end)))
		b.WriteString("\n")
	}

	b.WriteString(fb.renderHelp())
	return b.String()
}

func (fb *FolderBrowser) renderEntry(entry domain.Entry, selected bool) string {
	prefix := "  "
	if selected {
		prefix = theme.CursorStyle.Render("> ")
	}

	var line string
	switch entry.Kind {
	case domain.EntryLoading:
		line = fb.spinner.View() + " " + theme.PlaceholderStyle.Render(entry.Label)
	case domain.EntryEmpty:
		line = theme.PlaceholderStyle.Render(entry.Label)
	case domain.EntryError:
		width := fb.width - 4
		if fb.width == 0 {
			width = 80
		}
		line = theme.EntryErrorStyle.Render(formatErrorForDisplay(entry.Label, width))
	case domain.EntryParent:
		line = theme.ParentStyle.Render(entry.Label)
	default:
		line = theme.DirectoryStyle.Render(entry.Label)
	}

	if selected && entry.Navigable() {
		line = theme.SelectedRowStyle.Render(line)
	}
	return prefix + line
}

func (fb *FolderBrowser) renderHelp() string {
	var parts []string
	for _, binding := range fb.keys.ShortHelp() {
		help := binding.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(help.Key)+" "+theme.HelpLabelStyle.Render(help.Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, "  •  "))
}

// Result returns the outcome once Completed is set
func (fb *FolderBrowser) Result() FolderBrowserResult {
	return fb.result
}
