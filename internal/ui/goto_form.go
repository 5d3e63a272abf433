package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// GoToForm asks for a path to jump to
type GoToForm struct {
	Completed bool
	cancelled bool
	form      *huh.Form
	path      string
}

// NewGoToForm creates a form prefilled with currentPath
func NewGoToForm(currentPath string) *GoToForm {
	gf := &GoToForm{path: currentPath}

	gf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Go to path").
				Description("Folder on the media server").
				Value(&gf.path).
				CharLimit(4096),
		),
	).WithShowHelp(false)

	return gf
}

func (gf *GoToForm) Init() tea.Cmd {
	return gf.form.Init()
}

func (gf *GoToForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			gf.cancelled = true
			gf.Completed = true
			return gf, nil
		}
	}

	form, cmd := gf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		gf.form = f
	}

	if gf.form.State == huh.StateCompleted {
		gf.Completed = true
		path := strings.TrimSpace(gf.path)
		if path == "" {
			gf.cancelled = true
			return gf, nil
		}
		return gf, func() tea.Msg { return goToPathMsg{path: path} }
	}

	return gf, cmd
}

func (gf *GoToForm) View() string {
	if gf.form != nil {
		return gf.form.View()
	}
	return ""
}

// Cancelled reports whether the form was dismissed without a path
func (gf *GoToForm) Cancelled() bool {
	return gf.cancelled
}
