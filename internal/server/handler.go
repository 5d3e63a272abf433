package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/services"
	"github.com/filearr/filearr/internal/ui"
)

// selectionKey is the ssh.Context key holding the path picked in a session
type selectionKey struct{}

// sessionModel wraps the picker dialog to log the session lifecycle
type sessionModel struct {
	*ui.Dialog
	content   *ui.FolderBrowser
	ended     bool
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := s.Dialog.Update(msg)
	if d, ok := updated.(*ui.Dialog); ok {
		s.Dialog = d
	}

	if s.content.Completed && !s.ended {
		s.ended = true
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"cancelled", s.content.Result().Cancelled,
			"duration", time.Since(s.startTime).String())
	}
	return s, cmd
}

// teaHandler creates a folder browser for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"command", sess.Command(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	ctx := sess.Context()
	record := func(selectedPath string) {
		ctx.SetValue(selectionKey{}, selectedPath)
	}
	startPath, onSelect, title := s.sessionTarget(ctx, sess.Command(), record)

	browser := services.NewDirectoryBrowser(s.lister)
	content := ui.NewFolderBrowser(ctx, browser, startPath, onSelect, s.cfg.Keys)

	// A dropped connection abandons the picker without selecting
	context.AfterFunc(ctx, browser.Close)

	return &sessionModel{
		Dialog:    ui.NewDialog(title, content, s.cfg.DevMode),
		content:   content,
		sessionID: sessionID,
		startTime: time.Now(),
	}, []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionTarget decides where a session starts and what a confirmed pick does.
// "ssh host KEY" edits the folder setting KEY, "ssh host /some/path" starts there,
// and a bare "ssh host" starts at the configured start path.
func (s *Server) sessionTarget(ctx context.Context, args []string, record func(string)) (string, func(string), string) {
	if len(args) == 0 {
		return s.cfg.StartPath, record, "Select Folder"
	}

	arg := args[0]
	if s.settings == nil || !domain.IsKnownSetting(arg) {
		return arg, record, "Select Folder"
	}

	startPath, err := s.settings.PickStartPath(ctx, arg)
	if err != nil {
		logging.Logger.Warn("Failed to resolve setting start path", "key", arg, "error", err)
		startPath = domain.DefaultRootPath
	}

	store := s.settings.StoreSelection(ctx, arg, func(selectedPath string, err error) {
		if err != nil {
			logging.Logger.Error("Failed to store picked folder", "key", arg, "path", selectedPath, "error", err)
		}
	})

	return startPath, func(selectedPath string) {
		store(selectedPath)
		record(selectedPath)
	}, "Select " + arg
}

// selectionMiddleware prints the picked path once the program has exited
func selectionMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			selected, ok := sess.Context().Value(selectionKey{}).(string)
			if !ok {
				wish.Errorln(sess, domain.ErrSelectionCancelled.Error())
				sess.Exit(1)
				return
			}

			wish.Println(sess, selected)
			next(sess)
		}
	}
}
