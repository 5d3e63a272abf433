package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filearr/filearr/internal/config"
	"github.com/filearr/filearr/internal/domain"
	portsmocks "github.com/filearr/filearr/internal/ports/mocks"
	"github.com/filearr/filearr/internal/services"
)

func strPtr(s string) *string { return &s }

// runCmd executes cmd and flattens batches into the produced messages
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// deliverListings runs cmd and feeds any listing results back into fb
func deliverListings(fb *FolderBrowser, cmd tea.Cmd) {
	for _, msg := range runCmd(cmd) {
		if loaded, ok := msg.(listingLoadedMsg); ok {
			fb.Update(loaded)
		}
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestBrowser(t *testing.T, startPath string, onSelect func(string)) (*FolderBrowser, *portsmocks.MockDirectoryLister) {
	t.Helper()
	lister := portsmocks.NewMockDirectoryLister(t)
	fb := NewFolderBrowser(context.Background(), services.NewDirectoryBrowser(lister), startPath, onSelect, NewKeyMap(nil))
	return fb, lister
}

func mediaListing() *domain.DirectoryListing {
	return &domain.DirectoryListing{Directories: []string{"Movies", "TV"}, ParentPath: strPtr("/")}
}

func TestFolderBrowser_InitLoadsStartPath(t *testing.T) {
	fb, lister := newTestBrowser(t, "/media", nil)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)

	cmd := fb.Init()
	assert.Contains(t, fb.View(), domain.LoadingText)

	deliverListings(fb, cmd)

	view := fb.View()
	assert.Contains(t, view, "Current Path: /media")
	assert.Contains(t, view, domain.ParentEntryText)
	assert.Contains(t, view, "Movies")
	assert.Contains(t, view, "TV")
	assert.NotContains(t, view, domain.LoadingText)
}

func TestFolderBrowser_OpenEntryAndSelect(t *testing.T) {
	var selected []string
	fb, lister := newTestBrowser(t, "/media", func(p string) { selected = append(selected, p) })
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	lister.EXPECT().Browse(mock.Anything, "/media/TV").
		Return(&domain.DirectoryListing{Directories: []string{}, ParentPath: strPtr("/media")}, nil)

	deliverListings(fb, fb.Init())

	// parent, Movies, TV
	fb.Update(tea.KeyMsg{Type: tea.KeyDown})
	fb.Update(keyRunes("j"))
	_, cmd := fb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	deliverListings(fb, cmd)

	assert.Contains(t, fb.View(), "Current Path: /media/TV")
	assert.Contains(t, fb.View(), domain.NoSubdirectoryText)

	_, cmd = fb.Update(keyRunes("s"))

	assert.True(t, isQuit(cmd))
	assert.True(t, fb.Completed)
	assert.Equal(t, FolderBrowserResult{Path: "/media/TV"}, fb.Result())
	assert.Equal(t, []string{"/media/TV"}, selected)
}

func TestFolderBrowser_ParentKey(t *testing.T) {
	fb, lister := newTestBrowser(t, "/media", nil)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	lister.EXPECT().Browse(mock.Anything, "/").Return(&domain.DirectoryListing{Directories: []string{"media"}}, nil)

	deliverListings(fb, fb.Init())
	_, cmd := fb.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	deliverListings(fb, cmd)

	assert.Contains(t, fb.View(), "Current Path: /\n")
	assert.NotContains(t, fb.View(), domain.ParentEntryText)

	// No parent at the root
	_, cmd = fb.Update(keyRunes("h"))
	assert.Nil(t, cmd)
}

func TestFolderBrowser_CancelNeverSelects(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"q", keyRunes("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			fb, lister := newTestBrowser(t, "/media", func(string) { called = true })
			lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)

			deliverListings(fb, fb.Init())
			_, cmd := fb.Update(tt.msg)

			assert.True(t, isQuit(cmd))
			assert.True(t, fb.Result().Cancelled)
			assert.False(t, called)
		})
	}
}

func TestFolderBrowser_ErrorRows(t *testing.T) {
	t.Run("server reported", func(t *testing.T) {
		fb, lister := newTestBrowser(t, "/root", nil)
		lister.EXPECT().Browse(mock.Anything, "/root").Return(&domain.DirectoryListing{Error: "permission denied"}, nil)

		deliverListings(fb, fb.Init())

		assert.Contains(t, fb.View(), "Error: permission denied")
		assert.Contains(t, fb.View(), "Current Path: /root")
	})

	t.Run("transport", func(t *testing.T) {
		fb, lister := newTestBrowser(t, "/media", nil)
		lister.EXPECT().Browse(mock.Anything, "/media").Return(nil, errors.New("connection refused"))

		deliverListings(fb, fb.Init())

		assert.Contains(t, fb.View(), "Error loading directory: connection refused")
	})
}

func TestFolderBrowser_StaleListingIgnored(t *testing.T) {
	fb, lister := newTestBrowser(t, "/a", nil)
	lister.EXPECT().Browse(mock.Anything, "/b").Return(&domain.DirectoryListing{Directories: []string{"from-b"}}, nil)

	fb.Init() // the fetch for /a is never run
	_, cmd := fb.Update(goToPathMsg{path: "/b"})
	deliverListings(fb, cmd)

	lateA := services.NavigationResult{
		Listing: &domain.DirectoryListing{Directories: []string{"from-a"}},
		Request: services.NavigationRequest{Path: "/a", Seq: 1},
	}
	fb.Update(listingLoadedMsg{result: lateA})

	view := fb.View()
	assert.Contains(t, view, "Current Path: /b")
	assert.Contains(t, view, "from-b")
	assert.NotContains(t, view, "from-a")
}

func TestFolderBrowser_GoToKeyOpensForm(t *testing.T) {
	fb, lister := newTestBrowser(t, "/media", nil)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)

	deliverListings(fb, fb.Init())
	fb.Update(keyRunes("g"))
	require.NotNil(t, fb.gotoForm)

	// esc closes the form, not the browser
	_, cmd := fb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, fb.gotoForm)
	assert.False(t, isQuit(cmd))
	assert.False(t, fb.Completed)
}

func TestFolderBrowser_CursorWindowing(t *testing.T) {
	dirs := make([]string, 30)
	for i := range dirs {
		dirs[i] = fmt.Sprintf("dir%02d", i)
	}
	fb, lister := newTestBrowser(t, "/big", nil)
	lister.EXPECT().Browse(mock.Anything, "/big").Return(&domain.DirectoryListing{Directories: dirs}, nil)

	deliverListings(fb, fb.Init())
	fb.Update(tea.WindowSizeMsg{Width: 80, Height: browserChromeHeight + 5})

	assert.Contains(t, fb.View(), "↓ 25 more")

	for range 10 {
		fb.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	assert.Equal(t, 10, fb.cursor)
	assert.Equal(t, 6, fb.offset)
	assert.Contains(t, fb.View(), "↑ 6 more")

	for range 100 {
		fb.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 29, fb.cursor)
}

func TestFolderBrowser_CustomKeys(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	keys := NewKeyMap(config.KeyBindingsConfig{"select": {"enter"}, "open": {"o"}})
	fb := NewFolderBrowser(context.Background(), services.NewDirectoryBrowser(lister), "/media", nil, keys)

	deliverListings(fb, fb.Init())
	_, cmd := fb.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, isQuit(cmd))
	assert.Equal(t, "/media", fb.Result().Path)
}

func TestFolderBrowser_HelpScreen(t *testing.T) {
	fb, lister := newTestBrowser(t, "/media", nil)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)

	deliverListings(fb, fb.Init())
	fb.Update(keyRunes("?"))
	require.NotNil(t, fb.help)

	view := fb.View()
	assert.Contains(t, view, "Navigation")
	assert.Contains(t, view, "select current folder")

	// s is swallowed by the help screen
	_, cmd := fb.Update(keyRunes("s"))
	assert.False(t, isQuit(cmd))
	assert.False(t, fb.Completed)

	fb.Update(keyRunes("q"))
	assert.Nil(t, fb.help)
	assert.False(t, fb.Completed)
	assert.Contains(t, fb.View(), "Movies")
}

func TestFolderBrowser_RefreshReloadsCurrentPath(t *testing.T) {
	fb, lister := newTestBrowser(t, "/media", nil)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil).Once()
	lister.EXPECT().Browse(mock.Anything, "/media").
		Return(&domain.DirectoryListing{Directories: []string{"Movies", "Music", "TV"}, ParentPath: strPtr("/")}, nil).Once()

	deliverListings(fb, fb.Init())
	assert.NotContains(t, fb.View(), "Music")

	_, cmd := fb.Update(keyRunes("r"))
	deliverListings(fb, cmd)

	assert.Contains(t, fb.View(), "Music")
	assert.Contains(t, fb.View(), "Current Path: /media")
}
