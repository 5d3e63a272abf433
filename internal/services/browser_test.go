package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filearr/filearr/internal/domain"
	portsmocks "github.com/filearr/filearr/internal/ports/mocks"
)

func strPtr(s string) *string { return &s }

func mediaListing() *domain.DirectoryListing {
	return &domain.DirectoryListing{
		CurrentPath: "/media",
		Directories: []string{"Movies", "TV"},
		ParentPath:  strPtr("/"),
	}
}

func labels(entries []domain.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Label)
	}
	return out
}

func TestDirectoryBrowser_InitialState(t *testing.T) {
	b := NewDirectoryBrowser(portsmocks.NewMockDirectoryLister(t))

	assert.Equal(t, domain.BrowserClosed, b.State())
	assert.False(t, b.IsVisible())
	assert.Equal(t, domain.DefaultRootPath, b.CurrentPath())
	assert.Empty(t, b.Entries())
}

func TestDirectoryBrowser_OpenDefaultsToRoot(t *testing.T) {
	b := NewDirectoryBrowser(portsmocks.NewMockDirectoryLister(t))

	req := b.Open("", nil)

	assert.Equal(t, domain.DefaultRootPath, req.Path)
	assert.Equal(t, domain.BrowserLoading, b.State())
	assert.True(t, b.IsVisible())
	assert.Equal(t, domain.LoadingEntries(), b.Entries())
}

func TestDirectoryBrowser_RendersParentThenDirectories(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	b := NewDirectoryBrowser(lister)

	require.True(t, b.Load(context.Background(), b.Open("/media", nil)))

	entries := b.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, domain.EntryParent, entries[0].Kind)
	assert.Equal(t, "/", entries[0].Path)
	assert.Equal(t, []string{domain.ParentEntryText, "Movies", "TV"}, labels(entries))
	assert.Equal(t, "/media/Movies", entries[1].Path)
	assert.Equal(t, "/media/TV", entries[2].Path)
	assert.Equal(t, domain.BrowserListed, b.State())
	assert.Equal(t, "/media", b.CurrentPath())
}

func TestDirectoryBrowser_NoParentEntry(t *testing.T) {
	tests := []struct {
		name   string
		parent *string
	}{
		{"parent equals requested path", strPtr("/media")},
		{"parent absent", nil},
		{"parent empty", strPtr("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := portsmocks.NewMockDirectoryLister(t)
			lister.EXPECT().Browse(mock.Anything, "/media").
				Return(&domain.DirectoryListing{Directories: []string{"Movies"}, ParentPath: tt.parent}, nil)
			b := NewDirectoryBrowser(lister)

			b.Load(context.Background(), b.Open("/media", nil))

			entries := b.Entries()
			require.Len(t, entries, 1)
			assert.Equal(t, domain.EntryDirectory, entries[0].Kind)
		})
	}
}

func TestDirectoryBrowser_EmptyDirectory(t *testing.T) {
	t.Run("without parent", func(t *testing.T) {
		lister := portsmocks.NewMockDirectoryLister(t)
		lister.EXPECT().Browse(mock.Anything, "/").Return(&domain.DirectoryListing{Directories: []string{}}, nil)
		b := NewDirectoryBrowser(lister)

		b.Load(context.Background(), b.Open("/", nil))

		assert.Equal(t, []string{domain.NoSubdirectoryText}, labels(b.Entries()))
	})

	t.Run("with parent", func(t *testing.T) {
		lister := portsmocks.NewMockDirectoryLister(t)
		lister.EXPECT().Browse(mock.Anything, "/media/empty").
			Return(&domain.DirectoryListing{Directories: []string{}, ParentPath: strPtr("/media")}, nil)
		b := NewDirectoryBrowser(lister)

		b.Load(context.Background(), b.Open("/media/empty", nil))

		assert.Equal(t, []string{domain.ParentEntryText, domain.NoSubdirectoryText}, labels(b.Entries()))
	})
}

func TestDirectoryBrowser_ServerReportedError(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/root").
		Return(&domain.DirectoryListing{Error: "permission denied", Directories: []string{"x"}}, nil)
	b := NewDirectoryBrowser(lister)

	b.Load(context.Background(), b.Open("/root", nil))

	entries := b.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryError, entries[0].Kind)
	assert.Contains(t, entries[0].Label, "permission denied")
	assert.Equal(t, domain.BrowserErrorShown, b.State())
	assert.Equal(t, "/root", b.CurrentPath(), "current path stays the attempted path")
}

func TestDirectoryBrowser_TransportError(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(nil, errors.New("connection refused"))
	b := NewDirectoryBrowser(lister)

	b.Load(context.Background(), b.Open("/media", nil))

	entries := b.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Error loading directory: connection refused", entries[0].Label)
	assert.Equal(t, domain.BrowserErrorShown, b.State())
	assert.Equal(t, "/media", b.CurrentPath())
}

func TestDirectoryBrowser_ErrorShownAcceptsNavigation(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/root").Return(&domain.DirectoryListing{Error: "denied"}, nil)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	b := NewDirectoryBrowser(lister)

	b.Load(context.Background(), b.Open("/root", nil))
	require.Equal(t, domain.BrowserErrorShown, b.State())

	b.Load(context.Background(), b.Navigate("/media"))

	assert.Equal(t, domain.BrowserListed, b.State())
	assert.Len(t, b.Entries(), 3)
}

func TestDirectoryBrowser_ConfirmInvokesCallbackOnce(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	lister.EXPECT().Browse(mock.Anything, "/media/Movies").Return(&domain.DirectoryListing{ParentPath: strPtr("/media")}, nil)
	b := NewDirectoryBrowser(lister)

	var calls []string
	b.Load(context.Background(), b.Open("/media", func(p string) { calls = append(calls, p) }))

	req, ok := b.Select(1)
	require.True(t, ok)
	b.Load(context.Background(), req)

	shown := b.CurrentPath()
	assert.Equal(t, "/media/Movies", b.ConfirmSelection())
	b.ConfirmSelection()

	assert.Equal(t, []string{shown}, calls)
	assert.False(t, b.IsVisible())
	assert.Equal(t, domain.BrowserClosed, b.State())
}

func TestDirectoryBrowser_ConfirmWhileLoadingUsesLabelPath(t *testing.T) {
	b := NewDirectoryBrowser(portsmocks.NewMockDirectoryLister(t))

	var got string
	b.Open("/media", func(p string) { got = p })
	b.Navigate("/media/TV")

	b.ConfirmSelection()

	assert.Equal(t, "/media/TV", got)
}

func TestDirectoryBrowser_CancelNeverInvokesCallback(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	b := NewDirectoryBrowser(lister)

	called := false
	b.Load(context.Background(), b.Open("/media", func(string) { called = true }))
	b.Close()

	assert.False(t, called)
	assert.False(t, b.IsVisible())
	assert.Equal(t, "/media", b.CurrentPath(), "close keeps the current path")

	// A later session gets a fresh callback; the cancelled one stays uncalled
	var second string
	b.Open("/", func(p string) { second = p })
	b.ConfirmSelection()

	assert.False(t, called)
	assert.Equal(t, "/", second)
}

func TestDirectoryBrowser_StaleResponseIsDiscarded(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/b").Return(&domain.DirectoryListing{Directories: []string{"from-b"}}, nil)
	b := NewDirectoryBrowser(lister)

	reqA := b.Open("/a", nil)
	reqB := b.Navigate("/b")

	// B resolves first
	require.True(t, b.Apply(b.Fetch(context.Background(), reqB)))

	// A's slower response arrives afterwards
	lateA := NavigationResult{
		Listing: &domain.DirectoryListing{Directories: []string{"from-a"}},
		Request: reqA,
	}
	assert.False(t, b.Apply(lateA))

	assert.Equal(t, "/b", b.CurrentPath())
	assert.Equal(t, []string{"from-b"}, labels(b.Entries()))
	assert.Equal(t, "/b/from-b", b.Entries()[0].Path)
}

func TestDirectoryBrowser_NavigateCancelsPreviousRequest(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/slow").
		RunAndReturn(func(ctx context.Context, _ string) (*domain.DirectoryListing, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	b := NewDirectoryBrowser(lister)

	reqSlow := b.Open("/slow", nil)
	b.Navigate("/fast")

	result := b.Fetch(context.Background(), reqSlow)

	assert.ErrorIs(t, result.Err, context.Canceled)
	assert.False(t, b.Apply(result))
	assert.Equal(t, domain.LoadingEntries(), b.Entries(), "the newer navigation is still loading")
}

func TestDirectoryBrowser_CloseDiscardsInFlightResult(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	b := NewDirectoryBrowser(lister)

	req := b.Open("/media", nil)
	result := b.Fetch(context.Background(), req)
	b.Close()

	assert.False(t, b.Apply(result))
	assert.Equal(t, domain.BrowserClosed, b.State())
}

func TestDirectoryBrowser_NavigateUp(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	lister.EXPECT().Browse(mock.Anything, "/").Return(&domain.DirectoryListing{Directories: []string{"media"}}, nil)
	b := NewDirectoryBrowser(lister)

	b.Load(context.Background(), b.Open("/media", nil))

	req, ok := b.NavigateUp()
	require.True(t, ok)
	assert.Equal(t, "/", req.Path)
	b.Load(context.Background(), req)

	_, ok = b.NavigateUp()
	assert.False(t, ok, "root has no parent entry")
}

func TestDirectoryBrowser_SelectIgnoresPlaceholders(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(&domain.DirectoryListing{Error: "boom"}, nil)
	b := NewDirectoryBrowser(lister)

	req := b.Open("/media", nil)

	_, ok := b.Select(0)
	assert.False(t, ok, "loading row is not navigable")

	b.Load(context.Background(), req)

	_, ok = b.Select(0)
	assert.False(t, ok, "error row is not navigable")
	_, ok = b.Select(5)
	assert.False(t, ok)
	_, ok = b.Select(-1)
	assert.False(t, ok)
}

func TestDirectoryBrowser_SelectOnClosedBrowser(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	b := NewDirectoryBrowser(lister)

	b.Load(context.Background(), b.Open("/media", nil))
	b.Close()

	_, ok := b.Select(1)
	assert.False(t, ok)
}

func TestDirectoryBrowser_Snapshot(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	b := NewDirectoryBrowser(lister)

	b.Load(context.Background(), b.Open("/media", nil))
	snap := b.Snapshot()

	assert.True(t, snap.Visible)
	assert.Equal(t, domain.BrowserListed, snap.State)
	assert.Equal(t, "/media", snap.CurrentPath)
	assert.Len(t, snap.Entries, 3)

	snap.Entries[0].Label = "mutated"
	assert.Equal(t, domain.ParentEntryText, b.Entries()[0].Label)
}
