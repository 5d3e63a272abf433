package services

import (
	"context"
	"slices"
	"sync"

	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/ports"
)

// NavigationRequest identifies one navigation to be fetched
type NavigationRequest struct {
	Path string
	Seq  uint64

	ctx context.Context // cancelled when the navigation is superseded or the browser closes
}

// NavigationResult is the outcome of fetching a NavigationRequest
type NavigationResult struct {
	Err     error
	Listing *domain.DirectoryListing
	Request NavigationRequest
}

// BrowserSnapshot is a consistent copy of the browser state for rendering
type BrowserSnapshot struct {
	CurrentPath string
	Entries     []domain.Entry
	State       domain.BrowserState
	Visible     bool
}

// DirectoryBrowser is the folder picker state machine.
// Fetching is split from applying so that UI loops can run Fetch off their
// event loop and feed the result back through Apply.
type DirectoryBrowser struct {
	lister ports.DirectoryLister

	mu          sync.Mutex
	cancel      context.CancelFunc
	currentPath string
	entries     []domain.Entry
	onSelect    func(selectedPath string)
	seq         uint64
	state       domain.BrowserState
	visible     bool
}

// NewDirectoryBrowser creates a closed browser backed by lister
func NewDirectoryBrowser(lister ports.DirectoryLister) *DirectoryBrowser {
	return &DirectoryBrowser{
		lister:      lister,
		currentPath: domain.DefaultRootPath,
		state:       domain.BrowserClosed,
	}
}

// Open shows the browser and navigates to startPath (the default root when empty).
// onSelect is kept as given and invoked at most once, by ConfirmSelection.
func (b *DirectoryBrowser) Open(startPath string, onSelect func(selectedPath string)) NavigationRequest {
	if startPath == "" {
		startPath = domain.DefaultRootPath
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	logging.Logger.Info("Opening folder browser", "start_path", startPath)
	b.onSelect = onSelect
	b.visible = true
	b.currentPath = startPath
	return b.navigateLocked(startPath)
}

// Navigate makes path the current path and returns the request to fetch.
// The path is used as given.
func (b *DirectoryBrowser) Navigate(path string) NavigationRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.navigateLocked(path)
}

func (b *DirectoryBrowser) navigateLocked(path string) NavigationRequest {
	if b.cancel != nil {
		b.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.seq++
	b.currentPath = path
	b.entries = domain.LoadingEntries()
	b.state = domain.BrowserLoading

	logging.Logger.Debug("Navigating", "path", path, "seq", b.seq)
	return NavigationRequest{Path: path, Seq: b.seq, ctx: ctx}
}

// NavigateUp navigates to the parent entry of the current listing, if one is shown
func (b *DirectoryBrowser) NavigateUp() (NavigationRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.visible {
		return NavigationRequest{}, false
	}
	for _, e := range b.entries {
		if e.Kind == domain.EntryParent {
			return b.navigateLocked(e.Path), true
		}
	}
	return NavigationRequest{}, false
}

// Select activates the entry at index. Only parent and directory entries navigate.
func (b *DirectoryBrowser) Select(index int) (NavigationRequest, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.stateLocked().AcceptsNavigation() || index < 0 || index >= len(b.entries) {
		return NavigationRequest{}, false
	}

	entry := b.entries[index]
	if !entry.Navigable() {
		return NavigationRequest{}, false
	}
	return b.navigateLocked(entry.Path), true
}

// Fetch performs the listing call for req. It does not touch browser state.
// The call is aborted when ctx ends or when req is superseded.
func (b *DirectoryBrowser) Fetch(ctx context.Context, req NavigationRequest) NavigationResult {
	if req.ctx != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		stop := context.AfterFunc(req.ctx, cancel)
		defer stop()
	}

	listing, err := b.lister.Browse(ctx, req.Path)
	return NavigationResult{Err: err, Listing: listing, Request: req}
}

// Apply renders result if it belongs to the latest navigation.
// Results of superseded navigations, or arriving after Close, are dropped
// and Apply reports false.
func (b *DirectoryBrowser) Apply(result NavigationResult) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if result.Request.Seq != b.seq || b.state != domain.BrowserLoading {
		logging.Logger.Debug("Discarding stale listing",
			"path", result.Request.Path,
			"seq", result.Request.Seq,
			"latest_seq", b.seq)
		return false
	}

	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}

	switch {
	case result.Err != nil:
		logging.Logger.Warn("Failed to load directory", "path", result.Request.Path, "error", result.Err)
		b.entries = domain.RenderFailure(result.Err)
		b.state = domain.BrowserErrorShown
	case result.Listing == nil:
		b.entries = domain.RenderListing(result.Request.Path, &domain.DirectoryListing{})
		b.state = domain.BrowserListed
	case result.Listing.Error != "":
		logging.Logger.Info("Listing service rejected path", "path", result.Request.Path, "error", result.Listing.Error)
		b.entries = domain.RenderListing(result.Request.Path, result.Listing)
		b.state = domain.BrowserErrorShown
	default:
		b.entries = domain.RenderListing(result.Request.Path, result.Listing)
		b.state = domain.BrowserListed
	}
	return true
}

// Load fetches and applies req synchronously
func (b *DirectoryBrowser) Load(ctx context.Context, req NavigationRequest) bool {
	return b.Apply(b.Fetch(ctx, req))
}

// Close hides the browser and cancels any in-flight listing.
// The pending callback is dropped without being invoked; the current path is kept.
func (b *DirectoryBrowser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeLocked()
}

func (b *DirectoryBrowser) closeLocked() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	if b.state == domain.BrowserLoading {
		b.state = domain.BrowserClosed
	}
	b.visible = false
	logging.Logger.Debug("Folder browser closed", "current_path", b.currentPath)
}

// ConfirmSelection hands the current path to the pending callback, if any,
// then closes the browser. It returns the confirmed path.
func (b *DirectoryBrowser) ConfirmSelection() string {
	b.mu.Lock()
	callback := b.onSelect
	b.onSelect = nil
	selected := b.currentPath
	b.closeLocked()
	b.mu.Unlock()

	logging.Logger.Info("Folder selected", "path", selected, "has_callback", callback != nil)
	if callback != nil {
		callback(selected)
	}
	return selected
}

// CurrentPath returns the path shown in the "Current Path" label
func (b *DirectoryBrowser) CurrentPath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentPath
}

// Entries returns a copy of the rendered rows
func (b *DirectoryBrowser) Entries() []domain.Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.entries)
}

// State returns the lifecycle state; a hidden browser is always closed
func (b *DirectoryBrowser) State() domain.BrowserState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stateLocked()
}

func (b *DirectoryBrowser) stateLocked() domain.BrowserState {
	if !b.visible {
		return domain.BrowserClosed
	}
	return b.state
}

// IsVisible reports whether the browser is open
func (b *DirectoryBrowser) IsVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Snapshot returns the whole render state under one lock
func (b *DirectoryBrowser) Snapshot() BrowserSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BrowserSnapshot{
		CurrentPath: b.currentPath,
		Entries:     slices.Clone(b.entries),
		State:       b.stateLocked(),
		Visible:     b.visible,
	}
}
