package domain

// BrowserState is the lifecycle state of a folder browser
type BrowserState string

const (
	BrowserClosed     BrowserState = "closed"
	BrowserErrorShown BrowserState = "error"
	BrowserListed     BrowserState = "listed"
	BrowserLoading    BrowserState = "loading"
)

// AcceptsNavigation reports whether a new navigation may start from this state.
// A closed browser only navigates through Open.
func (s BrowserState) AcceptsNavigation() bool {
	return s != BrowserClosed
}
