package domain

import (
	"strings"
	"unicode"
)

// Placeholder texts shown in the entry list
const (
	LoadingText        = "Loading..."
	NoSubdirectoryText = "No subdirectories found."
	ParentEntryText    = ".. (Parent Directory)"
)

// DirectoryListing is one response of the listing service.
// It is transient: built per request and dropped after it is rendered.
type DirectoryListing struct {
	CurrentPath string   // Normalized path as resolved by the server (may be empty)
	Directories []string // Child directory names, in server order
	Error       string   // Server-reported failure; empty means success
	Files       []string // Returned by some servers, never rendered
	ParentPath  *string  // nil at the root or when the server omits it
}

// HasParentEntry reports whether a parent-navigation entry applies when
// the listing was requested for requestedPath.
func (l *DirectoryListing) HasParentEntry(requestedPath string) bool {
	return l.ParentPath != nil && *l.ParentPath != "" && *l.ParentPath != requestedPath
}

// EntryKind distinguishes the rows of a rendered listing
type EntryKind int

const (
	EntryDirectory EntryKind = iota
	EntryEmpty
	EntryError
	EntryLoading
	EntryParent
)

// Entry is one rendered row of the folder browser
type Entry struct {
	Kind  EntryKind
	Label string
	Path  string // Navigation target; empty for non-navigable rows
}

// Navigable reports whether activating the entry starts a navigation
func (e Entry) Navigable() bool {
	return e.Kind == EntryParent || e.Kind == EntryDirectory
}

// LoadingEntries is the placeholder list shown while a listing is in flight
func LoadingEntries() []Entry {
	return []Entry{{Kind: EntryLoading, Label: LoadingText}}
}

// RenderListing turns a successful or server-rejected listing into rows.
// Directory paths are joined onto requestedPath, the path the listing was asked for.
func RenderListing(requestedPath string, listing *DirectoryListing) []Entry {
	if listing.Error != "" {
		return []Entry{{Kind: EntryError, Label: "Error: " + SanitizeLabel(listing.Error)}}
	}

	entries := make([]Entry, 0, len(listing.Directories)+1)

	if listing.HasParentEntry(requestedPath) {
		entries = append(entries, Entry{
			Kind:  EntryParent,
			Label: ParentEntryText,
			Path:  *listing.ParentPath,
		})
	}

	if len(listing.Directories) == 0 {
		return append(entries, Entry{Kind: EntryEmpty, Label: NoSubdirectoryText})
	}

	for _, dir := range listing.Directories {
		entries = append(entries, Entry{
			Kind:  EntryDirectory,
			Label: SanitizeLabel(dir),
			Path:  JoinPath(requestedPath, dir),
		})
	}

	return entries
}

// RenderFailure turns a transport or decoding failure into a single error row
func RenderFailure(err error) []Entry {
	return []Entry{{Kind: EntryError, Label: "Error loading directory: " + SanitizeLabel(err.Error())}}
}

// SanitizeLabel makes a server-provided string safe to print in a terminal.
// Control characters (including ESC, which starts terminal escape sequences)
// are replaced with U+FFFD; everything else is kept verbatim.
func SanitizeLabel(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return unicode.ReplacementChar
		}
		return r
	}, s)
}
