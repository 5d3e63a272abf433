package ports

import (
	"context"

	"github.com/filearr/filearr/internal/domain"
)

// DirectoryLister asks the listing service for the immediate subdirectories of a path.
// A server-reported failure comes back as a listing with Error set and a nil error;
// a non-nil error means the request itself failed (transport, status or decoding).
type DirectoryLister interface {
	Browse(ctx context.Context, path string) (*domain.DirectoryListing, error)
}
