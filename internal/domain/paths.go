package domain

import "path"

// DefaultRootPath is where the picker starts when the caller gives no start path
const DefaultRootPath = "/media"

// JoinPath joins a listed directory and one of its child names into the child's path.
// Paths belong to the listing server, so joining always uses forward slashes
// regardless of the client OS. The result is fully cleaned: every run of
// separators collapses to one and trailing separators are dropped.
func JoinPath(parent, child string) string {
	return path.Join(parent, child)
}
