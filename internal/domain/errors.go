package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSelectionCancelled = errors.New("selection cancelled")
	ErrSettingNotFound    = errors.New("setting not found")
	ErrUnknownSetting     = errors.New("unknown setting")
)

// ListingError is a failure reported by the listing service itself
// (a 200 response carrying an "error" field), as opposed to a transport failure.
type ListingError struct {
	Message string
	Path    string
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("listing %s: %s", e.Path, e.Message)
}
