package ui

import (
	"github.com/filearr/filearr/internal/services"
)

// listingLoadedMsg carries a finished listing fetch back to the update loop
type listingLoadedMsg struct {
	result services.NavigationResult
}

// goToPathMsg requests navigation to a typed path
type goToPathMsg struct {
	path string
}
