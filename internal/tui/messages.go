package tui

import (
	"github.com/mmcdole/popcorn/internal/service"
)

// Message types for the TUI

// SearchResultsMsg carries a finished catalog search back to the update loop
type SearchResultsMsg struct {
	Result service.SearchResult
}

// DetailsLoadedMsg carries a finished detail fetch back to the update loop
type DetailsLoadedMsg struct {
	Result service.DetailsResult
}

// StatusMsg displays a status message
type StatusMsg struct {
	Message string
	IsError bool
}

// TickMsg is sent periodically for spinner animation
type TickMsg struct{}

// ClearStatusMsg signals to clear the status message
type ClearStatusMsg struct{}
