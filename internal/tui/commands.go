package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/popcorn/internal/service"
)

// SearchCmd runs a catalog search off the update loop. A nil request yields no command.
func SearchCmd(req *service.SearchRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return SearchResultsMsg{Result: req.Do()}
	}
}

// DetailsCmd fetches a movie record off the update loop. A nil request yields no command.
func DetailsCmd(req *service.DetailsRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		return DetailsLoadedMsg{Result: req.Do()}
	}
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
