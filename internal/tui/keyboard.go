package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/popcorn/internal/tui/components"
)

// handleKeyMsg is the single key router for the application
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.ForceQuit) {
		return m, m.quit()
	}

	// An active list filter owns esc and, while typing, every key
	if col := m.focusedColumn(); col != nil && col.IsFiltering() {
		if col.IsFilterTyping() || key.Matches(msg, Keys.Escape) {
			return m, col.Update(msg)
		}
	}

	switch {
	case key.Matches(msg, Keys.Escape):
		if m.Selection.IsOpen() {
			return m, m.closeSelection()
		}
		if m.Focus == FocusSearch {
			m.setFocus(FocusResults)
		}
		return m, nil

	case key.Matches(msg, Keys.NextFocus):
		m.setFocus(m.nextFocus(1))
		return m, nil

	case key.Matches(msg, Keys.PrevFocus):
		m.setFocus(m.nextFocus(-1))
		return m, nil
	}

	if m.Focus == FocusSearch {
		return m.handleSearchKey(msg)
	}

	// Global keys outside the search input
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, m.quit()

	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.setFocus(FocusSearch)
		return m, nil

	case key.Matches(msg, Keys.CollapseLeft):
		m.ResultsColumn.ToggleCollapsed()
		if m.ResultsColumn.IsCollapsed() && m.Focus == FocusResults {
			m.setFocus(FocusRight)
		}
		m.updateLayout()
		return m, nil

	case key.Matches(msg, Keys.CollapseRight):
		m.RightCollapsed = !m.RightCollapsed
		m.WatchedColumn.ToggleCollapsed()
		if m.RightCollapsed && m.Focus == FocusRight {
			m.setFocus(FocusResults)
		}
		m.updateLayout()
		return m, nil
	}

	switch m.Focus {
	case FocusResults:
		return m.handleResultsKey(msg)
	case FocusRight:
		if m.Selection.IsOpen() {
			return m.handleInspectorKey(msg)
		}
		return m.handleWatchedKey(msg)
	}
	return m, nil
}

// handleSearchKey feeds the search input and reacts to query changes
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter || msg.Type == tea.KeyDown {
		m.setFocus(FocusResults)
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Omnibar, cmd = m.Omnibar.Update(msg)
	cmds = append(cmds, cmd)

	if m.Omnibar.QueryChanged() {
		cmds = append(cmds, m.onQueryChange(m.Omnibar.Query()))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Select):
		return m, m.selectItem(m.ResultsColumn.SelectedID())
	case key.Matches(msg, Keys.Filter):
		m.ResultsColumn.ToggleFilter()
		return m, nil
	}
	return m, m.ResultsColumn.Update(msg)
}

func (m Model) handleWatchedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Select):
		return m, m.selectItem(m.WatchedColumn.SelectedID())
	case key.Matches(msg, Keys.Delete):
		return m, m.deleteWatched()
	case key.Matches(msg, Keys.Filter):
		m.WatchedColumn.ToggleFilter()
		return m, nil
	}
	return m, m.WatchedColumn.Update(msg)
}

func (m Model) handleInspectorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, Keys.Add) && m.Inspector.CanAdd() {
		return m, m.addWatched()
	}
	m.Inspector.HandleKey(msg)
	return m, nil
}

// focusedColumn returns the list column with keyboard focus, or nil
func (m Model) focusedColumn() *components.ListColumn {
	switch {
	case m.Focus == FocusResults:
		return m.ResultsColumn
	case m.Focus == FocusRight && !m.Selection.IsOpen():
		return m.WatchedColumn
	}
	return nil
}

// nextFocus cycles search -> results -> right, skipping collapsed boxes
func (m Model) nextFocus(step int) Focus {
	const panes = 3
	f := m.Focus
	for i := 0; i < panes; i++ {
		f = Focus((int(f) + step + panes) % panes)
		switch {
		case f == FocusResults && m.ResultsColumn.IsCollapsed():
			continue
		case f == FocusRight && m.RightCollapsed:
			continue
		}
		return f
	}
	return m.Focus
}
