package tui

import "github.com/charmbracelet/lipgloss"

// Layout proportions for the two boxes under the top bar
const (
	ResultsColumnPercent = 45 // left box: search results
	MinColumnWidth       = 20

	// Top bar is a single line
	TopBarHeight = 1

	// Summary box above the watched list: border + two lines
	SummaryHeight = 4
)

// boxLayout holds calculated box sizes for the View
type boxLayout struct {
	leftWidth     int
	rightWidth    int
	contentHeight int
}

// calculateLayout splits the window between the results box and the right box
func (m Model) calculateLayout() boxLayout {
	footerHeight := lipgloss.Height(m.renderFooter())
	layout := boxLayout{
		contentHeight: max(m.Height-TopBarHeight-footerHeight, 3),
	}

	layout.leftWidth = max(m.Width*ResultsColumnPercent/100, MinColumnWidth)
	layout.rightWidth = max(m.Width-layout.leftWidth, MinColumnWidth)
	return layout
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	layout := m.calculateLayout()
	m.Omnibar.SetWidth(m.Width)
	m.Help.Width = m.Width

	m.ResultsColumn.SetSize(layout.leftWidth, layout.contentHeight)
	m.Inspector.SetSize(layout.rightWidth, layout.contentHeight)
	m.WatchedColumn.SetSize(layout.rightWidth, max(layout.contentHeight-SummaryHeight, 3))
}
