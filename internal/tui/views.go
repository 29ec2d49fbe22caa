package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/popcorn/internal/tui/components"
	"github.com/mmcdole/popcorn/internal/tui/styles"
	"github.com/mmcdole/popcorn/internal/watched"
)

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.ResultsColumn.View(),
		m.renderRightBox(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.Omnibar.View(),
		content,
		m.renderFooter(),
	)
}

// renderRightBox shows the open movie, or the watched summary and list
func (m Model) renderRightBox() string {
	layout := m.calculateLayout()

	if m.Selection.IsOpen() {
		if m.RightCollapsed {
			return renderCollapsedBox("Details", layout.rightWidth, m.Focus == FocusRight)
		}
		return m.Inspector.View()
	}

	if m.RightCollapsed {
		return m.WatchedColumn.View()
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderSummary(m.Watched.Summary(), layout.rightWidth),
		m.WatchedColumn.View(),
	)
}

// renderSummary renders the watched-list aggregates box
func renderSummary(s watched.Summary, width int) string {
	style := styles.InactiveBorder
	frameW, _ := style.GetFrameSize()
	inner := max(width-components.BorderWidth, 10)

	title := styles.TitleStyle.Render(styles.Truncate("MOVIES YOU WATCHED", inner))

	count := "movies"
	if s.Count == 1 {
		count = "movie"
	}
	stats := strings.Join([]string{
		fmt.Sprintf("#️⃣ %d %s", s.Count, count),
		styles.StarStyle.Render("⭐") + fmt.Sprintf(" %.2f", s.AvgIMDbRating),
		styles.StarStyle.Render("🌟") + fmt.Sprintf(" %.2f", s.AvgUserRating),
		fmt.Sprintf("⏳ %.2f min", s.AvgRuntime),
	}, "  ")

	body := title + "\n" + stats
	return style.Width(width - frameW).MaxHeight(SummaryHeight).Render(body)
}

// renderCollapsedBox renders a title-only box for a collapsed pane
func renderCollapsedBox(title string, width int, focused bool) string {
	style := styles.InactiveBorder
	if focused {
		style = styles.ActiveBorder
	}
	frameW, _ := style.GetFrameSize()
	return style.Width(width - frameW).Render(styles.AccentStyle.Render("+ " + title))
}

// renderFooter renders the status line and key help
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	if m.Help.ShowAll {
		return lipgloss.JoinVertical(lipgloss.Left, m.Help.View(Keys), left)
	}

	right := m.Help.View(Keys)
	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
