package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/search"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// ListColumn is a scrollable, filterable box of either search results or watched entries
type ListColumn struct {
	// Content - only one is populated, depending on columnType
	results []domain.SearchResultItem
	watched []domain.WatchedEntry

	columnType ColumnType

	// Selection
	cursor     int
	offset     int
	maxVisible int

	// Dimensions
	width   int
	height  int
	focused bool

	title     string
	collapsed bool

	// Status
	loading      bool
	spinnerFrame int
	errMsg       string
	emptyMsg     string

	// ID of the movie open in the details pane, marked in the list
	openID string

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	filteredIdx  []int         // indices into the content slice
	matchedIdx   map[int][]int // content index -> matched byte offsets in the title

	keys ListColumnKeyMap
}

// NewListColumn creates an empty list column
func NewListColumn(colType ColumnType, title string) *ListColumn {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return &ListColumn{
		columnType:  colType,
		title:       title,
		filterInput: ti,
		keys:        DefaultListColumnKeyMap(),
	}
}

// NewResultsColumn creates a column for catalog search results
func NewResultsColumn() *ListColumn {
	col := NewListColumn(ColumnTypeResults, "Results")
	col.emptyMsg = "Search for a movie to get started"
	return col
}

// NewWatchedColumn creates a column for the watched list
func NewWatchedColumn() *ListColumn {
	col := NewListColumn(ColumnTypeWatched, "Movies you watched")
	col.emptyMsg = "Rate a movie to add it here"
	return col
}

// Update handles key messages while the column is focused
func (c *ListColumn) Update(msg tea.Msg) tea.Cmd {
	// Rows under the spinner belong to the previous result set
	if !c.focused || c.collapsed || c.loading {
		return nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)

	// Filter typing mode
	if c.filterActive && c.filterInput.Focused() {
		if isKey {
			switch {
			case key.Matches(keyMsg, c.keys.Escape):
				c.clearFilter()
				return nil
			case key.Matches(keyMsg, c.keys.Enter):
				// Accept filter, blur input to allow navigation
				c.filterInput.Blur()
				return nil
			case keyMsg.Type == tea.KeyBackspace && c.filterInput.Value() == "":
				c.clearFilter()
				return nil
			}
		}

		var cmd tea.Cmd
		c.filterInput, cmd = c.filterInput.Update(msg)
		c.applyFilter()
		return cmd
	}

	if !isKey {
		return nil
	}

	// Filter applied but blurred: navigation over the filtered rows
	if c.filterActive {
		switch {
		case key.Matches(keyMsg, c.keys.Escape):
			c.clearFilter()
			return nil
		case key.Matches(keyMsg, c.keys.Filter):
			c.filterInput.Focus()
			return nil
		}
	}

	count := c.ItemCount()
	if count == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, c.keys.Down):
		if c.cursor < count-1 {
			c.cursor++
			c.ensureVisible()
		}
	case key.Matches(keyMsg, c.keys.Up):
		if c.cursor > 0 {
			c.cursor--
			c.ensureVisible()
		}
	case key.Matches(keyMsg, c.keys.Home):
		c.cursor = 0
		c.offset = 0
	case key.Matches(keyMsg, c.keys.End):
		c.cursor = count - 1
		c.ensureVisible()
	case key.Matches(keyMsg, c.keys.HalfDown):
		c.cursor = min(c.cursor+max(c.maxVisible/2, 1), count-1)
		c.ensureVisible()
	case key.Matches(keyMsg, c.keys.HalfUp):
		c.cursor = max(c.cursor-max(c.maxVisible/2, 1), 0)
		c.ensureVisible()
	}
	return nil
}

// View renders the bordered column
func (c *ListColumn) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}

	frameW, frameH := style.GetFrameSize()
	if c.collapsed {
		return style.Width(c.width - frameW).Render(c.renderTitleLine(c.width - BorderWidth))
	}

	// Subtract frame (border) size so total rendered size equals c.width x c.height
	return style.
		Width(c.width - frameW).
		Height(c.height - frameH).
		Render(c.renderContent())
}

// SetSize sets the outer dimensions including the border
func (c *ListColumn) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.filterInput.Width = max(width-BorderWidth-4, 1)
	c.recalcMaxVisible()
	c.ensureVisible()
}

func (c *ListColumn) Width() int  { return c.width }
func (c *ListColumn) Height() int { return c.height }

func (c *ListColumn) SetFocused(focused bool) { c.focused = focused }
func (c *ListColumn) IsFocused() bool         { return c.focused }

func (c *ListColumn) Title() string         { return c.title }
func (c *ListColumn) SetTitle(title string) { c.title = title }

// ColumnType returns the column's content type
func (c *ListColumn) ColumnType() ColumnType { return c.columnType }

// ToggleCollapsed hides or shows the column body
func (c *ListColumn) ToggleCollapsed() {
	c.collapsed = !c.collapsed
}

// IsCollapsed returns true if only the title line is shown
func (c *ListColumn) IsCollapsed() bool { return c.collapsed }

// SetLoading shows a spinner instead of rows
func (c *ListColumn) SetLoading(loading bool) { c.loading = loading }

// IsLoading returns true while the spinner is shown
func (c *ListColumn) IsLoading() bool { return c.loading }

// SetSpinnerFrame updates the spinner animation frame
func (c *ListColumn) SetSpinnerFrame(frame int) { c.spinnerFrame = frame }

// SetError shows msg instead of rows; "" clears it
func (c *ListColumn) SetError(msg string) { c.errMsg = msg }

// SetOpenID marks the row whose details are open
func (c *ListColumn) SetOpenID(id string) { c.openID = id }

// SetResults replaces the search results, resetting cursor and filter
func (c *ListColumn) SetResults(items []domain.SearchResultItem) {
	c.results = items
	c.cursor = 0
	c.offset = 0
	c.clearFilter()
}

// SetWatched replaces the watched entries, keeping the cursor where it was
func (c *ListColumn) SetWatched(entries []domain.WatchedEntry) {
	c.watched = entries
	if c.filterActive {
		c.applyFilter()
	}
	c.SetSelectedIndex(c.cursor)
}

// ItemCount returns the number of visible (filtered) rows
func (c *ListColumn) ItemCount() int {
	if c.filteredIdx != nil {
		return len(c.filteredIdx)
	}
	return c.rawItemCount()
}

// IsEmpty returns true if there are no visible rows
func (c *ListColumn) IsEmpty() bool { return c.ItemCount() == 0 }

// SelectedIndex returns the cursor position among visible rows
func (c *ListColumn) SelectedIndex() int { return c.cursor }

// SetSelectedIndex moves the cursor, clamped to the visible rows
func (c *ListColumn) SetSelectedIndex(idx int) {
	last := c.ItemCount() - 1
	if last < 0 {
		c.cursor = 0
		c.offset = 0
		return
	}
	c.cursor = max(0, min(idx, last))
	c.ensureVisible()
}

// SelectedID returns the catalog ID under the cursor, or "" while loading
func (c *ListColumn) SelectedID() string {
	count := c.ItemCount()
	if c.loading || count == 0 || c.cursor >= count {
		return ""
	}
	idx := c.mapIndex(c.cursor)
	switch c.columnType {
	case ColumnTypeResults:
		return c.results[idx].ID
	case ColumnTypeWatched:
		return c.watched[idx].ID
	default:
		return ""
	}
}

// SelectedResult returns the search result under the cursor
func (c *ListColumn) SelectedResult() *domain.SearchResultItem {
	if c.columnType != ColumnTypeResults || c.IsEmpty() {
		return nil
	}
	item := c.results[c.mapIndex(c.cursor)]
	return &item
}

// SelectedWatched returns the watched entry under the cursor
func (c *ListColumn) SelectedWatched() *domain.WatchedEntry {
	if c.columnType != ColumnTypeWatched || c.IsEmpty() {
		return nil
	}
	entry := c.watched[c.mapIndex(c.cursor)]
	return &entry
}

// ToggleFilter activates the filter input
func (c *ListColumn) ToggleFilter() {
	c.filterActive = true
	c.filterInput.Focus()
	c.recalcMaxVisible()
}

// IsFiltering returns true if filter mode is active
func (c *ListColumn) IsFiltering() bool { return c.filterActive }

// IsFilterTyping returns true if filter is active AND input is focused
func (c *ListColumn) IsFilterTyping() bool {
	return c.filterActive && c.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all items
func (c *ListColumn) ClearFilter() { c.clearFilter() }

// Internal methods

func (c *ListColumn) recalcMaxVisible() {
	// Interior height minus title line and scroll indicators
	interiorHeight := c.height - BorderHeight
	c.maxVisible = interiorHeight - ScrollIndicatorLines - 1
	if c.filterActive {
		c.maxVisible--
	}
	if c.maxVisible < 1 {
		c.maxVisible = 1
	}
}

func (c *ListColumn) ensureVisible() {
	// Size not known yet
	if c.maxVisible <= 0 {
		return
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
	if c.cursor >= c.offset+c.maxVisible {
		c.offset = c.cursor - c.maxVisible + 1
	}
}

func (c *ListColumn) clearFilter() {
	c.filterActive = false
	c.filterQuery = ""
	c.filteredIdx = nil
	c.matchedIdx = nil
	c.filterInput.SetValue("")
	c.filterInput.Blur()
	c.recalcMaxVisible()
}

// applyFilter narrows the rows to those matching the filter input.
// Results keep catalog order; the watched list is ranked by match quality.
func (c *ListColumn) applyFilter() {
	query := c.filterInput.Value()
	c.filterQuery = query

	if query == "" {
		c.filteredIdx = nil
		c.matchedIdx = nil
		return
	}

	titles := c.titles()
	c.matchedIdx = nil

	switch c.columnType {
	case ColumnTypeResults:
		c.filteredIdx = search.Indexes(search.FilterOrdered(query, titles))
	case ColumnTypeWatched:
		matches := search.FilterRanked(query, titles)
		c.filteredIdx = search.Indexes(matches)
		c.matchedIdx = make(map[int][]int, len(matches))
		for _, m := range matches {
			c.matchedIdx[m.Index] = m.MatchedIndexes
		}
	}

	c.cursor = 0
	c.offset = 0
}

func (c *ListColumn) titles() []string {
	switch c.columnType {
	case ColumnTypeResults:
		titles := make([]string, len(c.results))
		for i, r := range c.results {
			titles[i] = r.Title
		}
		return titles
	case ColumnTypeWatched:
		titles := make([]string, len(c.watched))
		for i, w := range c.watched {
			titles[i] = w.Title
		}
		return titles
	default:
		return nil
	}
}

func (c *ListColumn) rawItemCount() int {
	switch c.columnType {
	case ColumnTypeResults:
		return len(c.results)
	case ColumnTypeWatched:
		return len(c.watched)
	default:
		return 0
	}
}

func (c *ListColumn) mapIndex(i int) int {
	if c.filteredIdx != nil && i < len(c.filteredIdx) {
		return c.filteredIdx[i]
	}
	return i
}

// Rendering

func (c *ListColumn) renderTitleLine(width int) string {
	marker := "−"
	if c.collapsed {
		marker = "+"
	}
	title := c.title
	if n := c.rawItemCount(); n > 0 {
		title = fmt.Sprintf("%s (%d)", c.title, n)
	}
	return styles.AccentStyle.Render(styles.Truncate(marker+" "+title, width))
}

func (c *ListColumn) renderContent() string {
	// Content width = column width - border
	itemWidth := max(c.width-BorderWidth, 10)
	titleLine := c.renderTitleLine(itemWidth)

	if c.loading {
		loadingLine := styles.DimStyle.Render(styles.Spinner(c.spinnerFrame) + " Loading...")
		return titleLine + "\n \n" + loadingLine + "\n "
	}

	if c.errMsg != "" {
		errLine := styles.ErrorStyle.Render("⛔ " + styles.Truncate(c.errMsg, itemWidth-3))
		return titleLine + "\n \n" + errLine + "\n "
	}

	count := c.ItemCount()
	if count == 0 {
		emptyMsg := styles.DimStyle.Render(styles.Truncate(c.emptyMsg, itemWidth))
		if c.filterActive && c.filterQuery != "" {
			emptyMsg = styles.DimStyle.Render("No matches")
		}
		content := titleLine + "\n \n" + emptyMsg + "\n "
		if c.filterActive {
			content += "\n" + c.renderFilterBar()
		}
		return content
	}

	end := min(c.offset+c.maxVisible, count)
	lines := make([]string, 0, end-c.offset)
	for i := c.offset; i < end; i++ {
		selected := i == c.cursor && c.focused
		idx := c.mapIndex(i)
		switch c.columnType {
		case ColumnTypeResults:
			lines = append(lines, c.renderResultItem(c.results[idx], selected, itemWidth))
		case ColumnTypeWatched:
			lines = append(lines, c.renderWatchedItem(c.watched[idx], c.matchedIdx[idx], selected, itemWidth))
		}
	}

	// Always reserve the indicator lines to prevent layout shifts
	header := " "
	if c.offset > 0 {
		header = styles.DimStyle.Render("↑ more")
	}
	footer := " "
	if end < count {
		footer = styles.DimStyle.Render("↓ more")
	}

	content := titleLine + "\n" + header + "\n" + strings.Join(lines, "\n") + "\n" + footer
	if c.filterActive {
		content += "\n" + c.renderFilterBar()
	}
	return content
}

func (c *ListColumn) openMarker(id string) styles.RowPart {
	accent := styles.Gold
	if id != "" && id == c.openID {
		return styles.RowPart{Text: "▸ ", Foreground: &accent}
	}
	return styles.RowPart{Text: "  "}
}

func (c *ListColumn) renderResultItem(item domain.SearchResultItem, selected bool, width int) string {
	dim := styles.DimGray
	year := ""
	if item.Year != "" {
		year = "  " + item.Year
	}

	// width - marker(2) - year - margins(2)
	available := max(width-4-lipgloss.Width(year), 5)
	title := styles.Truncate(item.Title, available)

	parts := []styles.RowPart{
		c.openMarker(item.ID),
		{Text: title},
		{Text: year, Foreground: &dim},
	}
	return styles.RenderListRow(parts, selected, width)
}

func (c *ListColumn) renderWatchedItem(entry domain.WatchedEntry, matched []int, selected bool, width int) string {
	dim := styles.DimGray
	gold := styles.Gold
	imdbColor := styles.RatingColor(entry.IMDbRating)

	imdb := fmt.Sprintf("★ %.1f", entry.IMDbRating)
	user := fmt.Sprintf("☆ %d", entry.UserRating)
	runtime := fmt.Sprintf("%d min", entry.RuntimeMinutes)
	stats := "  " + imdb + "  " + user + "  " + runtime

	available := max(width-4-lipgloss.Width(stats), 5)
	title := styles.Truncate(entry.Title, available)

	parts := []styles.RowPart{c.openMarker(entry.ID)}
	parts = append(parts, highlightParts(title, matched)...)
	parts = append(parts,
		styles.RowPart{Text: "  " + imdb, Foreground: &imdbColor},
		styles.RowPart{Text: "  " + user, Foreground: &gold},
		styles.RowPart{Text: "  " + runtime, Foreground: &dim},
	)
	return styles.RenderListRow(parts, selected, width)
}

// highlightParts splits text into runs, marking bytes at the matched offsets
func highlightParts(text string, matched []int) []styles.RowPart {
	if len(matched) == 0 {
		return []styles.RowPart{{Text: text}}
	}

	matchSet := make(map[int]bool, len(matched))
	for _, i := range matched {
		matchSet[i] = true
	}

	accent := styles.PurpleLight
	var parts []styles.RowPart
	var run strings.Builder
	runMatched := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		part := styles.RowPart{Text: run.String()}
		if runMatched {
			part.Foreground = &accent
			part.Bold = true
		}
		parts = append(parts, part)
		run.Reset()
	}

	for i, r := range text {
		isMatch := matchSet[i]
		if isMatch != runMatched {
			flush()
			runMatched = isMatch
		}
		run.WriteRune(r)
	}
	flush()
	return parts
}

func (c *ListColumn) renderFilterBar() string {
	input := c.filterInput.View()
	countStr := ""
	if c.filterQuery != "" {
		countStr = styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", c.ItemCount(), c.rawItemCount()))
	}
	return input + countStr
}
