package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

// Layout constants for inspector
const (
	InspectorBorderHeight     = 2
	InspectorScrollIndicators = 2
)

// inspectorContent holds the three-zone layout content
type inspectorContent struct {
	header string // fixed top
	body   string // scrollable middle
	footer string // fixed bottom
}

// Inspector displays the full record for the open movie and its rating widget
type Inspector struct {
	details *domain.MovieDetails
	loading bool
	errMsg  string

	// Set when the open movie is already on the watched list
	watchedRating int
	isWatched     bool

	rating StarRating

	width        int
	height       int
	offset       int // body scroll offset
	maxVisible   int
	focused      bool
	spinnerFrame int

	keys InspectorKeyMap
}

// NewInspector creates a new inspector component
func NewInspector(maxRating int) Inspector {
	return Inspector{
		rating: NewStarRating(maxRating),
		keys:   DefaultInspectorKeyMap(),
	}
}

// SetDetails sets the record to display and resets scroll and rating
func (i *Inspector) SetDetails(d *domain.MovieDetails) {
	if d == nil || i.details == nil || d.ID != i.details.ID {
		i.rating.Reset()
		i.offset = 0
	}
	i.details = d
}

// Details returns the displayed record, or nil
func (i Inspector) Details() *domain.MovieDetails { return i.details }

// SetLoading shows a spinner in place of the record
func (i *Inspector) SetLoading(loading bool) { i.loading = loading }

// SetError shows msg in place of the record; "" clears it
func (i *Inspector) SetError(msg string) { i.errMsg = msg }

// SetWatched records whether the open movie is already rated
func (i *Inspector) SetWatched(rating int, ok bool) {
	i.watchedRating = rating
	i.isWatched = ok
}

// SetSpinnerFrame updates the spinner animation frame
func (i *Inspector) SetSpinnerFrame(frame int) { i.spinnerFrame = frame }

// SetFocused marks the pane as the keyboard target
func (i *Inspector) SetFocused(focused bool) { i.focused = focused }

// IsFocused returns true if the pane receives keys
func (i Inspector) IsFocused() bool { return i.focused }

// Rating returns the committed star rating, 0 if none
func (i Inspector) Rating() int { return i.rating.Rating() }

// CanAdd reports whether the add action is available
func (i Inspector) CanAdd() bool {
	return i.details != nil && !i.loading && !i.isWatched && i.rating.Rating() > 0
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
	// Reserve border, scroll indicators, title and blank line
	i.maxVisible = max(height-InspectorBorderHeight-InspectorScrollIndicators-2, 1)
}

// HandleKey routes rating and scroll keys. Returns true if consumed.
func (i *Inspector) HandleKey(msg tea.KeyMsg) bool {
	if i.details == nil || i.loading {
		return false
	}
	if !i.isWatched && i.rating.Update(msg) {
		return true
	}
	switch {
	case key.Matches(msg, i.keys.ScrollDown):
		i.offset++
		return true
	case key.Matches(msg, i.keys.ScrollUp):
		if i.offset > 0 {
			i.offset--
		}
		return true
	}
	return false
}

// View renders the component
func (i Inspector) View() string {
	style := styles.InactiveBorder
	if i.focused {
		style = styles.ActiveBorder
	}

	// Border takes 2 chars, leave 1 char safety margin
	contentWidth := max(i.width-3, 10)
	content := i.renderInspector(contentWidth)

	titleLine := styles.AccentStyle.Render(styles.Truncate("Details", contentWidth))

	headerLines := splitLines(content.header)
	footerLines := splitLines(content.footer)
	bodyLines := splitLines(content.body)

	availableForBody := max(i.maxVisible-len(headerLines)-len(footerLines), 1)

	// Clamp body scroll offset
	totalBodyLines := len(bodyLines)
	offset := min(i.offset, max(totalBodyLines-availableForBody, 0))
	end := min(offset+availableForBody, totalBodyLines)
	visibleBody := bodyLines[offset:end]

	up := " "
	if offset > 0 {
		up = styles.DimStyle.Render("↑ more")
	}
	down := " "
	if end < totalBodyLines {
		down = styles.DimStyle.Render("↓ more")
	}

	parts := []string{titleLine, ""}
	if content.header != "" {
		parts = append(parts, strings.Join(headerLines, "\n"))
	}
	parts = append(parts, up)
	if len(visibleBody) > 0 {
		parts = append(parts, strings.Join(visibleBody, "\n"))
	}
	for j := len(visibleBody); j < availableForBody; j++ {
		parts = append(parts, "")
	}
	parts = append(parts, down)
	if content.footer != "" {
		parts = append(parts, strings.Join(footerLines, "\n"))
	}

	frameW, frameH := style.GetFrameSize()
	return style.
		Width(i.width - frameW).
		Height(i.height - frameH).
		Render(strings.Join(parts, "\n"))
}

func (i Inspector) renderInspector(width int) inspectorContent {
	switch {
	case i.loading:
		return inspectorContent{header: styles.DimStyle.Render(styles.Spinner(i.spinnerFrame) + " Loading...")}
	case i.errMsg != "":
		return inspectorContent{
			header: styles.ErrorStyle.Render("⛔ " + i.errMsg),
			footer: styles.DimStyle.Render("esc to go back"),
		}
	case i.details == nil:
		return inspectorContent{body: styles.DimStyle.Render("No movie selected")}
	}

	d := *i.details
	return inspectorContent{
		header: renderDetailsHeader(d, width),
		body:   i.renderDetailsBody(d, width),
		footer: i.renderDetailsFooter(),
	}
}

func renderDetailsHeader(d domain.MovieDetails, width int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(styles.Truncate(d.Title, width)))
	b.WriteString("\n")

	var metaParts []string
	if d.Released != "" {
		metaParts = append(metaParts, d.Released)
	} else if d.Year != "" {
		metaParts = append(metaParts, d.Year)
	}
	if rt := d.FormattedRuntime(); rt != "" {
		metaParts = append(metaParts, rt)
	}
	if len(metaParts) > 0 {
		b.WriteString(styles.DimStyle.Render(styles.Truncate(strings.Join(metaParts, " · "), width)))
		b.WriteString("\n")
	}

	if d.Genre != "" {
		b.WriteString(styles.SubtitleStyle.Render(styles.Truncate(d.Genre, width)))
		b.WriteString("\n")
	}

	if d.IMDbRating > 0 {
		ratingStyle := lipgloss.NewStyle().Foreground(styles.RatingColor(d.IMDbRating))
		b.WriteString(ratingStyle.Render(fmt.Sprintf("★ %.1f IMDb rating", d.IMDbRating)))
	}

	return strings.TrimRight(b.String(), "\n")
}

func (i Inspector) renderDetailsBody(d domain.MovieDetails, width int) string {
	bodyWidth := min(width-2, 80)
	var sections []string

	if i.isWatched {
		sections = append(sections, styles.StarLabelStyle.Render(fmt.Sprintf("You rated this movie %d ★", i.watchedRating)))
	} else {
		rating := i.rating.View()
		if i.rating.Rating() > 0 {
			rating += "\n" + styles.ButtonStyle.Render("+ Add to list") + styles.DimStyle.Render("  enter")
		}
		sections = append(sections, rating)
	}

	if d.Plot != "" {
		sections = append(sections, styles.SubtitleStyle.Italic(true).Render(wordWrap(d.Plot, bodyWidth)))
	}
	if d.Actors != "" {
		sections = append(sections, styles.DimStyle.Render(wordWrap("Starring "+d.Actors, bodyWidth)))
	}
	if d.Director != "" {
		sections = append(sections, styles.DimStyle.Render(wordWrap("Directed by "+d.Director, bodyWidth)))
	}

	return strings.Join(sections, "\n\n")
}

func (i Inspector) renderDetailsFooter() string {
	if i.isWatched {
		return styles.DimStyle.Render("esc back")
	}
	return styles.DimStyle.Render("1-0 rate · h/l + space pick · esc back")
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	lineLen := 0

	for _, word := range strings.Fields(text) {
		wordLen := lipgloss.Width(word)

		if lineLen > 0 && lineLen+wordLen+1 > width {
			result.WriteString("\n")
			lineLen = 0
		}
		if lineLen > 0 {
			result.WriteString(" ")
			lineLen++
		}

		result.WriteString(word)
		lineLen += wordLen
	}

	return result.String()
}
