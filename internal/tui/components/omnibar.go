package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/popcorn/internal/tui/styles"
)

const (
	logoText     = "🍿 usePopcorn"
	queryLimit   = 100
	minInputSize = 10
)

// Omnibar is the top bar: logo, search-as-you-type input and result count
type Omnibar struct {
	input       textinput.Model
	prevQuery   string // Track query changes for search-as-you-type
	resultCount int
	width       int
}

// NewOmnibar creates a new omnibar component
func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.CharLimit = queryLimit
	ti.Width = 40
	ti.Prompt = "🔍 "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.LightGray)

	return Omnibar{input: ti}
}

// Focus gives the input keyboard focus
func (o *Omnibar) Focus() tea.Cmd {
	return o.input.Focus()
}

// Blur removes keyboard focus from the input
func (o *Omnibar) Blur() {
	o.input.Blur()
}

// Focused returns true if the input has keyboard focus
func (o Omnibar) Focused() bool {
	return o.input.Focused()
}

// SetQuery replaces the input text
func (o *Omnibar) SetQuery(q string) {
	o.input.SetValue(q)
}

// Query returns the current search query
func (o Omnibar) Query() string {
	return o.input.Value()
}

// QueryChanged returns true if the query changed since last check and updates prevQuery
func (o *Omnibar) QueryChanged() bool {
	current := o.input.Value()
	if current != o.prevQuery {
		o.prevQuery = current
		return true
	}
	return false
}

// SetResultCount sets the "Found N results" counter
func (o *Omnibar) SetResultCount(n int) {
	o.resultCount = n
}

// SetWidth updates the component width
func (o *Omnibar) SetWidth(width int) {
	o.width = width
	o.input.Width = max(width/3, minInputSize)
}

// Update passes messages to the text input
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd) {
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the bar across the full width
func (o Omnibar) View() string {
	logo := styles.LogoStyle.Render(logoText)
	count := fmt.Sprintf("Found %d results", o.resultCount)

	input := o.input.View()

	// Layout: logo left, input centered, count right
	inner := max(o.width-2, 0)
	used := lipgloss.Width(logo) + lipgloss.Width(input) + lipgloss.Width(count)
	gap := max(inner-used, 2)
	leftGap := gap / 2
	rightGap := gap - leftGap

	line := logo + strings.Repeat(" ", leftGap) + input + strings.Repeat(" ", rightGap) + count
	return styles.TopBarStyle.Width(max(o.width, 0)).Render(line)
}
