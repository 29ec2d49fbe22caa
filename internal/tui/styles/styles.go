package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Purple      = lipgloss.Color("#6741D9")
	PurpleLight = lipgloss.Color("#7950F2")
	SlateLight  = lipgloss.Color("#343A40")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#ADB5BD")
	White       = lipgloss.Color("#DEE2E6")
	Gold        = lipgloss.Color("#FCC419")
	Green       = lipgloss.Color("#10B981")
	Orange      = lipgloss.Color("#F59F00")
	Red         = lipgloss.Color("#FA5252")
)

// SpinnerFrames is the braille spinner used for loading states
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner returns the frame for a tick count
func Spinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return SpinnerFrames[frame%len(SpinnerFrames)]
}

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PurpleLight)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(PurpleLight)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	LogoStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)
)

// Top bar
var (
	TopBarStyle = lipgloss.NewStyle().
		Background(Purple).
		Foreground(White).
		Padding(0, 1)
)

// Rating styles
var (
	StarStyle      = lipgloss.NewStyle().Foreground(Gold)
	EmptyStarStyle = lipgloss.NewStyle().Foreground(DimGray)
	StarLabelStyle = lipgloss.NewStyle().Foreground(Gold).Bold(true)
)

// Buttons
var (
	ButtonStyle = lipgloss.NewStyle().
		Foreground(White).
		Background(Purple).
		Padding(0, 1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(PurpleLight)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(PurpleLight)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(PurpleLight).
				Bold(true)
)

// RatingColor returns the colour for a 0-10 catalog rating
func RatingColor(rating float64) lipgloss.Color {
	switch {
	case rating >= 7:
		return Green
	case rating >= 5:
		return Orange
	default:
		return Red
	}
}

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		if width > len(runes) {
			return s
		}
		return string(runes[:width])
	}
	out := runes
	for len(out) > 0 && lipgloss.Width(string(out))+3 > width {
		out = out[:len(out)-1]
	}
	return string(out) + "..."
}

// Pad pads a string to the given display width
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// RowPart represents a part of a row with optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
	Bold       bool
}

// RenderListRow renders a complete list row with uniform background when selected.
// Each part is styled separately so ANSI resets don't clear the row background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight
	defaultFg := LightGray
	selectedFg := White

	var b strings.Builder
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle().Bold(part.Bold)
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if selected {
			style = style.Background(bg)
		}
		b.WriteString(style.Render(part.Text))
		visibleLen += lipgloss.Width(part.Text)
	}

	// Fill to width, minus 2 for left/right margin
	paddingNeeded := width - visibleLen - 2
	if paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		b.WriteString(padStyle.Render(strings.Repeat(" ", paddingNeeded)))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + b.String() + margin
}
