package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/tui/styles"
)

const (
	fullStar  = "★"
	emptyStar = "☆"
)

// StarRating is a keyboard-driven star widget.
// h/l move a preview marker; space commits it. Digits commit directly (0 means 10).
type StarRating struct {
	max    int
	rating int // committed, 0 = unrated
	hover  int // preview, 0 = none
	keys   StarRatingKeyMap
}

// NewStarRating creates a widget with the given number of stars, clamped to the valid user rating range
func NewStarRating(stars int) StarRating {
	stars = max(domain.MinUserRating, min(stars, domain.MaxUserRating))
	return StarRating{max: stars, keys: DefaultStarRatingKeyMap()}
}

// Max returns the number of stars
func (s StarRating) Max() int { return s.max }

// Rating returns the committed rating, 0 if none
func (s StarRating) Rating() int { return s.rating }

// Hover returns the preview position, 0 if none
func (s StarRating) Hover() int { return s.hover }

// SetRating commits a rating; out-of-range values are ignored
func (s *StarRating) SetRating(r int) {
	if r < 0 || r > s.max {
		return
	}
	s.rating = r
	s.hover = 0
}

// Reset clears both rating and preview
func (s *StarRating) Reset() {
	s.rating = 0
	s.hover = 0
}

// Update handles a key press. Returns true if the key was consumed.
func (s *StarRating) Update(msg tea.KeyMsg) bool {
	k := msg.String()

	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		n, _ := strconv.Atoi(k)
		if n == 0 {
			n = 10
		}
		if n <= s.max {
			s.SetRating(n)
		}
		return true
	}

	switch {
	case key.Matches(msg, s.keys.Increase):
		s.hover = min(s.current()+1, s.max)
		return true
	case key.Matches(msg, s.keys.Decrease):
		s.hover = max(s.current()-1, 1)
		return true
	case key.Matches(msg, s.keys.Clear):
		s.Reset()
		return true
	case k == " ":
		if s.hover > 0 {
			s.SetRating(s.hover)
		}
		return true
	}
	return false
}

// current is what the stars display: preview first, then committed
func (s StarRating) current() int {
	if s.hover > 0 {
		return s.hover
	}
	return s.rating
}

// View renders the stars followed by the displayed number
func (s StarRating) View() string {
	shown := s.current()

	var b strings.Builder
	for i := 1; i <= s.max; i++ {
		if i <= shown {
			b.WriteString(styles.StarStyle.Render(fullStar))
		} else {
			b.WriteString(styles.EmptyStarStyle.Render(emptyStar))
		}
	}

	label := ""
	if shown > 0 {
		label = strconv.Itoa(shown)
	}
	return b.String() + " " + styles.StarLabelStyle.Render(label)
}
