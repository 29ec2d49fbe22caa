package components

import (
	"strings"
	"testing"

	"github.com/mmcdole/popcorn/internal/domain"
)

func TestInspectorAddRequiresRating(t *testing.T) {
	i := NewInspector(10)
	i.SetSize(60, 30)
	i.SetDetails(&domain.MovieDetails{ID: "tt0372784", Title: "Batman Begins"})

	if i.CanAdd() {
		t.Error("CanAdd should be false before rating")
	}
	if !i.HandleKey(runeKey('9')) {
		t.Fatal("digit should be consumed")
	}
	if i.Rating() != 9 || !i.CanAdd() {
		t.Errorf("rating = %d canAdd = %v", i.Rating(), i.CanAdd())
	}
}

func TestInspectorResetsRatingOnNewMovie(t *testing.T) {
	i := NewInspector(10)
	i.SetDetails(&domain.MovieDetails{ID: "tt0372784", Title: "Batman Begins"})
	i.HandleKey(runeKey('8'))

	i.SetDetails(&domain.MovieDetails{ID: "tt0468569", Title: "The Dark Knight"})
	if i.Rating() != 0 {
		t.Errorf("rating = %d, want reset", i.Rating())
	}
}

func TestInspectorWatchedShowsRating(t *testing.T) {
	i := NewInspector(10)
	i.SetSize(60, 30)
	i.SetDetails(&domain.MovieDetails{ID: "tt0372784", Title: "Batman Begins"})
	i.SetWatched(9, true)

	if i.HandleKey(runeKey('5')) {
		t.Error("rating keys should be ignored for watched movies")
	}
	if i.CanAdd() {
		t.Error("CanAdd should be false for watched movies")
	}
	if !strings.Contains(i.View(), "You rated this movie 9") {
		t.Error("view should show the existing rating")
	}
}

func TestInspectorIgnoresKeysWhileLoading(t *testing.T) {
	i := NewInspector(10)
	i.SetLoading(true)
	if i.HandleKey(runeKey('5')) {
		t.Error("keys should not be consumed while loading")
	}
}

func TestWordWrap(t *testing.T) {
	got := wordWrap("After witnessing his parents death", 12)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 12 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}
