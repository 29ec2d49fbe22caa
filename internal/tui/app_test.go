package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/service"
	"github.com/mmcdole/popcorn/internal/watched"
)

// cmdTimeout bounds how long a command may run before its message is dropped.
// Cursor blink and tick commands sleep far longer and are ignored this way.
const cmdTimeout = 100 * time.Millisecond

type stubCatalog struct {
	mu           sync.Mutex
	search       map[string][]domain.SearchResultItem
	details      map[string]*domain.MovieDetails
	searchCalls  []string
	detailsCalls []string
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		search: map[string][]domain.SearchResultItem{
			"batman": {
				{ID: "tt0372784", Title: "Batman Begins", Year: "2005"},
				{ID: "tt0096895", Title: "Batman", Year: "1989"},
			},
			"dark knight": {
				{ID: "tt0468569", Title: "The Dark Knight", Year: "2008"},
			},
		},
		details: map[string]*domain.MovieDetails{
			"tt0372784": {ID: "tt0372784", Title: "Batman Begins", Year: "2005", RuntimeMinutes: 140, IMDbRating: 8.2},
			"tt0096895": {ID: "tt0096895", Title: "Batman", Year: "1989", RuntimeMinutes: 126, IMDbRating: 7.5},
			"tt0468569": {ID: "tt0468569", Title: "The Dark Knight", Year: "2008", RuntimeMinutes: 152, IMDbRating: 9.0},
		},
	}
}

func (s *stubCatalog) Search(ctx context.Context, query string) ([]domain.SearchResultItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchCalls = append(s.searchCalls, query)
	items, ok := s.search[query]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return items, nil
}

func (s *stubCatalog) GetDetails(ctx context.Context, id string) (*domain.MovieDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailsCalls = append(s.detailsCalls, id)
	d, ok := s.details[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return d, nil
}

func (s *stubCatalog) searchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.searchCalls)
}

func newTestModel(repo domain.CatalogRepository) Model {
	m := NewModel(
		service.NewSearchController(repo, time.Second, 0, nil),
		service.NewDetailsController(repo, time.Second, nil),
		watched.NewStore(),
		Options{},
	)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

// runCmd executes cmd and returns the messages it produced, expanding batches
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(cmdTimeout):
		return nil
	}
}

// send delivers msg and then feeds any catalog results it triggers back into the model
func send(m Model, msg tea.Msg) Model {
	next, cmd := m.Update(msg)
	m = next.(Model)
	for _, out := range runCmd(cmd) {
		switch out.(type) {
		case SearchResultsMsg, DetailsLoadedMsg:
			m = send(m, out)
		}
	}
	return m
}

// sendRaw delivers msg and returns the produced messages without applying them
func sendRaw(m Model, msg tea.Msg) (Model, []tea.Msg) {
	next, cmd := m.Update(msg)
	return next.(Model), runCmd(cmd)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
)

// openFirstResult searches for query and opens the first hit
func openFirstResult(t *testing.T, m Model, query string) Model {
	t.Helper()
	m = send(m, keyRunes(query))
	m = send(m, enterKey) // leave the search bar
	m = send(m, enterKey) // open the highlighted result
	if m.Inspector.Details() == nil {
		t.Fatalf("details for %q were not loaded", query)
	}
	return m
}

func TestSearchPopulatesResults(t *testing.T) {
	repo := newStubCatalog()
	m := newTestModel(repo)

	m = send(m, keyRunes("batman"))

	s := m.Session()
	if s.Query != "batman" {
		t.Errorf("Query = %q", s.Query)
	}
	if len(s.SearchResults) != 2 || s.SearchResults[0].ID != "tt0372784" {
		t.Fatalf("SearchResults = %+v", s.SearchResults)
	}
	if s.SearchLoading || s.SearchError != "" {
		t.Errorf("loading=%v err=%q after success", s.SearchLoading, s.SearchError)
	}
	if m.ResultsColumn.ItemCount() != 2 {
		t.Errorf("results column has %d rows", m.ResultsColumn.ItemCount())
	}
}

func TestShortQuerySkipsCatalog(t *testing.T) {
	repo := newStubCatalog()
	m := newTestModel(repo)

	m = send(m, keyRunes("b"))

	if repo.searchCount() != 0 {
		t.Errorf("catalog called %d times for a one-letter query", repo.searchCount())
	}
	if len(m.Session().SearchResults) != 0 {
		t.Error("results should be empty")
	}
}

func TestUnknownQueryShowsNotFound(t *testing.T) {
	m := newTestModel(newStubCatalog())

	m = send(m, keyRunes("zzzz"))

	s := m.Session()
	if s.SearchError != service.MsgMovieNotFound {
		t.Errorf("SearchError = %q", s.SearchError)
	}
	if len(s.SearchResults) != 0 {
		t.Error("results should be cleared")
	}
}

func TestStaleSearchResultIsIgnored(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = send(m, keyRunes("batman"))

	m = send(m, SearchResultsMsg{Result: service.SearchResult{
		Gen:   0,
		Query: "old",
		Items: []domain.SearchResultItem{{ID: "tt0000001", Title: "Old"}},
	}})

	if got := m.Session().SearchResults; len(got) != 2 {
		t.Errorf("stale result replaced the list: %+v", got)
	}
}

func TestSelectOpensDetails(t *testing.T) {
	repo := newStubCatalog()
	m := newTestModel(repo)

	m = openFirstResult(t, m, "batman")

	s := m.Session()
	if s.SelectedID != "tt0372784" {
		t.Errorf("SelectedID = %q", s.SelectedID)
	}
	if s.DetailsLoading {
		t.Error("details should have finished loading")
	}
	if m.Focus != FocusRight {
		t.Errorf("focus = %d, want right pane", m.Focus)
	}
	if got := m.WindowTitle(); got != "Movie | Batman Begins" {
		t.Errorf("window title = %q", got)
	}
}

func TestSelectingOpenMovieClosesIt(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = openFirstResult(t, m, "batman")

	m = send(m, tabKey) // right -> search
	m = send(m, tabKey) // search -> results
	m = send(m, enterKey)

	if m.Session().SelectedID != "" {
		t.Errorf("SelectedID = %q, want closed", m.Session().SelectedID)
	}
	if got := m.WindowTitle(); got != "usePopcorn" {
		t.Errorf("window title = %q, want default", got)
	}
}

func TestEscapeClosesSelection(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = openFirstResult(t, m, "batman")

	m = send(m, escKey)

	if m.Selection.IsOpen() {
		t.Error("escape should close the selection")
	}
	if m.Inspector.Details() != nil {
		t.Error("inspector should be cleared")
	}
	if m.WindowTitle() != "usePopcorn" {
		t.Errorf("window title = %q", m.WindowTitle())
	}
}

func TestLateDetailsAfterCloseAreDiscarded(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = send(m, keyRunes("batman"))
	m = send(m, enterKey)

	// Capture the fetch without applying it, then close the selection
	m, pending := sendRaw(m, enterKey)
	m = send(m, escKey)

	for _, msg := range pending {
		if _, ok := msg.(DetailsLoadedMsg); ok {
			m = send(m, msg)
		}
	}

	if m.Inspector.Details() != nil || m.Selection.IsOpen() {
		t.Error("a fetch for a closed selection must not be applied")
	}
}

func TestRateAndAddToWatched(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = openFirstResult(t, m, "batman")

	m = send(m, keyRunes("9"))
	if m.Inspector.Rating() != 9 {
		t.Fatalf("rating = %d, want 9", m.Inspector.Rating())
	}
	m = send(m, keyRunes("a"))

	s := m.Session()
	if len(s.Watched) != 1 || s.Watched[0].UserRating != 9 || s.Watched[0].Title != "Batman Begins" {
		t.Fatalf("Watched = %+v", s.Watched)
	}
	if s.SelectedID != "" {
		t.Error("adding should close the selection")
	}
	if m.StatusMsg == "" || m.StatusIsErr {
		t.Errorf("status = %q (err=%v)", m.StatusMsg, m.StatusIsErr)
	}

	sum := m.Watched.Summary()
	if sum.Count != 1 || sum.AvgUserRating != 9 || sum.AvgRuntime != 140 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestAddRequiresRating(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = openFirstResult(t, m, "batman")

	m = send(m, keyRunes("a"))

	if m.Watched.Len() != 0 {
		t.Error("a movie without a rating must not be added")
	}
	if !m.Selection.IsOpen() {
		t.Error("selection should stay open")
	}
}

func TestWatchedMovieShowsExistingRating(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = openFirstResult(t, m, "batman")
	m = send(m, keyRunes("7"))
	m = send(m, keyRunes("a"))

	// Reopen the same movie from the results list
	m = send(m, tabKey) // right -> search
	m = send(m, tabKey) // search -> results
	m = send(m, enterKey)

	if m.Inspector.CanAdd() {
		t.Error("an already-watched movie cannot be added again")
	}
	m = send(m, keyRunes("3"))
	if got, _ := m.Watched.RatingFor("tt0372784"); got != 7 {
		t.Errorf("stored rating changed to %d", got)
	}
}

func TestDeleteWatched(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = openFirstResult(t, m, "batman")
	m = send(m, keyRunes("8"))
	m = send(m, keyRunes("a"))

	// Focus stays on the right pane, now showing the watched list
	if m.Focus != FocusRight || !m.WatchedColumn.IsFocused() {
		t.Fatalf("watched list should have focus, focus = %d", m.Focus)
	}
	m = send(m, keyRunes("x"))

	if m.Watched.Len() != 0 {
		t.Error("entry should be removed")
	}
	if m.WatchedColumn.ItemCount() != 0 {
		t.Error("watched column should be empty")
	}
}

func TestNewSearchClosesSelection(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = openFirstResult(t, m, "batman")

	m = send(m, tabKey) // right -> search
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	m = send(m, keyRunes("dark knight"))

	s := m.Session()
	if s.SelectedID != "" {
		t.Error("a new search should close the selection")
	}
	if len(s.SearchResults) != 1 || s.SearchResults[0].ID != "tt0468569" {
		t.Errorf("SearchResults = %+v", s.SearchResults)
	}
}

func TestResultsIgnoreSelectWhileSearchLoads(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = send(m, keyRunes("batman"))

	// Hold back the "batmanx" result so the search stays in flight
	m, pending := sendRaw(m, keyRunes("x"))
	if !m.Session().SearchLoading {
		t.Fatal("search should be loading")
	}
	m = send(m, enterKey) // leave the search bar
	m = send(m, enterKey) // rows from the previous search are under the spinner

	if m.Selection.IsOpen() {
		t.Fatalf("opened %q from a stale result set", m.Selection.ID())
	}

	for _, msg := range pending {
		if _, ok := msg.(SearchResultsMsg); ok {
			m = send(m, msg)
		}
	}

	s := m.Session()
	if s.SearchError != service.MsgMovieNotFound {
		t.Errorf("SearchError = %q", s.SearchError)
	}
	if s.SelectedID != "" {
		t.Errorf("SelectedID = %q, want closed", s.SelectedID)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(newStubCatalog())

	// q types into the search bar
	next, _ := m.Update(keyRunes("q"))
	m = next.(Model)
	if m.Omnibar.Query() != "q" {
		t.Errorf("query = %q, want q", m.Omnibar.Query())
	}

	m = send(m, enterKey)
	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Error("q outside the search bar should quit")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestCollapseBoxes(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = send(m, keyRunes("batman"))
	m = send(m, enterKey)

	m = send(m, keyRunes("["))
	if !m.ResultsColumn.IsCollapsed() {
		t.Error("[ should collapse the results box")
	}
	if m.Focus != FocusRight {
		t.Errorf("focus should move off the collapsed box, got %d", m.Focus)
	}

	m = send(m, keyRunes("]"))
	if !m.RightCollapsed || !m.WatchedColumn.IsCollapsed() {
		t.Error("] should collapse the right box")
	}
}

func TestInitialQuery(t *testing.T) {
	repo := newStubCatalog()
	m := NewModel(
		service.NewSearchController(repo, time.Second, 0, nil),
		service.NewDetailsController(repo, time.Second, nil),
		watched.NewStore(),
		Options{InitialQuery: "batman"},
	)

	for _, msg := range runCmd(m.initCmd) {
		if _, ok := msg.(SearchResultsMsg); ok {
			m = send(m, msg)
		}
	}

	if m.Omnibar.Query() != "batman" || len(m.Session().SearchResults) != 2 {
		t.Errorf("initial query not applied: %q / %d", m.Omnibar.Query(), len(m.Session().SearchResults))
	}
}

func TestViewRendersSummary(t *testing.T) {
	m := newTestModel(newStubCatalog())
	m = openFirstResult(t, m, "batman")
	m = send(m, keyRunes("9"))
	m = send(m, keyRunes("a"))

	view := m.View()
	for _, want := range []string{"usePopcorn", "Found 2 results", "MOVIES YOU WATCHED", "9.00", "140.00 min"} {
		if !containsPlain(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func containsPlain(view, want string) bool {
	return strings.Contains(ansi.Strip(view), want)
}
