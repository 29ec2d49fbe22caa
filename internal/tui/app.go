package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/popcorn/internal/domain"
	"github.com/mmcdole/popcorn/internal/selection"
	"github.com/mmcdole/popcorn/internal/service"
	"github.com/mmcdole/popcorn/internal/tui/components"
	"github.com/mmcdole/popcorn/internal/tui/styles"
	"github.com/mmcdole/popcorn/internal/watched"
)

// Focus identifies the pane receiving keyboard input
type Focus int

const (
	FocusSearch Focus = iota
	FocusResults
	FocusRight // inspector when a movie is open, watched list otherwise
)

const (
	tickInterval    = 100 * time.Millisecond
	statusDuration  = 3 * time.Second
	errorDuration   = 5 * time.Second
	defaultAppTitle = "usePopcorn"
)

// Options configures the UI side of the model
type Options struct {
	AppTitle     string
	MaxRating    int
	InitialQuery string
}

// Model is the main Bubble Tea model for the application.
// It owns the session and wires the controllers to the views.
type Model struct {
	Ready bool

	// Session owners
	Search    *service.SearchController
	Details   *service.DetailsController
	Selection selection.Machine
	Watched   *watched.Store

	// UI Components
	Omnibar       components.Omnibar
	ResultsColumn *components.ListColumn
	WatchedColumn *components.ListColumn
	Inspector     components.Inspector
	Help          help.Model

	Focus Focus

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg      string
	StatusIsErr    bool
	SpinnerFrame   int
	RightCollapsed bool

	appTitle    string
	windowTitle string
	initCmd     tea.Cmd
}

// NewModel creates a new application model
func NewModel(
	search *service.SearchController,
	details *service.DetailsController,
	store *watched.Store,
	opts Options,
) Model {
	if opts.AppTitle == "" {
		opts.AppTitle = defaultAppTitle
	}
	if opts.MaxRating <= 0 {
		opts.MaxRating = domain.MaxUserRating
	}

	m := Model{
		Search:        search,
		Details:       details,
		Watched:       store,
		Omnibar:       components.NewOmnibar(),
		ResultsColumn: components.NewResultsColumn(),
		WatchedColumn: components.NewWatchedColumn(),
		Inspector:     components.NewInspector(opts.MaxRating),
		Help:          newHelp(),
		Focus:         FocusSearch,
		appTitle:      opts.AppTitle,
		windowTitle:   opts.AppTitle,
	}
	m.WatchedColumn.SetWatched(store.Entries())
	m.setFocus(FocusSearch)

	if opts.InitialQuery != "" {
		m.Omnibar.SetQuery(opts.InitialQuery)
		m.Omnibar.QueryChanged()
		m.initCmd = m.onQueryChange(opts.InitialQuery)
	}
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.appTitle),
		textinput.Blink,
		TickCmd(tickInterval),
		m.initCmd,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		m.ResultsColumn.SetSpinnerFrame(m.SpinnerFrame)
		m.Inspector.SetSpinnerFrame(m.SpinnerFrame)
		return m, TickCmd(tickInterval)

	case SearchResultsMsg:
		return m, m.applySearch(msg.Result)

	case DetailsLoadedMsg:
		return m, m.applyDetails(msg.Result)

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other input-internal messages
	var cmd tea.Cmd
	m.Omnibar, cmd = m.Omnibar.Update(msg)
	return m, cmd
}

// Session returns a snapshot of the current session state
func (m Model) Session() service.Session {
	return service.Snapshot(m.Search, &m.Selection, m.Details, m.Watched)
}

// WindowTitle returns the title last sent to the terminal
func (m Model) WindowTitle() string {
	return m.windowTitle
}

// onQueryChange forwards a new search input value to the search controller.
// A qualifying query closes the open movie.
func (m *Model) onQueryChange(query string) tea.Cmd {
	req := m.Search.OnQueryChange(query)

	var cmds []tea.Cmd
	if req != nil {
		cmds = append(cmds, m.closeSelection())
	}
	m.syncResults()
	cmds = append(cmds, SearchCmd(req))
	return tea.Batch(cmds...)
}

// applySearch hands a finished search to the controller and refreshes the results pane
func (m *Model) applySearch(res service.SearchResult) tea.Cmd {
	if !m.Search.Apply(res) {
		return nil
	}

	var cmd tea.Cmd
	if res.Err == nil {
		cmd = m.closeSelection()
	}
	m.syncResults()
	return cmd
}

// applyDetails hands a finished detail fetch to the controller and refreshes the inspector
func (m *Model) applyDetails(res service.DetailsResult) tea.Cmd {
	if !m.Details.Apply(res) {
		return nil
	}
	m.syncInspector()
	return m.syncWindowTitle()
}

// selectItem toggles the open movie: opening a new id, or closing the one already open
func (m *Model) selectItem(id string) tea.Cmd {
	if id == "" {
		return nil
	}

	openID := m.Selection.Select(id)
	req := m.Details.OnSelectionChange(openID)
	if openID != "" {
		m.setFocus(FocusRight)
	}
	m.syncInspector()

	return tea.Batch(DetailsCmd(req), m.syncWindowTitle())
}

// closeSelection returns to the Closed state and cancels any detail fetch
func (m *Model) closeSelection() tea.Cmd {
	m.Selection.Close()
	m.Details.OnSelectionChange("")
	m.syncInspector()
	return m.syncWindowTitle()
}

// addWatched records the open movie with the pending rating
func (m *Model) addWatched() tea.Cmd {
	d := m.Inspector.Details()
	if d == nil || !m.Inspector.CanAdd() {
		return nil
	}

	entry := domain.NewWatchedEntry(*d, m.Inspector.Rating())
	if err := m.Watched.Add(entry); err != nil {
		if errors.Is(err, domain.ErrAlreadyWatched) {
			return m.setStatus(fmt.Sprintf("%s is already in your list", d.Title), true)
		}
		return m.setStatus("Could not add movie: "+err.Error(), true)
	}

	m.WatchedColumn.SetWatched(m.Watched.Entries())
	return tea.Batch(
		m.closeSelection(),
		m.setStatus(fmt.Sprintf("Added %s (%d ★)", d.Title, entry.UserRating), false),
	)
}

// deleteWatched removes the highlighted watched entry
func (m *Model) deleteWatched() tea.Cmd {
	entry := m.WatchedColumn.SelectedWatched()
	if entry == nil {
		return nil
	}
	if !m.Watched.Delete(entry.ID) {
		return nil
	}

	m.WatchedColumn.SetWatched(m.Watched.Entries())
	m.syncInspector()
	return m.setStatus("Removed "+entry.Title, false)
}

// quit tears down in-flight work and restores the terminal title
func (m *Model) quit() tea.Cmd {
	m.Search.Shutdown()
	m.Details.Shutdown()
	return tea.Sequence(tea.SetWindowTitle(m.appTitle), tea.Quit)
}

// syncWindowTitle emits a title change when the open record changes it
func (m *Model) syncWindowTitle() tea.Cmd {
	title := m.Details.WindowTitle(m.appTitle)
	if title == m.windowTitle {
		return nil
	}
	m.windowTitle = title
	return tea.SetWindowTitle(title)
}

// syncResults copies search controller state into the results pane and top bar
func (m *Model) syncResults() {
	results := m.Search.Results()
	m.ResultsColumn.SetLoading(m.Search.Loading())
	m.ResultsColumn.SetError(m.Search.Err())
	m.ResultsColumn.SetResults(results)
	m.Omnibar.SetResultCount(len(results))
}

// syncInspector copies detail controller and watched state into the inspector
func (m *Model) syncInspector() {
	id := m.Selection.ID()
	m.Inspector.SetLoading(m.Details.Loading())
	m.Inspector.SetError(m.Details.Err())
	m.Inspector.SetDetails(m.Details.Details())
	m.Inspector.SetWatched(m.Watched.RatingFor(id))

	m.ResultsColumn.SetOpenID(id)
	m.WatchedColumn.SetOpenID(id)
	m.applyFocus()
}

// setStatus shows a message in the footer and schedules its removal
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	if isErr {
		return ClearStatusCmd(errorDuration)
	}
	return ClearStatusCmd(statusDuration)
}

// setFocus moves keyboard focus to f
func (m *Model) setFocus(f Focus) {
	m.Focus = f
	m.applyFocus()
}

// applyFocus pushes the focus state down to the components.
// The right pane is either the inspector or the watched list depending on the selection.
func (m *Model) applyFocus() {
	if m.Focus == FocusSearch {
		m.Omnibar.Focus()
	} else {
		m.Omnibar.Blur()
	}
	right := m.Focus == FocusRight
	m.ResultsColumn.SetFocused(m.Focus == FocusResults)
	m.WatchedColumn.SetFocused(right && !m.Selection.IsOpen())
	m.Inspector.SetFocused(right && m.Selection.IsOpen())
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	return h
}
