package ui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/tmdb"
)

// Pane identifies the focused section of the main view.
type Pane int

const (
	PaneResults Pane = iota
	PaneWatchlist
	PanePoll
	paneCount
)

// Catalog is the movie source the UI runs requests against.
type Catalog interface {
	Trending(ctx context.Context) ([]tmdb.Movie, error)
	Search(ctx context.Context, query string) ([]tmdb.Movie, error)
	Random(ctx context.Context, genre int) (tmdb.Movie, error)
}

// PosterLinker builds poster image links.
type PosterLinker interface {
	PosterURL(m tmdb.Movie) string
}

// Options configures the UI.
type Options struct {
	Context        context.Context
	Session        *state.Session
	Catalog        Catalog
	Posters        PosterLinker
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx     context.Context
	session *state.Session
	catalog Catalog
	posters PosterLinker
	timeout time.Duration
	logger  *slog.Logger
	keys    keyMap

	// UI state
	theme     Theme
	width     int
	height    int
	ready     bool
	focus     Pane
	searching bool
	showHelp  bool
	now       time.Time

	// Widgets
	search  textinput.Model
	spinner spinner.Model

	// Selection per pane
	resultRow int
	watchRow  int
	pollRow   int

	// watchVersion is the last watchlist version the selection was fitted to.
	watchVersion uint64

	// Detail dialog
	detailViewport viewport.Model
	detailID       int64
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Cursor.SetMode(cursor.CursorStatic)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:            ctx,
		session:        opts.Session,
		catalog:        opts.Catalog,
		posters:        opts.Posters,
		timeout:        timeout,
		logger:         logger,
		keys:           DefaultKeyMap(),
		now:            time.Now(),
		search:         ti,
		spinner:        sp,
		detailViewport: viewport.New(detailWidth-6, 6),
	}
	m.applyTheme()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spinner.Tick,
		ageTickCmd(),
		m.dispatch(state.ShowTrending{}),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		model := next.(Model)
		model.syncWatchlist()
		return model, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = maxInt(m.width-8, 10)
		m.syncDetail(true)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ageTickMsg:
		m.now = time.Time(msg)
		return m, ageTickCmd()

	case state.ResultsLoaded:
		cmd := m.dispatch(msg)
		m.resultRow = clampRow(m.resultRow, len(m.session.Results()))
		return m, cmd

	case state.RandomLoaded:
		cmd := m.dispatch(msg)
		m.syncDetail(false)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.session.Notice() != "" {
		return m.renderNotice()
	}

	switch m.session.Modal() {
	case state.ModalDetail:
		return m.renderDetail()
	case state.ModalPollSetup:
		return m.renderPollSetup()
	}

	return m.renderMain()
}

// handleKey processes keyboard input. Overlays take keys before the panes do.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.session.Notice() != "" {
		m.session.Dispatch(state.DismissNotice{})
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch m.session.Modal() {
	case state.ModalDetail:
		return m.handleDetailKey(msg)
	case state.ModalPollSetup:
		return m.handlePollSetupKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.session.Dispatch(state.ToggleTheme{})
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Tab):
		m.focus = (m.focus + 1) % paneCount
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.focus = (m.focus + paneCount - 1) % paneCount
		return m, nil

	case key.Matches(msg, m.keys.Trending):
		m.search.SetValue("")
		m.resultRow = 0
		return m, m.dispatch(state.SearchChanged{Query: ""})

	case key.Matches(msg, m.keys.Random):
		return m, m.dispatch(state.PickRandom{})

	case key.Matches(msg, m.keys.CycleGenre):
		m.session.Dispatch(state.CycleGenre{})
		return m, nil

	case key.Matches(msg, m.keys.PollSetup):
		m.session.Dispatch(state.OpenPollSetup{})
		return m, nil

	case key.Matches(msg, m.keys.ClearPoll):
		m.session.Dispatch(state.ClearPoll{})
		m.pollRow = 0
		return m, nil
	}

	switch m.focus {
	case PaneResults:
		return m.handleResultsKey(msg)
	case PaneWatchlist:
		return m.handleWatchlistKey(msg)
	case PanePoll:
		return m.handlePollKey(msg)
	}
	return m, nil
}

// handleSearchKey feeds the search box and starts a query when the input
// changes enough to matter.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		m.focus = PaneResults
		return m, nil
	}

	before := m.search.Value()
	var inputCmd tea.Cmd
	m.search, inputCmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, inputCmd
	}
	m.resultRow = 0
	return m, tea.Batch(inputCmd, m.dispatch(state.SearchChanged{Query: m.search.Value()}))
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "q":
		m.session.Dispatch(state.CloseModal{})
	case key.Matches(msg, m.keys.ToggleWatch):
		m.session.Dispatch(state.ToggleWatchlist{})
	case key.Matches(msg, m.keys.ToggleTheme):
		m.session.Dispatch(state.ToggleTheme{})
		m.applyTheme()
	case key.Matches(msg, m.keys.Down):
		m.detailViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.detailViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePollSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.session.Dispatch(state.CreatePoll{})
		m.pollRow = 0
		if m.session.Modal() == state.ModalNone {
			m.focus = PanePoll
		}
	case key.Matches(msg, m.keys.Escape):
		m.session.Dispatch(state.CloseModal{})
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.session.Results())
	if count == 0 {
		return m, nil
	}
	if key.Matches(msg, m.keys.Confirm) {
		m.session.Dispatch(state.SelectResult{Index: m.resultRow})
		m.syncDetail(false)
		return m, nil
	}
	m.resultRow = moveRow(msg, m.keys, m.resultRow, count)
	return m, nil
}

func (m Model) handleWatchlistKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	movies := m.session.Watchlist()
	if len(movies) == 0 {
		return m, nil
	}
	m.watchRow = clampRow(m.watchRow, len(movies))

	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.session.Dispatch(state.ShowMovie{Movie: movies[m.watchRow]})
		m.syncDetail(false)
	case key.Matches(msg, m.keys.RemoveWatch):
		m.session.Dispatch(state.RemoveWatchlistAt{Index: m.watchRow})
	default:
		m.watchRow = moveRow(msg, m.keys, m.watchRow, len(movies))
	}
	return m, nil
}

func (m Model) handlePollKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	summary, ok := m.session.PollSummary()
	if !ok || len(summary.Entries) == 0 {
		return m, nil
	}
	m.pollRow = clampRow(m.pollRow, len(summary.Entries))

	if key.Matches(msg, m.keys.Confirm) {
		m.session.Dispatch(state.Vote{MovieID: summary.Entries[m.pollRow].Movie.ID})
		return m, nil
	}
	m.pollRow = moveRow(msg, m.keys, m.pollRow, len(summary.Entries))
	return m, nil
}

// moveRow applies navigation keys to a selection over count rows.
func moveRow(msg tea.KeyMsg, keys keyMap, row, count int) int {
	switch {
	case key.Matches(msg, keys.Down):
		row++
	case key.Matches(msg, keys.Up):
		row--
	case key.Matches(msg, keys.Top):
		row = 0
	case key.Matches(msg, keys.Bottom):
		row = count - 1
	}
	return clampRow(row, count)
}

// dispatch applies intent to the session and turns the resulting effect into
// a command.
// syncWatchlist keeps the watchlist selection on a row that still exists
// after the list changed.
func (m *Model) syncWatchlist() {
	if m.session == nil {
		return
	}
	version := m.session.WatchlistVersion()
	if version == m.watchVersion {
		return
	}
	m.watchVersion = version
	m.watchRow = clampRow(m.watchRow, len(m.session.Watchlist()))
}

func (m *Model) dispatch(intent state.Intent) tea.Cmd {
	if m.session == nil {
		return nil
	}
	return m.effectCmd(m.session.Dispatch(intent))
}

// effectCmd runs catalog work off the UI goroutine. Replies come back as
// intents carrying the sequence number of the request.
func (m *Model) effectCmd(effect state.Effect) tea.Cmd {
	if effect == nil || m.catalog == nil {
		return nil
	}
	ctx, catalog, timeout := m.ctx, m.catalog, m.timeout

	switch e := effect.(type) {
	case state.FetchTrending:
		return func() tea.Msg {
			reqCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			movies, err := catalog.Trending(reqCtx)
			return state.ResultsLoaded{Seq: e.Seq, Movies: movies, Err: err}
		}
	case state.FetchSearch:
		return func() tea.Msg {
			reqCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			movies, err := catalog.Search(reqCtx, e.Query)
			return state.ResultsLoaded{Seq: e.Seq, Movies: movies, Err: err}
		}
	case state.FetchRandom:
		return func() tea.Msg {
			reqCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			movie, err := catalog.Random(reqCtx, e.Genre)
			return state.RandomLoaded{Seq: e.Seq, Movie: movie, Err: err}
		}
	}
	m.logger.Warn("unhandled effect", "effect", effect)
	return nil
}

// syncDetail refreshes the overview viewport when a different movie opens or
// the terminal resizes.
func (m *Model) syncDetail(force bool) {
	movie, ok := m.session.Detail()
	if !ok {
		return
	}
	if !force && movie.ID == m.detailID {
		return
	}
	m.detailID = movie.ID

	width := detailWidth - 6
	if m.width > 0 && m.width-10 < width {
		width = maxInt(m.width-10, 10)
	}
	height := 6
	if m.height > 0 && m.height-16 < height {
		height = maxInt(m.height-16, 2)
	}
	m.detailViewport.Width = width
	m.detailViewport.Height = height
	m.detailViewport.SetContent(wrapText(overviewText(movie.Overview), width))
	m.detailViewport.GotoTop()
}

func (m *Model) applyTheme() {
	if m.session == nil {
		m.theme = lightTheme()
		return
	}
	m.theme = ThemeFor(m.session.Theme())
}

// Messages

type ageTickMsg time.Time

// Commands

func ageTickCmd() tea.Cmd {
	return tea.Tick(AgeRefreshInterval, func(t time.Time) tea.Msg {
		return ageTickMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
