package state

import (
	"errors"
	"io"
	"log/slog"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/kv"
	"github.com/five82/marquee/internal/poll"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/tmdb"
	"github.com/five82/marquee/internal/watchlist"
)

// Notices shown to the user.
const (
	NoticeNeedCandidates = "Add at least 2 movies to your watchlist to create a poll!"
	NoticeNoMovies       = "No movies found"
	NoticeRandomFailed   = "Could not pick a random movie"
)

// Modal identifies the dialog covering the main view.
type Modal int

const (
	ModalNone Modal = iota
	ModalDetail
	ModalPollSetup
)

// GridStatus describes what the results grid should show.
type GridStatus int

const (
	GridLoading GridStatus = iota
	GridReady
	GridEmpty
	GridError
)

// Options configure a Session.
type Options struct {
	Store kv.Store
	// Watchlist keeps its own change hooks; the Session adds one of its own.
	Watchlist *watchlist.Manager
	Polls     *poll.Engine
	Logger    *slog.Logger
}

// Session is the application state for one run: watchlist, poll, theme,
// current results, and dialog state. Every mutation goes through Dispatch
// and must happen on the UI goroutine.
type Session struct {
	store     kv.Store
	logger    *slog.Logger
	watchlist *watchlist.Manager
	polls     *poll.Engine

	theme    prefs.Theme
	query    string
	genreIdx int
	genres   []catalog.Genre

	results      []tmdb.Movie
	grid         GridStatus
	gridErr      error
	gridSeq      uint64
	gridInFlight bool

	pickSeq      uint64
	pickInFlight bool

	modal  Modal
	detail tmdb.Movie
	notice string

	watchlistVersion uint64
}

// New builds a Session. A nil Watchlist is loaded from Store; a nil Polls
// gets a fresh engine.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		store:  opts.Store,
		logger: logger,
		polls:  opts.Polls,
		theme:  prefs.LoadTheme(opts.Store),
		genres: catalog.Genres(),
		grid:   GridLoading,
	}

	s.watchlist = opts.Watchlist
	if s.watchlist == nil {
		s.watchlist = watchlist.Load(opts.Store, watchlist.Options{Logger: logger})
	}
	s.watchlist.AddOnChange(func() { s.watchlistVersion++ })

	if s.polls == nil {
		s.polls = poll.NewEngine()
	}
	return s
}

// Dispatch applies intent and returns the catalog work it needs, or nil.
func (s *Session) Dispatch(intent Intent) Effect {
	switch in := intent.(type) {
	case ToggleTheme:
		s.theme = s.theme.Toggle()
		if err := prefs.SaveTheme(s.store, s.theme); err != nil {
			s.logger.Warn("theme save failed", "theme", s.theme, "error", err)
		}

	case SearchChanged:
		s.query = in.Query
		if catalog.IsReset(in.Query) {
			return s.nextGridFetch(FetchTrending{})
		}
		if catalog.ShouldSearch(in.Query) {
			return s.nextGridFetch(FetchSearch{Query: in.Query})
		}

	case ShowTrending:
		return s.nextGridFetch(FetchTrending{})

	case PickRandom:
		s.pickSeq++
		s.pickInFlight = true
		return FetchRandom{Seq: s.pickSeq, Genre: s.Genre().ID}

	case CycleGenre:
		s.genreIdx = (s.genreIdx + 1) % len(s.genres)

	case OpenPollSetup:
		s.modal = ModalPollSetup

	case CreatePoll:
		if err := s.polls.Create(s.watchlist.All()); err != nil {
			if errors.Is(err, poll.ErrInsufficientCandidates) {
				s.notice = NoticeNeedCandidates
			} else {
				s.logger.Error("poll create failed", "error", err)
			}
			return nil
		}
		s.logger.Info("poll created", "candidates", s.watchlist.Len())
		if s.modal == ModalPollSetup {
			s.modal = ModalNone
		}

	case SelectResult:
		if in.Index < 0 || in.Index >= len(s.results) {
			return nil
		}
		s.openDetail(s.results[in.Index])

	case ShowMovie:
		s.openDetail(in.Movie)

	case ToggleWatchlist:
		if s.modal != ModalDetail {
			return nil
		}
		if s.watchlist.Contains(s.detail.ID) {
			s.watchlist.Remove(s.detail.ID)
		} else {
			s.watchlist.Add(s.detail)
		}

	case RemoveWatchlistAt:
		if movie, ok := s.watchlist.At(in.Index); ok {
			s.watchlist.Remove(movie.ID)
		}

	case Vote:
		s.polls.Vote(in.MovieID)

	case ClearPoll:
		s.polls.Clear()

	case CloseModal:
		s.modal = ModalNone

	case DismissNotice:
		s.notice = ""

	case ResultsLoaded:
		s.applyResults(in)

	case RandomLoaded:
		s.applyRandom(in)
	}
	return nil
}

func (s *Session) nextGridFetch(effect Effect) Effect {
	s.gridSeq++
	s.gridInFlight = true
	switch e := effect.(type) {
	case FetchTrending:
		e.Seq = s.gridSeq
		return e
	case FetchSearch:
		e.Seq = s.gridSeq
		return e
	}
	return effect
}

func (s *Session) applyResults(in ResultsLoaded) {
	if in.Seq != s.gridSeq {
		s.logger.Debug("dropping superseded results", "seq", in.Seq, "latest", s.gridSeq)
		return
	}
	s.gridInFlight = false

	if in.Err != nil {
		s.logger.Warn("catalog request failed", "error", in.Err)
		s.results = nil
		s.grid = GridError
		s.gridErr = in.Err
		return
	}

	s.results = make([]tmdb.Movie, len(in.Movies))
	copy(s.results, in.Movies)
	s.gridErr = nil
	if len(s.results) == 0 {
		s.grid = GridEmpty
		return
	}
	s.grid = GridReady
}

func (s *Session) applyRandom(in RandomLoaded) {
	if in.Seq != s.pickSeq {
		s.logger.Debug("dropping superseded random pick", "seq", in.Seq, "latest", s.pickSeq)
		return
	}
	s.pickInFlight = false

	if in.Err != nil {
		if errors.Is(in.Err, catalog.ErrNoResults) {
			s.notice = NoticeNoMovies
		} else {
			s.logger.Warn("random pick failed", "error", in.Err)
			s.notice = NoticeRandomFailed
		}
		return
	}
	s.openDetail(in.Movie)
}

func (s *Session) openDetail(movie tmdb.Movie) {
	s.detail = movie
	s.modal = ModalDetail
}

// Theme returns the active theme.
func (s *Session) Theme() prefs.Theme { return s.theme }

// Query returns the last search input.
func (s *Session) Query() string { return s.query }

// Genre returns the random-discovery genre filter.
func (s *Session) Genre() catalog.Genre { return s.genres[s.genreIdx] }

// Results returns a copy of the movies in the grid.
func (s *Session) Results() []tmdb.Movie {
	out := make([]tmdb.Movie, len(s.results))
	copy(out, s.results)
	return out
}

// GridStatus reports what the grid should show.
func (s *Session) GridStatus() GridStatus { return s.grid }

// GridErr returns the error behind GridError.
func (s *Session) GridErr() error { return s.gridErr }

// Loading reports whether a grid or random request is outstanding.
func (s *Session) Loading() bool { return s.gridInFlight || s.pickInFlight }

// Watchlist returns the watchlist in insertion order.
func (s *Session) Watchlist() []tmdb.Movie { return s.watchlist.All() }

// InWatchlist reports whether id is on the watchlist.
func (s *Session) InWatchlist(id int64) bool { return s.watchlist.Contains(id) }

// WatchlistVersion increases on every watchlist change.
func (s *Session) WatchlistVersion() uint64 { return s.watchlistVersion }

// PollSummary tallies the active poll; ok is false when none is running.
func (s *Session) PollSummary() (poll.Summary, bool) { return s.polls.Summary() }

// Modal returns the open dialog.
func (s *Session) Modal() Modal { return s.modal }

// Detail returns the movie in the detail dialog.
func (s *Session) Detail() (tmdb.Movie, bool) {
	if s.modal != ModalDetail {
		return tmdb.Movie{}, false
	}
	return s.detail, true
}

// Notice returns the pending user notice, if any.
func (s *Session) Notice() string { return s.notice }
