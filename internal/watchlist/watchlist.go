// Package watchlist keeps the user's ordered, de-duplicated list of movies
// and mirrors every change to the persisted store.
package watchlist

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/five82/marquee/internal/kv"
	"github.com/five82/marquee/internal/tmdb"
)

// StoreKey is the persisted key holding the JSON-encoded watchlist.
const StoreKey = "movieWatchlist"

// Options configure a Manager.
type Options struct {
	Logger *slog.Logger
	// OnChange runs after every mutation that changed the list.
	OnChange func()
}

// Manager owns the watchlist. It is not safe for concurrent use; the UI
// loop is its only caller.
type Manager struct {
	store    kv.Store
	logger   *slog.Logger
	onChange []func()
	movies   []tmdb.Movie
}

// Load reads the watchlist from store. Missing or malformed data yields an
// empty list; Load never fails.
func Load(store kv.Store, opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &Manager{
		store:  store,
		logger: logger,
	}
	m.AddOnChange(opts.OnChange)

	if store == nil {
		return m
	}
	raw, ok, err := store.Get(StoreKey)
	if err != nil {
		logger.Warn("watchlist read failed; starting empty", "error", err)
		return m
	}
	if !ok || raw == "" {
		return m
	}

	var movies []tmdb.Movie
	if err := json.Unmarshal([]byte(raw), &movies); err != nil {
		logger.Warn("watchlist data malformed; starting empty", "error", err)
		return m
	}
	m.movies = dedupe(movies)
	return m
}

// AddOnChange registers fn to run after every change, after the hooks
// already registered.
func (m *Manager) AddOnChange(fn func()) {
	if fn != nil {
		m.onChange = append(m.onChange, fn)
	}
}

// Add appends movie unless a movie with the same ID is already present.
// It reports whether the list changed.
func (m *Manager) Add(movie tmdb.Movie) bool {
	if m.Contains(movie.ID) {
		return false
	}
	m.movies = append(m.movies, movie)
	m.persist()
	m.notify()
	return true
}

// Remove drops the movie with id. It reports whether the list changed; an
// absent id leaves both memory and store untouched.
func (m *Manager) Remove(id int64) bool {
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}
	next := make([]tmdb.Movie, 0, len(m.movies)-1)
	next = append(next, m.movies[:idx]...)
	next = append(next, m.movies[idx+1:]...)
	m.movies = next
	m.persist()
	m.notify()
	return true
}

// Contains reports whether a movie with id is on the list.
func (m *Manager) Contains(id int64) bool {
	return m.indexOf(id) >= 0
}

// All returns a copy of the list in insertion order.
func (m *Manager) All() []tmdb.Movie {
	out := make([]tmdb.Movie, len(m.movies))
	copy(out, m.movies)
	return out
}

// Len returns the number of movies on the list.
func (m *Manager) Len() int {
	return len(m.movies)
}

// At returns the movie at index.
func (m *Manager) At(index int) (tmdb.Movie, bool) {
	if index < 0 || index >= len(m.movies) {
		return tmdb.Movie{}, false
	}
	return m.movies[index], true
}

func (m *Manager) indexOf(id int64) int {
	for i, movie := range m.movies {
		if movie.ID == id {
			return i
		}
	}
	return -1
}

// persist writes the full list. Failures are logged and swallowed; the
// in-memory list stays authoritative for the session.
func (m *Manager) persist() {
	if m.store == nil {
		return
	}
	movies := m.movies
	if movies == nil {
		movies = []tmdb.Movie{}
	}
	bytes, err := json.Marshal(movies)
	if err != nil {
		m.logger.Error("watchlist encode failed", "error", err)
		return
	}
	if err := m.store.Set(StoreKey, string(bytes)); err != nil {
		m.logger.Error("watchlist save failed", "error", err, "count", len(movies))
	}
}

func (m *Manager) notify() {
	for _, fn := range m.onChange {
		fn()
	}
}

// dedupe keeps the first occurrence of every ID. Hand-edited stores are the
// only source of duplicates.
func dedupe(movies []tmdb.Movie) []tmdb.Movie {
	seen := make(map[int64]bool, len(movies))
	out := make([]tmdb.Movie, 0, len(movies))
	for _, movie := range movies {
		if seen[movie.ID] {
			continue
		}
		seen[movie.ID] = true
		out = append(out, movie)
	}
	return out
}
