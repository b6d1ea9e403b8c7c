// Package catalog resolves the three query modes Marquee offers on top of the
// TMDB client: weekly trending, free-text search, and random discovery.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/five82/marquee/internal/tmdb"
)

// ErrNoResults is returned by Random when the chosen page has no movies.
var ErrNoResults = errors.New("catalog: no movies found")

const (
	// MaxResults caps every list shown in the grid. Longer pages are truncated.
	MaxResults = 12

	// RandomPages is the number of discover pages Random draws from.
	RandomPages = 5

	// minSearchRunes is the shortest input that triggers a search.
	minSearchRunes = 3
)

// Genre is a TMDB genre filter for random discovery. ID zero means any genre.
type Genre struct {
	ID   int
	Name string
}

var genres = []Genre{
	{ID: 0, Name: "Any genre"},
	{ID: 28, Name: "Action"},
	{ID: 35, Name: "Comedy"},
	{ID: 18, Name: "Drama"},
	{ID: 27, Name: "Horror"},
	{ID: 10749, Name: "Romance"},
	{ID: 878, Name: "Science Fiction"},
	{ID: 53, Name: "Thriller"},
	{ID: 16, Name: "Animation"},
}

// Genres returns the selectable genre filters, "Any genre" first.
func Genres() []Genre {
	out := make([]Genre, len(genres))
	copy(out, genres)
	return out
}

// ShouldSearch reports whether input is long enough to query the catalog.
// Surrounding whitespace does not count.
func ShouldSearch(input string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(input)) >= minSearchRunes
}

// IsReset reports whether input asks for the trending list again. Blank
// input counts as empty.
func IsReset(input string) bool {
	return strings.TrimSpace(input) == ""
}

// Options configure a Resolver.
type Options struct {
	// Rand drives page and movie selection in Random. Nil uses the
	// process-wide generator.
	Rand   *rand.Rand
	Logger *slog.Logger
}

// Resolver applies result caps and fallbacks over a tmdb.Fetcher.
type Resolver struct {
	fetcher tmdb.Fetcher
	logger  *slog.Logger

	mu   sync.Mutex
	rand *rand.Rand
}

// New builds a Resolver over fetcher.
func New(fetcher tmdb.Fetcher, opts Options) *Resolver {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{
		fetcher: fetcher,
		logger:  logger,
		rand:    opts.Rand,
	}
}

// Trending returns up to MaxResults of this week's trending movies.
func (r *Resolver) Trending(ctx context.Context) ([]tmdb.Movie, error) {
	movies, err := r.fetcher.Trending(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trending: %w", err)
	}
	return capResults(movies), nil
}

// Search returns up to MaxResults matches for query. An empty or blank query
// falls back to Trending.
func (r *Resolver) Search(ctx context.Context, query string) ([]tmdb.Movie, error) {
	if IsReset(query) {
		return r.Trending(ctx)
	}
	movies, err := r.fetcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return capResults(movies), nil
}

// Random picks one movie from a uniformly chosen discover page in
// 1..RandomPages. genre zero means any genre.
func (r *Resolver) Random(ctx context.Context, genre int) (tmdb.Movie, error) {
	page := r.intN(RandomPages) + 1

	movies, err := r.fetcher.Discover(ctx, tmdb.DiscoverQuery{Page: page, Genre: genre})
	if err != nil {
		r.logger.Warn("random discovery failed", "page", page, "genre", genre, "error", err)
		return tmdb.Movie{}, fmt.Errorf("discover page %d: %w", page, err)
	}
	if len(movies) == 0 {
		r.logger.Warn("random discovery page was empty", "page", page, "genre", genre)
		return tmdb.Movie{}, ErrNoResults
	}
	return movies[r.intN(len(movies))], nil
}

func (r *Resolver) intN(n int) int {
	if r.rand == nil {
		return rand.IntN(n)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

func capResults(movies []tmdb.Movie) []tmdb.Movie {
	if len(movies) > MaxResults {
		movies = movies[:MaxResults]
	}
	out := make([]tmdb.Movie, len(movies))
	copy(out, movies)
	return out
}
