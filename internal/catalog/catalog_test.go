package catalog

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/five82/marquee/internal/tmdb"
)

type fakeFetcher struct {
	trending    []tmdb.Movie
	search      []tmdb.Movie
	pages       map[int][]tmdb.Movie
	err         error
	searchCalls []string
	discover    []tmdb.DiscoverQuery
	trendCalls  int
}

func (f *fakeFetcher) Trending(context.Context) ([]tmdb.Movie, error) {
	f.trendCalls++
	return f.trending, f.err
}

func (f *fakeFetcher) Search(_ context.Context, query string) ([]tmdb.Movie, error) {
	f.searchCalls = append(f.searchCalls, query)
	return f.search, f.err
}

func (f *fakeFetcher) Discover(_ context.Context, q tmdb.DiscoverQuery) ([]tmdb.Movie, error) {
	f.discover = append(f.discover, q)
	return f.pages[q.Page], f.err
}

func movies(n int) []tmdb.Movie {
	out := make([]tmdb.Movie, n)
	for i := range out {
		out[i] = tmdb.Movie{ID: int64(i + 1), Title: "M"}
	}
	return out
}

func allPages(list []tmdb.Movie) map[int][]tmdb.Movie {
	pages := make(map[int][]tmdb.Movie, RandomPages)
	for p := 1; p <= RandomPages; p++ {
		pages[p] = list
	}
	return pages
}

func TestTrending_CapsResults(t *testing.T) {
	f := &fakeFetcher{trending: movies(20)}
	r := New(f, Options{})

	got, err := r.Trending(context.Background())
	if err != nil {
		t.Fatalf("Trending returned error: %v", err)
	}
	if len(got) != MaxResults {
		t.Fatalf("len = %d, want %d", len(got), MaxResults)
	}
	if got[0].ID != 1 || got[MaxResults-1].ID != MaxResults {
		t.Fatalf("Trending should keep the first %d in order, got %v..%v", MaxResults, got[0].ID, got[MaxResults-1].ID)
	}
}

func TestTrending_ShortListUnchanged(t *testing.T) {
	f := &fakeFetcher{trending: movies(3)}
	got, err := New(f, Options{}).Trending(context.Background())
	if err != nil {
		t.Fatalf("Trending returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}

func TestSearch_EmptyQueryFallsBackToTrending(t *testing.T) {
	f := &fakeFetcher{trending: movies(2), search: movies(5)}
	got, err := New(f, Options{}).Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 2 || f.trendCalls != 1 || len(f.searchCalls) != 0 {
		t.Fatalf("empty search should load trending: got %d movies, trending calls %d, search calls %v", len(got), f.trendCalls, f.searchCalls)
	}
}

func TestSearch_BlankQueryFallsBackToTrending(t *testing.T) {
	f := &fakeFetcher{trending: movies(4), search: movies(5)}
	got, err := New(f, Options{}).Search(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != 4 || f.trendCalls != 1 || len(f.searchCalls) != 0 {
		t.Fatalf("blank search should load trending: got %d movies, trending calls %d, search calls %v", len(got), f.trendCalls, f.searchCalls)
	}
}

func TestSearch_CapsAndWrapsErrors(t *testing.T) {
	f := &fakeFetcher{search: movies(30)}
	r := New(f, Options{})

	got, err := r.Search(context.Background(), "alien")
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(got) != MaxResults {
		t.Fatalf("len = %d, want %d", len(got), MaxResults)
	}

	boom := errors.New("boom")
	f.err = boom
	if _, err := r.Search(context.Background(), "alien"); !errors.Is(err, boom) {
		t.Fatalf("Search error = %v, want wrapped boom", err)
	}
}

func TestRandom_PagesWithinRangeAndPassesGenre(t *testing.T) {
	f := &fakeFetcher{pages: allPages(movies(4))}
	r := New(f, Options{Rand: rand.New(rand.NewPCG(1, 2))})

	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		m, err := r.Random(context.Background(), 35)
		if err != nil {
			t.Fatalf("Random returned error: %v", err)
		}
		if m.ID < 1 || m.ID > 4 {
			t.Fatalf("Random picked id %d outside the page", m.ID)
		}
	}
	for _, q := range f.discover {
		if q.Page < 1 || q.Page > RandomPages {
			t.Fatalf("page %d outside 1..%d", q.Page, RandomPages)
		}
		if q.Genre != 35 {
			t.Fatalf("genre = %d, want 35", q.Genre)
		}
		seen[q.Page] = true
	}
	if len(seen) != RandomPages {
		t.Fatalf("200 draws visited pages %v, want all %d", seen, RandomPages)
	}
}

func TestRandom_EmptyPageIsSoftFailure(t *testing.T) {
	f := &fakeFetcher{pages: map[int][]tmdb.Movie{}}
	_, err := New(f, Options{}).Random(context.Background(), 0)
	if !errors.Is(err, ErrNoResults) {
		t.Fatalf("Random error = %v, want ErrNoResults", err)
	}
}

func TestRandom_FetchErrorWrapped(t *testing.T) {
	boom := errors.New("offline")
	f := &fakeFetcher{err: boom}
	_, err := New(f, Options{}).Random(context.Background(), 0)
	if !errors.Is(err, boom) {
		t.Fatalf("Random error = %v, want wrapped offline", err)
	}
}

func TestShouldSearchAndIsReset(t *testing.T) {
	cases := []struct {
		in     string
		search bool
		reset  bool
	}{
		{"", false, true},
		{"a", false, false},
		{"ab", false, false},
		{"abc", true, false},
		{"été", true, false},
		{"   ", false, true},
		{"\t\n", false, true},
		{" ab ", false, false},
		{"  abc", true, false},
	}
	for _, tc := range cases {
		if got := ShouldSearch(tc.in); got != tc.search {
			t.Fatalf("ShouldSearch(%q) = %v, want %v", tc.in, got, tc.search)
		}
		if got := IsReset(tc.in); got != tc.reset {
			t.Fatalf("IsReset(%q) = %v, want %v", tc.in, got, tc.reset)
		}
	}
}

func TestGenres_AnyFirstAndCopied(t *testing.T) {
	g := Genres()
	if len(g) == 0 || g[0].ID != 0 {
		t.Fatalf("Genres()[0] = %#v, want any-genre entry", g)
	}
	g[0].Name = "mutated"
	if Genres()[0].Name == "mutated" {
		t.Fatalf("Genres should return a copy")
	}
}
