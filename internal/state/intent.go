package state

import "github.com/five82/marquee/internal/tmdb"

// Intent is a user action or an asynchronous reply fed to Session.Dispatch.
type Intent interface {
	intent()
}

// ToggleTheme flips between light and dark and persists the choice.
type ToggleTheme struct{}

// SearchChanged carries the current search input.
type SearchChanged struct{ Query string }

// ShowTrending reloads the weekly trending list.
type ShowTrending struct{}

// PickRandom asks for a random movie in the selected genre.
type PickRandom struct{}

// CycleGenre advances the random-discovery genre filter.
type CycleGenre struct{}

// OpenPollSetup shows the poll creation dialog.
type OpenPollSetup struct{}

// CreatePoll starts a poll from the current watchlist.
type CreatePoll struct{}

// SelectResult opens the detail view for the grid entry at Index.
type SelectResult struct{ Index int }

// ShowMovie opens the detail view for Movie.
type ShowMovie struct{ Movie tmdb.Movie }

// ToggleWatchlist adds or removes the movie shown in the detail view.
type ToggleWatchlist struct{}

// RemoveWatchlistAt removes the watchlist entry at Index.
type RemoveWatchlistAt struct{ Index int }

// Vote counts one vote for MovieID in the active poll.
type Vote struct{ MovieID int64 }

// ClearPoll discards the active poll.
type ClearPoll struct{}

// CloseModal dismisses whichever dialog is open.
type CloseModal struct{}

// DismissNotice clears the notice line.
type DismissNotice struct{}

// ResultsLoaded is the reply to FetchTrending or FetchSearch.
type ResultsLoaded struct {
	Seq    uint64
	Movies []tmdb.Movie
	Err    error
}

// RandomLoaded is the reply to FetchRandom.
type RandomLoaded struct {
	Seq   uint64
	Movie tmdb.Movie
	Err   error
}

func (ToggleTheme) intent()       {}
func (SearchChanged) intent()     {}
func (ShowTrending) intent()      {}
func (PickRandom) intent()        {}
func (CycleGenre) intent()        {}
func (OpenPollSetup) intent()     {}
func (CreatePoll) intent()        {}
func (SelectResult) intent()      {}
func (ShowMovie) intent()         {}
func (ToggleWatchlist) intent()   {}
func (RemoveWatchlistAt) intent() {}
func (Vote) intent()              {}
func (ClearPoll) intent()         {}
func (CloseModal) intent()        {}
func (DismissNotice) intent()     {}
func (ResultsLoaded) intent()     {}
func (RandomLoaded) intent()      {}

// Effect is catalog work Dispatch asks the caller to perform. The reply must
// come back as ResultsLoaded or RandomLoaded carrying the same Seq.
type Effect interface {
	effect()
}

// FetchTrending requests the weekly trending list.
type FetchTrending struct{ Seq uint64 }

// FetchSearch requests search results for Query.
type FetchSearch struct {
	Seq   uint64
	Query string
}

// FetchRandom requests one random movie, optionally within Genre.
type FetchRandom struct {
	Seq   uint64
	Genre int
}

func (FetchTrending) effect() {}
func (FetchSearch) effect()   {}
func (FetchRandom) effect()   {}
