// Package poll runs an ephemeral vote over a snapshot of the watchlist.
//
// There is no voter identity: any caller may vote any number of times. Polls
// live only in memory and disappear on restart.
package poll

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/five82/marquee/internal/tmdb"
)

// ErrInsufficientCandidates is returned by Create when fewer than MinCandidates
// movies are offered.
var ErrInsufficientCandidates = errors.New("poll: insufficient candidates")

// MinCandidates is the smallest poll Create accepts.
const MinCandidates = 2

// Poll is one voting session.
type Poll struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Movies    []tmdb.Movie
	Votes     map[int64]int
}

// Entry is one row of a Summary.
type Entry struct {
	Movie tmdb.Movie
	Votes int
	// Percent is only meaningful when HasPercent is true, i.e. at least one
	// vote has been cast.
	Percent    int
	HasPercent bool
}

// Summary reports the active poll in snapshot order.
type Summary struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Entries   []Entry
	Total     int
}

// ShortID is the first block of the poll ID, used to tell polls apart on
// screen.
func (s Summary) ShortID() string {
	return s.ID.String()[:8]
}

// Engine holds at most one active poll. It is not safe for concurrent use.
type Engine struct {
	now    func() time.Time
	newID  func() uuid.UUID
	active *Poll
}

// NewEngine returns an Engine with no active poll.
func NewEngine() *Engine {
	return &Engine{now: time.Now, newID: uuid.New}
}

// Create starts a poll over a copy of movies, replacing any active poll. With
// fewer than MinCandidates movies it returns ErrInsufficientCandidates and
// leaves the active poll alone.
func (e *Engine) Create(movies []tmdb.Movie) error {
	if len(movies) < MinCandidates {
		return ErrInsufficientCandidates
	}

	snapshot := make([]tmdb.Movie, len(movies))
	copy(snapshot, movies)
	votes := make(map[int64]int, len(snapshot))
	for _, m := range snapshot {
		votes[m.ID] = 0
	}

	e.active = &Poll{
		ID:        e.newID(),
		CreatedAt: e.now(),
		Movies:    snapshot,
		Votes:     votes,
	}
	return nil
}

// Vote adds one vote for id. It reports whether a vote was counted; without
// an active poll or for an id outside the poll nothing happens.
func (e *Engine) Vote(id int64) bool {
	if e.active == nil {
		return false
	}
	if _, ok := e.active.Votes[id]; !ok {
		return false
	}
	e.active.Votes[id]++
	return true
}

// Clear discards the active poll.
func (e *Engine) Clear() {
	e.active = nil
}

// Active reports whether a poll is running.
func (e *Engine) Active() bool {
	return e.active != nil
}

// Current returns a deep copy of the active poll.
func (e *Engine) Current() (Poll, bool) {
	if e.active == nil {
		return Poll{}, false
	}
	movies := make([]tmdb.Movie, len(e.active.Movies))
	copy(movies, e.active.Movies)
	votes := make(map[int64]int, len(e.active.Votes))
	for id, n := range e.active.Votes {
		votes[id] = n
	}
	return Poll{
		ID:        e.active.ID,
		CreatedAt: e.active.CreatedAt,
		Movies:    movies,
		Votes:     votes,
	}, true
}

// Summary tallies the active poll. ok is false when no poll is running.
func (e *Engine) Summary() (Summary, bool) {
	if e.active == nil {
		return Summary{}, false
	}

	total := 0
	for _, n := range e.active.Votes {
		total += n
	}

	entries := make([]Entry, len(e.active.Movies))
	for i, m := range e.active.Movies {
		votes := e.active.Votes[m.ID]
		entry := Entry{Movie: m, Votes: votes}
		if total > 0 {
			entry.Percent = percent(votes, total)
			entry.HasPercent = true
		}
		entries[i] = entry
	}

	return Summary{
		ID:        e.active.ID,
		CreatedAt: e.active.CreatedAt,
		Entries:   entries,
		Total:     total,
	}, true
}

// percent rounds half up, so 1 of 8 votes is 13%.
func percent(votes, total int) int {
	return int(math.Floor(float64(votes)/float64(total)*100 + 0.5))
}
