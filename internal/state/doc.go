// Package state holds the application state for one Marquee session.
//
// # Overview
//
// Session owns everything the display reads: the theme, the search input,
// the results grid, the watchlist, the active poll, the open dialog, and a
// pending notice. The display never mutates these directly. It turns key
// presses into Intents and feeds them to Session.Dispatch.
//
// # Intents and Effects
//
// Dispatch applies an intent synchronously and may return an Effect naming
// catalog work to start:
//
//	Display                       Session
//	┌────────────────┐           ┌─────────────────────┐
//	│ key press      │──Intent──→│ Dispatch            │
//	│                │←──Effect──│  (FetchSearch, ...) │
//	│ run request    │           │                     │
//	│ reply arrives  │──Intent──→│ ResultsLoaded       │
//	└────────────────┘           └─────────────────────┘
//
// Replies come back as ResultsLoaded or RandomLoaded carrying the sequence
// number from the Effect that started them.
//
// # Superseded Replies
//
// Grid fetches (trending and search) and random picks each keep a counter.
// Every new request bumps the counter, and a reply whose Seq is not the
// latest is dropped. Typing "ali" then "alie" therefore never shows the
// results for "ali" after those for "alie", whichever answer is slower.
//
// # Concurrency
//
// Session is not safe for concurrent use. Dispatch and the accessors must
// run on the UI goroutine; network requests run elsewhere and report back
// through Dispatch.
package state
