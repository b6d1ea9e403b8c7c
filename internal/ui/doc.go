// Package ui provides the Bubble Tea terminal interface for Marquee.
//
// # Architecture Overview
//
// Model renders a *state.Session and turns key presses into state intents.
// Session.Dispatch decides what changes; when it returns an effect (fetch
// trending, search, random pick) the model wraps it in a tea.Cmd that calls
// the catalog with a per-request timeout. The reply re-enters Update as a
// state.ResultsLoaded or state.RandomLoaded message and is dispatched back to
// the session, which drops it if a newer request has been issued since.
//
// # Package Structure
//
//   - app.go: Model, key routing, effect commands, and Run
//   - render.go: header, search bar, results/watchlist/poll panes, command bar
//   - modal.go: detail, poll setup, and notice dialogs
//   - help.go: help overlay generated from the key map
//   - keys.go: key bindings
//   - theme.go: light and dark palettes
//
// # Layout
//
//	┌ header: logo, watchlist count, poll votes, genre, theme toggle ┐
//	│ / search                                                       │
//	├ results ──────────────────────────┬ watchlist ─────────────────┤
//	│ ★ 7.8  Title               2024   │ Title                      │
//	│                                   ├ poll ──────────────────────┤
//	│                                   │ Title   2  67% ██████····  │
//	└ command bar ──────────────────────┴────────────────────────────┘
//
// Below LayoutCompactWidth columns the three panes stack vertically.
//
// # Overlays
//
// Help, notices, and the detail and poll setup dialogs replace the main view
// while open and take every key first. A notice is dismissed by any key.
package ui
