// Package app is the composition root for Marquee.
//
// # Overview
//
// Run wires configuration, logging, the persisted store, the catalog client,
// and the session together, then hands control to the UI until the user
// quits or the context is cancelled.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.LoadDotEnv()  .env in the working directory
//	       ├─────> config.Load()        ~/.config/marquee/config.toml
//	       ├─────> openLogger()         <data_dir>/marquee.log
//	       ├─────> kv.Open()            file or sqlite store
//	       ├─────> tmdb.NewClient()     catalog HTTP client
//	       ├─────> catalog.New()        trending/search/random resolver
//	       ├─────> state.New()          session (watchlist, poll, theme)
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid TOML
//   - No API key in the config, the environment, or .env
//   - Data directory or log file cannot be created
//
// Recoverable errors (logged, Marquee keeps running):
//   - Store backend cannot be opened: an in-memory store is used and
//     nothing persists for this session
//   - Catalog requests failing: shown in the UI
//
// # Options
//
//   - ConfigPath: config file (default ~/.config/marquee/config.toml)
//   - EnvPath: dotenv file (default ./.env)
//   - DataDir: overrides data_dir
//   - Store: overrides store ("file" or "sqlite")
//
// TailLog reads the log file back for `marquee -log N`.
package app
