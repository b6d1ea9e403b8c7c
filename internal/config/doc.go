// Package config loads Marquee's settings.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/marquee/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//  5. TMDB_API_KEY, when set, replaces api_key
//
// LoadDotEnv runs before Load at startup so a .env file in the working
// directory can supply TMDB_API_KEY. Variables already present in the
// environment win over the file.
//
// # Default Values
//
//   - Config file: ~/.config/marquee/config.toml
//   - API base URL: https://api.themoviedb.org/3
//   - Image base URL: https://image.tmdb.org/t/p/w500
//   - Store backend: file
//   - Data directory: ~/.local/share/marquee
//   - Request timeout: 10 seconds
//   - Log level: info
//
// # TOML Format
//
//	api_base_url = "https://api.themoviedb.org/3"
//	image_base_url = "https://image.tmdb.org/t/p/w500"
//	api_key = "..."
//	store = "sqlite"
//	data_dir = "~/.local/share/marquee"
//	request_timeout = 10
//	log_level = "debug"
//
// All fields are optional. Tilde expansion is applied to data_dir.
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files, and
// TOML parse errors. A missing file is not an error. A missing API key is
// reported by Validate as ErrMissingAPIKey so callers can decide when to
// fail.
package config
