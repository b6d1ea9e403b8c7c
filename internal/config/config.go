package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// ErrMissingAPIKey is returned by Validate when no catalog API key is set.
var ErrMissingAPIKey = errors.New("config: missing TMDB API key (set api_key or TMDB_API_KEY)")

// APIKeyEnv overrides the api_key field when set.
const APIKeyEnv = "TMDB_API_KEY"

// Config holds the settings Marquee reads at startup.
type Config struct {
	APIBaseURL     string
	ImageBaseURL   string
	APIKey         string
	Store          string
	DataDir        string
	RequestTimeout time.Duration
	LogLevel       string
}

const (
	defaultConfigPath     = "~/.config/marquee/config.toml"
	defaultDataDir        = "~/.local/share/marquee"
	defaultAPIBaseURL     = "https://api.themoviedb.org/3"
	defaultImageBaseURL   = "https://image.tmdb.org/t/p/w500"
	defaultStore          = "file"
	defaultRequestTimeout = 10 * time.Second
	defaultLogLevel       = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:     defaultAPIBaseURL,
		ImageBaseURL:   defaultImageBaseURL,
		Store:          defaultStore,
		DataDir:        mustExpand(defaultDataDir),
		RequestTimeout: defaultRequestTimeout,
		LogLevel:       defaultLogLevel,
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load locates and parses the Marquee config, falling back to defaults when
// the file is missing. TMDB_API_KEY takes precedence over api_key.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL     string `toml:"api_base_url"`
		ImageBaseURL   string `toml:"image_base_url"`
		APIKey         string `toml:"api_key"`
		Store          string `toml:"store"`
		DataDir        string `toml:"data_dir"`
		RequestTimeout int    `toml:"request_timeout"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(raw.ImageBaseURL); v != "" {
		cfg.ImageBaseURL = v
	}
	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	if v := strings.ToLower(strings.TrimSpace(raw.Store)); v != "" {
		cfg.Store = v
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = mustExpand(v)
	}
	if raw.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeout) * time.Second
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Validate reports settings Marquee cannot start without.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	switch c.Store {
	case "file", "sqlite":
	default:
		return fmt.Errorf("config: unknown store %q (want file or sqlite)", c.Store)
	}
	return nil
}

// WithDataDir returns c with DataDir replaced when dir is non-empty.
func (c Config) WithDataDir(dir string) Config {
	if strings.TrimSpace(dir) != "" {
		c.DataDir = mustExpand(dir)
	}
	return c
}

// WithStore returns c with Store replaced when store is non-empty.
func (c Config) WithStore(store string) Config {
	if v := strings.ToLower(strings.TrimSpace(store)); v != "" {
		c.Store = v
	}
	return c
}

// LogPath returns the file Marquee writes its log to.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/marquee.log")
	}
	return filepath.Join(c.DataDir, "marquee.log")
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func applyEnv(cfg *Config) {
	if key := strings.TrimSpace(os.Getenv(APIKeyEnv)); key != "" {
		cfg.APIKey = key
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
