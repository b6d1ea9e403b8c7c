package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/kv"
	"github.com/five82/marquee/internal/logtail"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/tmdb"
	"github.com/five82/marquee/internal/ui"
)

// Options configure the Marquee application. Empty fields fall back to the
// config file.
type Options struct {
	ConfigPath string
	EnvPath    string // empty loads ./.env when present
	DataDir    string
	Store      string
}

// Run boots the Marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	env.logger.Info("marquee starting",
		"store", env.cfg.Store,
		"data_dir", env.cfg.DataDir,
		"api", env.cfg.APIBaseURL,
	)

	err = ui.Run(ui.Options{
		Context:        ctx,
		Session:        env.session,
		Catalog:        env.catalog,
		Posters:        env.client,
		RequestTimeout: env.cfg.RequestTimeout,
		Logger:         env.logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		env.logger.Error("ui exited", "error", err)
		return fmt.Errorf("run ui: %w", err)
	}
	env.logger.Info("marquee stopped")
	return nil
}

// environment is everything Run wires together before the UI starts.
type environment struct {
	cfg     config.Config
	logger  *slog.Logger
	logFile io.Closer
	store   kv.Store
	client  *tmdb.Client
	catalog *catalog.Resolver
	session *state.Session
}

func setup(opts Options) (*environment, error) {
	if err := config.LoadDotEnv(opts.EnvPath); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithDataDir(opts.DataDir).WithStore(opts.Store)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, logFile, err := openLogger(cfg)
	if err != nil {
		return nil, err
	}

	env := &environment{cfg: cfg, logger: logger, logFile: logFile}
	env.store = openStore(cfg, logger)

	env.client, err = tmdb.NewClient(tmdb.Options{
		BaseURL:      cfg.APIBaseURL,
		ImageBaseURL: cfg.ImageBaseURL,
		APIKey:       cfg.APIKey,
		Timeout:      cfg.RequestTimeout,
	})
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("init catalog client: %w", err)
	}

	env.catalog = catalog.New(env.client, catalog.Options{Logger: logger})
	env.session = state.New(state.Options{Store: env.store, Logger: logger})
	return env, nil
}

// Close releases the store and log file.
func (e *environment) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("store close failed", "error", err)
		}
	}
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}

// openLogger writes structured logs to <data_dir>/marquee.log; the terminal
// belongs to the UI.
func openLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}
	file, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: cfg.Level()})
	return slog.New(handler), file, nil
}

// openStore opens the configured backend. When it cannot be opened the
// session runs on an in-memory store and nothing persists.
func openStore(cfg config.Config, logger *slog.Logger) kv.Store {
	store, err := kv.Open(cfg.Store, cfg.DataDir)
	if err != nil {
		logger.Warn("store unavailable, changes will not persist", "backend", cfg.Store, "error", err)
		return kv.NewMemory()
	}
	return store
}

// TailLog returns the last n lines of the log file at or above level
// ("debug", "info", "warn", "error"; empty keeps everything).
func TailLog(opts Options, n int, level string) ([]string, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithDataDir(opts.DataDir)

	lines, err := logtail.Read(cfg.LogPath(), n)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(level) == "" {
		return lines, nil
	}
	threshold := config.Config{LogLevel: strings.ToLower(strings.TrimSpace(level))}.Level()
	return logtail.Filter(lines, threshold), nil
}
