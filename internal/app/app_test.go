package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/kv"
	"github.com/five82/marquee/internal/prefs"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func testOptions(t *testing.T, body string) Options {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.APIKeyEnv, "")
	return Options{
		ConfigPath: writeConfig(t, body),
		EnvPath:    filepath.Join(t.TempDir(), "absent.env"),
	}
}

func TestSetup_MissingAPIKey(t *testing.T) {
	opts := testOptions(t, `store = "file"`)
	opts.DataDir = t.TempDir()

	_, err := setup(opts)
	if !errors.Is(err, config.ErrMissingAPIKey) {
		t.Fatalf("setup error = %v, want ErrMissingAPIKey", err)
	}
}

func TestSetup_WiresSessionToConfiguredStore(t *testing.T) {
	for _, backend := range []string{kv.BackendFile, kv.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			dataDir := t.TempDir()
			opts := testOptions(t, `api_key = "k"`)
			opts.DataDir = dataDir
			opts.Store = backend

			// Seed a stored preference so the session must read it back.
			seed, err := kv.Open(backend, dataDir)
			if err != nil {
				t.Fatalf("kv.Open: %v", err)
			}
			if err := prefs.SaveTheme(seed, prefs.Dark); err != nil {
				t.Fatalf("SaveTheme: %v", err)
			}
			if err := seed.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}

			env, err := setup(opts)
			if err != nil {
				t.Fatalf("setup returned error: %v", err)
			}
			defer env.Close()

			if env.session.Theme() != prefs.Dark {
				t.Fatalf("session theme = %q, want dark", env.session.Theme())
			}
			if _, ok := env.store.(*kv.Memory); ok {
				t.Fatalf("store fell back to memory")
			}
			if env.cfg.Store != backend {
				t.Fatalf("cfg.Store = %q, want %q", env.cfg.Store, backend)
			}
			if _, err := os.Stat(filepath.Join(dataDir, "marquee.log")); err != nil {
				t.Fatalf("log file not created: %v", err)
			}
		})
	}
}

func TestSetup_UnopenableStoreFallsBackToMemory(t *testing.T) {
	dataDir := t.TempDir()
	// A directory where the TOML document should be makes the file backend fail.
	if err := os.Mkdir(filepath.Join(dataDir, "store.toml"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	opts := testOptions(t, `api_key = "k"`)
	opts.DataDir = dataDir

	env, err := setup(opts)
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	defer env.Close()

	if _, ok := env.store.(*kv.Memory); !ok {
		t.Fatalf("store = %T, want *kv.Memory", env.store)
	}
	env.Close()
	env.store = nil

	lines, err := TailLog(Options{ConfigPath: opts.ConfigPath, DataDir: dataDir}, 10, "warn")
	if err != nil {
		t.Fatalf("TailLog returned error: %v", err)
	}
	if len(lines) != 1 || !strings.Contains(lines[0], "store unavailable") {
		t.Fatalf("TailLog = %v, want the fallback warning", lines)
	}
}

func TestSetup_DotEnvSuppliesAPIKey(t *testing.T) {
	opts := testOptions(t, ``)
	opts.DataDir = t.TempDir()
	os.Unsetenv(config.APIKeyEnv)

	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath, []byte("TMDB_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	opts.EnvPath = envPath

	env, err := setup(opts)
	if err != nil {
		t.Fatalf("setup returned error: %v", err)
	}
	defer env.Close()

	if env.cfg.APIKey != "from-dotenv" {
		t.Fatalf("APIKey = %q, want from-dotenv", env.cfg.APIKey)
	}
}

func TestTailLog_MissingLog(t *testing.T) {
	opts := testOptions(t, `api_key = "k"`)
	opts.DataDir = t.TempDir()

	lines, err := TailLog(opts, 5, "")
	if err != nil {
		t.Fatalf("TailLog returned error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("TailLog = %v, want none", lines)
	}
}
