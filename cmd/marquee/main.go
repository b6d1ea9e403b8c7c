package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/marquee/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	envPath := flag.String("env", "", "dotenv file to load (optional, defaults to ./.env)")
	dataDir := flag.String("data-dir", "", "override data directory (optional)")
	store := flag.String("store", "", "store backend: file or sqlite (optional)")
	logLines := flag.Int("log", 0, "print the last N log lines and exit")
	logLevel := flag.String("log-level", "", "with -log, only show lines at or above this level")
	flag.Parse()

	opts := app.Options{
		ConfigPath: *configPath,
		EnvPath:    *envPath,
		DataDir:    *dataDir,
		Store:      *store,
	}

	if *logLines > 0 {
		lines, err := app.TailLog(opts, *logLines, *logLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
			return 1
		}
		for _, line := range lines {
			fmt.Println(line)
		}
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		return 1
	}
	return 0
}
