package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"spacewx/internal/config"
	"spacewx/internal/dashboard"
	"spacewx/internal/export"
	"spacewx/internal/fetchers"
	"spacewx/internal/logger"
)

func main() {
	once := flag.Bool("once", false, "fetch once, print a single frame, and exit")
	exportSnap := flag.Bool("export", false, "with -once, write a JSON+PNG snapshot to SNAPSHOT_DIR")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional .env for local development.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded configuration from .env")
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("failed to load configuration", err)
	}

	if level := logger.ParseLevel(cfg.LogLevel); level != -1 {
		logger.Global().SetLevel(level)
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			logger.Fatal("failed to open log file", err)
		}
		defer f.Close()
		logger.Global().SetOutput(f)
	}

	fetcher := fetchers.NewDataFetcher(fetchers.Options{
		DonkiBaseURL: cfg.DonkiBaseURL,
		SwpcBaseURL:  cfg.SwpcBaseURL,
		APIKey:       cfg.NASAAPIKey,
		Timeout:      cfg.FetchTimeout,
	})

	opts := dashboard.Options{
		RefreshInterval:  cfg.RefreshInterval,
		RecoveryInterval: cfg.RecoveryInterval,
		EventWindowDays:  cfg.EventWindowDays,
	}

	if *once {
		d := dashboard.New(fetcher, dashboard.NewPlainRenderer(os.Stdout), opts)
		snap, err := d.RunOnce(ctx)
		if err != nil {
			logger.Fatal("fetch failed", err)
		}
		if *exportSnap {
			outDir, err := export.WriteSnapshot(cfg.SnapshotDir, snap)
			if err != nil {
				logger.Fatal("snapshot export failed", err)
			}
			fmt.Fprintf(os.Stderr, "Snapshot written to %s\n", outDir)
		}
		return
	}

	logger.Infof("Starting space weather dashboard v%s (refresh every %s)", config.GetVersion(), cfg.RefreshInterval)

	d := dashboard.New(fetcher, dashboard.NewTermRenderer(os.Stdout), opts)
	if err := d.Run(ctx); err != nil {
		logger.Fatal("dashboard terminated", err)
	}
}
