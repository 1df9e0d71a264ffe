package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the space weather dashboard
type Config struct {
	// NASA DONKI API key. DEMO_KEY is NASA's public, heavily rate-limited
	// placeholder; set a real key for anything beyond casual use.
	NASAAPIKey string `env:"NASA_API_KEY,default=DEMO_KEY"`

	// Provider base URLs
	DonkiBaseURL string `env:"DONKI_BASE_URL,default=https://api.nasa.gov/DONKI/"`
	SwpcBaseURL  string `env:"SWPC_BASE_URL,default=https://services.swpc.noaa.gov/"`

	// Refresh cadence
	RefreshInterval  time.Duration `env:"REFRESH_INTERVAL,default=180s"`
	RecoveryInterval time.Duration `env:"RECOVERY_INTERVAL,default=30s"`
	FetchTimeout     time.Duration `env:"FETCH_TIMEOUT,default=12s"`

	// EventWindowDays is the date range passed to the DONKI event endpoints.
	EventWindowDays int `env:"EVENT_WINDOW_DAYS,default=7"`

	// Snapshot export directory for one-shot mode
	SnapshotDir string `env:"SNAPSHOT_DIR,default=./snapshots"`

	// Logging
	LogLevel string `env:"LOG_LEVEL,default=info"`
	LogFile  string `env:"LOG_FILE"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
