package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/raysh454/phishlens/internal/assessor"
	"github.com/raysh454/phishlens/internal/cli"
)

// Config holds the runtime settings shared by the service and the one-shot
// check.
type Config struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string

	// DBPath is the SQLite database holding events.
	DBPath string

	// Event listing limits for GET /events.
	DefaultEventsLimit int
	MaxEventsLimit     int

	// MaxBodyBytes bounds POST bodies.
	MaxBodyBytes int64

	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration

	// FeedBuffer is the per-subscriber buffer of the live event feed.
	FeedBuffer int

	AssessorCfg assessor.Config
}

// DefaultConfig returns a Config populated with sensible development defaults.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:         "127.0.0.1:8000",
		DBPath:             "phishlens.db",
		DefaultEventsLimit: 100,
		MaxEventsLimit:     1000,
		MaxBodyBytes:       5 << 20,
		ReadTimeout:        15 * time.Second,
		ShutdownTimeout:    5 * time.Second,
		FeedBuffer:         16,
		AssessorCfg:        *assessor.DefaultConfig(),
	}
}

// LoadFromEnv overlays PHISHLENS_* environment variables on cfg. Unset
// variables leave the field alone; malformed numbers are an error.
func LoadFromEnv(cfg *Config) error {
	cfg.ListenAddr = getEnv("PHISHLENS_ADDR", cfg.ListenAddr)
	cfg.DBPath = getEnv("PHISHLENS_DB", cfg.DBPath)

	maxBody, err := getEnvAsInt("PHISHLENS_MAX_BODY_BYTES", int(cfg.MaxBodyBytes))
	if err != nil {
		return err
	}
	cfg.MaxBodyBytes = int64(maxBody)

	if cfg.MaxEventsLimit, err = getEnvAsInt("PHISHLENS_EVENTS_LIMIT", cfg.MaxEventsLimit); err != nil {
		return err
	}
	if cfg.DefaultEventsLimit > cfg.MaxEventsLimit {
		cfg.DefaultEventsLimit = cfg.MaxEventsLimit
	}
	return nil
}

// ApplyArgs lets command-line flags override cfg.
func ApplyArgs(cfg *Config, args *cli.CLIArgs) {
	if args == nil {
		return
	}
	if args.Addr != "" {
		cfg.ListenAddr = args.Addr
	}
	if args.DBPath != "" {
		cfg.DBPath = args.DBPath
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%s: want a positive integer, got %q", key, valueStr)
	}
	return value, nil
}
