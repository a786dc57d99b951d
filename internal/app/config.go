package app

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Groups       []string // requested group names, case-insensitive
	All          bool     // select every registered group
	Force        bool     // overwrite already-cached files
	Check        bool     // run the offline-readiness report after populating
	CacheDir     string
	ManifestPath string // optional directory or file with extra group manifests

	LogFormat string
	LogLevel  string
	Workers   int
	Timeout   time.Duration
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CacheDir == "" {
		return nil, errors.New("CacheDir is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		return nil, errors.New("Workers must be at least 1")
	}
	if cfg.Timeout <= 0 {
		return nil, errors.New("Timeout must be positive")
	}
	return &cfg, nil
}

// DefaultCacheDir returns the per-user cache directory for vendored assets,
// falling back to a local directory when the platform cache dir is
// unavailable.
func DefaultCacheDir() string {
	if base, err := os.UserCacheDir(); err == nil {
		return filepath.Join(base, "mapvendor")
	}
	return filepath.Join(".", "local")
}
