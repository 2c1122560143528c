// Package config loads client configuration from the environment.
package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIURL is the base path of the Smart Recruiter API.
	APIURL string `env:"SMARTREC_API_URL, default=http://localhost:5555/api"`

	// Timeout is the transport-level request timeout. There is no retry
	// or backoff anywhere in the client; this is the only knob.
	Timeout time.Duration `env:"SMARTREC_TIMEOUT, default=15s"`

	LogLevel  string `env:"SMARTREC_LOG_LEVEL, default=warn"`
	LogPretty bool   `env:"SMARTREC_LOG_PRETTY"`

	// ConfigDir holds the persisted session token. Empty means ~/.smartrec.
	ConfigDir string `env:"SMARTREC_CONFIG_DIR"`
}

// Load reads configuration from environment variables and resolves the
// config directory, creating it if needed.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	if cfg.ConfigDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.ConfigDir = filepath.Join(home, ".smartrec")
	}
	if err := os.MkdirAll(cfg.ConfigDir, 0o700); err != nil {
		return nil, err
	}
	return &cfg, nil
}
