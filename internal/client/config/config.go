// Package config holds runtime settings for the hiredesk client and loads
// them in layers: defaults, then .env/environment, then command-line flags.
// Later sources take precedence over earlier ones.
package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - APIBaseURL: root of the remote REST API, including any path prefix.
//   - SessionFile: durable location of the serialized session identity.
//   - LogLevel / LogPretty: logger verbosity and output format.
type Config struct {
	APIBaseURL  string `env:"HIREDESK_API_URL, default=http://localhost:5000/api"`
	SessionFile string `env:"HIREDESK_SESSION_FILE"`
	LogLevel    string `env:"HIREDESK_LOG_LEVEL, default=info"`
	LogPretty   bool   `env:"HIREDESK_LOG_PRETTY, default=true"`
}

// Load constructs a Config: reads a .env file if present, applies
// environment variables with defaults, then overlays command-line flags.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, err
	}

	if cfg.SessionFile == "" {
		cfg.SessionFile = defaultSessionFile()
	}

	parseFlags(cfg)
	return cfg, nil
}

// defaultSessionFile places the session entry under the user's config
// directory, falling back to the working directory when none is available.
func defaultSessionFile() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(base, "hiredesk", "session.json")
}
