// Package config loads the optional hexlink.yaml runtime settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/hexlink/internal/gamedata"
)

// EnvPath names the environment variable that points at the config file.
const EnvPath = "HEXLINK_CONFIG"

// DefaultPath is used when EnvPath is unset.
const DefaultPath = "hexlink.yaml"

// Config holds all runtime configuration
type Config struct {
	Seed        int64             `yaml:"seed"`         // 0 picks a time-based seed
	Shape       string            `yaml:"shape"`        // Shape ID from shapes.json; empty is the default
	LogPath     string            `yaml:"log_path"`     // Empty discards logs
	LogLevel    string            `yaml:"log_level"`    // debug, info, warn or error
	JournalPath string            `yaml:"journal_path"` // SQLite file for match history
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Balance     *gamedata.Balance `yaml:"balance"` // Overrides balance.json when set
}

// TelemetryConfig holds OpenTelemetry export settings
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"` // OTLP/HTTP endpoint, unless already in the environment
	Headers  string `yaml:"headers"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// PathFromEnv returns the config path named by HEXLINK_CONFIG, or DefaultPath.
func PathFromEnv() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults; a present but invalid one is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.JournalPath == "" {
		c.JournalPath = "hexlink.db"
	}
}

// Validate checks the log level and any balance override.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Balance != nil {
		if err := c.Balance.Validate(); err != nil {
			return fmt.Errorf("balance: %w", err)
		}
	}
	return nil
}

// Level returns the slog level for LogLevel, or Info if it does not parse.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ResolveBalance returns the override if set, else the embedded table.
func (c *Config) ResolveBalance() (gamedata.Balance, error) {
	if c.Balance != nil {
		return *c.Balance, nil
	}
	return gamedata.LoadBalance()
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", s, err)
	}
	return level, nil
}
