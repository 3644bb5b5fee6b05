// Package config loads and persists the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// Data source configuration
	Data DataConfig `toml:"data"`

	// Statistical analysis configuration
	Analysis AnalysisConfig `toml:"analysis"`

	// Generation loop configuration
	Generator GeneratorConfig `toml:"generator"`

	// Filter toggles
	Filters FilterConfig `toml:"filters"`

	// Database configuration
	Database DatabaseConfig `toml:"database"`
}

// DataConfig contains historical data source settings.
type DataConfig struct {
	FilePath  string `toml:"file_path"` // Path to the local history file
	URL       string `toml:"url"`       // Download URL for the history file
	Separator string `toml:"separator"` // Field separator in the history file
	Watch     bool   `toml:"watch"`     // Watch the file and rebuild tables on change
}

// AnalysisConfig contains statistical table settings.
type AnalysisConfig struct {
	DistanceWindow int `toml:"distance_window"` // Lookahead slots for the weight table
}

// GeneratorConfig contains generation loop settings.
type GeneratorConfig struct {
	MaxAttempts   int     `toml:"max_attempts"`    // Retry budget per run
	PauseEvery    int     `toml:"pause_every"`     // Consecutive failures per cooperative pause
	PauseMillis   int     `toml:"pause_millis"`    // Pause length in milliseconds
	StarCount     int     `toml:"star_count"`      // Stars per combination (0..2)
	AllowFallback bool    `toml:"allow_fallback"`  // Fall back to simple list when no history is loaded
	TopShare      float64 `toml:"top_share"`       // Predecessor draw: best-scored share kept
	NextMaxShare  float64 `toml:"next_max_share"`  // Predecessor draw: next-column max cap
}

// FilterConfig toggles the validity filters. All default to enabled.
type FilterConfig struct {
	NoDuplicate  bool `toml:"no_duplicate"`
	OddEven      bool `toml:"odd_even"`
	Grid10x5     bool `toml:"grid_10x5"`
	Grid5x10     bool `toml:"grid_5x10"`
	NoLongRuns   bool `toml:"no_long_runs"`
	MatchProfile bool `toml:"match_profile"`
}

// DatabaseConfig contains persistence settings.
type DatabaseConfig struct {
	Path string `toml:"path"` // SQLite database path (empty = default location)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			FilePath:  "",
			URL:       "",
			Separator: ";",
			Watch:     false,
		},
		Analysis: AnalysisConfig{
			DistanceWindow: 147,
		},
		Generator: GeneratorConfig{
			MaxAttempts:   1000,
			PauseEvery:    10,
			PauseMillis:   25,
			StarCount:     2,
			AllowFallback: false,
			TopShare:      0.7,
			NextMaxShare:  0.8,
		},
		Filters: FilterConfig{
			NoDuplicate:  true,
			OddEven:      true,
			Grid10x5:     true,
			Grid5x10:     true,
			NoLongRuns:   true,
			MatchProfile: true,
		},
		Database: DatabaseConfig{
			Path: "",
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".lotto-companion")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from disk. Returns default config if the
// file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Analysis.DistanceWindow <= 0 {
		return fmt.Errorf("distance window must be positive: %d", c.Analysis.DistanceWindow)
	}
	if c.Generator.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive: %d", c.Generator.MaxAttempts)
	}
	if c.Generator.PauseEvery < 0 {
		return fmt.Errorf("pause cadence cannot be negative: %d", c.Generator.PauseEvery)
	}
	if c.Generator.StarCount < 0 || c.Generator.StarCount > 2 {
		return fmt.Errorf("star count must be in [0,2]: %d", c.Generator.StarCount)
	}
	if c.Generator.TopShare <= 0 || c.Generator.TopShare > 1 {
		return fmt.Errorf("top share must be in (0,1]: %f", c.Generator.TopShare)
	}
	if c.Generator.NextMaxShare <= 0 || c.Generator.NextMaxShare > 1 {
		return fmt.Errorf("next max share must be in (0,1]: %f", c.Generator.NextMaxShare)
	}
	return nil
}
