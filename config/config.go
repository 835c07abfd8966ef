package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the experiment settings read from the environment.
type Config struct {
	Samples     int      `env:"HOG_SAMPLES" envDefault:"30000"`
	Seed        uint64   `env:"HOG_SEED"` // 0 picks a time based seed
	Goroutines  int      `env:"HOG_GOROUTINES" envDefault:"1"`
	Experiments []string `env:"HOG_EXPERIMENTS" envSeparator:"," envDefault:"final_strategy"`
	Baseline    string   `env:"HOG_BASELINE" envDefault:"always_roll_5"`
	OutputDir   string   `env:"HOG_OUTPUT_DIR"` // Empty disables the CSV report
	LogLevel    string   `env:"HOG_LOG_LEVEL" envDefault:"info"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Samples < 1 {
		return Config{}, fmt.Errorf("HOG_SAMPLES must be positive, got %d", cfg.Samples)
	}
	if cfg.Goroutines < 1 {
		return Config{}, fmt.Errorf("HOG_GOROUTINES must be positive, got %d", cfg.Goroutines)
	}
	return cfg, nil
}
