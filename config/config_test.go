package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var variables = []string{
	"HOG_SAMPLES", "HOG_SEED", "HOG_GOROUTINES", "HOG_EXPERIMENTS",
	"HOG_BASELINE", "HOG_OUTPUT_DIR", "HOG_LOG_LEVEL",
}

// clearEnv unsets every HOG_ variable for the rest of the test.
func clearEnv(t *testing.T) {
	for _, k := range variables {
		t.Setenv(k, "") // Restores the previous value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, Config{
			Samples:     30000,
			Goroutines:  1,
			Experiments: []string{"final_strategy"},
			Baseline:    "always_roll_5",
			LogLevel:    "info",
		}, cfg)
	})

	t.Run("defaults ignore the surrounding shell", func(t *testing.T) {
		t.Setenv("HOG_SAMPLES", "7")
		t.Setenv("HOG_BASELINE", "final_strategy")
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 30000, cfg.Samples)
		require.Equal(t, "always_roll_5", cfg.Baseline)
	})

	t.Run("reads the environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HOG_SAMPLES", "500")
		t.Setenv("HOG_SEED", "42")
		t.Setenv("HOG_GOROUTINES", "4")
		t.Setenv("HOG_EXPERIMENTS", "always_roll_8,final_strategy")
		t.Setenv("HOG_BASELINE", "bacon_strategy")
		t.Setenv("HOG_OUTPUT_DIR", "out")
		t.Setenv("HOG_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, Config{
			Samples:     500,
			Seed:        42,
			Goroutines:  4,
			Experiments: []string{"always_roll_8", "final_strategy"},
			Baseline:    "bacon_strategy",
			OutputDir:   "out",
			LogLevel:    "debug",
		}, cfg)
	})

	t.Run("rejects non-positive samples", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HOG_SAMPLES", "0")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HOG_GOROUTINES", "many")
		_, err := Load()
		require.Error(t, err)
	})
}
