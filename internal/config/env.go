package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvConfig   = "GALAXY_CONFIG"
	EnvLogLevel = "GALAXY_LOG_LEVEL"
	EnvLogFile  = "GALAXY_LOG_FILE"
	EnvSeed     = "GALAXY_SEED"
	EnvCount    = "GALAXY_COUNT"
)

// loadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// applyEnv applies environment overrides to the config.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.LogFile = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Galaxy.Seed = seed
	}
	if v := os.Getenv(EnvCount); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvCount, err)
		}
		cfg.Galaxy.Count = count
	}
	return nil
}
