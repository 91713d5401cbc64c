package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the generator settings. Environment values (optionally
// from a .env file) provide the defaults and command-line flags override
// them.
type Config struct {
	Rows       int    // Grid height in cells
	Cols       int    // Grid width in cells
	Seed       int64  // Random seed; negative picks one from the clock
	RandomExit bool   // Place the two openings at random border cells
	Solve      bool   // Overlay the shortest path between the openings
	Format     string // Output format: text or png
	Output     string // Output file; empty writes to stdout
	CellPixels int    // PNG cell size in pixels
	Margin     int    // PNG white frame in pixels
	LogLevel   string // logrus level name
}

// loadEnv reads an optional .env file and returns the defaults it and
// the process environment describe.
func loadEnv() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf(".env file not found or could not be loaded: %v", err)
	}
	return configFromEnv()
}

func configFromEnv() (Config, error) {
	var (
		cfg Config
		err error
	)
	if cfg.Rows, err = getEnvAsInt("MAZE_ROWS", 21); err != nil {
		return cfg, err
	}
	if cfg.Cols, err = getEnvAsInt("MAZE_COLS", 21); err != nil {
		return cfg, err
	}
	seed, err := getEnvAsInt("MAZE_SEED", -1)
	if err != nil {
		return cfg, err
	}
	cfg.Seed = int64(seed)
	if cfg.RandomExit, err = getEnvAsBool("MAZE_RANDOM_EXIT", false); err != nil {
		return cfg, err
	}
	if cfg.Solve, err = getEnvAsBool("MAZE_SOLVE", true); err != nil {
		return cfg, err
	}
	if cfg.CellPixels, err = getEnvAsInt("MAZE_CELL_PIXELS", 8); err != nil {
		return cfg, err
	}
	if cfg.Margin, err = getEnvAsInt("MAZE_MARGIN", 8); err != nil {
		return cfg, err
	}
	cfg.Format = getEnvWithDefault("MAZE_FORMAT", "text")
	cfg.Output = getEnvWithDefault("MAZE_OUTPUT", "")
	cfg.LogLevel = getEnvWithDefault("MAZE_LOG_LEVEL", "info")
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return value, nil
}
