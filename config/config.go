// Package config reads runtime settings from a .env file and the
// environment, with sensible defaults for local use.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const defaultLibraryFile = "library.json"

// Config carries the runtime settings of the CLI.
type Config struct {
	// LibraryFile is the path of the JSON backing file. The --file flag
	// overrides it.
	LibraryFile string
	LogLevel    zerolog.Level
}

// Load reads settings from a .env file when present, then from the
// environment, falling back to defaults.
func Load() Config {
	_ = godotenv.Load() // .env is optional
	return Config{
		LibraryFile: getEnv("LIBRARY_FILE", defaultLibraryFile),
		LogLevel:    parseLevel(getEnv("LOG_LEVEL", "info")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
