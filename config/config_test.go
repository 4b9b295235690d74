package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LIBRARY_FILE", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	assert.Equal(t, "library.json", cfg.LibraryFile)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LIBRARY_FILE", "/tmp/books.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "/tmp/books.json", cfg.LibraryFile)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadBadLogLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "shouting")

	cfg := Load()
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}
