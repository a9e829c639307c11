// Package config reads the word bank game settings from the environment,
// after loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables read by Load.
const (
	EnvWordsFile   = "WORDBANK_WORDS_FILE"
	EnvLogLevel    = "WORDBANK_LOG_LEVEL"
	EnvSeed        = "WORDBANK_SEED"
	EnvNormalise   = "WORDBANK_NORMALISE"
	EnvSuggestions = "WORDBANK_SUGGESTIONS"
)

// Config holds the game settings.
type Config struct {
	// WordsFile is the word list path. Empty selects the embedded list.
	WordsFile string
	LogLevel  zerolog.Level
	// Seed seeds bank generation. Zero means pick one at start up.
	Seed        uint64
	Normalise   bool
	Suggestions int
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:    zerolog.InfoLevel,
		Suggestions: 3,
	}
}

// Load reads .env files (missing files are ignored) and then the
// environment. Variables already set in the environment win over .env.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: dotenv: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.WordsFile = os.Getenv(EnvWordsFile)

	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv(EnvNormalise); v != "" {
		normalise, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvNormalise, err)
		}
		cfg.Normalise = normalise
	}
	if v := os.Getenv(EnvSuggestions); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvSuggestions, err)
		}
		if n < 0 {
			return Config{}, fmt.Errorf("config: %s: must not be negative, got %d", EnvSuggestions, n)
		}
		cfg.Suggestions = n
	}
	return cfg, nil
}
