package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarthakjha889/go-prefix-trie/internal/config"
)

func TestLoadWords(t *testing.T) {
	t.Run("Embedded", func(t *testing.T) {
		words, source, err := loadWords(config.Default())
		require.NoError(t, err)
		assert.Equal(t, "embedded", source)
		assert.Contains(t, words, "cat")
	})

	t.Run("File lowercased and normalised", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("Café\nDOG\n"), 0o600))

		cfg := config.Default()
		cfg.WordsFile = path
		cfg.Normalise = true
		words, source, err := loadWords(cfg)
		require.NoError(t, err)
		assert.Equal(t, path, source)
		assert.Equal(t, []string{"cafe", "dog"}, words)
	})

	t.Run("Missing file", func(t *testing.T) {
		cfg := config.Default()
		cfg.WordsFile = filepath.Join(t.TempDir(), "nope.txt")
		_, _, err := loadWords(cfg)
		assert.Error(t, err)
	})
}
