package wordlist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("Splits on any whitespace", func(t *testing.T) {
		words, err := Read(strings.NewReader("cat car\n\tcart\r\ndog  cat\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"cat", "car", "cart", "dog", "cat"}, words)
	})

	t.Run("Keeps case by default", func(t *testing.T) {
		words, err := Read(strings.NewReader("Jürgen CAT"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Jürgen", "CAT"}, words)
	})

	t.Run("Lowercase", func(t *testing.T) {
		words, err := Read(strings.NewReader("Jürgen CAT"), WithLowercase())
		require.NoError(t, err)
		assert.Equal(t, []string{"jürgen", "cat"}, words)
	})

	t.Run("Normalisation", func(t *testing.T) {
		words, err := Read(strings.NewReader("Jürgen café"), WithNormalisation())
		require.NoError(t, err)
		assert.Equal(t, []string{"Jurgen", "cafe"}, words)
	})

	t.Run("Both", func(t *testing.T) {
		words, err := Read(strings.NewReader("Jürgen"), WithNormalisation(), WithLowercase())
		require.NoError(t, err)
		assert.Equal(t, []string{"jurgen"}, words)
	})

	t.Run("Empty input", func(t *testing.T) {
		words, err := Read(strings.NewReader(" \n "))
		require.NoError(t, err)
		assert.Empty(t, words)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(dir, "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("apple\nbanana\n"), 0o600))
		words, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "banana"}, words)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("No words", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("\n\n"), 0o600))
		_, err := Load(path)
		assert.True(t, errors.Is(err, ErrNoWords))
	})
}

func TestDefault(t *testing.T) {
	words, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, words)
	assert.Contains(t, words, "cat")
	for _, w := range words {
		assert.Equal(t, strings.ToLower(w), w)
	}
}
