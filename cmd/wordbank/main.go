// Command wordbank is a word game played against a prefix tree dictionary:
// list as many words as you can that contain every letter of a random bank.
package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	trie "github.com/sarthakjha889/go-prefix-trie"
	"github.com/sarthakjha889/go-prefix-trie/internal/config"
	"github.com/sarthakjha889/go-prefix-trie/internal/game"
	"github.com/sarthakjha889/go-prefix-trie/internal/wordlist"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	words, source, err := loadWords(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	start := time.Now()
	dict := trie.New(words...)
	log.Info().
		Str("source", source).
		Int("words", dict.Size()).
		Dur("took", time.Since(start)).
		Msg("dictionary loaded")

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	bank := game.NewBank(rand.New(rand.NewPCG(seed, seed>>1)))
	log.Debug().Uint64("seed", seed).Stringer("bank", bank).Msg("bank drawn")

	console := game.NewConsole(game.NewSession(dict, bank), cfg.Suggestions, log.Logger)
	score, err := console.Run(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Int("score", score).Msg("game aborted")
	}
	log.Info().Int("score", score).Msg("game ended")
}

// loadWords reads the configured word list, lowercased to match the lowercased
// guesses, and names where it came from.
func loadWords(cfg config.Config) ([]string, string, error) {
	opts := []wordlist.Option{wordlist.WithLowercase()}
	if cfg.Normalise {
		opts = append(opts, wordlist.WithNormalisation())
	}
	if cfg.WordsFile == "" {
		words, err := wordlist.Default(opts...)
		return words, "embedded", err
	}
	words, err := wordlist.Load(cfg.WordsFile, opts...)
	return words, cfg.WordsFile, err
}
