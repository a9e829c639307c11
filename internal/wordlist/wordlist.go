// Package wordlist reads whitespace separated word lists used to seed a
// trie.Tree. Case and accent policy is chosen here by the caller; the tree
// stores whatever it is given.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed default_words.txt
var embeddedWords string

// ErrNoWords is returned by Load when a file holds no words.
var ErrNoWords = errors.New("wordlist: no words")

// Option configures how words are read.
type Option func(*options)

type options struct {
	lowercase, normalise bool
}

// WithLowercase lowercases every word.
func WithLowercase() Option {
	return func(o *options) { o.lowercase = true }
}

// WithNormalisation strips diacritics, so Jürgen is read as Jurgen.
func WithNormalisation() Option {
	return func(o *options) { o.normalise = true }
}

// transformer builds the chain for the selected options, or nil when words
// are kept as they are.
func (o options) transformer() transform.Transformer {
	var chain []transform.Transformer
	if o.normalise {
		chain = append(chain, norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	}
	if o.lowercase {
		chain = append(chain, cases.Lower(language.Und))
	}
	if len(chain) == 0 {
		return nil
	}
	return transform.Chain(chain...)
}

// Read returns the whitespace separated words of r in order. Duplicates are
// kept.
func Read(r io.Reader, opts ...Option) ([]string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	t := o.transformer()

	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		w := sc.Text()
		if t != nil {
			var err error
			w, _, err = transform.String(t, w)
			if err != nil {
				return nil, fmt.Errorf("wordlist: transform %q: %w", sc.Text(), err)
			}
		}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: read: %w", err)
	}
	return out, nil
}

// Load reads the word list stored at path.
func Load(path string, opts ...Option) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer f.Close()

	words, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoWords)
	}
	return words, nil
}

// Default returns the embedded word list.
func Default(opts ...Option) ([]string, error) {
	return Read(strings.NewReader(embeddedWords), opts...)
}
