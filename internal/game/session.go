// Package game implements the word bank game played against a trie.Tree: a
// player lists words containing every letter of a random bank and scores a
// point for each new dictionary word.
package game

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Dictionary answers whether a lower case word is valid. *trie.Tree
// satisfies it.
type Dictionary interface {
	Contains(word string) bool
}

// Suggester is implemented by dictionaries that can propose close words.
type Suggester interface {
	Suggest(word string, limit int) []string
}

// Outcome is the result of a single guess.
type Outcome int

const (
	// MissingLetters means the guess lacks at least one bank letter.
	MissingLetters Outcome = iota
	// NotAWord means the dictionary does not contain the guess.
	NotAWord
	// AlreadyUsed means the guess already scored.
	AlreadyUsed
	// Accepted means the guess scored a point.
	Accepted
)

func (o Outcome) String() string {
	switch o {
	case MissingLetters:
		return "missing letters"
	case NotAWord:
		return "not a word"
	case AlreadyUsed:
		return "already used"
	case Accepted:
		return "accepted"
	default:
		return "unknown"
	}
}

// Session tracks the words accepted for one bank. It is not safe for
// concurrent use.
type Session struct {
	dict  Dictionary
	bank  Bank
	lower cases.Caser
	used  map[string]struct{}
	order []string
}

// NewSession starts a game for bank checked against dict.
func NewSession(dict Dictionary, bank Bank) *Session {
	return &Session{
		dict:  dict,
		bank:  bank,
		lower: cases.Lower(language.Und),
		used:  make(map[string]struct{}),
	}
}

// Bank returns the session's bank.
func (s *Session) Bank() Bank { return s.bank }

// Score returns the number of accepted words.
func (s *Session) Score() int { return len(s.order) }

// Used returns the accepted words in the order they were accepted.
func (s *Session) Used() []string {
	return append([]string(nil), s.order...)
}

// Guess lowercases word and scores it. The bank is checked first, then the
// dictionary, then whether the word already scored.
func (s *Session) Guess(word string) Outcome {
	w := s.normalise(word)
	if !s.bank.covers(w) {
		return MissingLetters
	}
	if !s.dict.Contains(w) {
		return NotAWord
	}
	if _, ok := s.used[w]; ok {
		return AlreadyUsed
	}
	s.used[w] = struct{}{}
	s.order = append(s.order, w)
	return Accepted
}

// Suggestions returns up to limit unused dictionary words close to word that
// also contain every bank letter. It returns nil when the dictionary cannot
// suggest.
func (s *Session) Suggestions(word string, limit int) []string {
	sg, ok := s.dict.(Suggester)
	if !ok || limit <= 0 {
		return nil
	}
	var out []string
	for _, candidate := range sg.Suggest(s.normalise(word), 0) {
		if _, used := s.used[candidate]; used || !s.bank.covers(candidate) {
			continue
		}
		out = append(out, candidate)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (s *Session) normalise(word string) string {
	return s.lower.String(strings.TrimSpace(word))
}
