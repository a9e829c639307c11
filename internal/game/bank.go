package game

import (
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// Vowels holds the letters of which every bank contains at least one.
	Vowels = "AEIOU"

	letters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	maxBankDraw = 4
)

// Bank is the set of upper case letters every guessed word must contain.
type Bank string

// NewBank draws between one and four letters, dropping repeats, and adds a
// vowel when none was drawn.
func NewBank(r *rand.Rand) Bank {
	var b strings.Builder
	for i := r.IntN(maxBankDraw) + 1; i > 0; i-- {
		letter := letters[r.IntN(len(letters))]
		if !strings.ContainsRune(b.String(), rune(letter)) {
			b.WriteByte(letter)
		}
	}
	if !strings.ContainsAny(b.String(), Vowels) {
		b.WriteByte(Vowels[r.IntN(len(Vowels))])
	}
	return Bank(b.String())
}

func (b Bank) String() string { return string(b) }

// CoveredBy reports whether every bank letter appears in word, ignoring case.
// Letters may be used more than once.
func (b Bank) CoveredBy(word string) bool {
	return b.covers(cases.Lower(language.Und).String(word))
}

// covers is CoveredBy for a word that is already lower case.
func (b Bank) covers(lower string) bool {
	for _, letter := range strings.ToLower(string(b)) {
		if !strings.ContainsRune(lower, letter) {
			return false
		}
	}
	return true
}
