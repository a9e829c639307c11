package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// Console plays a Session interactively over a line based reader and writer.
type Console struct {
	session     *Session
	suggestions int
	logger      zerolog.Logger
}

// NewConsole returns a console for session. When suggestions is positive and
// the dictionary is a Suggester, up to that many close words are offered
// after an invalid guess.
func NewConsole(session *Session, suggestions int, logger zerolog.Logger) *Console {
	return &Console{session: session, suggestions: suggestions, logger: logger}
}

// console output with the first write error kept.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Run plays until the player answers "n" to the continue prompt or input
// ends, and returns the final score.
func (c *Console) Run(in io.Reader, out io.Writer) (int, error) {
	sc := bufio.NewScanner(in)
	p := &printer{w: out}

	p.printf("List as many words as you can that contain the following characters "+
		"(you can use each character more than once): %s\n", c.session.Bank())

	for p.err == nil {
		p.printf("Enter a word: ")
		if !sc.Scan() {
			break
		}
		word := sc.Text()
		outcome := c.session.Guess(word)
		c.logger.Debug().Str("word", word).Stringer("outcome", outcome).Msg("guess")

		switch outcome {
		case MissingLetters:
			p.printf("You must use each character in the bank at least once! Try again.\n")
		case NotAWord:
			p.printf("Not a valid word.")
			if hints := c.session.Suggestions(word, c.suggestions); len(hints) > 0 {
				p.printf(" Did you mean: %s?", strings.Join(hints, ", "))
			}
			p.printf("\n")
		case AlreadyUsed:
			p.printf("You already used that word.\n")
		case Accepted:
			p.printf("Correct! You have %d correct word(s).\n", c.session.Score())
		}

		p.printf("Would you like to continue? (y/n): ")
		if !sc.Scan() || strings.TrimSpace(sc.Text()) == "n" {
			break
		}
	}
	if p.err != nil {
		return c.session.Score(), fmt.Errorf("game: write: %w", p.err)
	}
	if err := sc.Err(); err != nil {
		return c.session.Score(), fmt.Errorf("game: read: %w", err)
	}

	p.printf("\nGame Ended. You got %d correct word(s).\n", c.session.Score())
	if p.err != nil {
		return c.session.Score(), fmt.Errorf("game: write: %w", p.err)
	}
	return c.session.Score(), nil
}
