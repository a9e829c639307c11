package trie

import (
	"sort"
	"unicode/utf8"
)

const (
	shortStringLevenshteinLimit  uint8 = 0
	mediumStringLevenshteinLimit uint8 = 1
	longStringLevenshteinLimit   uint8 = 2

	mediumStringThreshold = 3
	longStringThreshold   = 5
)

type suggestion struct {
	word     string
	distance int
}

// suggestFrame is a traversal step carrying the edit distance row between the
// searched word and the path spelled so far.
type suggestFrame struct {
	node *Node
	path string
	row  []int
}

// Suggest returns stored strings close to word. Words of 1-2 runes allow no
// distance, words of 3-4 runes allow a levenshtein distance of 1 and longer
// words allow a distance of 2. See SuggestWithin for ordering and limit.
func (t *Tree) Suggest(word string, limit int) []string {
	return t.SuggestWithin(word, maxDistance(word), limit)
}

// SuggestWithin returns the stored strings whose levenshtein distance from
// word is at most maxDistance, closest first and alphabetically among equal
// distances. A limit of 0 returns every match.
//
// Subtrees are abandoned as soon as no extension of their path can come back
// within maxDistance, so only the region of the tree near word is visited.
func (t *Tree) SuggestWithin(word string, maxDistance uint8, limit int) []string {
	target := chars(word)
	within := int(maxDistance)

	first := make([]int, len(target)+1)
	for i := range first {
		first[i] = i
	}

	var hits []suggestion
	stack := []suggestFrame{{node: t.root, row: first}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if d := top.row[len(target)]; top.node.terminal && d <= within {
			hits = append(hits, suggestion{word: top.path, distance: d})
		}
		if minimum(top.row) > within {
			continue
		}
		for i := len(top.node.order) - 1; i >= 0; i-- {
			char := top.node.order[i]
			stack = append(stack, suggestFrame{
				node: top.node.children[char],
				path: appendChar(top.path, char),
				row:  nextRow(top.row, target, char),
			})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].distance != hits[j].distance {
			return hits[i].distance < hits[j].distance
		}
		return hits[i].word < hits[j].word
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.word
	}
	return out
}

// nextRow computes the edit distance row for the path extended by char.
func nextRow(prev []int, target []rune, char rune) []int {
	row := make([]int, len(prev))
	row[0] = prev[0] + 1
	for i := 1; i < len(row); i++ {
		substitution := prev[i-1]
		if target[i-1] != char {
			substitution++
		}
		row[i] = min(row[i-1]+1, prev[i]+1, substitution)
	}
	return row
}

func minimum(row []int) int {
	m := row[0]
	for _, v := range row[1:] {
		m = min(m, v)
	}
	return m
}

// maxDistance determines the maximum levenshtein distance from the rune
// length of the search string.
func maxDistance(search string) uint8 {
	switch n := utf8.RuneCountInString(search); {
	case n >= longStringThreshold:
		return longStringLevenshteinLimit
	case n >= mediumStringThreshold:
		return mediumStringLevenshteinLimit
	default:
		return shortStringLevenshteinLimit
	}
}
