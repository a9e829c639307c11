package trie

import "unicode/utf8"

// StartChar is the sentinel character held by the root node. It is never part
// of a stored string.
const StartChar rune = 0

// Node is a node in a Tree. It owns its children; no node has more than one
// parent. The path of characters from the root to a terminal node spells a
// stored string.
type Node struct {
	char     rune
	terminal bool
	children map[rune]*Node
	// order records the characters of children in the order the edges were
	// created.
	order []rune
}

// invalidBase offsets a byte that is not valid UTF-8 into the low surrogate
// range, which no valid UTF-8 sequence decodes to. Such bytes keep their own
// edge instead of collapsing into utf8.RuneError.
const invalidBase rune = 0xDC00

// decodeChar returns the edge character at the start of s and its width in
// bytes.
func decodeChar(s string) (rune, int) {
	char, size := utf8.DecodeRuneInString(s)
	if char == utf8.RuneError && size == 1 {
		return invalidBase + rune(s[0]), 1
	}
	return char, size
}

// chars decodes s into edge characters.
func chars(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		char, size := decodeChar(s[i:])
		out = append(out, char)
		i += size
	}
	return out
}

// appendChar appends the bytes char was decoded from.
func appendChar(path string, char rune) string {
	if char >= invalidBase+utf8.RuneSelf && char <= invalidBase+0xFF {
		return path + string([]byte{byte(char - invalidBase)})
	}
	return path + string(char)
}

func newNode(char rune) *Node {
	return &Node{char: char, children: make(map[rune]*Node)}
}

// Char returns the character on the edge from this node's parent. A byte
// that is not valid UTF-8 is reported as 0xDC00 plus the byte value.
func (n *Node) Char() rune { return n.char }

// Terminal reports whether the path to this node spells a stored string.
func (n *Node) Terminal() bool { return n.terminal }

// Len returns the number of children.
func (n *Node) Len() int { return len(n.order) }

// Child returns the child reached by char, if any.
func (n *Node) Child(char rune) (*Node, bool) {
	child, ok := n.children[char]
	return child, ok
}

// Children returns the children in edge insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.order))
	for i, char := range n.order {
		out[i] = n.children[char]
	}
	return out
}

// addChild returns the child for char, creating it if needed.
func (n *Node) addChild(char rune) *Node {
	if child, ok := n.children[char]; ok {
		return child
	}
	child := newNode(char)
	n.children[char] = child
	n.order = append(n.order, char)
	return child
}
