package trie

import "fmt"

// Tree is a prefix tree storing a set of strings. Each string is kept as a
// path of characters from the root to a terminal node.
type Tree struct {
	root *Node
	size int
}

// frame is a pending step of a depth-first traversal: a node together with
// the string spelled by the path leading to it.
type frame struct {
	node *Node
	path string
}

// New creates a tree and inserts each of the given strings in order.
// Duplicates are stored once.
func New(initial ...string) *Tree {
	t := &Tree{root: newNode(StartChar)}
	for _, s := range initial {
		t.Insert(s)
	}
	return t
}

// Root returns the root node. The root's character is StartChar.
func (t *Tree) Root() *Node { return t.root }

// Size returns the number of distinct strings stored.
func (t *Tree) Size() int { return t.size }

// IsEmpty reports whether the tree stores no strings.
func (t *Tree) IsEmpty() bool { return t.size == 0 }

// Insert adds s to the tree. Inserting a string that is already stored has
// no effect. The empty string is stored on the root.
func (t *Tree) Insert(s string) {
	current := t.root
	for i := 0; i < len(s); {
		char, size := decodeChar(s[i:])
		current = current.addChild(char)
		i += size
	}
	if !current.terminal {
		current.terminal = true
		t.size++
	}
}

// Contains reports whether s was inserted. A string that only exists as the
// prefix of longer stored strings is not contained.
func (t *Tree) Contains(s string) bool {
	n := t.find(s)
	return n != nil && n.terminal
}

// Complete returns every stored string that starts with prefix, in depth-first
// order: a string comes before its extensions and siblings follow the order
// their edges were inserted. The result is empty, never nil, when nothing
// matches.
func (t *Tree) Complete(prefix string) []string {
	completions := []string{}
	t.Walk(prefix, func(s string) bool {
		completions = append(completions, s)
		return true
	})
	return completions
}

// Strings returns every stored string. It is equivalent to Complete("").
func (t *Tree) Strings() []string {
	return t.Complete("")
}

// Walk calls fn for every stored string starting with prefix, in the same
// order as Complete. Walking stops as soon as fn returns false.
func (t *Tree) Walk(prefix string, fn func(s string) bool) {
	start := t.find(prefix)
	if start == nil {
		return
	}
	stack := []frame{{node: start, path: prefix}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.node.terminal && !fn(top.path) {
			return
		}
		// push in reverse so the first inserted child is visited first
		for i := len(top.node.order) - 1; i >= 0; i-- {
			char := top.node.order[i]
			stack = append(stack, frame{
				node: top.node.children[char],
				path: appendChar(top.path, char),
			})
		}
	}
}

// String implements fmt.Stringer.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree%q", t.Strings())
}

// find returns the node reached by following s from the root, or nil when
// some character of s has no edge.
func (t *Tree) find(s string) *Node {
	current := t.root
	for i := 0; i < len(s); {
		char, size := decodeChar(s[i:])
		next, ok := current.children[char]
		if !ok {
			return nil
		}
		current = next
		i += size
	}
	return current
}
