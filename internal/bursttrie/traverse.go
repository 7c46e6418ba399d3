package bursttrie

import (
	"strings"
	"unicode/utf8"
)

// WalkFunc is called for each stored string in sorted order.
// If it returns false, the walk stops.
type WalkFunc func(s string) bool

// DFT returns every string stored below n in sorted order, with the
// path prefix rebuilt. For a non-root node the prefix starts with the
// node's own character.
func (n *Node) DFT() []string {
	words := make([]string, 0)
	n.Walk(collect(&words))
	return words
}

// Walk visits every string stored below n in sorted order.
func (n *Node) Walk(fn WalkFunc) {
	n.walk(nil, fn)
}

// walk emits n's completion, then for each alphabet slot in order the
// child's strings and the container suffixes starting with that
// character. A container never holds a suffix whose first character has
// a child, so at most one of the two contributes per slot.
func (n *Node) walk(prefix []rune, fn WalkFunc) bool {
	if !n.isRoot {
		prefix = append(prefix, n.value)
	}
	if n.completesString && !fn(string(prefix)) {
		return false
	}

	base := string(prefix)
	suffixes := n.container.Suffixes()
	j := 0
	for i, child := range n.children {
		if child != nil && !child.walk(prefix, fn) {
			return false
		}
		for ; j < len(suffixes) && n.firstIndex(suffixes[j]) == i; j++ {
			if !fn(base + suffixes[j]) {
				return false
			}
		}
	}
	return true
}

func (n *Node) firstIndex(suffix string) int {
	r, _ := utf8.DecodeRuneInString(suffix)
	return n.cfg.alphabet.indexOf(r)
}

// WithPrefix returns the strings stored below n that start with prefix,
// in sorted order. For a non-root node the prefix is matched after the
// node's own character.
func (n *Node) WithPrefix(prefix string) []string {
	words := make([]string, 0)
	key := n.cfg.alphabet.normalize(prefix)
	if n.cfg.alphabet.validate(key) != nil {
		return words
	}

	var path []rune
	if !n.isRoot {
		path = append(path, n.value)
	}

	node := n
	for len(key) > 0 {
		rest := string(key)
		base := string(path)
		for _, suffix := range node.container.Suffixes() {
			if strings.HasPrefix(suffix, rest) {
				words = append(words, base+suffix)
			}
		}
		child := node.children[n.cfg.alphabet.indexOf(key[0])]
		if child == nil {
			return words
		}
		path = append(path, key[0])
		key = key[1:]
		node = child
	}

	if node.isRoot {
		node.walk(path, collect(&words))
	} else {
		node.walk(path[:len(path)-1], collect(&words))
	}
	return words
}

func collect(words *[]string) WalkFunc {
	return func(s string) bool {
		*words = append(*words, s)
		return true
	}
}
