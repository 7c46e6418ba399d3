package bursttrie

import (
	"fmt"
	"strings"
)

// Stats describes the shape of a trie.
type Stats struct {
	Nodes       int // nodes including the starting node
	Containers  int // non-empty containers
	Suffixes    int // strings held in containers
	Completions int // strings ending at a node
	MaxDepth    int // deepest node below the starting node
}

// Strings returns the number of stored strings.
func (s Stats) Strings() int {
	return s.Suffixes + s.Completions
}

// Stats walks the structure below n.
func (n *Node) Stats() Stats {
	var s Stats
	n.stats(0, &s)
	return s
}

func (n *Node) stats(depth int, s *Stats) {
	s.Nodes++
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	if n.completesString {
		s.Completions++
	}
	if l := n.container.Len(); l > 0 {
		s.Containers++
		s.Suffixes += l
	}
	for _, child := range n.children {
		if child != nil {
			child.stats(depth+1, s)
		}
	}
}

// String dumps the structure below n: for each node its character
// (starred when it completes a string), its children's characters, its
// container, then each child in turn.
func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b)
	return b.String()
}

func (n *Node) dump(b *strings.Builder) {
	b.WriteString(n.label())
	if n.completesString {
		b.WriteByte('*')
	}
	b.WriteByte('\n')

	for _, child := range n.children {
		if child != nil {
			b.WriteString(child.label())
			b.WriteString(", ")
		}
	}
	fmt.Fprintf(b, "Container: %s\n", n.container)

	for _, child := range n.children {
		if child != nil {
			child.dump(b)
		}
	}
}
