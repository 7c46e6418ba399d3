package bursttrie

import (
	"fmt"

	"github.com/rs/zerolog"
)

// settings is shared read-only by every node of one trie.
type settings struct {
	alphabet *Alphabet
	capacity int
	logger   zerolog.Logger
}

func newSettings(alphabet *Alphabet, capacity int) (*settings, error) {
	if alphabet == nil {
		alphabet = DefaultAlphabet()
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &settings{
		alphabet: alphabet,
		capacity: capacity,
		logger:   zerolog.Nop(),
	}, nil
}

// Node is one node of a burst trie. A non-root node stands for a single
// alphabet character; the root stands for the empty prefix. A node owns
// one child slot per alphabet character and a container of suffixes not
// yet promoted to child nodes.
type Node struct {
	value           rune
	isRoot          bool
	completesString bool

	children []*Node
	// live counts the occupied child slots
	live      int
	container *Container

	cfg *settings
}

// NewRoot creates an empty root node. A nil alphabet selects English.
func NewRoot(alphabet *Alphabet, capacity int) (*Node, error) {
	cfg, err := newSettings(alphabet, capacity)
	if err != nil {
		return nil, err
	}
	return newNode(0, true, cfg), nil
}

// NewNode creates a non-root node for value. The value must belong to the
// alphabet, case-insensitively.
func NewNode(value rune, alphabet *Alphabet, capacity int) (*Node, error) {
	cfg, err := newSettings(alphabet, capacity)
	if err != nil {
		return nil, err
	}
	i, ok := cfg.alphabet.Index(value)
	if !ok {
		return nil, fmt.Errorf("%w: node value %q is not in alphabet %q", ErrInvalidCharacter, value, cfg.alphabet.String())
	}
	return newNode(cfg.alphabet.Char(i), false, cfg), nil
}

func newNode(value rune, isRoot bool, cfg *settings) *Node {
	return &Node{
		value:     value,
		isRoot:    isRoot,
		children:  make([]*Node, cfg.alphabet.Len()),
		container: newContainer(cfg.capacity, cfg.alphabet.Compare),
		cfg:       cfg,
	}
}

// Value returns the node's character. ok is false for the root.
func (n *Node) Value() (value rune, ok bool) {
	return n.value, !n.isRoot
}

// IsRoot reports whether n is a root node.
func (n *Node) IsRoot() bool {
	return n.isRoot
}

// CompletesString reports whether the path ending at n is a stored string.
func (n *Node) CompletesString() bool {
	return n.completesString
}

// Children returns the child slots in alphabet order; empty slots are nil.
// The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the child for r, or nil.
func (n *Node) Child(r rune) *Node {
	i, ok := n.cfg.alphabet.Index(r)
	if !ok {
		return nil
	}
	return n.children[i]
}

// NumChildren returns the number of occupied child slots.
func (n *Node) NumChildren() int {
	return n.live
}

// Container returns the node's suffix container.
func (n *Node) Container() *Container {
	return n.container
}

// Alphabet returns the alphabet shared by the node and its descendants.
func (n *Node) Alphabet() *Alphabet {
	return n.cfg.alphabet
}

// prunable reports whether n holds no string data and can be detached.
func (n *Node) prunable() bool {
	return !n.isRoot && !n.completesString && n.live == 0 && n.container.Len() == 0
}

// spawn creates the child at slot i.
func (n *Node) spawn(i int) *Node {
	child := newNode(n.cfg.alphabet.Char(i), false, n.cfg)
	n.children[i] = child
	n.live++
	return child
}

// detach drops the child at slot i.
func (n *Node) detach(i int) {
	n.children[i] = nil
	n.live--
}

// label names the node in logs and dumps.
func (n *Node) label() string {
	if n.isRoot {
		return "<root>"
	}
	return string(n.value)
}
