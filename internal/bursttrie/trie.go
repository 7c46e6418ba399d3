// Package bursttrie implements a burst trie: a trie whose nodes buffer
// rarely shared suffixes in small sorted containers and only grow child
// nodes once a container overflows. A depth-first traversal yields the
// stored strings in sorted order.
package bursttrie

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultMaxKeyLength bounds key length, and with it recursion depth.
const DefaultMaxKeyLength = 4096

// Trie is a burst trie rooted at an empty-prefix node. It is not safe
// for concurrent use; see Locked.
type Trie struct {
	root *Node

	alphabet     *Alphabet
	capacity     int
	maxKeyLength int
	logger       zerolog.Logger

	// size counts stored strings
	size int
}

// Option configures a Trie
type Option func(*Trie)

// WithAlphabet sets the alphabet. A nil alphabet selects English.
func WithAlphabet(alphabet *Alphabet) Option {
	return func(t *Trie) {
		t.alphabet = alphabet
	}
}

// WithCapacity sets the container capacity
func WithCapacity(capacity int) Option {
	return func(t *Trie) {
		t.capacity = capacity
	}
}

// WithMaxKeyLength sets the longest accepted key in characters; zero
// disables the limit
func WithMaxKeyLength(n int) Option {
	return func(t *Trie) {
		t.maxKeyLength = n
	}
}

// WithLogger sets the logger used for burst and prune events
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Trie) {
		t.logger = logger
	}
}

// New creates an empty trie.
func New(opts ...Option) (*Trie, error) {
	t := &Trie{
		alphabet:     DefaultAlphabet(),
		capacity:     DefaultCapacity,
		maxKeyLength: DefaultMaxKeyLength,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.maxKeyLength < 0 {
		return nil, fmt.Errorf("invalid max key length: %d", t.maxKeyLength)
	}

	cfg, err := newSettings(t.alphabet, t.capacity)
	if err != nil {
		return nil, err
	}
	cfg.logger = t.logger
	t.alphabet = cfg.alphabet
	t.root = newNode(0, true, cfg)
	return t, nil
}

// Insert adds s. It fails with ErrInvalidCharacter or ErrKeyTooLong
// without modifying the trie.
func (t *Trie) Insert(s string) error {
	key := t.alphabet.normalize(s)
	if t.tooLong(key) {
		return fmt.Errorf("%w: %d characters, limit is %d", ErrKeyTooLong, len(key), t.maxKeyLength)
	}
	if err := t.alphabet.validate(key); err != nil {
		return err
	}
	if t.root.insert(key) {
		t.size++
	}
	return nil
}

// Search reports whether s is stored.
func (t *Trie) Search(s string) bool {
	key := t.alphabet.normalize(s)
	if t.tooLong(key) || t.alphabet.validate(key) != nil {
		return false
	}
	return t.root.search(key)
}

// Remove deletes s and reports whether it was stored.
func (t *Trie) Remove(s string) bool {
	key := t.alphabet.normalize(s)
	if t.tooLong(key) || t.alphabet.validate(key) != nil || !t.root.search(key) {
		return false
	}
	t.root.remove(key)
	t.size--
	return true
}

// DFT returns every stored string in sorted order.
func (t *Trie) DFT() []string {
	return t.root.DFT()
}

// Walk visits every stored string in sorted order until fn returns false.
func (t *Trie) Walk(fn WalkFunc) {
	t.root.Walk(fn)
}

// WithPrefix returns the stored strings starting with prefix, sorted.
func (t *Trie) WithPrefix(prefix string) []string {
	return t.root.WithPrefix(prefix)
}

// Len returns the number of stored strings.
func (t *Trie) Len() int {
	return t.size
}

// Stats describes the current structure.
func (t *Trie) Stats() Stats {
	return t.root.Stats()
}

// Root returns the root node for read-only inspection. Mutating it with
// Node.Insert or Node.Remove bypasses the length limit and leaves Len
// stale; use the Trie methods instead.
func (t *Trie) Root() *Node {
	return t.root
}

// Alphabet returns the trie's alphabet.
func (t *Trie) Alphabet() *Alphabet {
	return t.alphabet
}

// Capacity returns the container capacity.
func (t *Trie) Capacity() int {
	return t.capacity
}

func (t *Trie) String() string {
	return t.root.String()
}

func (t *Trie) tooLong(key []rune) bool {
	return t.maxKeyLength > 0 && len(key) > t.maxKeyLength
}
