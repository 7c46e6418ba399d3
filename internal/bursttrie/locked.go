package bursttrie

import "sync"

// Locked guards a Trie for concurrent use. Mutations take the lock
// exclusively; lookups and traversals share it.
type Locked struct {
	mu   sync.RWMutex
	trie *Trie
}

// NewLocked wraps t. t must not be used directly while l is shared.
func NewLocked(t *Trie) *Locked {
	return &Locked{trie: t}
}

// Insert adds s.
func (l *Locked) Insert(s string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.trie.Insert(s)
}

// InsertAll adds items under a single lock acquisition, stopping at the
// first invalid item. It returns the number of items inserted; on error
// that is the index of the failing item, and the items before it stay
// inserted.
func (l *Locked) InsertAll(items []string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, item := range items {
		if err := l.trie.Insert(item); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

// Remove deletes s and reports whether it was stored.
func (l *Locked) Remove(s string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.trie.Remove(s)
}

// Search reports whether s is stored.
func (l *Locked) Search(s string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.trie.Search(s)
}

// DFT returns every stored string in sorted order.
func (l *Locked) DFT() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.trie.DFT()
}

// WithPrefix returns the stored strings starting with prefix.
func (l *Locked) WithPrefix(prefix string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.trie.WithPrefix(prefix)
}

// Len returns the number of stored strings.
func (l *Locked) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.trie.Len()
}
