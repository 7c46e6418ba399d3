package bursttrie

import "unicode/utf8"

// Insert adds s below n. s is folded to lower case and every character
// is checked against the alphabet before anything is modified, so a
// failed insert leaves the node untouched.
func (n *Node) Insert(s string) error {
	key := n.cfg.alphabet.normalize(s)
	if err := n.cfg.alphabet.validate(key); err != nil {
		return err
	}
	n.insert(key)
	return nil
}

// insert stores a validated key and reports whether it was not already present.
func (n *Node) insert(key []rune) bool {
	if len(key) == 0 {
		added := !n.completesString
		n.completesString = true
		return added
	}

	i := n.cfg.alphabet.indexOf(key[0])
	if child := n.children[i]; child != nil {
		return child.insert(key[1:])
	}

	// The root never buffers: every first character gets its own node.
	if n.isRoot {
		return n.spawn(i).insert(key[1:])
	}

	added := n.container.Insert(string(key))
	if n.container.IsFull() {
		n.burst()
	}
	return added
}

// burst drains the container into child nodes keyed by each suffix's
// first character.
func (n *Node) burst() {
	suffixes := n.container.Burst()
	n.cfg.logger.Debug().
		Str("node", n.label()).
		Int("suffixes", len(suffixes)).
		Msg("bursting container")

	for _, suffix := range suffixes {
		r, size := utf8.DecodeRuneInString(suffix)
		i := n.cfg.alphabet.indexOf(r)
		child := n.children[i]
		if child == nil {
			child = n.spawn(i)
		}
		child.insert([]rune(suffix[size:]))
	}
}

// Search reports whether word is stored below n. Only whole strings
// match; a word with characters outside the alphabet is never found.
func (n *Node) Search(word string) bool {
	key := n.cfg.alphabet.normalize(word)
	if n.cfg.alphabet.validate(key) != nil {
		return false
	}
	return n.search(key)
}

func (n *Node) search(key []rune) bool {
	if len(key) == 0 {
		return n.completesString
	}
	if n.container.Search(string(key)) {
		return true
	}
	child := n.children[n.cfg.alphabet.indexOf(key[0])]
	if child == nil {
		return false
	}
	return child.search(key[1:])
}

// Remove deletes word from below n and reports whether it was present.
// Nodes left without a completion, children or suffixes are detached
// from their parents.
func (n *Node) Remove(word string) bool {
	key := n.cfg.alphabet.normalize(word)
	if n.cfg.alphabet.validate(key) != nil || !n.search(key) {
		return false
	}
	n.remove(key)
	return true
}

// remove deletes a key known to be present and reports whether n is
// now prunable.
func (n *Node) remove(key []rune) bool {
	switch suffix := string(key); {
	case len(key) == 0:
		n.completesString = false
	case n.container.Search(suffix):
		n.container.Remove(suffix)
	default:
		i := n.cfg.alphabet.indexOf(key[0])
		if n.children[i].remove(key[1:]) {
			n.cfg.logger.Debug().
				Str("node", n.label()).
				Str("child", string(key[0])).
				Msg("pruning empty child")
			n.detach(i)
		}
	}
	return n.prunable()
}
