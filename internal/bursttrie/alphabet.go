package bursttrie

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// English is the default alphabet: the 26 lowercase English letters.
const English = "abcdefghijklmnopqrstuvwxyz"

// Alphabet is an ordered set of distinct characters. A character's
// position in the set is its child slot in every node, and the order of
// the set is the collation order of the trie.
type Alphabet struct {
	chars []rune
	index map[rune]int
}

var defaultAlphabet = MustAlphabet(English)

// DefaultAlphabet returns the English alphabet.
func DefaultAlphabet() *Alphabet {
	return defaultAlphabet
}

// NewAlphabet builds an alphabet from the characters of s, in order.
// Characters are folded to lower case; two characters folding to the
// same lower-case character are duplicates.
func NewAlphabet(s string) (*Alphabet, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidAlphabet)
	}
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return NewAlphabetFromSlice(chars)
}

// NewAlphabetFromSlice builds an alphabet from a list of single characters.
func NewAlphabetFromSlice(chars []string) (*Alphabet, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: no characters", ErrInvalidAlphabet)
	}

	a := &Alphabet{
		chars: make([]rune, 0, len(chars)),
		index: make(map[rune]int, len(chars)),
	}
	for i, c := range chars {
		folded := []rune(lower(c))
		if len(folded) != 1 || folded[0] == utf8.RuneError {
			return nil, fmt.Errorf("%w: entry %d (%q) is not a single character", ErrInvalidAlphabet, i, c)
		}
		r := folded[0]
		if prev, ok := a.index[r]; ok {
			return nil, fmt.Errorf("%w: %q repeats entry %d", ErrInvalidAlphabet, c, prev)
		}
		a.index[r] = len(a.chars)
		a.chars = append(a.chars, r)
	}
	return a, nil
}

// MustAlphabet is like NewAlphabet but panics on error.
func MustAlphabet(s string) *Alphabet {
	a, err := NewAlphabet(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of characters in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.chars)
}

// Char returns the character at index i.
func (a *Alphabet) Char(i int) rune {
	return a.chars[i]
}

// Index returns the position of r in the alphabet, case-insensitively.
func (a *Alphabet) Index(r rune) (int, bool) {
	if i, ok := a.index[r]; ok {
		return i, true
	}
	folded := foldRune(r)
	if len(folded) != 1 {
		return 0, false
	}
	i, ok := a.index[folded[0]]
	return i, ok
}

// Contains reports whether r is part of the alphabet, case-insensitively.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.Index(r)
	return ok
}

func (a *Alphabet) String() string {
	return string(a.chars)
}

// Compare orders two strings by the alphabet position of their
// characters; a proper prefix orders before its extensions. Characters
// outside the alphabet order after every member, by code point.
func (a *Alphabet) Compare(x, y string) int {
	for x != "" && y != "" {
		rx, nx := utf8.DecodeRuneInString(x)
		ry, ny := utf8.DecodeRuneInString(y)
		if rx != ry {
			return a.compareRunes(rx, ry)
		}
		x, y = x[nx:], y[ny:]
	}
	switch {
	case x == "" && y == "":
		return 0
	case x == "":
		return -1
	default:
		return 1
	}
}

func (a *Alphabet) compareRunes(x, y rune) int {
	ix, okx := a.index[x]
	iy, oky := a.index[y]
	switch {
	case okx && oky:
		return ix - iy
	case okx:
		return -1
	case oky:
		return 1
	case x < y:
		return -1
	default:
		return 1
	}
}

// normalize folds s to the canonical case of the alphabet, one character
// at a time so that a key agrees with Index on every member.
func (a *Alphabet) normalize(s string) []rune {
	key := make([]rune, 0, len(s))
	for _, r := range s {
		key = append(key, foldRune(r)...)
	}
	return key
}

// validate checks that every character of key is a member.
func (a *Alphabet) validate(key []rune) error {
	for i, r := range key {
		if _, ok := a.index[r]; !ok {
			return fmt.Errorf("%w: %q at position %d is not in alphabet %q", ErrInvalidCharacter, r, i, a.String())
		}
	}
	return nil
}

// indexOf is Index for characters already known to be members.
func (a *Alphabet) indexOf(r rune) int {
	return a.index[r]
}

// lower folds s to lower case. A Caser is stateful, so one is built per
// call to keep read paths safe for concurrent use.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// foldRune lowers r on its own, without the context rules (final sigma)
// that apply when a whole string is folded.
func foldRune(r rune) []rune {
	if r < utf8.RuneSelf {
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		return []rune{r}
	}
	return []rune(lower(string(r)))
}
