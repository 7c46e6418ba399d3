package bursttrie

import "errors"

var (
	// ErrInvalidCharacter is returned when a node value or an inserted
	// character is not part of the trie's alphabet
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidAlphabet is returned when an alphabet is empty or repeats a character
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrInvalidCapacity is returned for a container capacity below one
	ErrInvalidCapacity = errors.New("invalid container capacity")
	// ErrKeyTooLong is returned when a key exceeds the configured maximum length
	ErrKeyTooLong = errors.New("key too long")
)
