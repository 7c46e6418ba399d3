// Package sorts holds the burst sort algorithm, a client of the burst trie.
package sorts

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kumarlokesh/burst-sort/internal/bursttrie"
)

// maxLineSize bounds a single input line read by ReadLines.
const maxLineSize = 1 << 20

// BurstSort returns items lower-cased, deduplicated and sorted in the
// order of the trie's alphabet. It stops at the first item containing a
// character outside the alphabet.
func BurstSort(items []string, opts ...bursttrie.Option) ([]string, error) {
	trie, err := bursttrie.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create trie: %w", err)
	}
	for i, item := range items {
		if err := trie.Insert(item); err != nil {
			return nil, fmt.Errorf("failed to insert item %d (%q): %w", i, item, err)
		}
	}
	return trie.DFT(), nil
}

// ReadLines reads r line by line, dropping line terminators, including a
// trailing carriage return.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}
