package main

import (
	"bufio"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/kumarlokesh/burst-sort/internal/bursttrie"
	"github.com/kumarlokesh/burst-sort/internal/sorts"
)

func runSort(cctx *cli.Context) error {
	e, err := setup(cctx)
	if err != nil {
		return err
	}
	trie, err := e.load(cctx.Context, cctx.Args().Slice(), cctx.App.Reader)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cctx.App.Writer)
	trie.Walk(func(s string) bool {
		_, err = fmt.Fprintln(w, s)
		return err == nil
	})
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return w.Flush()
}

func runSearch(cctx *cli.Context) error {
	if cctx.NArg() == 0 {
		return errors.New("search requires at least one word")
	}
	_, trie, err := loadInput(cctx)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cctx.App.Writer)
	for _, word := range cctx.Args().Slice() {
		result := "missing"
		if trie.Search(word) {
			result = "found"
		}
		fmt.Fprintf(w, "%s\t%s\n", word, result)
	}
	return w.Flush()
}

func runPrefix(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return errors.New("prefix requires exactly one prefix")
	}
	_, trie, err := loadInput(cctx)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cctx.App.Writer)
	for _, s := range trie.WithPrefix(cctx.Args().First()) {
		fmt.Fprintln(w, s)
	}
	return w.Flush()
}

func runDump(cctx *cli.Context) error {
	_, trie, err := loadInput(cctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cctx.App.Writer, trie.String())
	return err
}

func runStats(cctx *cli.Context) error {
	_, trie, err := loadInput(cctx)
	if err != nil {
		return err
	}

	stats := trie.Stats()
	w := bufio.NewWriter(cctx.App.Writer)
	fmt.Fprintf(w, "alphabet:    %s\n", trie.Alphabet())
	fmt.Fprintf(w, "capacity:    %d\n", trie.Capacity())
	fmt.Fprintf(w, "strings:     %s\n", humanize.Comma(int64(stats.Strings())))
	fmt.Fprintf(w, "nodes:       %s\n", humanize.Comma(int64(stats.Nodes)))
	fmt.Fprintf(w, "containers:  %s\n", humanize.Comma(int64(stats.Containers)))
	fmt.Fprintf(w, "suffixes:    %s\n", humanize.Comma(int64(stats.Suffixes)))
	fmt.Fprintf(w, "completions: %s\n", humanize.Comma(int64(stats.Completions)))
	fmt.Fprintf(w, "max depth:   %d\n", stats.MaxDepth)
	return w.Flush()
}

func runGen(cctx *cli.Context) error {
	e, err := setup(cctx)
	if err != nil {
		return err
	}
	count, err := wordCount(cctx)
	if err != nil {
		return err
	}
	alphabet, err := bursttrie.NewAlphabet(e.cfg.Trie.Alphabet)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cctx.App.Writer)
	for _, word := range randomWords(alphabet, count, cctx.Int64("seed")) {
		fmt.Fprintln(w, word)
	}
	return w.Flush()
}

func runBench(cctx *cli.Context) error {
	e, err := setup(cctx)
	if err != nil {
		return err
	}
	count, err := wordCount(cctx)
	if err != nil {
		return err
	}
	opts, err := e.cfg.Trie.Options()
	if err != nil {
		return err
	}
	alphabet, err := bursttrie.NewAlphabet(e.cfg.Trie.Alphabet)
	if err != nil {
		return err
	}

	words := randomWords(alphabet, count, cctx.Int64("seed"))

	start := time.Now()
	burst, err := sorts.BurstSort(words, opts...)
	if err != nil {
		return err
	}
	burstTime := time.Since(start)

	start = time.Now()
	std := slices.Clone(words)
	sort.Strings(std)
	std = slices.Compact(std)
	stdTime := time.Since(start)

	e.logger.Debug().
		Int("words", len(words)).
		Dur("burst", burstTime).
		Dur("std", stdTime).
		Msg("benchmark finished")

	w := bufio.NewWriter(cctx.App.Writer)
	fmt.Fprintf(w, "words:        %s (%s unique)\n", humanize.Comma(int64(len(words))), humanize.Comma(int64(len(burst))))
	fmt.Fprintf(w, "burst sort:   %s\n", burstTime.Round(time.Microsecond))
	fmt.Fprintf(w, "sort.Strings: %s\n", stdTime.Round(time.Microsecond))
	fmt.Fprintf(w, "same order:   %t\n", slices.Equal(burst, std))
	return w.Flush()
}

func wordCount(cctx *cli.Context) (int, error) {
	count := cctx.Int("count")
	if count < 0 {
		return 0, fmt.Errorf("--count must not be negative, got %d", count)
	}
	return count, nil
}

// randomWords returns count lower-case words over alphabet. Dictionary
// words are used when they fit the alphabet, random strings of its
// characters otherwise.
func randomWords(alphabet *bursttrie.Alphabet, count int, seed int64) []string {
	f := gofakeit.New(seed)
	words := make([]string, 0, count)
	for len(words) < count {
		word := strings.ToLower(f.Word())
		if !fits(alphabet, word) {
			var b strings.Builder
			for n := f.Number(1, 12); n > 0; n-- {
				b.WriteRune(alphabet.Char(f.Number(0, alphabet.Len()-1)))
			}
			word = b.String()
		}
		words = append(words, word)
	}
	return words
}

func fits(alphabet *bursttrie.Alphabet, word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !alphabet.Contains(r) {
			return false
		}
	}
	return true
}
