package bursttrie

import (
	"bytes"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomWords returns count seeded random words of 1 to maxLen letters,
// in mixed case.
func randomWords(seed int64, count, maxLen int) []string {
	f := gofakeit.New(seed)
	words := make([]string, count)
	for i := range words {
		words[i] = f.LetterN(uint(f.Number(1, maxLen)))
	}
	return words
}

// sortedUnique lower-cases, sorts and deduplicates words.
func sortedUnique(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, strings.ToLower(w))
	}
	sort.Strings(out)
	return slices.Compact(out)
}

func TestTrie_New(t *testing.T) {
	trie, err := New()
	require.NoError(t, err)
	assert.Equal(t, English, trie.Alphabet().String())
	assert.Equal(t, DefaultCapacity, trie.Capacity())
	assert.Zero(t, trie.Len())
	assert.True(t, trie.Root().IsRoot())

	_, err = New(WithCapacity(0))
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = New(WithMaxKeyLength(-1))
	assert.Error(t, err)

	trie, err = New(WithAlphabet(nil))
	require.NoError(t, err)
	assert.Equal(t, English, trie.Alphabet().String())
}

func TestTrie_SortedRoundTrip(t *testing.T) {
	words := randomWords(42, 2000, 12)
	want := sortedUnique(words)

	for _, capacity := range []int{1, 2, 5, 16, 1000} {
		trie, err := New(WithCapacity(capacity))
		require.NoError(t, err)
		for _, w := range words {
			require.NoError(t, trie.Insert(w))
		}

		assert.Equal(t, want, trie.DFT(), "capacity %d", capacity)
		assert.Equal(t, len(want), trie.Len(), "capacity %d", capacity)
		assert.Equal(t, len(want), trie.Stats().Strings(), "capacity %d", capacity)
		checkStructure(t, trie.Root())
	}
}

func TestTrie_InsertionOrderDoesNotMatter(t *testing.T) {
	words := randomWords(7, 500, 8)
	reversed := slices.Clone(words)
	slices.Reverse(reversed)

	a, err := New()
	require.NoError(t, err)
	b, err := New()
	require.NoError(t, err)
	for i := range words {
		require.NoError(t, a.Insert(words[i]))
		require.NoError(t, b.Insert(reversed[i]))
	}

	assert.Equal(t, a.DFT(), b.DFT())
}

func TestTrie_InsertIdempotent(t *testing.T) {
	once, err := New()
	require.NoError(t, err)
	twice, err := New()
	require.NoError(t, err)

	for _, w := range scenarioWords {
		require.NoError(t, once.Insert(w))
		require.NoError(t, twice.Insert(w))
		require.NoError(t, twice.Insert(w))
	}

	assert.Equal(t, once.DFT(), twice.DFT())
	assert.Equal(t, once.String(), twice.String())
	assert.Equal(t, len(scenarioWords), twice.Len())
}

func TestTrie_Membership(t *testing.T) {
	words := randomWords(99, 1000, 10)
	inserted := words[:500]
	stored := make(map[string]bool)

	trie, err := New()
	require.NoError(t, err)
	for _, w := range inserted {
		require.NoError(t, trie.Insert(w))
		stored[strings.ToLower(w)] = true
	}

	for _, w := range words {
		assert.Equal(t, stored[strings.ToLower(w)], trie.Search(w), "search %q", w)
	}
}

func TestTrie_RemoveThenSearch(t *testing.T) {
	words := sortedUnique(randomWords(1234, 1500, 9))

	trie, err := New(WithCapacity(3))
	require.NoError(t, err)
	for _, w := range words {
		require.NoError(t, trie.Insert(w))
	}

	var kept []string
	for i, w := range words {
		if i%2 == 0 {
			require.True(t, trie.Remove(w), "remove %q", w)
			assert.False(t, trie.Search(w), "search %q after remove", w)
			assert.False(t, trie.Remove(w), "second remove of %q", w)
		} else {
			kept = append(kept, w)
		}
	}

	for _, w := range kept {
		assert.True(t, trie.Search(w), "search %q", w)
	}
	assert.Equal(t, kept, trie.DFT())
	assert.Equal(t, len(kept), trie.Len())
	checkStructure(t, trie.Root())

	for _, w := range kept {
		require.True(t, trie.Remove(w))
	}
	assert.Zero(t, trie.Len())
	assert.Equal(t, 1, trie.Stats().Nodes)
}

func TestTrie_CustomAlphabet(t *testing.T) {
	alphabet, err := NewAlphabet("zyxwvutsrqponmlkjihgfedcba")
	require.NoError(t, err)

	words := randomWords(5, 800, 7)
	want := sortedUnique(words)
	slices.SortFunc(want, alphabet.Compare)

	trie, err := New(WithAlphabet(alphabet), WithCapacity(2))
	require.NoError(t, err)
	for _, w := range words {
		require.NoError(t, trie.Insert(w))
	}

	assert.Equal(t, want, trie.DFT())
	checkStructure(t, trie.Root())
}

func TestTrie_DigitAlphabet(t *testing.T) {
	alphabet, err := NewAlphabet("0123456789")
	require.NoError(t, err)
	trie, err := New(WithAlphabet(alphabet))
	require.NoError(t, err)

	for _, w := range []string{"42", "7", "420", "1000", "07", "9"} {
		require.NoError(t, trie.Insert(w))
	}
	assert.Equal(t, []string{"07", "1000", "42", "420", "7", "9"}, trie.DFT())

	err = trie.Insert("4a")
	assert.ErrorIs(t, err, ErrInvalidCharacter)
}

func TestTrie_InvalidCharacterLeavesTrieUnchanged(t *testing.T) {
	trie, err := New()
	require.NoError(t, err)
	for _, w := range scenarioWords {
		require.NoError(t, trie.Insert(w))
	}
	before := trie.String()

	err = trie.Insert("Xb0x")
	require.ErrorIs(t, err, ErrInvalidCharacter)
	assert.Equal(t, before, trie.String())
	assert.Equal(t, scenarioSorted, trie.DFT())
	assert.Equal(t, len(scenarioWords), trie.Len())
	assert.False(t, trie.Search("Xb0x"))
}

func TestTrie_MaxKeyLength(t *testing.T) {
	trie, err := New(WithMaxKeyLength(5))
	require.NoError(t, err)

	require.NoError(t, trie.Insert("abcde"))
	err = trie.Insert("abcdef")
	assert.ErrorIs(t, err, ErrKeyTooLong)
	assert.False(t, trie.Search("abcdef"))
	assert.False(t, trie.Remove("abcdef"))
	assert.Equal(t, []string{"abcde"}, trie.DFT())

	unlimited, err := New(WithMaxKeyLength(0))
	require.NoError(t, err)
	long := strings.Repeat("ab", 50000)
	require.NoError(t, unlimited.Insert(long))
	assert.True(t, unlimited.Search(long))
	assert.Equal(t, []string{long}, unlimited.DFT())
	assert.True(t, unlimited.Remove(long))
	assert.Equal(t, 1, unlimited.Stats().Nodes)
}

func TestTrie_WalkEarlyStop(t *testing.T) {
	trie, err := New()
	require.NoError(t, err)
	for _, w := range scenarioWords {
		require.NoError(t, trie.Insert(w))
	}

	var got []string
	trie.Walk(func(s string) bool {
		got = append(got, s)
		return s != "potato"
	})
	assert.Equal(t, scenarioSorted[:slices.Index(scenarioSorted, "potato")+1], got)
}

func TestTrie_LogsBursts(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	trie, err := New(WithLogger(logger))
	require.NoError(t, err)
	for _, w := range []string{"steve", "string", "sing", "sang", "strudel"} {
		require.NoError(t, trie.Insert(w))
	}
	assert.Contains(t, buf.String(), `"message":"bursting container"`)
	assert.Contains(t, buf.String(), `"node":"s"`)

	buf.Reset()
	require.True(t, trie.Remove("sing"))
	assert.Contains(t, buf.String(), `"message":"pruning empty child"`)
}

func TestTrie_InsertFoldsFinalSigma(t *testing.T) {
	alphabet, err := NewAlphabet("aσ")
	require.NoError(t, err)
	trie, err := New(WithAlphabet(alphabet))
	require.NoError(t, err)

	require.NoError(t, trie.Insert("aΣ"))
	require.NoError(t, trie.Insert("Σ"))
	assert.True(t, trie.Search("AΣ"))
	assert.Equal(t, []string{"aσ", "σ"}, trie.DFT())
	assert.True(t, trie.Remove("aΣ"))
	assert.Equal(t, []string{"σ"}, trie.DFT())
}

func TestTrie_RootReflectsTrie(t *testing.T) {
	trie, err := New()
	require.NoError(t, err)
	for _, w := range scenarioWords {
		require.NoError(t, trie.Insert(w))
	}

	root := trie.Root()
	assert.True(t, root.IsRoot())
	assert.Equal(t, trie.DFT(), root.DFT())
	assert.Equal(t, trie.Len(), root.Stats().Strings())
	assert.Equal(t, trie.String(), root.String())

	require.True(t, trie.Remove("steve"))
	assert.False(t, root.Search("steve"), "root is the live structure, not a copy")
	assert.Equal(t, trie.Len(), root.Stats().Strings())
}
