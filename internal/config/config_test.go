package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/burst-sort/internal/bursttrie"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, bursttrie.English, cfg.Trie.Alphabet)
	assert.Equal(t, bursttrie.DefaultCapacity, cfg.Trie.Capacity)
	assert.Equal(t, bursttrie.DefaultMaxKeyLength, cfg.Trie.MaxKeyLength)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Input.SkipEmpty)
	assert.Equal(t, 4, cfg.Input.Workers)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
trie:
  alphabet: "zyx"
  capacity: 3
log:
  level: debug
  pretty: false
input:
  skip_empty: false
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "zyx", cfg.Trie.Alphabet)
	assert.Equal(t, 3, cfg.Trie.Capacity)
	assert.Equal(t, bursttrie.DefaultMaxKeyLength, cfg.Trie.MaxKeyLength, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
	assert.False(t, cfg.Input.SkipEmpty)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("BURSTSORT_TRIE_CAPACITY", "9")
	t.Setenv("BURSTSORT_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Trie.Capacity)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "duplicate alphabet", modify: func(c *Config) { c.Trie.Alphabet = "abca" }},
		{name: "empty alphabet", modify: func(c *Config) { c.Trie.Alphabet = "" }},
		{name: "zero capacity", modify: func(c *Config) { c.Trie.Capacity = 0 }},
		{name: "negative max key length", modify: func(c *Config) { c.Trie.MaxKeyLength = -1 }},
		{name: "bad log level", modify: func(c *Config) { c.Log.Level = "loud" }},
		{name: "no workers", modify: func(c *Config) { c.Input.Workers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig("")
			require.NoError(t, err)
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestTrieConfig_Options(t *testing.T) {
	cfg := TrieConfig{Alphabet: "cba", Capacity: 2, MaxKeyLength: 3}
	opts, err := cfg.Options()
	require.NoError(t, err)

	trie, err := bursttrie.New(opts...)
	require.NoError(t, err)
	assert.Equal(t, "cba", trie.Alphabet().String())
	assert.Equal(t, 2, trie.Capacity())
	assert.ErrorIs(t, trie.Insert("abca"), bursttrie.ErrKeyTooLong)

	cfg.Alphabet = "aa"
	_, err = cfg.Options()
	assert.ErrorIs(t, err, bursttrie.ErrInvalidAlphabet)
}

func TestLogConfig_Logger(t *testing.T) {
	var buf bytes.Buffer
	cfg := LogConfig{Level: "warn"}
	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	cfg.Level = "nope"
	_, err = cfg.Logger(&buf)
	assert.Error(t, err)
}
