package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/burst-sort/internal/bursttrie"
)

// EnvPrefix prefixes every environment variable read by LoadConfig,
// e.g. BURSTSORT_TRIE_CAPACITY
const EnvPrefix = "BURSTSORT"

// Config holds all configuration for the application
type Config struct {
	Trie  TrieConfig  `mapstructure:"trie"`
	Log   LogConfig   `mapstructure:"log"`
	Input InputConfig `mapstructure:"input"`
}

// TrieConfig holds burst trie related configuration
type TrieConfig struct {
	Alphabet     string `mapstructure:"alphabet"`
	Capacity     int    `mapstructure:"capacity"`
	MaxKeyLength int    `mapstructure:"max_key_length"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// InputConfig holds input handling configuration
type InputConfig struct {
	SkipEmpty bool `mapstructure:"skip_empty"`
	Workers   int  `mapstructure:"workers"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("trie.alphabet", bursttrie.English)
	v.SetDefault("trie.capacity", bursttrie.DefaultCapacity)
	v.SetDefault("trie.max_key_length", bursttrie.DefaultMaxKeyLength)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("input.skip_empty", true)
	v.SetDefault("input.workers", 4)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := bursttrie.NewAlphabet(c.Trie.Alphabet); err != nil {
		return fmt.Errorf("invalid trie alphabet: %w", err)
	}
	if c.Trie.Capacity < 1 {
		return fmt.Errorf("invalid trie capacity: %d", c.Trie.Capacity)
	}
	if c.Trie.MaxKeyLength < 0 {
		return fmt.Errorf("invalid max key length: %d", c.Trie.MaxKeyLength)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Input.Workers < 1 {
		return fmt.Errorf("invalid input workers: %d", c.Input.Workers)
	}
	return nil
}

// Options returns the trie options described by the configuration
func (c *TrieConfig) Options() ([]bursttrie.Option, error) {
	alphabet, err := bursttrie.NewAlphabet(c.Alphabet)
	if err != nil {
		return nil, err
	}
	return []bursttrie.Option{
		bursttrie.WithAlphabet(alphabet),
		bursttrie.WithCapacity(c.Capacity),
		bursttrie.WithMaxKeyLength(c.MaxKeyLength),
	}, nil
}

// Logger builds a logger writing to w, or to stderr when w is nil
func (c *LogConfig) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	if w == nil {
		w = os.Stderr
	}
	if c.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
