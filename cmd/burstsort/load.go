package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/kumarlokesh/burst-sort/internal/bursttrie"
	"github.com/kumarlokesh/burst-sort/internal/config"
	"github.com/kumarlokesh/burst-sort/internal/sorts"
)

// env is the configuration and logger shared by every command.
type env struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// setup loads the config file and environment, then applies command line overrides.
func setup(cctx *cli.Context) (*env, error) {
	cfg, err := config.LoadConfig(cctx.String("config"))
	if err != nil {
		return nil, err
	}

	if cctx.IsSet("log-level") {
		cfg.Log.Level = cctx.String("log-level")
	}
	if cctx.IsSet("alphabet") {
		cfg.Trie.Alphabet = cctx.String("alphabet")
	}
	if cctx.IsSet("capacity") {
		cfg.Trie.Capacity = cctx.Int("capacity")
	}
	if cctx.IsSet("max-key-length") {
		cfg.Trie.MaxKeyLength = cctx.Int("max-key-length")
	}
	if cctx.Bool("keep-empty") {
		cfg.Input.SkipEmpty = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := cfg.Log.Logger(cctx.App.ErrWriter)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger}, nil
}

func (e *env) newTrie() (*bursttrie.Trie, error) {
	opts, err := e.cfg.Trie.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, bursttrie.WithLogger(e.logger))
	return bursttrie.New(opts...)
}

// load builds a trie from the given files, read concurrently, or from
// stdin when there are none.
func (e *env) load(ctx context.Context, files []string, stdin io.Reader) (*bursttrie.Trie, error) {
	trie, err := e.newTrie()
	if err != nil {
		return nil, fmt.Errorf("failed to create trie: %w", err)
	}
	locked := bursttrie.NewLocked(trie)

	if len(files) == 0 {
		if err := e.loadReader(locked, "<stdin>", stdin); err != nil {
			return nil, err
		}
		return trie, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Input.Workers)
	for _, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open input: %w", err)
			}
			defer f.Close()
			return e.loadReader(locked, path, f)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Debug().
		Int("files", len(files)).
		Int("strings", trie.Len()).
		Msg("loaded input")
	return trie, nil
}

func (e *env) loadReader(locked *bursttrie.Locked, name string, r io.Reader) error {
	lines, err := sorts.ReadLines(r)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	items := make([]string, 0, len(lines))
	lineNos := make([]int, 0, len(lines))
	for i, line := range lines {
		if line == "" && e.cfg.Input.SkipEmpty {
			continue
		}
		items = append(items, line)
		lineNos = append(lineNos, i+1)
	}
	if n, err := locked.InsertAll(items); err != nil {
		return fmt.Errorf("%s:%d: %w", name, lineNos[n], err)
	}
	e.logger.Debug().Str("input", name).Int("lines", len(lines)).Msg("read input")
	return nil
}

// loadInput builds a trie from the command's --input flag.
func loadInput(cctx *cli.Context) (*env, *bursttrie.Trie, error) {
	e, err := setup(cctx)
	if err != nil {
		return nil, nil, err
	}
	var files []string
	if path := cctx.String("input"); path != "" {
		files = append(files, path)
	}
	trie, err := e.load(cctx.Context, files, cctx.App.Reader)
	if err != nil {
		return nil, nil, err
	}
	return e, trie, nil
}
