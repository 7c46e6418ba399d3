// Command burstsort sorts, queries and inspects string sets with a burst trie.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"
)

const version = "v0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "burstsort: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	inputFlag := &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "file of newline separated strings to load (stdin when unset)",
	}

	return &cli.App{
		Name:    "burstsort",
		Usage:   "sort and query string sets with a burst trie",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				EnvVars: []string{"BURSTSORT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "alphabet",
				Usage: "ordered characters accepted by the trie",
			},
			&cli.IntFlag{
				Name:  "capacity",
				Usage: "container capacity before a burst",
			},
			&cli.IntFlag{
				Name:  "max-key-length",
				Usage: "longest accepted string in characters, 0 for no limit",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "sort",
				Usage:     "burst sort lines from files or stdin",
				ArgsUsage: "[file...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "keep-empty",
						Usage: "keep empty lines instead of skipping them",
					},
				},
				Action: runSort,
			},
			{
				Name:      "search",
				Usage:     "report whether each word is in the input set",
				ArgsUsage: "<word>...",
				Flags:     []cli.Flag{inputFlag},
				Action:    runSearch,
			},
			{
				Name:      "prefix",
				Usage:     "list input strings starting with a prefix",
				ArgsUsage: "<prefix>",
				Flags:     []cli.Flag{inputFlag},
				Action:    runPrefix,
			},
			{
				Name:   "dump",
				Usage:  "print the trie structure built from the input",
				Flags:  []cli.Flag{inputFlag},
				Action: runDump,
			},
			{
				Name:   "stats",
				Usage:  "print structural statistics of the trie built from the input",
				Flags:  []cli.Flag{inputFlag},
				Action: runStats,
			},
			{
				Name:  "gen",
				Usage: "generate random words over the alphabet",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Value: 1000, Usage: "number of words"},
					&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 for a random one"},
				},
				Action: runGen,
			},
			{
				Name:  "bench",
				Usage: "compare burst sort with the standard library sort on random words",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Value: 100000, Usage: "number of words"},
					&cli.Int64Flag{Name: "seed", Usage: "random seed, 0 for a random one"},
				},
				Action: runBench,
			},
		},
	}
}
