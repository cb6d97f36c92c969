// Command radixtrie loads newline-separated keys into a radix trie and runs
// queries against it. Every key is stored with its line number as the value.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:   "radixtrie",
		Usage:  "inspect and query a radix trie built from a list of keys",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "file with one key per line (stdin if empty or -)",
				EnvVars: []string{"RADIXTRIE_INPUT"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug messages",
			},
		},
		Before: setupLogging,
		After: func(*cli.Context) error {
			_ = zap.L().Sync()
			return nil
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:   "dump",
			Usage:  "print the node structure",
			Action: runDump,
		},
		{
			Name:      "ancestor",
			Usage:     "find the longest stored prefix of every query",
			ArgsUsage: "<key>...",
			Action:    runAncestor,
		},
		{
			Name:      "descendants",
			Usage:     "list the stored keys starting with a prefix",
			ArgsUsage: "<prefix>",
			Action:    runDescendants,
		},
		{
			Name:      "remove",
			Usage:     "remove keys and print the resulting structure",
			ArgsUsage: "<key>...",
			Action:    runRemove,
		},
		{
			Name:  "export",
			Usage: "serialize the key-value pairs",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Usage: "json or cbor",
					Value: "json",
				},
			},
			Action: runExport,
		},
	}

	return app
}

func setupLogging(cctx *cli.Context) error {
	var (
		logger *zap.Logger
		err    error
	)

	if cctx.Bool("verbose") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}

	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
