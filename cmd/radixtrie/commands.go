package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/aglyzov/go-radix/radix"
)

var errNoArgs = errors.New("at least one argument is required")

// loadTrie reads the input keys. Repeated keys keep the latest line number.
func loadTrie(cctx *cli.Context) (*radix.Trie[string, int], error) {
	var (
		name = cctx.String("input")
		src  io.Reader
	)

	switch name {
	case "", "-":
		src = cctx.App.Reader
		if src == nil {
			src = os.Stdin
		}
	default:
		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer file.Close()

		src = file
	}

	var (
		trie    = radix.NewString[int]()
		scanner = bufio.NewScanner(src)
		line    int
	)

	for scanner.Scan() {
		line++

		if _, replaced := trie.Insert(scanner.Text(), line); replaced {
			zap.L().Debug("duplicate key", zap.String("key", scanner.Text()), zap.Int("line", line))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	zap.L().Debug("trie loaded", zap.String("input", name), zap.Int("lines", line), zap.Int("keys", trie.Len()))

	return trie, nil
}

func runDump(cctx *cli.Context) error {
	trie, err := loadTrie(cctx)
	if err != nil {
		return err
	}

	return trie.Dump(cctx.App.Writer)
}

func runAncestor(cctx *cli.Context) error {
	if cctx.NArg() == 0 {
		return errNoArgs
	}

	trie, err := loadTrie(cctx)
	if err != nil {
		return err
	}

	for _, query := range cctx.Args().Slice() {
		anc, ok := trie.GetAncestor(query)
		if !ok {
			fmt.Fprintf(cctx.App.Writer, "%q: -\n", query)
			continue
		}

		key, _ := anc.Key()
		line, _ := anc.Value()

		fmt.Fprintf(cctx.App.Writer, "%q: %q (line %d)\n", query, key, line)
	}

	return nil
}

func runDescendants(cctx *cli.Context) error {
	if cctx.NArg() != 1 {
		return fmt.Errorf("exactly one prefix is required, got %d", cctx.NArg())
	}

	trie, err := loadTrie(cctx)
	if err != nil {
		return err
	}

	desc, ok := trie.GetDescendant(cctx.Args().First())
	if !ok {
		zap.L().Debug("no descendants", zap.String("prefix", cctx.Args().First()))
		return nil
	}

	for key, line := range desc.All() {
		fmt.Fprintf(cctx.App.Writer, "%d\t%s\n", line, key)
	}

	return nil
}

func runRemove(cctx *cli.Context) error {
	if cctx.NArg() == 0 {
		return errNoArgs
	}

	trie, err := loadTrie(cctx)
	if err != nil {
		return err
	}

	for _, key := range cctx.Args().Slice() {
		if line, ok := trie.Remove(key); ok {
			zap.L().Debug("removed", zap.String("key", key), zap.Int("line", line))
		} else {
			zap.L().Debug("not found", zap.String("key", key))
		}
	}

	if err := trie.CheckIntegrity(); err != nil {
		return err
	}

	return trie.Dump(cctx.App.Writer)
}

func runExport(cctx *cli.Context) error {
	trie, err := loadTrie(cctx)
	if err != nil {
		return err
	}

	var data []byte

	switch format := cctx.String("format"); format {
	case "json":
		data, err = json.Marshal(trie)
	case "cbor":
		data, err = cbor.Marshal(trie)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	_, err = cctx.App.Writer.Write(data)

	return err
}
