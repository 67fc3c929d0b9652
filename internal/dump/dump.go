// Package dump implements the geckodump command: it reads Gecko code words
// as hexadecimal text, decodes them and writes the annotated report.
package dump

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"geckodec/common"
	"geckodec/gecko"
	"geckodec/printer"
)

// Config mirrors the command line arguments of geckodump.
type Config struct {
	Inputs       []string // file paths; empty means stdin
	GNUSyntax    bool
	Debug        bool // dump the decoded record structures before the report
	Logger       common.Logger
	OutputWriter io.Writer
	InputReader  io.Reader // stdin substitute, used when Inputs is empty
}

// Run reads, decodes and prints every input in order.
func Run(cfg Config) error {
	w := cfg.OutputWriter
	if w == nil {
		w = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = common.NewNoOpLogger()
	}

	var sources []io.Reader
	if len(cfg.Inputs) == 0 {
		in := cfg.InputReader
		if in == nil {
			in = os.Stdin
		}
		sources = append(sources, in)
	} else {
		for _, path := range cfg.Inputs {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open input: %v", err)
			}
			defer f.Close()
			sources = append(sources, f)
		}
	}

	decoder := gecko.NewDecoderWithLogger(logger)
	opts := printer.Options{GNUSyntax: cfg.GNUSyntax}

	for _, src := range sources {
		words, err := ReadWords(src)
		if err != nil {
			return err
		}

		records, err := decoder.Decode(words)
		if err != nil {
			return err
		}

		if cfg.Debug {
			spew.Fdump(w, records)
		}
		fmt.Fprint(w, printer.Report(records, opts))
	}

	return nil
}

// ReadWords parses whitespace-separated hexadecimal words. An optional 0x
// prefix and trailing commas are tolerated; anything else is an error.
func ReadWords(r io.Reader) ([]uint32, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %v", err)
	}

	var words []uint32
	for _, tok := range strings.Fields(string(data)) {
		tok = strings.TrimSuffix(tok, ",")
		tok = strings.TrimPrefix(tok, "0x")
		v, err := strconv.ParseUint(tok, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid code word %q: %v", tok, err)
		}
		words = append(words, uint32(v))
	}
	return words, nil
}
