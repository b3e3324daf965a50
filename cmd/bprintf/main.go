package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bjaus/bootfmt"
	"github.com/bjaus/bootfmt/boottime"
	"github.com/bjaus/bootfmt/efi"
	"go.uber.org/zap"
)

func main() {
	var (
		size       = flag.Int("n", 0, "Render into a buffer of this many bytes (snprintf)")
		configFile = flag.String("config", "", "YAML printer config")
		useEFI     = flag.Bool("efi", false, "Enable %ur, %lur and %pG")
		strict     = flag.Bool("strict", false, "Fail when arguments do not match the format")
		report     = flag.String("report", "", "Record the output as a boot event and print a report (json, jsonl, yaml, csv, tsv, table, plain)")
		verbose    = flag.Bool("v", false, "Log engine diagnostics to stderr")
	)
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: bprintf [-n size] [-efi] [-config file.yaml] FORMAT [ARG...]")
		fmt.Fprintln(os.Stderr, "       bprintf -report table FORMAT [ARG...]")
		os.Exit(2)
	}

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		bootfmt.SetLogger(l)
	}

	opts := options{
		size:       *size,
		configFile: *configFile,
		efi:        *useEFI,
		strict:     *strict,
		report:     *report,
	}
	if err := run(os.Stdout, opts, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	size       int
	configFile string
	efi        bool
	strict     bool
	report     string
}

func run(out io.Writer, opts options, format string, words []string) error {
	p, err := newPrinter(out, opts)
	if err != nil {
		return err
	}

	args, err := convert(format, p.Extension, words)
	if err != nil {
		return err
	}
	if opts.strict {
		if err := p.Check(format, args...); err != nil {
			return err
		}
	}

	if opts.report != "" {
		f, err := boottime.ParseFormat(opts.report)
		if err != nil {
			return err
		}
		bt := boottime.New(p, nil)
		bt.Record("bprintf", 1, format, args...)
		return bt.Write(out, f)
	}

	if opts.size > 0 {
		buf := make([]byte, opts.size)
		n := p.Snprintf(buf, format, args...)
		stored := min(n, opts.size-1)
		if _, err := out.Write(buf[:stored]); err != nil {
			return err
		}
		if n > stored {
			fmt.Fprintf(os.Stderr, "truncated: %d of %d bytes\n", stored, n)
		}
		return nil
	}

	_, err = p.Fprintf(out, format, args...)
	return err
}

func newPrinter(out io.Writer, opts options) (*bootfmt.Printer, error) {
	cfg := bootfmt.Config{}
	if opts.configFile != "" {
		f, err := os.Open(opts.configFile)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if cfg, err = bootfmt.LoadConfig(f); err != nil {
			return nil, err
		}
	}
	p := cfg.Printer(out)
	if opts.efi {
		p.Extension = efi.Extension{}
	}
	return p, nil
}

// convert turns command line words into arguments typed for the slots the
// format resolves. Words beyond the last slot are passed as strings.
func convert(format string, ext bootfmt.Extension, words []string) ([]any, error) {
	slots := bootfmt.Resolve(format, ext)
	args := make([]any, len(words))
	for i, word := range words {
		if i >= len(slots) {
			args[i] = word
			continue
		}
		v, err := convertWord(slots[i], word)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = v
	}
	return args, nil
}

func convertWord(slot bootfmt.Arg, word string) (any, error) {
	switch slot.Conv {
	case 's':
		return word, nil
	case 'c':
		if len(word) == 1 {
			return word[0], nil
		}
	case 'p':
		if slot.Marker == 'G' {
			return efi.ParseGUID(word)
		}
	case 0:
		return word, nil
	}

	neg := slot.Kind.Signed() && strings.HasPrefix(word, "-")
	digits := word
	if neg {
		digits = word[1:]
	}
	v, rest, err := bootfmt.ParseUint(digits, 0, 64)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: trailing %q", bootfmt.ErrBadNumber, rest)
	}
	if neg {
		if v > 1<<63 {
			return nil, fmt.Errorf("%w: %q", bootfmt.ErrOutOfRange, word)
		}
		return -int64(v), nil
	}
	return v, nil
}
