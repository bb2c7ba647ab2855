package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"

	huffman "github.com/chronos-tachyon/huffpack"
	"github.com/chronos-tachyon/huffpack/bitstream"
)

const progName = "huffpack"
const usageMessageRaw = `
Usage: huffpack [-d] [-o FILE] SUBCOMMAND [FILE]

Subcommands:
  compress [FILE]
    Compress FILE (or standard input if FILE is absent or "-") with a
    static Huffman code.  Standard input that cannot be rewound is
    copied to a temporary file first.

  decompress [FILE]
    Decompress FILE (or standard input), which must have been written
    by "huffpack compress".

Options:
  -o FILE, -output FILE
    Write to FILE instead of standard output.  FILE is removed if the
    operation fails.

  -d, -debug
    Log statistics and code tables to standard error.
`

var log = logging.MustGetLogger("huffman/cmd")

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

// usageError is a problem with the command line, reported with exit code 64.
type usageError struct {
	detail string
}

func (err usageError) Error() string {
	return err.detail
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) error {
	return usageError{fmt.Sprintf(detailFmt, detailArgs...)}
}

type options struct {
	subcommand string
	inputPath  string
	outputPath string
	debug      bool
}

// parseArgs parses the command line, not including the program name.
// It returns flag.ErrHelp if help was requested.
func parseArgs(args []string) (options, error) {
	var opts options

	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	ourFlags.StringVar(&opts.outputPath, "output", "", "")
	ourFlags.StringVar(&opts.outputPath, "o", "", "")
	ourFlags.BoolVar(&opts.debug, "debug", false, "")
	ourFlags.BoolVar(&opts.debug, "d", false, "")

	if err := ourFlags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, err
		}
		return opts, usageErrorf("%s", err.Error())
	}

	rest := ourFlags.Args()
	if len(rest) == 0 {
		return opts, usageErrorf("not enough arguments; expected SUBCOMMAND")
	}
	opts.subcommand = rest[0]
	switch opts.subcommand {
	case "compress", "decompress":
	default:
		return opts, usageErrorf("bad subcommand \"%s\"", opts.subcommand)
	}

	opts.inputPath = "-"
	if len(rest) >= 2 {
		opts.inputPath = rest[1]
	}
	if len(rest) > 2 {
		return opts, usageErrorf("too many arguments at %d (\"%s\")", 2, rest[2])
	}
	return opts, nil
}

func openInput(opts options) (*bitstream.Source, error) {
	if opts.inputPath == "-" {
		if opts.subcommand == "compress" {
			return bitstream.SpoolSource(os.Stdin)
		}
		return bitstream.NewSource(os.Stdin), nil
	}
	return bitstream.OpenSource(opts.inputPath)
}

func run(opts options) (err error) {
	src, err := openInput(opts)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := src.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	var out io.Writer = os.Stdout
	if opts.outputPath != "" {
		f, createErr := os.Create(opts.outputPath)
		if createErr != nil {
			return errors.WithStack(createErr)
		}
		defer func() {
			closeErr := f.Close()
			if err == nil && closeErr != nil {
				err = errors.WithStack(closeErr)
			}
			if err != nil {
				log.Debugf("removing %s", opts.outputPath)
				_ = os.Remove(opts.outputPath)
			}
		}()
		out = f
	}

	p := huffman.Processor{Debug: opts.debug}
	sink := bitstream.NewSink(out)
	switch opts.subcommand {
	case "compress":
		return p.Compress(src, sink)
	default:
		return p.Decompress(src, sink)
	}
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	opts, err := parseArgs(os.Args[1:])
	if err == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, err.Error(), usageMessage())
		os.Exit(64)
	}

	if opts.debug {
		for _, module := range huffman.LogModules {
			leveledLogBackend.SetLevel(logging.DEBUG, module)
		}
	}

	if err := run(opts); err != nil {
		log.Debugf("%+v", err)
		fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
		os.Exit(1)
	}
}
