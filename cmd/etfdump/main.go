// etfdump inspects and builds external term format payloads.
//
// By default it reads a dump file (or stdin), removes any container
// compression, decodes the term and prints it. With --encode it reads a
// JSON, YAML or hex CBOR document and writes the encoded payload instead.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	formatTree = "tree"
	formatJSON = "json"
	formatYAML = "yaml"
	formatCBOR = "cbor"

	compressionAuto = "auto"
)

var errUsage = errors.New("usage error")

type options struct {
	format      string
	compression string
	maxDepth    int
	strict      bool
	encode      bool
	output      string
	verbose     bool
	input       string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("etfdump", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.format, "format", "f", formatTree, "output format (tree, json, yaml, cbor); input format with --encode")
	flagSet.StringVarP(&opts.compression, "compression", "c", compressionAuto, "container compression (auto, none, zstd, s2, lz4)")
	flagSet.IntVar(&opts.maxDepth, "max-depth", 0, "maximum list and map nesting when decoding (0 means unlimited)")
	flagSet.BoolVar(&opts.strict, "strict", false, "reject bytes after the root term")
	flagSet.BoolVarP(&opts.encode, "encode", "e", false, "encode a document into a payload instead of decoding")
	flagSet.StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log processing details to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}

		return fmt.Errorf("%w: %w", errUsage, err)
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	switch rest := flagSet.Args(); len(rest) {
	case 0:
	case 1:
		opts.input = rest[0]
	default:
		return fmt.Errorf("%w: unexpected argument: %s", errUsage, rest[1])
	}

	opts.format = strings.ToLower(opts.format)
	switch opts.format {
	case formatTree, formatJSON, formatYAML, formatCBOR:
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, opts.format)
	}

	logger := newLogger(stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()

	data, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("input", inputName(opts.input)), zap.Int("bytes", len(data)))

	var out []byte
	if opts.encode {
		out, err = encodeDump(logger, data, opts)
	} else {
		out, err = decodeDump(logger, data, opts)
	}
	if err != nil {
		logger.Debug("processing failed", zap.String("input", inputName(opts.input)), zap.Error(err))
		return err
	}

	return writeOutput(opts.output, stdout, out)
}

// newLogger builds a console logger on w. It only emits warnings unless
// verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)

	return zap.New(core).Named("etfdump")
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}

	return path
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return data, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `etfdump decodes and encodes external term format payloads.

Usage:
  etfdump [flags] [file]

Reads from stdin when no file (or "-") is given. Compressed dump files
(zstd, s2, lz4) are detected automatically unless --compression is set.

Examples:
  # Print a captured payload as an indented tree
  etfdump capture.etf

  # Print a compressed dump as JSON, rejecting deep nesting
  etfdump --format json --max-depth 64 capture.etf.zst

  # Build a zstd-compressed payload from JSON
  etfdump --encode --format json --compression zstd -o out.etf.zst doc.json

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
