// Command cbir ranks images by visual similarity to a target image.
//
// Usage:
//
//	cbir [global flags] <variant> [flags] args...
//
// Variants:
//
//	patch        target dir N          raw 7x7 centre patch, sum of squared differences
//	chroma       target dir N          red/green chromaticity histogram
//	split        target dir N          top and bottom half histograms, 0.5/0.5
//	colortexture target dir N          colour + orientation histograms, 0.5/0.5
//	cosine       csv target N          cached feature vectors, cosine distance
//	combined     csv target dir N      mean of cached cosine and histogram chi-squared
//	live                               camera frames against an image library
//
// Directories and caches may be local paths, s3://bucket/prefix or
// minio://endpoint/bucket/prefix.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hupe1980/cbir"
	"github.com/hupe1980/cbir/codec"
	"github.com/hupe1980/cbir/distance"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// env carries what every variant needs.
type env struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	logger  *cbir.Logger
	metrics *cbir.BasicMetricsCollector
	workers int
	// codec selects machine-readable output; nil prints text lines.
	codec codec.Codec
}

// errUsage marks errors that should print the command's usage.
var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet("cbir", flag.ContinueOnError)
	global.SetOutput(stderr)

	workers := global.Int("workers", 1, "goroutines used to score candidates")
	logLevel := global.String("log-level", "warn", "log level: debug, info, warn or error")
	logJSON := global.Bool("log-json", false, "write logs as JSON")
	jsonOut := global.Bool("json", false, "print results as JSON (same as -format go-json)")
	format := global.String("format", "text", "result format: text, json, go-json or msgpack")

	global.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cbir [global flags] <variant> [flags] args...\n\nVariants:\n")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-13s %s\n", c.name, c.summary)
		}
		fmt.Fprintf(stderr, "\nGlobal flags:\n")
		global.PrintDefaults()
	}

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return 1
	}

	cmd, ok := lookup(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "cbir: unknown variant %q\n", rest[0])
		global.Usage()
		return 1
	}

	level, err := parseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "cbir: %v\n", err)
		return 1
	}

	var out codec.Codec
	switch {
	case *jsonOut:
		out = codec.Default
	case *format != "text":
		c, ok := codec.ByName(*format)
		if !ok {
			fmt.Fprintf(stderr, "cbir: unknown format %q\n", *format)
			return 1
		}
		out = c
	}

	logger := cbir.NewTextLogger(stderr, level)
	if *logJSON {
		logger = cbir.NewJSONLogger(stderr, level)
	}

	e := &env{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger.WithVariant(cmd.name),
		metrics: &cbir.BasicMetricsCollector{},
		workers: *workers,
		codec:   out,
	}

	if err := cmd.run(ctx, e, rest[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "cbir %s: %v\n", cmd.name, err)
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Usage: cbir %s %s\n", cmd.name, cmd.usage)
		}
		return 1
	}
	return 0
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// newRanker returns a Ranker wired to the environment's logger, metrics and
// worker count.
func (e *env) newRanker(dist distance.SignatureFunc) *cbir.Ranker {
	return cbir.NewRanker(dist,
		cbir.WithWorkers(e.workers),
		cbir.WithLogger(e.logger),
		cbir.WithMetricsCollector(e.metrics),
	)
}
