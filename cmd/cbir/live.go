package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/cbir"
	"github.com/hupe1980/cbir/camera"
	"github.com/hupe1980/cbir/distance"
	"github.com/hupe1980/cbir/feature"
)

const keyEsc = 0x1b

func runLive(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("live")
	configPath := fs.String("config", "", "JSON session config")
	library := fs.String("library", "", "image directory or store URI to match against")
	interval := fs.Duration("interval", time.Second, "refresh period")
	bins := fs.Int("bins", 16, "chromaticity bins per channel")
	frame := fs.String("frame", "", "read frames from this image file instead of a device")
	device := fs.Int("device", 0, "video device index")
	if _, err := parseArgs(fs, args, 0); err != nil {
		return err
	}

	cfg := camera.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = camera.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	// Flags given on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "library":
			cfg.Library = *library
		case "interval":
			cfg.Interval = camera.Duration(*interval)
		case "bins":
			cfg.Bins = *bins
		case "frame":
			cfg.FramePath = *frame
		case "device":
			cfg.Device = *device
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	scheme := feature.ChromaticityScheme(cfg.Bins)

	store, err := openStore(ctx, cfg.Library)
	if err != nil {
		return err
	}
	candidates, err := cbir.DirectoryCandidates(ctx, store, scheme)
	if err != nil {
		return err
	}
	lib, err := camera.NewLibrary(ctx, candidates, e.logger)
	if err != nil {
		return err
	}

	src, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go watchKeys(e.stdin, cancel)

	loop := &camera.Loop{
		Source:   src,
		Library:  lib,
		Scheme:   scheme,
		Ranker:   e.newRanker(distance.Single(distance.MustProvider(distance.MetricChiSquared))),
		Interval: time.Duration(cfg.Interval),
		Logger:   e.logger,
		Metrics:  e.metrics,
	}

	err = loop.Run(ctx, func(m cbir.Match) {
		fmt.Fprintf(e.stdout, "Closest: %s (Distance: %s)\n", m.ID, formatFloat(m.Distance))
	})

	stats := e.metrics.GetStats()
	e.logger.InfoContext(ctx, "live session ended",
		"frames", stats.FrameCount,
		"frame_errors", stats.FrameErrors,
		"avg_frame", time.Duration(stats.FrameAvgNanos),
	)
	return err
}

func openSource(ctx context.Context, cfg camera.Config) (camera.FrameSource, error) {
	if cfg.FramePath == "" {
		return camera.OpenDevice(cfg.Device)
	}
	store, name, err := openFile(ctx, cfg.FramePath)
	if err != nil {
		return nil, err
	}
	return camera.NewFileSource(store, name), nil
}

// watchKeys cancels the session when q or Esc is read. End of input leaves
// the session running.
func watchKeys(r io.Reader, cancel context.CancelFunc) {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}
		if b == 'q' || b == 'Q' || b == keyEsc {
			cancel()
			return
		}
	}
}
