package camera

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/cbir"
	"github.com/hupe1980/cbir/feature"
	"golang.org/x/time/rate"
)

// Loop matches frames from Source against Library every Interval.
type Loop struct {
	Source   FrameSource
	Library  *Library
	Scheme   feature.Scheme
	Ranker   *cbir.Ranker
	Interval time.Duration

	Logger  *cbir.Logger
	Metrics cbir.MetricsCollector
}

// Run captures, extracts and ranks until ctx is done or capture fails.
// onMatch receives the closest library entry for every frame. Cancellation
// is a clean stop and returns nil.
func (l *Loop) Run(ctx context.Context, onMatch func(cbir.Match)) error {
	if err := l.validate(); err != nil {
		return err
	}

	logger := l.Logger
	if logger == nil {
		logger = cbir.NoopLogger()
	}
	metrics := l.Metrics
	if metrics == nil {
		metrics = cbir.NoopMetricsCollector{}
	}

	limiter := rate.NewLimiter(rate.Every(l.Interval), 1)
	for {
		// Wait also fails when the next tick would pass the deadline.
		if err := limiter.Wait(ctx); err != nil {
			logger.DebugContext(ctx, "live loop stopped", "reason", err)
			return nil
		}

		start := time.Now()
		m, ok, err := l.step(ctx)
		metrics.RecordFrame(time.Since(start), err)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if ok {
			onMatch(m)
		}
	}
}

func (l *Loop) step(ctx context.Context) (cbir.Match, bool, error) {
	frame, err := l.Source.Capture(ctx)
	if err != nil {
		return cbir.Match{}, false, fmt.Errorf("camera: capture: %w", err)
	}

	sig, err := l.Scheme.Extract(frame)
	if err != nil {
		return cbir.Match{}, false, fmt.Errorf("camera: frame: %w", err)
	}

	res, err := l.Ranker.Rank(ctx, sig, l.Library.Candidates(), 1)
	if err != nil {
		return cbir.Match{}, false, err
	}
	if len(res.Matches) == 0 {
		return cbir.Match{}, false, nil
	}
	return res.Matches[0], true, nil
}

func (l *Loop) validate() error {
	switch {
	case l.Source == nil:
		return errors.New("camera: loop has no source")
	case l.Library == nil:
		return errors.New("camera: loop has no library")
	case len(l.Scheme) == 0:
		return errors.New("camera: loop has no scheme")
	case l.Ranker == nil:
		return errors.New("camera: loop has no ranker")
	case l.Interval <= 0:
		return fmt.Errorf("camera: invalid interval %s", l.Interval)
	}
	return nil
}
