package cbir

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRank is called after each ranking run.
	// scanned is the number of candidates visited, skipped the number
	// excluded, err is nil if successful.
	RecordRank(scanned, skipped int, duration time.Duration, err error)

	// RecordFrame is called after each live camera refresh.
	RecordFrame(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRank(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFrame(time.Duration, error)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RankCount        atomic.Int64
	RankErrors       atomic.Int64
	RankTotalNanos   atomic.Int64
	CandidatesTotal  atomic.Int64
	CandidatesSkipped atomic.Int64
	FrameCount       atomic.Int64
	FrameErrors      atomic.Int64
	FrameTotalNanos  atomic.Int64
}

// RecordRank implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRank(scanned, skipped int, duration time.Duration, err error) {
	b.RankCount.Add(1)
	b.RankTotalNanos.Add(duration.Nanoseconds())
	b.CandidatesTotal.Add(int64(scanned))
	b.CandidatesSkipped.Add(int64(skipped))
	if err != nil {
		b.RankErrors.Add(1)
	}
}

// RecordFrame implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFrame(duration time.Duration, err error) {
	b.FrameCount.Add(1)
	b.FrameTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FrameErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RankCount:         b.RankCount.Load(),
		RankErrors:        b.RankErrors.Load(),
		RankAvgNanos:      avg(b.RankTotalNanos.Load(), b.RankCount.Load()),
		CandidatesTotal:   b.CandidatesTotal.Load(),
		CandidatesSkipped: b.CandidatesSkipped.Load(),
		FrameCount:        b.FrameCount.Load(),
		FrameErrors:       b.FrameErrors.Load(),
		FrameAvgNanos:     avg(b.FrameTotalNanos.Load(), b.FrameCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RankCount         int64
	RankErrors        int64
	RankAvgNanos      int64
	CandidatesTotal   int64
	CandidatesSkipped int64
	FrameCount        int64
	FrameErrors       int64
	FrameAvgNanos     int64
}
