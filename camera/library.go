package camera

import (
	"context"
	"errors"

	"github.com/hupe1980/cbir"
	"github.com/hupe1980/cbir/feature"
)

// ErrEmptyLibrary is returned when no library image could be prepared.
var ErrEmptyLibrary = errors.New("camera: library is empty")

// Library holds signatures computed once and reused for every frame.
type Library struct {
	candidates []cbir.Candidate
}

// NewLibrary resolves every candidate once. Candidates that fail are logged
// and left out. A library with no usable entries is an *cbir.InputError.
func NewLibrary(ctx context.Context, candidates []cbir.Candidate, logger *cbir.Logger) (*Library, error) {
	if logger == nil {
		logger = cbir.NoopLogger()
	}

	lib := &Library{candidates: make([]cbir.Candidate, 0, len(candidates))}
	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			sig feature.Signature
			err = errors.New("candidate has no resolver")
		)
		if c.Resolve != nil {
			sig, err = c.Resolve(ctx)
		}
		if err != nil {
			logger.LogCandidateSkipped(ctx, &cbir.CandidateError{Ordinal: i, ID: c.ID, Err: err})
			continue
		}
		lib.candidates = append(lib.candidates, cbir.Static(c.ID, sig))
	}

	if len(lib.candidates) == 0 {
		return nil, &cbir.InputError{Op: "build library", Err: ErrEmptyLibrary}
	}

	logger.WithCount(len(lib.candidates)).InfoContext(ctx, "library ready", "skipped", len(candidates)-len(lib.candidates))
	return lib, nil
}

// Len returns the number of usable entries.
func (l *Library) Len() int { return len(l.candidates) }

// Candidates returns the precomputed entries in discovery order.
func (l *Library) Candidates() []cbir.Candidate { return l.candidates }
