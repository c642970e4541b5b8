package cbir

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/cbir/distance"
	"github.com/hupe1980/cbir/feature"
	"github.com/hupe1980/cbir/internal/conv"
	"golang.org/x/sync/errgroup"
)

// Candidate is one entry of the database being searched. Resolve produces
// the candidate's signature; it is called at most once per ranking run.
type Candidate struct {
	ID      string
	Resolve func(ctx context.Context) (feature.Signature, error)
}

// Static returns a candidate with a precomputed signature.
func Static(id string, sig feature.Signature) Candidate {
	return Candidate{
		ID:      id,
		Resolve: func(context.Context) (feature.Signature, error) { return sig, nil },
	}
}

// Match is one ranked candidate.
type Match struct {
	ID       string  `json:"id"`
	Distance float64 `json:"distance"`
}

// Result is the outcome of one ranking run.
type Result struct {
	// Matches holds at most n entries, ascending by distance.
	Matches []Match `json:"matches"`

	// Scanned is the number of candidates visited.
	Scanned int `json:"scanned"`

	// Skipped holds the discovery ordinals of candidates excluded from
	// ranking.
	Skipped *roaring.Bitmap `json:"-"`
}

// Ranker scores candidates against a target and keeps the n nearest.
type Ranker struct {
	dist distance.SignatureFunc
	opts options
}

// NewRanker returns a Ranker using dist to compare signatures.
func NewRanker(dist distance.SignatureFunc, optFns ...Option) *Ranker {
	return &Ranker{
		dist: dist,
		opts: applyOptions(optFns),
	}
}

// slot is the per-candidate outcome. Each candidate owns one slot, so
// workers never share state.
type slot struct {
	distance float64
	err      *CandidateError
}

// Rank scores every candidate against target and returns the n smallest
// distances. Ties keep discovery order. Fewer than n successful candidates
// is not an error.
func (r *Ranker) Rank(ctx context.Context, target feature.Signature, candidates []Candidate, n int) (*Result, error) {
	start := time.Now()

	res, err := r.rank(ctx, target, candidates, n)

	scanned, skipped := 0, 0
	if res != nil {
		scanned, skipped = res.Scanned, int(res.Skipped.GetCardinality())
	}
	elapsed := time.Since(start)
	r.opts.metricsCollector.RecordRank(scanned, skipped, elapsed, err)
	r.opts.logger.LogRank(ctx, n, scanned, skipped, elapsed, err)

	return res, err
}

func (r *Ranker) rank(ctx context.Context, target feature.Signature, candidates []Candidate, n int) (*Result, error) {
	if n <= 0 {
		return nil, &InputError{Op: "rank", Err: ErrInvalidN}
	}
	if len(target) == 0 {
		return nil, &InputError{Op: "rank", Err: errors.New("empty target signature")}
	}
	// Skipped ordinals are stored in a 32-bit bitmap.
	if _, err := conv.IntToUint32(len(candidates)); err != nil {
		return nil, &InputError{Op: "rank", Err: err}
	}

	slots := make([]slot, len(candidates))

	var err error
	if r.opts.workers > 1 && len(candidates) > 1 {
		err = r.scanParallel(ctx, target, candidates, slots)
	} else {
		err = r.scanSequential(ctx, target, candidates, slots)
	}
	if err != nil {
		return nil, err
	}

	return r.merge(ctx, candidates, slots, n), nil
}

func (r *Ranker) scanSequential(ctx context.Context, target feature.Signature, candidates []Candidate, slots []slot) error {
	for i := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.score(ctx, target, candidates, slots, i); err != nil {
			return err
		}
	}
	return nil
}

func (r *Ranker) scanParallel(ctx context.Context, target feature.Signature, candidates []Candidate, slots []slot) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.workers)

	for i := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return r.score(gctx, target, candidates, slots, i)
		})
	}

	if err := g.Wait(); err != nil {
		// A fatal candidate cancels gctx; report it rather than the
		// cancellation it caused in other workers.
		return err
	}
	return ctx.Err()
}

// score fills slots[i]. A non-nil return aborts the run.
func (r *Ranker) score(ctx context.Context, target feature.Signature, candidates []Candidate, slots []slot, i int) error {
	c := candidates[i]

	skip := func(err error) error {
		slots[i].err = &CandidateError{Ordinal: i, ID: c.ID, Err: err}
		return nil
	}

	if c.Resolve == nil {
		return skip(errors.New("candidate has no resolver"))
	}

	sig, err := c.Resolve(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, ErrConfiguration) {
			return err
		}
		return skip(err)
	}

	if !target.SameShape(sig) {
		return &ConfigurationError{ID: c.ID, Expected: target.Shapes(), Actual: sig.Shapes()}
	}

	d, err := r.dist(target, sig)
	if err != nil {
		if errors.Is(err, distance.ErrShapeMismatch) || errors.Is(err, distance.ErrInvalidWeights) {
			return &ConfigurationError{ID: c.ID, cause: err}
		}
		return skip(err)
	}
	if math.IsNaN(d) || d < 0 {
		return skip(fmt.Errorf("invalid distance %v", d))
	}

	slots[i].distance = d
	return nil
}

func (r *Ranker) merge(ctx context.Context, candidates []Candidate, slots []slot, n int) *Result {
	res := &Result{
		Matches: make([]Match, 0, len(candidates)),
		Scanned: len(candidates),
		Skipped: roaring.New(),
	}

	for i, s := range slots {
		if s.err != nil {
			r.opts.logger.LogCandidateSkipped(ctx, s.err)
			res.Skipped.Add(uint32(i))
			continue
		}
		res.Matches = append(res.Matches, Match{ID: candidates[i].ID, Distance: s.distance})
	}

	slices.SortStableFunc(res.Matches, func(a, b Match) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})

	if len(res.Matches) > n {
		res.Matches = res.Matches[:n]
	}
	return res
}

// SkippedOrdinals returns the skipped ordinals in ascending order.
func (res *Result) SkippedOrdinals() []int {
	if res.Skipped == nil {
		return nil
	}
	out := make([]int, 0, res.Skipped.GetCardinality())
	it := res.Skipped.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}
