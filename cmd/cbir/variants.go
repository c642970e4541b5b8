package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/hupe1980/cbir"
	"github.com/hupe1980/cbir/distance"
	"github.com/hupe1980/cbir/feature"
	"github.com/hupe1980/cbir/featurecache"
)

type command struct {
	name    string
	usage   string
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

var commands = []command{
	{"patch", "[-size 7] <target> <dir> <N>", "raw centre patch, sum of squared differences", runPatch},
	{"chroma", "[-bins 16] [-metric chi2] <target> <dir> <N>", "red/green chromaticity histogram", runChroma},
	{"split", "[-bins 8] <target> <dir> <N>", "top and bottom half histograms", runSplit},
	{"colortexture", "[-bins 8] <target> <dir> <N>", "colour and texture histograms", runColorTexture},
	{"cosine", "[-dim 512] <csv> <target_filename> <N>", "cached feature vectors, cosine distance", runCosine},
	{"combined", "[-dim 512] [-bins 16] <csv> <target> <dir> <N>", "cached vectors plus chromaticity", runCombined},
	{"live", "[-config file] [-library dir] [-interval 1s] [-frame file] [-device 0]", "match camera frames against a library", runLive},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (e *env) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	return fs
}

// parseArgs parses flags and checks that exactly want positional
// arguments remain.
func parseArgs(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != want {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", errUsage, want, fs.NArg())
	}
	return fs.Args(), nil
}

func parseN(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: N must be an integer, got %q", errUsage, s)
	}
	return n, nil
}

func runPatch(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("patch")
	size := fs.Int("size", 7, "side of the centre square")
	pos, err := parseArgs(fs, args, 3)
	if err != nil {
		return err
	}

	dist := distance.Single(distance.MustProvider(distance.MetricSumSquared))
	return e.rankDirectory(ctx, pos, feature.PatchScheme(*size), dist, formatTop)
}

func runChroma(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("chroma")
	bins := fs.Int("bins", 16, "bins per channel")
	metric := fs.String("metric", "chi2", "histogram distance: chi2 or correlation")
	pos, err := parseArgs(fs, args, 3)
	if err != nil {
		return err
	}

	m, err := distance.ParseMetric(*metric)
	if err != nil {
		return err
	}
	f, err := distance.Provider(m)
	if err != nil {
		return err
	}
	return e.rankDirectory(ctx, pos, feature.ChromaticityScheme(*bins), distance.Single(f), formatTop)
}

func runSplit(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("split")
	bins := fs.Int("bins", 8, "bins per channel")
	pos, err := parseArgs(fs, args, 3)
	if err != nil {
		return err
	}

	chi2 := distance.MustProvider(distance.MetricChiSquared)
	dist, err := distance.Combine([]float64{0.5, 0.5}, chi2, chi2)
	if err != nil {
		return err
	}
	scheme := feature.SplitScheme(feature.Chromaticity{Bins: *bins})
	return e.rankDirectory(ctx, pos, scheme, dist, formatDistance)
}

func runColorTexture(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("colortexture")
	bins := fs.Int("bins", 8, "bins per axis")
	pos, err := parseArgs(fs, args, 3)
	if err != nil {
		return err
	}

	chi2 := distance.MustProvider(distance.MetricChiSquared)
	dist := distance.Mean(chi2, chi2)
	return e.rankDirectory(ctx, pos, feature.ColorTextureScheme(*bins), dist, formatDistance)
}

// rankDirectory ranks every entry of pos[1] against the image pos[0] and
// keeps the pos[2] best.
func (e *env) rankDirectory(ctx context.Context, pos []string, scheme feature.Scheme, dist distance.SignatureFunc, format lineFormat) error {
	n, err := parseN(pos[2])
	if err != nil {
		return err
	}

	tstore, tname, err := openFile(ctx, pos[0])
	if err != nil {
		return err
	}
	target, err := cbir.ExtractFile(ctx, tstore, tname, scheme)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, pos[1])
	if err != nil {
		return err
	}
	candidates, err := cbir.DirectoryCandidates(ctx, store, scheme)
	if err != nil {
		return err
	}

	res, err := e.newRanker(dist).Rank(ctx, target, candidates, n)
	if err != nil {
		return err
	}
	return e.print(res, n, format)
}

func runCosine(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("cosine")
	dim := fs.Int("dim", featurecache.DefaultDim, "feature vector length")
	pos, err := parseArgs(fs, args, 3)
	if err != nil {
		return err
	}
	n, err := parseN(pos[2])
	if err != nil {
		return err
	}

	cache, err := e.openCache(ctx, pos[0], *dim)
	if err != nil {
		return err
	}
	target, err := cbir.TargetVector(cache, pos[1])
	if err != nil {
		return err
	}

	dist := distance.Single(distance.MustProvider(distance.MetricCosine))
	res, err := e.newRanker(dist).Rank(ctx, target, cbir.CacheCandidates(cache), n)
	if err != nil {
		return err
	}
	return e.print(res, n, formatDistance)
}

func runCombined(ctx context.Context, e *env, args []string) error {
	fs := e.flagSet("combined")
	dim := fs.Int("dim", featurecache.DefaultDim, "feature vector length")
	bins := fs.Int("bins", 16, "chromaticity bins per channel")
	pos, err := parseArgs(fs, args, 4)
	if err != nil {
		return err
	}
	n, err := parseN(pos[3])
	if err != nil {
		return err
	}

	cache, err := e.openCache(ctx, pos[0], *dim)
	if err != nil {
		return err
	}

	scheme := feature.ChromaticityScheme(*bins)
	tstore, tname, err := openFile(ctx, pos[1])
	if err != nil {
		return err
	}
	target, err := cbir.CombinedTarget(ctx, cache, tstore, tname, scheme)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, pos[2])
	if err != nil {
		return err
	}

	dist := distance.Mean(
		distance.MustProvider(distance.MetricCosine),
		distance.MustProvider(distance.MetricChiSquared),
	)
	res, err := e.newRanker(dist).Rank(ctx, target, cbir.CombinedCandidates(cache, store, scheme), n)
	if err != nil {
		return err
	}
	return e.print(res, n, formatDistance)
}

func (e *env) openCache(ctx context.Context, uri string, dim int) (*featurecache.Cache, error) {
	store, name, err := openFile(ctx, uri)
	if err != nil {
		return nil, err
	}
	cache, err := featurecache.Open(ctx, store, name, dim)
	if err != nil {
		e.logger.LogCacheLoad(ctx, store.Path(name), 0, dim, err)
		return nil, err
	}
	e.logger.LogCacheLoad(ctx, store.Path(name), cache.Len(), cache.Dim(), nil)
	return cache, nil
}
