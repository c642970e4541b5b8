package cbir

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hupe1980/cbir/blobstore"
	"github.com/hupe1980/cbir/distance"
	"github.com/hupe1980/cbir/feature"
	"github.com/hupe1980/cbir/featurecache"
	"github.com/hupe1980/cbir/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chi2 = distance.MustProvider(distance.MetricChiSquared)

func TestDirectory_RedVersusBlue(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	testutil.WritePNG(t, dir, "blue.png", feature.Solid(10, 10, 0, 0, 255))
	testutil.WritePNG(t, dir, "red.png", feature.Solid(10, 10, 255, 0, 0))

	queryDir := t.TempDir()
	testutil.WritePNG(t, queryDir, "target.png", feature.Solid(10, 10, 255, 0, 0))

	scheme := feature.ChromaticityScheme(16)
	target, err := ExtractFile(ctx, blobstore.NewLocalStore(queryDir), "target.png", scheme)
	require.NoError(t, err)

	store := blobstore.NewLocalStore(dir)
	candidates, err := DirectoryCandidates(ctx, store, scheme)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, filepath.Join(dir, "blue.png"), candidates[0].ID)

	res, err := NewRanker(distance.Single(chi2)).Rank(ctx, target, candidates, 1)
	require.NoError(t, err)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, filepath.Join(dir, "red.png"), res.Matches[0].ID)
	assert.Equal(t, 0.0, res.Matches[0].Distance)
}

func TestDirectory_SkipsUndecodable(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	store.Put("a.png", testutil.EncodePNG(t, feature.Solid(8, 8, 10, 200, 10)))
	store.Put("b.txt", []byte("notes"))
	store.Put("c.png", testutil.EncodePNG(t, feature.Solid(8, 8, 200, 10, 10)))

	scheme := feature.SplitScheme(feature.Chromaticity{Bins: 8})
	target, err := scheme.Extract(feature.Solid(8, 8, 200, 10, 10))
	require.NoError(t, err)

	candidates, err := DirectoryCandidates(ctx, store, scheme)
	require.NoError(t, err)

	dist, err := distance.Combine([]float64{0.5, 0.5}, chi2, chi2)
	require.NoError(t, err)

	res, err := NewRanker(dist, WithWorkers(2)).Rank(ctx, target, candidates, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"mem/c.png", "mem/a.png"}, ids(res.Matches))
	assert.Equal(t, []int{1}, res.SkippedOrdinals())
}

func TestDirectory_ListError(t *testing.T) {
	_, err := DirectoryCandidates(context.Background(), blobstore.NewLocalStore(filepath.Join(t.TempDir(), "nope")), feature.PatchScheme(7))
	assert.ErrorIs(t, err, ErrInput)
	assert.True(t, errors.Is(err, blobstore.ErrNotFound))
}

func TestExtractFile_Errors(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	store.Put("tiny.png", testutil.EncodePNG(t, feature.Solid(3, 3, 0, 0, 0)))

	_, err := ExtractFile(ctx, store, "missing.png", feature.PatchScheme(7))
	assert.ErrorIs(t, err, ErrInput)

	// 3x3 is smaller than the 7x7 centre patch.
	_, err = ExtractFile(ctx, store, "tiny.png", feature.PatchScheme(7))
	assert.ErrorIs(t, err, ErrInput)
	assert.ErrorIs(t, err, feature.ErrExtraction)
}

func unitCache(t *testing.T, dim int, rows map[string]int, order []string) *featurecache.Cache {
	t.Helper()

	vectors := make([][]float64, len(order))
	for i, id := range order {
		v := make([]float64, dim)
		if axis := rows[id]; axis >= 0 {
			v[axis] = 1
		}
		vectors[i] = v
	}

	c, err := featurecache.Load(bytes.NewReader(testutil.CSV(order, vectors)), dim)
	require.NoError(t, err)
	return c
}

func TestCache_CosineScenario(t *testing.T) {
	cache := unitCache(t, featurecache.DefaultDim, map[string]int{"a.jpg": 0, "b.jpg": 1}, []string{"a.jpg", "b.jpg"})

	target, err := TargetVector(cache, "a.jpg")
	require.NoError(t, err)

	cos := distance.Single(distance.MustProvider(distance.MetricCosine))
	res, err := NewRanker(cos).Rank(context.Background(), target, CacheCandidates(cache), 2)
	require.NoError(t, err)

	assert.Equal(t, []Match{{ID: "a.jpg", Distance: 0}, {ID: "b.jpg", Distance: 1}}, res.Matches)
}

func TestTargetVector_Errors(t *testing.T) {
	cache := unitCache(t, 4, map[string]int{"a.jpg": 0, "zero.jpg": -1}, []string{"a.jpg", "zero.jpg"})

	_, err := TargetVector(cache, "A.jpg")
	var nf *featurecache.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.ErrorIs(t, err, featurecache.ErrCache)

	_, err = TargetVector(cache, "zero.jpg")
	assert.ErrorIs(t, err, ErrInput)
	assert.ErrorIs(t, err, distance.ErrZeroNorm)
}

func TestCombined(t *testing.T) {
	ctx := context.Background()
	cache := unitCache(t, 4, map[string]int{"red.png": 0, "blue.png": 1, "gone.png": 0}, []string{"red.png", "gone.png", "blue.png"})

	store := blobstore.NewMemoryStore()
	store.Put("red.png", testutil.EncodePNG(t, feature.Solid(6, 6, 255, 0, 0)))
	store.Put("blue.png", testutil.EncodePNG(t, feature.Solid(6, 6, 0, 0, 255)))

	scheme := feature.ChromaticityScheme(16)
	target, err := CombinedTarget(ctx, cache, store, "red.png", scheme)
	require.NoError(t, err)
	require.Len(t, target, 2)

	dist := distance.Mean(distance.MustProvider(distance.MetricCosine), chi2)
	res, err := NewRanker(dist).Rank(ctx, target, CombinedCandidates(cache, store, scheme), 5)
	require.NoError(t, err)

	require.Equal(t, []string{"red.png", "blue.png"}, ids(res.Matches))
	assert.Equal(t, 0.0, res.Matches[0].Distance)
	assert.Greater(t, res.Matches[1].Distance, 0.5)
	assert.Equal(t, []int{1}, res.SkippedOrdinals())
}

func TestCombinedTarget_NotInCache(t *testing.T) {
	cache := unitCache(t, 4, map[string]int{"a.png": 0}, []string{"a.png"})
	store := blobstore.NewMemoryStore()
	store.Put("dir/b.png", testutil.EncodePNG(t, feature.Solid(6, 6, 1, 2, 3)))

	_, err := CombinedTarget(context.Background(), cache, store, "dir/b.png", feature.ChromaticityScheme(16))
	assert.ErrorIs(t, err, featurecache.ErrCache)
}
