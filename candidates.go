package cbir

import (
	"context"
	"path"

	"github.com/hupe1980/cbir/blobstore"
	"github.com/hupe1980/cbir/distance"
	"github.com/hupe1980/cbir/feature"
	"github.com/hupe1980/cbir/featurecache"
	"github.com/hupe1980/cbir/imageio"
)

// ExtractFile loads name from store and extracts its signature. It is meant
// for the target image, so every failure is an *InputError.
func ExtractFile(ctx context.Context, store blobstore.BlobStore, name string, scheme feature.Scheme) (feature.Signature, error) {
	img, err := imageio.Load(ctx, store, name)
	if err != nil {
		return nil, &InputError{Op: "load target " + store.Path(name), Err: err}
	}

	sig, err := scheme.Extract(img)
	if err != nil {
		return nil, &InputError{Op: "extract target " + store.Path(name), Err: err}
	}
	return sig, nil
}

// DirectoryCandidates returns one candidate per blob in store, in name order.
// Every entry is tried; files that do not decode are skipped during ranking.
func DirectoryCandidates(ctx context.Context, store blobstore.BlobStore, scheme feature.Scheme) ([]Candidate, error) {
	names, err := store.List(ctx, "")
	if err != nil {
		return nil, &InputError{Op: "list " + store.Path(""), Err: err}
	}

	candidates := make([]Candidate, len(names))
	for i, name := range names {
		candidates[i] = Candidate{
			ID: store.Path(name),
			Resolve: func(ctx context.Context) (feature.Signature, error) {
				img, err := imageio.Load(ctx, store, name)
				if err != nil {
					return nil, err
				}
				return scheme.Extract(img)
			},
		}
	}
	return candidates, nil
}

// CacheCandidates returns one single-part candidate per cache row, in file
// order. IDs are the row identifiers.
func CacheCandidates(cache *featurecache.Cache) []Candidate {
	rows := cache.Rows()
	candidates := make([]Candidate, len(rows))
	for i, row := range rows {
		candidates[i] = Static(row.ID, feature.Signature{feature.Vector(row.Vector)})
	}
	return candidates
}

// CombinedCandidates pairs each cache row's vector (part 0) with the scheme
// extracted from the image of the same name in store (parts 1..). Rows whose
// image cannot be loaded are skipped during ranking.
func CombinedCandidates(cache *featurecache.Cache, store blobstore.BlobStore, scheme feature.Scheme) []Candidate {
	rows := cache.Rows()
	candidates := make([]Candidate, len(rows))
	for i, row := range rows {
		vec := feature.Vector(row.Vector)
		candidates[i] = Candidate{
			ID: row.ID,
			Resolve: func(ctx context.Context) (feature.Signature, error) {
				img, err := imageio.Load(ctx, store, row.ID)
				if err != nil {
					return nil, err
				}
				rest, err := scheme.Extract(img)
				if err != nil {
					return nil, err
				}
				return append(feature.Signature{vec}, rest...), nil
			},
		}
	}
	return candidates
}

// TargetVector looks up id in cache. A missing row is returned as the
// cache's *featurecache.NotFoundError; a zero vector is an *InputError
// because no cosine distance can be computed against it.
func TargetVector(cache *featurecache.Cache, id string) (feature.Signature, error) {
	row, err := cache.Lookup(id)
	if err != nil {
		return nil, err
	}
	if distance.IsZero(row.Vector) {
		return nil, &InputError{Op: "target " + id, Err: distance.ErrZeroNorm}
	}
	return feature.Signature{feature.Vector(row.Vector)}, nil
}

// CombinedTarget builds the target signature for CombinedCandidates: the
// cached vector of the image's base name followed by the scheme extracted
// from the image itself.
func CombinedTarget(ctx context.Context, cache *featurecache.Cache, store blobstore.BlobStore, name string, scheme feature.Scheme) (feature.Signature, error) {
	vec, err := TargetVector(cache, path.Base(name))
	if err != nil {
		return nil, err
	}

	rest, err := ExtractFile(ctx, store, name, scheme)
	if err != nil {
		return nil, err
	}
	return append(vec, rest...), nil
}
