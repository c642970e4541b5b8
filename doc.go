// Package cbir ranks candidate images by visual similarity to a target.
//
// A ranking run has three stages:
//
//  1. A feature.Scheme extracts a Signature from the target and from every
//     candidate.
//  2. A distance.SignatureFunc scores each candidate against the target.
//  3. The Ranker sorts all scores ascending (ties stay in discovery order)
//     and keeps the first N.
//
// # Quick Start
//
//	ctx := context.Background()
//	store := blobstore.NewLocalStore("./images")
//	scheme := feature.ChromaticityScheme(16)
//
//	target, _ := cbir.ExtractFile(ctx, blobstore.NewLocalStore("."), "query.jpg", scheme)
//	candidates, _ := cbir.DirectoryCandidates(ctx, store, scheme)
//
//	ranker := cbir.NewRanker(distance.Single(distance.MustProvider(distance.MetricChiSquared)))
//	res, _ := ranker.Rank(ctx, target, candidates, 5)
//	for _, m := range res.Matches {
//	    fmt.Println(m.ID, m.Distance)
//	}
//
// # Failure Policy
//
// A candidate that cannot be decoded or extracted is skipped: it is logged at
// WARN and its ordinal is recorded in Result.Skipped. A candidate whose
// signature shape differs from the target aborts the run with a
// *ConfigurationError. Feature cache errors are reported by featurecache and
// are always fatal.
//
// # Parallel Scan
//
// WithWorkers(n) resolves and scores candidates on n goroutines. Results are
// merged after all workers finish, so the output is identical to a
// sequential scan.
package cbir
