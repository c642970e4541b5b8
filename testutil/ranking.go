package testutil

import (
	"bytes"
	"slices"
	"strconv"
	"testing"
)

// SearchResult represents a reference ranking entry.
type SearchResult struct {
	ID       string
	Distance float64
}

// BruteForceTopN scores every vector against target and returns the n
// nearest, ties kept in input order.
func BruteForceTopN(target []float64, ids []string, vectors [][]float64, n int, dist func(a, b []float64) float64) []SearchResult {
	results := make([]SearchResult, len(vectors))
	for i, v := range vectors {
		results[i] = SearchResult{ID: ids[i], Distance: dist(target, v)}
	}

	slices.SortStableFunc(results, func(a, b SearchResult) int {
		switch {
		case a.Distance < b.Distance:
			return -1
		case a.Distance > b.Distance:
			return 1
		}
		return 0
	})

	if len(results) > n {
		results = results[:n]
	}
	return results
}

// CSV renders rows in the "id,v1,...,vK" cache layout.
func CSV(ids []string, vectors [][]float64) []byte {
	var buf bytes.Buffer
	for i, v := range vectors {
		buf.WriteString(ids[i])
		for _, x := range v {
			buf.WriteByte(',')
			buf.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// WriteCSV writes the cache rows as dir/name and returns the full path.
func WriteCSV(tb testing.TB, dir, name string, ids []string, vectors [][]float64) string {
	tb.Helper()
	return WriteFile(tb, dir, name, CSV(ids, vectors))
}
