package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/cbir/feature"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0,1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVector returns a vector with components in [0,1).
func (r *RNG) UniformVector(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := make([]float64, dim)
	for i := range v {
		v[i] = r.rand.Float64()
	}
	return v
}

// UniformVectors generates num vectors with components in [0,1).
func (r *RNG) UniformVectors(num, dim int) [][]float64 {
	out := make([][]float64, num)
	for i := range out {
		out[i] = r.UniformVector(dim)
	}
	return out
}

// UnitVector returns a random vector with L2 norm 1.
func (r *RNG) UnitVector(dim int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := make([]float64, dim)
	for {
		var norm float64
		for i := range v {
			v[i] = r.rand.NormFloat64()
			norm += v[i] * v[i]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for i := range v {
				v[i] /= norm
			}
			return v
		}
	}
}

// NoiseImage returns an RGB image with uniformly random pixels.
func (r *RNG) NoiseImage(width, height int) *feature.Image {
	r.mu.Lock()
	defer r.mu.Unlock()

	img := feature.NewImage(width, height, 3)
	for i := range img.Pix {
		img.Pix[i] = uint8(r.rand.Intn(256))
	}
	return img
}
