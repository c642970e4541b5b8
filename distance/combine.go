package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/cbir/feature"
)

// SignatureFunc scores two signatures part by part.
type SignatureFunc func(a, b feature.Signature) (float64, error)

// Combine returns a convex combination Σ w_i · f_i(a_i, b_i) over the parts
// of two signatures. Weights must be non-negative and sum to 1.
func Combine(weights []float64, funcs ...Func) (SignatureFunc, error) {
	if len(weights) != len(funcs) || len(funcs) == 0 {
		return nil, fmt.Errorf("%w: %d weights for %d functions", ErrInvalidWeights, len(weights), len(funcs))
	}
	var total float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: got %v", ErrInvalidWeights, weights)
		}
		total += w
	}
	if math.Abs(total-1) > 1e-9 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidWeights, weights)
	}

	return func(a, b feature.Signature) (float64, error) {
		if len(a) != len(funcs) || len(b) != len(funcs) {
			return 0, &ShapeMismatchError{A: []int{len(a)}, B: []int{len(b)}}
		}
		var sum float64
		for i, f := range funcs {
			d, err := f(a[i], b[i])
			if err != nil {
				return 0, fmt.Errorf("part %d: %w", i, err)
			}
			sum += weights[i] * d
		}
		return sum, nil
	}, nil
}

// Single adapts a descriptor Func to one-part signatures.
func Single(f Func) SignatureFunc {
	sf, _ := Combine([]float64{1}, f)
	return sf
}

// Mean is the unweighted average of two parts, f on part 0 and g on part 1.
// The parts are not rescaled before averaging.
func Mean(f, g Func) SignatureFunc {
	sf, _ := Combine(Equal(2), f, g)
	return sf
}

// Equal returns n equal weights summing to 1.
func Equal(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1 / float64(n)
	}
	return w
}
