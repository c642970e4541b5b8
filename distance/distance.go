package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/cbir/feature"
	"github.com/viterin/vek"
)

// SumSquared calculates Σ(a_i − b_i)².
// Assumes slices are the same length (caller's responsibility).
func SumSquared(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// ChiSquared calculates Σ (a_i − b_i)² / (a_i + b_i).
// Bins where a_i + b_i == 0 contribute nothing.
func ChiSquared(a, b []float64) float64 {
	var sum float64
	for i := range a {
		s := a[i] + b[i]
		if s == 0 {
			continue
		}
		d := a[i] - b[i]
		sum += d * d / s
	}
	return sum
}

// Correlation calculates 1 − r, where r is the Pearson correlation of a and b.
// The result lies in [0, 2]. Constant inputs are treated as perfectly
// correlated (distance 0).
func Correlation(a, b []float64) float64 {
	n := float64(len(a))
	if n == 0 {
		return 0
	}
	var sa, sb, saa, sbb, sab float64
	for i := range a {
		sa += a[i]
		sb += b[i]
		saa += a[i] * a[i]
		sbb += b[i] * b[i]
		sab += a[i] * b[i]
	}
	num := sab - sa*sb/n
	den := (saa - sa*sa/n) * (sbb - sb*sb/n)
	r := 1.0
	if math.Abs(den) > epsilon {
		r = num / math.Sqrt(den)
	}
	return clamp(1-r, 0, 2)
}

// Cosine calculates 1 − a·b / (‖a‖‖b‖), clamped to [0, 2].
// Returns NaN when either vector has zero norm.
func Cosine(a, b []float64) float64 {
	na, nb := vek.Norm(a), vek.Norm(b)
	if na == 0 || nb == 0 {
		return math.NaN()
	}
	return clamp(1-vek.Dot(a, b)/(na*nb), 0, 2)
}

// IsZero reports whether v has zero L2 norm (including empty vectors).
func IsZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// epsilon is the machine epsilon for float64.
const epsilon = 2.220446049250313e-16

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Metric represents the distance metric used for descriptor comparison.
type Metric int

const (
	MetricSumSquared Metric = iota
	MetricChiSquared
	MetricCorrelation
	MetricCosine
)

func (m Metric) String() string {
	switch m {
	case MetricSumSquared:
		return "SumSquared"
	case MetricChiSquared:
		return "ChiSquared"
	case MetricCorrelation:
		return "Correlation"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ParseMetric maps a short name ("ssd", "chi2", "correlation", "cosine")
// to a Metric.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "ssd", "sumsquared":
		return MetricSumSquared, nil
	case "chi2", "chisquared":
		return MetricChiSquared, nil
	case "correlation", "correl":
		return MetricCorrelation, nil
	case "cosine":
		return MetricCosine, nil
	default:
		return 0, fmt.Errorf("unknown metric %q", name)
	}
}

// Func scores two descriptors. It fails with ErrShapeMismatch for
// descriptors of different shapes.
type Func func(a, b feature.Descriptor) (float64, error)

// Provider returns the shape-checked distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSumSquared:
		return checked(SumSquared), nil
	case MetricChiSquared:
		return checked(ChiSquared), nil
	case MetricCorrelation:
		return checked(Correlation), nil
	case MetricCosine:
		return func(a, b feature.Descriptor) (float64, error) {
			if err := checkShape(a, b); err != nil {
				return 0, err
			}
			d := Cosine(a.Data, b.Data)
			if math.IsNaN(d) {
				return d, ErrZeroNorm
			}
			return d, nil
		}, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// MustProvider is like Provider but panics on an unknown metric.
func MustProvider(m Metric) Func {
	f, err := Provider(m)
	if err != nil {
		panic(err)
	}
	return f
}

func checked(fn func(a, b []float64) float64) Func {
	return func(a, b feature.Descriptor) (float64, error) {
		if err := checkShape(a, b); err != nil {
			return 0, err
		}
		return fn(a.Data, b.Data), nil
	}
}

func checkShape(a, b feature.Descriptor) error {
	if !a.SameShape(b) {
		return &ShapeMismatchError{A: a.Shape, B: b.Shape}
	}
	return nil
}
