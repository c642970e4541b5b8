package distance

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch matches every *ShapeMismatchError via errors.Is.
	ErrShapeMismatch = errors.New("descriptor shape mismatch")

	// ErrZeroNorm is returned by cosine distance when either input has zero norm.
	ErrZeroNorm = errors.New("cosine distance undefined for zero-norm vector")

	// ErrInvalidWeights is returned by Combine for a non-convex weighting.
	ErrInvalidWeights = errors.New("weights must be non-negative and sum to 1")
)

// ShapeMismatchError reports two descriptors that cannot be compared.
type ShapeMismatchError struct {
	A []int
	B []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("descriptor shape mismatch: %v vs %v", e.A, e.B)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }
