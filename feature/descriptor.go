package feature

import "slices"

// Descriptor is a fixed-shape numeric summary of an image region.
// Data is stored flattened in row-major order of Shape.
type Descriptor struct {
	Shape []int
	Data  []float64
}

// NewDescriptor allocates a zeroed descriptor of the given shape.
func NewDescriptor(shape ...int) Descriptor {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return Descriptor{Shape: slices.Clone(shape), Data: make([]float64, n)}
}

// Vector wraps a flat vector as a one-dimensional descriptor.
func Vector(v []float64) Descriptor {
	return Descriptor{Shape: []int{len(v)}, Data: v}
}

// Len returns the number of values in the descriptor.
func (d Descriptor) Len() int { return len(d.Data) }

// SameShape reports whether d and o were produced by the same configuration.
func (d Descriptor) SameShape(o Descriptor) bool {
	return slices.Equal(d.Shape, o.Shape) && len(d.Data) == len(o.Data)
}

// Signature is the ordered set of descriptors computed for one image.
type Signature []Descriptor

// Shapes returns the shape of every part.
func (s Signature) Shapes() [][]int {
	shapes := make([][]int, len(s))
	for i, d := range s {
		shapes[i] = d.Shape
	}
	return shapes
}

// SameShape reports whether both signatures have the same parts and shapes.
func (s Signature) SameShape(o Signature) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].SameShape(o[i]) {
			return false
		}
	}
	return true
}
