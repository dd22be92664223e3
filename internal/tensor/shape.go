package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor.
// Label tensors are 1-D; a scalar shape has one element.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate rejects negative dimensions.
// Zero is allowed: a batch of empty strings has no labels.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// ByteSize returns the buffer size a tensor of this shape and dtype needs.
// It reports false for negative dimensions or when the size overflows int64.
func (s Shape) ByteSize(dt DataType) (int64, bool) {
	size := int64(dt.Size())
	for _, dim := range s {
		if dim < 0 {
			return 0, false
		}
		if dim != 0 && size > math.MaxInt64/int64(dim) {
			return 0, false
		}
		size *= int64(dim)
	}
	return size, true
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	return append(Shape(make([]int, 0, len(s))), s...)
}
