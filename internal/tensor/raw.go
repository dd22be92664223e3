package tensor

import (
	"fmt"
	"math"
	"unsafe"
)

// RawTensor is a contiguous host buffer of int32 or int64 labels.
type RawTensor struct {
	data  []byte
	shape Shape
	dtype DataType
}

// NewRaw creates a zero-filled RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	size, ok := shape.ByteSize(dtype)
	if !ok || size > math.MaxInt {
		return nil, fmt.Errorf("invalid shape: %v of %s overflows", shape, dtype)
	}

	return &RawTensor{
		data:  make([]byte, size),
		shape: shape.Clone(),
		dtype: dtype,
	}, nil
}

// FromSlice creates a 1-D tensor holding a copy of values.
func FromSlice[T DType](values []T) *RawTensor {
	raw, err := NewRaw(Shape{len(values)}, dataTypeOf[T]())
	if err != nil {
		panic(err) // an existing slice always fits
	}
	copy(asSlice[T](raw), values)
	return raw
}

// FromInt32 creates a 1-D Int32 tensor holding a copy of values.
func FromInt32(values []int32) *RawTensor {
	return FromSlice(values)
}

// FromInt64 creates a 1-D Int64 tensor holding a copy of values.
func FromInt64(values []int64) *RawTensor {
	return FromSlice(values)
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return len(r.data)
}

// Data returns the raw little-endian bytes backing the tensor.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsInt32 interprets the data as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	return asSlice[int32](r)
}

// AsInt64 interprets the data as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	return asSlice[int64](r)
}

// Clone returns a deep copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data:  append([]byte(nil), r.data...),
		shape: r.shape.Clone(),
		dtype: r.dtype,
	}
}

// asSlice reinterprets the buffer without copying. Empty tensors yield an empty slice.
func asSlice[T DType](r *RawTensor) []T {
	n := r.NumElements()
	if n == 0 || len(r.data) == 0 {
		return []T{}
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&r.data[0])), n)
}
