// Package tensor provides the host-side label tensors exchanged with a recognizer model.
package tensor

// DType is a constraint for label tensor element types.
type DType interface {
	~int32 | ~int64
}

// DataType is the runtime element type of a label tensor.
type DataType int

// Label tensors hold int32 (encoded targets) or int64 (argmax output of most models).
const (
	Int32 DataType = iota
	Int64
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Int32:
		return 4
	case Int64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// dataTypeOf maps the element type T to its DataType.
func dataTypeOf[T DType]() DataType {
	var zero T
	if _, ok := any(zero).(int64); ok {
		return Int64
	}
	return Int32
}
