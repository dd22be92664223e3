package tensor

import (
	"testing"
)

// RawTensor Tests

func TestRawTensorAsInt32(t *testing.T) {
	raw, err := NewRaw(Shape{3, 2}, Int32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	data := raw.AsInt32()

	if len(data) != 6 {
		t.Errorf("AsInt32 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if raw.AsInt32()[0] != 42 {
		t.Error("AsInt32 should return zero-copy slice")
	}
}

func TestRawTensorAsInt64(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Int64)
	data := raw.AsInt64()

	if len(data) != 4 {
		t.Errorf("AsInt64 length = %d, want 4", len(data))
	}
	if raw.ByteSize() != 32 {
		t.Errorf("ByteSize = %d, want 32", raw.ByteSize())
	}
}

func TestRawTensorEmpty(t *testing.T) {
	raw, err := NewRaw(Shape{0}, Int32)
	if err != nil {
		t.Fatalf("zero-sized dimension should be accepted: %v", err)
	}
	if raw.NumElements() != 0 {
		t.Errorf("NumElements = %d, want 0", raw.NumElements())
	}
	if got := raw.AsInt32(); len(got) != 0 {
		t.Errorf("AsInt32 on empty tensor = %v, want []", got)
	}
}

func TestRawTensorNegativeShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, -1}, Int32); err == nil {
		t.Error("NewRaw should reject negative dimensions")
	}
}

func TestRawTensorDTypeMismatchPanics(t *testing.T) {
	raw, _ := NewRaw(Shape{2}, Int32)

	defer func() {
		if recover() == nil {
			t.Error("AsInt64 on an int32 tensor should panic")
		}
	}()
	_ = raw.AsInt64()
}

func TestFromInt32(t *testing.T) {
	values := []int32{1, 2, 3}
	raw := FromInt32(values)

	if !raw.Shape().Equal(Shape{3}) {
		t.Errorf("Shape = %v, want [3]", raw.Shape())
	}
	if raw.DType() != Int32 {
		t.Errorf("DType = %s, want int32", raw.DType())
	}

	// FromInt32 copies its input
	values[0] = 99
	if raw.AsInt32()[0] != 1 {
		t.Error("FromInt32 should copy the input slice")
	}
}

func TestFromInt64(t *testing.T) {
	raw := FromInt64([]int64{7, 8})
	got := raw.AsInt64()
	if len(got) != 2 || got[0] != 7 || got[1] != 8 {
		t.Errorf("AsInt64 = %v, want [7 8]", got)
	}
}

func TestRawTensorClone(t *testing.T) {
	raw := FromInt32([]int32{1, 2})
	clone := raw.Clone()

	clone.AsInt32()[0] = 5
	if raw.AsInt32()[0] != 1 {
		t.Error("Clone should not share the buffer")
	}
	if !clone.Shape().Equal(raw.Shape()) {
		t.Errorf("Clone shape = %v, want %v", clone.Shape(), raw.Shape())
	}
}

func TestShapeByteSize(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		dtype DataType
		want  int64
		ok    bool
	}{
		{"scalar", Shape{}, Int32, 4, true},
		{"vector", Shape{5}, Int64, 40, true},
		{"empty", Shape{0}, Int32, 0, true},
		{"matrix", Shape{2, 3}, Int32, 24, true},
		{"negative", Shape{-1}, Int32, 0, false},
		{"overflows int64", Shape{1 << 61}, Int32, 0, false},
		{"product overflows", Shape{1 << 32, 1 << 32}, Int64, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.shape.ByteSize(tt.dtype)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ByteSize(%v, %s) = %d, %v; want %d, %v", tt.shape, tt.dtype, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNewRawOverflow(t *testing.T) {
	if _, err := NewRaw(Shape{1 << 61}, Int32); err == nil {
		t.Error("NewRaw should reject shapes whose byte size overflows")
	}
}
