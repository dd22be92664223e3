package labelcodec

import (
	"fmt"
	"math"

	"github.com/born-ml/labelcodec/internal/tensor"
)

// EncodeTensors encodes items into 1-D Int32 tensors of labels and lengths.
func (c *LabelCodec) EncodeTensors(items []string) (labels, lengths *tensor.RawTensor) {
	b := c.Encode(items)
	return tensor.FromInt32(b.Labels), tensor.FromInt32(b.Lengths)
}

// DecodeTensors decodes 1-D label and length tensors of dtype Int32 or Int64.
func (c *LabelCodec) DecodeTensors(labels, lengths *tensor.RawTensor) ([]string, error) {
	b, err := BatchFromTensors(labels, lengths)
	if err != nil {
		return nil, err
	}
	return c.DecodeBatch(b)
}

// BatchFromTensors converts label and length tensors into a Batch.
// The batch is not validated; Decode does that.
func BatchFromTensors(labels, lengths *tensor.RawTensor) (Batch, error) {
	l, err := int32Values("labels", labels)
	if err != nil {
		return Batch{}, err
	}
	n, err := int32Values("lengths", lengths)
	if err != nil {
		return Batch{}, err
	}
	return Batch{Labels: l, Lengths: n}, nil
}

// int32Values copies a 1-D integer tensor into a new []int32.
func int32Values(name string, raw *tensor.RawTensor) ([]int32, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: %s is nil", ErrUnsupportedTensor, name)
	}
	if len(raw.Shape()) != 1 {
		return nil, fmt.Errorf("%w: %s has shape %v, want 1-D", ErrUnsupportedTensor, name, raw.Shape())
	}

	switch raw.DType() {
	case tensor.Int32:
		return append([]int32(nil), raw.AsInt32()...), nil
	case tensor.Int64:
		src := raw.AsInt64()
		out := make([]int32, len(src))
		for i, v := range src {
			if v < math.MinInt32 || v > math.MaxInt32 {
				return nil, fmt.Errorf("%w: %s[%d] = %d out of int32 range", ErrUnsupportedTensor, name, i, v)
			}
			out[i] = int32(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s has dtype %s", ErrUnsupportedTensor, name, raw.DType())
	}
}
